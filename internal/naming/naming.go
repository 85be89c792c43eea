package naming

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// goReservedWords contains Go reserved keywords that cannot be used as identifiers.
// Note: We only include actual keywords, not predeclared identifiers like "error",
// because those can be shadowed and are commonly used as type names (e.g., "Error").
var goReservedWords = map[string]bool{
	// Keywords (these are truly reserved and cannot be used)
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,
}

// titleCaser performs Unicode-correct title casing.
// strings.Title is deprecated; cases.Title handles multi-byte letters properly.
var titleCaser = cases.Title(language.English, cases.NoLower)

// EscapeReservedWord checks if a name is a Go reserved keyword and escapes it
// by appending an underscore if necessary. The check is case-insensitive because
// PascalCase names like "Range" or "Type" should still be escaped.
func EscapeReservedWord(name string) string {
	if goReservedWords[strings.ToLower(name)] {
		return name + "_"
	}
	return name
}

// ToPascalCase converts a string to PascalCase.
// Separators (underscore, hyphen, dot, slash, space) trigger capitalization of
// the next letter.
// Example: "user_profile" -> "UserProfile"
// Example: "api-client" -> "ApiClient"
func ToPascalCase(s string) string {
	if s == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(s))

	capitalizeNext := true

	for _, r := range s {
		if r == '_' || r == '-' || r == '.' || r == '/' || r == ' ' {
			capitalizeNext = true
			continue
		}
		if capitalizeNext {
			result.WriteString(titleCaser.String(string(r)))
			capitalizeNext = false
		} else {
			result.WriteRune(r)
		}
	}

	return result.String()
}

// ToTypeName converts an identifier to a valid declaration name (PascalCase).
// It handles special characters, ensures the name starts with a letter,
// and escapes Go reserved words.
func ToTypeName(s string) string {
	if s == "" {
		return "Type"
	}

	// Split on non-alphanumeric and capitalize each part
	var result strings.Builder
	capitalizeNext := true

	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if capitalizeNext {
				result.WriteString(titleCaser.String(string(r)))
				capitalizeNext = false
			} else {
				result.WriteRune(r)
			}
		} else {
			capitalizeNext = true
		}
	}

	name := result.String()
	if name == "" {
		return "Type"
	}

	// Ensure starts with a letter
	if !unicode.IsLetter([]rune(name)[0]) {
		name = "T" + name
	}

	return EscapeReservedWord(name)
}

// ResponseName derives the default response declaration name for an operation.
// It uses the operation identifier if available, otherwise it generates a name
// from the HTTP method and path.
// Example: "getRepo" -> "GetRepoResponse"
// Example: ("GET", "/repos/{owner}") -> "GetReposByOwnerResponse"
func ResponseName(operationID, method, path string) string {
	if operationID != "" {
		return ToTypeName(operationID) + "Response"
	}
	pathPart := path
	pathPart = strings.ReplaceAll(pathPart, "/", " ")
	pathPart = strings.ReplaceAll(pathPart, "{", "By ")
	pathPart = strings.ReplaceAll(pathPart, "}", "")
	// methods arrive uppercase; lower first so ToTypeName yields Get, not GET
	return ToTypeName(strings.ToLower(method)+" "+pathPart) + "Response"
}

// FallbackName produces the synthesized name for the n-th anonymous extraction
// of a run. The counter is run-scoped and monotonically increasing, so output
// is reproducible for identical input and traversal order.
func FallbackName(n int) string {
	return fmt.Sprintf("Model%d", n)
}

// Disambiguate returns name if taken reports it free, otherwise the first
// numeric-suffix variant (name2, name3, ...) that is free.
func Disambiguate(name string, taken func(string) bool) string {
	if !taken(name) {
		return name
	}
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s%d", name, i)
		if !taken(candidate) {
			return candidate
		}
	}
}
