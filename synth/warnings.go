package synth

import (
	"fmt"
	"strings"

	"github.com/erraggy/typeforge/internal/severity"
)

// WarningCategory identifies the type of warning.
type WarningCategory string

const (
	// WarnCyclicSchema indicates a fragment reachable from itself was
	// degraded to an opaque type.
	WarnCyclicSchema WarningCategory = "cyclic_schema"
	// WarnEmptyEnum indicates an enum with no values was degraded to a
	// generic primitive.
	WarnEmptyEnum WarningCategory = "empty_enum"
	// WarnMalformedSchema indicates a structurally incomplete fragment was
	// degraded to an opaque type.
	WarnMalformedSchema WarningCategory = "malformed_schema"
	// WarnNameCollision indicates a declaration name was disambiguated
	// with a numeric suffix.
	WarnNameCollision WarningCategory = "name_collision"
	// WarnComponentConflict indicates two differently-named registry
	// entries share a fingerprint; the first-registered name wins.
	WarnComponentConflict WarningCategory = "component_fingerprint_conflict"
	// WarnResponseAliased indicates an operation response was collapsed
	// into an alias of a canonical declaration.
	WarnResponseAliased WarningCategory = "response_aliased"
)

// Warning represents a structured, non-fatal diagnostic accumulated during a
// synthesis run. Degraded fragments always still yield valid declarations;
// warnings describe what was lost or resolved along the way.
type Warning struct {
	// Category identifies the type of warning.
	Category WarningCategory
	// Path locates the affected fragment
	// (e.g., "operations.getRepo.responses.200.properties.owner").
	Path string
	// Message is a human-readable description.
	Message string
	// Severity indicates warning severity.
	Severity severity.Severity
	// Context provides additional details.
	Context map[string]any
}

// String returns the formatted warning message.
func (w *Warning) String() string {
	if w.Path != "" {
		return w.Path + ": " + w.Message
	}
	return w.Message
}

// NewCyclicSchemaWarning creates a warning for a degraded cyclic fragment.
func NewCyclicSchemaWarning(path string) *Warning {
	return &Warning{
		Category: WarnCyclicSchema,
		Path:     path,
		Message:  "cyclic schema degraded to opaque type",
		Severity: severity.SeverityWarning,
	}
}

// NewEmptyEnumWarning creates a warning for an enum with no values.
func NewEmptyEnumWarning(path string) *Warning {
	return &Warning{
		Category: WarnEmptyEnum,
		Path:     path,
		Message:  "empty enum degraded to string",
		Severity: severity.SeverityWarning,
	}
}

// NewMalformedSchemaWarning creates a warning for a structurally incomplete
// fragment.
func NewMalformedSchemaWarning(path, detail string) *Warning {
	return &Warning{
		Category: WarnMalformedSchema,
		Path:     path,
		Message:  fmt.Sprintf("malformed schema degraded to opaque type: %s", detail),
		Severity: severity.SeverityWarning,
		Context:  map[string]any{"detail": detail},
	}
}

// NewNameCollisionWarning creates a warning for a suffix-disambiguated name.
func NewNameCollisionWarning(requested, resolved string) *Warning {
	return &Warning{
		Category: WarnNameCollision,
		Message:  fmt.Sprintf("name '%s' already bound to a different shape, renamed to '%s'", requested, resolved),
		Severity: severity.SeverityInfo,
		Context: map[string]any{
			"requested": requested,
			"resolved":  resolved,
		},
	}
}

// NewComponentConflictWarning creates a warning for two differently-named
// registry entries sharing a fingerprint.
func NewComponentConflictWarning(kept, ignored, fingerprint string) *Warning {
	return &Warning{
		Category: WarnComponentConflict,
		Message: fmt.Sprintf(
			"components '%s' and '%s' are structurally identical; keeping '%s' (first registered)",
			kept, ignored, kept),
		Severity: severity.SeverityWarning,
		Context: map[string]any{
			"kept":        kept,
			"ignored":     ignored,
			"fingerprint": fingerprint,
		},
	}
}

// NewResponseAliasedWarning creates an informational warning for a collapsed
// response declaration.
func NewResponseAliasedWarning(alias, canonical string) *Warning {
	return &Warning{
		Category: WarnResponseAliased,
		Message:  fmt.Sprintf("response type '%s' aliased to '%s'", alias, canonical),
		Severity: severity.SeverityInfo,
		Context: map[string]any{
			"alias":     alias,
			"canonical": canonical,
		},
	}
}

// Warnings is a collection of Warning.
type Warnings []*Warning

// Strings returns the formatted warning messages.
func (ws Warnings) Strings() []string {
	result := make([]string, len(ws))
	for i, w := range ws {
		result[i] = w.String()
	}
	return result
}

// ByCategory filters warnings by category.
func (ws Warnings) ByCategory(cat WarningCategory) Warnings {
	var result Warnings
	for _, w := range ws {
		if w.Category == cat {
			result = append(result, w)
		}
	}
	return result
}

// BySeverity filters warnings by severity.
func (ws Warnings) BySeverity(sev severity.Severity) Warnings {
	var result Warnings
	for _, w := range ws {
		if w.Severity == sev {
			result = append(result, w)
		}
	}
	return result
}

// Summary returns a formatted summary of warnings.
func (ws Warnings) Summary() string {
	if len(ws) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d warning(s):\n", len(ws)))
	for _, w := range ws {
		sb.WriteString("  - ")
		sb.WriteString(w.String())
		sb.WriteString("\n")
	}
	return strings.TrimSuffix(sb.String(), "\n")
}
