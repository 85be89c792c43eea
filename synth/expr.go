package synth

import (
	"fmt"
	"strings"

	"github.com/erraggy/typeforge/schema"
)

// ExprKind discriminates the variants of TypeExpr and ValidatorExpr.
type ExprKind int

const (
	// ExprInvalid is the zero value and never appears in engine output.
	ExprInvalid ExprKind = iota

	// ExprPrimitive is an inline primitive type.
	ExprPrimitive

	// ExprEnum is an inline union of string literals.
	ExprEnum

	// ExprArray is an array of an element expression.
	ExprArray

	// ExprObject is an inline object literal with named fields.
	ExprObject

	// ExprReference is a reference to a named declaration.
	ExprReference

	// ExprUnknown is the opaque type that malformed or cyclic fragments
	// degrade to.
	ExprUnknown
)

// String returns the string representation of the expression kind.
func (k ExprKind) String() string {
	switch k {
	case ExprPrimitive:
		return "primitive"
	case ExprEnum:
		return "enum"
	case ExprArray:
		return "array"
	case ExprObject:
		return "object"
	case ExprReference:
		return "reference"
	case ExprUnknown:
		return "unknown"
	default:
		return "invalid"
	}
}

// TypeExpr is a synthesized type expression: either an inline literal or a
// reference to a named declaration in the type table.
type TypeExpr struct {
	Kind ExprKind

	// Primitive is set for ExprPrimitive.
	Primitive schema.Primitive

	// Enum is set for ExprEnum, in source order with duplicates removed.
	Enum []string

	// Elem is set for ExprArray.
	Elem *TypeExpr

	// Fields is set for ExprObject, in source property order.
	Fields []Field

	// Ref is the declaration name for ExprReference.
	Ref string

	// Nullable marks the expression as accepting null.
	Nullable bool
}

// Field is a named field of an inline object type expression.
type Field struct {
	Name     string
	Optional bool
	Type     TypeExpr
}

// String renders a compact, human-readable form of the expression for
// diagnostics and logs. It is not a code emission format.
func (e TypeExpr) String() string {
	var base string
	switch e.Kind {
	case ExprPrimitive:
		base = string(e.Primitive)
	case ExprEnum:
		quoted := make([]string, len(e.Enum))
		for i, v := range e.Enum {
			quoted[i] = fmt.Sprintf("%q", v)
		}
		base = strings.Join(quoted, "|")
	case ExprArray:
		if e.Elem == nil {
			base = "[]unknown"
		} else {
			base = "[]" + e.Elem.String()
		}
	case ExprObject:
		parts := make([]string, len(e.Fields))
		for i, f := range e.Fields {
			name := f.Name
			if f.Optional {
				name += "?"
			}
			parts[i] = name + ": " + f.Type.String()
		}
		base = "{" + strings.Join(parts, ", ") + "}"
	case ExprReference:
		base = "#" + e.Ref
	case ExprUnknown:
		base = "unknown"
	default:
		base = "invalid"
	}
	if e.Nullable {
		base += "|null"
	}
	return base
}

// ValidatorExpr is a runtime-check expression structurally mirroring a
// TypeExpr: where the type says "string", the validator says "is string";
// where the type references a named declaration, the validator references the
// declaration's validator. Hoisting decisions are shared with type synthesis,
// so every ExprReference in a TypeExpr has exactly one validator declaration
// under the same name.
type ValidatorExpr struct {
	Kind ExprKind

	// Primitive is set for ExprPrimitive.
	Primitive schema.Primitive

	// Enum is set for ExprEnum, in source order with duplicates removed.
	Enum []string

	// Elem is set for ExprArray.
	Elem *ValidatorExpr

	// Fields is set for ExprObject, in source property order.
	Fields []FieldCheck

	// Ref is the declaration name for ExprReference.
	Ref string

	// Nullable marks null as acceptable before the base check runs.
	Nullable bool
}

// FieldCheck is the validator counterpart of Field: a named, possibly
// optional field check of an inline object validator.
type FieldCheck struct {
	Name     string
	Optional bool
	Check    ValidatorExpr
}

// String renders a compact, human-readable form of the check for diagnostics.
func (e ValidatorExpr) String() string {
	var base string
	switch e.Kind {
	case ExprPrimitive:
		base = "is " + string(e.Primitive)
	case ExprEnum:
		quoted := make([]string, len(e.Enum))
		for i, v := range e.Enum {
			quoted[i] = fmt.Sprintf("%q", v)
		}
		base = "is one of " + strings.Join(quoted, ", ")
	case ExprArray:
		if e.Elem == nil {
			base = "array of unknown"
		} else {
			base = "array of (" + e.Elem.String() + ")"
		}
	case ExprObject:
		parts := make([]string, len(e.Fields))
		for i, f := range e.Fields {
			name := f.Name
			if f.Optional {
				name += "?"
			}
			parts[i] = name + ": " + f.Check.String()
		}
		base = "object{" + strings.Join(parts, ", ") + "}"
	case ExprReference:
		base = "check " + e.Ref
	case ExprUnknown:
		base = "accept any"
	default:
		base = "invalid"
	}
	if e.Nullable {
		base = "null or " + base
	}
	return base
}
