// Package forgeerrors provides structured error types for typeforge.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - SchemaError: per-fragment conditions (cyclic shapes, empty enums,
//     malformed nodes) that the engine degrades rather than propagates
//   - NamingError: name collisions resolved by suffix disambiguation
//   - InputError: structurally invalid top-level input (fatal, no output)
//
// # Usage with errors.Is
//
//	_, err := schema.Fingerprint(node)
//	if errors.Is(err, forgeerrors.ErrCyclicSchema) {
//	    // degrade the offending subtree
//	}
package forgeerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrCyclicSchema indicates a schema fragment reachable from itself.
	ErrCyclicSchema = errors.New("cyclic schema")

	// ErrEmptyEnum indicates an enum schema with no values.
	ErrEmptyEnum = errors.New("empty enum")

	// ErrMalformedSchema indicates a schema node missing required structure
	// (an array without items, an object without properties).
	ErrMalformedSchema = errors.New("malformed schema")

	// ErrNameCollision indicates a declaration name collided with a name
	// already bound to a different shape.
	ErrNameCollision = errors.New("name collision")

	// ErrInput indicates structurally invalid top-level input.
	ErrInput = errors.New("invalid input")

	// ErrTableFrozen indicates a registration was attempted after the type
	// table was frozen.
	ErrTableFrozen = errors.New("type table frozen")
)

// SchemaError represents a recoverable per-fragment condition.
// The engine degrades the offending fragment to an opaque type and records a
// warning; SchemaError surfaces the same condition to callers that interact
// with fragments directly (for example when fingerprinting).
type SchemaError struct {
	// Path is the location of the fragment within its operation
	// (e.g., "operations.getRepo.responses.200.properties.owner")
	Path string
	// IsCircular is true if the fragment is reachable from itself
	IsCircular bool
	// IsEmptyEnum is true if the fragment is an enum with no values
	IsEmptyEnum bool
	// Message describes the condition
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *SchemaError) Error() string {
	msg := "malformed schema"
	if e.IsCircular {
		msg = "cyclic schema"
	} else if e.IsEmptyEnum {
		msg = "empty enum"
	}
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *SchemaError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// Matches ErrMalformedSchema, and also ErrCyclicSchema or ErrEmptyEnum when
// the corresponding flags are set.
func (e *SchemaError) Is(target error) bool {
	if target == ErrCyclicSchema && e.IsCircular {
		return true
	}
	if target == ErrEmptyEnum && e.IsEmptyEnum {
		return true
	}
	if target == ErrMalformedSchema && !e.IsCircular && !e.IsEmptyEnum {
		return true
	}
	return false
}

// NamingError represents a declaration name collision.
// Collisions are resolved automatically by numeric suffixing; the error type
// exists for hosts that choose to treat any collision as a hard failure.
type NamingError struct {
	// Name is the requested declaration name
	Name string
	// Resolved is the disambiguated name that was used instead
	Resolved string
	// Fingerprint is the canonical fingerprint of the colliding shape
	Fingerprint string
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *NamingError) Error() string {
	msg := "name collision"
	if e.Name != "" {
		msg += ": " + e.Name
	}
	if e.Resolved != "" {
		msg += " resolved to " + e.Resolved
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as NamingError has no underlying cause.
func (e *NamingError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *NamingError) Is(target error) bool {
	return target == ErrNameCollision
}

// InputError represents structurally invalid top-level input: a broken
// operation list or name index registry. Unlike per-fragment conditions this
// is fatal and produces no partial output.
type InputError struct {
	// Index is the position of the offending element in the input slice
	// (-1 if not applicable)
	Index int
	// Field identifies the invalid field, if known
	Field string
	// Message describes the problem
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *InputError) Error() string {
	msg := "invalid input"
	if e.Index >= 0 {
		msg += fmt.Sprintf(" at index %d", e.Index)
	}
	if e.Field != "" {
		msg += ": " + e.Field
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *InputError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *InputError) Is(target error) bool {
	return target == ErrInput
}
