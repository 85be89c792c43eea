package synth

import (
	"fmt"

	"github.com/erraggy/typeforge/forgeerrors"
	"github.com/erraggy/typeforge/internal/naming"
	"github.com/erraggy/typeforge/schema"
)

// Parameter is one named operation parameter with its resolved schema.
type Parameter struct {
	Name   string
	Schema *schema.Node
}

// Response is one operation response for a status code. A nil Schema marks a
// no-content response; such responses receive no response type and are
// excluded from response aliasing.
type Response struct {
	Status int
	Schema *schema.Node
}

// Operation is one fully-resolved operation from the upstream specification
// loader. Either ID or the Method/Path pair must identify the operation.
type Operation struct {
	ID          string
	Method      string
	Path        string
	Parameters  []Parameter
	RequestBody *schema.Node
	Responses   []Response
}

// key returns the identity used for traversal paths and default names.
func (op Operation) key() string {
	if op.ID != "" {
		return op.ID
	}
	return op.Method + " " + op.Path
}

// ParameterRef is the resolved expression pair for one parameter.
type ParameterRef struct {
	Name      string
	Type      TypeExpr
	Validator ValidatorExpr
}

// BodyRef is the resolved expression pair for a request body.
type BodyRef struct {
	Type      TypeExpr
	Validator ValidatorExpr
}

// ResponseRef is the resolved expression pair for one response status.
type ResponseRef struct {
	Status    int
	Type      TypeExpr
	Validator ValidatorExpr
}

// OperationRefs holds the per-operation output: the resolved type expression
// (inline literal or reference) for each parameter, the request body, and
// each response, plus the declaration name the operation's response resolved
// to after aliasing (empty for operations without a response schema).
type OperationRefs struct {
	OperationID  string
	Parameters   []ParameterRef
	RequestBody  *BodyRef
	Responses    []ResponseRef
	ResponseName string
}

// Result is the frozen output of a synthesis run, consumed by a downstream
// emitter.
type Result struct {
	// Declarations is the frozen type table in registration order. Each
	// entry carries both the type declaration body and the mirrored
	// validator declaration.
	Declarations []*Entry

	// Responses holds the canonical and alias response declarations
	// emitted by the response post-pass, in processing order.
	Responses []ResponseDeclaration

	// Operations holds per-operation resolved references, in input order.
	Operations []OperationRefs

	// Warnings accumulates every recoverable condition degraded during
	// the run.
	Warnings Warnings
}

// Synthesize runs the engine over a fully-resolved operation list and
// returns the frozen declarations, response aliases, and per-operation
// references.
//
// Recoverable per-fragment conditions (cyclic shapes, empty enums, malformed
// nodes) degrade to opaque expressions and accumulate on Result.Warnings;
// only a structurally invalid operation list fails the run, with a
// *forgeerrors.InputError and no partial output.
func Synthesize(ops []Operation, opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("synth: invalid options: %w", err)
	}
	if err := validateOperations(ops); err != nil {
		return nil, err
	}

	s, err := newSynthesizer(cfg)
	if err != nil {
		return nil, fmt.Errorf("synth: %w", err)
	}

	result := &Result{Operations: make([]OperationRefs, 0, len(ops))}

	for _, op := range ops {
		refs := OperationRefs{OperationID: op.key()}
		opPath := "operations." + op.key()

		for _, p := range op.Parameters {
			t, v := s.synthesize(p.Schema, opPath+".parameters."+p.Name, "", OriginNestedExtraction)
			refs.Parameters = append(refs.Parameters, ParameterRef{Name: p.Name, Type: t, Validator: v})
		}

		if op.RequestBody != nil {
			t, v := s.synthesize(op.RequestBody, opPath+".requestBody", "", OriginNestedExtraction)
			refs.RequestBody = &BodyRef{Type: t, Validator: v}
		}

		// Only the primary success response carries the default response
		// name; other statuses hoist as plain nested extractions.
		defaultName := naming.ResponseName(op.ID, op.Method, op.Path)
		primary := primaryResponseIndex(op)
		for idx, r := range op.Responses {
			if r.Schema == nil {
				continue
			}
			preferred, origin := "", OriginNestedExtraction
			if idx == primary {
				preferred, origin = defaultName, OriginResponseExtraction
			}
			respPath := fmt.Sprintf("%s.responses.%d", opPath, r.Status)
			t, v := s.synthesize(r.Schema, respPath, preferred, origin)
			refs.Responses = append(refs.Responses, ResponseRef{Status: r.Status, Type: t, Validator: v})
		}

		result.Operations = append(result.Operations, refs)
	}

	s.table.Freeze()
	result.Responses = s.resolveResponses(ops, result.Operations)

	result.Declarations = s.table.Entries()
	result.Warnings = s.warnings

	cfg.logger.Info("synthesis complete",
		"operations", len(ops),
		"declarations", len(result.Declarations),
		"responses", len(result.Responses),
		"warnings", len(result.Warnings))

	return result, nil
}

// validateOperations rejects structurally invalid top-level input. Unlike
// per-fragment degradation this is fatal: a broken operation list produces no
// partial output.
func validateOperations(ops []Operation) error {
	seen := make(map[string]bool, len(ops))
	for i, op := range ops {
		if op.ID == "" && op.Method == "" && op.Path == "" {
			return &forgeerrors.InputError{
				Index:   i,
				Field:   "operation",
				Message: "no id, method, or path",
			}
		}
		key := op.key()
		if seen[key] {
			return &forgeerrors.InputError{
				Index:   i,
				Field:   "operation",
				Message: fmt.Sprintf("duplicate operation '%s'", key),
			}
		}
		seen[key] = true

		for _, p := range op.Parameters {
			if p.Name == "" {
				return &forgeerrors.InputError{
					Index:   i,
					Field:   "parameter",
					Message: fmt.Sprintf("operation '%s' has an unnamed parameter", key),
				}
			}
		}
		for _, r := range op.Responses {
			if r.Status < 100 || r.Status > 599 {
				return &forgeerrors.InputError{
					Index:   i,
					Field:   "response",
					Message: fmt.Sprintf("operation '%s' has invalid status %d", key, r.Status),
				}
			}
		}
	}
	return nil
}
