package synth

import (
	"fmt"

	"github.com/erraggy/typeforge/internal/naming"
	"github.com/erraggy/typeforge/schema"
)

// ResponseDeclaration is one output of the response post-pass: either a
// structural declaration of a response shape that exists nowhere else, or an
// alias declaration naming an existing canonical type without redefining its
// structure.
type ResponseDeclaration struct {
	// Name is the declaration name.
	Name string
	// AliasFor is the canonical name this declaration aliases. Empty for
	// structural declarations.
	AliasFor string
	// Type is the declaration body. Set only for structural declarations.
	Type TypeExpr
	// Validator is the mirrored check body. Set only for structural
	// declarations.
	Validator ValidatorExpr
}

// IsAlias reports whether the declaration aliases a canonical name.
func (d ResponseDeclaration) IsAlias() bool {
	return d.AliasFor != ""
}

// primaryResponseIndex selects the response that defines an operation's
// response type: the lowest 2xx status with a schema, else the lowest status
// with a schema. Returns -1 when the operation has no response schema.
func primaryResponseIndex(op Operation) int {
	best := -1
	for i, r := range op.Responses {
		if r.Schema == nil {
			continue
		}
		if best == -1 {
			best = i
			continue
		}
		current := op.Responses[best].Status
		candidate := r.Status
		currentSuccess := current >= 200 && current < 300
		candidateSuccess := candidate >= 200 && candidate < 300
		switch {
		case candidateSuccess && !currentSuccess:
			best = i
		case candidateSuccess == currentSuccess && candidate < current:
			best = i
		}
	}
	return best
}

// responseGroup collects the operations sharing one response shape. The
// schema of the first member is the group's structural representative.
type responseGroup struct {
	fingerprint string
	schema      *schema.Node
	members     []responseMember
}

type responseMember struct {
	opIndex     int
	refIndex    int
	defaultName string
}

// resolveResponses is the post-pass over the frozen table: it groups
// operations by the fingerprint of their primary response schema and
// collapses each group into one canonical declaration plus aliases. It also
// back-fills OperationRefs.ResponseName for every grouped operation.
func (s *synthesizer) resolveResponses(ops []Operation, refs []OperationRefs) []ResponseDeclaration {
	var (
		order  []string
		groups = make(map[string]*responseGroup)
	)

	for i, op := range ops {
		primary := primaryResponseIndex(op)
		if primary < 0 {
			continue
		}
		refIndex := responseRefIndex(refs[i], op.Responses[primary].Status)
		if refIndex < 0 {
			continue
		}

		// Degraded (cyclic) response schemas cannot be grouped
		// structurally; give each its own key so it still yields a
		// valid declaration.
		primarySchema := op.Responses[primary].Schema
		key, err := s.fingerprint(primarySchema)
		if err != nil {
			key = fmt.Sprintf("!degraded:%d", i)
		}

		// A fingerprint match is verified against the group's
		// representative; colliding distinct shapes get their own group.
		g, ok := groups[key]
		for ok && !g.schema.Equal(primarySchema) {
			key += "!"
			g, ok = groups[key]
		}
		if !ok {
			g = &responseGroup{fingerprint: key, schema: primarySchema}
			groups[key] = g
			order = append(order, key)
		}
		g.members = append(g.members, responseMember{
			opIndex:     i,
			refIndex:    refIndex,
			defaultName: naming.ResponseName(op.ID, op.Method, op.Path),
		})
	}

	var (
		decls []ResponseDeclaration
		used  = make(map[string]bool)
	)
	taken := func(name string) bool {
		if used[name] {
			return true
		}
		_, inTable := s.table.LookupName(name)
		return inTable
	}

	for _, key := range order {
		g := groups[key]
		canonical, declared := s.canonicalResponseName(g)

		if !declared {
			// The shape exists nowhere in the table: declare it
			// structurally under the canonical name.
			first := g.members[0]
			name := naming.Disambiguate(canonical, taken)
			if name != canonical {
				s.warn(NewNameCollisionWarning(canonical, name))
				canonical = name
			}
			used[canonical] = true
			ref := refs[first.opIndex].Responses[first.refIndex]
			decls = append(decls, ResponseDeclaration{
				Name:      canonical,
				Type:      ref.Type,
				Validator: ref.Validator,
			})
		}

		for _, m := range g.members {
			if m.defaultName == canonical {
				refs[m.opIndex].ResponseName = canonical
				continue
			}
			name := naming.Disambiguate(m.defaultName, taken)
			if name != m.defaultName {
				s.warn(NewNameCollisionWarning(m.defaultName, name))
			}
			used[name] = true
			decls = append(decls, ResponseDeclaration{
				Name:     name,
				AliasFor: canonical,
			})
			s.warnings = append(s.warnings, NewResponseAliasedWarning(name, canonical))
			refs[m.opIndex].ResponseName = name
		}
	}

	return decls
}

// canonicalResponseName picks the canonical name for a response group with
// the documented precedence: the author-given component name, then a name
// already in the type table, then the first operation's default name.
// declared reports whether the name is already backed by a table entry.
func (s *synthesizer) canonicalResponseName(g *responseGroup) (name string, declared bool) {
	if componentName, ok := s.cfg.index.Lookup(g.fingerprint, g.schema); ok {
		_, inTable := s.table.LookupName(componentName)
		return componentName, inTable
	}
	if entry, ok := s.table.Lookup(g.fingerprint, g.schema); ok {
		return entry.Name, true
	}
	return g.members[0].defaultName, false
}

// responseRefIndex finds the synthesized ref for a status code.
func responseRefIndex(refs OperationRefs, status int) int {
	for i, r := range refs.Responses {
		if r.Status == status {
			return i
		}
	}
	return -1
}
