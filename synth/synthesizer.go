package synth

import (
	"errors"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/erraggy/typeforge/forgeerrors"
	"github.com/erraggy/typeforge/internal/naming"
	"github.com/erraggy/typeforge/schema"
)

// synthesizer carries the exclusive state of one synthesis run: the type
// table, the fallback name counter, the fingerprint cache, and the warning
// accumulator. It is never shared across runs, which keeps concurrent
// generation requests fully isolated.
type synthesizer struct {
	cfg      *config
	table    *Table
	warnings Warnings
	counter  int

	// fpCache memoizes fingerprints by node identity. Nodes are immutable
	// by contract, so identity keying is sound; shared subtrees are
	// fingerprinted once instead of re-serialized at every use site.
	fpCache *lru.Cache[*schema.Node, string]

	// visiting guards the recursive walk against inline cycles that never
	// reach a fingerprinting point.
	visiting map[*schema.Node]bool
}

func newSynthesizer(cfg *config) (*synthesizer, error) {
	cache, err := lru.New[*schema.Node, string](cfg.fpCacheSize)
	if err != nil {
		return nil, err
	}
	return &synthesizer{
		cfg:      cfg,
		table:    NewTable(),
		fpCache:  cache,
		visiting: make(map[*schema.Node]bool),
	}, nil
}

func (s *synthesizer) warn(w *Warning) {
	s.warnings = append(s.warnings, w)
	s.cfg.logger.Warn(w.Message, "category", string(w.Category), "path", w.Path)
}

// fingerprint computes or recalls the canonical fingerprint of n.
func (s *synthesizer) fingerprint(n *schema.Node) (string, error) {
	if fp, ok := s.fpCache.Get(n); ok {
		return fp, nil
	}
	fp, err := schema.Fingerprint(n)
	if err != nil {
		return "", err
	}
	s.fpCache.Add(n, fp)
	return fp, nil
}

// shouldExtract implements the hoisting policy for object schemas: hoist when
// the object has at least threshold properties, or its fingerprint carries an
// author-given name, or the shape is already declared in the table.
func (s *synthesizer) shouldExtract(n *schema.Node, fingerprint string) bool {
	if n.Kind != schema.KindObject {
		return false
	}
	if len(n.Properties) >= s.cfg.threshold {
		return true
	}
	if _, ok := s.cfg.index.Lookup(fingerprint, n); ok {
		return true
	}
	if _, ok := s.table.Lookup(fingerprint, n); ok {
		return true
	}
	return false
}

// unknownExpr is the degraded pair for malformed and cyclic fragments.
func unknownExpr() (TypeExpr, ValidatorExpr) {
	return TypeExpr{Kind: ExprUnknown}, ValidatorExpr{Kind: ExprUnknown}
}

// synthesize transforms a fragment into a type expression and its mirrored
// validator expression in a single walk, so that hoisting decisions and
// declaration names are shared by construction.
//
// preferredName and origin apply only when the fragment itself is an object
// that gets hoisted: response roots pass their default response name and
// OriginResponseExtraction, every other call site passes "" and
// OriginNestedExtraction. Author-given component names still win over the
// preferred name.
func (s *synthesizer) synthesize(n *schema.Node, path, preferredName string, origin Origin) (TypeExpr, ValidatorExpr) {
	if n == nil {
		s.warn(NewMalformedSchemaWarning(path, "missing schema"))
		return unknownExpr()
	}
	if s.visiting[n] {
		s.warn(NewCyclicSchemaWarning(path))
		return unknownExpr()
	}
	s.visiting[n] = true
	defer delete(s.visiting, n)

	switch n.Kind {
	case schema.KindPrimitive:
		return TypeExpr{Kind: ExprPrimitive, Primitive: n.Primitive, Nullable: n.Nullable},
			ValidatorExpr{Kind: ExprPrimitive, Primitive: n.Primitive, Nullable: n.Nullable}

	case schema.KindEnum:
		return s.synthesizeEnum(n, path)

	case schema.KindArray:
		return s.synthesizeArray(n, path)

	case schema.KindObject:
		return s.synthesizeObject(n, path, preferredName, origin)

	default:
		s.warn(NewMalformedSchemaWarning(path, "unrecognized schema kind"))
		return unknownExpr()
	}
}

// synthesizeEnum produces an inline literal union, preserving source order
// and dropping duplicate literals. An empty enum degrades to a plain string.
func (s *synthesizer) synthesizeEnum(n *schema.Node, path string) (TypeExpr, ValidatorExpr) {
	if len(n.Enum) == 0 {
		s.warn(NewEmptyEnumWarning(path))
		return TypeExpr{Kind: ExprPrimitive, Primitive: schema.PrimitiveString, Nullable: n.Nullable},
			ValidatorExpr{Kind: ExprPrimitive, Primitive: schema.PrimitiveString, Nullable: n.Nullable}
	}

	seen := make(map[string]bool, len(n.Enum))
	values := make([]string, 0, len(n.Enum))
	for _, v := range n.Enum {
		if seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}

	return TypeExpr{Kind: ExprEnum, Enum: values, Nullable: n.Nullable},
		ValidatorExpr{Kind: ExprEnum, Enum: values, Nullable: n.Nullable}
}

// synthesizeArray synthesizes the item schema first; item objects passing the
// extraction policy hoist through the recursive call, so arrays of named
// types reference the name rather than duplicating structure.
func (s *synthesizer) synthesizeArray(n *schema.Node, path string) (TypeExpr, ValidatorExpr) {
	if n.Items == nil {
		s.warn(NewMalformedSchemaWarning(path, "array missing items"))
		return unknownExpr()
	}

	elemType, elemCheck := s.synthesize(n.Items, path+".items", "", OriginNestedExtraction)
	return TypeExpr{Kind: ExprArray, Elem: &elemType, Nullable: n.Nullable},
		ValidatorExpr{Kind: ExprArray, Elem: &elemCheck, Nullable: n.Nullable}
}

// synthesizeObject either hoists the object to a named declaration and
// returns a reference pair, or builds the inline field expressions.
func (s *synthesizer) synthesizeObject(n *schema.Node, path, preferredName string, origin Origin) (TypeExpr, ValidatorExpr) {
	if n.Properties == nil {
		s.warn(NewMalformedSchemaWarning(path, "object missing properties"))
		return unknownExpr()
	}

	fp, err := s.fingerprint(n)
	if err != nil {
		if errors.Is(err, forgeerrors.ErrCyclicSchema) {
			// A cyclic shape cannot be fingerprinted or hoisted, but the
			// acyclic remainder is still usable: synthesize inline and
			// let the revisit check degrade exactly the offending field.
			return s.synthesizeFields(n, path)
		}
		s.warn(NewMalformedSchemaWarning(path, err.Error()))
		return unknownExpr()
	}

	if !s.shouldExtract(n, fp) {
		return s.synthesizeFields(n, path)
	}

	// Reuse before building: the shape may already be declared.
	if existing, ok := s.table.Lookup(fp, n); ok {
		return TypeExpr{Kind: ExprReference, Ref: existing.Name},
			ValidatorExpr{Kind: ExprReference, Ref: existing.Name}
	}

	// Bottom-up: property types are synthesized before the declaration is
	// registered, so innermost objects get their names first.
	body, checks := s.synthesizeFields(n, path)

	name, entryOrigin := s.chooseName(n, fp, preferredName, origin)
	entry, created, regErr := s.table.Register(&Entry{
		Name:        name,
		Fingerprint: fp,
		Schema:      n,
		Origin:      entryOrigin,
		Type:        body,
		Validator:   checks,
	})
	if regErr != nil {
		// Register only fails on a frozen table, which the single-pass
		// lifecycle rules out while operations are still being walked.
		s.warn(NewMalformedSchemaWarning(path, regErr.Error()))
		return unknownExpr()
	}
	if created && entry.Name != name {
		s.warn(NewNameCollisionWarning(name, entry.Name))
	}
	if created {
		s.cfg.logger.Debug("registered declaration",
			"name", entry.Name, "fingerprint", fp, "origin", entryOrigin.String(), "path", path)
	}

	return TypeExpr{Kind: ExprReference, Ref: entry.Name},
		ValidatorExpr{Kind: ExprReference, Ref: entry.Name}
}

// chooseName resolves the declaration name for a new extraction: the
// author-given component name when the shape is indexed, else the caller's
// preferred name, else a synthesized fallback from the run counter.
func (s *synthesizer) chooseName(n *schema.Node, fingerprint, preferredName string, origin Origin) (string, Origin) {
	if name, ok := s.cfg.index.Lookup(fingerprint, n); ok {
		return name, OriginComponent
	}
	if preferredName != "" {
		return preferredName, origin
	}
	s.counter++
	return naming.FallbackName(s.counter), origin
}

// synthesizeFields builds the inline object expression pair with optionality
// markers derived from the required set, preserving source property order.
func (s *synthesizer) synthesizeFields(n *schema.Node, path string) (TypeExpr, ValidatorExpr) {
	fields := make([]Field, 0, len(n.Properties))
	checks := make([]FieldCheck, 0, len(n.Properties))

	for _, p := range n.Properties {
		propType, propCheck := s.synthesize(p.Schema, path+".properties."+p.Name, "", OriginNestedExtraction)
		optional := !n.IsRequired(p.Name)
		fields = append(fields, Field{Name: p.Name, Optional: optional, Type: propType})
		checks = append(checks, FieldCheck{Name: p.Name, Optional: optional, Check: propCheck})
	}

	return TypeExpr{Kind: ExprObject, Fields: fields, Nullable: n.Nullable},
		ValidatorExpr{Kind: ExprObject, Fields: checks, Nullable: n.Nullable}
}
