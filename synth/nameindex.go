package synth

import (
	"github.com/erraggy/typeforge/forgeerrors"
	"github.com/erraggy/typeforge/schema"
)

// NamedSchema is one entry of a specification's named-schema registry: an
// author-given name bound to a schema fragment. The upstream loader builds
// the registry before reference flattening destroys the name-to-shape
// association.
type NamedSchema struct {
	Name   string
	Schema *schema.Node
}

// NameIndex maps canonical fingerprints to author-given component names. It
// is built once per run and read-only afterwards: the engine consults it so
// that author-named shapes always win over synthesized fallback names.
// Fingerprint hits are verified structurally, so a hash collision never
// attaches an author's name to the wrong shape.
type NameIndex struct {
	byFingerprint map[string][]indexEntry
}

type indexEntry struct {
	name   string
	schema *schema.Node
}

// NewNameIndex returns an empty index. An empty index is valid input for a
// run over a specification without named components.
func NewNameIndex() *NameIndex {
	return &NameIndex{byFingerprint: make(map[string][]indexEntry)}
}

// BuildNameIndex fingerprints every registry entry and records its name.
//
// If two differently-named entries are structurally identical the
// first-registered name wins, by registry iteration order, and a
// component_fingerprint_conflict warning is surfaced. Cyclic registry entries
// cannot be fingerprinted; they are skipped with a warning. A structurally
// broken registry (empty name, nil schema) is fatal and returns a
// *forgeerrors.InputError.
func BuildNameIndex(registry []NamedSchema) (*NameIndex, Warnings, error) {
	ix := NewNameIndex()
	var warnings Warnings

	for i, entry := range registry {
		if entry.Name == "" {
			return nil, nil, &forgeerrors.InputError{
				Index:   i,
				Field:   "name",
				Message: "registry entry has no name",
			}
		}
		if entry.Schema == nil {
			return nil, nil, &forgeerrors.InputError{
				Index:   i,
				Field:   "schema",
				Message: "registry entry '" + entry.Name + "' has no schema",
			}
		}

		fp, err := schema.Fingerprint(entry.Schema)
		if err != nil {
			warnings = append(warnings, NewCyclicSchemaWarning("components."+entry.Name))
			continue
		}

		duplicate := false
		for _, existing := range ix.byFingerprint[fp] {
			if !existing.schema.Equal(entry.Schema) {
				continue
			}
			if existing.name != entry.Name {
				warnings = append(warnings, NewComponentConflictWarning(existing.name, entry.Name, fp))
			}
			duplicate = true
			break
		}
		if !duplicate {
			ix.byFingerprint[fp] = append(ix.byFingerprint[fp], indexEntry{name: entry.Name, schema: entry.Schema})
		}
	}

	return ix, warnings, nil
}

// Lookup returns the author-given name for the shape n under the given
// fingerprint, if any.
func (ix *NameIndex) Lookup(fingerprint string, n *schema.Node) (string, bool) {
	if ix == nil {
		return "", false
	}
	for _, e := range ix.byFingerprint[fingerprint] {
		if e.schema.Equal(n) {
			return e.name, true
		}
	}
	return "", false
}

// Len returns the number of indexed shapes.
func (ix *NameIndex) Len() int {
	if ix == nil {
		return 0
	}
	n := 0
	for _, bucket := range ix.byFingerprint {
		n += len(bucket)
	}
	return n
}
