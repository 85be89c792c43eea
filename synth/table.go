package synth

import (
	"github.com/erraggy/typeforge/forgeerrors"
	"github.com/erraggy/typeforge/internal/naming"
	"github.com/erraggy/typeforge/schema"
)

// Origin records why a type table entry exists.
type Origin int

const (
	// OriginComponent marks a declaration named by the specification
	// author via the component name index.
	OriginComponent Origin = iota

	// OriginNestedExtraction marks an object hoisted out of a parameter,
	// body, or nested property position.
	OriginNestedExtraction

	// OriginResponseExtraction marks an object hoisted as an operation's
	// response root.
	OriginResponseExtraction
)

// String returns the string representation of the origin.
func (o Origin) String() string {
	switch o {
	case OriginComponent:
		return "component"
	case OriginNestedExtraction:
		return "nested_extraction"
	case OriginResponseExtraction:
		return "response_extraction"
	default:
		return "unknown"
	}
}

// Entry is one declaration in the type table: a unique name bound to a
// schema shape, its declaration body, and the mirrored validator body.
type Entry struct {
	// Name is the unique declaration name.
	Name string
	// Fingerprint is the canonical fingerprint of Schema.
	Fingerprint string
	// Schema is the fragment the declaration was synthesized from.
	Schema *schema.Node
	// Origin records why the entry exists.
	Origin Origin
	// Type is the declaration body (always an inline expression; references
	// to this entry point at Name).
	Type TypeExpr
	// Validator is the declaration's runtime-check body, structurally
	// mirroring Type.
	Validator ValidatorExpr
}

// Table is the run-scoped registry of named declarations, keyed by canonical
// fingerprint. Entries are appended, never mutated or removed; registering a
// shape that is already present is idempotent and returns the existing entry
// unchanged. After Freeze the table is read-only.
//
// A fingerprint is a 64-bit hash, so hits are verified structurally with
// schema.Node.Equal before reuse; distinct shapes that collide on the hash
// stay separate entries.
type Table struct {
	entries       []*Entry
	byFingerprint map[string][]*Entry
	byName        map[string]*Entry
	frozen        bool
}

// NewTable creates an empty type table.
func NewTable() *Table {
	return &Table{
		byFingerprint: make(map[string][]*Entry),
		byName:        make(map[string]*Entry),
	}
}

// Register inserts entry into the table and returns the stored entry.
//
// First-writer-wins: if an entry with the same fingerprint and a structurally
// equal schema already exists it is returned with created=false and the
// candidate (including any differing name) is ignored. A fingerprint hit
// whose schema does not compare equal is a hash collision and is stored as
// its own entry. If the candidate's name is already bound to a different
// shape, it is disambiguated with a numeric suffix; callers can detect the
// rename by comparing the returned entry's Name.
//
// Registering on a frozen table fails with forgeerrors.ErrTableFrozen.
func (t *Table) Register(entry *Entry) (stored *Entry, created bool, err error) {
	if t.frozen {
		return nil, false, &forgeerrors.InputError{
			Index:   -1,
			Message: "register after freeze",
			Cause:   forgeerrors.ErrTableFrozen,
		}
	}
	for _, existing := range t.byFingerprint[entry.Fingerprint] {
		if existing.Schema.Equal(entry.Schema) {
			return existing, false, nil
		}
	}

	entry.Name = naming.Disambiguate(entry.Name, func(candidate string) bool {
		_, taken := t.byName[candidate]
		return taken
	})

	t.entries = append(t.entries, entry)
	t.byFingerprint[entry.Fingerprint] = append(t.byFingerprint[entry.Fingerprint], entry)
	t.byName[entry.Name] = entry
	return entry, true, nil
}

// Lookup returns the entry whose schema structurally matches n under the
// given fingerprint, if any.
func (t *Table) Lookup(fingerprint string, n *schema.Node) (*Entry, bool) {
	for _, e := range t.byFingerprint[fingerprint] {
		if e.Schema.Equal(n) {
			return e, true
		}
	}
	return nil, false
}

// LookupName returns the entry bound to a declaration name, if any.
func (t *Table) LookupName(name string) (*Entry, bool) {
	e, ok := t.byName[name]
	return e, ok
}

// Entries returns the table's entries in registration order. The returned
// slice is a copy; the entries themselves are shared and must not be mutated.
func (t *Table) Entries() []*Entry {
	out := make([]*Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of registered entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Freeze marks the table read-only. Freezing is idempotent.
func (t *Table) Freeze() {
	t.frozen = true
}

// Frozen reports whether the table has been frozen.
func (t *Table) Frozen() bool {
	return t.frozen
}
