package schema

import (
	"fmt"
	"hash"
	"hash/fnv"
	"sort"

	"github.com/erraggy/typeforge/forgeerrors"
)

// Fingerprint computes the canonical structural fingerprint of a fragment.
// Structurally equal fragments always produce identical fingerprints,
// regardless of property insertion order or required-list order: the
// canonical form serializes properties and required names sorted, with an
// explicit type tag per variant. Enum literal order is significant and is
// hashed as-is. Every string in the canonical form is length-prefixed, so a
// property name or enum literal cannot forge structure boundaries.
//
// Equal fingerprints are a 64-bit hash match, not proof of structural
// equality; consumers that dedupe on fingerprints verify hits with
// Node.Equal.
//
// A fragment reachable from itself cannot be finitely serialized; in that
// case Fingerprint returns a *forgeerrors.SchemaError matching
// forgeerrors.ErrCyclicSchema. Callers are expected to degrade the offending
// subtree rather than treat this as fatal.
func Fingerprint(n *Node) (string, error) {
	f := fingerprinter{visited: make(map[*Node]bool)}
	hasher := fnv.New64a()
	if err := f.write(hasher, n); err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

type fingerprinter struct {
	visited map[*Node]bool
}

// write serializes the canonical form of n into hasher.
func (f *fingerprinter) write(hasher hash.Hash64, n *Node) error {
	if n == nil {
		f.writeString(hasher, "!missing")
		return nil
	}
	if f.visited[n] {
		return &forgeerrors.SchemaError{
			IsCircular: true,
			Message:    "fragment is reachable from itself",
		}
	}
	f.visited[n] = true
	defer func() { f.visited[n] = false }()

	switch n.Kind {
	case KindPrimitive:
		f.writeString(hasher, "primitive:")
		f.writeString(hasher, string(n.Primitive))
	case KindEnum:
		// Order matters
		f.writeString(hasher, "enum:")
		for _, v := range n.Enum {
			f.writeString(hasher, "v=")
			f.writeString(hasher, v)
		}
	case KindArray:
		f.writeString(hasher, "array:")
		if err := f.write(hasher, n.Items); err != nil {
			return err
		}
	case KindObject:
		f.writeString(hasher, "object:")
		if err := f.writeProperties(hasher, n.Properties); err != nil {
			return err
		}
		f.writeRequired(hasher, n.Required)
	default:
		f.writeString(hasher, "!invalid")
	}

	if n.Nullable {
		f.writeString(hasher, "nullable:true")
	}
	return nil
}

// writeProperties serializes properties sorted by name so that insertion
// order never leaks into the fingerprint.
func (f *fingerprinter) writeProperties(hasher hash.Hash64, props []Property) error {
	if len(props) == 0 {
		return nil
	}
	sorted := make([]Property, len(props))
	copy(sorted, props)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	f.writeString(hasher, "properties:")
	for _, p := range sorted {
		f.writeString(hasher, p.Name)
		f.writeString(hasher, "=")
		if err := f.write(hasher, p.Schema); err != nil {
			return err
		}
	}
	return nil
}

// writeRequired serializes the required set sorted for order-independence.
func (f *fingerprinter) writeRequired(hasher hash.Hash64, required []string) {
	if len(required) == 0 {
		return
	}
	sorted := make([]string, len(required))
	copy(sorted, required)
	sort.Strings(sorted)

	f.writeString(hasher, "required:")
	for _, r := range sorted {
		f.writeString(hasher, r)
	}
}

// writeString writes a length-prefixed string to the hash. The prefix frames
// every token so concatenation is unambiguous.
func (f *fingerprinter) writeString(hasher hash.Hash64, s string) {
	_, _ = fmt.Fprintf(hasher, "%d;", len(s))
	_, _ = hasher.Write([]byte(s))
}
