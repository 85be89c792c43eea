package schema

import "slices"

// Kind discriminates the variants of the Node tagged union.
type Kind int

const (
	// KindInvalid is the zero value. Nodes of this kind are malformed and
	// degrade to opaque types during synthesis.
	KindInvalid Kind = iota

	// KindPrimitive is a string, number, or boolean.
	KindPrimitive

	// KindEnum is a non-empty ordered sequence of string literals.
	KindEnum

	// KindArray is a homogeneous array with an item schema.
	KindArray

	// KindObject is an ordered property mapping with a required set.
	KindObject
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindEnum:
		return "enum"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}

// Primitive identifies a primitive type.
type Primitive string

const (
	// PrimitiveString is the string primitive.
	PrimitiveString Primitive = "string"
	// PrimitiveNumber is the number primitive. Integer schemas fold into it.
	PrimitiveNumber Primitive = "number"
	// PrimitiveBoolean is the boolean primitive.
	PrimitiveBoolean Primitive = "boolean"
)

// Property is a single named object property. Property order within a Node is
// the source declaration order and is preserved through synthesis.
type Property struct {
	Name   string
	Schema *Node
}

// Node is a schema fragment: one variant of the closed union selected by
// Kind. Nodes are immutable once constructed and must not contain themselves.
type Node struct {
	Kind Kind

	// Primitive is set for KindPrimitive.
	Primitive Primitive

	// Enum is set for KindEnum, in source order.
	Enum []string

	// Items is set for KindArray. A nil Items is a malformed array.
	Items *Node

	// Properties is set for KindObject, in source order. A nil Properties
	// slice is a malformed object; an empty non-nil slice is an object
	// with no properties.
	Properties []Property

	// Required lists the names of required properties. Order is not
	// significant.
	Required []string

	// Nullable marks the fragment as accepting null in addition to its
	// base type.
	Nullable bool
}

// String constructs a string primitive fragment.
func String() *Node {
	return &Node{Kind: KindPrimitive, Primitive: PrimitiveString}
}

// Number constructs a number primitive fragment.
func Number() *Node {
	return &Node{Kind: KindPrimitive, Primitive: PrimitiveNumber}
}

// Boolean constructs a boolean primitive fragment.
func Boolean() *Node {
	return &Node{Kind: KindPrimitive, Primitive: PrimitiveBoolean}
}

// Enum constructs an enum fragment with the given literals in order.
func Enum(values ...string) *Node {
	return &Node{Kind: KindEnum, Enum: values}
}

// Array constructs an array fragment with the given item schema.
func Array(items *Node) *Node {
	return &Node{Kind: KindArray, Items: items}
}

// Object constructs an object fragment with the given properties in order.
// Use Required to mark required property names. An Object with no properties
// has an empty, non-nil property slice so it is distinguishable from a
// malformed object.
func Object(props ...Property) *Node {
	if props == nil {
		props = []Property{}
	}
	return &Node{Kind: KindObject, Properties: props}
}

// Prop constructs a Property for use with Object.
func Prop(name string, s *Node) Property {
	return Property{Name: name, Schema: s}
}

// WithRequired returns a copy of the node with the given required names.
func (n *Node) WithRequired(names ...string) *Node {
	c := *n
	c.Required = names
	return &c
}

// AsNullable returns a copy of the node marked nullable.
func (n *Node) AsNullable() *Node {
	c := *n
	c.Nullable = true
	return &c
}

// Property returns the schema of the named property and whether it exists.
func (n *Node) Property(name string) (*Node, bool) {
	for _, p := range n.Properties {
		if p.Name == name {
			return p.Schema, true
		}
	}
	return nil, false
}

// IsRequired reports whether the named property is in the required set.
func (n *Node) IsRequired(name string) bool {
	for _, r := range n.Required {
		if r == name {
			return true
		}
	}
	return false
}

// Equal reports whether two fragments are structurally identical under the
// same canonical form the fingerprint uses: property order and required order
// are insignificant, enum order and nullability are significant. Equal
// fragments always share a fingerprint; the converse does not hold, since a
// fingerprint is a 64-bit hash and distinct malformed forms can serialize
// alike, so consumers deduplicating on fingerprints verify hits with Equal.
// Cyclic fragments never compare equal, matching their lack of a fingerprint.
func (n *Node) Equal(other *Node) bool {
	return equalNodes(n, other, make(map[nodePair]bool))
}

type nodePair struct{ a, b *Node }

func equalNodes(a, b *Node, visiting map[nodePair]bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	pair := nodePair{a, b}
	if visiting[pair] {
		return false
	}
	visiting[pair] = true
	defer delete(visiting, pair)

	if a.Kind != b.Kind || a.Nullable != b.Nullable {
		return false
	}
	switch a.Kind {
	case KindPrimitive:
		return a.Primitive == b.Primitive
	case KindEnum:
		return slices.Equal(a.Enum, b.Enum)
	case KindArray:
		return equalNodes(a.Items, b.Items, visiting)
	case KindObject:
		if (a.Properties == nil) != (b.Properties == nil) {
			return false
		}
		if len(a.Properties) != len(b.Properties) {
			return false
		}
		if !equalNameSets(a.Required, b.Required) {
			return false
		}
		for _, p := range a.Properties {
			q, ok := b.Property(p.Name)
			if !ok || !equalNodes(p.Schema, q, visiting) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

func equalNameSets(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[string]int, len(a))
	for _, name := range a {
		set[name]++
	}
	for _, name := range b {
		if set[name] == 0 {
			return false
		}
		set[name]--
	}
	return true
}
