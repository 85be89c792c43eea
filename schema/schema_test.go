package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	assert.Equal(t, KindPrimitive, String().Kind)
	assert.Equal(t, PrimitiveString, String().Primitive)
	assert.Equal(t, PrimitiveNumber, Number().Primitive)
	assert.Equal(t, PrimitiveBoolean, Boolean().Primitive)

	e := Enum("a", "b")
	assert.Equal(t, KindEnum, e.Kind)
	assert.Equal(t, []string{"a", "b"}, e.Enum)

	a := Array(String())
	assert.Equal(t, KindArray, a.Kind)
	require.NotNil(t, a.Items)

	o := Object()
	assert.Equal(t, KindObject, o.Kind)
	assert.NotNil(t, o.Properties, "Object() must build an empty object, not a malformed one")
}

func TestWithRequiredAndAsNullable_CopySemantics(t *testing.T) {
	base := Object(Prop("id", Number()))

	req := base.WithRequired("id")
	assert.Empty(t, base.Required, "WithRequired must not mutate the receiver")
	assert.Equal(t, []string{"id"}, req.Required)

	nullable := base.AsNullable()
	assert.False(t, base.Nullable, "AsNullable must not mutate the receiver")
	assert.True(t, nullable.Nullable)
}

func TestNodeProperty(t *testing.T) {
	n := Object(
		Prop("id", Number()),
		Prop("name", String()),
	).WithRequired("id")

	got, ok := n.Property("name")
	require.True(t, ok)
	assert.Equal(t, PrimitiveString, got.Primitive)

	_, ok = n.Property("missing")
	assert.False(t, ok)

	assert.True(t, n.IsRequired("id"))
	assert.False(t, n.IsRequired("name"))
}

func TestNodeEqual(t *testing.T) {
	tests := []struct {
		name string
		a    *Node
		b    *Node
		want bool
	}{
		{"both nil", nil, nil, true},
		{"one nil", String(), nil, false},
		{"same primitive", String(), String(), true},
		{"different primitive", String(), Number(), false},
		{"nullable differs", String(), String().AsNullable(), false},
		{"enum order significant", Enum("a", "b"), Enum("b", "a"), false},
		{"enum equal", Enum("a", "b"), Enum("a", "b"), true},
		{"array of equal items", Array(Number()), Array(Number()), true},
		{"array item differs", Array(Number()), Array(String()), false},
		{
			"property order insignificant",
			Object(Prop("id", Number()), Prop("name", String())),
			Object(Prop("name", String()), Prop("id", Number())),
			true,
		},
		{
			"required order insignificant",
			Object(Prop("id", Number()), Prop("name", String())).WithRequired("id", "name"),
			Object(Prop("id", Number()), Prop("name", String())).WithRequired("name", "id"),
			true,
		},
		{
			"required set differs",
			Object(Prop("id", Number())).WithRequired("id"),
			Object(Prop("id", Number())),
			false,
		},
		{
			"empty object vs malformed object",
			Object(),
			&Node{Kind: KindObject},
			false,
		},
		{"both invalid", &Node{}, &Node{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
			assert.Equal(t, tt.want, tt.b.Equal(tt.a))
		})
	}
}

func TestNodeEqual_EqualImpliesSharedFingerprint(t *testing.T) {
	pairs := [][2]*Node{
		{
			Object(Prop("id", Number()), Prop("name", String())).WithRequired("id", "name"),
			Object(Prop("name", String()), Prop("id", Number())).WithRequired("name", "id"),
		},
		{Enum("a", "b"), Enum("a", "b")},
		{Array(String().AsNullable()), Array(String().AsNullable())},
	}
	for _, p := range pairs {
		require.True(t, p[0].Equal(p[1]))
		left, err := Fingerprint(p[0])
		require.NoError(t, err)
		right, err := Fingerprint(p[1])
		require.NoError(t, err)
		assert.Equal(t, left, right)
	}
}

func TestNodeEqual_CyclicNeverEqual(t *testing.T) {
	mk := func() *Node {
		n := &Node{Kind: KindObject, Properties: []Property{}}
		n.Properties = append(n.Properties, Property{Name: "self", Schema: n})
		return n
	}
	assert.False(t, mk().Equal(mk()))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "primitive", KindPrimitive.String())
	assert.Equal(t, "enum", KindEnum.String())
	assert.Equal(t, "array", KindArray.String())
	assert.Equal(t, "object", KindObject.String())
	assert.Equal(t, "invalid", KindInvalid.String())
	assert.Equal(t, "invalid", Kind(99).String())
}
