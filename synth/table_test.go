package synth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/typeforge/forgeerrors"
	"github.com/erraggy/typeforge/schema"
)

func mustFingerprint(t *testing.T, n *schema.Node) string {
	t.Helper()
	fp, err := schema.Fingerprint(n)
	require.NoError(t, err)
	return fp
}

func TestTable_RegisterIdempotent(t *testing.T) {
	table := NewTable()
	n := schema.Object(schema.Prop("id", schema.Number()))
	fp := mustFingerprint(t, n)

	first, created, err := table.Register(&Entry{Name: "Repo", Fingerprint: fp, Schema: n})
	require.NoError(t, err)
	assert.True(t, created)

	// Re-registering the same fingerprint returns the existing entry and
	// ignores the differing name.
	second, created, err := table.Register(&Entry{Name: "Other", Fingerprint: fp, Schema: n})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Same(t, first, second)
	assert.Equal(t, "Repo", second.Name)
	assert.Equal(t, 1, table.Len())
}

func TestTable_NameCollisionSuffixed(t *testing.T) {
	table := NewTable()
	left := schema.Object(schema.Prop("id", schema.Number()))
	right := schema.Object(schema.Prop("uid", schema.String()))

	first, _, err := table.Register(&Entry{Name: "Repo", Fingerprint: mustFingerprint(t, left), Schema: left})
	require.NoError(t, err)
	second, _, err := table.Register(&Entry{Name: "Repo", Fingerprint: mustFingerprint(t, right), Schema: right})
	require.NoError(t, err)

	assert.Equal(t, "Repo", first.Name)
	assert.Equal(t, "Repo2", second.Name)

	got, ok := table.LookupName("Repo2")
	require.True(t, ok)
	assert.Same(t, second, got)
}

func TestTable_FingerprintCollisionKeepsShapesApart(t *testing.T) {
	// Two structurally different shapes arriving under the same fingerprint
	// (a 64-bit hash collision) must both be stored; neither lookup may
	// return the other's entry.
	table := NewTable()
	left := schema.Object(
		schema.Prop("a", schema.String()),
		schema.Prop("b", schema.String()),
	)
	right := schema.Object(schema.Prop("c", schema.Number()))

	first, created, err := table.Register(&Entry{Name: "Model1", Fingerprint: "collide", Schema: left})
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := table.Register(&Entry{Name: "Model2", Fingerprint: "collide", Schema: right})
	require.NoError(t, err)
	assert.True(t, created, "a colliding distinct shape is its own entry")
	assert.NotSame(t, first, second)
	assert.Equal(t, 2, table.Len())

	got, ok := table.Lookup("collide", left)
	require.True(t, ok)
	assert.Same(t, first, got)

	got, ok = table.Lookup("collide", right)
	require.True(t, ok)
	assert.Same(t, second, got)

	_, ok = table.Lookup("collide", schema.Object(schema.Prop("d", schema.Boolean())))
	assert.False(t, ok, "an unregistered shape never matches on fingerprint alone")
}

func TestTable_RegisterAfterFreeze(t *testing.T) {
	table := NewTable()
	table.Freeze()
	assert.True(t, table.Frozen())

	n := schema.Object()
	_, _, err := table.Register(&Entry{Name: "X", Fingerprint: mustFingerprint(t, n), Schema: n})
	assert.True(t, errors.Is(err, forgeerrors.ErrTableFrozen))
}

func TestTable_EntriesOrder(t *testing.T) {
	table := NewTable()
	names := []string{"A", "B", "C"}
	nodes := []*schema.Node{
		schema.Object(schema.Prop("a", schema.String())),
		schema.Object(schema.Prop("b", schema.String())),
		schema.Object(schema.Prop("c", schema.String())),
	}
	for i, n := range nodes {
		_, _, err := table.Register(&Entry{Name: names[i], Fingerprint: mustFingerprint(t, n), Schema: n})
		require.NoError(t, err)
	}

	entries := table.Entries()
	require.Len(t, entries, 3)
	for i, e := range entries {
		assert.Equal(t, names[i], e.Name, "entries must preserve registration order")
	}

	// the returned slice is a copy
	entries[0] = nil
	fresh := table.Entries()
	assert.Equal(t, "A", fresh[0].Name)
}

func TestOriginString(t *testing.T) {
	assert.Equal(t, "component", OriginComponent.String())
	assert.Equal(t, "nested_extraction", OriginNestedExtraction.String())
	assert.Equal(t, "response_extraction", OriginResponseExtraction.String())
	assert.Equal(t, "unknown", Origin(99).String())
}
