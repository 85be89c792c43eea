package synth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/typeforge/forgeerrors"
	"github.com/erraggy/typeforge/schema"
)

func TestSynthesize_FatalInput(t *testing.T) {
	tests := []struct {
		name    string
		ops     []Operation
		wantMsg string
	}{
		{
			name:    "operation without identity",
			ops:     []Operation{{}},
			wantMsg: "no id, method, or path",
		},
		{
			name: "duplicate operation id",
			ops: []Operation{
				{ID: "getRepo"},
				{ID: "getRepo"},
			},
			wantMsg: "duplicate operation 'getRepo'",
		},
		{
			name: "duplicate method and path",
			ops: []Operation{
				{Method: "GET", Path: "/repos"},
				{Method: "GET", Path: "/repos"},
			},
			wantMsg: "duplicate operation 'GET /repos'",
		},
		{
			name: "unnamed parameter",
			ops: []Operation{
				{ID: "getRepo", Parameters: []Parameter{{Schema: schema.String()}}},
			},
			wantMsg: "unnamed parameter",
		},
		{
			name: "status below range",
			ops: []Operation{
				{ID: "getRepo", Responses: []Response{{Status: 99, Schema: schema.String()}}},
			},
			wantMsg: "invalid status 99",
		},
		{
			name: "status above range",
			ops: []Operation{
				{ID: "getRepo", Responses: []Response{{Status: 600}}},
			},
			wantMsg: "invalid status 600",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Synthesize(tt.ops)
			require.Error(t, err)
			assert.Nil(t, result, "fatal input produces no partial output")
			assert.True(t, errors.Is(err, forgeerrors.ErrInput))

			var inputErr *forgeerrors.InputError
			require.ErrorAs(t, err, &inputErr)
			assert.Contains(t, inputErr.Message, tt.wantMsg)
		})
	}
}

func TestSynthesize_EmptyInput(t *testing.T) {
	result, err := Synthesize(nil)
	require.NoError(t, err)
	assert.Empty(t, result.Declarations)
	assert.Empty(t, result.Responses)
	assert.Empty(t, result.Operations)
	assert.Empty(t, result.Warnings)
}

func TestSynthesize_MethodPathIdentity(t *testing.T) {
	ops := []Operation{{
		Method: "GET",
		Path:   "/repos/{owner}",
		Responses: []Response{
			{Status: 200, Schema: ownerSchema()},
		},
	}}

	result, err := Synthesize(ops)
	require.NoError(t, err)

	assert.Equal(t, "GET /repos/{owner}", result.Operations[0].OperationID)
	assert.Equal(t, "GetReposByOwnerResponse", result.Operations[0].ResponseName)
	findDecl(t, result, "GetReposByOwnerResponse")
}

func TestSynthesize_ParameterAndBodyRefs(t *testing.T) {
	ops := []Operation{{
		ID: "createRepo",
		Parameters: []Parameter{
			{Name: "owner", Schema: schema.String()},
			{Name: "perPage", Schema: schema.Number()},
		},
		RequestBody: ownerSchema(),
	}}

	result, err := Synthesize(ops)
	require.NoError(t, err)

	refs := result.Operations[0]
	require.Len(t, refs.Parameters, 2)
	assert.Equal(t, "owner", refs.Parameters[0].Name)
	assert.Equal(t, ExprPrimitive, refs.Parameters[0].Type.Kind)
	assert.Equal(t, schema.PrimitiveString, refs.Parameters[0].Type.Primitive)

	require.NotNil(t, refs.RequestBody)
	assert.Equal(t, ExprReference, refs.RequestBody.Type.Kind)
	assert.Equal(t, "Model1", refs.RequestBody.Type.Ref)
	assert.Equal(t, "Model1", refs.RequestBody.Validator.Ref)

	// body extraction is a plain nested extraction, never a response name
	decl := findDecl(t, result, "Model1")
	assert.Equal(t, OriginNestedExtraction, decl.Origin)
	assert.Empty(t, refs.ResponseName)
}
