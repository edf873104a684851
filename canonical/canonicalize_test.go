package canonical

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeIsKeyOrderInvariant(t *testing.T) {
	a := map[string]interface{}{"b": 1, "a": 2}
	b := map[string]interface{}{"a": 2, "b": 1}

	ca, err := Canonicalize(a)
	require.NoError(t, err)
	cb, err := Canonicalize(b)
	require.NoError(t, err)

	assert.Equal(t, ca, cb)
}

func TestCanonicalizeIsArrayOrderInvariantForSets(t *testing.T) {
	a := map[string]interface{}{"tags": []interface{}{"x", "y"}}
	b := map[string]interface{}{"tags": []interface{}{"y", "x"}}

	ca, err := Canonicalize(a)
	require.NoError(t, err)
	cb, err := Canonicalize(b)
	require.NoError(t, err)

	assert.Equal(t, ca, cb)
}

func TestCanonicalizeIsSensitiveToValueChange(t *testing.T) {
	a := map[string]interface{}{"x": 1}
	b := map[string]interface{}{"x": 2}

	ca, err := Canonicalize(a)
	require.NoError(t, err)
	cb, err := Canonicalize(b)
	require.NoError(t, err)

	assert.NotEqual(t, ca, cb)
}

func TestCanonicalizeIsDeterministic(t *testing.T) {
	doc := map[string]interface{}{
		"id":   "did:peer:zabc",
		"tags": []interface{}{"a", "b", "c"},
		"nested": map[string]interface{}{
			"z": 1,
			"a": 2,
		},
	}

	first, err := Canonicalize(doc)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Canonicalize(doc)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestCanonicalizeHandlesEmptyCollections(t *testing.T) {
	doc := map[string]interface{}{
		"emptyObj": map[string]interface{}{},
		"emptyArr": []interface{}{},
	}
	out, err := Canonicalize(doc)
	require.NoError(t, err)
	assert.Contains(t, string(out), "emptyObj = {}")
	assert.Contains(t, string(out), "emptyArr = []")
}

func TestCanonicalizeHandlesNull(t *testing.T) {
	doc := map[string]interface{}{"x": nil}
	out, err := Canonicalize(doc)
	require.NoError(t, err)
	assert.Contains(t, string(out), "$.x = null")
}
