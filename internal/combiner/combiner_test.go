package combiner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gregmconan/hashgrid/internal/bytesify"
)

func TestCombine_OrderedIsPositionSensitive(t *testing.T) {
	a, _, err := Combine([]any{1, 2, 3}, true)
	require.NoError(t, err)
	b, _, err := Combine([]any{3, 2, 1}, true)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestCombine_UnorderedPermutationsAgree(t *testing.T) {
	perms := [][]any{
		{1, 2, 3},
		{1, 3, 2},
		{2, 1, 3},
		{2, 3, 1},
		{3, 1, 2},
		{3, 2, 1},
	}
	want, _, err := Combine(perms[0], false)
	require.NoError(t, err)
	for _, p := range perms[1:] {
		got, _, err := Combine(p, false)
		require.NoError(t, err)
		assert.Equal(t, want, got, "permutation %v", p)
	}
}

func TestCombine_UnorderedDistinctMultisets(t *testing.T) {
	a, _, err := Combine([]any{1, 1, 2}, false)
	require.NoError(t, err)
	b, _, err := Combine([]any{1, 2, 2}, false)
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "duplicate counts must survive canonicalization")
}

func TestCombine_Deterministic(t *testing.T) {
	first, mat1, err := Combine([]any{"alice", "secret"}, true)
	require.NoError(t, err)
	second, mat2, err := Combine([]any{"alice", "secret"}, true)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, mat1, mat2)
}

func TestCombine_HeterogeneousKeys(t *testing.T) {
	// Unordered canonicalization sorts serialized bytes, not the keys
	// themselves, so non-comparable mixes stay supported.
	a, _, err := Combine([]any{"x", 7, true}, false)
	require.NoError(t, err)
	b, _, err := Combine([]any{true, "x", 7}, false)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCombine_UnserializableKey(t *testing.T) {
	_, _, err := Combine([]any{"ok", map[string]int{}}, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, bytesify.ErrUnsupported)
}

func TestMaterial_FramingIsUnambiguous(t *testing.T) {
	// ("ab","c") and ("a","bc") must not concatenate to the same material.
	pa, err := Serialize([]any{"ab", "c"})
	require.NoError(t, err)
	pb, err := Serialize([]any{"a", "bc"})
	require.NoError(t, err)
	assert.NotEqual(t, Material(pa, false), Material(pb, false))
	assert.NotEqual(t, Material(pa, true), Material(pb, true))
}

func TestCanonicalize_DoesNotMutateInput(t *testing.T) {
	parts, err := Serialize([]any{3, 1, 2})
	require.NoError(t, err)
	orig := make([][]byte, len(parts))
	copy(orig, parts)

	Canonicalize(parts, false)
	assert.Equal(t, orig, parts)
}
