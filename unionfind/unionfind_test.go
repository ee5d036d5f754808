package unionfind_test

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpart/unionfind"
)

func sum(a, b uint64) uint64 { return a + b }

// TestFromKeys_Empty verifies an empty structure has no groups.
func TestFromKeys_Empty(t *testing.T) {
	uf := unionfind.FromKeys(slices.Values([]int{}))
	assert.Equal(t, 0, uf.Groups())
	assert.Equal(t, 0, uf.Len())

	withMeta := unionfind.FromInitializers(sum, maps.All(map[int]uint64{}))
	assert.Equal(t, 0, withMeta.Groups())
}

// TestFind_Singletons verifies every key starts as its own root.
func TestFind_Singletons(t *testing.T) {
	uf := unionfind.FromKeys(slices.Values([]int{0, 1}))
	assert.Equal(t, 2, uf.Groups())
	for _, k := range []int{0, 1} {
		r, err := uf.Find(k)
		require.NoError(t, err)
		assert.Equal(t, k, r)
	}
}

// TestUnion_Groups verifies group counting across unions.
func TestUnion_Groups(t *testing.T) {
	uf := unionfind.FromKeys(slices.Values([]int{0, 1, 2, 3}))

	_, err := uf.Union(0, 1)
	require.NoError(t, err)
	_, err = uf.Union(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, uf.Groups())

	_, err = uf.Union(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, uf.Groups(), "re-joining a group is a no-op")

	root, err := uf.Union(1, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, uf.Groups())
	for k := 0; k < 4; k++ {
		r, err := uf.Root(k)
		require.NoError(t, err)
		assert.Equal(t, root, r)
	}
	size, err := uf.Size(2)
	require.NoError(t, err)
	assert.Equal(t, 4, size)
	assert.Len(t, uf.Roots(), 1)
}

// TestMetadata_Merges verifies metadata follows unions.
func TestMetadata_Merges(t *testing.T) {
	uf := unionfind.FromInitializers(sum, func(yield func(int, uint64) bool) {
		for k := 0; k < 3; k++ {
			if !yield(k, uint64(k+1)) {
				return
			}
		}
	})
	m, err := uf.Metadata(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), m)

	_, err = uf.Union(0, 1)
	require.NoError(t, err)
	m, err = uf.Metadata(1)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), m)

	_, err = uf.Union(2, 0)
	require.NoError(t, err)
	m, err = uf.Metadata(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(6), m)

	require.NoError(t, uf.SetMetadata(2, 100))
	m, err = uf.Metadata(1)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), m)
}

// TestUnknownKey verifies every lookup reports ErrUnknownKey.
func TestUnknownKey(t *testing.T) {
	uf := unionfind.New[string, int](nil)
	assert.True(t, uf.Add("a", 1))
	assert.False(t, uf.Add("a", 2), "duplicate add is rejected")

	_, err := uf.Find("zz")
	assert.ErrorIs(t, err, unionfind.ErrUnknownKey)
	_, err = uf.Union("a", "zz")
	assert.ErrorIs(t, err, unionfind.ErrUnknownKey)
	_, err = uf.Metadata("zz")
	assert.ErrorIs(t, err, unionfind.ErrUnknownKey)
	assert.ErrorIs(t, uf.SetMetadata("zz", 0), unionfind.ErrUnknownKey)
	_, err = uf.Same("a", "zz")
	assert.ErrorIs(t, err, unionfind.ErrUnknownKey)

	m, err := uf.Metadata("a")
	require.NoError(t, err)
	assert.Equal(t, 1, m)
}

// TestFind_LongChain verifies path halving keeps results correct on a
// long union chain.
func TestFind_LongChain(t *testing.T) {
	const n = 1000
	keys := make([]int, n)
	for i := range keys {
		keys[i] = i
	}
	uf := unionfind.FromKeys(slices.Values(keys))
	for i := 1; i < n; i++ {
		_, err := uf.Union(i-1, i)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, uf.Groups())
	for i := 0; i < n; i += 97 {
		same, err := uf.Same(0, i)
		require.NoError(t, err)
		assert.True(t, same)
	}
	assert.Len(t, slices.Collect(uf.Keys()), n)
}
