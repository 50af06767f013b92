package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArena_CoverCountsIDsBelow(t *testing.T) {
	a := NewArena()
	a.Insert("hello", 1)
	a.Insert("hell", 2)
	a.Insert("hi", 3)

	h := a.nodes[rootRef].children[symbolIndex('h')]
	e := a.nodes[h].children[symbolIndex('e')]
	i := a.nodes[h].children[symbolIndex('i')]

	assert.Equal(t, int32(3), a.nodes[rootRef].cover)
	assert.Equal(t, int32(3), a.nodes[h].cover)
	assert.Equal(t, int32(2), a.nodes[e].cover)
	assert.Equal(t, int32(1), a.nodes[i].cover)
	requireInvariants(t, a)
}

func TestArena_OverwriteKeepsCover(t *testing.T) {
	a := NewArena()
	a.Insert("ab", 1)
	a.Insert("ab", 2)
	a.Insert("ab", 3)

	assert.Equal(t, 1, a.Len())
	requireInvariants(t, a)

	require.True(t, a.Delete("ab"))
	assert.Equal(t, 0, a.Len())
	assert.Equal(t, 1, a.NodeCount())
}

func TestArena_FailedDeleteLeavesCovers(t *testing.T) {
	a := NewArena()
	a.Insert("hello", 1)
	nodes := append([]arenaNode(nil), a.nodes...)

	// "hell" exists only as a prefix; "helm" breaks off the path.
	require.False(t, a.Delete("hell"))
	require.False(t, a.Delete("helm"))
	require.Equal(t, nodes, a.nodes)
	require.Empty(t, a.free)
}

func TestArena_ReusesReleasedSlots(t *testing.T) {
	a := NewArena()
	a.Insert("abc", 1)
	require.Len(t, a.nodes, 4)

	require.True(t, a.Delete("abc"))
	require.Len(t, a.free, 3)
	assert.Equal(t, 1, a.NodeCount())

	a.Insert("xyz", 2)
	assert.Len(t, a.nodes, 4)
	assert.Empty(t, a.free)
	requireID(t, a, "xyz", 2)
	requireAbsent(t, a, "abc")
	requireInvariants(t, a)

	for round := 0; round < 50; round++ {
		a.Insert("pqrs", int32(round))
		require.True(t, a.Delete("pqrs"))
	}
	assert.LessOrEqual(t, len(a.nodes), 8)
}

func TestArena_ReleasedSlotsComeBackClean(t *testing.T) {
	a := NewArena()
	a.Insert("ab", 1)
	a.Insert("abc", 2)
	require.True(t, a.Delete("abc"))
	require.True(t, a.Delete("ab"))

	a.Insert("q", 5)
	requireAbsent(t, a, "qc")
	requireAbsent(t, a, "qb")
	requireID(t, a, "q", 5)
	requireInvariants(t, a)
}

func TestArena_WithCapacity(t *testing.T) {
	a := NewArena(WithCapacity(64))
	assert.GreaterOrEqual(t, cap(a.nodes), 64)
	assert.Equal(t, 1, a.NodeCount())

	a = NewArena(WithCapacity(-3))
	assert.Equal(t, 1, a.NodeCount())
}
