package dfs_test

import (
	"testing"

	"github.com/katalvlaran/molbridge/dfs"
	"github.com/stretchr/testify/require"
)

func TestRingBonds_RingWithTail(t *testing.T) {
	// triangle 0-1-2 with tail 2-3
	g := build(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0}, [2]int{2, 3})
	ring := dfs.RingBonds(g)
	require.True(t, ring[dfs.NewAtomPair(1, 0)])
	require.True(t, ring[dfs.NewAtomPair(1, 2)])
	require.True(t, ring[dfs.NewAtomPair(0, 2)])
	require.False(t, ring[dfs.NewAtomPair(2, 3)])
	require.Equal(t, []bool{true, true, true, false}, dfs.RingAtoms(g))
}

func TestCycleRank(t *testing.T) {
	require.Equal(t, 0, dfs.CycleRank(build(t, 3, [2]int{0, 1}, [2]int{1, 2})))
	// two fused rings (bicyclo): square with a diagonal
	g := build(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 0}, [2]int{0, 2})
	require.Equal(t, 2, dfs.CycleRank(g))
	// disconnected ring + atom
	g2 := build(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0})
	require.Equal(t, 1, dfs.CycleRank(g2))
	require.Equal(t, 0, dfs.CycleRank(nil))
}
