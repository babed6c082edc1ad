package bfs_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/molbridge/bfs"
	"github.com/katalvlaran/molbridge/molgraph"
	"github.com/stretchr/testify/require"
)

// build creates an all-carbon graph with n atoms and the given single bonds.
func build(t *testing.T, n int, bonds ...[2]int) *molgraph.Graph {
	t.Helper()
	g := molgraph.NewGraph()
	for i := 0; i < n; i++ {
		g.AddAtom(molgraph.Atom{AtomicNum: 6})
	}
	for _, b := range bonds {
		_, err := g.AddBond(b[0], b[1], molgraph.BondSingle)
		require.NoError(t, err)
	}
	return g
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	g := build(t, 1)
	_, err = bfs.BFS(g, 3)
	require.ErrorIs(t, err, bfs.ErrStartNotFound)

	_, err = bfs.BFS(g, 0, bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_Depths(t *testing.T) {
	// square 0-1-2-3-0 plus tail 2-4
	g := build(t, 5, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 0}, [2]int{2, 4})
	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 3, 2, 4}, res.Order)
	require.Equal(t, []int{0, 1, 2, 1, 3}, res.Depth)
	require.Equal(t, []int{-1, 0, 1, 0, 2}, res.Parent)
}

func TestBFS_MaxDepthAndFilter(t *testing.T) {
	g := build(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3})
	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, res.Order)

	res, err = bfs.BFS(g, 0, bfs.WithFilterNeighbor(func(_, nb int) bool { return nb != 2 }))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, res.Order)
	require.Equal(t, -1, res.Depth[3])
}

func TestBFS_HookError(t *testing.T) {
	g := build(t, 2, [2]int{0, 1})
	stop := errors.New("stop")
	_, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(idx, _ int) error {
		if idx == 1 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
}

func TestComponents(t *testing.T) {
	g := build(t, 5, [2]int{0, 3}, [2]int{1, 4})
	require.Equal(t, [][]int{{0, 3}, {1, 4}, {2}}, bfs.Components(g))
	require.Nil(t, bfs.Components(nil))
	require.Nil(t, bfs.Components(molgraph.NewGraph()))
}
