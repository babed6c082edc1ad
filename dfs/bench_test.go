package dfs_test

import (
	"testing"

	"github.com/katalvlaran/molbridge/dfs"
	"github.com/katalvlaran/molbridge/molgraph"
)

// carbonChain builds C-C-...-C with n atoms; ring closes the ends.
func carbonChain(b *testing.B, n int, ring bool) *molgraph.Graph {
	b.Helper()
	g := molgraph.NewGraph(molgraph.WithCapacity(n, n))
	for i := 0; i < n; i++ {
		idx := g.AddAtom(molgraph.Atom{AtomicNum: 6})
		if i > 0 {
			if _, err := g.AddBond(idx-1, idx, molgraph.BondSingle); err != nil {
				b.Fatal(err)
			}
		}
	}
	if ring && n > 2 {
		if _, err := g.AddBond(n-1, 0, molgraph.BondSingle); err != nil {
			b.Fatal(err)
		}
	}

	return g
}

// BenchmarkDFS_Chain10000 walks a 10,000-atom chain from one end.
func BenchmarkDFS_Chain10000(b *testing.B) {
	g := carbonChain(b, 10000, false)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dfs.DFS(g, 0); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRingBonds_Macrocycle classifies the bonds of a 2,000-membered ring.
func BenchmarkRingBonds_Macrocycle(b *testing.B) {
	g := carbonChain(b, 2000, true)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = dfs.RingBonds(g)
	}
}
