// Package molgraph_test contains fixtures for molgraph tests.
package molgraph_test

import (
	"testing"

	"github.com/katalvlaran/molbridge/molgraph"
	"github.com/stretchr/testify/require"
)

// Atomic numbers used across tests.
const (
	ZHydrogen = 1
	ZCarbon   = 6
	ZNitrogen = 7
	ZOxygen   = 8
)

// chain builds a linear chain of the given atomic numbers joined by single bonds.
func chain(t *testing.T, zs ...int) *molgraph.Graph {
	t.Helper()
	g := molgraph.NewGraph()
	for i, z := range zs {
		idx := g.AddAtom(molgraph.Atom{AtomicNum: z})
		if i > 0 {
			_, err := g.AddBond(idx-1, idx, molgraph.BondSingle)
			require.NoError(t, err)
		}
	}
	return g
}

// aromaticRing builds an all-aromatic carbon ring of size n.
func aromaticRing(t *testing.T, n int) *molgraph.Graph {
	t.Helper()
	g := molgraph.NewGraph()
	for i := 0; i < n; i++ {
		g.AddAtom(molgraph.Atom{AtomicNum: ZCarbon, IsAromatic: true})
	}
	for i := 0; i < n; i++ {
		_, err := g.AddBond(i, (i+1)%n, molgraph.BondAromatic)
		require.NoError(t, err)
	}
	return g
}
