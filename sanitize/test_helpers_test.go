// Package sanitize_test contains fixtures for sanitize tests.
package sanitize_test

import (
	"testing"

	"github.com/katalvlaran/molbridge/molgraph"
	"github.com/stretchr/testify/require"
)

const (
	ZHydrogen = 1
	ZCarbon   = 6
	ZNitrogen = 7
	ZOxygen   = 8
)

// ring builds a ring of n atoms with the given element, aromatic flag and bond type.
func ring(t *testing.T, n, z int, aromatic bool, bt molgraph.BondType) *molgraph.Graph {
	t.Helper()
	g := molgraph.NewGraph()
	for i := 0; i < n; i++ {
		g.AddAtom(molgraph.Atom{AtomicNum: z, IsAromatic: aromatic})
	}
	for i := 0; i < n; i++ {
		_, err := g.AddBond(i, (i+1)%n, bt)
		require.NoError(t, err)
	}
	return g
}

// bond adds a bond and fails the test on error.
func bond(t *testing.T, g *molgraph.Graph, a, b int, bt molgraph.BondType) {
	t.Helper()
	_, err := g.AddBond(a, b, bt)
	require.NoError(t, err)
}
