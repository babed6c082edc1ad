package sanitize_test

import (
	"testing"

	"github.com/katalvlaran/molbridge/molgraph"
	"github.com/katalvlaran/molbridge/sanitize"
	"github.com/stretchr/testify/require"
)

// TestSanitize_Benzene verifies a clean aromatic ring passes and gets SP2 atoms.
func TestSanitize_Benzene(t *testing.T) {
	g := ring(t, 6, ZCarbon, true, molgraph.BondAromatic)

	require.NoError(t, sanitize.Sanitize(g))
	for _, a := range g.Atoms() {
		require.Equal(t, molgraph.HybridSP2, a.Hybridization)
		require.Equal(t, 1, a.TotalNumHs())
	}
	require.False(t, g.Stale())
}

// TestSanitize_Pyrrole verifies the [nH] atom is not a double-bond candidate.
func TestSanitize_Pyrrole(t *testing.T) {
	g := ring(t, 5, ZCarbon, true, molgraph.BondAromatic)
	n, err := g.Atom(3)
	require.NoError(t, err)
	n.AtomicNum, n.NumExplicitHs, n.NoImplicit = ZNitrogen, 1, true

	require.NoError(t, sanitize.Sanitize(g))
	require.Empty(t, sanitize.Detect(g))
}

// TestSanitize_OddAromaticRing verifies a five-carbon aromatic ring fails Kekulé assignment.
func TestSanitize_OddAromaticRing(t *testing.T) {
	g := ring(t, 5, ZCarbon, true, molgraph.BondAromatic)

	err := sanitize.Sanitize(g)
	require.ErrorIs(t, err, sanitize.ErrSanitize)
	var p *sanitize.Problem
	require.ErrorAs(t, err, &p)
	require.Equal(t, sanitize.TypeKekulize, p.Type)
	require.Equal(t, []int{0, 1, 2, 3, 4}, p.Atoms)
	require.False(t, p.AtomScoped())
	require.Equal(t, "Can't kekulize mol.  Unkekulized atoms: 0 1 2 3 4", p.Error())
}

// TestSanitize_Valence verifies pentavalent carbon is reported at its index.
func TestSanitize_Valence(t *testing.T) {
	g := molgraph.NewGraph()
	g.AddAtom(molgraph.Atom{AtomicNum: ZCarbon})
	for i := 1; i <= 5; i++ {
		g.AddAtom(molgraph.Atom{AtomicNum: ZCarbon})
		bond(t, g, 0, i, molgraph.BondSingle)
	}

	err := sanitize.Sanitize(g)
	var p *sanitize.Problem
	require.ErrorAs(t, err, &p)
	require.Equal(t, sanitize.TypeAtomValence, p.Type)
	require.Equal(t, []int{0}, p.Atoms)
	require.True(t, p.AtomScoped())
	require.Contains(t, p.Message, "Explicit valence for atom # 0 C, 5")
}

// TestSanitize_NonRingAromatic verifies an aromatic atom outside a ring is rejected.
func TestSanitize_NonRingAromatic(t *testing.T) {
	g := ring(t, 6, ZCarbon, true, molgraph.BondAromatic)
	idx := g.AddAtom(molgraph.Atom{AtomicNum: ZCarbon, IsAromatic: true})
	bond(t, g, 0, idx, molgraph.BondSingle)

	var p *sanitize.Problem
	require.ErrorAs(t, sanitize.Sanitize(g), &p)
	require.Equal(t, sanitize.TypeAtomKekulize, p.Type)
	require.Equal(t, []int{6}, p.Atoms)
}

// TestDetect_CollectsAll verifies Detect reports several problems in order
// and leaves the input untouched.
func TestDetect_CollectsAll(t *testing.T) {
	g := ring(t, 5, ZCarbon, true, molgraph.BondAromatic) // Kekulé failure
	hub := g.AddAtom(molgraph.Atom{AtomicNum: ZOxygen})
	for i := 0; i < 3; i++ {
		leaf := g.AddAtom(molgraph.Atom{AtomicNum: ZCarbon})
		bond(t, g, hub, leaf, molgraph.BondSingle)
	}
	require.True(t, g.Stale())

	probs := sanitize.Detect(g)
	require.Len(t, probs, 2)
	require.Equal(t, sanitize.TypeAtomValence, probs[0].Type)
	require.Equal(t, []int{hub}, probs[0].Atoms)
	require.Equal(t, sanitize.TypeKekulize, probs[1].Type)

	require.True(t, g.Stale())
	a, err := g.Atom(0)
	require.NoError(t, err)
	require.False(t, a.CacheValid())
}

// TestDetect_Clean verifies a valid molecule yields no problems.
func TestDetect_Clean(t *testing.T) {
	g := ring(t, 6, ZCarbon, false, molgraph.BondSingle)
	require.Nil(t, sanitize.Detect(g))
}
