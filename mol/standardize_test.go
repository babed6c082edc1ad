package mol_test

import (
	"testing"

	"github.com/katalvlaran/molbridge/mol"
	"github.com/stretchr/testify/require"
)

// Clofibrate, methanol and folic acid in one input line.
const (
	Clofibrate = "CCOC(=O)C(C)(C)OC1=CC=C(C=C1)Cl"
	FolicAcid  = "C1=CC(=CC=C1C(=O)N[C@@H](CCC(=O)O)C(=O)O)NCC2=CN=C3C(=N2)C(=O)NC(=N3)N"
	Mixture    = Clofibrate + ".CO." + FolicAcid
)

// canonical is the canonical SMILES of smi.
func canonical(t *testing.T, smi string) string {
	t.Helper()
	return mustParse(t, smi).ToSmiles()
}

func TestFragmentParent_Largest(t *testing.T) {
	m := mustParse(t, Mixture)
	before := m.ToSmiles()

	parent, err := m.FragmentParent()
	require.NoError(t, err)
	require.Equal(t, canonical(t, FolicAcid), parent.ToSmiles())
	require.Len(t, parent.Fragments(), 1)
	require.False(t, parent.NeedsRefresh())
	require.Equal(t, before, m.ToSmiles())
	require.Len(t, m.Fragments(), 3)
}

func TestFragmentParent_TieBreaks(t *testing.T) {
	cases := map[string]string{
		// 3 atoms with Hs each; C#N has more heavy atoms.
		"O.C#N": "C#N",
		// Same counts; the smaller canonical SMILES wins.
		"NN.CO": "CO",
		"CO.NN": "CO",
		// Salts keep the organic part.
		"[Na+].CC(=O)[O-]": canonical(t, "CC(=O)[O-]"),
	}
	for in, want := range cases {
		parent, err := mustParse(t, in).FragmentParent()
		require.NoError(t, err, in)
		require.Equal(t, want, parent.ToSmiles(), in)
	}
}

func TestFragmentParent_SingleAndEmpty(t *testing.T) {
	m := mustParse(t, "CCO")
	parent, err := m.FragmentParent()
	require.NoError(t, err)
	require.Equal(t, "CCO", parent.ToSmiles())
	require.NotSame(t, m, parent)

	var empty mol.Mol
	parent, err = empty.FragmentParent()
	require.NoError(t, err)
	require.Zero(t, parent.NumAtoms(true))
}

func TestUncharge(t *testing.T) {
	cases := map[string]string{
		"C[NH3+].CC(=O)[O-]": "CN.CC(=O)O",
		"[NH4+]":             "N",
		"CC(=O)[O-]":         "CC(=O)O",
		"[Na+].[Cl-]":        "[Na+].[Cl-]",
		"C[N+](=O)[O-]":      "C[N+](=O)[O-]",
		"C[N+](C)(C)C.[Cl-]": "C[N+](C)(C)C.[Cl-]",
		"CCO":                "CCO",
	}
	for in, want := range cases {
		m := mustParse(t, in)
		before := m.ToSmiles()

		out, err := m.Uncharge()
		require.NoError(t, err, in)
		require.Equal(t, canonical(t, want), out.ToSmiles(), in)
		require.Empty(t, out.DetectProblems(), in)
		require.Equal(t, before, m.ToSmiles(), in)
	}
}

// TestFragmentParent_ThenUncharge strips the counter-ion first: the salt
// itself stays charged because sodium has no hydrogen to give up.
func TestFragmentParent_ThenUncharge(t *testing.T) {
	m := mustParse(t, "[Na+].[O-]C(=O)c1ccccc1")
	salt, err := m.Uncharge()
	require.NoError(t, err)
	require.Equal(t, m.ToSmiles(), salt.ToSmiles())

	parent, err := m.FragmentParent()
	require.NoError(t, err)
	neutral, err := parent.Uncharge()
	require.NoError(t, err)
	require.Equal(t, canonical(t, "OC(=O)c1ccccc1"), neutral.ToSmiles())
}

// TestZeroMol treats the zero value as an empty molecule.
func TestZeroMol(t *testing.T) {
	var m mol.Mol
	require.Zero(t, m.NumAtoms(false))
	require.Equal(t, "", m.ToSmiles())
	require.Nil(t, m.DetectProblems())
	require.Empty(t, m.Fragments())

	idx, err := m.AddAtom(6)
	require.NoError(t, err)
	require.Zero(t, idx)
	require.NoError(t, m.UpdatePropertyCache(true))
	require.Equal(t, "C", m.ToSmiles())
	require.Equal(t, `Mol("C")`, m.String())
}

// TestFromSmiles_NoSanitizeRefreshes leaves an unsanitized molecule with a current cache.
func TestFromSmiles_NoSanitizeRefreshes(t *testing.T) {
	m := mustParseRaw(t, "CN(C)(C)C")
	require.False(t, m.NeedsRefresh())
	require.Equal(t, 3, mustAtom(t, m, 0).TotalNumHs())
	require.Len(t, m.DetectProblems(), 1)
}
