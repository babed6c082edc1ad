// Package mol_test contains fixtures for mol tests.
package mol_test

import (
	"testing"

	"github.com/katalvlaran/molbridge/mol"
	"github.com/stretchr/testify/require"
)

const (
	Benzene     = "c1ccccc1"
	Pyrrole     = "c1cc[nH]c1"
	Naphthalene = "c1ccc2ccccc2c1"
	// Cyclopentadienyl written aromatic: odd ring, no Kekulé structure.
	OddAromatic = "c1cccc1"
)

// validInputs all parse and sanitize with default parameters.
var validInputs = []string{
	"C", "CCO", "CC(=O)O", Benzene, Pyrrole, Naphthalene, "c1ccncc1",
	"C1CC2CCC1CC2", "[NH4+]", "CC(=O)[O-].[Na+]", "OC(=O)C1CCCCC1N",
	"c1ccccc1-c1ccccc1", "C#N", "[13CH4]", "O=C=O", "ClC(Br)I",
}

func mustParse(t *testing.T, smi string) *mol.Mol {
	t.Helper()
	m, err := mol.FromSmiles(smi)
	require.NoError(t, err, smi)
	require.NotNil(t, m)
	return m
}

func mustParseRaw(t *testing.T, smi string) *mol.Mol {
	t.Helper()
	p := mol.NewParserParams()
	p.SetSanitize(false)
	m, err := mol.FromSmilesWithParams(smi, p)
	require.NoError(t, err, smi)
	return m
}

func mustAtom(t *testing.T, m *mol.Mol, idx int) *mol.Atom {
	t.Helper()
	a, err := m.Atom(idx)
	require.NoError(t, err)
	return a
}
