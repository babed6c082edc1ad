package mol_test

import (
	"testing"

	"github.com/katalvlaran/molbridge/mol"
	"github.com/katalvlaran/molbridge/smiles"
	"github.com/stretchr/testify/require"
)

// TestFromSmiles_Benzene checks atom count, aromaticity and a clean report.
func TestFromSmiles_Benzene(t *testing.T) {
	m := mustParse(t, Benzene)

	require.Equal(t, 6, m.NumAtoms(true))
	require.Equal(t, 12, m.NumAtoms(false))
	for i := 0; i < 6; i++ {
		a := mustAtom(t, m, i)
		require.True(t, a.IsAromatic())
		require.Equal(t, "C", a.Symbol())
		require.Equal(t, 6, a.AtomicNum())
		require.Equal(t, 1, a.TotalNumHs())
		require.Equal(t, 4, a.TotalValence())
		require.Equal(t, mol.HybridSP2, a.Hybridization())
	}
	require.Empty(t, m.DetectProblems())
	require.False(t, m.NeedsRefresh())
}

// TestFromSmiles_Failures verifies no handle accompanies a parse failure.
func TestFromSmiles_Failures(t *testing.T) {
	for _, in := range []string{"", "(", "C1CC", "Xx"} {
		m, err := mol.FromSmiles(in)
		require.Nil(t, m, in)
		require.ErrorIs(t, err, mol.ErrParse, in)
		var pe *mol.ParseError
		require.ErrorAs(t, err, &pe)
		require.Equal(t, in, pe.Input)
		require.Nil(t, pe.Problem)
	}

	_, err := mol.FromSmiles("(")
	require.ErrorIs(t, err, smiles.ErrSyntax)
}

// TestFromSmiles_SanitizeFailure carries the engine problem on the error.
func TestFromSmiles_SanitizeFailure(t *testing.T) {
	m, err := mol.FromSmiles(OddAromatic)
	require.Nil(t, m)
	var pe *mol.ParseError
	require.ErrorAs(t, err, &pe)
	kp, ok := pe.Problem.(*mol.KekulizeProblem)
	require.True(t, ok)
	require.Equal(t, []int{0, 1, 2, 3, 4}, kp.Atoms())

	_, err = mol.FromSmiles("CO(C)C")
	require.ErrorAs(t, err, &pe)
	ap, ok := pe.Problem.(*mol.AtomProblem)
	require.True(t, ok)
	require.Equal(t, mol.TagAtomValence, ap.Type())
	require.Equal(t, 1, ap.AtomIndex())
}

// TestParserParams verifies defaults and shared in-place mutation.
func TestParserParams(t *testing.T) {
	p := mol.NewParserParams()
	require.True(t, p.Sanitize())
	require.True(t, p.RemoveHs())

	p.SetSanitize(false)
	for i := 0; i < 2; i++ {
		m, err := mol.FromSmilesWithParams(OddAromatic, p)
		require.NoError(t, err)
		require.Len(t, m.DetectProblems(), 1)
	}
	p.SetSanitize(true)
	_, err := mol.FromSmilesWithParams(OddAromatic, p)
	require.ErrorIs(t, err, mol.ErrParse)
}

// TestRemoveHs verifies explicit hydrogens fold into the heavy atom by default.
func TestRemoveHs(t *testing.T) {
	m := mustParse(t, "[H]C([H])([H])[H]")
	require.Equal(t, 1, m.NumAtoms(true))
	require.Equal(t, 5, m.NumAtoms(false))
	require.Equal(t, "C", m.ToSmiles())

	p := mol.NewParserParams()
	p.SetRemoveHs(false)
	m, err := mol.FromSmilesWithParams("[H]C([H])([H])[H]", p)
	require.NoError(t, err)
	require.Equal(t, 5, m.NumAtoms(true))
	require.Equal(t, 5, m.NumAtoms(false))
}

// TestCopy_IsDeep checks edits on either side stay local.
func TestCopy_IsDeep(t *testing.T) {
	orig := mustParse(t, "CCO")
	dup := orig.Copy()

	require.NoError(t, mustAtom(t, dup, 0).SetFormalCharge(1))
	require.Equal(t, 0, mustAtom(t, orig, 0).FormalCharge())
	require.True(t, dup.NeedsRefresh())
	require.False(t, orig.NeedsRefresh())

	require.NoError(t, mustAtom(t, orig, 2).SetNumExplicitHs(3))
	require.Equal(t, 0, mustAtom(t, dup, 2).NumExplicitHs())

	_, err := dup.AddAtom(8)
	require.NoError(t, err)
	require.Equal(t, 3, orig.NumAtoms(true))
	require.Equal(t, 4, dup.NumAtoms(true))

	// copy keeps the needs-refresh state
	require.True(t, dup.Copy().NeedsRefresh())
}

// TestToSmiles_FixedPoint verifies one canonicalization pass is stable.
func TestToSmiles_FixedPoint(t *testing.T) {
	for _, in := range validInputs {
		first := mustParse(t, in).ToSmiles()
		again := mustParse(t, first).ToSmiles()
		require.Equal(t, first, again, in)
	}
}

// TestToSmiles_Deterministic verifies copies and repeated calls agree.
func TestToSmiles_Deterministic(t *testing.T) {
	m := mustParse(t, Naphthalene)
	require.Equal(t, m.ToSmiles(), m.ToSmiles())
	require.Equal(t, m.ToSmiles(), m.Copy().ToSmiles())
	require.Equal(t, `Mol("CCO")`, mustParse(t, "OCC").String())
}

// TestNumAtoms_Ordering checks NumAtoms(true) <= NumAtoms(false).
func TestNumAtoms_Ordering(t *testing.T) {
	for _, in := range validInputs {
		m := mustParse(t, in)
		require.LessOrEqual(t, m.NumAtoms(true), m.NumAtoms(false), in)
	}
}

// TestAtom_Bounds checks success exactly for 0 <= i < NumAtoms(true).
func TestAtom_Bounds(t *testing.T) {
	m := mustParse(t, Benzene)
	for i := -2; i < 10; i++ {
		a, err := m.Atom(i)
		if i >= 0 && i < m.NumAtoms(true) {
			require.NoError(t, err, i)
			require.Equal(t, i, a.Index())
			continue
		}
		require.Nil(t, a)
		require.ErrorIs(t, err, mol.ErrAtomIndex, i)
	}

	_, err := m.Atom(99)
	var ie *mol.IndexError
	require.ErrorAs(t, err, &ie)
	require.Equal(t, 99, ie.Index)
	require.Equal(t, 6, ie.NumAtoms)
}

// TestDetectProblems_TagDiscipline reaches atom indices only via *AtomProblem.
func TestDetectProblems_TagDiscipline(t *testing.T) {
	m := mustParseRaw(t, "CO(C)C."+OddAromatic)
	probs := m.DetectProblems()
	require.Len(t, probs, 2)

	var atomScoped, molScoped int
	for _, p := range probs {
		switch v := p.(type) {
		case *mol.AtomProblem:
			atomScoped++
			require.Equal(t, mol.TagAtomValence, v.Type())
			require.Equal(t, 1, v.AtomIndex())
			require.Contains(t, v.Message(), "Explicit valence for atom # 1 O, 3")
		case *mol.KekulizeProblem:
			molScoped++
			require.Equal(t, mol.TagKekulize, v.Type())
			require.Equal(t, []int{4, 5, 6, 7, 8}, v.Atoms())
		default:
			t.Fatalf("unexpected record %T", p)
		}
	}
	require.Equal(t, 1, atomScoped)
	require.Equal(t, 1, molScoped)

	// records are values: editing the molecule leaves them untouched
	require.NoError(t, m.RemoveAtom(0))
	require.Equal(t, 1, probs[0].(*mol.AtomProblem).AtomIndex())

	require.Contains(t, mol.Problems(probs).Error(), "KekulizeException: Can't kekulize mol.")
}

// TestDetectProblems_NonRingAromatic reports the atom-scoped Kekulé tag.
func TestDetectProblems_NonRingAromatic(t *testing.T) {
	m := mustParseRaw(t, "Cc")
	probs := m.DetectProblems()
	require.NotEmpty(t, probs)
	ap, ok := probs[0].(*mol.AtomProblem)
	require.True(t, ok)
	require.Equal(t, mol.TagAtomKekulize, ap.Type())
	require.Equal(t, 1, ap.AtomIndex())
}

// TestMutateThenRefresh verifies derived values follow the explicit refresh.
func TestMutateThenRefresh(t *testing.T) {
	m := mustParse(t, "C")
	a := mustAtom(t, m, 0)
	require.Equal(t, 4, a.TotalValence())

	require.NoError(t, a.SetFormalCharge(1))
	require.True(t, m.NeedsRefresh())
	require.Equal(t, 4, a.TotalValence()) // stale read

	require.NoError(t, m.UpdatePropertyCache(false))
	require.False(t, m.NeedsRefresh())
	require.Equal(t, 3, a.TotalValence())
	require.Equal(t, 3, a.TotalNumHs())
	require.Equal(t, "[CH3+]", m.ToSmiles())
}

// TestRefresh_StrictVersusLenient covers the invalid-charge scenario.
func TestRefresh_StrictVersusLenient(t *testing.T) {
	m := mustParse(t, Benzene)
	a := mustAtom(t, m, 0)
	require.NoError(t, a.SetFormalCharge(5))

	err := m.UpdatePropertyCache(true)
	require.ErrorIs(t, err, mol.ErrRefresh)
	var re *mol.RefreshError
	require.ErrorAs(t, err, &re)
	ap, ok := re.Problem.(*mol.AtomProblem)
	require.True(t, ok)
	require.Equal(t, 0, ap.AtomIndex())
	require.Equal(t, 5, a.FormalCharge()) // not rolled back

	require.NoError(t, m.UpdatePropertyCache(false))
}

// TestAtom_Stale verifies references die with structural edits.
func TestAtom_Stale(t *testing.T) {
	m := mustParse(t, "CC")
	a := mustAtom(t, m, 1)
	require.True(t, a.Valid())

	_, err := m.AddAtom(8)
	require.NoError(t, err)
	require.False(t, a.Valid())
	require.Panics(t, func() { _ = a.Symbol() })
	require.ErrorIs(t, a.SetFormalCharge(1), mol.ErrStaleAtom)
	require.ErrorIs(t, a.SetHybridization(mol.HybridSP), mol.ErrStaleAtom)

	b := mustAtom(t, m, 2)
	require.Equal(t, "O", b.Symbol())
	require.NoError(t, m.RemoveAtom(0))
	require.False(t, b.Valid())
}

// TestHybridization covers the raw encoding and the setter.
func TestHybridization(t *testing.T) {
	raw := map[int]mol.Hybridization{
		0: mol.HybridUnspecified, 1: mol.HybridS, 2: mol.HybridSP, 3: mol.HybridSP2,
		4: mol.HybridSP3, 5: mol.HybridSP2D, 6: mol.HybridSP3D, 7: mol.HybridSP3D2, 8: mol.HybridOther,
	}
	for v, h := range raw {
		got, err := mol.HybridizationFromRaw(v)
		require.NoError(t, err)
		require.Equal(t, h, got)
		require.Equal(t, int32(v), int32(h))
	}
	for _, bad := range []int{-1, 9, 1 << 40} {
		_, err := mol.HybridizationFromRaw(bad)
		require.ErrorIs(t, err, mol.ErrValue)
	}
	require.Equal(t, "SP3D2", mol.HybridSP3D2.String())

	m := mustParse(t, Benzene)
	a := mustAtom(t, m, 2)
	require.NoError(t, a.SetHybridization(mol.HybridSP3))
	require.Equal(t, mol.HybridSP3, a.Hybridization())
	require.False(t, m.NeedsRefresh())
	require.ErrorIs(t, a.SetHybridization(mol.Hybridization(42)), mol.ErrValue)
	require.ErrorIs(t, a.SetNumExplicitHs(-1), mol.ErrValue)
}

// TestEditing covers the read-write surface.
func TestEditing(t *testing.T) {
	m := mustParse(t, "C")
	o, err := m.AddAtom(8)
	require.NoError(t, err)
	_, err = m.AddBond(0, o, mol.BondSingle)
	require.NoError(t, err)
	require.True(t, m.NeedsRefresh())
	require.NoError(t, m.UpdatePropertyCache(true))
	require.Equal(t, "CO", m.ToSmiles())
	require.Equal(t, 1, m.NumBonds())

	_, err = m.AddBond(0, 0, mol.BondSingle)
	require.ErrorIs(t, err, mol.ErrBond)
	_, err = m.AddAtom(200)
	require.ErrorIs(t, err, mol.ErrValue)
	require.ErrorIs(t, m.RemoveAtom(5), mol.ErrAtomIndex)

	require.NoError(t, m.RemoveBond(0, 1))
	require.ErrorIs(t, m.RemoveBond(0, 1), mol.ErrBond)
	require.Equal(t, [][]int{{0}, {1}}, m.Fragments())
}

// TestSanitize_InPlace verifies Sanitize on an unsanitized handle.
func TestSanitize_InPlace(t *testing.T) {
	m := mustParseRaw(t, OddAromatic)
	err := m.Sanitize()
	require.ErrorIs(t, err, mol.ErrSanitize)
	var se *mol.SanitizeError
	require.ErrorAs(t, err, &se)
	require.Equal(t, mol.TagKekulize, se.Problem.Type())

	ok := mustParseRaw(t, Pyrrole)
	require.NoError(t, ok.Sanitize())
	require.Equal(t, mol.HybridSP2, mustAtom(t, ok, 3).Hybridization())
}

// TestTopology checks fragments and ring counts.
func TestTopology(t *testing.T) {
	require.Equal(t, [][]int{{0, 1}, {2}}, mustParse(t, "CC.O").Fragments())
	require.Equal(t, 2, mustParse(t, Naphthalene).NumRings())
	require.Equal(t, 0, mustParse(t, "CCO").NumRings())
}

// TestMolBlock_RoundTrip converts through V2000 and back.
func TestMolBlock_RoundTrip(t *testing.T) {
	for _, in := range []string{Benzene, Pyrrole, "CC(=O)[O-].[Na+]", "[13CH4]"} {
		m := mustParse(t, in)
		block, err := m.ToMolBlock()
		require.NoError(t, err)
		back, err := mol.FromMolBlock(block, mol.DefaultMolBlockParams())
		require.NoError(t, err, in)
		require.Equal(t, m.ToSmiles(), back.ToSmiles(), in)
	}

	_, err := mol.FromMolBlock("garbage", mol.DefaultMolBlockParams())
	require.ErrorIs(t, err, mol.ErrParse)
}
