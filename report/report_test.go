package report_test

import (
	"bytes"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/molbridge/mol"
	"github.com/katalvlaran/molbridge/report"
)

func summaries(t *testing.T) []report.Summary {
	t.Helper()
	ethanol, err := mol.FromSmiles("OCC")
	require.NoError(t, err)

	p := mol.NewParserParams()
	p.SetSanitize(false)
	bad, err := mol.FromSmilesWithParams("CN(C)(C)C", p)
	require.NoError(t, err)

	_, perr := mol.FromSmiles("c1cccc1")
	require.Error(t, perr)

	return []report.Summary{
		report.Summarize("OCC", ethanol, true),
		report.Summarize("CN(C)(C)C", bad, false),
		report.Failure("c1cccc1", perr),
	}
}

// TestSummarize checks counts and problem views.
func TestSummarize(t *testing.T) {
	items := summaries(t)

	eth := items[0]
	require.True(t, eth.OK())
	require.Equal(t, "CCO", eth.Smiles)
	require.Equal(t, 3, eth.NumAtoms)
	require.Equal(t, 9, eth.NumAllHs)
	require.Equal(t, 2, eth.NumBonds)
	require.Equal(t, 1, eth.Fragments)
	require.Len(t, eth.Atoms, 3)
	require.Equal(t, "O", eth.Atoms[0].Symbol)
	require.Equal(t, "SP3", eth.Atoms[0].Hybridization)

	bad := items[1]
	require.False(t, bad.OK())
	require.Len(t, bad.Problems, 1)
	require.NotNil(t, bad.Problems[0].Atom)
	require.Equal(t, 1, *bad.Problems[0].Atom)

	fail := items[2]
	require.NotEmpty(t, fail.Error)
	require.Len(t, fail.Problems, 1)
	require.Nil(t, fail.Problems[0].Atom)
	require.Equal(t, []int{0, 1, 2, 3, 4}, fail.Problems[0].Atoms)
}

// TestParseFormat covers names and the default.
func TestParseFormat(t *testing.T) {
	for in, want := range map[string]report.Format{
		"":        report.FormatText,
		"JSON":    report.FormatJSON,
		" yaml ":  report.FormatYAML,
		"msgpack": report.FormatMsgPack,
	} {
		got, err := report.ParseFormat(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := report.ParseFormat("xml")
	require.ErrorIs(t, err, report.ErrFormat)
	require.ErrorIs(t, report.Write(&bytes.Buffer{}, report.Format("xml"), nil), report.ErrFormat)
}

// TestWrite_Structured decodes JSON and YAML output and round-trips msgpack.
func TestWrite_Structured(t *testing.T) {
	items := summaries(t)

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, report.FormatJSON, items))
	var fromJSON []report.Summary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fromJSON))
	require.Equal(t, items, fromJSON)
	require.Contains(t, buf.String(), `"atom": 1`)

	buf.Reset()
	require.NoError(t, report.Write(&buf, report.FormatYAML, items))
	var fromYAML []report.Summary
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &fromYAML))
	require.Equal(t, items, fromYAML)

	buf.Reset()
	require.NoError(t, report.Write(&buf, report.FormatMsgPack, items))
	fromMP, err := report.ReadMsgPack(&buf)
	require.NoError(t, err)
	require.Equal(t, items, fromMP)
}

// TestWrite_Text checks the plain renderer.
func TestWrite_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, report.FormatText, summaries(t), report.WithColor(false)))
	out := buf.String()

	require.Contains(t, out, "CCO <- OCC")
	require.Contains(t, out, "ok")
	require.Contains(t, out, "AtomValenceException (atom 1): Explicit valence for atom # 1 N, 4")
	require.Contains(t, out, "KekulizeException (atoms [0 1 2 3 4])")
	require.Contains(t, out, "hybrid")
	require.NotContains(t, out, "\x1b[")
}
