// File: write.go
// Role: Canonical SMILES writer.
//
// Output rules:
//   - Fragments are written in order of their lowest-ranked atom, joined by '.'.
//   - Each fragment is a DFS from its lowest-ranked atom, neighbors in rank order;
//     DFS back edges become ring-closure digits (lowest free digit, %nn above 9).
//   - All children but the last are written as branches.
//   - Atoms are written bare when a reader would infer the same hydrogen count,
//     otherwise in brackets.

package smiles

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/molbridge/bfs"
	"github.com/katalvlaran/molbridge/dfs"
	"github.com/katalvlaran/molbridge/molgraph"
	"github.com/katalvlaran/molbridge/periodic"
)

// Write returns the canonical SMILES of g. A graph with a stale property
// cache is written from a refreshed copy; g itself is never modified.
// The empty graph yields "".
func Write(g *molgraph.Graph) string {
	if g.NumAtoms() == 0 {
		return ""
	}
	src := g
	if g.Stale() {
		src = g.Clone()
		_ = src.UpdatePropertyCache(false)
	}

	w := &writer{
		g:       src,
		ranks:   CanonicalRanks(src),
		written: make([]bool, src.NumAtoms()),
		digits:  make(map[dfs.AtomPair]int),
	}

	roots := make([]int, 0, 1)
	for _, comp := range bfs.Components(src) {
		root := comp[0]
		for _, idx := range comp[1:] {
			if w.ranks[idx] < w.ranks[root] {
				root = idx
			}
		}
		roots = append(roots, root)
	}
	sort.Slice(roots, func(i, j int) bool { return w.ranks[roots[i]] < w.ranks[roots[j]] })

	for k, root := range roots {
		if k > 0 {
			w.sb.WriteByte('.')
		}
		w.fragment(root)
	}

	return w.sb.String()
}

type writer struct {
	g        *molgraph.Graph
	ranks    []int
	children [][]int
	rings    [][]int
	written  []bool
	digits   map[dfs.AtomPair]int
	inUse    [100]bool
	sb       strings.Builder
}

func (w *writer) fragment(root int) {
	res, err := dfs.DFS(w.g, root, dfs.WithNeighborOrder(func(a, b int) bool {
		return w.ranks[a] < w.ranks[b]
	}))
	if err != nil {
		return
	}

	n := w.g.NumAtoms()
	w.children = make([][]int, n)
	for _, v := range res.Preorder {
		if p := res.Parent[v]; p >= 0 {
			w.children[p] = append(w.children[p], v)
		}
	}
	w.rings = make([][]int, n)
	for _, e := range res.BackEdges {
		w.rings[e.From] = append(w.rings[e.From], e.To)
		w.rings[e.To] = append(w.rings[e.To], e.From)
	}
	for _, partners := range w.rings {
		sort.Slice(partners, func(i, j int) bool { return w.ranks[partners[i]] < w.ranks[partners[j]] })
	}

	w.atom(root, -1)
}

// atom writes idx (reached from atom from, -1 at a fragment root) and its subtree.
func (w *writer) atom(idx, from int) {
	if from >= 0 {
		w.sb.WriteString(w.bondSymbol(from, idx))
	}
	w.sb.WriteString(w.atomToken(idx))
	w.written[idx] = true

	var closed []int
	for _, p := range w.rings[idx] {
		pair := dfs.NewAtomPair(idx, p)
		if d, ok := w.digits[pair]; ok {
			w.writeDigit(d)
			closed = append(closed, d)
			delete(w.digits, pair)
		}
	}
	for _, p := range w.rings[idx] {
		if w.written[p] {
			continue
		}
		d := w.freeDigit()
		w.inUse[d] = true
		w.digits[dfs.NewAtomPair(idx, p)] = d
		w.sb.WriteString(w.bondSymbol(idx, p))
		w.writeDigit(d)
	}
	for _, d := range closed {
		w.inUse[d] = false
	}

	kids := w.children[idx]
	for i, c := range kids {
		if i < len(kids)-1 {
			w.sb.WriteByte('(')
			w.atom(c, idx)
			w.sb.WriteByte(')')
			continue
		}
		w.atom(c, idx)
	}
}

func (w *writer) freeDigit() int {
	for d := 1; d < len(w.inUse); d++ {
		if !w.inUse[d] {
			return d
		}
	}
	return len(w.inUse) - 1
}

func (w *writer) writeDigit(d int) {
	if d > 9 {
		w.sb.WriteByte('%')
	}
	w.sb.WriteString(strconv.Itoa(d))
}

func (w *writer) bondSymbol(a, b int) string {
	bond, err := w.g.Bond(w.g.BondBetween(a, b))
	if err != nil {
		return ""
	}
	x, _ := w.g.Atom(a)
	y, _ := w.g.Atom(b)
	bothAromatic := x != nil && y != nil && x.IsAromatic && y.IsAromatic

	switch bond.Type {
	case molgraph.BondSingle:
		if bothAromatic {
			return "-"
		}
	case molgraph.BondDouble:
		return "="
	case molgraph.BondTriple:
		return "#"
	case molgraph.BondQuadruple:
		return "$"
	case molgraph.BondAromatic:
		if !bothAromatic {
			return ":"
		}
	}

	return ""
}

// bareAtoms lists the elements that may be written without brackets.
var bareAtoms = map[int]bool{0: true, 5: true, 6: true, 7: true, 8: true, 9: true, 15: true, 16: true, 17: true, 35: true, 53: true}

var bareAromatic = map[int]bool{5: true, 6: true, 7: true, 8: true, 15: true, 16: true}

func (w *writer) atomToken(idx int) string {
	a, err := w.g.Atom(idx)
	if err != nil {
		return "*"
	}
	sym, err := periodic.Symbol(a.AtomicNum)
	if err != nil {
		sym = "*"
	}
	if a.IsAromatic && a.AtomicNum != 0 {
		sym = strings.ToLower(sym)
	}

	hs := a.TotalNumHs()
	bare := bareAtoms[a.AtomicNum] && (!a.IsAromatic || bareAromatic[a.AtomicNum])
	if bare && a.FormalCharge == 0 && a.Isotope == 0 && a.MapNum == 0 {
		sum, arom := w.g.BondValenceSum(idx)
		if hs == molgraph.InferredHs(a.AtomicNum, 0, a.IsAromatic, sum, arom) {
			return sym
		}
	}

	var sb strings.Builder
	sb.WriteByte('[')
	if a.Isotope > 0 {
		sb.WriteString(strconv.Itoa(a.Isotope))
	}
	sb.WriteString(sym)
	if hs > 0 {
		sb.WriteByte('H')
		if hs > 1 {
			sb.WriteString(strconv.Itoa(hs))
		}
	}
	switch q := a.FormalCharge; {
	case q == 1:
		sb.WriteByte('+')
	case q == -1:
		sb.WriteByte('-')
	case q > 1:
		sb.WriteString("+" + strconv.Itoa(q))
	case q < -1:
		sb.WriteString(strconv.Itoa(q))
	}
	if a.MapNum > 0 {
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(a.MapNum))
	}
	sb.WriteByte(']')

	return sb.String()
}
