package molfile

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/molbridge/molgraph"
	"github.com/katalvlaran/molbridge/periodic"
)

// Write renders g as a V2000 block with the given name on the header line.
// Aromatic bonds are written as type 4. The hcount column is set for atoms
// whose hydrogen count a reader would not infer from the bonds alone.
// A stale graph is written from a refreshed copy.
func Write(g *molgraph.Graph, name string) (string, error) {
	if g.NumAtoms() > maxCount || g.NumBonds() > maxCount {
		return "", fmt.Errorf("%w: %d atoms, %d bonds", ErrTooLarge, g.NumAtoms(), g.NumBonds())
	}
	src := g
	if g.Stale() {
		src = g.Clone()
		_ = src.UpdatePropertyCache(false)
	}

	var sb strings.Builder
	sb.WriteString(name + "\n")
	sb.WriteString("     molbridge\n")
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "%3d%3d  0  0  0  0  0  0  0  0999 V2000\n", src.NumAtoms(), src.NumBonds())

	var charged, isotopic []int
	for i, a := range src.Atoms() {
		sym, err := periodic.Symbol(a.AtomicNum)
		if err != nil || a.AtomicNum == 0 {
			sym = "*"
		}
		hcount := 0
		sum, arom := src.BondValenceSum(i)
		if a.TotalNumHs() != molgraph.InferredHs(a.AtomicNum, a.FormalCharge, a.IsAromatic, sum, arom) {
			hcount = a.TotalNumHs() + 1
		}
		fmt.Fprintf(&sb, "%10.4f%10.4f%10.4f %-3s 0%3d  0%3d  0  0  0  0  0  0  0  0\n",
			0.0, 0.0, 0.0, sym, chargeCode(a.FormalCharge), hcount)
		if a.FormalCharge != 0 {
			charged = append(charged, i)
		}
		if a.Isotope != 0 {
			isotopic = append(isotopic, i)
		}
	}
	for _, b := range src.Bonds() {
		bt := int(b.Type)
		if b.Type == molgraph.BondAromatic {
			bt = 4
		}
		fmt.Fprintf(&sb, "%3d%3d%3d  0\n", b.Begin+1, b.End+1, bt)
	}

	writePairs(&sb, "CHG", charged, func(i int) int { return src.Atoms()[i].FormalCharge })
	writePairs(&sb, "ISO", isotopic, func(i int) int { return src.Atoms()[i].Isotope })
	sb.WriteString("M  END\n")

	return sb.String(), nil
}

// chargeCode maps a formal charge to the atom-block code (0 when out of range).
func chargeCode(q int) int {
	if q < -3 || q > 3 || q == 0 {
		return 0
	}
	return 4 - q
}

// writePairs emits "M  XXX" lines, eight entries per line.
func writePairs(sb *strings.Builder, tag string, atoms []int, value func(int) int) {
	for start := 0; start < len(atoms); start += 8 {
		end := start + 8
		if end > len(atoms) {
			end = len(atoms)
		}
		fmt.Fprintf(sb, "M  %s%3d", tag, end-start)
		for _, i := range atoms[start:end] {
			fmt.Fprintf(sb, " %3d %3d", i+1, value(i))
		}
		sb.WriteString("\n")
	}
}
