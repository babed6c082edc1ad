// File: molfile.go
// Role: MDL V2000 connection-table reader and writer.
//
// Layout handled:
//   - Header: name, program, comment lines.
//   - Counts line "aaabbb ... V2000".
//   - Atom block: fixed columns x y z symbol massdiff charge stereo hcount.
//   - Bond block: atom1 atom2 type (1,2,3 or 4 = aromatic).
//   - Properties: "M  CHG", "M  ISO", "M  END".
// Coordinates are not modeled: they are written as zeros and ignored on read.

package molfile

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fortio.org/safecast"

	"github.com/katalvlaran/molbridge/molgraph"
	"github.com/katalvlaran/molbridge/periodic"
)

var (
	// ErrFormat is wrapped by every malformed-block error.
	ErrFormat = errors.New("molfile: malformed block")

	// ErrUnsupported reports a block in a format other than V2000.
	ErrUnsupported = errors.New("molfile: unsupported format")

	// ErrTooLarge reports a graph that cannot be written as V2000.
	ErrTooLarge = errors.New("molfile: too many atoms or bonds for V2000")
)

// maxCount is the V2000 three-digit limit for atom and bond counts.
const maxCount = 999

// Option configures Read.
type Option func(*readOptions)

type readOptions struct {
	strict bool
}

// WithStrictParsing requires the "M  END" terminator, well-formed fixed-width
// lines and known bond types. Without it the reader falls back to
// whitespace-separated fields and maps unknown bond types to single bonds.
func WithStrictParsing(strict bool) Option {
	return func(o *readOptions) { o.strict = strict }
}

// Read parses one V2000 block. It returns the graph and the header name.
// The graph's cache is stale; hydrogens are implicit unless the atom's
// hcount column is set.
func Read(block string, opts ...Option) (*molgraph.Graph, string, error) {
	ro := readOptions{strict: true}
	for _, opt := range opts {
		opt(&ro)
	}

	var lines []string
	sc := bufio.NewScanner(strings.NewReader(block))
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if len(lines) < 4 {
		return nil, "", fmt.Errorf("%w: header and counts line required, got %d lines", ErrFormat, len(lines))
	}

	counts := lines[3]
	if strings.Contains(counts, "V3000") {
		return nil, "", fmt.Errorf("%w: V3000", ErrUnsupported)
	}
	if ro.strict && !strings.Contains(counts, "V2000") {
		return nil, "", fmt.Errorf("%w: counts line lacks V2000 tag", ErrFormat)
	}
	nAtoms, err := countField(counts, 0)
	if err != nil {
		return nil, "", err
	}
	nBonds, err := countField(counts, 3)
	if err != nil {
		return nil, "", err
	}
	if len(lines) < 4+nAtoms+nBonds {
		return nil, "", fmt.Errorf("%w: expected %d atom and %d bond lines", ErrFormat, nAtoms, nBonds)
	}

	r := &reader{g: molgraph.NewGraph(molgraph.WithCapacity(nAtoms, nBonds)), strict: ro.strict}
	for i := 0; i < nAtoms; i++ {
		if err = r.atom(lines[4+i], i+1); err != nil {
			return nil, "", err
		}
	}
	for i := 0; i < nBonds; i++ {
		if err = r.bond(lines[4+nAtoms+i], i+1); err != nil {
			return nil, "", err
		}
	}
	if err = r.properties(lines[4+nAtoms+nBonds:]); err != nil {
		return nil, "", err
	}

	return r.g, strings.TrimSpace(lines[0]), nil
}

type reader struct {
	g      *molgraph.Graph
	strict bool
}

// atom parses one atom-block line.
func (r *reader) atom(line string, num int) error {
	var sym, charge, hcount string
	if len(line) >= 34 {
		sym = column(line, 31, 34)
		charge = column(line, 36, 39)
		hcount = column(line, 42, 45)
	} else if r.strict {
		return fmt.Errorf("%w: atom %d: line too short", ErrFormat, num)
	} else {
		f := strings.Fields(line)
		if len(f) < 4 {
			return fmt.Errorf("%w: atom %d: missing symbol", ErrFormat, num)
		}
		sym = f[3]
		if len(f) > 5 {
			charge = f[5]
		}
	}

	a := molgraph.Atom{}
	switch sym {
	case "*", "A", "Q", "R", "R#", "L":
	case "D":
		a.AtomicNum, a.Isotope = 1, 2
	case "T":
		a.AtomicNum, a.Isotope = 1, 3
	default:
		z, err := periodic.AtomicNumber(sym)
		if err != nil {
			return fmt.Errorf("%w: atom %d: symbol %q", ErrFormat, num, sym)
		}
		a.AtomicNum = z
	}

	if charge != "" {
		code, err := strconv.Atoi(charge)
		if err != nil {
			return fmt.Errorf("%w: atom %d: charge %q", ErrFormat, num, charge)
		}
		if code > 0 && code < 8 && code != 4 {
			a.FormalCharge = 4 - code
		}
	}
	if hcount != "" {
		h, err := strconv.Atoi(hcount)
		if err == nil && h > 0 {
			a.NumExplicitHs, a.NoImplicit = h-1, true
		}
	}

	r.g.AddAtom(a)

	return nil
}

// bond parses one bond-block line.
func (r *reader) bond(line string, num int) error {
	var f [3]string
	if len(line) >= 9 {
		f = [3]string{column(line, 0, 3), column(line, 3, 6), column(line, 6, 9)}
	} else if fs := strings.Fields(line); !r.strict && len(fs) >= 3 {
		f = [3]string{fs[0], fs[1], fs[2]}
	} else {
		return fmt.Errorf("%w: bond %d: line too short", ErrFormat, num)
	}

	var vals [3]int
	for i, s := range f {
		v, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("%w: bond %d: field %q", ErrFormat, num, s)
		}
		vals[i] = v
	}
	a, err := r.atomIndex(vals[0])
	if err != nil {
		return fmt.Errorf("bond %d: %w", num, err)
	}
	b, err := r.atomIndex(vals[1])
	if err != nil {
		return fmt.Errorf("bond %d: %w", num, err)
	}

	var bt molgraph.BondType
	switch vals[2] {
	case 1, 2, 3:
		bt = molgraph.BondType(vals[2])
	case 4:
		bt = molgraph.BondAromatic
		for _, idx := range []int{a, b} {
			if at, aerr := r.g.Atom(idx); aerr == nil {
				at.IsAromatic = true
			}
		}
	default:
		if r.strict {
			return fmt.Errorf("%w: bond %d: type %d", ErrUnsupported, num, vals[2])
		}
		bt = molgraph.BondSingle
	}

	if _, err = r.g.AddBond(a, b, bt); err != nil {
		return fmt.Errorf("%w: bond %d: %v", ErrFormat, num, err)
	}

	return nil
}

// atomIndex converts a one-based atom number to a graph index.
func (r *reader) atomIndex(num int) (int, error) {
	idx, err := safecast.Conv[uint16](num - 1)
	if err != nil || int(idx) >= r.g.NumAtoms() {
		return 0, fmt.Errorf("%w: atom number %d out of range", ErrFormat, num)
	}

	return int(idx), nil
}

// properties applies the "M  " lines. A CHG or ISO line replaces every
// charge or isotope given in the atom block.
func (r *reader) properties(lines []string) error {
	chargesReset, isotopesReset := false, false
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "M  END"):
			return nil
		case strings.HasPrefix(line, "M  CHG"):
			if !chargesReset {
				for _, a := range r.g.Atoms() {
					a.FormalCharge = 0
				}
				chargesReset = true
			}
			if err := r.pairs(line, func(a *molgraph.Atom, v int) { a.FormalCharge = v }); err != nil {
				return err
			}
		case strings.HasPrefix(line, "M  ISO"):
			if !isotopesReset {
				for _, a := range r.g.Atoms() {
					a.Isotope = 0
				}
				isotopesReset = true
			}
			if err := r.pairs(line, func(a *molgraph.Atom, v int) { a.Isotope = v }); err != nil {
				return err
			}
		}
	}
	if r.strict {
		return fmt.Errorf("%w: missing M  END", ErrFormat)
	}

	return nil
}

// pairs decodes "M  XXX  n  a1 v1 a2 v2 ..." and applies set to each atom.
func (r *reader) pairs(line string, set func(a *molgraph.Atom, v int)) error {
	f := strings.Fields(line[6:])
	if len(f) == 0 {
		return fmt.Errorf("%w: %q", ErrFormat, line)
	}
	n, err := strconv.Atoi(f[0])
	if err != nil || len(f) < 1+2*n {
		return fmt.Errorf("%w: %q", ErrFormat, line)
	}
	for i := 0; i < n; i++ {
		num, err1 := strconv.Atoi(f[1+2*i])
		v, err2 := strconv.Atoi(f[2+2*i])
		if err1 != nil || err2 != nil {
			return fmt.Errorf("%w: %q", ErrFormat, line)
		}
		idx, err := r.atomIndex(num)
		if err != nil {
			return err
		}
		a, err := r.g.Atom(idx)
		if err != nil {
			return err
		}
		set(a, v)
	}

	return nil
}

func countField(line string, from int) (int, error) {
	s := column(line, from, from+3)
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > maxCount {
		return 0, fmt.Errorf("%w: counts line field %q", ErrFormat, s)
	}

	return n, nil
}

// column returns the trimmed byte range [from, to) of line, clamped to its length.
func column(line string, from, to int) string {
	if from >= len(line) {
		return ""
	}
	if to > len(line) {
		to = len(line)
	}

	return strings.TrimSpace(line[from:to])
}
