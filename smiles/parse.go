// File: parse.go
// Role: SMILES reader producing a molgraph.Graph.
//
// Grammar covered:
//   - organic subset B C N O P S F Cl Br I *, aromatic b c n o p s
//   - bracket atoms [isotope symbol chirality Hcount charge :class]
//   - bonds - = # $ : / \, branches ( ), ring closures 0-9 and %nn, fragments .
//
// The parsed graph carries no computed properties: its cache is stale until
// the caller sanitizes it or calls UpdatePropertyCache.

package smiles

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/molbridge/molgraph"
	"github.com/katalvlaran/molbridge/periodic"
)

// ringOpen is a ring-closure digit waiting for its partner.
type ringOpen struct {
	atom    int
	bond    molgraph.BondType
	hasBond bool
}

// parser holds the reader state for one input string.
type parser struct {
	src string
	pos int
	g   *molgraph.Graph

	prev     int   // atom the next atom bonds to, -1 at a fragment start
	branches []int // open branch roots
	rings    map[int]ringOpen

	bond    molgraph.BondType
	hasBond bool
	bondPos int
}

// Parse reads a SMILES string into a new graph. Surrounding whitespace is
// ignored and parsing stops at the first inner whitespace, so "CCO ethanol"
// reads as "CCO".
//
// Errors:
//   - ErrEmpty when no SMILES token is present.
//   - *SyntaxError (wraps ErrSyntax) for malformed input.
func Parse(s string) (*molgraph.Graph, error) {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, " \t\r\n"); i >= 0 {
		s = s[:i]
	}
	if s == "" {
		return nil, ErrEmpty
	}

	p := &parser{
		src:   s,
		g:     molgraph.NewGraph(molgraph.WithCapacity(len(s), len(s))),
		prev:  -1,
		rings: make(map[int]ringOpen),
	}
	if err := p.run(); err != nil {
		return nil, err
	}

	return p.g, nil
}

func (p *parser) run() error {
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		var err error
		switch {
		case c == '(':
			err = p.openBranch()
		case c == ')':
			err = p.closeBranch()
		case c == '.':
			if p.hasBond {
				return p.errorAt(p.bondPos, "bond before '.'")
			}
			p.prev = -1
			p.pos++
		case isBondChar(c):
			err = p.bondSymbol(c)
		case c >= '0' && c <= '9' || c == '%':
			err = p.ringClosure()
		case c == '[':
			err = p.bracketAtom()
		default:
			err = p.organicAtom()
		}
		if err != nil {
			return err
		}
	}

	return p.finish()
}

// finish checks for constructs left open at the end of input.
func (p *parser) finish() error {
	if p.hasBond {
		return p.errorAt(p.bondPos, "dangling bond")
	}
	if len(p.branches) > 0 {
		return p.errorAt(len(p.src), "unclosed branch")
	}
	if len(p.rings) > 0 {
		open := make([]int, 0, len(p.rings))
		for num := range p.rings {
			open = append(open, num)
		}
		sort.Ints(open)
		return p.errorAt(len(p.src), fmt.Sprintf("unclosed ring %d", open[0]))
	}
	if p.g.NumAtoms() == 0 {
		return p.errorAt(0, "no atoms")
	}

	return nil
}

func (p *parser) openBranch() error {
	if p.prev < 0 {
		return p.errorAt(p.pos, "branch without a preceding atom")
	}
	if p.hasBond {
		return p.errorAt(p.bondPos, "bond before branch")
	}
	p.branches = append(p.branches, p.prev)
	p.pos++

	return nil
}

func (p *parser) closeBranch() error {
	if len(p.branches) == 0 {
		return p.errorAt(p.pos, "unmatched ')'")
	}
	if p.hasBond {
		return p.errorAt(p.bondPos, "dangling bond")
	}
	if p.prev < 0 {
		return p.errorAt(p.pos, "empty branch")
	}
	last := len(p.branches) - 1
	p.prev = p.branches[last]
	p.branches = p.branches[:last]
	p.pos++

	return nil
}

func isBondChar(c byte) bool {
	switch c {
	case '-', '=', '#', '$', ':', '/', '\\':
		return true
	}
	return false
}

func (p *parser) bondSymbol(c byte) error {
	if p.prev < 0 {
		return p.errorAt(p.pos, "bond without a preceding atom")
	}
	if p.hasBond {
		return p.errorAt(p.pos, "consecutive bond symbols")
	}
	switch c {
	case '=':
		p.bond = molgraph.BondDouble
	case '#':
		p.bond = molgraph.BondTriple
	case '$':
		p.bond = molgraph.BondQuadruple
	case ':':
		p.bond = molgraph.BondAromatic
	default: // '-', '/', '\'
		p.bond = molgraph.BondSingle
	}
	p.hasBond, p.bondPos = true, p.pos
	p.pos++

	return nil
}

// ringClosure opens or closes the ring bond numbered at the cursor.
func (p *parser) ringClosure() error {
	at := p.pos
	if p.prev < 0 {
		return p.errorAt(at, "ring closure without a preceding atom")
	}
	num, ok := p.ringNumber()
	if !ok {
		return p.errorAt(at, "malformed ring number")
	}

	open, found := p.rings[num]
	if !found {
		p.rings[num] = ringOpen{atom: p.prev, bond: p.bond, hasBond: p.hasBond}
		p.hasBond = false
		return nil
	}
	delete(p.rings, num)

	var bt molgraph.BondType
	switch {
	case open.hasBond && p.hasBond && open.bond != p.bond:
		return p.errorAt(at, fmt.Sprintf("conflicting bonds on ring closure %d", num))
	case open.hasBond:
		bt = open.bond
	case p.hasBond:
		bt = p.bond
	default:
		bt = p.defaultBond(open.atom, p.prev)
	}
	p.hasBond = false

	if open.atom == p.prev {
		return p.errorAt(at, fmt.Sprintf("ring closure %d bonds an atom to itself", num))
	}
	if _, err := p.g.AddBond(open.atom, p.prev, bt); err != nil {
		return p.errorAt(at, fmt.Sprintf("ring closure %d: %v", num, err))
	}

	return nil
}

// ringNumber reads "d" or "%dd".
func (p *parser) ringNumber() (int, bool) {
	c := p.src[p.pos]
	if c != '%' {
		p.pos++
		return int(c - '0'), true
	}
	if p.pos+2 >= len(p.src) || !isDigit(p.src[p.pos+1]) || !isDigit(p.src[p.pos+2]) {
		return 0, false
	}
	num := int(p.src[p.pos+1]-'0')*10 + int(p.src[p.pos+2]-'0')
	p.pos += 3

	return num, true
}

var organic = map[string]int{
	"B": 5, "C": 6, "N": 7, "O": 8, "P": 15, "S": 16, "F": 9, "Cl": 17, "Br": 35, "I": 53, "*": 0,
}

var organicAromatic = map[string]int{
	"b": 5, "c": 6, "n": 7, "o": 8, "p": 15, "s": 16,
}

var bracketAromatic = map[string]int{
	"b": 5, "c": 6, "n": 7, "o": 8, "p": 15, "s": 16, "se": 34, "as": 33, "te": 52,
}

func (p *parser) organicAtom() error {
	rest := p.src[p.pos:]
	if len(rest) >= 2 {
		if z, ok := organic[rest[:2]]; ok {
			p.pos += 2
			return p.addAtom(molgraph.Atom{AtomicNum: z})
		}
	}
	if z, ok := organic[rest[:1]]; ok {
		p.pos++
		return p.addAtom(molgraph.Atom{AtomicNum: z})
	}
	if z, ok := organicAromatic[rest[:1]]; ok {
		p.pos++
		return p.addAtom(molgraph.Atom{AtomicNum: z, IsAromatic: true})
	}

	return p.errorAt(p.pos, fmt.Sprintf("unexpected character %q", rest[0]))
}

// bracketAtom reads [isotope? symbol chirality? H-count? charge? class?].
func (p *parser) bracketAtom() error {
	start := p.pos
	p.pos++

	a := molgraph.Atom{NoImplicit: true}
	if iso, ok := p.number(); ok {
		a.Isotope = iso
	}
	if err := p.bracketSymbol(&a); err != nil {
		return err
	}

	if p.peek() == '@' {
		p.pos++
		a.ChiralTag = 1
		if p.peek() == '@' {
			p.pos++
			a.ChiralTag = 2
		}
	}

	if p.peek() == 'H' {
		p.pos++
		a.NumExplicitHs = 1
		if n, ok := p.number(); ok {
			a.NumExplicitHs = n
		}
	}

	if sign := p.peek(); sign == '+' || sign == '-' {
		p.pos++
		q, ok := p.number()
		if !ok {
			q = 1
			for p.peek() == sign {
				q++
				p.pos++
			}
		}
		if sign == '-' {
			q = -q
		}
		a.FormalCharge = q
	}

	if p.peek() == ':' {
		p.pos++
		n, ok := p.number()
		if !ok {
			return p.errorAt(p.pos, "missing atom class")
		}
		a.MapNum = n
	}

	if p.peek() != ']' {
		return p.errorAt(start, "unterminated bracket atom")
	}
	p.pos++

	return p.addAtom(a)
}

func (p *parser) bracketSymbol(a *molgraph.Atom) error {
	rest := p.src[p.pos:]
	if rest == "" {
		return p.errorAt(p.pos, "missing element symbol")
	}
	if rest[0] == '*' {
		p.pos++
		return nil
	}
	if len(rest) >= 2 {
		if z, ok := bracketAromatic[rest[:2]]; ok {
			a.AtomicNum, a.IsAromatic = z, true
			p.pos += 2
			return nil
		}
		if z, err := periodic.AtomicNumber(rest[:2]); err == nil && isUpper(rest[0]) {
			a.AtomicNum = z
			p.pos += 2
			return nil
		}
	}
	if z, ok := bracketAromatic[rest[:1]]; ok {
		a.AtomicNum, a.IsAromatic = z, true
		p.pos++
		return nil
	}
	if z, err := periodic.AtomicNumber(rest[:1]); err == nil && isUpper(rest[0]) {
		a.AtomicNum = z
		p.pos++
		return nil
	}

	return p.errorAt(p.pos, "unknown element symbol")
}

// addAtom appends a and bonds it to the previous atom, if any.
func (p *parser) addAtom(a molgraph.Atom) error {
	idx := p.g.AddAtom(a)
	if p.prev >= 0 {
		bt := p.bond
		if !p.hasBond {
			bt = p.defaultBond(p.prev, idx)
		}
		if _, err := p.g.AddBond(p.prev, idx, bt); err != nil {
			return p.errorAt(p.pos, err.Error())
		}
	}
	p.hasBond = false
	p.prev = idx

	return nil
}

// defaultBond is aromatic between two aromatic atoms, single otherwise.
func (p *parser) defaultBond(a, b int) molgraph.BondType {
	x, errA := p.g.Atom(a)
	y, errB := p.g.Atom(b)
	if errA == nil && errB == nil && x.IsAromatic && y.IsAromatic {
		return molgraph.BondAromatic
	}

	return molgraph.BondSingle
}

// number reads an unsigned decimal at the cursor.
func (p *parser) number() (int, bool) {
	start, n := p.pos, 0
	for p.pos < len(p.src) && isDigit(p.src[p.pos]) {
		n = n*10 + int(p.src[p.pos]-'0')
		p.pos++
	}

	return n, p.pos > start
}

func (p *parser) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) errorAt(pos int, reason string) error {
	return &SyntaxError{Input: p.src, Pos: pos, Reason: reason}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
