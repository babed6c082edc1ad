// File: text.go
// Role: Human-readable renderer with optional ANSI colors.

package report

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/fatih/color"
)

type textWriter struct {
	w       io.Writer
	heading *color.Color
	good    *color.Color
	bad     *color.Color
	tag     *color.Color
}

func newTextWriter(w io.Writer, colored bool) *textWriter {
	tw := &textWriter{
		w:       w,
		heading: color.New(color.Bold),
		good:    color.New(color.FgGreen),
		bad:     color.New(color.FgRed, color.Bold),
		tag:     color.New(color.FgYellow),
	}
	for _, c := range []*color.Color{tw.heading, tw.good, tw.bad, tw.tag} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return tw
}

func (t *textWriter) summaries(items []Summary) error {
	for i, s := range items {
		if i > 0 {
			if _, err := fmt.Fprintln(t.w); err != nil {
				return err
			}
		}
		if err := t.summary(s); err != nil {
			return err
		}
	}

	return nil
}

func (t *textWriter) summary(s Summary) error {
	if s.Error != "" {
		if _, err := fmt.Fprintf(t.w, "%s %s\n  %s\n", t.bad.Sprint("error"), s.Input, s.Error); err != nil {
			return err
		}
		return t.problems(s.Problems)
	}

	status := t.good.Sprint("ok")
	if len(s.Problems) > 0 {
		status = t.bad.Sprintf("%d problem(s)", len(s.Problems))
	}
	if _, err := fmt.Fprintf(t.w, "%s %s\n  atoms=%d (with Hs %d) bonds=%d rings=%d fragments=%d  %s\n",
		t.heading.Sprint(s.Smiles), "<- "+s.Input, s.NumAtoms, s.NumAllHs, s.NumBonds, s.NumRings, s.Fragments, status); err != nil {
		return err
	}
	if err := t.problems(s.Problems); err != nil {
		return err
	}

	return t.atoms(s.Atoms)
}

func (t *textWriter) problems(ps []ProblemView) error {
	for _, p := range ps {
		where := ""
		switch {
		case p.Atom != nil:
			where = " (atom " + strconv.Itoa(*p.Atom) + ")"
		case len(p.Atoms) > 0:
			where = fmt.Sprintf(" (atoms %v)", p.Atoms)
		}
		if _, err := fmt.Fprintf(t.w, "  %s%s: %s\n", t.tag.Sprint(p.Type), where, p.Message); err != nil {
			return err
		}
	}

	return nil
}

func (t *textWriter) atoms(rows []AtomView) error {
	if len(rows) == 0 {
		return nil
	}
	tw := tabwriter.NewWriter(t.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  idx\tsym\tarom\tZ\tcharge\tHs\tvalence\thybrid")
	for _, r := range rows {
		fmt.Fprintf(tw, "  %d\t%s\t%t\t%d\t%d\t%d\t%d\t%s\n",
			r.Index, r.Symbol, r.Aromatic, r.AtomicNum, r.FormalCharge, r.TotalHs, r.TotalValence, r.Hybridization)
	}

	return tw.Flush()
}
