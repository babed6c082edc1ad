package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/molbridge/mol"
	"github.com/katalvlaran/molbridge/report"
)

var errNoInput = errors.New("need a SMILES argument or --from-file")

func (c *cli) canonCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "canon <smiles>...",
		Short: "Print canonical SMILES",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := c.params(cmd)
			items := make([]report.Summary, 0, len(args))
			failed := false
			for _, in := range args {
				m, err := mol.FromSmilesWithParams(in, params)
				if err == nil {
					m, err = standardize(cmd, m)
				}
				if err != nil {
					c.log.Warn("parse failed", "input", in, "error", err)
					items = append(items, report.Failure(in, err))
					failed = true
					continue
				}
				items = append(items, report.Summary{Input: in, Smiles: m.ToSmiles()})
			}

			if c.format == report.FormatText {
				for _, s := range items {
					if s.Error != "" {
						fmt.Fprintf(cmd.OutOrStdout(), "!%s\t%s\n", s.Input, s.Error)
						continue
					}
					fmt.Fprintln(cmd.OutOrStdout(), s.Smiles)
				}
			} else if err := c.write(cmd, items); err != nil {
				return err
			}
			if failed {
				return errProblems
			}

			return nil
		},
	}
	cmd.Flags().Bool("no-sanitize", false, "skip sanitization")
	cmd.Flags().Bool("keep-hs", false, "keep explicit hydrogen atoms")
	cmd.Flags().Bool("parent", false, "keep only the largest fragment")
	cmd.Flags().Bool("uncharge", false, "neutralize charged sites")

	return cmd
}

// standardize applies --parent, then --uncharge.
func standardize(cmd *cobra.Command, m *mol.Mol) (*mol.Mol, error) {
	var err error
	if v, _ := cmd.Flags().GetBool("parent"); v {
		if m, err = m.FragmentParent(); err != nil {
			return nil, err
		}
	}
	if v, _ := cmd.Flags().GetBool("uncharge"); v {
		if m, err = m.Uncharge(); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (c *cli) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <smiles>...",
		Short: "Report structural problems without rejecting the input",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := mol.NewParserParams()
			params.SetSanitize(false)
			items := make([]report.Summary, 0, len(args))
			for _, in := range args {
				items = append(items, c.summarize(in, params, false))
			}
			if err := c.write(cmd, items); err != nil {
				return err
			}

			return okOrProblems(items)
		},
	}
}

func (c *cli) atomsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "atoms <smiles>",
		Short: "Print the atom table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := c.summarize(args[0], c.params(cmd), true)
			if err := c.write(cmd, []report.Summary{s}); err != nil {
				return err
			}

			return okOrProblems([]report.Summary{s})
		},
	}
	cmd.Flags().Bool("no-sanitize", false, "skip sanitization")
	cmd.Flags().Bool("keep-hs", false, "keep explicit hydrogen atoms")

	return cmd
}

func (c *cli) molblockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "molblock [smiles]",
		Short: "Convert SMILES to a V2000 molblock, or a molblock file to SMILES",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, _ := cmd.Flags().GetString("from-file")
			if from != "" {
				data, err := os.ReadFile(from)
				if err != nil {
					return err
				}
				lenient, _ := cmd.Flags().GetBool("lenient")
				params := mol.DefaultMolBlockParams()
				params.Sanitize = c.cfg.Parser.Sanitize
				params.RemoveHs = c.cfg.Parser.RemoveHs
				params.StrictParsing = !lenient
				m, err := mol.FromMolBlock(string(data), params)
				if err != nil {
					return err
				}
				c.log.Debug("molblock read", "path", from, "atoms", m.NumAtoms(true))
				return c.write(cmd, []report.Summary{report.Summarize(from, m, false)})
			}

			if len(args) != 1 {
				return errNoInput
			}
			m, err := mol.FromSmilesWithParams(args[0], c.params(cmd))
			if err != nil {
				return err
			}
			block, err := m.ToMolBlock()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), block)

			return err
		},
	}
	cmd.Flags().String("from-file", "", "read a V2000 molblock from this file")
	cmd.Flags().Bool("lenient", false, "relax molblock parsing")

	return cmd
}

// summarize parses one input and builds its report view.
func (c *cli) summarize(in string, params *mol.ParserParams, withAtoms bool) report.Summary {
	m, err := mol.FromSmilesWithParams(in, params)
	if err != nil {
		c.log.Warn("parse failed", "input", in, "error", err)
		return report.Failure(in, err)
	}

	return report.Summarize(in, m, withAtoms)
}

func okOrProblems(items []report.Summary) error {
	for _, s := range items {
		if !s.OK() {
			return errProblems
		}
	}

	return nil
}
