package main

import (
	"bufio"
	"context"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/molbridge/mol"
	"github.com/katalvlaran/molbridge/report"
)

func (c *cli) batchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Process one SMILES per line concurrently",
		Long:  "Reads one SMILES per line (blank lines and lines starting with # are skipped); results keep input order.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := readLines(args[0])
			if err != nil {
				return err
			}
			jobs, _ := cmd.Flags().GetInt("jobs")
			if !cmd.Flags().Changed("jobs") {
				jobs = c.cfg.Batch.Jobs
			}
			withAtoms, _ := cmd.Flags().GetBool("atoms")

			items, err := c.runBatch(cmd.Context(), inputs, c.params(cmd), jobs, withAtoms)
			if err != nil {
				return err
			}
			if err = c.write(cmd, items); err != nil {
				return err
			}

			return okOrProblems(items)
		},
	}
	cmd.Flags().Int("jobs", 0, "parallel workers (0 = one per CPU)")
	cmd.Flags().Bool("atoms", false, "include atom tables")
	cmd.Flags().Bool("no-sanitize", false, "skip sanitization")
	cmd.Flags().Bool("keep-hs", false, "keep explicit hydrogen atoms")

	return cmd
}

// runBatch parses inputs on up to jobs goroutines. Each worker owns the
// molecules it creates; the parameters are copied per worker.
func (c *cli) runBatch(ctx context.Context, inputs []string, params *mol.ParserParams, jobs int, withAtoms bool) ([]report.Summary, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	out := make([]report.Summary, len(inputs))
	if len(inputs) == 0 {
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(inputs)))
	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			local := *params
			out[i] = c.summarize(in, &local, withAtoms)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	c.log.Info("batch done", "inputs", len(inputs), "jobs", jobs)

	return out, nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}

	return lines, sc.Err()
}
