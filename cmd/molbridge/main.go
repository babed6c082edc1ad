// Command molbridge parses, canonicalizes and checks molecules from the
// command line.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/katalvlaran/molbridge/internal/config"
	"github.com/katalvlaran/molbridge/internal/logging"
	"github.com/katalvlaran/molbridge/mol"
	"github.com/katalvlaran/molbridge/report"
)

// errProblems makes the process exit non-zero after a report was printed.
var errProblems = errors.New("problems found")

// cli is the state shared by all subcommands of one invocation.
type cli struct {
	cfg    config.Config
	log    *logging.Logger
	format report.Format
	color  bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errProblems) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:           "molbridge",
		Short:         "Molecule handles over SMILES and molblocks",
		Long:          `molbridge parses SMILES and MDL molblocks, writes canonical SMILES and reports structural problems.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup(cmd)
		},
	}

	root.PersistentFlags().String("config", "", "TOML configuration file")
	root.PersistentFlags().String("format", "", "output format (text|json|yaml|msgpack)")
	root.PersistentFlags().String("color", "", "colorize text output (auto|on|off)")
	root.PersistentFlags().String("log-level", "", "log level (debug|info|warn|error)")

	root.AddCommand(c.canonCmd(), c.checkCmd(), c.atomsCmd(), c.molblockCmd(), c.batchCmd())

	return root
}

// setup loads the configuration file and applies flag overrides.
func (c *cli) setup(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if v, _ := cmd.Flags().GetString("format"); v != "" {
		cfg.Output.Format = v
	}
	if v, _ := cmd.Flags().GetString("color"); v != "" {
		cfg.Output.Color = v
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.Log.Level = v
	}
	cfg.Normalize()
	if err = cfg.Validate(); err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	c.log = logging.New(logging.Config{Level: level, JSON: cfg.Log.JSON, Service: "molbridge"}, cmd.ErrOrStderr())
	if c.format, err = report.ParseFormat(cfg.Output.Format); err != nil {
		return err
	}
	switch cfg.Output.Color {
	case "on":
		c.color = true
	case "off":
		c.color = false
	default:
		f, ok := cmd.OutOrStdout().(*os.File)
		c.color = ok && isTerminal(f)
	}
	c.cfg = cfg
	c.log.Debug("configuration loaded", "path", path, "format", c.format, "color", c.color)

	return nil
}

// params builds parser parameters from the configuration and per-command flags.
func (c *cli) params(cmd *cobra.Command) *mol.ParserParams {
	p := mol.NewParserParams()
	p.SetSanitize(c.cfg.Parser.Sanitize)
	p.SetRemoveHs(c.cfg.Parser.RemoveHs)
	if cmd.Flags().Lookup("no-sanitize") != nil {
		if v, _ := cmd.Flags().GetBool("no-sanitize"); v {
			p.SetSanitize(false)
		}
	}
	if cmd.Flags().Lookup("keep-hs") != nil {
		if v, _ := cmd.Flags().GetBool("keep-hs"); v {
			p.SetRemoveHs(false)
		}
	}

	return p
}

// write renders items in the configured format.
func (c *cli) write(cmd *cobra.Command, items []report.Summary) error {
	return report.Write(cmd.OutOrStdout(), c.format, items, report.WithColor(c.color))
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
