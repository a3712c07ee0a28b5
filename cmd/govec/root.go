package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/govec/internal/calc"
	"github.com/philipparndt/govec/internal/config"
	"github.com/philipparndt/govec/internal/logging"
	"github.com/philipparndt/govec/internal/repl"
	"github.com/philipparndt/govec/internal/report"
	"github.com/philipparndt/govec/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// cli holds the state shared by all subcommands of one invocation
type cli struct {
	configPath string
	debug      bool
	format     string
	precision  int

	cfg    *config.Config
	opts   report.Options
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "govec",
		Short: "A calculator for vectors of any dimension",
		Long: `govec adds, subtracts, multiplies and compares vectors of any dimension,
and reports their norm and polar coordinates.

Run without a subcommand for the interactive menu, or pass the operands as flags:

  govec add --a 1,2,3 --b 4,5,6
  govec scale --a=-1,2 --k 0.5`,
		Version:           version.GetFullVersion(),
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = c.logger.Sync()
		},
		RunE: c.runInteractive,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "config file path (default ./"+config.DefaultFileName+" when present)")
	flags.BoolVar(&c.debug, "debug", false, "enable debug logging")
	flags.StringVarP(&c.format, "output", "o", "text", "output format: text, json or yaml")
	flags.IntVar(&c.precision, "precision", -1, "digits after the decimal point in text output, -1 for shortest")

	for _, op := range calc.Operations() {
		if op == calc.OpQuit {
			continue
		}
		root.AddCommand(c.newOperationCmd(op))
	}
	root.AddCommand(c.newBatchCmd(), c.newVersionCmd())

	return root
}

// setup resolves the config file, applies flag overrides and builds the logger
func (c *cli) setup(cmd *cobra.Command, args []string) error {
	dir, err := os.Getwd()
	if err != nil {
		dir = "."
	}

	cfg, loaded, err := config.Resolve(c.configPath, dir)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("debug") {
		cfg.Debug = c.debug
	}
	if flags.Changed("output") {
		cfg.Output.Format = c.format
	}
	if flags.Changed("precision") {
		p := c.precision
		cfg.Output.Precision = &p
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	opts, err := cfg.ReportOptions()
	if err != nil {
		return err
	}

	var logger *zap.Logger
	if cfg.Debug {
		logger, err = logging.NewLogger(true)
	} else {
		logger, err = logging.NewQuietLogger()
	}
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	c.cfg, c.opts, c.logger = cfg, opts, logger
	c.logger.Debug("config loaded",
		zap.String("config_path", loaded),
		zap.Bool("debug", cfg.Debug),
		zap.String("format", string(opts.Format)),
		zap.Int("precision", opts.Precision),
	)
	return nil
}

func (c *cli) runInteractive(cmd *cobra.Command, args []string) error {
	session := repl.New(cmd.InOrStdin(), cmd.OutOrStdout(),
		repl.WithLogger(c.logger),
		repl.WithReportOptions(c.opts),
	)
	return session.Run()
}

func (c *cli) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "govec %s\n", version.GetFullVersion())
		},
	}
}
