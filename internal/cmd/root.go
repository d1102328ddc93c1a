package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/puzzlekit/internal/config"
	"github.com/katalvlaran/puzzlekit/internal/logger"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// globalFlags are shared by every subcommand; zero values mean "not set".
type globalFlags struct {
	configPath string
	inputDir   string
	logLevel   string
	parallel   int
	noColor    bool
}

// app is the state prepared by the root command before a subcommand runs.
type app struct {
	flags globalFlags
	cfg   *config.Config
	log   *zap.Logger
}

// NewRootCommand creates and returns the root cobra command for puzzlekit
func NewRootCommand() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "puzzlekit",
		Short: "Daily puzzle solvers",
		Long: `puzzlekit runs daily puzzle solvers over their input files and prints
the answers.

Inputs are read from <input-dir>/dayNN.txt. Configuration is loaded from
.puzzlekit/config.yaml if present; CLI flags override configuration file
settings.`,
		Version: Version,
		// main reports the error; silence usage and cobra's own copy
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.flags.configPath, "config", config.DefaultPath, "path to the YAML config file")
	pf.StringVar(&a.flags.inputDir, "input-dir", "", "directory holding dayNN.txt inputs")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.IntVar(&a.flags.parallel, "parallel", 0, "number of days to run at once")
	pf.BoolVar(&a.flags.noColor, "no-color", false, "disable colored output")

	cmd.AddCommand(newRunCommand(a))
	cmd.AddCommand(newListCommand())

	return cmd
}

// setup loads the config file, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig(a.flags.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("input-dir") {
		cfg.InputDir = a.flags.inputDir
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.flags.logLevel
	}
	if flags.Changed("parallel") {
		cfg.Parallelism = a.flags.parallel
	}
	if flags.Changed("no-color") {
		cfg.NoColor = a.flags.noColor
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// logs follow a redirected error stream, as set by SetErr
	var log *zap.Logger
	if w := cmd.ErrOrStderr(); w != os.Stderr {
		log, err = logger.NewWriter(cfg.LogLevel, w)
	} else {
		log, err = logger.New(cfg.LogLevel)
	}
	if err != nil {
		return err
	}
	a.cfg, a.log = cfg, log

	return nil
}
