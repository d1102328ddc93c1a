package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/puzzlekit/puzzle"
	"github.com/katalvlaran/puzzlekit/solutions"
)

// newRunCommand creates the run command
func newRunCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run [day...]",
		Short: "Solve the given days (all days by default)",
		Long: `Solve both parts of each given day and print the answers.

With no arguments the days listed in the config file are run, or every
implemented day if the config lists none.

Examples:
  puzzlekit run 4 5
  puzzlekit run --input-dir ./inputs --parallel 5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := parseDays(args)
			if err != nil {
				return err
			}
			if len(days) == 0 {
				days = a.cfg.Days
			}

			reg, err := puzzle.NewRegistry(solutions.All()...)
			if err != nil {
				return err
			}
			runner := &puzzle.Runner{
				Solvers:     reg,
				Inputs:      puzzle.Loader{Dir: a.cfg.InputDir},
				Logger:      a.log,
				Parallelism: a.cfg.Parallelism,
			}
			results, err := runner.Run(cmd.Context(), days)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			failed, err := puzzle.Render(out, results, !a.cfg.NoColor && isTerminal(out))
			if err != nil {
				return err
			}
			a.log.Info("run finished", zap.Int("results", len(results)), zap.Int("failed", failed))
			if failed > 0 {
				return fmt.Errorf("%d of %d parts failed", failed, len(results))
			}

			return nil
		},
	}
}

// parseDays converts positional arguments to day numbers.
func parseDays(args []string) ([]int, error) {
	days := make([]int, 0, len(args))
	for _, arg := range args {
		d, err := strconv.Atoi(arg)
		if err != nil || d < 1 {
			return nil, fmt.Errorf("invalid day %q", arg)
		}
		days = append(days, d)
	}

	return days, nil
}

// isTerminal reports whether w is a terminal file.
func isTerminal(w any) bool {
	f, ok := w.(*os.File)

	return ok && isatty.IsTerminal(f.Fd())
}
