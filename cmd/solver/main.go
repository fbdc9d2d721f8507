// Command-line solver: reads a puzzle from a flag, runs
// propagation, and prints the solution or the failure.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Groberts93/sudoku-solver/puzzle"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var (
		givens   string
		logLevel string
		showGrid bool
	)
	cmd := &cobra.Command{
		Use:           "solver",
		Short:         "Solve a 9x9 Sudoku puzzle by constraint propagation",
		Long: `Solve a 9x9 Sudoku puzzle by singleton constraint propagation.

The puzzle is 81 digits in row-major order, with 0 marking an
unknown cell.  Puzzles that need guessing are reported as stalled;
this solver never searches.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := zerolog.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("unknown log level %q", logLevel)
			}
			logger := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
				Level(level).
				With().Timestamp().Logger()
			return run(cmd.OutOrStdout(), logger, givens, showGrid)
		},
	}
	cmd.Flags().StringVarP(&givens, "puzzle", "p", "", "81-character puzzle, row-major, 0 for unknowns")
	cmd.Flags().StringVarP(&logLevel, "log", "l", "warn", "log level (trace, debug, info, warn, error)")
	cmd.Flags().BoolVarP(&showGrid, "grid", "g", false, "also print the solved board as a grid")
	cmd.MarkFlagRequired("puzzle")
	return cmd
}

// run solves one puzzle and reports the outcome on out.  Solve
// failures (conflicts, stalls) are part of the normal output, not
// command errors; only malformed invocations error out.
func run(out io.Writer, logger zerolog.Logger, givens string, showGrid bool) error {
	b, err := puzzle.New(givens)
	if err != nil {
		return err
	}
	b.SetLogger(logger)
	if err := b.Solve(); err != nil {
		fmt.Fprintln(out, err)
		return nil
	}
	fmt.Fprintf(out, "solution: %s\n", b)
	if showGrid {
		fmt.Fprint(out, b.Grid())
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
