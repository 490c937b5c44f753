package solve

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gridworks/kropki/pkg/kropki"
	"github.com/gridworks/kropki/pkg/kropki/solver"
)

func NewSolveCommand() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "solve <path>",
		Short: "Solves a puzzle file of givens and kropki dots",
		Long: `Solves a puzzle file. For instance:

# givens, 81 cells row-major, '.' or '0' for blanks
2...7.1.3
.7..8..5.
3....6...
..6......
91..5..28
......5..
...3....4
.2..9..7.
5.4.1...6
# optional dots and chains, one-based coordinates
white 1 2 1 3
black 4 5 5 5
chain 7 1 8 1 9 1
`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("file (%s) not found", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], verbose)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every branch decision")
	return cmd
}

func run(path string, verbose bool) error {
	logger := logrus.New()
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	puzzleFile, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error opening puzzle file (%s): %w", path, err)
	}
	defer puzzleFile.Close()

	puzzle, err := NewPuzzle(puzzleFile)
	if err != nil {
		return fmt.Errorf("error parsing puzzle file (%s): %w", path, err)
	}

	// build solver
	options := []solver.Option{
		solver.WithClassicGroups(),
		solver.WithConstraints(puzzle.Constraints...),
	}
	if verbose {
		options = append(options, solver.WithTracer(branchLogger{logger: logger}))
	}
	so, err := solver.NewSolver(options...)
	if err != nil {
		return err
	}

	// get solution
	solution, err := so.Solve(context.Background(), puzzle.Givens)
	if err != nil {
		return err
	}
	if solution.Error() != nil {
		fmt.Println("no solution found")
		return nil
	}
	logger.WithField("branches", solution.Branches()).Debug("search finished")
	fmt.Print(solution)

	return nil
}

// branchLogger feeds branch decisions to logrus at debug level.
type branchLogger struct {
	logger *logrus.Logger
}

func (t branchLogger) Trace(p kropki.SearchPosition) {
	t.logger.WithFields(logrus.Fields{
		"branch": p.Branches(),
		"depth":  p.Depth(),
		"cell":   p.Cell().String(),
		"digit":  p.Digit(),
	}).Debug("branch")
}
