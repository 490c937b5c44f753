package root

import (
	"github.com/spf13/cobra"

	"github.com/gridworks/kropki/cmd/generate"

	"github.com/gridworks/kropki/cmd/solve"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kropki",
		Short: "Kropki is a propagation-based solver for 9x9 grid puzzles",
		Long: `A constraint-propagation solver for classic Sudoku and Kropki-dot
puzzles, driving bitmask domains to a fixpoint and backtracking with an
MRV heuristic where propagation alone stalls.`,
	}

	// add sub-commands
	rootCmd.AddCommand(solve.NewSolveCommand())
	rootCmd.AddCommand(generate.NewGenerateCommand())

	return rootCmd
}
