package generate

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/gridworks/kropki/internal/sat"
	"github.com/gridworks/kropki/pkg/kropki"
)

func NewGenerateCommand() *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Prints a fresh solved board",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(seed)
		},
	}
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 uses the current time)")
	return cmd
}

func run(seed int64) error {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	board, err := sat.Generate(rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}
	for row := 0; row < kropki.N; row++ {
		for col := 0; col < kropki.N; col++ {
			fmt.Printf("%d", board[kropki.Index(row, col)])
			if col != kropki.N-1 {
				fmt.Printf(" ")
			}
		}
		fmt.Printf("\n")
	}
	return nil
}
