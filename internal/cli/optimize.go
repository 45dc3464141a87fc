package cli

import (
	"fmt"
	"os"

	"github.com/ehrlich-b/skewb/internal/skewb"
	"github.com/spf13/cobra"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize [scramble]",
	Short: "Simplify a move sequence",
	Long: `Simplify a move sequence by combining and cancelling consecutive moves
on the same axis (U U -> U', U U' -> nothing).

Example:
  skewb optimize "U U L D L U R'"`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scramble := args[0]

		optimized, err := skewb.OptimizeScramble(scramble)
		if err != nil {
			fmt.Printf("Error optimizing scramble: %v\n", err)
			os.Exit(1)
		}

		original, _ := skewb.ParseScramble(scramble)
		fmt.Printf("Original:  %s (%d moves)\n", scramble, len(original))
		if optimized == "" {
			fmt.Println("Optimized: (cancels completely)")
		} else {
			fmt.Printf("Optimized: %s (%d moves)\n", optimized, skewb.GetMoveCount(original))
		}
	},
}
