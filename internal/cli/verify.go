package cli

import (
	"fmt"
	"os"

	"github.com/ehrlich-b/skewb/internal/sfen"
	"github.com/ehrlich-b/skewb/internal/skewb"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [scramble]",
	Short: "Solve a scramble and check the solution restores solved",
	Long: `Apply a scramble, solve it, re-apply the returned solution and verify
the puzzle ends up solved. Also checks that the solution is no longer
than the scramble after simplification.

Example:
  skewb verify "U L' D R U' L"`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scramble := args[0]

		moves, err := skewb.ParseScramble(scramble)
		if err != nil {
			fmt.Printf("Error parsing scramble: %v\n", err)
			os.Exit(1)
		}

		s := skewb.NewSkewb()
		s.ApplyMoves(moves)
		fmt.Printf("Scrambled state: %s\n", sfen.Generate(s))

		solver, err := skewb.GetSolver("bfs")
		if err != nil {
			fmt.Printf("Error getting solver: %v\n", err)
			os.Exit(1)
		}

		result, err := solver.Solve(s)
		if err != nil {
			fmt.Printf("Error solving: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Solution: %s (%d moves)\n", skewb.FormatMoves(result.Solution), result.Steps)

		s.ApplyMoves(result.Solution)
		if !s.IsSolved() {
			fmt.Println("FAIL: solution did not restore the solved state")
			fmt.Printf("Final state: %s\n", sfen.Generate(s))
			os.Exit(1)
		}

		if simplified := skewb.GetMoveCount(moves); result.Steps > simplified {
			fmt.Printf("FAIL: solution has %d moves but the scramble simplifies to %d\n",
				result.Steps, simplified)
			os.Exit(1)
		}

		fmt.Println("PASS: solution restores the solved state")
	},
}
