package cli

import (
	"fmt"
	"os"

	"github.com/ehrlich-b/skewb/internal/sfen"
	"github.com/ehrlich-b/skewb/internal/skewb"
	"github.com/spf13/cobra"
)

var solveCmd = &cobra.Command{
	Use:   "solve [scramble]",
	Short: "Solve a scrambled Skewb",
	Long: `Solve a scrambled Skewb optimally. The scramble should be provided as a
string of moves (U, U', D, D', L, L', R, R'); it is applied to the solved
puzzle, or to the state given with --start.

Use --headless for programmatic output (space-separated moves only).`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scramble := args[0]
		algorithm, _ := cmd.Flags().GetString("algorithm")
		headless, _ := cmd.Flags().GetBool("headless")
		useSfenOutput, _ := cmd.Flags().GetBool("sfen")
		startSfen, _ := cmd.Flags().GetString("start")

		// Create puzzle from starting position
		var s *skewb.Skewb
		if startSfen != "" {
			state, err := sfen.Parse(startSfen)
			if err != nil {
				if !headless {
					fmt.Printf("Error parsing starting SFEN: %v\n", err)
				}
				os.Exit(1)
			}
			s, err = state.ToSkewb()
			if err != nil {
				if !headless {
					fmt.Printf("Error converting SFEN to state: %v\n", err)
				}
				os.Exit(1)
			}
		} else {
			s = skewb.NewSkewb()
		}

		if !headless {
			fmt.Printf("Solving Skewb with scramble: %s\n", scramble)
			fmt.Printf("Using algorithm: %s\n", algorithm)
			if startSfen != "" {
				fmt.Printf("Starting from SFEN: %s\n", startSfen)
			}
		}

		// Apply scramble
		if scramble != "" {
			moves, err := skewb.ParseScramble(scramble)
			if err != nil {
				if !headless {
					fmt.Printf("Error parsing scramble: %v\n", err)
				}
				os.Exit(1)
			}
			s.ApplyMoves(moves)
		}

		if !headless {
			fmt.Printf("\nState after scramble: %s\n", sfen.Generate(s))
			fmt.Println("Building solution table (one-time cost)...")
		}

		solver, err := skewb.GetSolver(algorithm)
		if err != nil {
			if !headless {
				fmt.Printf("Error getting solver: %v\n", err)
			}
			os.Exit(1)
		}

		result, err := solver.Solve(s)
		if err != nil {
			if !headless {
				fmt.Printf("Error solving: %v\n", err)
			}
			os.Exit(1)
		}

		// Apply solution to get final state
		s.ApplyMoves(result.Solution)

		solutionStr := skewb.FormatMoves(result.Solution)

		if useSfenOutput {
			fmt.Print(sfen.Generate(s))
		} else if headless {
			fmt.Print(solutionStr)
		} else {
			fmt.Printf("Solution: %s\n", solutionStr)
			fmt.Printf("Steps: %d\n", result.Steps)
			fmt.Printf("Time: %v\n", result.Duration)
		}
	},
}

func init() {
	solveCmd.Flags().StringP("algorithm", "a", "bfs", "Solving algorithm to use (bfs)")
	solveCmd.Flags().Bool("headless", false, "Output only space-separated moves for programmatic use")
	solveCmd.Flags().Bool("sfen", false, "Output final state as SFEN string instead of moves")
	solveCmd.Flags().String("start", "", "Starting state as SFEN string (default: solved)")
}
