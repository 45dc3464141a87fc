package cli

import (
	"fmt"
	"os"

	"github.com/ehrlich-b/skewb/internal/sfen"
	"github.com/ehrlich-b/skewb/internal/skewb"
	"github.com/spf13/cobra"
)

var twistCmd = &cobra.Command{
	Use:   "twist [moves]",
	Short: "Apply moves to a Skewb and display the result",
	Long: `Apply a sequence of moves to a Skewb and display the resulting state.
This command does not solve the puzzle - it just applies the moves and
shows the result.

Examples:
  skewb twist "U L' D R"
  skewb twist "R R" --sfen
  skewb twist "U'" --start "012345/01234567/00000000"`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		moves := args[0]
		useSfenOutput, _ := cmd.Flags().GetBool("sfen")
		startSfen, _ := cmd.Flags().GetString("start")

		// Create puzzle from starting position
		var s *skewb.Skewb
		if startSfen != "" {
			state, err := sfen.Parse(startSfen)
			if err != nil {
				fmt.Printf("Error parsing starting SFEN: %v\n", err)
				os.Exit(1)
			}
			s, err = state.ToSkewb()
			if err != nil {
				fmt.Printf("Error converting SFEN to state: %v\n", err)
				os.Exit(1)
			}
		} else {
			s = skewb.NewSkewb()
		}

		if !useSfenOutput {
			fmt.Printf("Applying moves: %s\n", moves)
			if startSfen != "" {
				fmt.Printf("Starting from SFEN: %s\n", startSfen)
			}
		}

		parsedMoves, err := skewb.ParseMoves(moves)
		if err != nil {
			if !useSfenOutput {
				fmt.Printf("Error parsing moves: %v\n", err)
			}
			os.Exit(1)
		}

		s.ApplyMoves(parsedMoves)

		if useSfenOutput {
			fmt.Print(sfen.Generate(s))
		} else {
			fmt.Printf("\nState after applying moves:\n%s\n", s)
			fmt.Printf("SFEN: %s\n", sfen.Generate(s))
			fmt.Printf("State number: %d\n", s.StateNum())
			fmt.Printf("Moves applied: %d\n", len(parsedMoves))

			if s.IsSolved() {
				fmt.Println("Status: SOLVED")
			} else {
				fmt.Println("Status: scrambled")
			}
		}
	},
}

func init() {
	twistCmd.Flags().Bool("sfen", false, "Output final state as SFEN string")
	twistCmd.Flags().String("start", "", "Starting state as SFEN string (default: solved)")
}
