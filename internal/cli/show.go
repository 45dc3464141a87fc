package cli

import (
	"fmt"
	"os"

	"github.com/ehrlich-b/skewb/internal/sfen"
	"github.com/ehrlich-b/skewb/internal/skewb"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Display a Skewb state",
	Long: `Display a Skewb state given as an SFEN string or a state number.
Without arguments the solved state is shown.

Examples:
  skewb show
  skewb show --sfen "052143/01734265/00200212"
  skewb show --num 27251711060`,
	Run: func(cmd *cobra.Command, args []string) {
		sfenStr, _ := cmd.Flags().GetString("sfen")
		num, _ := cmd.Flags().GetUint64("num")
		numSet := cmd.Flags().Changed("num")

		if sfenStr != "" && numSet {
			fmt.Println("Specify either --sfen or --num, not both")
			os.Exit(1)
		}

		var s *skewb.Skewb
		if sfenStr != "" {
			state, err := sfen.Parse(sfenStr)
			if err != nil {
				fmt.Printf("Error parsing SFEN: %v\n", err)
				os.Exit(1)
			}
			s, err = state.ToSkewb()
			if err != nil {
				fmt.Printf("Error converting SFEN to state: %v\n", err)
				os.Exit(1)
			}
		} else if numSet {
			s = skewb.NewSkewbFromState(num)
		} else {
			s = skewb.NewSkewb()
		}

		fmt.Printf("State: %s\n", s)
		fmt.Printf("SFEN: %s\n", sfen.Generate(s))
		fmt.Printf("SFEN (colors): %s\n", sfen.FromSkewb(s).ColorString())
		fmt.Printf("State number: %d\n", s.StateNum())
		if s.IsSolved() {
			fmt.Println("Status: SOLVED")
		} else {
			fmt.Println("Status: scrambled")
		}
	},
}

func init() {
	showCmd.Flags().String("sfen", "", "State as SFEN string")
	showCmd.Flags().Uint64("num", 0, "State as state number")
}
