package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/ehrlich-b/skewb/internal/sfen"
	"github.com/ehrlich-b/skewb/internal/skewb"
	"github.com/spf13/cobra"
)

var rankCmd = &cobra.Command{
	Use:   "rank [sfen]",
	Short: "Encode an SFEN state to its state number",
	Long: `Encode a Skewb state given as an SFEN string into its state number,
the dense integer the solver tables are keyed by.

Example:
  skewb rank "052143/01734265/00200212"`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		state, err := sfen.Parse(args[0])
		if err != nil {
			fmt.Printf("Error parsing SFEN: %v\n", err)
			os.Exit(1)
		}
		s, err := state.ToSkewb()
		if err != nil {
			fmt.Printf("Error converting SFEN to state: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(s.StateNum())
	},
}

var unrankCmd = &cobra.Command{
	Use:   "unrank [number]",
	Short: "Decode a state number to its SFEN state",
	Long: `Decode a state number back into its SFEN string.

Example:
  skewb unrank 27251711060`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		num, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			fmt.Printf("Error parsing state number: %v\n", err)
			os.Exit(1)
		}
		useColor, _ := cmd.Flags().GetBool("color")

		s := skewb.NewSkewbFromState(num)
		if useColor {
			fmt.Println(sfen.FromSkewb(s).ColorString())
		} else {
			fmt.Println(sfen.Generate(s))
		}
	},
}

func init() {
	unrankCmd.Flags().BoolP("color", "c", false, "Render center facelets as color letters")
}
