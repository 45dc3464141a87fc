package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "skewb",
	Short: "An optimal Skewb solver",
	Long: `Skewb is an optimal solver for the Skewb corner-turning puzzle.
It enumerates the puzzle's full state space breadth-first and answers any
scramble with a shortest move sequence.`,
	Version: "1.0.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(twistCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(unrankCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(optimizeCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(serveCmd)
}
