package cli

import (
	"fmt"
	"time"

	"github.com/ehrlich-b/skewb/internal/skewb"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Enumerate the state space and report its structure",
	Long: `Generate the full solution table and print how many states are first
reached at each depth, along with the maximum depth - the longest optimal
solution any scramble can require.`,
	Run: func(cmd *cobra.Command, args []string) {
		quiet, _ := cmd.Flags().GetBool("quiet")

		table := skewb.NewSolutionTable()
		opts := &skewb.GenerateOptions{}
		if !quiet {
			opts.OnLayer = func(depth, layerSize, total int) {
				fmt.Printf("depth %2d: %9d new states (%d total)\n", depth, layerSize, total)
			}
		}

		start := time.Now()
		if err := table.Generate(opts); err != nil {
			fmt.Printf("Error generating table: %v\n", err)
			return
		}
		elapsed := time.Since(start)

		fmt.Println()
		fmt.Println("Depth  States")
		for depth, count := range table.LayerCounts() {
			fmt.Printf("%5d  %9d\n", depth, count)
		}
		fmt.Println()
		fmt.Printf("Reachable states: %d\n", table.Size())
		fmt.Printf("Maximum depth: %d\n", table.MaxDepth())
		fmt.Printf("Generation time: %v\n", elapsed)
	},
}

func init() {
	analyzeCmd.Flags().BoolP("quiet", "q", false, "Suppress per-layer progress output")
}
