// Command depth-chart generates the full solution table and dumps the
// distribution of optimal solution lengths, suitable for pasting into a
// spreadsheet.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/ehrlich-b/skewb/internal/skewb"
)

func main() {
	verbose := flag.Bool("v", false, "log per-layer progress")
	flag.Parse()

	opts := &skewb.GenerateOptions{}
	if *verbose {
		opts.OnLayer = func(depth, layerSize, total int) {
			log.Printf("depth %d: %d new states (%d total)", depth, layerSize, total)
		}
	}

	table := skewb.NewSolutionTable()
	start := time.Now()
	if err := table.Generate(opts); err != nil {
		log.Fatalf("generate: %v", err)
	}

	fmt.Println("depth\tstates")
	for depth, count := range table.LayerCounts() {
		fmt.Printf("%d\t%d\n", depth, count)
	}
	fmt.Printf("\ntotal\t%d\n", table.Size())
	fmt.Printf("max\t%d\n", table.MaxDepth())
	fmt.Printf("time\t%v\n", time.Since(start))
}
