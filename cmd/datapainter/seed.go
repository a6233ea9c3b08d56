// Seed command: fill a table with random points.
package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/datapainter/internal/sqlite"
)

var (
	seedCount     int
	seedXFraction float64
	seedSeed      int64
)

var seedCmd = &cobra.Command{
	Use:   "seed <table>",
	Short: "Insert uniformly random points over the table's valid region",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if seedCount <= 0 {
			failUsage("seed: --count must be positive")
		}
		if seedXFraction < 0 || seedXFraction > 1 {
			failUsage("seed: --x-fraction must be in [0, 1]")
		}

		source := seedSeed
		if source == 0 {
			source = time.Now().UnixNano()
		}

		s := openStore()
		defer s.Close()

		err := s.SeedRandom(args[0], sqlite.SeedConfig{
			Count:     seedCount,
			XFraction: seedXFraction,
			Rand:      rand.New(rand.NewSource(source)),
		})
		if err != nil {
			fail("seed", err)
		}
		fmt.Printf("seeded %s with %d points\n", args[0], seedCount)
	},
}

func init() {
	seedCmd.Flags().IntVar(&seedCount, "count", 100, "number of points to generate")
	seedCmd.Flags().Float64Var(&seedXFraction, "x-fraction", 0.5, "fraction of points given the x label")
	seedCmd.Flags().Int64Var(&seedSeed, "seed", 0, "random seed (0 uses the current time)")
}
