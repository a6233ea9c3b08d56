// Create command: new data table with metadata.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/datapainter/pkg/types"
)

var (
	createXAxis    string
	createYAxis    string
	createTarget   string
	createXLabel   string
	createOLabel   string
	createXMin     float64
	createXMax     float64
	createYMin     float64
	createYMax     float64
	createZeroBars bool
)

var createCmd = &cobra.Command{
	Use:   "create <table>",
	Short: "Create a new point table",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		table := args[0]
		if createXLabel == createOLabel {
			failUsage("create: --x-label and --o-label must differ (both %q)", createXLabel)
		}
		if createXMin >= createXMax {
			failUsage("create: --x-min must be less than --x-max")
		}
		if createYMin >= createYMax {
			failUsage("create: --y-min must be less than --y-max")
		}

		s := openStore()
		defer s.Close()

		err := s.CreateTable(&types.Metadata{
			TableName:    table,
			XAxisName:    createXAxis,
			YAxisName:    createYAxis,
			TargetColumn: createTarget,
			XLabel:       createXLabel,
			OLabel:       createOLabel,
			ValidXMin:    createXMin,
			ValidXMax:    createXMax,
			ValidYMin:    createYMin,
			ValidYMax:    createYMax,
			ShowZeroBars: createZeroBars,
		})
		if err != nil {
			fail("create", err)
		}
		fmt.Printf("created table %s\n", table)
	},
}

func init() {
	createCmd.Flags().StringVar(&createXAxis, "x-axis", "x", "x axis name")
	createCmd.Flags().StringVar(&createYAxis, "y-axis", "y", "y axis name")
	createCmd.Flags().StringVar(&createTarget, "target-column", "target", "label column name")
	createCmd.Flags().StringVar(&createXLabel, "x-label", "x", "label value for x-class points")
	createCmd.Flags().StringVar(&createOLabel, "o-label", "o", "label value for o-class points")
	createCmd.Flags().Float64Var(&createXMin, "x-min", -10, "valid region x minimum")
	createCmd.Flags().Float64Var(&createXMax, "x-max", 10, "valid region x maximum")
	createCmd.Flags().Float64Var(&createYMin, "y-min", -10, "valid region y minimum")
	createCmd.Flags().Float64Var(&createYMax, "y-max", 10, "valid region y maximum")
	createCmd.Flags().BoolVar(&createZeroBars, "zero-bars", false, "highlight the zero axes when rendering")
}
