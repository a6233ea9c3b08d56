// Point add command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	pointAddX     float64
	pointAddY     float64
	pointAddLabel string
)

var pointAddCmd = &cobra.Command{
	Use:   "add <table>",
	Short: "Insert a canonical point, bypassing the change log",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if pointAddLabel == "" {
			failUsage("point add: --label is required")
		}

		s := openStore()
		defer s.Close()

		id, err := s.AddPoint(args[0], pointAddX, pointAddY, pointAddLabel)
		if err != nil {
			fail("point add", err)
		}
		fmt.Printf("added point %d\n", id)
	},
}

func init() {
	pointAddCmd.Flags().Float64Var(&pointAddX, "x", 0, "x coordinate")
	pointAddCmd.Flags().Float64Var(&pointAddY, "y", 0, "y coordinate")
	pointAddCmd.Flags().StringVar(&pointAddLabel, "label", "", "label value (must be one of the table's two labels)")
}
