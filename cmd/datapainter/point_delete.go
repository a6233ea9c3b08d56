// Point delete command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pointDeleteID int64

var pointDeleteCmd = &cobra.Command{
	Use:   "delete <table>",
	Short: "Delete a canonical point by id, bypassing the change log",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if pointDeleteID <= 0 {
			failUsage("point delete: --id must be a positive point id")
		}

		s := openStore()
		defer s.Close()

		if err := s.DeletePoint(args[0], pointDeleteID); err != nil {
			fail("point delete", err)
		}
		fmt.Printf("deleted point %d\n", pointDeleteID)
	},
}

func init() {
	pointDeleteCmd.Flags().Int64Var(&pointDeleteID, "id", 0, "point id")
}
