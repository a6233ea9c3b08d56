// Drop command: delete a table with its metadata and pending changes.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var dropCmd = &cobra.Command{
	Use:   "drop <table>",
	Short: "Delete a point table and its unsaved changes",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := openStore()
		defer s.Close()

		if err := s.DropTable(args[0]); err != nil {
			fail("drop", err)
		}
		fmt.Printf("dropped table %s\n", args[0])
	},
}
