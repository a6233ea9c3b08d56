// Rename command: rename a table, moving metadata and pending changes.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var renameCmd = &cobra.Command{
	Use:   "rename <old> <new>",
	Short: "Rename a point table",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		s := openStore()
		defer s.Close()

		if err := s.RenameTable(args[0], args[1]); err != nil {
			fail("rename", err)
		}
		fmt.Printf("renamed %s to %s\n", args[0], args[1])
	},
}
