// Copy command: duplicate a table's points and metadata.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var copyCmd = &cobra.Command{
	Use:   "copy <src> <dst>",
	Short: "Copy a point table, preserving point ids",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		s := openStore()
		defer s.Close()

		if err := s.CopyTable(args[0], args[1]); err != nil {
			fail("copy", err)
		}
		fmt.Printf("copied %s to %s\n", args[0], args[1])
	},
}
