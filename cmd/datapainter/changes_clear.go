// Changes clear command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var changesClearAll bool

var changesClearCmd = &cobra.Command{
	Use:   "clear [table]",
	Short: "Discard unsaved changes without applying them",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 && !changesClearAll {
			failUsage("changes clear: name a table or pass --all")
		}
		if len(args) == 1 && changesClearAll {
			failUsage("changes clear: --all cannot be combined with a table name")
		}

		s := openStore()
		defer s.Close()

		if changesClearAll {
			if err := s.ChangeLog().ClearAll(); err != nil {
				fail("changes clear", err)
			}
			fmt.Println("cleared all unsaved changes")
			return
		}
		if err := s.ChangeLog().ClearTable(args[0]); err != nil {
			fail("changes clear", err)
		}
		fmt.Printf("cleared unsaved changes for %s\n", args[0])
	},
}

func init() {
	changesClearCmd.Flags().BoolVar(&changesClearAll, "all", false, "discard changes for every table")
}
