// Tables command: list known tables.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List point tables",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		s := openStore()
		defer s.Close()

		tables, err := s.Tables()
		if err != nil {
			fail("tables", err)
		}
		for _, name := range tables {
			fmt.Println(name)
		}
	},
}
