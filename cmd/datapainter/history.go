// History command: past commits from the save audit trail.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history <table>",
	Short: "List past commits for a table, most recent first",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := openStore()
		defer s.Close()

		// The table may have been dropped since its last save; history is
		// still worth showing, so only the name format is validated.
		history, err := s.SaveHistory(args[0])
		if err != nil {
			fail("history", err)
		}
		if len(history) == 0 {
			fmt.Println("no saves recorded")
			return
		}
		for _, rec := range history {
			fmt.Printf("%s\t%s\t%d change(s)\t%s\n",
				rec.SaveID, rec.TableName, rec.Applied,
				rec.SavedAt.Format(time.RFC3339))
		}
	},
}
