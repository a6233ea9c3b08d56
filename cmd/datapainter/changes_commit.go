// Changes commit command: the atomic save.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var changesCommitAll bool

var changesCommitCmd = &cobra.Command{
	Use:   "commit [table]",
	Short: "Atomically apply active changes to canonical storage",
	Long: `Commit applies every active change record for a table inside one
transaction: inserts become canonical points, deletes and relabels are
applied by id, and metadata changes update the table's metadata row. On
success the change log for the table is cleared; on any failure nothing
is applied and the log is kept for retry.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 && !changesCommitAll {
			failUsage("changes commit: name a table or pass --all")
		}
		if len(args) == 1 && changesCommitAll {
			failUsage("changes commit: --all cannot be combined with a table name")
		}

		s := openStore()
		defer s.Close()

		tables := args
		if changesCommitAll {
			var err error
			tables, err = s.Tables()
			if err != nil {
				fail("changes commit", err)
			}
		}

		for _, table := range tables {
			if err := s.Save(table); err != nil {
				fail(fmt.Sprintf("changes commit %s", table), err)
			}
			fmt.Printf("committed changes for %s\n", table)
		}
	},
}

func init() {
	changesCommitCmd.Flags().BoolVar(&changesCommitAll, "all", false, "commit changes for every table")
}
