// Changes list command.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/datapainter/pkg/types"
)

var changesListCmd = &cobra.Command{
	Use:   "list [table]",
	Short: "List unsaved changes for one table or all tables",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := openStore()
		defer s.Close()

		var records []types.ChangeRecord
		var err error
		if len(args) == 1 {
			records, err = s.ChangeLog().Changes(args[0])
		} else {
			records, err = s.ChangeLog().AllChanges()
		}
		if err != nil {
			fail("changes list", err)
		}

		for _, rec := range records {
			fmt.Println(formatChange(rec))
		}
		if len(records) == 0 {
			fmt.Println("no unsaved changes")
		}
	},
}

// formatChange renders one record as a single line for display.
func formatChange(rec types.ChangeRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d\t%s\t%s", rec.ID, rec.TableName, rec.Kind)

	switch rec.Kind {
	case types.ChangeInsert:
		fmt.Fprintf(&b, "\t(%g, %g) %s", *rec.X, *rec.Y, *rec.NewLabel)
	case types.ChangeDelete:
		fmt.Fprintf(&b, "\tid=%d (%g, %g) %s", *rec.DataID, *rec.X, *rec.Y, *rec.OldLabel)
	case types.ChangeUpdate:
		fmt.Fprintf(&b, "\tid=%d %s -> %s", *rec.DataID, *rec.OldLabel, *rec.NewLabel)
	case types.ChangeMeta:
		fmt.Fprintf(&b, "\t%s: %s -> %s", *rec.MetaField, *rec.OldValue, *rec.NewValue)
	}
	if !rec.Active {
		b.WriteString("\t(undone)")
	}
	return b.String()
}
