// Show command: table metadata and counts.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <table>",
	Short: "Show a table's metadata, point counts, and pending changes",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		table := args[0]
		s := openStore()
		defer s.Close()

		m, err := s.ReadMetadata(table)
		if err != nil {
			fail("show", err)
		}
		pts, err := s.Points(table)
		if err != nil {
			fail("show", err)
		}
		xCount, err := pts.CountByLabel(m.XLabel)
		if err != nil {
			fail("show", err)
		}
		oCount, err := pts.CountByLabel(m.OLabel)
		if err != nil {
			fail("show", err)
		}
		pending, err := s.ChangeLog().CountActive(table)
		if err != nil {
			fail("show", err)
		}

		fmt.Printf("table:    %s\n", m.TableName)
		fmt.Printf("axes:     %s, %s (label column %s)\n", m.XAxisName, m.YAxisName, m.TargetColumn)
		fmt.Printf("labels:   %s=%d  %s=%d\n", m.XLabel, xCount, m.OLabel, oCount)
		fmt.Printf("valid x:  [%g, %g]\n", m.ValidXMin, m.ValidXMax)
		fmt.Printf("valid y:  [%g, %g]\n", m.ValidYMin, m.ValidYMax)
		fmt.Printf("pending:  %d unsaved change(s)\n", pending)
	},
}
