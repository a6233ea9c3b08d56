// Export command: canonical points as CSV.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export <table>",
	Short: "Export canonical points as CSV (x,y,target, id ascending)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s := openStore()
		defer s.Close()

		if exportOut != "" {
			if err := s.ExportCSVFile(args[0], exportOut); err != nil {
				fail("export", err)
			}
			fmt.Printf("exported %s to %s\n", args[0], exportOut)
			return
		}
		if err := s.ExportCSV(args[0], os.Stdout); err != nil {
			fail("export", err)
		}
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "write to a file (atomic replace) instead of stdout")
}
