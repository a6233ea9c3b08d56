// Changes command group: inspect, discard, and commit the change log.
package main

import (
	"github.com/spf13/cobra"
)

var changesCmd = &cobra.Command{
	Use:   "changes",
	Short: "Inspect, discard, or commit unsaved changes",
}

func init() {
	changesCmd.AddCommand(changesListCmd)
	changesCmd.AddCommand(changesClearCmd)
	changesCmd.AddCommand(changesCommitCmd)
}
