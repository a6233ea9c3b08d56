// Point command group: the non-interactive fast path that writes canonical
// storage directly, bypassing the change log.
package main

import (
	"github.com/spf13/cobra"
)

var pointCmd = &cobra.Command{
	Use:   "point",
	Short: "Add or delete canonical points directly",
}

func init() {
	pointCmd.AddCommand(pointAddCmd)
	pointCmd.AddCommand(pointDeleteCmd)
}
