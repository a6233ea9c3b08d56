// Version command for the datapainter CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/datapainter/pkg/datapainter"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the datapainter version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("datapainter", datapainter.Version)
	},
}
