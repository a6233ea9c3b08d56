// Package main provides the datapainter CLI: table lifecycle, the
// non-interactive point fast path, change-log inspection and commit, CSV
// export, and random seeding over a SQLite-backed point store.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra reports unknown commands and flag errors here; command
		// bodies exit directly with their own codes.
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUsage)
	}
}
