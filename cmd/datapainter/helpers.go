// Shared helpers for datapainter CLI commands.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mesh-intelligence/datapainter/internal/sqlite"
	"github.com/mesh-intelligence/datapainter/pkg/types"
)

// openStore resolves the database path and opens the store, exiting with
// exitOpenError on failure. The caller must defer store.Close().
func openStore() *sqlite.Store {
	path, err := resolveDatabase()
	if err != nil {
		fmt.Fprintln(os.Stderr, "resolve database:", err)
		os.Exit(exitOpenError)
	}
	s, err := sqlite.Open(types.Config{Database: path})
	if err != nil {
		fmt.Fprintln(os.Stderr, "open database:", err)
		os.Exit(exitOpenError)
	}
	return s
}

// validationError reports whether err belongs to the validation category
// (rejected input, nothing mutated) rather than a storage failure.
func validationError(err error) bool {
	return errors.Is(err, types.ErrInvalidTableName) ||
		errors.Is(err, types.ErrUnknownTable) ||
		errors.Is(err, types.ErrTableExists) ||
		errors.Is(err, types.ErrNotFound) ||
		errors.Is(err, types.ErrOutOfRange) ||
		errors.Is(err, types.ErrUnknownLabel) ||
		errors.Is(err, types.ErrUnknownField)
}

// fail prints the error and exits: validation errors exit with the usage
// code, everything else as a failed storage operation.
func fail(context string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", context, err)
	if validationError(err) {
		os.Exit(exitUsage)
	}
	os.Exit(exitOpError)
}

// failUsage prints a message and exits with the usage code.
func failUsage(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(exitUsage)
}
