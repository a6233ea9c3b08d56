package types

import "errors"

// Standard errors returned by the store and editor. Callers match with
// errors.Is; the CLI maps them to exit codes.
var (
	// ErrNotFound is returned when a point, metadata row, or change
	// record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnknownTable is returned when no metadata row exists for the
	// requested table.
	ErrUnknownTable = errors.New("unknown table")

	// ErrTableExists is returned when creating or copying onto a table
	// name that already has metadata.
	ErrTableExists = errors.New("table already exists")

	// ErrInvalidTableName is returned for table names that are not plain
	// alphanumeric/underscore identifiers, or that collide with the
	// system tables. Statements are built from table names, so this is
	// checked before anything touches the store.
	ErrInvalidTableName = errors.New("invalid table name")

	// ErrOutOfRange is returned when a point lies outside the table's
	// valid region.
	ErrOutOfRange = errors.New("point outside valid range")

	// ErrUnknownLabel is returned when a label value matches neither of
	// the table's two label values.
	ErrUnknownLabel = errors.New("unknown label value")

	// ErrUnknownField is returned for a metadata field name that is not
	// part of the schema.
	ErrUnknownField = errors.New("unknown metadata field")
)
