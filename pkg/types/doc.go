// Package types defines the data model shared across DataPainter: points,
// table metadata, change-log records, the Config used to open a database,
// and the standard sentinel errors.
package types
