package types

import "errors"

// Config holds the parameters for opening a DataPainter database.
type Config struct {
	// Database is the path to the SQLite file. ":memory:" opens an
	// in-memory database, useful for tests.
	Database string `json:"database" yaml:"database"`
}

// Config validation errors.
var (
	ErrDatabaseEmpty = errors.New("database path must not be empty")
)

// Validate checks that the Config is well-formed.
func (c Config) Validate() error {
	if c.Database == "" {
		return ErrDatabaseEmpty
	}
	return nil
}
