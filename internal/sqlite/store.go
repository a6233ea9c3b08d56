// Package sqlite implements the SQLite storage backend for DataPainter:
// canonical point tables, table metadata, the append-only change log, and
// the atomic save that folds active log records into canonical storage.
package sqlite

import (
	"database/sql"
	"fmt"
	"regexp"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/datapainter/pkg/types"
)

// System tables that live alongside user data tables in the same file.
const (
	metadataTable = "metadata"
	changesTable  = "unsaved_changes"
	historyTable  = "save_history"
)

// identRe matches the table names accepted by ValidTableName. Statements
// are built from table names, so nothing else may ever reach the store.
var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// systemTables are reserved names a user table may not shadow.
var systemTables = map[string]bool{
	metadataTable: true,
	changesTable:  true,
	historyTable:  true,
}

// ValidTableName reports whether name is a plain alphanumeric/underscore
// identifier that does not collide with a system table.
func ValidTableName(name string) bool {
	return identRe.MatchString(name) && !systemTables[name]
}

// Store owns the SQLite connection for one DataPainter database file.
type Store struct {
	path string
	db   *sql.DB
}

// Open opens or creates the database described by config and ensures the
// system tables exist. Use ":memory:" as the path for tests.
func Open(config types.Config) (*Store, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", config.Database)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", config.Database, err)
	}
	// A single connection keeps ":memory:" databases coherent and matches
	// the single-user access model.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("opening %s: %w", config.Database, err)
	}

	s := &Store{path: config.Database, db: db}
	if err := s.ensureSystemTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing system tables: %w", err)
	}
	return s, nil
}

// Close releases the database connection. Idempotent.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Path returns the database path the store was opened with.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) ensureSystemTables() error {
	for _, ddl := range systemDDL {
		if _, err := s.db.Exec(ddl); err != nil {
			return err
		}
	}
	return nil
}
