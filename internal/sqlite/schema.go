package sqlite

import "fmt"

// DDL for the system tables. AUTOINCREMENT on unsaved_changes guarantees
// record ids are strictly increasing and never reused, even after rows are
// deleted by a save or discard.
const (
	createMetadata = `CREATE TABLE IF NOT EXISTS metadata (
    table_name TEXT PRIMARY KEY,
    x_axis_name TEXT NOT NULL,
    y_axis_name TEXT NOT NULL,
    target_column TEXT NOT NULL,
    x_label TEXT NOT NULL,
    o_label TEXT NOT NULL,
    valid_x_min REAL NOT NULL,
    valid_x_max REAL NOT NULL,
    valid_y_min REAL NOT NULL,
    valid_y_max REAL NOT NULL,
    show_zero_bars INTEGER NOT NULL DEFAULT 0
);`

	createChanges = `CREATE TABLE IF NOT EXISTS unsaved_changes (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    table_name TEXT NOT NULL,
    action TEXT NOT NULL,
    data_id INTEGER,
    x REAL,
    y REAL,
    old_target TEXT,
    new_target TEXT,
    meta_field TEXT,
    old_value TEXT,
    new_value TEXT,
    is_active INTEGER NOT NULL DEFAULT 1
);`

	createHistory = `CREATE TABLE IF NOT EXISTS save_history (
    save_id TEXT PRIMARY KEY,
    table_name TEXT NOT NULL,
    applied INTEGER NOT NULL,
    saved_at TEXT NOT NULL
);`

	idxChangesTable = `CREATE INDEX IF NOT EXISTS idx_changes_table ON unsaved_changes(table_name, is_active);`
	idxHistoryTable = `CREATE INDEX IF NOT EXISTS idx_history_table ON save_history(table_name, saved_at);`
)

// systemDDL lists the statements Open runs on every database.
var systemDDL = []string{
	createMetadata,
	createChanges,
	createHistory,
	idxChangesTable,
	idxHistoryTable,
}

// dataTableDDL returns the statements that create one user data table with
// its position and label indexes. The name must already have passed
// ValidTableName. Point ids carry the same never-reused guarantee as change
// record ids.
func dataTableDDL(name string) []string {
	return []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    x REAL NOT NULL,
    y REAL NOT NULL,
    target TEXT NOT NULL
);`, name),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s_xy ON %s(x, y);`, name, name),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s_target ON %s(target);`, name, name),
	}
}
