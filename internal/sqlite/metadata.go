package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/datapainter/pkg/types"
)

const metadataColumns = `table_name, x_axis_name, y_axis_name, target_column,
       x_label, o_label, valid_x_min, valid_x_max, valid_y_min, valid_y_max,
       show_zero_bars`

// ReadMetadata returns the metadata row for the named table.
// Returns ErrUnknownTable if no such table has been created.
func (s *Store) ReadMetadata(table string) (*types.Metadata, error) {
	row := s.db.QueryRow(
		`SELECT `+metadataColumns+` FROM metadata WHERE table_name = ?`, table)
	return scanMetadata(row.Scan)
}

func scanMetadata(scan func(...any) error) (*types.Metadata, error) {
	var m types.Metadata
	var zeroBars int
	err := scan(&m.TableName, &m.XAxisName, &m.YAxisName, &m.TargetColumn,
		&m.XLabel, &m.OLabel, &m.ValidXMin, &m.ValidXMax,
		&m.ValidYMin, &m.ValidYMax, &zeroBars)
	if err == sql.ErrNoRows {
		return nil, types.ErrUnknownTable
	}
	if err != nil {
		return nil, fmt.Errorf("scanning metadata: %w", err)
	}
	m.ShowZeroBars = zeroBars != 0
	return &m, nil
}

// insertMetadata adds a metadata row for a new table.
func (s *Store) insertMetadata(m *types.Metadata) error {
	zeroBars := 0
	if m.ShowZeroBars {
		zeroBars = 1
	}
	_, err := s.db.Exec(`
		INSERT INTO metadata (`+metadataColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.TableName, m.XAxisName, m.YAxisName, m.TargetColumn,
		m.XLabel, m.OLabel, m.ValidXMin, m.ValidXMax,
		m.ValidYMin, m.ValidYMax, zeroBars)
	if err != nil {
		return fmt.Errorf("inserting metadata: %w", err)
	}
	return nil
}

// UpdateMetadata overwrites the metadata row keyed by m.TableName.
// Returns ErrUnknownTable if the table does not exist.
func (s *Store) UpdateMetadata(m *types.Metadata) error {
	zeroBars := 0
	if m.ShowZeroBars {
		zeroBars = 1
	}
	res, err := s.db.Exec(`
		UPDATE metadata SET
			x_axis_name = ?, y_axis_name = ?, target_column = ?,
			x_label = ?, o_label = ?,
			valid_x_min = ?, valid_x_max = ?, valid_y_min = ?, valid_y_max = ?,
			show_zero_bars = ?
		WHERE table_name = ?`,
		m.XAxisName, m.YAxisName, m.TargetColumn,
		m.XLabel, m.OLabel,
		m.ValidXMin, m.ValidXMax, m.ValidYMin, m.ValidYMax,
		zeroBars, m.TableName)
	if err != nil {
		return fmt.Errorf("updating metadata: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating metadata: %w", err)
	}
	if n == 0 {
		return types.ErrUnknownTable
	}
	return nil
}

// deleteMetadata removes the metadata row for a table.
func (s *Store) deleteMetadata(table string) error {
	res, err := s.db.Exec(`DELETE FROM metadata WHERE table_name = ?`, table)
	if err != nil {
		return fmt.Errorf("deleting metadata: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting metadata: %w", err)
	}
	if n == 0 {
		return types.ErrUnknownTable
	}
	return nil
}

// Tables lists all table names known to the metadata table, sorted.
func (s *Store) Tables() ([]string, error) {
	rows, err := s.db.Query(`SELECT table_name FROM metadata ORDER BY table_name`)
	if err != nil {
		return nil, fmt.Errorf("listing tables: %w", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning table name: %w", err)
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}
