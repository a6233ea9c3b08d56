package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/datapainter/pkg/types"
)

// SaveRecord is one row of the save audit trail.
type SaveRecord struct {
	SaveID    string
	TableName string
	Applied   int
	SavedAt   time.Time
}

// Save folds every active change record for the table into canonical
// storage, in ascending id order, inside a single transaction. On success
// all log records for the table (active and inactive) are deleted and a
// save_history row is written; redo history does not survive a save. On
// any failure the transaction is rolled back and both canonical storage
// and the log are left untouched.
func (s *Store) Save(table string) error {
	if !ValidTableName(table) {
		return types.ErrInvalidTableName
	}
	meta, err := s.ReadMetadata(table)
	if err != nil {
		return err
	}
	records, err := s.ChangeLog().Changes(table)
	if err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning save: %w", err)
	}
	defer tx.Rollback()

	applied := 0
	for _, rec := range records {
		if !rec.Active {
			continue
		}
		if err := applyChange(tx, table, meta, rec); err != nil {
			return fmt.Errorf("applying change %d: %w", rec.ID, err)
		}
		applied++
	}

	if _, err := tx.Exec(
		`DELETE FROM unsaved_changes WHERE table_name = ?`, table); err != nil {
		return fmt.Errorf("clearing change log: %w", err)
	}

	if _, err := tx.Exec(`
		INSERT INTO save_history (save_id, table_name, applied, saved_at)
		VALUES (?, ?, ?, ?)`,
		uuid.Must(uuid.NewV7()).String(), table, applied,
		time.Now().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("recording save: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing save: %w", err)
	}
	return nil
}

// applyChange applies one active record by kind. meta is mutated in place
// so later meta changes in the same save see earlier ones.
func applyChange(tx *sql.Tx, table string, meta *types.Metadata, rec types.ChangeRecord) error {
	switch rec.Kind {
	case types.ChangeInsert:
		if rec.X == nil || rec.Y == nil || rec.NewLabel == nil {
			return fmt.Errorf("malformed insert record")
		}
		res, err := tx.Exec(
			fmt.Sprintf(`INSERT INTO %s (x, y, target) VALUES (?, ?, ?)`, table),
			*rec.X, *rec.Y, *rec.NewLabel)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		if id <= 0 {
			return fmt.Errorf("insert produced id %d", id)
		}
		return nil

	case types.ChangeDelete:
		if rec.DataID == nil {
			return fmt.Errorf("malformed delete record")
		}
		res, err := tx.Exec(
			fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, table), *rec.DataID)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("point %d: %w", *rec.DataID, types.ErrNotFound)
		}
		return nil

	case types.ChangeUpdate:
		if rec.DataID == nil || rec.NewLabel == nil {
			return fmt.Errorf("malformed update record")
		}
		res, err := tx.Exec(
			fmt.Sprintf(`UPDATE %s SET target = ? WHERE id = ?`, table),
			*rec.NewLabel, *rec.DataID)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("point %d: %w", *rec.DataID, types.ErrNotFound)
		}
		return nil

	case types.ChangeMeta:
		if rec.MetaField == nil || rec.NewValue == nil {
			return fmt.Errorf("malformed meta record")
		}
		if err := meta.SetField(*rec.MetaField, *rec.NewValue); err != nil {
			return err
		}
		return updateMetadataTx(tx, meta)

	default:
		return fmt.Errorf("unknown change kind %q", rec.Kind)
	}
}

func updateMetadataTx(tx *sql.Tx, m *types.Metadata) error {
	zeroBars := 0
	if m.ShowZeroBars {
		zeroBars = 1
	}
	res, err := tx.Exec(`
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
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return types.ErrUnknownTable
	}
	return nil
}

// SaveHistory lists past saves for a table, most recent first.
func (s *Store) SaveHistory(table string) ([]SaveRecord, error) {
	rows, err := s.db.Query(`
		SELECT save_id, table_name, applied, saved_at FROM save_history
		WHERE table_name = ? ORDER BY saved_at DESC, save_id DESC`, table)
	if err != nil {
		return nil, fmt.Errorf("querying save history: %w", err)
	}
	defer rows.Close()

	var history []SaveRecord
	for rows.Next() {
		var rec SaveRecord
		var savedAt string
		if err := rows.Scan(&rec.SaveID, &rec.TableName, &rec.Applied, &savedAt); err != nil {
			return nil, fmt.Errorf("scanning save record: %w", err)
		}
		rec.SavedAt, _ = time.Parse(time.RFC3339, savedAt)
		history = append(history, rec)
	}
	return history, rows.Err()
}
