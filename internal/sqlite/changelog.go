package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/mesh-intelligence/datapainter/pkg/types"
)

// ChangeLog records uncommitted edits in the unsaved_changes system table.
// Records are append-only: they are toggled active/inactive by undo/redo,
// and removed only in bulk by a save or an explicit discard.
type ChangeLog struct {
	s *Store
}

// ChangeLog returns the change-log accessor for this store.
func (s *Store) ChangeLog() *ChangeLog {
	return &ChangeLog{s: s}
}

const changeColumns = `id, table_name, action, data_id, x, y,
       old_target, new_target, meta_field, old_value, new_value, is_active`

// RecordInsert appends an active insert record and returns its id.
func (c *ChangeLog) RecordInsert(table string, x, y float64, label string) (int64, error) {
	res, err := c.s.db.Exec(`
		INSERT INTO unsaved_changes (table_name, action, x, y, new_target)
		VALUES (?, 'insert', ?, ?, ?)`,
		table, x, y, label)
	if err != nil {
		return 0, fmt.Errorf("recording insert: %w", err)
	}
	return res.LastInsertId()
}

// RecordDelete appends an active delete record for the canonical point
// dataID, remembering its pre-delete position and label.
func (c *ChangeLog) RecordDelete(table string, dataID int64, x, y float64, label string) (int64, error) {
	res, err := c.s.db.Exec(`
		INSERT INTO unsaved_changes (table_name, action, data_id, x, y, old_target)
		VALUES (?, 'delete', ?, ?, ?, ?)`,
		table, dataID, x, y, label)
	if err != nil {
		return 0, fmt.Errorf("recording delete: %w", err)
	}
	return res.LastInsertId()
}

// RecordUpdate appends an active relabel record for the canonical point
// dataID.
func (c *ChangeLog) RecordUpdate(table string, dataID int64, oldLabel, newLabel string) (int64, error) {
	res, err := c.s.db.Exec(`
		INSERT INTO unsaved_changes (table_name, action, data_id, old_target, new_target)
		VALUES (?, 'update', ?, ?, ?)`,
		table, dataID, oldLabel, newLabel)
	if err != nil {
		return 0, fmt.Errorf("recording update: %w", err)
	}
	return res.LastInsertId()
}

// RecordMetaChange appends an active metadata-field change record.
func (c *ChangeLog) RecordMetaChange(table, field, oldValue, newValue string) (int64, error) {
	res, err := c.s.db.Exec(`
		INSERT INTO unsaved_changes (table_name, action, meta_field, old_value, new_value)
		VALUES (?, 'meta', ?, ?, ?)`,
		table, field, oldValue, newValue)
	if err != nil {
		return 0, fmt.Errorf("recording meta change: %w", err)
	}
	return res.LastInsertId()
}

// Changes returns all records for one table, active and inactive, in
// ascending id order.
func (c *ChangeLog) Changes(table string) ([]types.ChangeRecord, error) {
	rows, err := c.s.db.Query(`
		SELECT `+changeColumns+` FROM unsaved_changes
		WHERE table_name = ? ORDER BY id`, table)
	if err != nil {
		return nil, fmt.Errorf("querying changes: %w", err)
	}
	defer rows.Close()
	return scanChanges(rows)
}

// AllChanges returns every record in the log across all tables, in
// ascending id order.
func (c *ChangeLog) AllChanges() ([]types.ChangeRecord, error) {
	rows, err := c.s.db.Query(`
		SELECT ` + changeColumns + ` FROM unsaved_changes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying changes: %w", err)
	}
	defer rows.Close()
	return scanChanges(rows)
}

func scanChanges(rows *sql.Rows) ([]types.ChangeRecord, error) {
	var records []types.ChangeRecord
	for rows.Next() {
		var rec types.ChangeRecord
		var kind string
		var dataID sql.NullInt64
		var x, y sql.NullFloat64
		var oldLabel, newLabel, metaField, oldValue, newValue sql.NullString
		var active int
		err := rows.Scan(&rec.ID, &rec.TableName, &kind, &dataID, &x, &y,
			&oldLabel, &newLabel, &metaField, &oldValue, &newValue, &active)
		if err != nil {
			return nil, fmt.Errorf("scanning change: %w", err)
		}
		rec.Kind = types.ChangeKind(kind)
		if dataID.Valid {
			rec.DataID = &dataID.Int64
		}
		if x.Valid {
			rec.X = &x.Float64
		}
		if y.Valid {
			rec.Y = &y.Float64
		}
		if oldLabel.Valid {
			rec.OldLabel = &oldLabel.String
		}
		if newLabel.Valid {
			rec.NewLabel = &newLabel.String
		}
		if metaField.Valid {
			rec.MetaField = &metaField.String
		}
		if oldValue.Valid {
			rec.OldValue = &oldValue.String
		}
		if newValue.Valid {
			rec.NewValue = &newValue.String
		}
		rec.Active = active != 0
		records = append(records, rec)
	}
	return records, rows.Err()
}

// MarkInactive deactivates a single record by id. Used to cancel a pending
// insert before it ever reaches canonical storage.
func (c *ChangeLog) MarkInactive(changeID int64) error {
	_, err := c.s.db.Exec(
		`UPDATE unsaved_changes SET is_active = 0 WHERE id = ?`, changeID)
	if err != nil {
		return fmt.Errorf("deactivating change: %w", err)
	}
	return nil
}

// SetInsertLabel rewrites the target label stored on an insert record.
// Flipping an uncommitted point edits its own insert in place rather than
// stacking an update on a point that is not yet canonical.
func (c *ChangeLog) SetInsertLabel(changeID int64, label string) error {
	res, err := c.s.db.Exec(
		`UPDATE unsaved_changes SET new_target = ? WHERE id = ? AND action = 'insert'`,
		label, changeID)
	if err != nil {
		return fmt.Errorf("relabeling insert: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("relabeling insert: %w", err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// DeactivateNewest deactivates the highest-id active record for a table.
// Returns false if no record is active.
func (c *ChangeLog) DeactivateNewest(table string) (bool, error) {
	res, err := c.s.db.Exec(`
		UPDATE unsaved_changes SET is_active = 0
		WHERE id = (SELECT MAX(id) FROM unsaved_changes
		            WHERE table_name = ? AND is_active = 1)`, table)
	if err != nil {
		return false, fmt.Errorf("deactivating newest change: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deactivating newest change: %w", err)
	}
	return n > 0, nil
}

// ReactivateOldest reactivates the lowest-id inactive record for a table.
// Returns false if no record is inactive.
func (c *ChangeLog) ReactivateOldest(table string) (bool, error) {
	res, err := c.s.db.Exec(`
		UPDATE unsaved_changes SET is_active = 1
		WHERE id = (SELECT MIN(id) FROM unsaved_changes
		            WHERE table_name = ? AND is_active = 0)`, table)
	if err != nil {
		return false, fmt.Errorf("reactivating oldest change: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("reactivating oldest change: %w", err)
	}
	return n > 0, nil
}

// DeleteInactive removes every inactive record for a table. This is how a
// fresh edit after an undo destroys the redo history.
func (c *ChangeLog) DeleteInactive(table string) error {
	_, err := c.s.db.Exec(
		`DELETE FROM unsaved_changes WHERE table_name = ? AND is_active = 0`, table)
	if err != nil {
		return fmt.Errorf("deleting inactive changes: %w", err)
	}
	return nil
}

// ClearTable discards every record for one table without applying them.
func (c *ChangeLog) ClearTable(table string) error {
	_, err := c.s.db.Exec(
		`DELETE FROM unsaved_changes WHERE table_name = ?`, table)
	if err != nil {
		return fmt.Errorf("clearing changes: %w", err)
	}
	return nil
}

// ClearAll discards every record for every table.
func (c *ChangeLog) ClearAll() error {
	_, err := c.s.db.Exec(`DELETE FROM unsaved_changes`)
	if err != nil {
		return fmt.Errorf("clearing changes: %w", err)
	}
	return nil
}

// CountTotal returns the number of records for a table, active or not.
func (c *ChangeLog) CountTotal(table string) (int, error) {
	var n int
	err := c.s.db.QueryRow(
		`SELECT COUNT(*) FROM unsaved_changes WHERE table_name = ?`, table).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting changes: %w", err)
	}
	return n, nil
}

// CountActive returns the number of active records for a table.
func (c *ChangeLog) CountActive(table string) (int, error) {
	var n int
	err := c.s.db.QueryRow(
		`SELECT COUNT(*) FROM unsaved_changes WHERE table_name = ? AND is_active = 1`,
		table).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting changes: %w", err)
	}
	return n, nil
}
