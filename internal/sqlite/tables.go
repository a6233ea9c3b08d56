package sqlite

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/datapainter/pkg/types"
)

// CreateTable creates a data table with its indexes and metadata row.
// Returns ErrInvalidTableName for bad names and ErrTableExists if metadata
// already exists for the name.
func (s *Store) CreateTable(m *types.Metadata) error {
	if !ValidTableName(m.TableName) {
		return types.ErrInvalidTableName
	}
	if _, err := s.ReadMetadata(m.TableName); err == nil {
		return types.ErrTableExists
	} else if !errors.Is(err, types.ErrUnknownTable) {
		return err
	}

	for _, ddl := range dataTableDDL(m.TableName) {
		if _, err := s.db.Exec(ddl); err != nil {
			return fmt.Errorf("creating data table: %w", err)
		}
	}
	return s.insertMetadata(m)
}

// RenameTable renames a data table and its metadata row. Pending change
// records follow the table to its new name.
func (s *Store) RenameTable(oldName, newName string) error {
	if !ValidTableName(oldName) || !ValidTableName(newName) {
		return types.ErrInvalidTableName
	}
	if _, err := s.ReadMetadata(oldName); err != nil {
		return err
	}
	if _, err := s.ReadMetadata(newName); err == nil {
		return types.ErrTableExists
	} else if !errors.Is(err, types.ErrUnknownTable) {
		return err
	}

	if _, err := s.db.Exec(
		fmt.Sprintf(`ALTER TABLE %s RENAME TO %s`, oldName, newName)); err != nil {
		return fmt.Errorf("renaming data table: %w", err)
	}
	if _, err := s.db.Exec(
		`UPDATE metadata SET table_name = ? WHERE table_name = ?`,
		newName, oldName); err != nil {
		return fmt.Errorf("renaming metadata: %w", err)
	}
	if _, err := s.db.Exec(
		`UPDATE unsaved_changes SET table_name = ? WHERE table_name = ?`,
		newName, oldName); err != nil {
		return fmt.Errorf("renaming pending changes: %w", err)
	}
	return nil
}

// CopyTable copies a data table's rows (preserving ids) and its metadata
// to a new name. Pending change records are not copied.
func (s *Store) CopyTable(srcName, dstName string) error {
	if !ValidTableName(srcName) || !ValidTableName(dstName) {
		return types.ErrInvalidTableName
	}
	srcMeta, err := s.ReadMetadata(srcName)
	if err != nil {
		return err
	}
	if _, err := s.ReadMetadata(dstName); err == nil {
		return types.ErrTableExists
	} else if !errors.Is(err, types.ErrUnknownTable) {
		return err
	}

	for _, ddl := range dataTableDDL(dstName) {
		if _, err := s.db.Exec(ddl); err != nil {
			return fmt.Errorf("creating copy table: %w", err)
		}
	}
	if _, err := s.db.Exec(fmt.Sprintf(
		`INSERT INTO %s (id, x, y, target) SELECT id, x, y, target FROM %s`,
		dstName, srcName)); err != nil {
		return fmt.Errorf("copying points: %w", err)
	}

	dstMeta := *srcMeta
	dstMeta.TableName = dstName
	return s.insertMetadata(&dstMeta)
}

// DropTable removes a data table, its metadata row, and any pending change
// records for it.
func (s *Store) DropTable(table string) error {
	if !ValidTableName(table) {
		return types.ErrInvalidTableName
	}
	if _, err := s.ReadMetadata(table); err != nil {
		return err
	}

	if _, err := s.db.Exec(fmt.Sprintf(`DROP TABLE IF EXISTS %s`, table)); err != nil {
		return fmt.Errorf("dropping data table: %w", err)
	}
	if err := s.deleteMetadata(table); err != nil {
		return err
	}
	return s.ChangeLog().ClearTable(table)
}

// AddPoint writes a point directly into canonical storage, bypassing the
// change log. This is the non-interactive fast path; it validates the
// label against metadata but not the position.
func (s *Store) AddPoint(table string, x, y float64, label string) (int64, error) {
	m, err := s.ReadMetadata(table)
	if err != nil {
		return 0, err
	}
	if label != m.XLabel && label != m.OLabel {
		return 0, types.ErrUnknownLabel
	}
	pts, err := s.Points(table)
	if err != nil {
		return 0, err
	}
	return pts.Insert(x, y, label)
}

// DeletePoint removes a canonical point by id, bypassing the change log.
func (s *Store) DeletePoint(table string, id int64) error {
	if _, err := s.ReadMetadata(table); err != nil {
		return err
	}
	pts, err := s.Points(table)
	if err != nil {
		return err
	}
	return pts.Delete(id)
}
