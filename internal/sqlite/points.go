package sqlite

import (
	"fmt"

	"github.com/mesh-intelligence/datapainter/pkg/types"
)

// Points accesses the canonical rows of one data table. It never consults
// the change log; the editor package layers uncommitted edits on top.
type Points struct {
	s     *Store
	table string
}

// Points returns an accessor for the named data table.
// Returns ErrInvalidTableName for names that cannot appear in a statement.
func (s *Store) Points(table string) (*Points, error) {
	if !ValidTableName(table) {
		return nil, types.ErrInvalidTableName
	}
	return &Points{s: s, table: table}, nil
}

// Insert adds a canonical point and returns its assigned id.
func (p *Points) Insert(x, y float64, label string) (int64, error) {
	res, err := p.s.db.Exec(
		fmt.Sprintf(`INSERT INTO %s (x, y, target) VALUES (?, ?, ?)`, p.table),
		x, y, label)
	if err != nil {
		return 0, fmt.Errorf("inserting point: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("inserting point: %w", err)
	}
	return id, nil
}

// Delete removes a canonical point by id. Returns ErrNotFound if no row
// has that id.
func (p *Points) Delete(id int64) error {
	res, err := p.s.db.Exec(
		fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, p.table), id)
	if err != nil {
		return fmt.Errorf("deleting point: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting point: %w", err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// UpdateLabel sets the label of a canonical point. Returns ErrNotFound if
// no row has that id.
func (p *Points) UpdateLabel(id int64, label string) error {
	res, err := p.s.db.Exec(
		fmt.Sprintf(`UPDATE %s SET target = ? WHERE id = ?`, p.table), label, id)
	if err != nil {
		return fmt.Errorf("updating point label: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating point label: %w", err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// QueryRange returns canonical points with x in [xMin, xMax] and y in
// [yMin, yMax], both inclusive, ordered by id.
func (p *Points) QueryRange(xMin, xMax, yMin, yMax float64) ([]types.Point, error) {
	rows, err := p.s.db.Query(
		fmt.Sprintf(`SELECT id, x, y, target FROM %s
		 WHERE x >= ? AND x <= ? AND y >= ? AND y <= ? ORDER BY id`, p.table),
		xMin, xMax, yMin, yMax)
	if err != nil {
		return nil, fmt.Errorf("querying points: %w", err)
	}
	defer rows.Close()

	var points []types.Point
	for rows.Next() {
		var id int64
		var pt types.Point
		if err := rows.Scan(&id, &pt.X, &pt.Y, &pt.Label); err != nil {
			return nil, fmt.Errorf("scanning point: %w", err)
		}
		pt.Ref = types.Canonical(id)
		points = append(points, pt)
	}
	return points, rows.Err()
}

// All returns every canonical point in the table, ordered by id.
func (p *Points) All() ([]types.Point, error) {
	rows, err := p.s.db.Query(
		fmt.Sprintf(`SELECT id, x, y, target FROM %s ORDER BY id`, p.table))
	if err != nil {
		return nil, fmt.Errorf("querying points: %w", err)
	}
	defer rows.Close()

	var points []types.Point
	for rows.Next() {
		var id int64
		var pt types.Point
		if err := rows.Scan(&id, &pt.X, &pt.Y, &pt.Label); err != nil {
			return nil, fmt.Errorf("scanning point: %w", err)
		}
		pt.Ref = types.Canonical(id)
		points = append(points, pt)
	}
	return points, rows.Err()
}

// DistinctLabels returns the distinct label values present in the table,
// sorted.
func (p *Points) DistinctLabels() ([]string, error) {
	rows, err := p.s.db.Query(
		fmt.Sprintf(`SELECT DISTINCT target FROM %s ORDER BY target`, p.table))
	if err != nil {
		return nil, fmt.Errorf("querying labels: %w", err)
	}
	defer rows.Close()

	var labels []string
	for rows.Next() {
		var l string
		if err := rows.Scan(&l); err != nil {
			return nil, fmt.Errorf("scanning label: %w", err)
		}
		labels = append(labels, l)
	}
	return labels, rows.Err()
}

// CountByLabel returns the number of canonical points carrying the label.
func (p *Points) CountByLabel(label string) (int, error) {
	var count int
	err := p.s.db.QueryRow(
		fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE target = ?`, p.table),
		label).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting points: %w", err)
	}
	return count, nil
}
