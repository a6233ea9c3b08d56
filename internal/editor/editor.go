package editor

import (
	"fmt"
	"math"

	"github.com/mesh-intelligence/datapainter/internal/sqlite"
	"github.com/mesh-intelligence/datapainter/pkg/types"
)

// cellEpsilon is the tolerance for comparing rounded cell centers.
const cellEpsilon = 0.001

// PointEditor presents the logical point set of one table: canonical
// storage with the active change records overlaid. All mutations go
// through the change log; canonical rows are never written directly.
type PointEditor struct {
	store *sqlite.Store
	table string
	meta  *types.Metadata
}

// NewPointEditor opens an editor on the named table.
func NewPointEditor(store *sqlite.Store, table string) (*PointEditor, error) {
	meta, err := store.ReadMetadata(table)
	if err != nil {
		return nil, err
	}
	return &PointEditor{store: store, table: table, meta: meta}, nil
}

// Metadata returns the table metadata the editor was opened with.
func (e *PointEditor) Metadata() *types.Metadata {
	return e.meta
}

// Table returns the table name the editor operates on.
func (e *PointEditor) Table() string {
	return e.table
}

// beginEdit destroys the redo history before a fresh mutation is appended,
// keeping the active records a strict prefix of the log.
func (e *PointEditor) beginEdit() error {
	return e.store.ChangeLog().DeleteInactive(e.table)
}

// CreatePoint appends an insert record for a point of the given class.
// Returns ErrOutOfRange, with nothing logged, if (x, y) lies outside the
// table's valid region.
func (e *PointEditor) CreatePoint(x, y float64, class types.Class) error {
	if !e.meta.Contains(x, y) {
		return fmt.Errorf("point (%g, %g): %w", x, y, types.ErrOutOfRange)
	}
	if err := e.beginEdit(); err != nil {
		return err
	}
	_, err := e.store.ChangeLog().RecordInsert(e.table, x, y, e.meta.Label(class))
	return err
}

// PointsInRange returns the overlay-resolved point set within the given
// inclusive bounds: canonical points minus active deletes, with active
// updates applied, plus pending points from active inserts. Canonical
// points come first in id order, then pending points in record order.
func (e *PointEditor) PointsInRange(xMin, xMax, yMin, yMax float64) ([]types.Point, error) {
	pts, err := e.store.Points(e.table)
	if err != nil {
		return nil, err
	}
	canonical, err := pts.QueryRange(xMin, xMax, yMin, yMax)
	if err != nil {
		return nil, err
	}
	changes, err := e.store.ChangeLog().Changes(e.table)
	if err != nil {
		return nil, err
	}

	deleted := make(map[int64]bool)
	relabeled := make(map[int64]string)
	for _, rec := range changes {
		if !rec.Active || rec.DataID == nil {
			continue
		}
		switch rec.Kind {
		case types.ChangeDelete:
			deleted[*rec.DataID] = true
		case types.ChangeUpdate:
			relabeled[*rec.DataID] = *rec.NewLabel
		}
	}

	var result []types.Point
	for _, pt := range canonical {
		if deleted[pt.Ref.ID] {
			continue
		}
		if label, ok := relabeled[pt.Ref.ID]; ok {
			pt.Label = label
		}
		result = append(result, pt)
	}

	for _, rec := range changes {
		if !rec.Active || rec.Kind != types.ChangeInsert {
			continue
		}
		x, y := *rec.X, *rec.Y
		if x < xMin || x > xMax || y < yMin || y > yMax {
			continue
		}
		result = append(result, types.Point{
			Ref:   types.Pending(rec.ID),
			X:     x,
			Y:     y,
			Label: *rec.NewLabel,
		})
	}
	return result, nil
}

// PointsAtCursor returns the overlay-resolved points whose position rounds
// to the same cell as the cursor. cellSize is the data-space cell width.
func (e *PointEditor) PointsAtCursor(cursorX, cursorY, cellSize float64) ([]types.Point, error) {
	cellX := cellCenter(cursorX, cellSize)
	cellY := cellCenter(cursorY, cellSize)
	half := cellSize / 2

	candidates, err := e.PointsInRange(cellX-half, cellX+half, cellY-half, cellY+half)
	if err != nil {
		return nil, err
	}

	var result []types.Point
	for _, pt := range candidates {
		if math.Abs(cellCenter(pt.X, cellSize)-cellX) < cellEpsilon &&
			math.Abs(cellCenter(pt.Y, cellSize)-cellY) < cellEpsilon {
			result = append(result, pt)
		}
	}
	return result, nil
}

// DeletePointsAtCursor removes every point at the cursor's cell. Canonical
// points get an active delete record; pending points have their insert
// record deactivated, cancelling them without a tombstone. Returns the
// number of points found at the cell.
func (e *PointEditor) DeletePointsAtCursor(cursorX, cursorY, cellSize float64) (int, error) {
	points, err := e.PointsAtCursor(cursorX, cursorY, cellSize)
	if err != nil {
		return 0, err
	}
	if len(points) == 0 {
		return 0, nil
	}
	if err := e.beginEdit(); err != nil {
		return 0, err
	}

	log := e.store.ChangeLog()
	for _, pt := range points {
		if pt.Ref.Kind == types.RefPending {
			if err := log.MarkInactive(pt.Ref.ID); err != nil {
				return 0, err
			}
			continue
		}
		if _, err := log.RecordDelete(e.table, pt.Ref.ID, pt.X, pt.Y, pt.Label); err != nil {
			return 0, err
		}
	}
	return len(points), nil
}

// ConvertPointsAtCursor relabels canonical points at the cursor's cell
// whose overlay-resolved label is the other class. Pending points are not
// converted. Returns the number of points converted.
func (e *PointEditor) ConvertPointsAtCursor(cursorX, cursorY, cellSize float64, to types.Class) (int, error) {
	points, err := e.PointsAtCursor(cursorX, cursorY, cellSize)
	if err != nil {
		return 0, err
	}

	toLabel := e.meta.Label(to)
	fromLabel := e.meta.Label(to.Other())

	var eligible []types.Point
	for _, pt := range points {
		if pt.Ref.Kind == types.RefCanonical && pt.Label == fromLabel {
			eligible = append(eligible, pt)
		}
	}
	if len(eligible) == 0 {
		return 0, nil
	}
	if err := e.beginEdit(); err != nil {
		return 0, err
	}

	log := e.store.ChangeLog()
	for i, pt := range eligible {
		if _, err := log.RecordUpdate(e.table, pt.Ref.ID, pt.Label, toLabel); err != nil {
			return i, err
		}
	}
	return len(eligible), nil
}

// FlipPointsAtCursor toggles the label of every point at the cursor's
// cell. Canonical points get an update record; pending points have the
// label on their own insert record rewritten. Returns the number of
// points flipped.
func (e *PointEditor) FlipPointsAtCursor(cursorX, cursorY, cellSize float64) (int, error) {
	points, err := e.PointsAtCursor(cursorX, cursorY, cellSize)
	if err != nil {
		return 0, err
	}
	if len(points) == 0 {
		return 0, nil
	}
	if err := e.beginEdit(); err != nil {
		return 0, err
	}

	log := e.store.ChangeLog()
	for _, pt := range points {
		flipped := e.meta.FlipLabel(pt.Label)
		if pt.Ref.Kind == types.RefPending {
			if err := log.SetInsertLabel(pt.Ref.ID, flipped); err != nil {
				return 0, err
			}
			continue
		}
		if _, err := log.RecordUpdate(e.table, pt.Ref.ID, pt.Label, flipped); err != nil {
			return 0, err
		}
	}
	return len(points), nil
}

// SetMetadataField appends a meta change record for the named field. The
// change is visible in the editor's view immediately but reaches the
// metadata table only on save.
func (e *PointEditor) SetMetadataField(field, value string) error {
	old, err := e.meta.FieldValue(field)
	if err != nil {
		return err
	}
	if err := e.beginEdit(); err != nil {
		return err
	}
	if _, err := e.store.ChangeLog().RecordMetaChange(e.table, field, old, value); err != nil {
		return err
	}
	return e.meta.SetField(field, value)
}

// cellCenter snaps a coordinate to the center of the cell it falls into.
func cellCenter(coord, cellSize float64) float64 {
	return math.Floor(coord/cellSize)*cellSize + cellSize/2
}
