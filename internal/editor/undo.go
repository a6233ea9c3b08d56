package editor

import (
	"github.com/mesh-intelligence/datapainter/internal/sqlite"
)

// UndoController implements linear undo/redo over one table's change log.
// Undo deactivates the highest-id active record; redo reactivates the
// lowest-id inactive record. Position and totals are recomputed from the
// log on every call rather than cached, so there is no stale state to
// refresh after another component mutates the log.
type UndoController struct {
	store *sqlite.Store
	table string
}

// NewUndoController returns a controller over the named table's log.
func NewUndoController(store *sqlite.Store, table string) *UndoController {
	return &UndoController{store: store, table: table}
}

// Position returns the number of active records, which is also the number
// of undo steps available.
func (u *UndoController) Position() (int, error) {
	return u.store.ChangeLog().CountActive(u.table)
}

// Total returns the number of records in the log, active or not.
func (u *UndoController) Total() (int, error) {
	return u.store.ChangeLog().CountTotal(u.table)
}

// UndoCount returns how many edits can be undone.
func (u *UndoController) UndoCount() (int, error) {
	return u.Position()
}

// RedoCount returns how many undone edits can be reapplied.
func (u *UndoController) RedoCount() (int, error) {
	total, err := u.Total()
	if err != nil {
		return 0, err
	}
	position, err := u.Position()
	if err != nil {
		return 0, err
	}
	return total - position, nil
}

// CanUndo reports whether at least one record is active.
func (u *UndoController) CanUndo() (bool, error) {
	n, err := u.Position()
	return n > 0, err
}

// CanRedo reports whether at least one record is inactive.
func (u *UndoController) CanRedo() (bool, error) {
	n, err := u.RedoCount()
	return n > 0, err
}

// Undo deactivates the most recent active edit. Returns false, with the
// log untouched, when there is nothing to undo.
func (u *UndoController) Undo() (bool, error) {
	return u.store.ChangeLog().DeactivateNewest(u.table)
}

// Redo reactivates the oldest undone edit. Returns false, with the log
// untouched, when there is nothing to redo.
func (u *UndoController) Redo() (bool, error) {
	return u.store.ChangeLog().ReactivateOldest(u.table)
}

// ClearRedo permanently deletes every inactive record, destroying the
// redo history. The editor calls this before appending a fresh edit.
func (u *UndoController) ClearRedo() error {
	return u.store.ChangeLog().DeleteInactive(u.table)
}
