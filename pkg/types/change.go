package types

// ChangeKind names the mutation a change-log record describes. Stored as
// text in the unsaved_changes table.
type ChangeKind string

const (
	// ChangeInsert adds a new point at (X, Y) with NewLabel.
	ChangeInsert ChangeKind = "insert"
	// ChangeDelete removes the canonical point DataID, remembering its
	// pre-delete position and label for display and redo.
	ChangeDelete ChangeKind = "delete"
	// ChangeUpdate relabels the canonical point DataID from OldLabel to
	// NewLabel.
	ChangeUpdate ChangeKind = "update"
	// ChangeMeta updates the metadata field MetaField from OldValue to
	// NewValue.
	ChangeMeta ChangeKind = "meta"
)

// ChangeRecord is one entry in a table's append-only change log. Record ids
// are assigned by the store in strictly increasing insertion order and are
// never reused. Which optional fields are set depends on Kind:
//
//	insert: X, Y, NewLabel
//	delete: DataID, X, Y, OldLabel
//	update: DataID, OldLabel, NewLabel
//	meta:   MetaField, OldValue, NewValue
type ChangeRecord struct {
	ID        int64
	TableName string
	Kind      ChangeKind
	DataID    *int64
	X         *float64
	Y         *float64
	OldLabel  *string
	NewLabel  *string
	MetaField *string
	OldValue  *string
	NewValue  *string
	Active    bool
}
