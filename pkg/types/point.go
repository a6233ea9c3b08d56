package types

// RefKind distinguishes canonical points from points that exist only as
// uncommitted inserts in the change log.
type RefKind int

const (
	// RefCanonical refers to a row in a data table by its positive id.
	RefCanonical RefKind = iota
	// RefPending refers to an active insert record in the change log by
	// the record's id. The point has no canonical id yet.
	RefPending
)

// PointRef identifies a point either by its canonical row id or by the
// change-log record id of its pending insert.
type PointRef struct {
	Kind RefKind
	ID   int64
}

// Canonical builds a reference to a stored point.
func Canonical(id int64) PointRef {
	return PointRef{Kind: RefCanonical, ID: id}
}

// Pending builds a reference to an uncommitted insert record.
func Pending(changeID int64) PointRef {
	return PointRef{Kind: RefPending, ID: changeID}
}

// Point is a single labeled 2D point. Label is always one of the two label
// values declared in the owning table's Metadata.
type Point struct {
	Ref   PointRef
	X     float64
	Y     float64
	Label string
}

// Class selects one of the two label values of a table.
type Class int

const (
	// ClassX selects Metadata.XLabel.
	ClassX Class = iota
	// ClassO selects Metadata.OLabel.
	ClassO
)

// Other returns the opposite class.
func (c Class) Other() Class {
	if c == ClassX {
		return ClassO
	}
	return ClassX
}
