// End-to-end editing lifecycle: create a table, edit through the overlay,
// undo and redo, commit atomically, and export.
package integration

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/datapainter/internal/editor"
	"github.com/mesh-intelligence/datapainter/pkg/types"
)

func TestEditUndoSaveLifecycle(t *testing.T) {
	s := newStoreWithTable(t, "session")

	ed, err := editor.NewPointEditor(s, "session")
	require.NoError(t, err)
	undo := editor.NewUndoController(s, "session")

	// Three edits, one undone.
	require.NoError(t, ed.CreatePoint(1, 1, types.ClassX))
	require.NoError(t, ed.CreatePoint(2, 2, types.ClassO))
	require.NoError(t, ed.CreatePoint(3, 3, types.ClassX))
	ok, err := undo.Undo()
	require.NoError(t, err)
	require.True(t, ok)

	pos, err := undo.Position()
	require.NoError(t, err)
	assert.Equal(t, 2, pos)

	// The undone point disappears from the overlay.
	points, err := ed.PointsInRange(-10, 10, -10, 10)
	require.NoError(t, err)
	assert.Len(t, points, 2)

	// Commit applies only the active records and clears the log.
	require.NoError(t, s.Save("session"))

	pts, err := s.Points("session")
	require.NoError(t, err)
	canonical, err := pts.All()
	require.NoError(t, err)
	require.Len(t, canonical, 2)
	assert.Equal(t, "pos", canonical[0].Label)
	assert.Equal(t, "neg", canonical[1].Label)

	total, err := s.ChangeLog().CountTotal("session")
	require.NoError(t, err)
	assert.Zero(t, total, "log must be empty after save")

	// One save recorded in history.
	history, err := s.SaveHistory("session")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, 2, history[0].Applied)
	assert.NotEmpty(t, history[0].SaveID)
}

func TestOverlayEditsCommitAndExport(t *testing.T) {
	s := newStoreWithTable(t, "session")

	// Canonical base data via the fast path.
	id1, err := s.AddPoint("session", 1, 1, "pos")
	require.NoError(t, err)
	_, err = s.AddPoint("session", 2, 2, "neg")
	require.NoError(t, err)

	ed, err := editor.NewPointEditor(s, "session")
	require.NoError(t, err)

	// Delete the first point and flip the second through the editor.
	n, err := ed.DeletePointsAtCursor(1, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	n, err = ed.FlipPointsAtCursor(2, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// Canonical storage unchanged until commit.
	pts, err := s.Points("session")
	require.NoError(t, err)
	canonical, err := pts.All()
	require.NoError(t, err)
	assert.Len(t, canonical, 2)

	require.NoError(t, s.Save("session"))

	canonical, err = pts.All()
	require.NoError(t, err)
	require.Len(t, canonical, 1)
	assert.NotEqual(t, id1, canonical[0].Ref.ID)
	assert.Equal(t, "pos", canonical[0].Label, "neg point was flipped")

	var buf strings.Builder
	require.NoError(t, s.ExportCSV("session", &buf))
	assert.Equal(t, "x,y,target\n2,2,pos\n", buf.String())
}

func TestFailedSavePreservesEverything(t *testing.T) {
	s := newStoreWithTable(t, "session")

	ed, err := editor.NewPointEditor(s, "session")
	require.NoError(t, err)
	require.NoError(t, ed.CreatePoint(4, 4, types.ClassX))

	// A delete record for a canonical id that does not exist forces the
	// transaction to roll back.
	_, err = s.ChangeLog().RecordDelete("session", 9999, 0, 0, "pos")
	require.NoError(t, err)

	require.Error(t, s.Save("session"))

	pts, err := s.Points("session")
	require.NoError(t, err)
	canonical, err := pts.All()
	require.NoError(t, err)
	assert.Empty(t, canonical, "failed save must not apply the insert")

	total, err := s.ChangeLog().CountTotal("session")
	require.NoError(t, err)
	assert.Equal(t, 2, total, "failed save must keep the log for retry")

	history, err := s.SaveHistory("session")
	require.NoError(t, err)
	assert.Empty(t, history, "failed save must not be recorded")
}

func TestMetadataChangeThroughLog(t *testing.T) {
	s := newStoreWithTable(t, "session")

	ed, err := editor.NewPointEditor(s, "session")
	require.NoError(t, err)
	require.NoError(t, ed.SetMetadataField(types.FieldValidXMax, "25"))

	// Stored metadata unchanged before commit.
	m, err := s.ReadMetadata("session")
	require.NoError(t, err)
	assert.Equal(t, float64(10), m.ValidXMax)

	require.NoError(t, s.Save("session"))

	m, err = s.ReadMetadata("session")
	require.NoError(t, err)
	assert.Equal(t, float64(25), m.ValidXMax)
}
