package sqlite

import (
	"testing"

	"github.com/mesh-intelligence/datapainter/pkg/types"
)

func TestSave_AppliesActiveRecordsInOrder(t *testing.T) {
	s := newTestStore(t)
	createTestTable(t, s, "samples")
	log := s.ChangeLog()

	pts, _ := s.Points("samples")
	id, _ := pts.Insert(10, 10, "x")

	log.RecordInsert("samples", 1, 2, "o")
	log.RecordUpdate("samples", id, "x", "o")
	log.RecordMetaChange("samples", types.FieldXAxisName, "x", "height")

	if err := s.Save("samples"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	points, _ := pts.All()
	if len(points) != 2 {
		t.Fatalf("got %d points after save, want 2", len(points))
	}
	if points[0].Label != "o" {
		t.Errorf("updated point label = %q, want o", points[0].Label)
	}
	if points[1].X != 1 || points[1].Y != 2 || points[1].Label != "o" {
		t.Errorf("inserted point = %+v, want (1,2,o)", points[1])
	}

	m, _ := s.ReadMetadata("samples")
	if m.XAxisName != "height" {
		t.Errorf("x_axis_name = %q, want height", m.XAxisName)
	}

	total, _ := log.CountTotal("samples")
	if total != 0 {
		t.Errorf("log has %d records after save, want 0", total)
	}
}

func TestSave_SkipsInactiveRecords(t *testing.T) {
	s := newTestStore(t)
	createTestTable(t, s, "samples")
	log := s.ChangeLog()

	log.RecordInsert("samples", 1, 1, "x")
	undone, _ := log.RecordInsert("samples", 2, 2, "o")
	log.MarkInactive(undone)

	if err := s.Save("samples"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	pts, _ := s.Points("samples")
	points, _ := pts.All()
	if len(points) != 1 {
		t.Fatalf("got %d points, want 1 (inactive insert must not apply)", len(points))
	}
	if points[0].X != 1 {
		t.Errorf("point x = %g, want 1", points[0].X)
	}

	// Inactive records are cleared too; redo does not survive a save.
	total, _ := log.CountTotal("samples")
	if total != 0 {
		t.Errorf("log has %d records after save, want 0", total)
	}
}

func TestSave_RollsBackOnFailure(t *testing.T) {
	s := newTestStore(t)
	createTestTable(t, s, "samples")
	log := s.ChangeLog()

	// An insert that would apply, followed by a delete of a canonical id
	// that does not exist. The whole save must fail and leave no trace.
	log.RecordInsert("samples", 1, 1, "x")
	log.RecordDelete("samples", 9999, 0, 0, "o")

	if err := s.Save("samples"); err == nil {
		t.Fatal("expected Save to fail on missing canonical point")
	}

	pts, _ := s.Points("samples")
	points, _ := pts.All()
	if len(points) != 0 {
		t.Errorf("got %d canonical points after failed save, want 0", len(points))
	}
	total, _ := log.CountTotal("samples")
	if total != 2 {
		t.Errorf("log has %d records after failed save, want 2", total)
	}

	// After fixing the cause, an equivalent save succeeds.
	id, err := s.AddPoint("samples", 5, 5, "o")
	if err != nil {
		t.Fatalf("AddPoint failed: %v", err)
	}
	log.ClearTable("samples")
	log.RecordInsert("samples", 1, 1, "x")
	log.RecordDelete("samples", id, 5, 5, "o")
	if err := s.Save("samples"); err != nil {
		t.Fatalf("retry Save failed: %v", err)
	}
	points, _ = pts.All()
	if len(points) != 1 {
		t.Errorf("got %d points after retry, want 1", len(points))
	}
}

func TestSave_EmptyLogIsNoOp(t *testing.T) {
	s := newTestStore(t)
	createTestTable(t, s, "samples")

	if err := s.Save("samples"); err != nil {
		t.Fatalf("Save of empty log failed: %v", err)
	}
}

func TestSave_RecordsHistory(t *testing.T) {
	s := newTestStore(t)
	createTestTable(t, s, "samples")
	log := s.ChangeLog()

	log.RecordInsert("samples", 1, 1, "x")
	undone, _ := log.RecordInsert("samples", 2, 2, "o")
	log.MarkInactive(undone)

	if err := s.Save("samples"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := s.Save("samples"); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	history, err := s.SaveHistory("samples")
	if err != nil {
		t.Fatalf("SaveHistory failed: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("got %d history rows, want 2", len(history))
	}
	// Most recent first; only the active record counted.
	if history[1].Applied != 1 {
		t.Errorf("first save applied = %d, want 1", history[1].Applied)
	}
	if history[0].Applied != 0 {
		t.Errorf("second save applied = %d, want 0", history[0].Applied)
	}
	for _, rec := range history {
		if rec.SaveID == "" {
			t.Error("save id is empty")
		}
		if rec.TableName != "samples" {
			t.Errorf("table name = %q, want samples", rec.TableName)
		}
		if rec.SavedAt.IsZero() {
			t.Error("saved_at not parsed")
		}
	}
}

func TestSave_MetaChangesCompose(t *testing.T) {
	s := newTestStore(t)
	createTestTable(t, s, "samples")
	log := s.ChangeLog()

	log.RecordMetaChange("samples", types.FieldValidXMax, "100", "200")
	log.RecordMetaChange("samples", types.FieldValidXMin, "0", "-50")

	if err := s.Save("samples"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	m, _ := s.ReadMetadata("samples")
	if m.ValidXMin != -50 || m.ValidXMax != 200 {
		t.Errorf("valid x range = [%g, %g], want [-50, 200]", m.ValidXMin, m.ValidXMax)
	}
}
