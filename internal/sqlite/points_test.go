package sqlite

import (
	"errors"
	"reflect"
	"testing"

	"github.com/mesh-intelligence/datapainter/pkg/types"
)

func TestPoints_InsertAssignsIncreasingIDs(t *testing.T) {
	s := newTestStore(t)
	createTestTable(t, s, "samples")
	pts, _ := s.Points("samples")

	id1, err := pts.Insert(1, 1, "x")
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	id2, err := pts.Insert(2, 2, "o")
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if id2 <= id1 {
		t.Errorf("ids not increasing: %d then %d", id1, id2)
	}
}

func TestPoints_IDsNeverReused(t *testing.T) {
	s := newTestStore(t)
	createTestTable(t, s, "samples")
	pts, _ := s.Points("samples")

	id1, _ := pts.Insert(1, 1, "x")
	if err := pts.Delete(id1); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	id2, _ := pts.Insert(2, 2, "o")
	if id2 == id1 {
		t.Errorf("id %d reused after delete", id1)
	}
}

func TestPoints_UpdateLabel(t *testing.T) {
	s := newTestStore(t)
	createTestTable(t, s, "samples")
	pts, _ := s.Points("samples")

	id, _ := pts.Insert(1, 1, "x")
	if err := pts.UpdateLabel(id, "o"); err != nil {
		t.Fatalf("UpdateLabel failed: %v", err)
	}
	points, _ := pts.All()
	if points[0].Label != "o" {
		t.Errorf("label = %q, want o", points[0].Label)
	}

	err := pts.UpdateLabel(9999, "x")
	if !errors.Is(err, types.ErrNotFound) {
		t.Errorf("update missing: got %v, want ErrNotFound", err)
	}
}

func TestPoints_QueryRangeInclusive(t *testing.T) {
	s := newTestStore(t)
	createTestTable(t, s, "samples")
	pts, _ := s.Points("samples")

	// On-boundary, interior, and outside points.
	pts.Insert(10, 10, "x")
	pts.Insert(20, 20, "o")
	pts.Insert(30, 30, "x")
	pts.Insert(9.999, 10, "o")

	got, err := pts.QueryRange(10, 30, 10, 30)
	if err != nil {
		t.Fatalf("QueryRange failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d points, want 3 (bounds are inclusive)", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Ref.ID <= got[i-1].Ref.ID {
			t.Errorf("results not in id order: %d before %d",
				got[i-1].Ref.ID, got[i].Ref.ID)
		}
	}
}

func TestPoints_DistinctLabels(t *testing.T) {
	s := newTestStore(t)
	createTestTable(t, s, "samples")
	pts, _ := s.Points("samples")

	pts.Insert(1, 1, "x")
	pts.Insert(2, 2, "o")
	pts.Insert(3, 3, "x")

	labels, err := pts.DistinctLabels()
	if err != nil {
		t.Fatalf("DistinctLabels failed: %v", err)
	}
	want := []string{"o", "x"}
	if !reflect.DeepEqual(labels, want) {
		t.Errorf("DistinctLabels() = %v, want %v", labels, want)
	}
}

func TestPoints_CountByLabel(t *testing.T) {
	s := newTestStore(t)
	createTestTable(t, s, "samples")
	pts, _ := s.Points("samples")

	pts.Insert(1, 1, "x")
	pts.Insert(2, 2, "x")
	pts.Insert(3, 3, "o")

	n, err := pts.CountByLabel("x")
	if err != nil {
		t.Fatalf("CountByLabel failed: %v", err)
	}
	if n != 2 {
		t.Errorf("CountByLabel(x) = %d, want 2", n)
	}
}

func TestPoints_InvalidTableName(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Points("1; DROP TABLE metadata"); !errors.Is(err, types.ErrInvalidTableName) {
		t.Errorf("got %v, want ErrInvalidTableName", err)
	}
}
