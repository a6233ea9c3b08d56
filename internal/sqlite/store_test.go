package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mesh-intelligence/datapainter/pkg/types"
)

// newTestStore opens a store on a fresh database file under t.TempDir().
func newTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "datapainter.db")
	s, err := Open(types.Config{Database: path})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// testMetadata returns a metadata row spanning [0,100]x[0,100] with
// x/o labels.
func testMetadata(name string) *types.Metadata {
	return &types.Metadata{
		TableName:    name,
		XAxisName:    "x",
		YAxisName:    "y",
		TargetColumn: "target",
		XLabel:       "x",
		OLabel:       "o",
		ValidXMin:    0,
		ValidXMax:    100,
		ValidYMin:    0,
		ValidYMax:    100,
	}
}

func createTestTable(t *testing.T, s *Store, name string) {
	t.Helper()
	if err := s.CreateTable(testMetadata(name)); err != nil {
		t.Fatalf("CreateTable(%q) failed: %v", name, err)
	}
}

func TestOpen_CreatesDatabaseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "datapainter.db")

	s, err := Open(types.Config{Database: path})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("database file not created")
	}
	if s.Path() != path {
		t.Errorf("Path() = %q, want %q", s.Path(), path)
	}
}

func TestOpen_EmptyDatabasePath(t *testing.T) {
	_, err := Open(types.Config{})
	if err == nil {
		t.Fatal("expected error for empty database path")
	}
}

func TestStore_CloseIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datapainter.db")
	s, err := Open(types.Config{Database: path})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
}

func TestOpen_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datapainter.db")

	s, err := Open(types.Config{Database: path})
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	createTestTable(t, s, "samples")
	pts, err := s.Points("samples")
	if err != nil {
		t.Fatalf("Points failed: %v", err)
	}
	if _, err := pts.Insert(1, 2, "x"); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	s.Close()

	s2, err := Open(types.Config{Database: path})
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer s2.Close()

	pts2, err := s2.Points("samples")
	if err != nil {
		t.Fatalf("Points failed: %v", err)
	}
	points, err := pts2.All()
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(points) != 1 {
		t.Errorf("got %d points after reopen, want 1", len(points))
	}
}

func TestValidTableName(t *testing.T) {
	valid := []string{"samples", "Samples_2", "_t", "a"}
	for _, name := range valid {
		if !ValidTableName(name) {
			t.Errorf("ValidTableName(%q) = false, want true", name)
		}
	}

	invalid := []string{
		"", "2samples", "my table", "drop;table", "a-b",
		"metadata", "unsaved_changes", "save_history",
	}
	for _, name := range invalid {
		if ValidTableName(name) {
			t.Errorf("ValidTableName(%q) = true, want false", name)
		}
	}
}
