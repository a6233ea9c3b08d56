package sqlite

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExportCSV(t *testing.T) {
	s := newTestStore(t)
	createTestTable(t, s, "samples")
	pts, _ := s.Points("samples")

	pts.Insert(1.5, -2.25, "x")
	pts.Insert(0.1, 100, "o")

	var buf strings.Builder
	if err := s.ExportCSV("samples", &buf); err != nil {
		t.Fatalf("ExportCSV failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), buf.String())
	}
	if lines[0] != "x,y,target" {
		t.Errorf("header = %q, want x,y,target", lines[0])
	}
	if lines[1] != "1.5,-2.25,x" {
		t.Errorf("row 1 = %q, want 1.5,-2.25,x", lines[1])
	}
	if lines[2] != "0.1,100,o" {
		t.Errorf("row 2 = %q, want 0.1,100,o", lines[2])
	}
}

func TestExportCSV_QuotesSpecialLabels(t *testing.T) {
	s := newTestStore(t)
	createTestTable(t, s, "samples")
	pts, _ := s.Points("samples")

	// Labels come from metadata in normal operation, but the exporter must
	// still quote anything that would break the CSV framing.
	pts.Insert(1, 1, `he said "x"`)
	pts.Insert(2, 2, "a,b")

	var buf strings.Builder
	if err := s.ExportCSV("samples", &buf); err != nil {
		t.Fatalf("ExportCSV failed: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if lines[1] != `1,1,"he said ""x"""` {
		t.Errorf("quoted row = %q", lines[1])
	}
	if lines[2] != `2,2,"a,b"` {
		t.Errorf("comma row = %q", lines[2])
	}
}

func TestExportCSV_EmptyTable(t *testing.T) {
	s := newTestStore(t)
	createTestTable(t, s, "samples")

	var buf strings.Builder
	if err := s.ExportCSV("samples", &buf); err != nil {
		t.Fatalf("ExportCSV failed: %v", err)
	}
	if buf.String() != "x,y,target\n" {
		t.Errorf("empty export = %q, want header only", buf.String())
	}
}

func TestExportCSVFile_ReplacesAtomically(t *testing.T) {
	s := newTestStore(t)
	createTestTable(t, s, "samples")
	pts, _ := s.Points("samples")
	pts.Insert(1, 2, "x")

	path := filepath.Join(t.TempDir(), "out.csv")
	if err := os.WriteFile(path, []byte("stale"), 0o644); err != nil {
		t.Fatalf("seeding stale file: %v", err)
	}

	if err := s.ExportCSVFile("samples", path); err != nil {
		t.Fatalf("ExportCSVFile failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	if string(data) != "x,y,target\n1,2,x\n" {
		t.Errorf("file contents = %q", string(data))
	}

	// No temp files left behind.
	entries, _ := os.ReadDir(filepath.Dir(path))
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("leftover temp file %s", e.Name())
		}
	}
}

func TestExportCSVFile_UnknownTableLeavesFile(t *testing.T) {
	s := newTestStore(t)

	path := filepath.Join(t.TempDir(), "out.csv")
	if err := os.WriteFile(path, []byte("keep me"), 0o644); err != nil {
		t.Fatalf("seeding file: %v", err)
	}

	if err := s.ExportCSVFile("missing", path); err == nil {
		t.Fatal("expected export of unknown table to fail")
	}
	data, _ := os.ReadFile(path)
	if string(data) != "keep me" {
		t.Errorf("failed export clobbered the target file: %q", string(data))
	}
}
