package sqlite

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/mesh-intelligence/datapainter/pkg/types"
)

// ExportCSV writes the canonical rows of a table to w as CSV with a fixed
// x,y,target header, in ascending id order. Fields containing commas,
// quotes, or newlines are quoted with doubled quotes.
func (s *Store) ExportCSV(table string, w io.Writer) error {
	if !ValidTableName(table) {
		return types.ErrInvalidTableName
	}
	if _, err := s.ReadMetadata(table); err != nil {
		return err
	}
	pts, err := s.Points(table)
	if err != nil {
		return err
	}
	points, err := pts.All()
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "y", "target"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, pt := range points {
		record := []string{
			strconv.FormatFloat(pt.X, 'g', -1, 64),
			strconv.FormatFloat(pt.Y, 'g', -1, 64),
			pt.Label,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}

// ExportCSVFile writes the table to a file atomically using the temp-file,
// fsync, rename pattern. An existing file at path is replaced only after
// the full export has been written.
func (s *Store) ExportCSVFile(table, path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".csv-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if err := s.ExportCSV(table, tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
