// Shared helpers for datapainter integration tests.
package integration

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/datapainter/internal/sqlite"
	"github.com/mesh-intelligence/datapainter/pkg/types"
)

// newStore opens a store on a fresh temp database file.
func newStore(t *testing.T) *sqlite.Store {
	t.Helper()
	s, err := sqlite.Open(types.Config{
		Database: filepath.Join(t.TempDir(), "datapainter.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// sampleMetadata spans [-10,10]x[-10,10] with pos/neg labels.
func sampleMetadata(name string) *types.Metadata {
	return &types.Metadata{
		TableName:    name,
		XAxisName:    "x",
		YAxisName:    "y",
		TargetColumn: "target",
		XLabel:       "pos",
		OLabel:       "neg",
		ValidXMin:    -10,
		ValidXMax:    10,
		ValidYMin:    -10,
		ValidYMax:    10,
	}
}

// newStoreWithTable opens a store and creates one sample table.
func newStoreWithTable(t *testing.T, name string) *sqlite.Store {
	t.Helper()
	s := newStore(t)
	require.NoError(t, s.CreateTable(sampleMetadata(name)))
	return s
}
