package sqlite

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/mesh-intelligence/datapainter/pkg/types"
)

// SeedConfig controls random point generation for a table.
type SeedConfig struct {
	// Count is the total number of points to generate.
	Count int
	// XFraction is the share of points labeled with the table's x label;
	// the rest get the o label. Must be in [0, 1].
	XFraction float64
	// Rand is the source of randomness. A seeded source makes the
	// generated set reproducible. When nil, a time-seeded source is used.
	Rand *rand.Rand
}

// SeedRandom fills a table with Count points drawn uniformly over the
// table's valid region, bypassing the change log. Roughly XFraction of the
// points carry the x label.
func (s *Store) SeedRandom(table string, cfg SeedConfig) error {
	if cfg.Count < 0 {
		return fmt.Errorf("seed count %d: %w", cfg.Count, types.ErrOutOfRange)
	}
	if cfg.XFraction < 0 || cfg.XFraction > 1 {
		return fmt.Errorf("seed fraction %g: %w", cfg.XFraction, types.ErrOutOfRange)
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	m, err := s.ReadMetadata(table)
	if err != nil {
		return err
	}
	pts, err := s.Points(table)
	if err != nil {
		return err
	}

	for i := 0; i < cfg.Count; i++ {
		x := m.ValidXMin + rng.Float64()*(m.ValidXMax-m.ValidXMin)
		y := m.ValidYMin + rng.Float64()*(m.ValidYMax-m.ValidYMin)
		label := m.OLabel
		if rng.Float64() < cfg.XFraction {
			label = m.XLabel
		}
		if _, err := pts.Insert(x, y, label); err != nil {
			return err
		}
	}
	return nil
}
