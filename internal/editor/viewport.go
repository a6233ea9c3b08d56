// Package editor implements the interactive editing core: the viewport
// coordinate mapping, the overlay of uncommitted changes onto canonical
// points, cursor hit-testing, and linear undo/redo over the change log.
package editor

import (
	"math"

	"github.com/mesh-intelligence/datapainter/pkg/types"
)

// Viewport maps between integer screen cells and continuous data
// coordinates over a rectangular region bounded by the table's valid
// region. Row 0 is the top of the screen; data y increases upward.
//
// Mutating operations never fail: out-of-range requests are clamped into
// the valid region, and after every mutation the visible extent either
// lies inside the valid region or equals it exactly.
type Viewport struct {
	DataXMin, DataXMax float64
	DataYMin, DataYMax float64

	ValidXMin, ValidXMax float64
	ValidYMin, ValidYMax float64

	Rows, Cols int
}

// NewViewport builds a viewport showing the table's full valid region on a
// rows x cols screen.
func NewViewport(m *types.Metadata, rows, cols int) Viewport {
	return Viewport{
		DataXMin:  m.ValidXMin,
		DataXMax:  m.ValidXMax,
		DataYMin:  m.ValidYMin,
		DataYMax:  m.ValidYMax,
		ValidXMin: m.ValidXMin,
		ValidXMax: m.ValidXMax,
		ValidYMin: m.ValidYMin,
		ValidYMax: m.ValidYMax,
		Rows:      rows,
		Cols:      cols,
	}
}

// ScreenToData maps a screen cell to the data coordinate it represents.
// A one-cell-wide or one-cell-tall screen maps to the axis midpoint.
func (v Viewport) ScreenToData(row, col int) (x, y float64) {
	if v.Cols < 2 {
		x = (v.DataXMin + v.DataXMax) / 2
	} else {
		x = v.DataXMin + float64(col)*(v.DataXMax-v.DataXMin)/float64(v.Cols-1)
	}
	if v.Rows < 2 {
		y = (v.DataYMin + v.DataYMax) / 2
	} else {
		y = v.DataYMax - float64(row)*(v.DataYMax-v.DataYMin)/float64(v.Rows-1)
	}
	return x, y
}

// DataToScreen maps a data coordinate to the nearest screen cell, clamped
// to the screen bounds. ok is false if the point is outside the visible
// extent.
func (v Viewport) DataToScreen(x, y float64) (row, col int, ok bool) {
	if !v.IsVisible(x, y) {
		return 0, 0, false
	}
	if v.Cols < 2 {
		col = 0
	} else {
		col = int(math.Round((x - v.DataXMin) * float64(v.Cols-1) / (v.DataXMax - v.DataXMin)))
	}
	if v.Rows < 2 {
		row = 0
	} else {
		row = int(math.Round((v.DataYMax - y) * float64(v.Rows-1) / (v.DataYMax - v.DataYMin)))
	}
	col = min(max(col, 0), v.Cols-1)
	row = min(max(row, 0), v.Rows-1)
	return row, col, true
}

// IsVisible reports whether (x, y) lies inside the visible extent,
// inclusive on all bounds.
func (v Viewport) IsVisible(x, y float64) bool {
	return x >= v.DataXMin && x <= v.DataXMax &&
		y >= v.DataYMin && y <= v.DataYMax
}

// RoundToCell snaps a data coordinate to the center of its screen cell by
// round-tripping through the screen mapping. Points outside the visible
// extent come back unchanged.
func (v Viewport) RoundToCell(x, y float64) (float64, float64) {
	row, col, ok := v.DataToScreen(x, y)
	if !ok {
		return x, y
	}
	return v.ScreenToData(row, col)
}

// CellSize returns the data-space width and height of one screen cell.
func (v Viewport) CellSize() (w, h float64) {
	w = v.DataXMax - v.DataXMin
	if v.Cols > 1 {
		w /= float64(v.Cols - 1)
	}
	h = v.DataYMax - v.DataYMin
	if v.Rows > 1 {
		h /= float64(v.Rows - 1)
	}
	return w, h
}

// ZoomIn halves the visible extent. The new view centers on (cx, cy),
// shifted just enough to avoid showing space outside the valid region; if
// the halved extent still covers the whole valid range on an axis, that
// axis centers on the valid midpoint instead.
func (v *Viewport) ZoomIn(cx, cy float64) {
	newXRange := (v.DataXMax - v.DataXMin) / 2
	newYRange := (v.DataYMax - v.DataYMin) / 2
	halfX := newXRange / 2
	halfY := newYRange / 2

	if newXRange >= v.ValidXMax-v.ValidXMin {
		cx = (v.ValidXMin + v.ValidXMax) / 2
	} else {
		if cx-halfX < v.ValidXMin {
			cx = v.ValidXMin + halfX
		}
		if cx+halfX > v.ValidXMax {
			cx = v.ValidXMax - halfX
		}
	}
	if newYRange >= v.ValidYMax-v.ValidYMin {
		cy = (v.ValidYMin + v.ValidYMax) / 2
	} else {
		if cy-halfY < v.ValidYMin {
			cy = v.ValidYMin + halfY
		}
		if cy+halfY > v.ValidYMax {
			cy = v.ValidYMax - halfY
		}
	}

	v.DataXMin = cx - halfX
	v.DataXMax = cx + halfX
	v.DataYMin = cy - halfY
	v.DataYMax = cy + halfY
	v.clampToValid()
}

// ZoomOut doubles the visible extent centered on (cx, cy), then clamps
// back into the valid region.
func (v *Viewport) ZoomOut(cx, cy float64) {
	xRange := v.DataXMax - v.DataXMin
	yRange := v.DataYMax - v.DataYMin

	v.DataXMin = cx - xRange
	v.DataXMax = cx + xRange
	v.DataYMin = cy - yRange
	v.DataYMax = cy + yRange
	v.clampToValid()
}

// PanLeft shifts the view left by a quarter of its width.
func (v *Viewport) PanLeft() {
	amount := (v.DataXMax - v.DataXMin) * 0.25
	v.DataXMin -= amount
	v.DataXMax -= amount
	v.clampToValid()
}

// PanRight shifts the view right by a quarter of its width.
func (v *Viewport) PanRight() {
	amount := (v.DataXMax - v.DataXMin) * 0.25
	v.DataXMin += amount
	v.DataXMax += amount
	v.clampToValid()
}

// PanUp shifts the view up by a quarter of its height.
func (v *Viewport) PanUp() {
	amount := (v.DataYMax - v.DataYMin) * 0.25
	v.DataYMin += amount
	v.DataYMax += amount
	v.clampToValid()
}

// PanDown shifts the view down by a quarter of its height.
func (v *Viewport) PanDown() {
	amount := (v.DataYMax - v.DataYMin) * 0.25
	v.DataYMin -= amount
	v.DataYMax -= amount
	v.clampToValid()
}

// clampToValid restores the containment invariant per axis: an extent at
// least as large as the valid range snaps to exactly the valid range; a
// smaller extent that hangs past an edge is shifted inside, preserving
// its size.
func (v *Viewport) clampToValid() {
	xWidth := v.DataXMax - v.DataXMin
	validXWidth := v.ValidXMax - v.ValidXMin
	if xWidth >= validXWidth {
		v.DataXMin = v.ValidXMin
		v.DataXMax = v.ValidXMax
	} else {
		if v.DataXMin < v.ValidXMin {
			v.DataXMin = v.ValidXMin
			v.DataXMax = v.ValidXMin + xWidth
		}
		if v.DataXMax > v.ValidXMax {
			v.DataXMax = v.ValidXMax
			v.DataXMin = v.ValidXMax - xWidth
		}
	}

	yHeight := v.DataYMax - v.DataYMin
	validYHeight := v.ValidYMax - v.ValidYMin
	if yHeight >= validYHeight {
		v.DataYMin = v.ValidYMin
		v.DataYMax = v.ValidYMax
	} else {
		if v.DataYMin < v.ValidYMin {
			v.DataYMin = v.ValidYMin
			v.DataYMax = v.ValidYMin + yHeight
		}
		if v.DataYMax > v.ValidYMax {
			v.DataYMax = v.ValidYMax
			v.DataYMin = v.ValidYMax - yHeight
		}
	}
}
