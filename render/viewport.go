package render

import (
	"math"

	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/core"
)

// Viewport maps field units onto the screen's field area
type Viewport struct {
	Top        int // First screen row of the field
	Cols, Rows int // Field area size in cells
	CellWidth  float64
	CellHeight float64
}

// NewViewport lays out the field between the score bar and the status bar
func NewViewport(screenWidth, screenHeight int, cellWidth, cellHeight float64) Viewport {
	rows := screenHeight - constants.ScoreBarHeight - constants.StatusBarHeight
	if rows < 0 {
		rows = 0
	}
	if screenWidth < 0 {
		screenWidth = 0
	}
	return Viewport{
		Top:        constants.ScoreBarHeight,
		Cols:       screenWidth,
		Rows:       rows,
		CellWidth:  cellWidth,
		CellHeight: cellHeight,
	}
}

// FieldSize returns the field dimensions the viewport represents
func (v Viewport) FieldSize() (width, height float64) {
	return float64(v.Cols) * v.CellWidth, float64(v.Rows) * v.CellHeight
}

// RowToFieldY converts a screen row to the field Y at the middle of that row
func (v Viewport) RowToFieldY(row int) float64 {
	return (float64(row-v.Top) + 0.5) * v.CellHeight
}

// Span returns the inclusive cell ranges covered by r, clipped to the viewport
// ok is false when r lies entirely outside
func (v Viewport) Span(r core.Rect) (col0, col1, row0, row1 int, ok bool) {
	col0, col1 = span(r.Left(), r.Right(), v.CellWidth)
	row0, row1 = span(r.Top(), r.Bottom(), v.CellHeight)

	col0, col1 = max(col0, 0), min(col1, v.Cols-1)
	row0, row1 = max(row0, 0), min(row1, v.Rows-1)
	if col0 > col1 || row0 > row1 {
		return 0, 0, 0, 0, false
	}
	return col0, col1, row0 + v.Top, row1 + v.Top, true
}

// span converts [lo, hi) in field units to an inclusive cell range of at least one cell
func span(lo, hi, cell float64) (int, int) {
	first := int(math.Floor(lo / cell))
	last := int(math.Ceil(hi/cell)) - 1
	if last < first {
		last = first
	}
	return first, last
}
