package core

import "math"

// Viewport maps the fixed world coordinate space onto a terminal grid.
// The world keeps the game's tuning in stable units regardless of terminal size.
type Viewport struct {
	WorldW, WorldH float64
	Cols, Rows     int
}

// NewViewport creates a viewport for a world of worldW x worldH shown on cols x rows cells.
func NewViewport(worldW, worldH float64, cols, rows int) Viewport {
	return Viewport{
		WorldW: worldW,
		WorldH: worldH,
		Cols:   Max(cols, 1),
		Rows:   Max(rows, 1),
	}
}

// cellW returns the world width covered by one column.
func (v Viewport) cellW() float64 {
	return v.WorldW / float64(v.Cols)
}

// cellH returns the world height covered by one row.
func (v Viewport) cellH() float64 {
	return v.WorldH / float64(v.Rows)
}

// ToCell converts a world point to the cell containing it.
func (v Viewport) ToCell(x, y float64) (col, row int) {
	col = int(math.Floor(x / v.cellW()))
	row = int(math.Floor(y / v.cellH()))
	return col, row
}

// ToWorld returns the world position of the centre of a cell.
func (v Viewport) ToWorld(col, row int) (x, y float64) {
	x = (float64(col) + 0.5) * v.cellW()
	y = (float64(row) + 0.5) * v.cellH()
	return x, y
}

// RectToCells converts a world box to the cells it covers.
// Anything with positive size covers at least one cell.
func (v Viewport) RectToCells(r RectF) Rect {
	x0, y0 := v.ToCell(r.X, r.Y)
	x1 := int(math.Ceil(r.Right() / v.cellW()))
	y1 := int(math.Ceil(r.Bottom() / v.cellH()))
	w := Max(x1-x0, 1)
	h := Max(y1-y0, 1)
	return NewRect(x0, y0, w, h)
}
