package main

import (
	"math"

	"github.com/lixenwraith/antsugar/vmath"
)

// headingRunes index is the heading rounded to eighths of a turn, screen y down
var headingRunes = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// Viewport maps canvas coordinates onto a grid of terminal cells
type Viewport struct {
	canvas     vmath.RectF
	cols, rows int
}

// NewViewport fits canvas into cols x rows, both clamped to at least one cell
func NewViewport(canvas vmath.RectF, cols, rows int) Viewport {
	return Viewport{canvas: canvas, cols: max(cols, 1), rows: max(rows, 1)}
}

func (v Viewport) Size() (int, int) {
	return v.cols, v.rows
}

// ToCell returns the cell containing p, clamped to the grid
func (v Viewport) ToCell(p vmath.Vec2F) (int, int) {
	cx := int(math.Floor((p.X - v.canvas.X) / v.canvas.W * float64(v.cols)))
	cy := int(math.Floor((p.Y - v.canvas.Y) / v.canvas.H * float64(v.rows)))
	return min(max(cx, 0), v.cols-1), min(max(cy, 0), v.rows-1)
}

// ToCanvas returns the canvas point at the center of cell (cx, cy)
func (v Viewport) ToCanvas(cx, cy int) vmath.Vec2F {
	return vmath.Vec2F{
		X: v.canvas.X + (float64(cx)+0.5)/float64(v.cols)*v.canvas.W,
		Y: v.canvas.Y + (float64(cy)+0.5)/float64(v.rows)*v.canvas.H,
	}
}

// CellSpan returns the inclusive cell range covered by r, at least one cell on each axis
func (v Viewport) CellSpan(r vmath.RectF) (x0, y0, x1, y1 int) {
	x0, y0 = v.ToCell(vmath.Vec2F{X: r.X, Y: r.Y})
	fx := (r.X + r.W - v.canvas.X) / v.canvas.W * float64(v.cols)
	fy := (r.Y + r.H - v.canvas.Y) / v.canvas.H * float64(v.rows)
	x1 = min(max(int(math.Ceil(fx))-1, x0), v.cols-1)
	y1 = min(max(int(math.Ceil(fy))-1, y0), v.rows-1)
	return x0, y0, x1, y1
}

// HeadingRune picks an arrow for a heading in radians
func HeadingRune(angle float64) rune {
	idx := int(math.Round(angle/(math.Pi/4))) % 8
	if idx < 0 {
		idx += 8
	}
	return headingRunes[idx]
}
