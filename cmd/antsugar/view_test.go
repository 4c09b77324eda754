package main

import (
	"math"
	"testing"

	"github.com/lixenwraith/antsugar/vmath"
)

func testViewport() Viewport {
	return NewViewport(vmath.RectF{W: 800, H: 600}, 80, 30)
}

func TestViewport_ToCell(t *testing.T) {
	v := testViewport()

	cases := []struct {
		p      vmath.Vec2F
		cx, cy int
	}{
		{vmath.Vec2F{X: 0, Y: 0}, 0, 0},
		{vmath.Vec2F{X: 400, Y: 50}, 40, 2},
		{vmath.Vec2F{X: 799.9, Y: 599.9}, 79, 29},
		{vmath.Vec2F{X: 800, Y: 600}, 79, 29},
		{vmath.Vec2F{X: -50, Y: 9000}, 0, 29},
	}
	for _, tc := range cases {
		cx, cy := v.ToCell(tc.p)
		if cx != tc.cx || cy != tc.cy {
			t.Errorf("ToCell(%+v): expected (%d,%d), got (%d,%d)", tc.p, tc.cx, tc.cy, cx, cy)
		}
	}
}

func TestViewport_RoundTrip(t *testing.T) {
	v := testViewport()
	for cy := 0; cy < 30; cy += 7 {
		for cx := 0; cx < 80; cx += 9 {
			gx, gy := v.ToCell(v.ToCanvas(cx, cy))
			if gx != cx || gy != cy {
				t.Errorf("cell (%d,%d) mapped back to (%d,%d)", cx, cy, gx, gy)
			}
		}
	}
}

func TestViewport_CellSpanThinObstacle(t *testing.T) {
	v := testViewport()
	// 20 canvas units is under one row at 20 units per row
	x0, y0, x1, y1 := v.CellSpan(vmath.RectF{X: 200, Y: 300, W: 400, H: 20})
	if x0 != 20 || x1 != 59 {
		t.Errorf("expected columns 20..59, got %d..%d", x0, x1)
	}
	if y0 != 15 || y1 != 15 {
		t.Errorf("expected single row 15, got %d..%d", y0, y1)
	}
}

func TestViewport_DegenerateSize(t *testing.T) {
	v := NewViewport(vmath.RectF{W: 800, H: 600}, 0, -3)
	if c, r := v.Size(); c != 1 || r != 1 {
		t.Errorf("expected 1x1 grid, got %dx%d", c, r)
	}
}

func TestHeadingRune(t *testing.T) {
	cases := []struct {
		angle float64
		want  rune
	}{
		{0, '→'},
		{math.Pi / 2, '↓'},
		{-math.Pi / 2, '↑'},
		{math.Pi, '←'},
		{-math.Pi, '←'},
		{-math.Pi / 4, '↗'},
	}
	for _, tc := range cases {
		if got := HeadingRune(tc.angle); got != tc.want {
			t.Errorf("HeadingRune(%v): expected %q, got %q", tc.angle, tc.want, got)
		}
	}
}
