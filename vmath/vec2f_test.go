package vmath

import (
	"math"
	"math/rand/v2"
	"testing"
)

const epsilon = 1e-9

func TestVec2F_AddScale(t *testing.T) {
	v := Vec2F{1, 2}
	v.Add(Vec2F{3, -4})
	if v.X != 4 || v.Y != -2 {
		t.Errorf("expected (4,-2), got (%v,%v)", v.X, v.Y)
	}

	v.Scale(0)
	if v.X != 0 || v.Y != 0 {
		t.Errorf("expected zero vector after Scale(0), got (%v,%v)", v.X, v.Y)
	}
}

func TestVec2F_SetMagPreservesHeading(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 200; i++ {
		v := Vec2F{rng.Float64()*200 - 100, rng.Float64()*200 - 100}
		if v.Mag() == 0 {
			continue
		}
		heading := v.Heading()
		m := rng.Float64() * 10

		v.SetMag(m)

		if math.Abs(v.Mag()-m) > epsilon {
			t.Fatalf("expected magnitude %v, got %v", m, v.Mag())
		}
		if m > 0 && math.Abs(v.Heading()-heading) > epsilon {
			t.Fatalf("heading changed from %v to %v", heading, v.Heading())
		}
	}
}

func TestVec2F_SetMagZeroIsNoop(t *testing.T) {
	var v Vec2F
	v.SetMag(5)
	if v.X != 0 || v.Y != 0 {
		t.Errorf("expected zero vector to stay zero, got (%v,%v)", v.X, v.Y)
	}
	if math.IsNaN(v.X) || math.IsNaN(v.Y) {
		t.Error("SetMag on zero vector produced NaN")
	}
}

func TestVec2F_Heading(t *testing.T) {
	up := Vec2F{0, -1}
	if h := up.Heading(); math.Abs(h+math.Pi/2) > epsilon {
		t.Errorf("expected -π/2, got %v", h)
	}
	right := Vec2F{1, 0}
	if h := right.Heading(); h != 0 {
		t.Errorf("expected 0, got %v", h)
	}
}

func TestRandomUnit2F_MagnitudeAndSpread(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))

	const samples = 40000
	const buckets = 8
	var counts [buckets]int

	for i := 0; i < samples; i++ {
		v := RandomUnit2F(rng)
		if math.Abs(v.Mag()-1) > epsilon {
			t.Fatalf("expected unit magnitude, got %v", v.Mag())
		}
		h := v.Heading()
		if h < 0 {
			h += 2 * math.Pi
		}
		idx := int(h / (2 * math.Pi) * buckets)
		if idx == buckets {
			idx--
		}
		counts[idx]++
	}

	// Each octant should hold ~1/8 of samples; allow 10% relative deviation
	expected := float64(samples) / buckets
	for i, c := range counts {
		if math.Abs(float64(c)-expected) > expected*0.1 {
			t.Errorf("bucket %d: expected ~%v headings, got %d", i, expected, c)
		}
	}
}

func TestVec2F_Dist(t *testing.T) {
	a := Vec2F{0, 0}
	b := Vec2F{3, 4}
	if d := a.Dist(b); d != 5 {
		t.Errorf("expected 5, got %v", d)
	}
}

func TestRectF_ContainsOpen(t *testing.T) {
	r := RectF{X: 200, Y: 300, W: 400, H: 20}

	if !r.ContainsOpen(Vec2F{400, 310}) {
		t.Error("expected interior point to be contained")
	}
	if r.ContainsOpen(Vec2F{200, 310}) {
		t.Error("expected left edge to be excluded")
	}
	if r.ContainsOpen(Vec2F{400, 320}) {
		t.Error("expected bottom edge to be excluded")
	}

	var empty RectF
	if empty.ContainsOpen(Vec2F{}) {
		t.Error("expected zero-size rectangle to contain nothing")
	}
}

func TestRectF_OutsideAndClamp(t *testing.T) {
	bounds := RectF{W: 800, H: 600}

	if bounds.Outside(Vec2F{800, 600}) {
		t.Error("expected corner to count as inside")
	}
	if !bounds.Outside(Vec2F{-0.1, 10}) {
		t.Error("expected negative x to be outside")
	}
	if !bounds.Outside(Vec2F{10, 600.5}) {
		t.Error("expected y beyond height to be outside")
	}

	c := bounds.Clamp(Vec2F{-5, 900})
	if c.X != 0 || c.Y != 600 {
		t.Errorf("expected (0,600), got (%v,%v)", c.X, c.Y)
	}
}
