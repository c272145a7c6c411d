package burrow

import (
	"image/color"
	"math/rand/v2"
	"testing"
)

func TestRGB(t *testing.T) {
	c := RGB(0x1099bb)
	if got := c.RGBA8(); got != (color.RGBA{0x10, 0x99, 0xbb, 0xff}) {
		t.Errorf("RGBA8 = %v, want {16 153 187 255}", got)
	}
}

func TestRGBA8Clamps(t *testing.T) {
	c := Color{R: -1, G: 2, B: 0.5, A: 1}
	if got := c.RGBA8(); got != (color.RGBA{0, 255, 128, 255}) {
		t.Errorf("RGBA8 = %v, want {0 255 128 255}", got)
	}
}

func TestRandomTintOpaque(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for range 100 {
		c := RandomTint(rng)
		if c.A != 1 {
			t.Fatalf("tint alpha = %v, want 1", c.A)
		}
		for _, v := range []float64{c.R, c.G, c.B} {
			if v < 0 || v > 1 {
				t.Fatalf("tint component %v out of range", v)
			}
		}
	}
}

func TestVec2Lerp(t *testing.T) {
	a := Vec2{0, 10}
	b := Vec2{100, 20}
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %v, want %v", got, b)
	}
	if got := a.Lerp(b, 0.5); got != (Vec2{50, 15}) {
		t.Errorf("Lerp(0.5) = %v, want {50 15}", got)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 20, Height: 10}
	if !r.Contains(10, 10) || !r.Contains(30, 20) {
		t.Error("edges should be inside")
	}
	if r.Contains(9, 15) || r.Contains(15, 21) {
		t.Error("points outside should not be contained")
	}
}

func TestRectOverlaps(t *testing.T) {
	hole := Rect{X: 100, Y: 580, Width: 50, Height: 20}
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"inside", Rect{110, 585, 5, 5}, true},
		{"partial left", Rect{90, 570, 20, 20}, true},
		{"covers", Rect{0, 0, 800, 600}, true},
		{"touching left edge", Rect{80, 580, 20, 20}, false},
		{"touching top edge", Rect{110, 560, 10, 20}, false},
		{"apart", Rect{0, 0, 10, 10}, false},
	}
	for _, tt := range tests {
		if got := tt.r.Overlaps(hole); got != tt.want {
			t.Errorf("%s: Overlaps = %v, want %v", tt.name, got, tt.want)
		}
		if got := hole.Overlaps(tt.r); got != tt.want {
			t.Errorf("%s: symmetric Overlaps = %v, want %v", tt.name, got, tt.want)
		}
	}
}
