package core

import (
	"testing"
	"time"
)

func TestRectOverlapsY(t *testing.T) {
	paddle := Rect{X: 10, Y: 250, W: 10, H: 100}
	cases := []struct {
		y    float64
		want bool
	}{
		{y: 295, want: true},
		{y: 241, want: true},
		{y: 240, want: false},
		{y: 349, want: true},
		{y: 350, want: false},
	}
	for _, tc := range cases {
		ball := Rect{X: 20, Y: tc.y, W: 10, H: 10}
		if got := ball.OverlapsY(paddle); got != tc.want {
			t.Fatalf("ball y=%f overlap = %v, want %v", tc.y, got, tc.want)
		}
	}
}

func TestRectFlipY(t *testing.T) {
	r := Rect{X: 10, Y: 0, W: 10, H: 100}.FlipY(600)
	if r.Y != 500 || r.X != 10 || r.H != 100 {
		t.Fatalf("flipped rect = %+v, want y=500", r)
	}
}

func TestRNGDeterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 64; i++ {
		if a.Bool() != b.Bool() {
			t.Fatalf("draw %d diverged for equal seeds", i)
		}
	}
	if got := a.IntN(0); got != 0 {
		t.Fatalf("IntN(0) = %d, want 0", got)
	}
}

func TestRNGBoolIsRoughlyFair(t *testing.T) {
	r := NewRNG(1)
	trues := 0
	const n = 10000
	for i := 0; i < n; i++ {
		if r.Bool() {
			trues++
		}
	}
	if trues < n*45/100 || trues > n*55/100 {
		t.Fatalf("%d/%d true draws, expected close to half", trues, n)
	}
}

func TestDeltaClock(t *testing.T) {
	base := time.Unix(100, 0)
	now := base
	c := &DeltaClock{now: func() time.Time { return now }}

	if got := c.Tick(); got != 0 {
		t.Fatalf("first tick = %f, want 0", got)
	}
	now = base.Add(250 * time.Millisecond)
	if got := c.Tick(); got != 0.25 {
		t.Fatalf("tick = %f, want 0.25", got)
	}
	now = base
	if got := c.Tick(); got != 0 {
		t.Fatalf("backwards tick = %f, want 0", got)
	}
	c.Reset()
	now = base.Add(time.Second)
	if got := c.Tick(); got != 0 {
		t.Fatalf("tick after reset = %f, want 0", got)
	}
}

func TestFixedDelta(t *testing.T) {
	if got := FixedDelta(50); got != 0.02 {
		t.Fatalf("FixedDelta(50) = %f", got)
	}
	if got := FixedDelta(0); got != 1.0/60 {
		t.Fatalf("FixedDelta(0) = %f, want 1/60", got)
	}
}
