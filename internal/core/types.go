package core

// Size describes the logical dimensions of the arena.
type Size struct {
	W int
	H int
}

// Rect is an axis-aligned rectangle anchored at its lower-left corner in
// world space (y grows upwards).
type Rect struct {
	X, Y float64
	W, H float64
}

// Top returns the y coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y + r.H }

// OverlapsY reports whether the vertical extents of r and o intersect. Edges
// that only touch do not count as overlap.
func (r Rect) OverlapsY(o Rect) bool {
	return r.Top() > o.Y && r.Y < o.Top()
}

// FlipY converts r from world space into screen space for an arena of the
// given height, where y grows downwards and Y names the top edge.
func (r Rect) FlipY(height float64) Rect {
	return Rect{X: r.X, Y: height - r.Y - r.H, W: r.W, H: r.H}
}
