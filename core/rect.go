package core

// Rect is an axis-aligned rectangle in field units
type Rect struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// CenterY returns the vertical midpoint
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }

// OverlapsVertically reports whether the open vertical extents of r and o intersect
func (r Rect) OverlapsVertically(o Rect) bool {
	return r.Bottom() > o.Top() && r.Top() < o.Bottom()
}
