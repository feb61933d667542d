package core

// Side identifies which edge of the field a paddle guards
type Side uint8

const (
	SideLeft Side = iota
	SideRight
)

// Paddle is a vertical bar flush against one side of the field
// Y is the top edge; X is derived from Side and field width
type Paddle struct {
	Side          Side
	X, Y          float64
	Width, Height float64
}

// NewPaddle creates a paddle vertically centered on the field
func NewPaddle(side Side, width, height float64, field Field) Paddle {
	p := Paddle{
		Side:   side,
		Width:  width,
		Height: height,
		Y:      (field.Height - height) / 2,
	}
	p.AlignX(field)
	return p
}

// AlignX places the paddle flush against its side of the field
func (p *Paddle) AlignX(field Field) {
	switch p.Side {
	case SideLeft:
		p.X = 0
	case SideRight:
		p.X = field.Width - p.Width
	}
}

// Clamp keeps the paddle within [0, field.Height-Height]
func (p *Paddle) Clamp(field Field) {
	maxY := field.Height - p.Height
	if p.Y > maxY {
		p.Y = maxY
	}
	if p.Y < 0 {
		p.Y = 0
	}
}

// Center moves the paddle to the vertical middle of the field
func (p *Paddle) Center(field Field) {
	p.Y = (field.Height - p.Height) / 2
}

// CenterY returns the paddle's vertical midpoint
func (p Paddle) CenterY() float64 { return p.Y + p.Height/2 }

// Bottom returns the paddle's bottom edge
func (p Paddle) Bottom() float64 { return p.Y + p.Height }

// Rect returns the paddle bounds
func (p Paddle) Rect() Rect {
	return Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}
