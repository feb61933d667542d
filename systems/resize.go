package systems

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-pong/core"
)

// ErrInvalidResize is returned for dimensions that cannot hold the entities
var ErrInvalidResize = errors.New("invalid field size")

// Resize adapts entities to new field dimensions
// The ball snaps to the new center with velocity kept; paddles stay flush to their
// edges and keep their vertical center, clamped into the new height
// Deterministic in (width, height, state): repeated calls with the same size are no-ops
func Resize(width, height float64, s core.GameState) (core.GameState, error) {
	if width <= 0 || height <= 0 {
		return s, fmt.Errorf("%w: %gx%g", ErrInvalidResize, width, height)
	}
	if s.Player1.Height > height || s.Player2.Height > height {
		return s, fmt.Errorf("%w: paddle height %g exceeds field height %g", ErrInvalidResize, s.Player1.Height, height)
	}
	if s.Ball.Radius*2 > height {
		return s, fmt.Errorf("%w: ball diameter %g exceeds field height %g", ErrInvalidResize, s.Ball.Radius*2, height)
	}
	if s.Player1.Width+s.Player2.Width > width {
		return s, fmt.Errorf("%w: paddles of width %g and %g do not fit field width %g", ErrInvalidResize, s.Player1.Width, s.Player2.Width, width)
	}
	if s.Ball.Radius*2 > width {
		return s, fmt.Errorf("%w: ball diameter %g exceeds field width %g", ErrInvalidResize, s.Ball.Radius*2, width)
	}

	s.Field = core.Field{Width: width, Height: height}
	s.Ball.Pos = mgl64.Vec2{width / 2, height / 2}

	for _, p := range []*core.Paddle{&s.Player1, &s.Player2} {
		center := p.CenterY()
		p.AlignX(s.Field)
		p.Y = center - p.Height/2
		p.Clamp(s.Field)
	}
	return s, nil
}
