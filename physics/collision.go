package physics

import (
	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/vmath"
)

// Contacts records which surfaces the ball touched during one tick
type Contacts struct {
	Wall    bool
	Paddle1 bool
	Paddle2 bool
}

// PaddleHits returns the number of paddle contacts
func (c Contacts) PaddleHits() int {
	n := 0
	if c.Paddle1 {
		n++
	}
	if c.Paddle2 {
		n++
	}
	return n
}

// ReflectWalls inverts vertical velocity when the ball crosses the top or bottom edge
// Position is not corrected; the ball may overlap the wall for a tick
func ReflectWalls(b *core.Ball, field core.Field) bool {
	if b.Bottom() > field.Height || b.Top() < 0 {
		b.Vel[1] = -b.Vel[1]
		return true
	}
	return false
}

// CollideLeft tests the ball against the left paddle's inner edge
func CollideLeft(b *core.Ball, p core.Paddle, rng vmath.SignSource) bool {
	if b.Left() < p.X+p.Width && b.Rect().OverlapsVertically(p.Rect()) {
		bounce(b, rng)
		return true
	}
	return false
}

// CollideRight tests the ball against the right paddle's inner edge
func CollideRight(b *core.Ball, p core.Paddle, rng vmath.SignSource) bool {
	if b.Right() > p.X && b.Rect().OverlapsVertically(p.Rect()) {
		bounce(b, rng)
		return true
	}
	return false
}

// bounce speeds the ball up and re-randomizes both velocity signs
// Direction ignores the angle of incidence
func bounce(b *core.Ball, rng vmath.SignSource) {
	b.Vel[0] = -b.Vel[0]
	b.Speed += constants.BallSpeedIncrement
	Launch(b, rng)
}
