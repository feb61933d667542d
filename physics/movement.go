package physics

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/vmath"
)

// Advance moves the ball one tick and resolves wall and paddle collisions
// Returns the next state and the collisions that occurred
func Advance(s core.GameState, rng vmath.SignSource) (core.GameState, Contacts) {
	s.Ball.Pos = s.Ball.Pos.Add(s.Ball.Vel)

	var c Contacts
	if ReflectWalls(&s.Ball, s.Field) {
		c.Wall = true
	}
	if CollideLeft(&s.Ball, s.Player1, rng) {
		c.Paddle1 = true
	}
	if CollideRight(&s.Ball, s.Player2, rng) {
		c.Paddle2 = true
	}
	return s, c
}

// ResetBall recenters the ball at base speed with a fresh random direction
func ResetBall(b *core.Ball, field core.Field, rng vmath.SignSource) {
	cx, cy := field.Center()
	b.Pos = mgl64.Vec2{cx, cy}
	b.Speed = constants.BallBaseSpeed
	Launch(b, rng)
}

// Launch assigns random signs to both velocity components at the current speed
func Launch(b *core.Ball, rng vmath.SignSource) {
	b.Vel = mgl64.Vec2{rng.Sign() * b.Speed, rng.Sign() * b.Speed}
}
