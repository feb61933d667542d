package systems

import (
	"math"

	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/core"
)

// UpdateAIPaddle steers the right paddle toward the ball
// The AI ignores the ball while it is within a deadzone around the paddle center,
// and never moves more than a fraction of ball speed per tick
func UpdateAIPaddle(s core.GameState) core.GameState {
	p := &s.Player2
	deviation := constants.AIDeviationFactor * p.Height
	step := constants.AISpeedFactor * s.Ball.Speed
	ballY := s.Ball.Pos.Y()

	switch {
	case ballY > p.CenterY()+deviation:
		p.Y += math.Min(step, s.Field.Height-p.Bottom())
	case ballY < p.CenterY()-deviation:
		p.Y -= math.Min(step, p.Y)
	}

	p.Clamp(s.Field)
	return s
}
