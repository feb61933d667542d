package systems

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/core"
)

// constSign always returns the same direction
type constSign float64

func (c constSign) Sign() float64 { return float64(c) }

func newTestState() core.GameState {
	field := core.Field{Width: 700, Height: 400}
	return core.GameState{
		Field:   field,
		Player1: core.NewPaddle(core.SideLeft, 10, 100, field),
		Player2: core.NewPaddle(core.SideRight, 10, 100, field),
		Ball: core.Ball{
			Pos:    mgl64.Vec2{350, 200},
			Vel:    mgl64.Vec2{5, 5},
			Radius: 10,
			Speed:  constants.BallBaseSpeed,
		},
		Match: core.MatchRunning,
	}
}
