package physics

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/core"
)

// fixedSigns replays a sign sequence, repeating the last value once exhausted
type fixedSigns struct {
	seq   []float64
	calls int
}

func (f *fixedSigns) Sign() float64 {
	f.calls++
	if len(f.seq) == 0 {
		return 1
	}
	if f.calls > len(f.seq) {
		return f.seq[len(f.seq)-1]
	}
	return f.seq[f.calls-1]
}

// newTestState builds a 700x400 field with centered paddles and a ball at center moving (+5,+5)
func newTestState() core.GameState {
	field := core.Field{Width: constants.DefaultFieldWidth, Height: constants.DefaultFieldHeight}
	return core.GameState{
		Field:   field,
		Player1: core.NewPaddle(core.SideLeft, constants.DefaultPaddleWidth, constants.DefaultPaddleHeight, field),
		Player2: core.NewPaddle(core.SideRight, constants.DefaultPaddleWidth, constants.DefaultPaddleHeight, field),
		Ball: core.Ball{
			Pos:    mgl64.Vec2{350, 200},
			Vel:    mgl64.Vec2{constants.BallBaseSpeed, constants.BallBaseSpeed},
			Radius: constants.DefaultBallRadius,
			Speed:  constants.BallBaseSpeed,
		},
		Match: core.MatchRunning,
	}
}
