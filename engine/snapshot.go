package engine

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/vi-pong/core"
)

// Snapshot is the immutable render view of a GameState
type Snapshot struct {
	Field   core.Field
	Ball    core.Rect
	Paddle1 core.Rect
	Paddle2 core.Rect
	Score1  int
	Score2  int
	Status  string
	Match   core.MatchState
	MatchID uuid.UUID
	Tick    uint64
	Speed   float64
}

func newSnapshot(s core.GameState, matchID uuid.UUID, tick uint64) Snapshot {
	return Snapshot{
		Field:   s.Field,
		Ball:    s.Ball.Rect(),
		Paddle1: s.Player1.Rect(),
		Paddle2: s.Player2.Rect(),
		Score1:  s.Score.Player1,
		Score2:  s.Score.Player2,
		Status:  s.Status,
		Match:   s.Match,
		MatchID: matchID,
		Tick:    tick,
		Speed:   s.Ball.Speed,
	}
}
