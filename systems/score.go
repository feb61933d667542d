package systems

import (
	"fmt"

	"github.com/lixenwraith/vi-pong/constants"
	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/physics"
	"github.com/lixenwraith/vi-pong/vmath"
)

// ScoreEvent reports a point scored during a tick
type ScoreEvent struct {
	Scorer core.Player
	Score  core.Score // Score after the point
	// Winner is set when this point ended the match
	Winner core.Player
}

// CheckScoring credits a point when the ball leaves the field horizontally
// Left exit scores for player 2, right exit for player 1; at most one per tick
// On a point the ball is recentered at base speed and the win condition is evaluated
func CheckScoring(s core.GameState, rng vmath.SignSource) (core.GameState, ScoreEvent, bool) {
	var scorer core.Player
	switch {
	case s.Ball.Left() < 0:
		scorer = core.Player2
	case s.Ball.Right() > s.Field.Width:
		scorer = core.Player1
	default:
		return s, ScoreEvent{}, false
	}

	s.Score.Add(scorer)
	physics.ResetBall(&s.Ball, s.Field, rng)

	ev := ScoreEvent{Scorer: scorer, Score: s.Score}
	s, ev.Winner = CheckWin(s)
	return s, ev, true
}

// CheckWin finishes the match once either player reaches the winning score
func CheckWin(s core.GameState) (core.GameState, core.Player) {
	winner := s.Score.Leader(constants.WinningScore)
	if winner == core.PlayerNone {
		return s, core.PlayerNone
	}
	s.Match = core.MatchFinished
	s.Status = fmt.Sprintf("PLAYER %d WINS! FINAL SCORE: %s", winner, s.Score)
	return s, winner
}
