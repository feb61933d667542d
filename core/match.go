package core

import (
	"fmt"

	"github.com/google/uuid"
)

// MatchState is the lifecycle phase of a match
type MatchState int

const (
	MatchIdle MatchState = iota
	MatchRunning
	MatchFinished
)

// String returns the display name of the match state
func (m MatchState) String() string {
	switch m {
	case MatchIdle:
		return "Idle"
	case MatchRunning:
		return "Running"
	case MatchFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// Player identifies a participant; Player1 is human (left), Player2 is AI (right)
type Player int

const (
	PlayerNone Player = iota
	Player1
	Player2
)

// Score holds both players' points for the current match
type Score struct {
	Player1 int
	Player2 int
}

// Add credits one point to the given player
func (s *Score) Add(p Player) {
	switch p {
	case Player1:
		s.Player1++
	case Player2:
		s.Player2++
	}
}

// Leader returns the player whose score reached target, or PlayerNone
func (s Score) Leader(target int) Player {
	switch {
	case s.Player1 >= target:
		return Player1
	case s.Player2 >= target:
		return Player2
	default:
		return PlayerNone
	}
}

// String formats the score as "p1-p2"
func (s Score) String() string {
	return fmt.Sprintf("%d-%d", s.Player1, s.Player2)
}

// MatchResult is the terminal outcome of a finished match
type MatchResult struct {
	MatchID uuid.UUID
	Winner  Player
	Score   Score
}

// Message returns the announcement shown in the game-over dialog
func (r MatchResult) Message() string {
	return fmt.Sprintf("PLAYER %d WINS! Final Score: %s", r.Winner, r.Score)
}
