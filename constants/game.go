package constants

import "time"

// Game Loop Timing Constants
const (
	// TickInterval is the nominal simulation step interval (~50 Hz)
	TickInterval = 20 * time.Millisecond

	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond
)

// Match Rules
const (
	// WinningScore ends the match as soon as either player reaches it
	WinningScore = 5
)

// Ball Physics
const (
	// BallBaseSpeed is the per-axis velocity magnitude at the start of every rally
	BallBaseSpeed = 5.0

	// BallSpeedIncrement is added to ball speed on every paddle hit
	BallSpeedIncrement = 0.2
)

// AI Paddle Tracking
const (
	// AIDeviationFactor scales paddle height into the reaction deadzone
	AIDeviationFactor = 0.3

	// AISpeedFactor scales ball speed into the per-tick AI paddle step
	AISpeedFactor = 0.8
)
