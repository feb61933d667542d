package constants

// Status line messages
const (
	StatusIdle    = "PRESS 'S' TO BEGIN!"
	StatusRunning = "GAME ON!"
	StatusReset   = "GAME RESET. PRESS 'S' TO PLAY!"
)

// UI layout
const (
	// ScoreBarHeight is the number of rows above the field
	ScoreBarHeight = 1
	// StatusBarHeight is the number of rows below the field
	StatusBarHeight = 1

	GameTitle = "PONG"

	KeyHints = "[s] start  [r] reset  [h] help  [q] quit"
)

// HowToPlayText is shown by the help dialog
const HowToPlayText = `Objective: be the first player to score 5 points.

Your paddle (left): move the mouse up and down over the
field, or use the Up/Down arrow keys.

Opponent (right): controlled by the computer.

Scoring: you score when the ball passes the opponent's
paddle and leaves their side of the field. The opponent
scores when the ball passes yours.

Ball speed: the ball gets slightly faster every time it
hits a paddle.`
