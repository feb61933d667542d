package constants

// Default playing field and entity sizes, in field units
const (
	DefaultFieldWidth  = 700.0
	DefaultFieldHeight = 400.0

	DefaultPaddleWidth  = 10.0
	DefaultPaddleHeight = 100.0

	DefaultBallRadius = 10.0
)

// Terminal cell size in field units, used to map field coordinates to screen cells
const (
	DefaultCellWidth  = 10.0
	DefaultCellHeight = 20.0
)
