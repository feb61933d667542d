// Package config loads game geometry and timing from an optional TOML file.
// Gameplay rules (speeds, winning score, AI tuning) are fixed in package constants.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vi-pong/constants"
)

var (
	ErrInvalidField    = errors.New("invalid field")
	ErrInvalidPaddle   = errors.New("invalid paddle")
	ErrInvalidBall     = errors.New("invalid ball")
	ErrInvalidInterval = errors.New("invalid interval")
	ErrInvalidTerminal = errors.New("invalid terminal")
)

// Duration wraps time.Duration for TOML strings like "20ms"
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

type Config struct {
	TickInterval Duration `toml:"tick_interval"`
	// Seed for the bounce direction generator; 0 seeds from the clock
	Seed    uint64 `toml:"seed"`
	LogFile string `toml:"log_file"`

	Field    FieldConfig    `toml:"field"`
	Paddle   PaddleConfig   `toml:"paddle"`
	Ball     BallConfig     `toml:"ball"`
	Terminal TerminalConfig `toml:"terminal"`
}

type FieldConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

type PaddleConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

type BallConfig struct {
	Radius float64 `toml:"radius"`
}

// TerminalConfig maps field units onto screen cells
type TerminalConfig struct {
	CellWidth     float64  `toml:"cell_width"`
	CellHeight    float64  `toml:"cell_height"`
	FrameInterval Duration `toml:"frame_interval"`
	Mouse         bool     `toml:"mouse"`
}

// Default returns the configuration of the classic 700x400 table
func Default() Config {
	return Config{
		TickInterval: Duration{constants.TickInterval},
		Field: FieldConfig{
			Width:  constants.DefaultFieldWidth,
			Height: constants.DefaultFieldHeight,
		},
		Paddle: PaddleConfig{
			Width:  constants.DefaultPaddleWidth,
			Height: constants.DefaultPaddleHeight,
		},
		Ball: BallConfig{
			Radius: constants.DefaultBallRadius,
		},
		Terminal: TerminalConfig{
			CellWidth:     constants.DefaultCellWidth,
			CellHeight:    constants.DefaultCellHeight,
			FrameInterval: Duration{constants.FrameUpdateInterval},
			Mouse:         true,
		},
	}
}

// Load overlays the TOML file at path onto the defaults and validates the result
// An empty path yields the validated defaults
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(string(data))
}

// Parse overlays TOML text onto the defaults and validates the result
func Parse(text string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(text, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects geometry and timing that would make paddle or ball clamps impossible
func (c Config) Validate() error {
	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		return fmt.Errorf("%w: %gx%g", ErrInvalidField, c.Field.Width, c.Field.Height)
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		return fmt.Errorf("%w: %gx%g", ErrInvalidPaddle, c.Paddle.Width, c.Paddle.Height)
	}
	if c.Ball.Radius <= 0 {
		return fmt.Errorf("%w: radius %g", ErrInvalidBall, c.Ball.Radius)
	}
	if err := c.entitiesFit(c.Field.Width, c.Field.Height); err != nil {
		return err
	}
	if c.TickInterval.Duration <= 0 {
		return fmt.Errorf("%w: tick_interval %v", ErrInvalidInterval, c.TickInterval.Duration)
	}
	if c.Terminal.FrameInterval.Duration <= 0 {
		return fmt.Errorf("%w: frame_interval %v", ErrInvalidInterval, c.Terminal.FrameInterval.Duration)
	}
	if c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0 {
		return fmt.Errorf("%w: cell size %gx%g", ErrInvalidTerminal, c.Terminal.CellWidth, c.Terminal.CellHeight)
	}
	return nil
}

// FieldFits reports whether a field of the given size can hold the configured
// paddles and ball; the terminal checks window sizes with it before resizing
func (c Config) FieldFits(width, height float64) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %gx%g", ErrInvalidField, width, height)
	}
	return c.entitiesFit(width, height)
}

func (c Config) entitiesFit(width, height float64) error {
	if c.Paddle.Height > height {
		return fmt.Errorf("%w: height %g exceeds field height %g", ErrInvalidPaddle, c.Paddle.Height, height)
	}
	if c.Paddle.Width*2 > width {
		return fmt.Errorf("%w: two paddles of width %g do not fit field width %g", ErrInvalidPaddle, c.Paddle.Width, width)
	}
	if c.Ball.Radius*2 > height {
		return fmt.Errorf("%w: diameter %g exceeds field height %g", ErrInvalidBall, c.Ball.Radius*2, height)
	}
	if c.Ball.Radius*2 > width {
		return fmt.Errorf("%w: diameter %g exceeds field width %g", ErrInvalidBall, c.Ball.Radius*2, width)
	}
	return nil
}
