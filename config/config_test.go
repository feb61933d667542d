package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if cfg.TickInterval.Duration != 20*time.Millisecond {
		t.Errorf("tick interval = %v, want 20ms", cfg.TickInterval.Duration)
	}
	if cfg.Field.Width != 700 || cfg.Field.Height != 400 {
		t.Errorf("field = %gx%g, want 700x400", cfg.Field.Width, cfg.Field.Height)
	}
}

func TestParseOverlay(t *testing.T) {
	cfg, err := Parse(`
tick_interval = "10ms"
seed = 99

[field]
width = 800.0

[terminal]
mouse = false
`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.TickInterval.Duration != 10*time.Millisecond {
		t.Errorf("tick interval = %v, want 10ms", cfg.TickInterval.Duration)
	}
	if cfg.Seed != 99 {
		t.Errorf("seed = %d, want 99", cfg.Seed)
	}
	if cfg.Field.Width != 800 || cfg.Field.Height != 400 {
		t.Errorf("field = %gx%g, want 800x400", cfg.Field.Width, cfg.Field.Height)
	}
	if cfg.Terminal.Mouse {
		t.Error("mouse = true, want false")
	}
	if cfg.Terminal.CellWidth != 10 {
		t.Errorf("cell width = %g, want default 10", cfg.Terminal.CellWidth)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		text string
		want error
	}{
		{"zero field", "[field]\nwidth = 0.0", ErrInvalidField},
		{"paddle taller than field", "[paddle]\nheight = 500.0", ErrInvalidPaddle},
		{"paddles wider than field", "[paddle]\nwidth = 400.0", ErrInvalidPaddle},
		{"negative radius", "[ball]\nradius = -1.0", ErrInvalidBall},
		{"ball taller than field", "[ball]\nradius = 250.0", ErrInvalidBall},
		{"zero tick", `tick_interval = "0s"`, ErrInvalidInterval},
		{"zero cell", "[terminal]\ncell_height = 0.0", ErrInvalidTerminal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text)
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse(`tick_interval = "soon"`); err == nil {
		t.Error("expected error for bad duration")
	}
	if _, err := Parse(`bogus = 1`); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pong.toml")
	if err := os.WriteFile(path, []byte("[paddle]\nheight = 80.0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Paddle.Height != 80 {
		t.Errorf("paddle height = %g, want 80", cfg.Paddle.Height)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := Load(""); err != nil {
		t.Errorf("Load(\"\") = %v, want defaults", err)
	}
}

func TestFieldFits(t *testing.T) {
	cfg := Default()

	tests := []struct {
		name string
		w, h float64
		want error
	}{
		{"default table", 700, 400, nil},
		{"minimum", 20, 100, nil},
		{"no rows", 700, 0, ErrInvalidField},
		{"shorter than paddle", 700, 60, ErrInvalidPaddle},
		{"narrower than two paddles", 10, 400, ErrInvalidPaddle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cfg.FieldFits(tt.w, tt.h)
			if tt.want == nil {
				if err != nil {
					t.Errorf("FieldFits(%g, %g) = %v, want nil", tt.w, tt.h, err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("FieldFits(%g, %g) = %v, want %v", tt.w, tt.h, err, tt.want)
			}
		})
	}
}
