package engine

import (
	"testing"

	"github.com/lixenwraith/vi-pong/config"
)

// constSign always returns the same direction
type constSign float64

func (c constSign) Sign() float64 { return float64(c) }

func newTestGame(t *testing.T, opts ...Option) *Game {
	t.Helper()
	opts = append([]Option{WithRand(constSign(1))}, opts...)
	g, err := New(config.Default(), opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}
