package core

import "github.com/go-gl/mathgl/mgl64"

// Ball is a square-bounded circle moving at a fixed per-axis speed
type Ball struct {
	Pos    mgl64.Vec2 // Center
	Vel    mgl64.Vec2 // Per-tick displacement (dx, dy)
	Radius float64
	// Speed is the magnitude of each velocity component; non-decreasing within a rally
	Speed float64
}

func (b Ball) Left() float64   { return b.Pos.X() - b.Radius }
func (b Ball) Right() float64  { return b.Pos.X() + b.Radius }
func (b Ball) Top() float64    { return b.Pos.Y() - b.Radius }
func (b Ball) Bottom() float64 { return b.Pos.Y() + b.Radius }

// Rect returns the ball's bounding box
func (b Ball) Rect() Rect {
	return Rect{
		X:      b.Left(),
		Y:      b.Top(),
		Width:  b.Radius * 2,
		Height: b.Radius * 2,
	}
}
