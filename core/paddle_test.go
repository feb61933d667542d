package core

import "testing"

func TestNewPaddle(t *testing.T) {
	field := Field{Width: 700, Height: 400}

	left := NewPaddle(SideLeft, 10, 100, field)
	if left.X != 0 || left.Y != 150 {
		t.Errorf("left paddle at (%v,%v), want (0,150)", left.X, left.Y)
	}

	right := NewPaddle(SideRight, 10, 100, field)
	if right.X != 690 || right.Y != 150 {
		t.Errorf("right paddle at (%v,%v), want (690,150)", right.X, right.Y)
	}
}

func TestPaddleClamp(t *testing.T) {
	field := Field{Width: 700, Height: 400}

	tests := []struct {
		name string
		y    float64
		want float64
	}{
		{"above top", -25, 0},
		{"top edge", 0, 0},
		{"inside", 123, 123},
		{"bottom edge", 300, 300},
		{"below bottom", 380, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPaddle(SideLeft, 10, 100, field)
			p.Y = tt.y
			p.Clamp(field)
			if p.Y != tt.want {
				t.Errorf("Clamp(%v) = %v, want %v", tt.y, p.Y, tt.want)
			}
		})
	}
}

func TestPaddleAlignAfterWidthChange(t *testing.T) {
	p := NewPaddle(SideRight, 10, 100, Field{Width: 700, Height: 400})
	p.AlignX(Field{Width: 500, Height: 400})
	if p.X != 490 {
		t.Errorf("X = %v, want 490", p.X)
	}
}

func TestRectOverlapsVertically(t *testing.T) {
	paddle := Rect{X: 0, Y: 100, Width: 10, Height: 100}

	tests := []struct {
		name string
		y    float64
		want bool
	}{
		{"inside", 150, true},
		{"straddles top", 90, true},
		{"touches top", 80, false},
		{"touches bottom", 200, false},
		{"below", 250, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ball := Rect{X: 5, Y: tt.y, Width: 20, Height: 20}
			if got := ball.OverlapsVertically(paddle); got != tt.want {
				t.Errorf("OverlapsVertically() = %v, want %v", got, tt.want)
			}
		})
	}
}
