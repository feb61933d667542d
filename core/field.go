package core

// Field is the rectangular playing surface, resizable at runtime
type Field struct {
	Width, Height float64
}

// Valid reports whether both dimensions are positive
func (f Field) Valid() bool {
	return f.Width > 0 && f.Height > 0
}

// Center returns the field midpoint
func (f Field) Center() (x, y float64) {
	return f.Width / 2, f.Height / 2
}
