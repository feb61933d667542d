package vmath

// SignSource yields a random direction sign, -1 or +1
type SignSource interface {
	Sign() float64
}

// FastRand is a seedable xorshift64 generator
// Not safe for concurrent use; each game loop owns its own instance
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Sign returns -1 or +1 with equal probability
// Uses a high bit; low bits of xorshift are weaker
func (r *FastRand) Sign() float64 {
	if r.Next()>>63 == 0 {
		return -1
	}
	return 1
}
