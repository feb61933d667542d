package engine

import "sync/atomic"

// paddleMailbox is a single-slot, last-write-wins inbox for pointer positions
// Written by the UI at any cadence, drained by the game loop once per tick
type paddleMailbox struct {
	slot atomic.Pointer[float64]
}

func (m *paddleMailbox) Put(y float64) {
	m.slot.Store(&y)
}

// Take empties the slot, returning false if nothing was posted since the last Take
func (m *paddleMailbox) Take() (float64, bool) {
	p := m.slot.Swap(nil)
	if p == nil {
		return 0, false
	}
	return *p, true
}
