package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metric keys written by the game loop
const (
	KeyTicks       = "engine.ticks"
	KeyMatches     = "engine.matches"
	KeyRunning     = "engine.running"
	KeyPaddleHits  = "physics.paddle_hits"
	KeyWallBounces = "physics.wall_bounces"
	KeyScoreEvents = "score.events"
	KeyBallSpeed   = "ball.speed"
)

// Registry is the central metrics facade
// The game loop caches pointers at construction; readers may poll from any goroutine
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates a registry with empty bool, int and float maps
func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// String renders every metric as "key=value" in sorted order per type
func (r *Registry) String() string {
	var parts []string
	r.Bools.Range(func(k string, v *atomic.Bool) {
		parts = append(parts, fmt.Sprintf("%s=%t", k, v.Load()))
	})
	r.Ints.Range(func(k string, v *atomic.Int64) {
		parts = append(parts, fmt.Sprintf("%s=%d", k, v.Load()))
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		parts = append(parts, fmt.Sprintf("%s=%.1f", k, v.Get()))
	})
	return strings.Join(parts, " ")
}
