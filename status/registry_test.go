package status

import (
	"sync"
	"testing"
)

func TestMetricMapGetCachesPointer(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get(KeyTicks)
	b := r.Ints.Get(KeyTicks)
	if a != b {
		t.Fatal("Get returned different pointers for the same key")
	}
	a.Add(3)
	if got := b.Load(); got != 3 {
		t.Errorf("shared counter = %d, want 3", got)
	}
}

func TestMetricMapConcurrentGet(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Ints.Get(KeyPaddleHits).Add(1)
			}
		}()
	}
	wg.Wait()

	if got := r.Ints.Get(KeyPaddleHits).Load(); got != 1600 {
		t.Errorf("counter = %d, want 1600", got)
	}
	if got := r.String(); got != "physics.paddle_hits=1600" {
		t.Errorf("String() = %q, want a single counter", got)
	}
}

func TestRegistryString(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(KeyTicks).Store(42)
	r.Ints.Get(KeyMatches).Store(1)
	r.Floats.Get(KeyBallSpeed).Set(5.4)
	r.Bools.Get(KeyRunning).Store(true)

	want := "engine.running=true engine.matches=1 engine.ticks=42 ball.speed=5.4"
	if got := r.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestAtomicFloatZeroValue(t *testing.T) {
	var f AtomicFloat
	if f.Get() != 0 {
		t.Errorf("zero value = %v", f.Get())
	}
	f.Set(-2.5)
	if f.Get() != -2.5 {
		t.Errorf("Get = %v, want -2.5", f.Get())
	}
}
