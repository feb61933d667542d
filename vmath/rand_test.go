package vmath

import "testing"

func TestFastRandZeroSeed(t *testing.T) {
	r := NewFastRand(0)
	if r.Next() == 0 {
		t.Fatal("zero seed produced a stuck generator")
	}
}

func TestFastRandDeterministic(t *testing.T) {
	a := NewFastRand(42)
	b := NewFastRand(42)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("sequences diverged at step %d", i)
		}
	}
}

func TestFastRandSignDistribution(t *testing.T) {
	r := NewFastRand(12345)
	var neg, pos int
	for i := 0; i < 10000; i++ {
		switch r.Sign() {
		case -1:
			neg++
		case 1:
			pos++
		default:
			t.Fatal("Sign returned a value other than -1 or +1")
		}
	}
	// Loose bound; only guards against a constant sign
	if neg < 4000 || pos < 4000 {
		t.Errorf("skewed sign distribution: neg=%d pos=%d", neg, pos)
	}
}
