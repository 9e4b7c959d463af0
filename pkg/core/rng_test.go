package core

import "testing"

func TestIntBetweenSingleValue(t *testing.T) {
	rng := NewRNG(1)
	for i := 0; i < 100; i++ {
		if got := rng.IntBetween(5, 5); got != 5 {
			t.Fatalf("IntBetween(5, 5) = %d, want 5", got)
		}
	}
}

func TestIntBetweenArgumentOrder(t *testing.T) {
	rng := NewRNG(7)
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		got := rng.IntBetween(10, 0)
		if got < 0 || got > 10 {
			t.Fatalf("IntBetween(10, 0) = %d, outside [0,10]", got)
		}
		seen[got] = true
	}
	if len(seen) != 11 {
		t.Fatalf("expected all 11 values to appear, saw %d", len(seen))
	}
}

func TestIntBetweenDeterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)
	for i := 0; i < 50; i++ {
		if x, y := a.IntBetween(0, 255), b.IntBetween(0, 255); x != y {
			t.Fatalf("draw %d differs for equal seeds: %d vs %d", i, x, y)
		}
	}
}

func TestIntNNonPositive(t *testing.T) {
	rng := NewRNG(3)
	if got := rng.IntN(0); got != 0 {
		t.Fatalf("IntN(0) = %d, want 0", got)
	}
	if got := rng.IntN(-4); got != 0 {
		t.Fatalf("IntN(-4) = %d, want 0", got)
	}
}

func TestPick(t *testing.T) {
	rng := NewRNG(9)
	if got := Pick[string](rng, nil); got != "" {
		t.Fatalf("Pick on empty slice = %q, want zero value", got)
	}
	items := []string{"a", "b", "c"}
	seen := map[string]bool{}
	for i := 0; i < 300; i++ {
		seen[Pick(rng, items)] = true
	}
	if len(seen) != len(items) {
		t.Fatalf("expected every item to be picked, saw %v", seen)
	}
}

func TestRandomKey(t *testing.T) {
	m := map[string]int{"warm": 1, "cool": 2, "nature": 3}
	seen := map[string]bool{}
	rng := NewRNG(11)
	for i := 0; i < 300; i++ {
		k := RandomKey(rng, m)
		if _, ok := m[k]; !ok {
			t.Fatalf("RandomKey returned %q which is not in the map", k)
		}
		seen[k] = true
	}
	if len(seen) != len(m) {
		t.Fatalf("expected every key to be chosen, saw %v", seen)
	}

	first := RandomKey(NewRNG(5), m)
	for i := 0; i < 10; i++ {
		if got := RandomKey(NewRNG(5), m); got != first {
			t.Fatalf("RandomKey not reproducible for equal seeds: %q vs %q", got, first)
		}
	}
}
