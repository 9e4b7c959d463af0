package core

import (
	"cmp"
	"maps"
	"math/rand/v2"
	"slices"
	"time"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// NewRandomRNG seeds an RNG from the wall clock.
func NewRandomRNG() *RNG {
	return NewRNG(time.Now().UnixNano())
}

// Float64 returns a float in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// IntN returns a random int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// IntBetween returns a uniformly distributed int in the inclusive range spanned
// by a and b. The arguments may be given in either order.
func (r *RNG) IntBetween(a, b int) int {
	lo, hi := min(a, b), max(a, b)
	return lo + r.r.IntN(hi-lo+1)
}

// Pick returns a uniformly chosen element of items, or the zero value when
// items is empty.
func Pick[T any](r *RNG, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	return items[r.IntN(len(items))]
}

// RandomKey returns a uniformly chosen key of m. Keys are sorted before the
// draw so a seeded RNG always yields the same key for the same map.
func RandomKey[K cmp.Ordered, V any](r *RNG, m map[K]V) K {
	return Pick(r, slices.Sorted(maps.Keys(m)))
}
