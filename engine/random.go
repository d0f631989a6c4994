package engine

import (
	"math/rand"
	"time"
)

// Random is the uniform source behind every randomized choice
// Float64 returns a value in [0, 1)
type Random interface {
	Float64() float64
}

// NewRandom returns a seeded source, seed 0 selects a time-based seed
func NewRandom(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// pick maps a uniform draw onto an index in [0, n)
func pick(r Random, n int) int {
	i := int(r.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}
