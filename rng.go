package main

import (
	crand "crypto/rand"
	"math"
)

// Rand is a small deterministic xorshift generator. Every source of
// gameplay randomness (spawn jitter, dive triggers, enemy fire, hyperspace
// mishaps) is drawn from the single Rand owned by a Game, so a whole run
// can be replayed from its seed.
type Rand struct {
	state uint64
}

// NewRand creates a generator from an explicit seed
func NewRand(seed uint64) *Rand {
	if seed == 0 {
		seed = 0x9e3779b97f4a7c15
	}
	return &Rand{state: seed}
}

// RandomSeed returns a seed drawn from crypto/rand
func RandomSeed() uint64 {
	b := make([]byte, 8)
	crand.Read(b)
	var s uint64
	for i, v := range b {
		s |= uint64(v) << (uint(i) * 8)
	}
	if s == 0 {
		s = 1
	}
	return s
}

func (r *Rand) next() uint64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 7
	r.state ^= r.state << 17
	return r.state
}

// Float returns a float64 in [0, 1)
func (r *Rand) Float() float64 {
	return float64(r.next()>>11) / float64(1<<53)
}

// Range returns a float64 in [lo, hi)
func (r *Rand) Range(lo, hi float64) float64 {
	return lo + r.Float()*(hi-lo)
}

// Intn returns an int in [0, n)
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Float() * float64(n))
}

// Angle returns a random angle in [0, 2*PI)
func (r *Rand) Angle() float64 {
	return r.Float() * 2 * math.Pi
}
