package core

import (
	"hash/fnv"
	"math"
)

// Source yields integers for the generation pipeline.
// It is the only source of non-determinism in a generation run.
type Source interface {
	// Between returns a uniformly distributed integer in [min, max].
	Between(min, max int) int
}

// SimpleRNG is a deterministic pseudo-random number generator (xorshift64).
type SimpleRNG struct {
	state uint64
}

// NewRNG creates a new RNG with the given seed.
func NewRNG(seed uint64) *SimpleRNG {
	if seed == 0 {
		seed = 88172645463325252 // xorshift state must be non-zero
	}
	return &SimpleRNG{state: seed}
}

// NewSeededSource returns a deterministic source for a textual seed.
// Equal seeds always produce equal sequences.
func NewSeededSource(seed string) *SimpleRNG {
	return NewRNG(SeedFromString(seed))
}

// SeedFromString hashes a textual seed into RNG state (FNV-1a).
func SeedFromString(seed string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(seed)) //nolint:errcheck // hash writes never fail
	return h.Sum64()
}

// Next returns the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 7
	r.state ^= r.state << 17
	return r.state
}

// Intn returns a uniformly distributed int in [0, n).
// Uses rejection sampling so small ranges carry no modulo bias.
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	bound := uint64(n)
	limit := math.MaxUint64 - math.MaxUint64%bound
	for {
		v := r.Next()
		if v < limit {
			return int(v % bound)
		}
	}
}

// Between returns a uniformly distributed int in [min, max].
// Returns min when max < min.
func (r *SimpleRNG) Between(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.Intn(max-min+1)
}
