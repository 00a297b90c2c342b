package core

import "math/rand/v2"

// RNG owns the random source used to seed boards. Nothing in the module
// touches a process-wide generator, so a fixed seed reproduces a board.
type RNG struct {
	seed int64
	r    *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	rng := &RNG{}
	rng.Reseed(seed)
	return rng
}

// Reseed restarts the sequence from seed.
func (r *RNG) Reseed(seed int64) {
	r.seed = seed
	r.r = rand.New(rand.NewPCG(uint64(seed), 0))
}

// Seed returns the seed the current sequence started from.
func (r *RNG) Seed() int64 { return r.seed }

// Source exposes the underlying rand.Rand.
func (r *RNG) Source() *rand.Rand { return r.r }

// FillBinary fills the buffer with 0/1 values drawn from r.
func FillBinary(r *rand.Rand, buf []uint8) {
	for i := range buf {
		buf[i] = uint8(r.IntN(2))
	}
}
