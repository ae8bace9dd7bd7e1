package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random 64-bit register value.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Uint32 returns a pseudo-random 32-bit register value.
func (r *RNG) Uint32() uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint32()
}

// Uint16 returns a pseudo-random 16-bit register value.
func (r *RNG) Uint16() uint16 {
	return uint16(r.Uint32())
}

// Uint8 returns a pseudo-random 8-bit register value.
func (r *RNG) Uint8() uint8 {
	return uint8(r.Uint32())
}

// Index returns a pseudo-random 1-based bit position in [1, width].
func (r *RNG) Index(width int) int {
	return 1 + r.Intn(width)
}

// FillUint64 fills dst with pseudo-random register values.
// Locks only once per call (preferred over calling Uint64 in a loop).
func (r *RNG) FillUint64(dst []uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.rand.Uint64()
	}
}
