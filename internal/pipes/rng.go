package pipes

import "fmt"

// Rand is a deterministic pseudo-random number generator (32-bit mulberry
// mix: additive increment plus two xorshift/multiply passes). The same seed
// always yields the same infinite sequence, which the board builder, start
// placement and pipe queue rely on for reproducible stages.
type Rand struct {
	state uint32
}

// NewRand creates a generator seeded with the given 32-bit value.
func NewRand(seed uint32) *Rand {
	return &Rand{state: seed}
}

// next returns the next raw 32-bit value.
func (r *Rand) next() uint32 {
	r.state += 0x6D2B79F5
	z := r.state
	z = (z ^ (z >> 15)) * (z | 1)
	z ^= z + (z^(z>>7))*(z|61)
	return z ^ (z >> 14)
}

// Float returns a random float64 in [0, 1).
func (r *Rand) Float() float64 {
	return float64(r.next()) / 4294967296.0
}

// Intn returns a random int in [0, n). Returns 0 for n <= 0.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.next() % uint32(n))
}

// Shuffle performs a Fisher-Yates shuffle over n elements.
func (r *Rand) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		swap(i, j)
	}
}

// HashSeed hashes text to an unsigned 32-bit seed using a multiplicative/xor
// scheme (order-sensitive, not cryptographic).
func HashSeed(text string) uint32 {
	h := uint32(2166136261)
	for i := 0; i < len(text); i++ {
		h ^= uint32(text[i])
		h *= 16777619
	}
	return h
}

// SubSeed derives an independent substream seed for a (purpose, stage) pair
// from a shared base seed. Distinct subsystems (board layout, start tile,
// queue) each own a substream so they vary independently per stage while
// remaining fully reproducible from the base seed alone.
func SubSeed(base uint32, purpose string, stage int) uint32 {
	return base ^ HashSeed(fmt.Sprintf("%s:%d", purpose, stage))
}
