package core

// RNG is a deterministic pseudo-random number generator (xorshift64).
// The same seed always yields the same sequence, which keeps board
// generation reproducible across runs and machines.
type RNG struct {
	state uint64
}

// NewRNG creates a new RNG with the given seed.
func NewRNG(seed uint64) *RNG {
	if seed == 0 {
		seed = 88172645463325252 // Default seed
	}
	return &RNG{state: seed}
}

// Next returns the next random uint64.
func (r *RNG) Next() uint64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 7
	r.state ^= r.state << 17
	return r.state
}

// Float returns a random float64 in [0, 1).
func (r *RNG) Float() float64 {
	return float64(r.Next()&0x7FFFFFFFFFFFFFFF) / float64(0x8000000000000000)
}

// Intn returns a random int in [0, n).
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n)) //#nosec G115 -- n is always positive
}

// Index picks an index with probability proportional to its weight.
// Non-positive weights are never picked. It returns -1 when weights is
// empty or has no positive entry.
func (r *RNG) Index(weights []float64) int {
	if len(weights) == 0 {
		return -1
	}

	var total float64
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return -1
	}

	roll := r.Float() * total
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if roll <= w {
			return i
		}
		roll -= w
	}

	return -1
}
