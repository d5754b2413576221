package vmath

// FastRand is a xorshift64 generator, not safe for concurrent use
// Owned by a single loop goroutine; seed 0 is remapped to 1
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Intn returns [0, n), 0 for n <= 0
func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// IntInclusive returns [0, max], 0 for max <= 0
func (r *FastRand) IntInclusive(max int) int {
	if max <= 0 {
		return 0
	}
	return r.Intn(max + 1)
}

// Float64 returns [0, 1) using the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a uniform value between a and b, argument order does not matter
func (r *FastRand) Range(a, b float64) float64 {
	return a + r.Float64()*(b-a)
}
