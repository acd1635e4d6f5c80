package quizgen

// Rand is a small deterministic pseudo-random generator used for every
// "random" decision the generator makes. The algorithm is xorshift64*
// (Vigna, "An experimental exploration of Marsaglia's xorshift generators"):
//
//	x ^= x >> 12; x ^= x << 25; x ^= x >> 27; return x * 0x2545F4914F6CDD1D
//
// It is part of the reproducibility contract: identical seeds must produce
// identical quizzes across builds and platforms, so the generator is spelled
// out here instead of relying on math/rand, whose internals are unspecified
// and free to change between Go releases.
type Rand struct {
	state uint64
}

// xorshift64* has a single absorbing state at zero, remap it.
const zeroSeedReplacement = 0x9E3779B97F4A7C15

// NewRand returns a generator seeded with the given value.
func NewRand(seed uint64) *Rand {
	if seed == 0 {
		seed = zeroSeedReplacement
	}
	return &Rand{state: seed}
}

func (r *Rand) next() uint64 {
	x := r.state
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	r.state = x
	return x * 0x2545F4914F6CDD1D
}

// Intn returns a deterministic int in [0, n). It uses the straight modulo of
// the next state; the tiny bias is irrelevant here and keeping the mapping
// trivial keeps it reproducible. Panics if n <= 0.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		panic("quizgen: Intn called with non-positive n")
	}
	return int(r.next() % uint64(n))
}

// Shuffle performs a Fisher-Yates shuffle over n elements, from the top
// index downward, calling swap for each exchange.
func (r *Rand) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		swap(i, j)
	}
}

// Pick returns a uniformly chosen element of items. Panics on empty input.
func (r *Rand) Pick(items []string) string {
	return items[r.Intn(len(items))]
}
