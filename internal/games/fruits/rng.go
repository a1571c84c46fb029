package fruits

// Random is the source of every random decision in the simulation.
type Random interface {
	// IntRange returns a uniform integer in [lo, hi].
	IntRange(lo, hi int) int
	// Chance returns true with probability p.
	Chance(p float64) bool
}

// LCG is a deterministic 64-bit linear congruential generator.
// Two games seeded alike and fed the same input produce the same run.
type LCG struct {
	state uint64
}

// NewLCG creates a generator with the given seed.
func NewLCG(seed int64) *LCG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &LCG{state: s}
}

func (r *LCG) next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// IntRange returns a uniform integer in [lo, hi]. The high bits are used;
// the low bits of an LCG have short periods.
func (r *LCG) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	n := uint64(hi-lo) + 1 //#nosec G115 -- hi > lo
	return lo + int((r.next()>>16)%n) //#nosec G115 -- result < n
}

// Float64 returns a value in [0, 1).
func (r *LCG) Float64() float64 {
	return float64(r.next()>>11) / (1 << 53)
}

// Chance returns true with probability p.
func (r *LCG) Chance(p float64) bool {
	switch {
	case p <= 0:
		return false
	case p >= 1:
		return true
	}
	return r.Float64() < p
}

// State exposes the generator state for snapshots.
func (r *LCG) State() uint64 {
	return r.state
}
