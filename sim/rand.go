package sim

import "math/rand/v2"

// Rand is the only source of randomness in a Session. It holds its whole
// state by value, so copying a Rand produces a second generator that will
// return exactly the same numbers as the first one from that point on.
type Rand struct {
	pcg rand.PCG
}

func NewRand(seed int64) (r Rand) {
	r.pcg.Seed(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)
	return
}

// RInt returns a random integer in [min, max]. Both ends are included.
func (r *Rand) RInt(min int64, max int64) int64 {
	if min > max {
		min, max = max, min
	}
	return min + int64(r.pcg.Uint64()%uint64(max-min+1))
}

// RFloat returns a random float in [0, 1).
func (r *Rand) RFloat() float64 {
	return float64(r.pcg.Uint64()>>11) / (1 << 53)
}
