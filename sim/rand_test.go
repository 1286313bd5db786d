package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRand_SameSeedSameRandomNumbers(t *testing.T) {
	r1 := NewRand(13)
	v1 := [10]int64{}
	for i := range v1 {
		v1[i] = r1.RInt(0, 1000000)
	}

	r2 := NewRand(13)
	v2 := [10]int64{}
	for i := range v2 {
		v2[i] = r2.RInt(0, 1000000)
	}

	assert.Equal(t, v1, v2)
}

func TestRand_DifferentSeedsDifferentRandomNumbers(t *testing.T) {
	r1 := NewRand(13)
	v1 := [10]int64{}
	for i := range v1 {
		v1[i] = r1.RInt(0, 1000000)
	}

	r2 := NewRand(14)
	v2 := [10]int64{}
	for i := range v2 {
		v2[i] = r2.RInt(0, 1000000)
	}

	assert.NotEqual(t, v1, v2)
}

func TestRand_CopyMakesIdenticalGenerators(t *testing.T) {
	r1 := NewRand(13)
	for range 10 {
		r1.RInt(0, 1000000)
	}

	r2 := r1
	for range 10 {
		assert.Equal(t, r1.RInt(0, 1000000), r2.RInt(0, 1000000))
		assert.Equal(t, r1.RFloat(), r2.RFloat())
	}
}

func TestRand_Ranges(t *testing.T) {
	r := NewRand(5)
	seen := map[int64]bool{}
	for range 1000 {
		v := r.RInt(-2, 2)
		assert.GreaterOrEqual(t, v, int64(-2))
		assert.LessOrEqual(t, v, int64(2))
		seen[v] = true

		f := r.RFloat()
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)
	}
	// Both ends are included.
	assert.Len(t, seen, 5)
	assert.Equal(t, int64(7), r.RInt(7, 7))
}
