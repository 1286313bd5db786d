package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec_Normalized(t *testing.T) {
	assert.Equal(t, Vec{}, Vec{}.Normalized())
	assert.InDelta(t, 1.0, Vec{3, 4}.Normalized().Len(), 1e-12)
	assert.Equal(t, Vec{0.6, 0.8}, Vec{3, 4}.Normalized())
}

func TestVec_Midpoint(t *testing.T) {
	assert.Equal(t, Vec{0, 1}, Vec{-2, 0}.Midpoint(Vec{2, 2}))
}

func TestVec_IsFinite(t *testing.T) {
	assert.True(t, Vec{1, -1}.IsFinite())
	assert.False(t, Vec{math.NaN(), 0}.IsFinite())
	assert.False(t, Vec{0, math.Inf(1)}.IsFinite())
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1.0, Clamp(5, -1, 1))
	assert.Equal(t, -1.0, Clamp(-5, -1, 1))
	assert.Equal(t, 0.5, Clamp(0.5, -1, 1))
	// Nothing fits, use the middle.
	assert.Equal(t, 0.5, Clamp(7, 1, 0))

	r := NewRand(3)
	for range 100 {
		x := r.RFloat()*10 - 5
		once := Clamp(x, -1, 1)
		assert.Equal(t, once, Clamp(once, -1, 1))
	}
}
