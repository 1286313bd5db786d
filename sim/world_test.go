package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDt = 1.0 / 30

func TestWorld_IdsIncreaseAndAreNotReused(t *testing.T) {
	w := NewWorld(Vec{0, 4})
	a := w.AddBody(NewCircle(Vec{}, 0.1, 0))
	b := w.AddBody(NewCircle(Vec{1, 0}, 0.1, 0))
	assert.Greater(t, a, NoBody)
	assert.Greater(t, b, a)

	assert.True(t, w.RemoveBody(b))
	assert.False(t, w.RemoveBody(b))
	assert.Nil(t, w.Body(b))
	c := w.AddBody(NewCircle(Vec{2, 0}, 0.1, 0))
	assert.Greater(t, c, b)
	assert.Equal(t, 2, w.Len())
	assert.NotNil(t, w.Body(a))
}

func TestWorld_GravityMonotonicity(t *testing.T) {
	g := 4.0
	w := NewWorld(Vec{0, g})
	b := NewCircle(Vec{}, 0.05, 0.2)
	w.AddBody(b)

	prevVel := b.Vel.Y
	prevPos := b.Pos.Y
	for range 60 {
		contacts := w.Step(testDt)
		assert.Empty(t, contacts)
		assert.InDelta(t, prevVel+g*testDt, b.Vel.Y, 1e-12)
		assert.Greater(t, b.Vel.Y, prevVel)
		assert.Greater(t, b.Pos.Y, prevPos)
		assert.Equal(t, 0.0, b.Pos.X)
		prevVel = b.Vel.Y
		prevPos = b.Pos.Y
	}
}

func TestWorld_RestingBodyStaysPut(t *testing.T) {
	w := NewWorld(Vec{0, 4})
	w.AddBody(NewPlane(Vec{0, 1}, Vec{0, -1}, 0.2))
	b := NewCircle(Vec{0.3, 1 - 0.1}, 0.1, 0.2)
	w.AddBody(b)

	for range 100 {
		w.Step(testDt)
	}
	assert.InDelta(t, 0.9, b.Pos.Y, 1e-12)
	assert.Equal(t, 0.3, b.Pos.X)
	assert.Equal(t, 0.0, b.Vel.Y)
}

func TestWorld_FallingBodyLandsOnFloor(t *testing.T) {
	w := NewWorld(Vec{0, 4})
	floor := NewPlane(Vec{0, 1}, Vec{0, -1}, 0.2)
	w.AddBody(floor)
	b := NewCircle(Vec{0, -1}, 0.1, 0.2)
	w.AddBody(b)

	for range 60 {
		w.Step(testDt)
		assert.LessOrEqual(t, b.Pos.Y, 0.9+1e-12)
	}
	assert.InDelta(t, 0.9, b.Pos.Y, 1e-12)
	assert.True(t, w.Touching(b.Id, floor.Id))
}

func TestWorld_WallContainment(t *testing.T) {
	cfg := DefaultConfig()
	c := NewContainer(cfg)
	w := NewWorld(Vec{0, cfg.Gravity})
	for i := range c.Walls {
		w.AddBody(&c.Walls[i])
	}

	r := NewRand(77)
	var bodies []*Body
	for range 25 {
		radius := 0.03 + r.RFloat()*0.1
		x := c.ClampX(r.RFloat()*2-1, radius)
		b := NewCircle(Vec{x, -0.5 + r.RFloat()}, radius, 0.2)
		b.Vel = Vec{r.RFloat()*4 - 2, r.RFloat()*4 - 2}
		w.AddBody(b)
		bodies = append(bodies, b)
	}

	for range 300 {
		w.Step(cfg.Dt())
		for _, b := range bodies {
			require.True(t, b.Pos.IsFinite())
			require.True(t, b.Vel.IsFinite())
			assert.GreaterOrEqual(t, b.Pos.X-b.Radius, c.Left()-1e-9)
			assert.LessOrEqual(t, b.Pos.X+b.Radius, c.Right()+1e-9)
			assert.LessOrEqual(t, b.Pos.Y+b.Radius, c.Floor()+1e-9)
		}
	}
}

func TestWorld_WallBounce(t *testing.T) {
	w := NewWorld(Vec{})
	wall := NewPlane(Vec{1, 0}, Vec{-1, 0}, 0.5)
	w.AddBody(wall)
	b := NewCircle(Vec{0.85, 0}, 0.1, 1)
	b.Vel = Vec{3, 1}
	w.AddBody(b)

	contacts := w.Step(testDt)
	require.Len(t, contacts, 1)
	assert.Equal(t, Contact{A: b.Id, B: wall.Id, Depth: contacts[0].Depth,
		Wall: true}, contacts[0])
	assert.Greater(t, contacts[0].Depth, 0.0)
	// The less bouncy of the two wins. No friction, so the tangential
	// velocity is left alone.
	assert.InDelta(t, -1.5, b.Vel.X, 1e-12)
	assert.InDelta(t, 1.0, b.Vel.Y, 1e-12)
	assert.InDelta(t, 0.9, b.Pos.X, 1e-12)
}

func TestWorld_PairImpulse(t *testing.T) {
	w := NewWorld(Vec{})
	a := NewCircle(Vec{0, 0}, 0.1, 0.5)
	a.Vel = Vec{1, 0}
	b := NewCircle(Vec{0.15, 0}, 0.1, 0.5)
	b.Vel = Vec{-1, 0}
	w.AddBody(a)
	w.AddBody(b)

	contacts := w.Step(0.001)
	require.Len(t, contacts, 1)
	assert.Equal(t, a.Id, contacts[0].A)
	assert.Equal(t, b.Id, contacts[0].B)
	assert.False(t, contacts[0].Wall)

	// Equal masses, so each body gets half of the new relative velocity,
	// which is -e times the old one.
	assert.InDelta(t, -0.5, a.Vel.X, 1e-12)
	assert.InDelta(t, 0.5, b.Vel.X, 1e-12)
	// The overlap is gone and the midpoint didn't move.
	assert.InDelta(t, 0.2, a.Pos.DistTo(b.Pos), 1e-12)
	assert.InDelta(t, 0.075, a.Pos.Midpoint(b.Pos).X, 1e-12)
}

func TestWorld_HeavierBodyMovesLess(t *testing.T) {
	w := NewWorld(Vec{})
	small := NewCircle(Vec{0, 0}, 0.05, 0)
	small.Vel = Vec{1, 0}
	big := NewCircle(Vec{0.2, 0}, 0.2, 0)
	w.AddBody(small)
	w.AddBody(big)

	w.Step(testDt)
	// Perfectly inelastic: both end up with the same normal velocity,
	// weighted by area.
	expected := 0.05 * 0.05 / (0.05*0.05 + 0.2*0.2)
	assert.InDelta(t, expected, small.Vel.X, 1e-9)
	assert.InDelta(t, expected, big.Vel.X, 1e-9)
}

func TestWorld_CoincidentCenters(t *testing.T) {
	w := NewWorld(Vec{})
	a := NewCircle(Vec{0.5, 0.5}, 0.1, 0.2)
	b := NewCircle(Vec{0.5, 0.5}, 0.1, 0.2)
	w.AddBody(a)
	w.AddBody(b)

	contacts := w.Step(testDt)
	require.Len(t, contacts, 1)
	assert.True(t, a.Pos.IsFinite())
	assert.True(t, b.Pos.IsFinite())
	assert.InDelta(t, 0.4, a.Pos.X, 1e-12)
	assert.InDelta(t, 0.6, b.Pos.X, 1e-12)
	assert.Equal(t, 0.5, a.Pos.Y)
	assert.False(t, math.IsNaN(a.Vel.X))
}

func TestWorld_StepIsDeterministic(t *testing.T) {
	run := func() []Vec {
		cfg := DefaultConfig()
		c := NewContainer(cfg)
		w := NewWorld(Vec{0, cfg.Gravity})
		for i := range c.Walls {
			w.AddBody(&c.Walls[i])
		}
		r := NewRand(9)
		var bodies []*Body
		for range 20 {
			b := NewCircle(Vec{r.RFloat() - 0.5, r.RFloat() - 0.5},
				0.05+r.RFloat()*0.05, 0.3)
			w.AddBody(b)
			bodies = append(bodies, b)
		}
		for range 200 {
			w.Step(cfg.Dt())
		}
		var pos []Vec
		for _, b := range bodies {
			pos = append(pos, b.Pos)
		}
		return pos
	}
	assert.Equal(t, run(), run())
}

func TestWorld_TouchingPairsAfterStep(t *testing.T) {
	w := NewWorld(Vec{})
	a := w.AddBody(NewCircle(Vec{0, 0}, 0.1, 0))
	b := w.AddBody(NewCircle(Vec{0.21, 0}, 0.1, 0))
	c := w.AddBody(NewCircle(Vec{0.33, 0}, 0.1, 0))

	// Only b and c overlap when the pairs are resolved, but pushing b away
	// from c pushes it into a.
	contacts := w.Step(testDt)
	require.Len(t, contacts, 1)
	assert.Equal(t, b, contacts[0].A)
	assert.Equal(t, c, contacts[0].B)

	pairs := w.TouchingPairs()
	require.Len(t, pairs, 2)
	assert.Equal(t, a, pairs[0].A)
	assert.Equal(t, b, pairs[0].B)
	assert.InDelta(t, 0.03, pairs[0].Depth, 1e-9)
	assert.True(t, Overlapping(w.Body(a), w.Body(b)))
	assert.Equal(t, b, pairs[1].A)
	assert.Equal(t, c, pairs[1].B)
	assert.InDelta(t, 0.0, pairs[1].Depth, 1e-9)
	for _, p := range pairs {
		assert.False(t, p.Wall)
	}
}
