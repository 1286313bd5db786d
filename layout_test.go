package main

import (
	"image"
	"math"
	"testing"

	"github.com/marisvali/suika1/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Pieces must be drawn where the pointer has to be to aim at them.
func TestWorldToPixel_MatchesPointer(t *testing.T) {
	var g Gui
	var err error
	g.session, err = sim.NewSession(sim.DefaultConfig())
	require.NoError(t, err)
	g.gameAreaOrigin = Pt{30, 40}

	// The image the play area is drawn on, cut out of the game area, cut out
	// of the screen.
	play := playArea.Plus(g.gameAreaOrigin)
	origin := image.Pt(int(play.Min.X), int(play.Min.Y))
	tolerance := 2 / g.pixelsPerUnit()

	for _, x := range []float64{-0.6, -0.3, 0, 0.45, 0.6} {
		px, _ := g.WorldToPixel(origin, sim.Vec{X: x})
		back := g.ScreenToWorldX(int64(math.Round(float64(px))))
		assert.InDelta(t, x, back, tolerance, "x = %v", x)
	}

	left, _ := g.WorldToPixel(origin, sim.Vec{X: -0.6})
	assert.InDelta(t, -1, g.ScreenToNormalizedX(int64(math.Round(float64(left)))),
		tolerance/0.6)

	// A piece on the floor is drawn inside the play area, not above it.
	_, y := g.WorldToPixel(origin, sim.Vec{Y: g.session.Config().PosY})
	assert.Greater(t, int64(y), play.Min.Y)
	assert.Less(t, int64(y), play.Max.Y)
}
