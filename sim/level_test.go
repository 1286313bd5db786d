package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLevelYAML(t *testing.T) {
	data := []byte(`
Pieces:
  - Rank: 0
    X: -0.2
    Y: 0.7
  - Rank: 2
    X: 0.3
    Y: 0.69
    Count: 3
`)
	c := DefaultCatalog()
	l, err := LoadLevelYAML(data, c)
	require.NoError(t, err)
	require.Len(t, l.PiecesParams, 4)
	assert.Equal(t, PieceParams{Rank: 0, Pos: Vec{-0.2, 0.7}}, l.PiecesParams[0])

	// Copies are stacked upwards, one diameter apart.
	d := 2 * c.Ranks[2].Radius
	for k := 0; k < 3; k++ {
		p := l.PiecesParams[1+k]
		assert.Equal(t, int64(2), p.Rank)
		assert.Equal(t, 0.3, p.Pos.X)
		assert.InDelta(t, 0.69-float64(k)*d, p.Pos.Y, 1e-12)
	}
}

func TestLoadLevelYAML_Invalid(t *testing.T) {
	c := DefaultCatalog()
	_, err := LoadLevelYAML([]byte("Pieces:\n  - Rank: 11\n"), c)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	_, err = LoadLevelYAML([]byte("Pieces:\n  - Rank: -1\n"), c)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	_, err = LoadLevelYAML([]byte("Pieces: {"), c)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	l, err := LoadLevelYAML([]byte(""), c)
	require.NoError(t, err)
	assert.Empty(t, l.PiecesParams)
}
