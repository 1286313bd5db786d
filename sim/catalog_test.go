package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Default(t *testing.T) {
	c := DefaultCatalog()
	require.NoError(t, c.Validate())
	assert.Equal(t, 11, c.Len())
	assert.Equal(t, 10, c.MaxRank())
	assert.Equal(t, 0.343, c.MaxRadius())
	assert.Equal(t, 1, c.NextRank(0))
	assert.Equal(t, NoRank, c.NextRank(c.MaxRank()))
	assert.Equal(t, NoRank, c.NextRank(-1))
	assert.Equal(t, NoRank, c.NextRank(11))

	// Bigger pieces are worth more.
	for i := 1; i < c.Len(); i++ {
		assert.Greater(t, c.Ranks[i].Radius, c.Ranks[i-1].Radius)
		assert.Greater(t, c.Ranks[i].Score, c.Ranks[i-1].Score)
	}
}

func TestCatalog_Sample(t *testing.T) {
	c := DefaultCatalog()
	r := NewRand(21)
	counts := make([]int, c.Len())
	for range 3000 {
		counts[c.Sample(&r)]++
	}
	for i := range c.SpawnWeights {
		assert.Greater(t, counts[i], 0)
	}
	for i := len(c.SpawnWeights); i < c.Len(); i++ {
		assert.Equal(t, 0, counts[i])
	}
	assert.Greater(t, counts[0], counts[len(c.SpawnWeights)-1])
}

func TestCatalog_SampleOnlyWeightedRanks(t *testing.T) {
	c := Catalog{
		Ranks: []Rank{
			{Name: "a", Radius: 0.05, Score: 1, Next: 1},
			{Name: "b", Radius: 0.1, Score: 2, Next: NoRank},
		},
		SpawnWeights: []int64{0, 1},
	}
	require.NoError(t, c.Validate())
	r := NewRand(1)
	for range 100 {
		assert.Equal(t, 1, c.Sample(&r))
	}
}

func TestLoadCatalogYAML(t *testing.T) {
	data := []byte(`
Ranks:
  - Name: small
    Radius: 0.05
    Score: 1
    Next: 1
  - Name: big
    Radius: 0.2
    Score: 5
    Next: -1
SpawnWeights: [1]
`)
	c, err := LoadCatalogYAML(data)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, "big", c.Ranks[1].Name)
	assert.Equal(t, 0.2, c.MaxRadius())
	assert.Equal(t, []int64{1}, c.SpawnWeights)
}

func TestCatalog_Validate(t *testing.T) {
	valid := func() Catalog {
		return Catalog{
			Ranks: []Rank{
				{Name: "a", Radius: 0.05, Score: 1, Next: 1},
				{Name: "b", Radius: 0.1, Score: 2, Next: NoRank},
			},
			SpawnWeights: []int64{1},
		}
	}
	c := valid()
	require.NoError(t, c.Validate())

	broken := []func(c *Catalog){
		func(c *Catalog) { c.Ranks = nil },
		func(c *Catalog) { c.Ranks[0].Radius = 0 },
		func(c *Catalog) { c.Ranks[1].Radius = -1 },
		func(c *Catalog) { c.Ranks[0].Score = -1 },
		func(c *Catalog) { c.Ranks[0].Next = 0 },
		func(c *Catalog) { c.Ranks[1].Next = 0 },
		func(c *Catalog) { c.SpawnWeights = []int64{1, 1, 1} },
		func(c *Catalog) { c.SpawnWeights = []int64{-1, 2} },
		func(c *Catalog) { c.SpawnWeights = []int64{0} },
		func(c *Catalog) { c.SpawnWeights = nil },
	}
	for i, breakIt := range broken {
		c := valid()
		breakIt(&c)
		assert.ErrorIs(t, c.Validate(), ErrInvalidCatalog, "case %d", i)
	}

	_, err := LoadCatalogYAML([]byte("Ranks: ["))
	assert.ErrorIs(t, err, ErrInvalidCatalog)
	_, err = LoadCatalogYAML([]byte("Ranks: []"))
	assert.ErrorIs(t, err, ErrInvalidCatalog)
}
