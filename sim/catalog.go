package sim

import (
	"errors"
	"fmt"
	"math"

	"github.com/goccy/go-yaml"
)

// NoRank marks the end of the merge chain.
const NoRank = -1

var ErrInvalidCatalog = errors.New("invalid catalog")

// Rank is one step of the merge progression.
type Rank struct {
	Name   string  `yaml:"Name"`
	Radius float64 `yaml:"Radius"`
	Score  int64   `yaml:"Score"`
	Next   int     `yaml:"Next"`
}

// Catalog is the ordered table of ranks. Rank 0 is the smallest piece. The
// last rank is the max piece, merging two of them clears the board.
// SpawnWeights holds the relative odds of each of the first ranks being
// picked for a new piece; ranks past the end of SpawnWeights never spawn.
type Catalog struct {
	Ranks        []Rank  `yaml:"Ranks"`
	SpawnWeights []int64 `yaml:"SpawnWeights"`
}

var defaultCatalog = Catalog{
	Ranks: []Rank{
		{Name: "cherry", Radius: 0.045, Score: 1, Next: 1},
		{Name: "strawberry", Radius: 0.057, Score: 3, Next: 2},
		{Name: "grape", Radius: 0.080, Score: 6, Next: 3},
		{Name: "satsuma", Radius: 0.097, Score: 10, Next: 4},
		{Name: "persimmon", Radius: 0.114, Score: 15, Next: 5},
		{Name: "apple", Radius: 0.149, Score: 21, Next: 6},
		{Name: "pear", Radius: 0.171, Score: 28, Next: 7},
		{Name: "peach", Radius: 0.206, Score: 36, Next: 8},
		{Name: "pineapple", Radius: 0.246, Score: 45, Next: 9},
		{Name: "melon", Radius: 0.286, Score: 55, Next: 10},
		{Name: "watermelon", Radius: 0.343, Score: 66, Next: NoRank},
	},
	SpawnWeights: []int64{5, 4, 3, 2, 1},
}

// DefaultCatalog returns the process-wide piece table. The returned value is
// shared and must not be modified.
func DefaultCatalog() *Catalog {
	return &defaultCatalog
}

// LoadCatalogYAML decodes and validates a catalog.
func LoadCatalogYAML(data []byte) (c Catalog, err error) {
	if err = yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}
	if err = c.Validate(); err != nil {
		return Catalog{}, err
	}
	return
}

func (c *Catalog) Validate() error {
	if len(c.Ranks) == 0 {
		return fmt.Errorf("%w: no ranks", ErrInvalidCatalog)
	}
	for i, r := range c.Ranks {
		if !(r.Radius > 0) || math.IsInf(r.Radius, 0) {
			return fmt.Errorf("%w: rank %d has radius %v", ErrInvalidCatalog,
				i, r.Radius)
		}
		if r.Score < 0 {
			return fmt.Errorf("%w: rank %d has negative score %d",
				ErrInvalidCatalog, i, r.Score)
		}
		expectedNext := i + 1
		if i == len(c.Ranks)-1 {
			expectedNext = NoRank
		}
		if r.Next != expectedNext {
			return fmt.Errorf("%w: rank %d merges into %d, expected %d",
				ErrInvalidCatalog, i, r.Next, expectedNext)
		}
	}
	if len(c.SpawnWeights) > len(c.Ranks) {
		return fmt.Errorf("%w: %d spawn weights for %d ranks",
			ErrInvalidCatalog, len(c.SpawnWeights), len(c.Ranks))
	}
	total := int64(0)
	for i, wt := range c.SpawnWeights {
		if wt < 0 {
			return fmt.Errorf("%w: spawn weight %d is negative",
				ErrInvalidCatalog, i)
		}
		total += wt
	}
	if total == 0 {
		return fmt.Errorf("%w: no rank can spawn", ErrInvalidCatalog)
	}
	return nil
}

func (c *Catalog) Len() int {
	return len(c.Ranks)
}

// MaxRank is the index of the max piece.
func (c *Catalog) MaxRank() int {
	return len(c.Ranks) - 1
}

// MaxRadius is the radius of the largest rank.
func (c *Catalog) MaxRadius() (r float64) {
	for _, rank := range c.Ranks {
		r = max(r, rank.Radius)
	}
	return
}

// NextRank returns the rank two pieces of rank r merge into, or NoRank.
func (c *Catalog) NextRank(r int) int {
	if r < 0 || r >= len(c.Ranks) {
		return NoRank
	}
	return c.Ranks[r].Next
}

// Sample picks the rank of a newly spawned piece.
func (c *Catalog) Sample(r *Rand) int {
	total := int64(0)
	for _, wt := range c.SpawnWeights {
		total += wt
	}
	pick := r.RInt(0, total-1)
	for i, wt := range c.SpawnWeights {
		if pick < wt {
			return i
		}
		pick -= wt
	}
	Assert(false)
	return 0
}
