package sim

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// PieceParams places a dropped piece at the start of a game.
type PieceParams struct {
	Rank int64
	Pos  Vec
}

// Level is the layout a Session starts with. The zero Level is an empty
// container.
type Level struct {
	PiecesParams []PieceParams
}

func (l *Level) Validate(c *Catalog) error {
	for i, p := range l.PiecesParams {
		if p.Rank < 0 || p.Rank >= int64(c.Len()) {
			return fmt.Errorf("%w: piece %d has rank %d, catalog has %d ranks",
				ErrInvalidConfig, i, p.Rank, c.Len())
		}
		if !p.Pos.IsFinite() {
			return fmt.Errorf("%w: piece %d is at %v", ErrInvalidConfig, i,
				p.Pos)
		}
	}
	return nil
}

// TestLevel is the YAML form of a Level, written by hand to set up a
// situation that is hard to reach by playing.
type TestLevel struct {
	Pieces []TestPiece `yaml:"Pieces"`
}

type TestPiece struct {
	Rank int64   `yaml:"Rank"`
	X    float64 `yaml:"X"`
	Y    float64 `yaml:"Y"`
	// Count stacks that many copies of the piece upwards, each one resting
	// on the previous one.
	Count int64 `yaml:"Count"`
}

// LoadLevelYAML decodes a TestLevel and converts it to a Level.
func LoadLevelYAML(data []byte, c *Catalog) (l Level, err error) {
	var t TestLevel
	if err = yaml.Unmarshal(data, &t); err != nil {
		return Level{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	for i, p := range t.Pieces {
		if p.Rank < 0 || p.Rank >= int64(c.Len()) {
			return Level{}, fmt.Errorf("%w: piece %d has rank %d",
				ErrInvalidConfig, i, p.Rank)
		}
		n := max(p.Count, 1)
		diameter := 2 * c.Ranks[p.Rank].Radius
		for k := range n {
			l.PiecesParams = append(l.PiecesParams, PieceParams{
				Rank: p.Rank,
				Pos:  Vec{p.X, p.Y - float64(k)*diameter},
			})
		}
	}
	if err = l.Validate(c); err != nil {
		return Level{}, err
	}
	return
}
