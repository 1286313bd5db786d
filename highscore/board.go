// Package highscore keeps the best scores of a player on their device.
package highscore

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// Size is how many scores a Board remembers.
const Size = 3

var ErrInvalidBoard = errors.New("invalid high-score board")

// Board is a ranked list of the best scores, highest first, at most Size
// long.
type Board struct {
	Scores []int64 `yaml:"Scores"`
}

// Add records a finished game. It returns the position the score got on the
// board, 0 being the best, or -1 if it didn't make it.
// A game that ended with 0 points is never recorded.
func (b *Board) Add(score int64) int {
	if score <= 0 {
		return -1
	}
	// Insert after the scores that are at least as good, so that an older
	// score wins a tie.
	pos := len(b.Scores)
	for i, s := range b.Scores {
		if score > s {
			pos = i
			break
		}
	}
	if pos >= Size {
		return -1
	}
	b.Scores = slices.Insert(b.Scores, pos, score)
	if len(b.Scores) > Size {
		b.Scores = b.Scores[:Size]
	}
	return pos
}

// Best returns the highest score, or 0 if no game was recorded.
func (b *Board) Best() int64 {
	if len(b.Scores) == 0 {
		return 0
	}
	return b.Scores[0]
}

// String returns the scores as a comma separated list, highest first.
func (b Board) String() string {
	parts := make([]string, len(b.Scores))
	for i, s := range b.Scores {
		parts[i] = strconv.FormatInt(s, 10)
	}
	return strings.Join(parts, ",")
}

// ParseBoard reads a list written by String. Lists written by hand or by
// older versions are accepted as long as they hold numbers: they are sorted
// and cut down to Size.
func ParseBoard(s string) (b Board, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return
	}
	for _, part := range strings.Split(s, ",") {
		v, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return Board{}, fmt.Errorf("%w: %w", ErrInvalidBoard, err)
		}
		b.Add(v)
	}
	return
}

// Merge adds the scores of other that are missing from b. A score both
// boards hold is the same game, so it is only kept once per copy that other
// has in excess of b. It returns whether b changed.
func (b *Board) Merge(other Board) bool {
	changed := false
	for _, s := range other.Scores {
		if countOf(other.Scores, s) <= countOf(b.Scores, s) {
			continue
		}
		if b.Add(s) >= 0 {
			changed = true
		}
	}
	return changed
}

func countOf(scores []int64, s int64) (n int) {
	for _, v := range scores {
		if v == s {
			n++
		}
	}
	return
}

func (b *Board) Marshal() ([]byte, error) {
	return yaml.Marshal(b)
}

func UnmarshalBoard(data []byte) (b Board, err error) {
	if err = yaml.Unmarshal(data, &b); err != nil {
		return Board{}, fmt.Errorf("%w: %w", ErrInvalidBoard, err)
	}
	// Don't trust what's on disk to be sorted.
	scores := b.Scores
	b.Scores = nil
	for _, s := range scores {
		b.Add(s)
	}
	return
}
