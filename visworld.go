package main

import "github.com/marisvali/suika1/sim"

type SplashKind int64

const (
	// SplashRadial is a ring growing out of the center of a merged piece.
	SplashRadial SplashKind = iota
	// SplashDown is a flat puff under a piece that just landed.
	SplashDown
	// SplashClear is the ring left behind when the board is cleared.
	SplashClear
)

// TemporaryAnimation is an effect that appears in one place, runs for a
// while and then goes away. It doesn't represent anything in the World.
type TemporaryAnimation struct {
	Kind      SplashKind
	Pos       sim.Vec
	Radius    float64
	Rank      int
	Animation Animation
}

// VisWorld is a world parallel to the Session that holds "visual logic": the
// state of ongoing visual effects. Draw() relies on it just like it relies on
// the snapshot of the Session. It is updated alongside the Session, in
// Update(), from the events of the last tick.
type VisWorld struct {
	catalog   *sim.Catalog
	fps       int64
	Temporary []*TemporaryAnimation
}

// NewVisWorld prepares the effects for the pieces and the tick rate of s.
func NewVisWorld(s *sim.Session) (v VisWorld) {
	v.catalog = s.Catalog()
	v.fps = s.Config().TickRate
	return v
}

func (v *VisWorld) Step(events []sim.Event) {
	// Step existing animations.
	for _, a := range v.Temporary {
		a.Animation.Step()
	}

	// Filter out obsolete animations.
	n := 0
	for i := range v.Temporary {
		if !v.Temporary[i].Animation.Done() {
			v.Temporary[n] = v.Temporary[i]
			n++
		}
	}
	v.Temporary = v.Temporary[:n]

	// Create new animations if necessary.
	for _, e := range events {
		if e.Rank < 0 || e.Rank >= v.catalog.Len() {
			continue
		}
		switch e.Kind {
		case sim.PiecesMerged:
			v.Temporary = append(v.Temporary, &TemporaryAnimation{
				Kind:      SplashRadial,
				Pos:       e.Pos,
				Radius:    v.catalog.Ranks[e.Rank].Radius,
				Rank:      e.Rank,
				Animation: NewAnimation(0.4, v.fps),
			})
		case sim.PieceLanded:
			r := v.catalog.Ranks[e.Rank].Radius
			// The puff is centered under the piece, where it touched.
			pos := e.Pos
			pos.Y += r
			v.Temporary = append(v.Temporary, &TemporaryAnimation{
				Kind:      SplashDown,
				Pos:       pos,
				Radius:    r,
				Rank:      e.Rank,
				Animation: NewAnimation(0.25, v.fps),
			})
		case sim.BoardCleared:
			v.Temporary = append(v.Temporary, &TemporaryAnimation{
				Kind:      SplashClear,
				Pos:       e.Pos,
				Radius:    v.catalog.Ranks[e.Rank].Radius,
				Rank:      e.Rank,
				Animation: NewAnimation(1, v.fps),
			})
		}
	}
}
