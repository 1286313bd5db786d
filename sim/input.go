package sim

import "math"

// Direction of a Nudge.
type Direction int64

const (
	Left  Direction = -1
	Right Direction = 1
)

// PlayerInput is everything the player did during one tick, already reduced
// to the commands a Session understands. A zero PlayerInput means the player
// did nothing.
type PlayerInput struct {
	// Nudge moves the pending piece by |Nudge| steps, left if negative.
	Nudge       int64
	SetPosition bool
	// PositionX is in [-1, 1], from the left wall to the right wall. Only
	// used if SetPosition is true.
	PositionX float64
	Drop      bool
	Reset     bool
}

func (p PlayerInput) EventOccurred() bool {
	return p.Nudge != 0 || p.SetPosition || p.Drop || p.Reset
}

// aiming reports whether the player controls the pending piece.
func (s *Session) aiming() bool {
	return !s.ended && !s.pending.Dropped
}

// Nudge moves the pending piece one step to the left or to the right.
func (s *Session) Nudge(dir Direction) {
	if !s.aiming() || dir == 0 {
		return
	}
	b := s.pending.Body
	step := s.cfg.NudgeStep
	if dir < 0 {
		step = -step
	}
	b.Pos.X = s.container.ClampX(b.Pos.X+step, b.Radius)
}

// SetPosition moves the pending piece to x, where -1 is the left wall and 1
// is the right wall. The piece is kept fully inside the container.
func (s *Session) SetPosition(x float64) {
	if !s.aiming() || math.IsNaN(x) {
		return
	}
	x = Clamp(x, -1, 1)
	b := s.pending.Body
	b.Pos.X = s.container.ClampX(s.container.Pos.X+x*s.container.Width,
		b.Radius)
}

// Drop releases the pending piece into the container.
func (s *Session) Drop() {
	if !s.aiming() {
		return
	}
	p := s.pending
	p.Dropped = true
	p.Body.Vel = Vec{}
	s.addDropped(p)
	s.queued = append(s.queued, Event{
		Kind: PieceDropped,
		Rank: p.Rank,
		Pos:  p.Body.Pos,
	})
}

// Step applies one tick of player input and then advances the simulation.
// A Reset starts a new game and skips the tick.
func (s *Session) Step(input PlayerInput) {
	if input.Reset {
		s.Reset()
		return
	}
	dir := Right
	if input.Nudge < 0 {
		dir = Left
	}
	for range abs(input.Nudge) {
		s.Nudge(dir)
	}
	if input.SetPosition {
		s.SetPosition(input.PositionX)
	}
	if input.Drop {
		s.Drop()
	}
	s.Advance()
}

func abs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
