package sim

import (
	"cmp"
	"fmt"
	"slices"
)

// Session is one playthrough of the game, from an empty (or pre-filled)
// container until the pieces overflow it.
//
// A Session is not safe for concurrent use. The host must serialize all
// calls: input commands between ticks, then Advance, on a single goroutine.
type Session struct {
	cfg       Config
	catalog   *Catalog
	level     Level
	rand      Rand
	world     *World
	container Container
	ticks     int64
	pending   *Piece
	next      *Piece
	// Dropped pieces, sorted by id. This is also the order in which the
	// World visits their bodies.
	dropped []*Piece
	score   int64
	ended   bool
	// Events of the last Advance, and events caused by commands issued
	// since then, which will be reported by the next Advance.
	events []Event
	queued []Event
}

// NewSession starts a game in an empty container, using the default
// catalog.
func NewSession(cfg Config) (*Session, error) {
	return NewSessionWithCatalog(cfg, DefaultCatalog(), Level{})
}

// NewSessionWithCatalog starts a game with a custom piece table and the
// pieces of level already in the container.
func NewSessionWithCatalog(cfg Config, catalog *Catalog, level Level) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if catalog == nil {
		return nil, fmt.Errorf("%w: missing", ErrInvalidCatalog)
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	if catalog.MaxRadius() > cfg.Width {
		return nil, fmt.Errorf("%w: the largest piece (radius %v) does not "+
			"fit in a container of half width %v", ErrInvalidConfig,
			catalog.MaxRadius(), cfg.Width)
	}
	if err := level.Validate(catalog); err != nil {
		return nil, err
	}

	s := &Session{
		cfg:     cfg,
		catalog: catalog,
		level:   level,
		rand:    NewRand(cfg.Seed),
	}
	s.init()
	return s, nil
}

func (s *Session) init() {
	s.container = NewContainer(s.cfg)
	s.world = NewWorld(Vec{0, s.cfg.Gravity})
	for i := range s.container.Walls {
		s.world.AddBody(&s.container.Walls[i])
	}
	s.ticks = 0
	s.score = 0
	s.ended = false
	s.dropped = nil
	s.events = nil
	s.queued = nil

	for _, p := range s.level.PiecesParams {
		piece := s.newPiece(int(p.Rank), p.Pos)
		piece.Dropped = true
		s.addDropped(piece)
	}

	s.pending = s.spawn(s.container.Pos.X)
	s.next = s.spawn(s.container.Pos.X)
}

// Reset throws away the current game: pieces, score, ticks, events and the
// end of the game. Two things carry over. The level is placed again, and the
// random generator is not reseeded, so the new game gets different pieces
// than the one before. A replay stays exact because the Reset itself is
// part of the recorded input.
func (s *Session) Reset() {
	s.init()
}

func (s *Session) Config() Config {
	return s.cfg
}

func (s *Session) Catalog() *Catalog {
	return s.catalog
}

func (s *Session) Ticks() int64 {
	return s.ticks
}

func (s *Session) Score() int64 {
	return s.score
}

func (s *Session) Ended() bool {
	return s.ended
}

func (s *Session) newPiece(rank int, pos Vec) *Piece {
	return &Piece{
		Rank: rank,
		Body: NewCircle(pos, s.catalog.Ranks[rank].Radius,
			s.cfg.PieceRestitution),
	}
}

// spawn creates a random new piece, waiting to be dropped at x.
func (s *Session) spawn(x float64) *Piece {
	rank := s.catalog.Sample(&s.rand)
	p := s.newPiece(rank, Vec{0, s.cfg.PendingY})
	p.Body.Pos.X = s.container.ClampX(x, p.Body.Radius)
	return p
}

func (s *Session) addDropped(p *Piece) {
	s.world.AddBody(p.Body)
	s.dropped = append(s.dropped, p)
	Assert(slices.IsSortedFunc(s.dropped, comparePieces))
}

func (s *Session) removeDropped(p *Piece) {
	i, found := slices.BinarySearchFunc(s.dropped, p.Id(), comparePieceId)
	Assert(found)
	if !found {
		return
	}
	s.dropped = slices.Delete(s.dropped, i, i+1)
	s.world.RemoveBody(p.Id())
}

// droppedPiece returns the dropped piece with the given id, or nil.
func (s *Session) droppedPiece(id BodyId) *Piece {
	i, found := slices.BinarySearchFunc(s.dropped, id, comparePieceId)
	if !found {
		return nil
	}
	return s.dropped[i]
}

func comparePieces(a *Piece, b *Piece) int {
	return cmp.Compare(a.Id(), b.Id())
}

func comparePieceId(p *Piece, id BodyId) int {
	return cmp.Compare(p.Id(), id)
}

// falling reports whether the pending piece was dropped and hasn't landed
// yet.
func (s *Session) falling() bool {
	return s.pending.Dropped
}

// Advance runs one tick: physics, landing, merges, end of game. It does
// nothing once the game has ended.
func (s *Session) Advance() {
	s.events = append(s.events[:0], s.queued...)
	s.queued = s.queued[:0]
	if s.ended {
		return
	}

	s.ticks++
	contacts := s.world.Step(s.cfg.Dt())
	s.checkLanded(contacts)
	s.mergePieces(s.world.TouchingPairs())
	s.checkEnded()
}

// checkLanded hands the pending role over to the next piece once the
// falling piece touches the floor or another piece.
func (s *Session) checkLanded(contacts []Contact) {
	if !s.falling() {
		return
	}
	p := s.pending
	floor := s.container.Walls[FloorWall].Id

	landed := false
	for _, c := range contacts {
		if c.A != p.Id() && c.B != p.Id() {
			continue
		}
		if !c.Wall || c.B == floor {
			landed = true
			break
		}
	}
	if !landed {
		landed = s.world.Touching(p.Id(), floor)
	}
	for i := 0; !landed && i < len(s.dropped); i++ {
		if s.dropped[i] != p {
			landed = s.world.Touching(p.Id(), s.dropped[i].Id())
		}
	}
	if !landed {
		return
	}

	s.events = append(s.events, Event{
		Kind: PieceLanded,
		Rank: p.Rank,
		Pos:  p.Body.Pos,
	})
	s.promoteNext(p.Body.Pos.X)
}

// promoteNext makes the preview piece the new pending piece, at x, and
// spawns a new preview.
func (s *Session) promoteNext(x float64) {
	s.pending = s.next
	s.pending.Body.Pos.X = s.container.ClampX(x, s.pending.Body.Radius)
	s.next = s.spawn(s.container.Pos.X)
}

// checkEnded ends the game if a piece sticks out above the rim. The piece
// that is still falling is skipped because it always starts above the rim.
// Nothing ends while the score is 0: before the first merge, pieces are
// still settling and may be briefly caught above the rim.
func (s *Session) checkEnded() {
	if s.score == 0 {
		return
	}
	limit := s.container.Top() - s.cfg.OverflowMargin
	for _, p := range s.dropped {
		if p == s.pending {
			continue
		}
		if p.Body.Pos.Y-p.Body.Radius < limit {
			s.ended = true
			s.events = append(s.events, Event{Kind: GameOver, Score: s.score})
			return
		}
	}
}
