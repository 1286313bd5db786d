package sim

// Merge rules
// - Two dropped pieces of the same rank that touch once the World's Step is
// over merge into one piece of the next rank, at rest. It's placed at their
// midpoint, moved just enough to be inside the walls and on or above the
// floor.
// - Pairs are handled by (lower id, higher id). A piece that already merged
// this tick is gone from the dropped list, so it can't merge a second time;
// the first pair wins.
// - A merged piece is new to the World and wasn't part of this tick's
// pairs. If it touches another piece of its rank, they merge on the next
// tick, not this one.
// - Two max pieces don't produce anything, they clear the whole board.
// - The score goes up once per tick, by the score of the largest rank that
// merged during the tick. Several merges in the same tick are not summed.

// mergePieces takes the touching pairs of dynamic bodies, as returned by
// World.TouchingPairs.
func (s *Session) mergePieces(pairs []Contact) {
	largest := NoRank
	for _, c := range pairs {
		if c.Wall {
			continue
		}
		a := s.droppedPiece(c.A)
		b := s.droppedPiece(c.B)
		if a == nil || b == nil || a.Rank != b.Rank {
			continue
		}
		// A pending piece that touches another piece has landed, so
		// checkLanded already took the pending role away from it.
		Assert(a != s.pending && b != s.pending)

		largest = max(largest, a.Rank)
		pos := a.Body.Pos.Midpoint(b.Body.Pos)
		next := s.catalog.NextRank(a.Rank)
		if next == NoRank {
			s.clearBoard()
			s.events = append(s.events, Event{
				Kind: BoardCleared,
				Rank: a.Rank,
				Pos:  pos,
			})
			continue
		}

		s.removeDropped(a)
		s.removeDropped(b)
		pos = s.placeMerged(pos, s.catalog.Ranks[next].Radius)
		merged := s.newPiece(next, pos)
		merged.Dropped = true
		s.addDropped(merged)
		s.events = append(s.events, Event{
			Kind: PiecesMerged,
			Rank: next,
			Pos:  pos,
		})
	}

	if largest != NoRank {
		s.score += s.catalog.Ranks[largest].Score
	}
}

// clearBoard removes every dropped piece. If the pending piece was still
// falling it goes away as well, and the next piece takes its place.
func (s *Session) clearBoard() {
	for _, p := range s.dropped {
		s.world.RemoveBody(p.Id())
	}
	s.dropped = nil
	if s.falling() {
		s.promoteNext(s.pending.Body.Pos.X)
	}
}

// placeMerged moves the center of a new piece of radius r so that the piece
// doesn't stick into the walls or the floor.
func (s *Session) placeMerged(pos Vec, r float64) Vec {
	pos.X = s.container.ClampX(pos.X, r)
	pos.Y = min(pos.Y, s.container.Floor()-r)
	return pos
}
