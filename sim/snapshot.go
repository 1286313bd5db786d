package sim

import "slices"

// Snapshot is a copy of everything a GUI needs to draw a Session, or a host
// needs to persist its outcome. It shares no memory with the Session.
type Snapshot struct {
	Ticks     int64
	Container Container
	Pending   PieceState
	Next      PieceState
	Dropped   []PieceState
	Score     int64
	Ended     bool
	// Events that happened during the last Advance.
	Events []Event
}

func (s *Session) Snapshot() (snap Snapshot) {
	snap.Ticks = s.ticks
	snap.Container = s.container
	snap.Pending = s.pending.State()
	snap.Next = s.next.State()
	snap.Dropped = make([]PieceState, len(s.dropped))
	for i, p := range s.dropped {
		snap.Dropped[i] = p.State()
	}
	snap.Score = s.score
	snap.Ended = s.ended
	snap.Events = slices.Clone(s.events)
	return
}

// GameOverEvent returns the GameOver event of the last tick, if there was
// one.
func (snap *Snapshot) GameOverEvent() (Event, bool) {
	for _, e := range snap.Events {
		if e.Kind == GameOver {
			return e, true
		}
	}
	return Event{}, false
}
