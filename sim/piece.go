package sim

// Piece is a fruit-like game object: a rank from the Catalog and the body
// that represents it physically. A piece that is not Dropped is the one the
// player is aiming with, or the preview of the next one; its body is not in
// the World.
type Piece struct {
	Rank    int
	Body    *Body
	Dropped bool
}

// Id is the id of the piece's body, NoBody until the piece is dropped.
func (p *Piece) Id() BodyId {
	return p.Body.Id
}

// PieceState is a read-only copy of a piece.
type PieceState struct {
	Id      BodyId
	Rank    int
	Pos     Vec
	Vel     Vec
	Radius  float64
	Dropped bool
}

func (p *Piece) State() PieceState {
	return PieceState{
		Id:      p.Body.Id,
		Rank:    p.Rank,
		Pos:     p.Body.Pos,
		Vel:     p.Body.Vel,
		Radius:  p.Body.Radius,
		Dropped: p.Dropped,
	}
}

type EventKind int64

const (
	PieceDropped EventKind = iota
	PieceLanded
	PiecesMerged
	BoardCleared
	GameOver
)

func (k EventKind) String() string {
	switch k {
	case PieceDropped:
		return "dropped"
	case PieceLanded:
		return "landed"
	case PiecesMerged:
		return "merged"
	case BoardCleared:
		return "board-cleared"
	case GameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Event is something that happened during a tick that a GUI may want to
// react to.
// - PieceDropped, PieceLanded: Rank and Pos of the piece.
// - PiecesMerged: Rank of the new piece and the Pos it was created at.
// - BoardCleared: Rank of the two max pieces that merged, Pos of their
// midpoint.
// - GameOver: the final Score.
type Event struct {
	Kind  EventKind
	Rank  int
	Pos   Vec
	Score int64
}
