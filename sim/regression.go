package sim

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
)

// StateBytes is an array of bytes that represents the current state of the
// Session, as perceived from the outside. Two Sessions with the same
// StateBytes are considered the same, even if they are implemented
// differently.
//
// The state is what a GUI would draw plus what decides the future of the
// game: the pieces with their positions and velocities, the score, whether
// the game ended and the random generator. Ids are not included: renumbering
// bodies is not a change in behavior as long as the order of the pieces
// stays the same.
//
// This only works as a regression check if the playthrough is long enough
// and involves enough merges that a change in behavior quickly throws the
// simulation somewhere else.
func (s *Session) StateBytes() []byte {
	buf := new(bytes.Buffer)
	Serialize(buf, s.ticks)
	Serialize(buf, s.score)
	Serialize(buf, s.ended)
	serializePiece(buf, s.pending)
	serializePiece(buf, s.next)
	Serialize(buf, int64(len(s.dropped)))
	for _, p := range s.dropped {
		serializePiece(buf, p)
	}
	// The generator decides every future piece. Sampling from a copy doesn't
	// touch the real one.
	r := s.rand
	Serialize(buf, r.pcg.Uint64())
	return buf.Bytes()
}

func serializePiece(buf *bytes.Buffer, p *Piece) {
	Serialize(buf, int64(p.Rank))
	Serialize(buf, p.Body.Pos)
	Serialize(buf, p.Body.Vel)
	Serialize(buf, p.Dropped)
}

// RegressionId returns a string which uniquely identifies the playthrough:
// a hash of the state of the Session after every step.
//
// It is meant to be used this way:
// - Compute the RegressionId for a playthrough.
// - Refactor the simulation.
// - Compute the RegressionId again, for the same playthrough.
// - If it hasn't changed, the refactoring didn't change the game.
func RegressionId(p *Playthrough) (string, error) {
	s, err := NewSessionFromPlaythrough(p)
	if err != nil {
		return "", err
	}

	hash := sha256.New()
	hash.Write(s.StateBytes())
	for i := range p.History {
		s.Step(p.History[i])
		hash.Write(s.StateBytes())
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}
