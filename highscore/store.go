package highscore

import (
	"log"
	"sync"

	"github.com/quasilyte/gdata"
)

const boardKey = "highscores"

// Store is where a Board lives between runs of the game.
type Store interface {
	Load() (Board, error)
	Save(b Board) error
}

// LocalStore keeps the board in the per-user data directory of the
// platform (local storage in a browser).
type LocalStore struct {
	m *gdata.Manager
}

func NewLocalStore(appName string) (*LocalStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, err
	}
	return &LocalStore{m: m}, nil
}

// Load returns an empty board if nothing was saved yet.
func (s *LocalStore) Load() (Board, error) {
	data, err := s.m.LoadItem(boardKey)
	if err != nil {
		return Board{}, err
	}
	if len(data) == 0 {
		return Board{}, nil
	}
	return UnmarshalBoard(data)
}

func (s *LocalStore) Save(b Board) error {
	data, err := b.Marshal()
	if err != nil {
		return err
	}
	return s.m.SaveItem(boardKey, data)
}

// MemStore is a Store that forgets everything when the process ends. It's
// what the game falls back to when the device has nowhere to save data.
type MemStore struct {
	mu    sync.Mutex
	board Board
}

func (s *MemStore) Load() (Board, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Board{Scores: append([]int64(nil), s.board.Scores...)}, nil
}

func (s *MemStore) Save(b Board) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.board = Board{Scores: append([]int64(nil), b.Scores...)}
	return nil
}

// Record adds the score of a finished game to the stored board and saves it.
// A board that can't be read is started over rather than losing the new
// score.
func Record(s Store, score int64) (Board, error) {
	b, err := s.Load()
	if err != nil {
		log.Printf("can't load high scores, starting a new board: %v", err)
		b = Board{}
	}
	if b.Add(score) < 0 {
		return b, nil
	}
	return b, s.Save(b)
}

// Sync merges remote, a board in the form written by Board.String, into the
// stored board and saves the result if it changed. A player who moves to a
// new device keeps their best scores this way.
func Sync(s Store, remote string) (Board, error) {
	b, err := s.Load()
	if err != nil {
		return Board{}, err
	}
	r, err := ParseBoard(remote)
	if err != nil {
		return b, err
	}
	if !b.Merge(r) {
		return b, nil
	}
	return b, s.Save(b)
}
