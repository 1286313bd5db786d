package sim

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomPlaythrough(seed int64, nFrames int) Playthrough {
	p := NewPlaythrough(DefaultConfig(), Level{}, 7, seed)
	r := NewRand(seed + 1)
	for range nFrames {
		p.History = append(p.History, randomInput(&r))
	}
	return p
}

func TestNewPlaythrough(t *testing.T) {
	p := NewPlaythrough(DefaultConfig(), Level{}, 7, 42)
	assert.Equal(t, int64(InputVersion), p.InputVersion)
	assert.Equal(t, int64(SimulationVersion), p.SimulationVersion)
	assert.Equal(t, int64(7), p.ReleaseVersion)
	assert.Equal(t, int64(42), p.Seed)
	assert.Equal(t, int64(42), p.Config.Seed)
	assert.NotEqual(t, uuid.Nil, p.Id)
}

func TestNewSessionFromPlaythrough(t *testing.T) {
	p := randomPlaythrough(1, 0)
	p.SimulationVersion = 25
	_, err := NewSessionFromPlaythrough(&p)
	assert.ErrorIs(t, err, ErrIncompatiblePlaythrough)

	p.SimulationVersion = SimulationVersion
	_, err = NewSessionFromPlaythrough(&p)
	assert.NoError(t, err)
}

func TestPlaythrough_SerializeRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	l := Level{PiecesParams: []PieceParams{{Rank: 2, Pos: Vec{0.1, 0.6}}}}
	p := NewPlaythrough(cfg, l, 3, 99)
	p.Catalog = *smallCatalog()
	r := NewRand(5)
	for range 500 {
		p.History = append(p.History, randomInput(&r))
	}

	loaded, err := DeserializePlaythrough(p.Serialize())
	require.NoError(t, err)
	assert.Equal(t, p, loaded)

	// The replay is the same game.
	expected, err := RegressionId(&p)
	require.NoError(t, err)
	actual, err := RegressionId(&loaded)
	require.NoError(t, err)
	assert.Equal(t, expected, actual)
}

func TestDeserializePlaythrough_Errors(t *testing.T) {
	_, err := DeserializePlaythrough([]byte("not a playthrough"))
	assert.ErrorIs(t, err, ErrCorruptData)

	p := randomPlaythrough(2, 100)
	data := p.Serialize()
	raw, err := Unzip(data)
	require.NoError(t, err)
	_, err = DeserializePlaythrough(Zip(raw[:len(raw)/2]))
	assert.ErrorIs(t, err, ErrCorruptData)

	p.InputVersion = InputVersion + 1
	_, err = DeserializePlaythrough(p.Serialize())
	assert.ErrorIs(t, err, ErrIncompatiblePlaythrough)
}

func TestPlaythrough_Clone(t *testing.T) {
	p := randomPlaythrough(3, 10)
	clone := p.Clone()
	assert.Equal(t, p, *clone)
	clone.History[0].Drop = !clone.History[0].Drop
	assert.NotEqual(t, p.History[0], clone.History[0])
}

func TestRegressionId_Deterministic(t *testing.T) {
	p := randomPlaythrough(4, 2000)
	id1, err := RegressionId(&p)
	require.NoError(t, err)
	id2, err := RegressionId(p.Clone())
	require.NoError(t, err)
	assert.Equal(t, id1, id2)
	assert.Len(t, id1, 64)

	// A different seed spawns different pieces.
	other := randomPlaythrough(4, 2000)
	other.Seed = 5
	id3, err := RegressionId(&other)
	require.NoError(t, err)
	assert.NotEqual(t, id1, id3)
}

func TestSession_ReplayMatchesLiveGame(t *testing.T) {
	p := randomPlaythrough(6, 1500)
	live, err := NewSessionFromPlaythrough(&p)
	require.NoError(t, err)
	for _, input := range p.History {
		live.Step(input)
	}

	replay, err := NewSessionFromPlaythrough(&p)
	require.NoError(t, err)
	for _, input := range p.History {
		replay.Step(input)
	}
	assert.Equal(t, live.StateBytes(), replay.StateBytes())
	assert.Equal(t, live.Snapshot(), replay.Snapshot())
}

func BenchmarkPlaythrough(b *testing.B) {
	p := randomPlaythrough(8, 5000)
	for b.Loop() {
		s, err := NewSessionFromPlaythrough(&p)
		if err != nil {
			b.Fatal(err)
		}
		for i := range p.History {
			s.Step(p.History[i])
		}
	}
}
