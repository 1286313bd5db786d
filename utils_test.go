package main

import (
	"testing"
	"testing/fstest"

	"github.com/marisvali/suika1/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadYAML_KeepsDefaults(t *testing.T) {
	fsys := fstest.MapFS{
		"config.yaml": {Data: []byte("StartState: Playback\n" +
			"Simulation:\n  Gravity: 9\n")},
	}
	cfg := Config{Simulation: sim.DefaultConfig()}
	LoadYAML(fsys, "config.yaml", &cfg)

	expected := sim.DefaultConfig()
	expected.Gravity = 9
	assert.Equal(t, "Playback", cfg.StartState)
	assert.Equal(t, expected, cfg.Simulation)
}

func TestLoadYAML_Errors(t *testing.T) {
	CheckCrashes = false
	defer func() { CheckCrashes = true }()
	fsys := fstest.MapFS{
		"bad.yaml": {Data: []byte("Simulation: [1, 2\n")},
	}

	CheckFailed = nil
	var cfg Config
	LoadYAML(fsys, "missing.yaml", &cfg)
	assert.Error(t, CheckFailed)

	CheckFailed = nil
	LoadYAML(fsys, "bad.yaml", &cfg)
	assert.Error(t, CheckFailed)
}

// The files shipped with the game must all load.
func TestEmbeddedData(t *testing.T) {
	for _, name := range []string{"data/config.yaml", "data/config-dev.yaml"} {
		cfg := Config{Simulation: sim.DefaultConfig()}
		LoadYAML(&embeddedFiles, name, &cfg)
		require.NoError(t, cfg.Simulation.Validate(), name)
		assert.Equal(t, sim.DefaultConfig(), cfg.Simulation, name)
		assert.Equal(t, "Play", cfg.StartState, name)
	}

	data, err := embeddedFiles.ReadFile("data/catalog.yaml")
	require.NoError(t, err)
	catalog, err := sim.LoadCatalogYAML(data)
	require.NoError(t, err)
	assert.Equal(t, *sim.DefaultCatalog(), catalog)

	data, err = embeddedFiles.ReadFile("data/levels/test.yaml")
	require.NoError(t, err)
	level, err := sim.LoadLevelYAML(data, &catalog)
	require.NoError(t, err)
	assert.Len(t, level.PiecesParams, 5)

	s, err := sim.NewSessionWithCatalog(sim.DefaultConfig(), &catalog, level)
	require.NoError(t, err)
	assert.Len(t, s.Snapshot().Dropped, 5)
}

func TestRectangle(t *testing.T) {
	r := NewRectangleI(10, 20, 30, 40)
	assert.Equal(t, int64(30), r.Width())
	assert.Equal(t, int64(40), r.Height())
	assert.True(t, r.ContainsPt(Pt{10, 20}))
	assert.True(t, r.ContainsPt(Pt{39, 59}))
	assert.False(t, r.ContainsPt(Pt{40, 59}))
	assert.False(t, r.ContainsPt(Pt{9, 30}))
	assert.Equal(t, NewRectangleI(15, 15, 30, 40), r.Plus(Pt{5, -5}))
}
