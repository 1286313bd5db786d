package main

import (
	"embed"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/marisvali/suika1/highscore"
	"github.com/marisvali/suika1/sim"
)

// ReleaseVersion is the version of an executable built and given to someone
// to play, either as a desktop executable or a .wasm in the browser. It is a
// unique label for what a player was presented with.
// ReleaseVersion must change when sim.SimulationVersion or sim.InputVersion
// change. It also changes for every other variation of the game that gets
// released: uploads enabled or disabled, asserts enabled or disabled,
// different graphics. Each variation is a separate build, not a setting, so
// that every recorded playthrough says exactly what the player got.
const ReleaseVersion = 2

//go:embed data/*
var embeddedFiles embed.FS

type GameState int64

const (
	PlayScreen GameState = iota
	GameOverScreen
	Playback
	DebugCrash
)

type Gui struct {
	Config
	session               *sim.Session
	catalog               *sim.Catalog
	level                 sim.Level
	FSys                  FS
	textFace              text.Face
	smallTextFace         text.Face
	playthrough           sim.Playthrough
	frameIdx              int64
	state                 GameState
	playbackPaused        bool
	pressedKeys           []ebiten.Key
	justPressedKeys       []ebiten.Key
	FrameSkipAltArrow     int64
	FrameSkipShiftArrow   int64
	FrameSkipArrow        int64
	enableDebugAreas      bool
	screenWidth           int64
	screenHeight          int64
	gameAreaOrigin        Pt
	buttonPlaybackPlay    Rectangle
	buttonPlaybackBar     Rectangle
	pointerX              float64
	username              string
	board                 highscore.Board
	uploadUserDataChannel chan GameResult
	visWorld              VisWorld
	folderWatcher         FolderWatcher
	devModeEnabled        bool
}

type Config struct {
	StartState    string `yaml:"StartState"`
	PlaybackFile  string `yaml:"PlaybackFile"`
	RecordToFile  bool   `yaml:"RecordToFile"`
	RecordingFile string `yaml:"RecordingFile"`
	LoadTest      bool   `yaml:"LoadTest"`
	TestFile      string `yaml:"TestFile"`
	// CatalogFile replaces the built-in piece table if set.
	CatalogFile string     `yaml:"CatalogFile"`
	Simulation  sim.Config `yaml:"Simulation"`
}

func main() {
	ebiten.SetWindowPosition(1000, 100)

	var g Gui
	g.username = getUsername()
	g.FrameSkipAltArrow = 1
	g.FrameSkipShiftArrow = 10
	g.FrameSkipArrow = 1

	if !FileExists(os.DirFS(".").(FS), "data") {
		g.FSys = &embeddedFiles
	} else {
		g.FSys = os.DirFS(".").(FS)
		g.folderWatcher.Folder = "data"
		// Take a first look at the folder so that only later changes count.
		g.folderWatcher.FolderContentsChanged()
	}

	filePassedForPlayback := false
	if len(os.Args) == 2 {
		if os.Args[1] == "developer-mode-enabled" {
			g.devModeEnabled = true
		} else {
			filePassedForPlayback = true
		}
	}

	g.LoadGuiData()

	var store highscore.Store
	store, err := highscore.NewLocalStore("suika1")
	if err != nil {
		log.Printf("can't open local storage, high scores will not be "+
			"saved: %v", err)
		store = &highscore.MemStore{}
	}
	g.board, err = store.Load()
	if err != nil {
		log.Printf("can't load high scores: %v", err)
	}
	// The server keeps the board of the player's last game on any device.
	remote, err := GetUserDataHttp(g.username)
	if err != nil {
		log.Printf("can't download high scores: %v", err)
	} else if synced, err := highscore.Sync(store, remote); err != nil {
		log.Printf("can't merge downloaded high scores: %v", err)
	} else {
		g.board = synced
	}
	// A buffer of 10 is more than enough: a result is sent once per game.
	g.uploadUserDataChannel = make(chan GameResult, 10)
	go UploadUserData(g.username, store, g.uploadUserDataChannel)

	if filePassedForPlayback {
		g.StartState = "Playback"
		g.PlaybackFile = os.Args[1]
	}

	switch g.StartState {
	case "Playback":
		g.state = Playback
		g.enableDebugAreas = true
		g.playthrough, err = sim.DeserializePlaythrough(ReadFile(g.PlaybackFile))
		Check(err)
	case "DebugCrash":
		g.state = DebugCrash
		g.enableDebugAreas = true
		// Don't crash while debugging the crash: Check() failures of the
		// last frame should be visible, not fatal.
		CheckCrashes = false
		g.playthrough, err = sim.DeserializePlaythrough(ReadFile(g.PlaybackFile))
		Check(err)
	case "Play":
		g.state = PlayScreen
		g.playthrough = g.newPlaythrough()
	default:
		panic(fmt.Errorf("invalid g.StartState: %s", g.StartState))
	}

	g.session, err = sim.NewSessionFromPlaythrough(&g.playthrough)
	Check(err)
	g.visWorld = NewVisWorld(g.session)

	// The last input caused the crash, so run the whole playthrough except the
	// last input. The world is then visible right before the bug happens.
	if g.state == DebugCrash {
		g.frameIdx = int64(len(g.playthrough.History)) - 1
		for i := range g.frameIdx {
			g.session.Step(g.playthrough.History[i])
		}
	}

	// One Update is one tick.
	ebiten.SetTPS(int(g.session.Config().TickRate))
	err = ebiten.RunGame(&g)
	Check(err)
}

// newPlaythrough prepares the recording of a new game.
func (g *Gui) newPlaythrough() sim.Playthrough {
	p := sim.NewPlaythrough(g.Simulation, g.level, ReleaseVersion,
		time.Now().UnixNano())
	if g.catalog != sim.DefaultCatalog() {
		p.Catalog = *g.catalog
	}
	return p
}

// StartNewGame throws away the current game and starts recording a new one.
func (g *Gui) StartNewGame() {
	g.playthrough = g.newPlaythrough()
	var err error
	g.session, err = sim.NewSessionFromPlaythrough(&g.playthrough)
	Check(err)
	g.frameIdx = 0
	g.visWorld = NewVisWorld(g.session)
	g.state = PlayScreen
}
