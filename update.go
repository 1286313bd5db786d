package main

import (
	"fmt"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/marisvali/suika1/sim"
)

// CrashFile is where the playthrough goes if the game panics, so that the
// crash can be replayed with StartState: DebugCrash.
const CrashFile = "crash.suika1"

func (g *Gui) Update() error {
	defer g.HandlePanic()

	g.pressedKeys = g.pressedKeys[:0]
	g.pressedKeys = inpututil.AppendPressedKeys(g.pressedKeys)
	g.justPressedKeys = g.justPressedKeys[:0]
	g.justPressedKeys = inpututil.AppendJustPressedKeys(g.justPressedKeys)

	if g.folderWatcher.FolderContentsChanged() {
		g.LoadGuiData()
		if g.state == PlayScreen || g.state == GameOverScreen {
			g.StartNewGame()
		}
	}

	switch g.state {
	case PlayScreen:
		g.UpdatePlayScreen()
	case GameOverScreen:
		g.UpdateGameOverScreen()
	case Playback:
		g.UpdatePlayback()
	case DebugCrash:
		g.UpdateDebugCrash()
	default:
		panic(fmt.Errorf("unhandled state: %d", g.state))
	}

	return nil
}

// readInput turns what the player did with the keyboard, mouse or touch
// screen since the last Update into commands for the Session.
func (g *Gui) readInput() (input sim.PlayerInput) {
	if g.JustPressed(ebiten.KeyLeft) || g.JustPressed(ebiten.KeyA) {
		input.Nudge--
	}
	if g.JustPressed(ebiten.KeyRight) || g.JustPressed(ebiten.KeyD) {
		input.Nudge++
	}
	// Each notch of the wheel is one nudge, like turning a dial.
	_, dy := ebiten.Wheel()
	if dy > 0 {
		input.Nudge++
	} else if dy < 0 {
		input.Nudge--
	}

	// Dragging moves the piece, letting go drops it.
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, _ := ebiten.CursorPosition()
		input.SetPosition = true
		input.PositionX = g.ScreenToNormalizedX(int64(x))
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, _ := ebiten.CursorPosition()
		input.SetPosition = true
		input.PositionX = g.ScreenToNormalizedX(int64(x))
		input.Drop = true
	}
	for _, id := range ebiten.AppendTouchIDs(nil) {
		x, _ := ebiten.TouchPosition(id)
		input.SetPosition = true
		input.PositionX = g.ScreenToNormalizedX(int64(x))
	}
	for _, id := range inpututil.AppendJustReleasedTouchIDs(nil) {
		x, _ := inpututil.TouchPositionInPreviousTick(id)
		input.SetPosition = true
		input.PositionX = g.ScreenToNormalizedX(int64(x))
		input.Drop = true
	}

	if g.JustPressed(ebiten.KeySpace) || g.JustPressed(ebiten.KeyDown) ||
		g.JustPressed(ebiten.KeyS) {
		input.Drop = true
	}
	if g.JustPressed(ebiten.KeyR) {
		input.Reset = true
	}
	return
}

// showInput remembers where the player was pointing, for Draw().
func (g *Gui) showInput(input sim.PlayerInput) {
	if input.SetPosition {
		cfg := g.session.Config()
		g.pointerX = cfg.PosX + input.PositionX*cfg.Width
	}
}

func (g *Gui) UpdatePlayScreen() {
	input := g.readInput()

	// Save the input in the playthrough.
	g.playthrough.History = append(g.playthrough.History, input)
	if g.RecordToFile {
		// IMPORTANT: save the playthrough before stepping the Session. If
		// a bug in the Session causes it to crash, the input that caused the
		// bug must already be saved.
		WriteFile(g.RecordingFile, g.playthrough.Serialize())
	}

	g.showInput(input)
	if input.Reset {
		g.visWorld = NewVisWorld(g.session)
	}
	g.session.Step(input)
	g.frameIdx++

	snap := g.session.Snapshot()
	g.visWorld.Step(snap.Events)

	if e, ended := snap.GameOverEvent(); ended {
		g.board.Add(e.Score)
		g.uploadUserDataChannel <- GameResult{
			Score:       e.Score,
			Id:          g.playthrough.Id,
			Playthrough: g.playthrough.Serialize(),
		}
		g.state = GameOverScreen
	}
}

func (g *Gui) UpdateGameOverScreen() {
	// Let the last splashes finish.
	g.visWorld.Step(nil)

	if g.JustPressed(ebiten.KeyR) || g.JustPressed(ebiten.KeyEnter) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		g.StartNewGame()
	}
}

func (g *Gui) Pressed(key ebiten.Key) bool {
	return slices.Contains(g.pressedKeys, key)
}

func (g *Gui) JustPressed(key ebiten.Key) bool {
	return slices.Contains(g.justPressedKeys, key)
}

func (g *Gui) cursor() Pt {
	x, y := ebiten.CursorPosition()
	return Pt{int64(x), int64(y)}
}

func (g *Gui) JustClicked(button Rectangle) bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	return button.ContainsPt(g.cursor())
}

func (g *Gui) LeftClickPressedOn(button Rectangle) bool {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return false
	}
	return button.ContainsPt(g.cursor())
}

// rewind rebuilds the Session and replays the recorded input up to (but
// excluding) frame idx.
func (g *Gui) rewind(idx int64) {
	var err error
	g.session, err = sim.NewSessionFromPlaythrough(&g.playthrough)
	Check(err)
	g.visWorld = NewVisWorld(g.session)
	for i := range idx {
		g.session.Step(g.playthrough.History[i])
	}
	g.frameIdx = idx
}

func (g *Gui) UpdatePlayback() {
	nFrames := int64(len(g.playthrough.History))
	if nFrames == 0 {
		return
	}

	userRequestedPlaybackPause := g.JustPressed(ebiten.KeySpace) ||
		g.JustClicked(g.buttonPlaybackPlay)
	if userRequestedPlaybackPause {
		g.playbackPaused = !g.playbackPaused
	}

	// Choose target frame.
	targetFrameIdx := g.frameIdx

	// Compute the target frame index based on where on the play bar the user
	// clicked.
	if g.LeftClickPressedOn(g.buttonPlaybackBar) {
		// Get the distance between the start and the cursor on the play bar.
		dx := g.cursor().X - g.buttonPlaybackBar.Min.X
		targetFrameIdx = dx * nFrames / g.buttonPlaybackBar.Width()
	}

	if g.JustPressed(ebiten.KeyLeft) && g.Pressed(ebiten.KeyAlt) {
		targetFrameIdx -= g.FrameSkipAltArrow
	}

	if g.JustPressed(ebiten.KeyRight) && g.Pressed(ebiten.KeyAlt) {
		targetFrameIdx += g.FrameSkipAltArrow
	}

	if g.Pressed(ebiten.KeyLeft) && g.Pressed(ebiten.KeyShift) {
		targetFrameIdx -= g.FrameSkipShiftArrow
	}

	if g.Pressed(ebiten.KeyRight) && g.Pressed(ebiten.KeyShift) {
		targetFrameIdx += g.FrameSkipShiftArrow
	}

	if g.Pressed(ebiten.KeyLeft) && !g.Pressed(ebiten.KeyShift) && !g.Pressed(ebiten.KeyAlt) {
		if g.playbackPaused {
			targetFrameIdx -= g.FrameSkipArrow
		} else {
			targetFrameIdx -= g.FrameSkipArrow * 2
		}
	}

	if g.Pressed(ebiten.KeyRight) && !g.Pressed(ebiten.KeyShift) && !g.Pressed(ebiten.KeyAlt) {
		targetFrameIdx += g.FrameSkipArrow
	}

	targetFrameIdx = max(0, min(targetFrameIdx, nFrames-1))
	if targetFrameIdx != g.frameIdx {
		g.rewind(targetFrameIdx)
	}

	// Get input from recording.
	input := g.playthrough.History[g.frameIdx]
	g.showInput(input)

	if !g.playbackPaused {
		g.session.Step(input)
		snap := g.session.Snapshot()
		g.visWorld.Step(snap.Events)

		if g.frameIdx < nFrames-1 {
			g.frameIdx++
		}
	}
}

func (g *Gui) UpdateDebugCrash() {
	if g.frameIdx < int64(len(g.playthrough.History)) {
		g.showInput(g.playthrough.History[g.frameIdx])
	}

	// Don't do anything, wait for the player to press a key.
	// Then run the last input, the one that caused the crash. Set a
	// breakpoint here to step into the faulty tick.
	if g.JustPressed(ebiten.KeySpace) &&
		g.frameIdx < int64(len(g.playthrough.History)) {
		g.session.Step(g.playthrough.History[g.frameIdx])
		g.frameIdx++
	}
}

// HandlePanic saves the playthrough of the current game before letting the
// panic go on. Every ebitengine callback defers it.
func (g *Gui) HandlePanic() {
	r := recover()
	if r == nil {
		return
	}
	if g.state == PlayScreen || g.state == GameOverScreen {
		// Don't let a failure here hide the original panic.
		CheckCrashes = false
		WriteFile(CrashFile, g.playthrough.Serialize())
	}
	panic(r)
}
