package main

import (
	"image"

	"github.com/marisvali/suika1/sim"
)

// Visual areas
// ------------
//
// - The play area: where the container and the pieces are drawn. Has a fixed
// size, known at compile time. The World is scaled to fit inside it.
// - The top bar: above the play area. Holds the score, the best score and
// the preview of the next piece.
// - The game area: contains all of the above. Has a fixed size, known at
// compile time.
// - The debug area: below the game area, only shown during playback. Holds
// the play/pause button and the play bar.
// - The screen: contains the game area, the debug area if it is displayed
// and any margins necessary to fill in the application window on the OS. Its
// size is known only at run time.

const PlayMarginLeft = 50
const PlayMarginRight = 50
const PlayMarginUp = 220
const PlayMarginDown = 50
const PlayAreaWidth = 900
const PlayAreaHeight = 1200
const GameWidth = PlayAreaWidth + PlayMarginLeft + PlayMarginRight
const GameHeight = PlayAreaHeight + PlayMarginUp + PlayMarginDown
const DebugHeight = 100

// ViewMargin is how much of the World around the container is visible, in
// World units.
const ViewMargin = 0.08

// The areas below are all relative to the game area.
var playArea = NewRectangleI(PlayMarginLeft, PlayMarginUp, PlayAreaWidth,
	PlayAreaHeight)
var scoreArea = NewRectangleI(PlayMarginLeft, 30, PlayAreaWidth/2, 160)
var nextPieceArea = NewRectangleI(PlayMarginLeft+PlayAreaWidth-200, 30, 200,
	160)

func (g *Gui) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	defer g.HandlePanic()

	// The window has whatever size and aspect ratio the OS or the browser
	// gives it. ebitengine scales the bitmap returned here to fit in the
	// window and keeps its aspect ratio, adding black bars if needed.
	//
	// What I want:
	// - No black bars, the background covers the whole window.
	// - A fixed game area I can reason about in pixels, taller than wide like
	// a phone, and large enough that ebitengine mostly shrinks it.
	//
	// So the bitmap gets the aspect ratio of the window, and either its width
	// matches the game width or its height matches the game height, whichever
	// keeps the whole game area visible. The debug area is simply added to
	// the game height when it is shown.
	outsideAspectRatio := float64(outsideWidth) / float64(outsideHeight)
	gameWidth := int64(GameWidth)
	gameHeight := int64(GameHeight)
	if g.enableDebugAreas {
		gameHeight += DebugHeight
	}
	gameAspectRatio := float64(gameWidth) / float64(gameHeight)
	if outsideAspectRatio < gameAspectRatio {
		screenWidth = int(gameWidth)
		screenHeight = int(float64(screenWidth) / outsideAspectRatio)
	} else {
		screenHeight = int(gameHeight)
		screenWidth = int(float64(screenHeight) * outsideAspectRatio)
	}

	// Update() needs these as well, to map the cursor.
	g.screenWidth = int64(screenWidth)
	g.screenHeight = int64(screenHeight)
	g.gameAreaOrigin.X = (g.screenWidth - gameWidth) / 2
	g.gameAreaOrigin.Y = (g.screenHeight - gameHeight) / 2
	return
}

// worldView is the rectangle of the World shown in the play area: the
// container, plus the height at which pieces wait to be dropped.
func (g *Gui) worldView() (minX, minY, maxX, maxY float64) {
	cfg := g.session.Config()
	minX = cfg.PosX - cfg.Width - ViewMargin
	maxX = cfg.PosX + cfg.Width + ViewMargin
	minY = min(cfg.PendingY-g.session.Catalog().MaxRadius(), cfg.PosY-cfg.Height) -
		ViewMargin
	maxY = cfg.PosY + cfg.Height + ViewMargin
	return
}

// pixelsPerUnit scales the World so that all of worldView fits in the play
// area.
func (g *Gui) pixelsPerUnit() float64 {
	minX, minY, maxX, maxY := g.worldView()
	return min(PlayAreaWidth/(maxX-minX), PlayAreaHeight/(maxY-minY))
}

// WorldToPlayArea converts World coordinates to pixels in the play area. The
// view is centered horizontally and sits on the bottom of the play area.
func (g *Gui) WorldToPlayArea(v sim.Vec) (x, y float32) {
	minX, _, maxX, maxY := g.worldView()
	ppu := g.pixelsPerUnit()
	centerX := (minX + maxX) / 2
	x = float32(PlayAreaWidth/2 + (v.X-centerX)*ppu)
	y = float32(PlayAreaHeight - (maxY-v.Y)*ppu)
	return
}

// WorldToPixel converts World coordinates to pixels of an image of the play
// area. Sub-images keep the coordinates of the image they were cut from, so
// origin, the top-left corner of that image, is added in.
func (g *Gui) WorldToPixel(origin image.Point, v sim.Vec) (x, y float32) {
	x, y = g.WorldToPlayArea(v)
	return x + float32(origin.X), y + float32(origin.Y)
}

func (g *Gui) WorldLenToPlayArea(l float64) float32 {
	return float32(l * g.pixelsPerUnit())
}

// ScreenToWorldX converts the x coordinate of a screen pixel to the World.
func (g *Gui) ScreenToWorldX(x int64) float64 {
	minX, _, maxX, _ := g.worldView()
	local := x - g.gameAreaOrigin.X - playArea.Min.X
	centerX := (minX + maxX) / 2
	return centerX + (float64(local)-PlayAreaWidth/2)/g.pixelsPerUnit()
}

// ScreenToNormalizedX converts the x coordinate of a screen pixel to the
// range used by sim.Session.SetPosition: -1 on the left wall, 1 on the right
// wall.
func (g *Gui) ScreenToNormalizedX(x int64) float64 {
	cfg := g.session.Config()
	return (g.ScreenToWorldX(x) - cfg.PosX) / cfg.Width
}

func (g *Gui) ScreenToGame(pt Pt) Pt {
	return pt.Minus(g.gameAreaOrigin)
}

func (g *Gui) GameToScreen(r Rectangle) Rectangle {
	return r.Plus(g.gameAreaOrigin)
}

// debugArea is relative to the screen.
func (g *Gui) debugArea() Rectangle {
	return NewRectangleI(g.gameAreaOrigin.X, g.gameAreaOrigin.Y+GameHeight,
		GameWidth, DebugHeight)
}
