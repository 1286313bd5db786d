package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/marisvali/suika1/sim"
)

var colorBackground = color.NRGBA{R: 180, G: 180, B: 180, A: 255}
var colorGameArea = color.NRGBA{R: 250, G: 240, B: 215, A: 255}
var colorWall = color.NRGBA{R: 120, G: 85, B: 60, A: 255}
var colorRim = color.NRGBA{R: 200, G: 60, B: 60, A: 160}
var colorGuide = color.NRGBA{R: 120, G: 85, B: 60, A: 60}
var colorText = color.NRGBA{R: 70, G: 50, B: 35, A: 255}
var colorOverlay = color.NRGBA{R: 0, G: 0, B: 0, A: 150}
var colorPlayBar = color.NRGBA{R: 200, G: 200, B: 200, A: 255}

// rankColors are used in order, and start over if there are more ranks than
// colors.
var rankColors = []color.NRGBA{
	{R: 220, G: 20, B: 60, A: 255},
	{R: 255, G: 99, B: 71, A: 255},
	{R: 148, G: 0, B: 211, A: 255},
	{R: 255, G: 165, B: 0, A: 255},
	{R: 255, G: 140, B: 0, A: 255},
	{R: 200, G: 30, B: 30, A: 255},
	{R: 210, G: 220, B: 90, A: 255},
	{R: 255, G: 182, B: 193, A: 255},
	{R: 240, G: 200, B: 40, A: 255},
	{R: 150, G: 220, B: 120, A: 255},
	{R: 40, G: 150, B: 60, A: 255},
}

func rankColor(rank int) color.NRGBA {
	return rankColors[rank%len(rankColors)]
}

func fade(c color.NRGBA, alpha float64) color.NRGBA {
	c.A = uint8(float64(c.A) * max(0, min(1, alpha)))
	return c
}

func (g *Gui) Draw(screen *ebiten.Image) {
	defer g.HandlePanic()

	// The screen bitmap has the aspect ratio of the application window. Fill
	// it with some background, then draw the interesting parts inside the
	// game area.
	screen.Fill(colorBackground)
	game := SubImage(screen, NewRectangleI(
		g.gameAreaOrigin.X,
		g.gameAreaOrigin.Y,
		GameWidth,
		GameHeight))

	snap := g.session.Snapshot()
	g.DrawPlayScreen(game, &snap)
	if g.state == GameOverScreen || (g.state != PlayScreen && snap.Ended) {
		g.DrawGameOverScreen(game, &snap)
	}

	if g.enableDebugAreas {
		debug := SubImage(screen, g.debugArea())
		g.DrawDebugControls(debug)
	}
}

func (g *Gui) DrawPlayScreen(screen *ebiten.Image, snap *sim.Snapshot) {
	screen.Fill(colorGameArea)

	g.DrawText(screen, scoreArea, fmt.Sprintf("Score: %d", snap.Score),
		g.textFace, false)
	best := max(g.board.Best(), snap.Score)
	below := scoreArea.Plus(Pt{0, 70})
	g.DrawText(screen, below, fmt.Sprintf("Best: %d", best),
		g.smallTextFace, false)

	// Next piece preview.
	g.DrawText(screen, nextPieceArea, "Next", g.smallTextFace, false)
	origin := screen.Bounds().Min
	nextX := float32(origin.X) +
		float32(nextPieceArea.Min.X+nextPieceArea.Width()*3/4)
	nextY := float32(origin.Y) +
		float32(nextPieceArea.Min.Y+nextPieceArea.Height()/2)
	nextR := min(g.WorldLenToPlayArea(snap.Next.Radius),
		float32(nextPieceArea.Height())/2)
	drawPiece(screen, nextX, nextY, nextR, snap.Next.Rank)

	play := SubImage(screen, playArea)
	o := play.Bounds().Min
	g.DrawContainer(play, &snap.Container)

	// Aim guide, straight down from the piece the player controls.
	if !snap.Pending.Dropped && !snap.Ended {
		x, y := g.WorldToPixel(o, snap.Pending.Pos)
		_, floorY := g.WorldToPixel(o, sim.Vec{Y: snap.Container.Floor()})
		vector.StrokeLine(play, x, y, x, floorY, 3, colorGuide, true)
	}

	for _, p := range snap.Dropped {
		g.DrawPiece(play, p)
	}
	if !snap.Pending.Dropped {
		g.DrawPiece(play, snap.Pending)
	}
	g.DrawSplashes(play)

	if g.state == Playback || g.state == DebugCrash {
		// Where the player was pointing during this frame.
		x, _ := g.WorldToPixel(o, sim.Vec{X: g.pointerX})
		top := float32(o.Y)
		vector.StrokeLine(play, x, top, x, top+40, 4, colorRim, true)
	}
}

func (g *Gui) DrawContainer(play *ebiten.Image, c *sim.Container) {
	o := play.Bounds().Min
	left, top := g.WorldToPixel(o, sim.Vec{X: c.Left(), Y: c.Top()})
	right, floor := g.WorldToPixel(o, sim.Vec{X: c.Right(), Y: c.Floor()})
	const wall = 8
	vector.StrokeLine(play, left-wall/2, top, left-wall/2, floor+wall, wall,
		colorWall, true)
	vector.StrokeLine(play, right+wall/2, top, right+wall/2, floor+wall,
		wall, colorWall, true)
	vector.StrokeLine(play, left-wall, floor+wall/2, right+wall, floor+wall/2,
		wall, colorWall, true)
	// The rim: pieces above it end the game.
	vector.StrokeLine(play, left, top, right, top, 2, colorRim, true)
}

func (g *Gui) DrawPiece(play *ebiten.Image, p sim.PieceState) {
	x, y := g.WorldToPixel(play.Bounds().Min, p.Pos)
	drawPiece(play, x, y, g.WorldLenToPlayArea(p.Radius), p.Rank)
}

func drawPiece(dst *ebiten.Image, x, y, r float32, rank int) {
	c := rankColor(rank)
	vector.DrawFilledCircle(dst, x, y, r, c, true)
	outline := color.NRGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: 255}
	vector.StrokeCircle(dst, x, y, r, 3, outline, true)
}

func (g *Gui) DrawSplashes(play *ebiten.Image) {
	o := play.Bounds().Min
	for _, a := range g.visWorld.Temporary {
		t := a.Animation.Progress()
		x, y := g.WorldToPixel(o, a.Pos)
		r := g.WorldLenToPlayArea(a.Radius)
		c := rankColor(a.Rank)
		switch a.Kind {
		case SplashRadial:
			rr := r * float32(1+0.6*t)
			vector.StrokeCircle(play, x, y, rr, 6, fade(c, 1-t), true)
		case SplashDown:
			w := r * float32(1+t)
			h := float32(6)
			vector.DrawFilledRect(play, x-w, y-h, 2*w, h, fade(colorWall, 0.5*(1-t)),
				true)
		case SplashClear:
			// A few rings spreading at different speeds.
			for i := range 3 {
				rr := r * float32(1+float64(i+1)*2*t)
				vector.StrokeCircle(play, x, y, rr, 10, fade(c, (1-t)*(1-float64(i)/3)), true)
			}
		}
	}
}

func (g *Gui) DrawGameOverScreen(screen *ebiten.Image, snap *sim.Snapshot) {
	bounds := screen.Bounds()
	vector.DrawFilledRect(screen, float32(bounds.Min.X), float32(bounds.Min.Y),
		float32(bounds.Dx()), float32(bounds.Dy()), colorOverlay, false)

	lines := []string{
		"Game over",
		fmt.Sprintf("Score: %d", snap.Score),
		"",
		"Best scores",
	}
	for i, s := range g.board.Scores {
		lines = append(lines, fmt.Sprintf("%d. %d", i+1, s))
	}
	lines = append(lines, "", "Press R or click to play again")
	y := int64(400)
	for _, line := range lines {
		area := NewRectangleI(0, y, GameWidth, 80)
		g.DrawTextColor(screen, area, line, g.textFace, true, color.White)
		y += 80
	}
}

func (g *Gui) DrawDebugControls(screen *ebiten.Image) {
	screen.Fill(colorPlayBar)
	bounds := screen.Bounds()
	playbarHeight := int64(bounds.Dy())

	// Play/pause button: a triangle when paused, two bars when playing.
	buttonSize := float32(playbarHeight)
	bx := float32(bounds.Min.X)
	by := float32(bounds.Min.Y)
	if g.playbackPaused {
		var path vector.Path
		path.MoveTo(bx+buttonSize*0.3, by+buttonSize*0.2)
		path.LineTo(bx+buttonSize*0.8, by+buttonSize*0.5)
		path.LineTo(bx+buttonSize*0.3, by+buttonSize*0.8)
		path.Close()
		vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
		for i := range vs {
			vs[i].ColorR = float32(colorText.R) / 255
			vs[i].ColorG = float32(colorText.G) / 255
			vs[i].ColorB = float32(colorText.B) / 255
			vs[i].ColorA = 1
		}
		screen.DrawTriangles(vs, is, whiteImage(), &ebiten.DrawTrianglesOptions{})
	} else {
		vector.DrawFilledRect(screen, bx+buttonSize*0.25, by+buttonSize*0.2,
			buttonSize*0.15, buttonSize*0.6, colorText, false)
		vector.DrawFilledRect(screen, bx+buttonSize*0.6, by+buttonSize*0.2,
			buttonSize*0.15, buttonSize*0.6, colorText, false)
	}
	// Remember the regions so that Update() can react when they're clicked.
	g.buttonPlaybackPlay = Rectangle{
		Min: Pt{int64(bounds.Min.X), int64(bounds.Min.Y)},
		Max: Pt{int64(bounds.Min.X) + playbarHeight, int64(bounds.Max.Y)},
	}
	barXMargin := int64(10)
	g.buttonPlaybackBar = Rectangle{
		Min: Pt{g.buttonPlaybackPlay.Max.X + barXMargin, int64(bounds.Min.Y)},
		Max: Pt{int64(bounds.Max.X) - barXMargin, int64(bounds.Max.Y)},
	}

	bar := g.buttonPlaybackBar
	midY := float32(bar.Min.Y + bar.Height()/2)
	vector.StrokeLine(screen, float32(bar.Min.X), midY, float32(bar.Max.X),
		midY, 6, colorWall, false)

	// Playback bar cursor.
	nFrames := max(1, len(g.playthrough.History))
	factor := float32(g.frameIdx) / float32(nFrames)
	cursorX := float32(bar.Min.X) + factor*float32(bar.Width())
	vector.DrawFilledCircle(screen, cursorX, midY, float32(playbarHeight)/4,
		colorRim, true)
}

func (g *Gui) DrawText(screen *ebiten.Image, area Rectangle, message string,
	face text.Face, centerX bool) {
	g.DrawTextColor(screen, area, message, face, centerX, colorText)
}

// DrawTextColor draws message in area, which is relative to screen. The text
// is vertically centered in area.
func (g *Gui) DrawTextColor(screen *ebiten.Image, area Rectangle,
	message string, face text.Face, centerX bool, c color.Color) {
	op := &text.DrawOptions{}
	origin := screen.Bounds().Min
	x := float64(origin.X) + float64(area.Min.X)
	if centerX {
		x += float64(area.Width()) / 2
		op.PrimaryAlign = text.AlignCenter
	}
	y := float64(origin.Y) + float64(area.Min.Y) + float64(area.Height())/2
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, message, face, op)
}

// SubImage returns a sub-region of screen. r is relative to screen: (0, 0)
// is the top-left pixel of screen, wherever screen is in its parent. The
// returned image is just as relative to itself, see the drawing functions.
func SubImage(screen *ebiten.Image, r Rectangle) *ebiten.Image {
	minPt := screen.Bounds().Min
	return screen.SubImage(r.Plus(Pt{int64(minPt.X), int64(minPt.Y)}).
		ImageRect()).(*ebiten.Image)
}

var whiteImg *ebiten.Image

func whiteImage() *ebiten.Image {
	if whiteImg == nil {
		whiteImg = ebiten.NewImage(3, 3)
		whiteImg.Fill(color.White)
	}
	return whiteImg.SubImage(whiteImg.Bounds().Inset(1)).(*ebiten.Image)
}
