package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/marisvali/suika1/sim"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

func (g *Gui) LoadGuiData() {
	// Read from the disk over and over until a full read is possible.
	// Files that are still being written by an editor fail to parse, and
	// the next attempt usually succeeds.
	// This only makes sense for files on disk. Embedded files never change,
	// so a failure there is a real bug and it should crash right away (in a
	// browser it then shows up in the developer console).
	previousVal := CheckCrashes
	if g.FSys != FS(&embeddedFiles) {
		CheckCrashes = false
	}
	for {
		CheckFailed = nil
		g.Config = Config{Simulation: sim.DefaultConfig()}
		if g.devModeEnabled {
			LoadYAML(g.FSys, "data/config-dev.yaml", &g.Config)
		} else {
			LoadYAML(g.FSys, "data/config.yaml", &g.Config)
		}
		g.loadCatalog()
		g.loadLevel()

		if CheckFailed == nil {
			break
		}
	}
	CheckCrashes = previousVal

	g.UpdateWindowSize()

	fontData, err := opentype.Parse(goregular.TTF)
	Check(err)
	g.textFace = newFace(fontData, 56)
	g.smallTextFace = newFace(fontData, 36)
}

func newFace(f *opentype.Font, size float64) text.Face {
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingVertical,
	})
	Check(err)
	return text.NewGoXFace(face)
}

func (g *Gui) loadCatalog() {
	g.catalog = sim.DefaultCatalog()
	if g.CatalogFile == "" {
		return
	}
	data, err := g.FSys.ReadFile(g.CatalogFile)
	Check(err)
	if err != nil {
		return
	}
	c, err := sim.LoadCatalogYAML(data)
	Check(err)
	if err != nil {
		return
	}
	g.catalog = &c
}

func (g *Gui) loadLevel() {
	g.level = sim.Level{}
	if !g.LoadTest {
		return
	}
	data, err := g.FSys.ReadFile(g.TestFile)
	Check(err)
	if err != nil {
		return
	}
	g.level, err = sim.LoadLevelYAML(data, g.catalog)
	Check(err)
}

func (g *Gui) UpdateWindowSize() {
	width, height := ebiten.ScreenSizeInFullscreen()
	size := min(width, height) * 8 / 10
	ebiten.SetWindowSize(size*GameWidth/GameHeight, size)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Suika1")
}
