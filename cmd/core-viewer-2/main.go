// Command core-viewer-2 renders a core image as a graphical cell map:
// every core slot is a cell, colored by the warrior occupying it.
package main

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"go.creack.net/redcode/cli"
	"go.creack.net/redcode/core"
)

var fontFace = text.NewGoXFace(bitmapfont.Face)

const initialScreenWidth, initialScreenHeight = 1024, 768

const (
	gridWidth  = 100 // Cells per row.
	cellSize   = 9
	cellMargin = 1
)

var warriorColors = []color.RGBA{
	{R: 0x3f, G: 0xb9, B: 0x50, A: 0xff},
	{R: 0xd9, G: 0x4a, B: 0x3d, A: 0xff},
	{R: 0x4a, G: 0x90, B: 0xd9, A: 0xff},
	{R: 0xd9, G: 0xc3, B: 0x3d, A: 0xff},
}

// Game implements ebiten.Game interface.
type Game struct {
	cfg  cli.Config
	core *core.Core

	cell *ebiten.Image
}

// Update proceeds the game state.
// Update is called every tick (1/60 [s] by default).
func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) cellColor(addr int) color.RGBA {
	for i, w := range g.cfg.Warriors {
		if addr < w.At || addr >= w.At+len(w.Prog.Instructions) {
			continue
		}
		c := warriorColors[i%len(warriorColors)]
		if addr == w.At+w.Prog.Origin {
			// Entry point, full white.
			return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
		}
		return c
	}
	return color.RGBA{R: 0x28, G: 0x28, B: 0x28, A: 0xff}
}

// Draw draws the game screen.
// Draw is called every frame (typically 1/60[s] for 60Hz display).
func (g *Game) Draw(screen *ebiten.Image) {
	for addr := 0; addr < g.core.Size(); addr++ {
		geo := ebiten.GeoM{}
		geo.Translate(
			float64((addr%gridWidth)*(cellSize+cellMargin)),
			float64((addr/gridWidth)*(cellSize+cellMargin)),
		)

		colorScale := ebiten.ColorScale{}
		colorScale.ScaleWithColor(g.cellColor(addr))
		screen.DrawImage(g.cell, &ebiten.DrawImageOptions{GeoM: geo, ColorScale: colorScale})
	}

	legend := make([]string, 0, len(g.cfg.Warriors))
	for _, w := range g.cfg.Warriors {
		legend = append(legend, fmt.Sprintf("%s (%d instructions at %d)", w.ShortName, len(w.Prog.Instructions), w.At))
	}

	textOp := &text.DrawOptions{}
	textOp.GeoM.Translate(0, float64((g.core.Size()/gridWidth+2)*(cellSize+cellMargin)))
	textOp.LineSpacing = fontFace.Metrics().HLineGap + fontFace.Metrics().HAscent + fontFace.Metrics().HDescent
	textOp.ColorScale.ScaleWithColor(color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})

	text.Draw(screen, strings.Join(legend, "\n"), fontFace, textOp)
}

// Layout takes the outside size (e.g., the window size) and returns the (logical) screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return initialScreenWidth, initialScreenHeight
}

func main() {
	cfg, err := cli.ParseConfig()
	if err != nil {
		log.Fatalf("Failed to parse cli config: %s.", err)
	}

	c := core.New(cfg.CoreSize)
	for _, w := range cfg.Warriors {
		if err := w.Prog.Load(c, w.At); err != nil {
			log.Fatalf("Failed to load %q: %s.", w.PathName, err)
		}
	}

	cell := ebiten.NewImage(cellSize, cellSize)
	cell.Fill(color.White)

	ebiten.SetWindowSize(initialScreenWidth, initialScreenHeight)
	ebiten.SetWindowTitle("Redcode core")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(&Game{cfg: cfg, core: c, cell: cell}); err != nil && err != ebiten.Termination {
		log.Fatalf("Failed to run viewer: %s.", err)
	}
}
