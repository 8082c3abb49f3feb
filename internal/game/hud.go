package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/Pogo-Stickman/internal/sim"
)

var hudFace = text.NewGoXFace(basicfont.Face7x13)

var (
	hudPanel   = color.RGBA{R: 10, G: 12, B: 24, A: 190}
	hudBorder  = color.RGBA{R: 60, G: 70, B: 120, A: 200}
	hudPlaying = color.RGBA{R: 245, G: 245, B: 247, A: 255}
	hudVictory = color.RGBA{R: 120, G: 230, B: 140, A: 255}
	hudFail    = color.RGBA{R: 255, G: 96, B: 118, A: 255}
)

// drawLabel draws s with its top-left corner at (x,y).
func drawLabel(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, hudFace, op)
}

func statusColor(s sim.Status) color.RGBA {
	switch s {
	case sim.StatusVictory:
		return hudVictory
	case sim.StatusFail:
		return hudFail
	default:
		return hudPlaying
	}
}

// hudStats is the time/distance line, e.g. "Time: 3.2s · Distance to finish: 1840px".
func hudStats(snap sim.Snapshot) string {
	return fmt.Sprintf("Time: %.1fs · Distance to finish: %.0fpx", snap.Elapsed, snap.DistanceToFinish)
}

func (g *Game) drawHUD(screen *ebiten.Image, snap sim.Snapshot) {
	const (
		padX  = 8
		lineH = 16
	)
	w := float32(screenWidth - tickerWidth - 24)
	vector.FillRect(screen, 8, 8, w, lineH*2+10, hudPanel, false)
	vector.StrokeRect(screen, 8, 8, w, lineH*2+10, 1, hudBorder, false)
	drawLabel(screen, snap.StatusLine, 8+padX, 12, statusColor(snap.Status))
	drawLabel(screen, hudStats(snap), 8+padX, 12+lineH, hudPlaying)

	if g.showHelp {
		ebitenutil.DebugPrintAt(screen, "arrows/AD lean  up/W/space bounce  R reset  C copy report  M mute  H help", 10, screenHeight-20)
	}
	if g.flash != "" {
		drawLabel(screen, g.flash, 16, 56, hudPlaying)
	}
}

// drawBanner centres the outcome message over the dimmed playfield.
func drawBanner(screen *ebiten.Image, snap sim.Snapshot) {
	w, _ := text.Measure(snap.StatusLine, hudFace, 0)
	x := (float64(screenWidth) - w*2) / 2
	op := &text.DrawOptions{}
	op.GeoM.Scale(2, 2)
	op.GeoM.Translate(x, float64(screenHeight)/2-16)
	op.ColorScale.ScaleWithColor(statusColor(snap.Status))
	text.Draw(screen, snap.StatusLine, hudFace, op)
}
