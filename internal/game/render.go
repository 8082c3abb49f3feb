package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Pogo-Stickman/internal/sim"
)

var (
	skyTop       = color.RGBA{R: 109, G: 192, B: 255, A: 255}
	skyHorizon   = color.RGBA{R: 142, G: 215, B: 255, A: 255}
	duskTop      = color.RGBA{R: 60, G: 75, B: 138, A: 255}
	duskBottom   = color.RGBA{R: 21, G: 26, B: 51, A: 255}
	cloudColor   = color.RGBA{R: 255, G: 255, B: 255, A: 90}
	platformBody = color.RGBA{R: 48, G: 55, B: 90, A: 255}
	platformTop  = color.RGBA{R: 108, G: 122, B: 224, A: 255}
	platformTile = color.RGBA{R: 255, G: 255, B: 255, A: 46}
	spikeFill    = color.RGBA{R: 255, G: 96, B: 118, A: 255}
	spikeEdge    = color.RGBA{R: 255, G: 226, B: 226, A: 255}
	finishPost   = color.RGBA{R: 103, G: 93, B: 255, A: 255}
	finishBase   = color.RGBA{R: 47, G: 42, B: 106, A: 255}
	poleColor    = color.RGBA{R: 245, G: 245, B: 247, A: 255}
	torsoColor   = color.RGBA{R: 255, G: 183, B: 77, A: 255}
	headColor    = color.RGBA{R: 255, G: 217, B: 91, A: 255}
	eyeColor     = color.RGBA{R: 28, G: 31, B: 46, A: 255}
	mouthColor   = color.RGBA{R: 244, G: 125, B: 125, A: 255}
	legColor     = color.RGBA{R: 160, G: 167, B: 255, A: 255}
	dimColor     = color.RGBA{R: 6, G: 8, B: 18, A: 140}
)

const (
	horizon      = 0.45 // fraction of the screen height where the sky turns to dusk
	skyBand      = 6
	cloudCount   = 6
	cloudSpacing = 380
	cloudDrift   = 0.4
	tileSize     = 28
)

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*t) }
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 255}
}

func drawSky(screen *ebiten.Image) {
	split := int(float64(screenHeight) * horizon)
	for y := 0; y < screenHeight; y += skyBand {
		var c color.RGBA
		if y < split {
			c = lerpColor(skyTop, skyHorizon, float64(y)/float64(split))
		} else {
			c = lerpColor(duskTop, duskBottom, float64(y-split)/float64(screenHeight-split))
		}
		vector.FillRect(screen, 0, float32(y), screenWidth, skyBand, c, false)
	}
}

// cloudX returns the world x of cloud i; clouds drift slower than the camera.
func cloudX(i int, cameraX, levelWidth float64) float64 {
	return math.Mod(float64(i*cloudSpacing)+cameraX*cloudDrift, levelWidth+400) - 200
}

func drawClouds(screen *ebiten.Image, cameraX, levelWidth float64) {
	for i := 0; i < cloudCount; i++ {
		x := float32(cloudX(i, cameraX, levelWidth) - cameraX)
		y := float32(180)
		for _, puff := range [][3]float32{{0, 0, 48}, {-50, 6, 36}, {58, -8, 40}, {100, 2, 28}, {-92, 8, 24}} {
			vector.FillCircle(screen, x+puff[0], y+puff[1], puff[2], cloudColor, true)
		}
	}
}

func drawPlatforms(screen *ebiten.Image, lvl *sim.Level, cameraX float64) {
	for _, p := range lvl.Platforms {
		x := float32(p.X - cameraX)
		if x > screenWidth || x+float32(p.Width) < 0 {
			continue
		}
		top := float32(p.Y)
		vector.FillRect(screen, x, top, float32(p.Width), float32(p.Height), platformBody, false)
		vector.FillRect(screen, x, top-8, float32(p.Width), 14, platformTop, false)
		for i := float32(0); i < float32(p.Width); i += tileSize {
			vector.FillRect(screen, x+i, top-8, tileSize/2, 14, platformTile, false)
		}
	}
}

func drawHazards(screen *ebiten.Image, lvl *sim.Level, cameraX float64) {
	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(spikeFill)
	for _, h := range lvl.Hazards {
		count := max(3, int(h.Width/18))
		w := float32(h.Width) / float32(count)
		base := float32(h.Y)
		peak := float32(h.Top())
		for i := 0; i < count; i++ {
			left := float32(h.X-cameraX) + float32(i)*w
			var path vector.Path
			path.MoveTo(left, base)
			path.LineTo(left+w/2, peak)
			path.LineTo(left+w, base)
			path.Close()
			vector.FillPath(screen, &path, &vector.FillOptions{}, op)
			vector.StrokeLine(screen, left, base, left+w/2, peak, 2, spikeEdge, true)
			vector.StrokeLine(screen, left+w/2, peak, left+w, base, 2, spikeEdge, true)
		}
	}
}

func drawFinish(screen *ebiten.Image, lvl *sim.Level, cameraX float64) {
	f := lvl.Finish
	x := float32(f.X - cameraX)
	vector.FillRect(screen, x, float32(f.Y), float32(f.Width), float32(f.Height), finishPost, false)
	vector.FillRect(screen, x-12, float32(f.Y+f.Height-16), float32(f.Width)+24, 16, finishBase, false)
	drawLabel(screen, "FINISH", float64(x)+f.Width/2-21, f.Y+30, color.White)
}

func drawRider(screen *ebiten.Image, p sim.Pose, cameraX float64) {
	r := newRig(p, cameraX)
	b := r.body

	fx, fy := b.at(0, 0)
	hx, hy := b.at(0, r.handleY)
	vector.StrokeLine(screen, fx, fy, hx, hy, 9, poleColor, true)

	// handlebar
	lx, ly := b.at(-24, r.handleY)
	rx, ry := b.at(24, r.handleY)
	vector.StrokeLine(screen, lx, ly, rx, ry, 12, poleColor, true)

	// legs down to the foot pegs
	for _, side := range []float64{-1, 1} {
		x0, y0 := b.at(12*side, r.handleY+sim.BodyRadius)
		x1, y1 := b.at(46*side, r.handleY+sim.BodyRadius+36)
		vector.StrokeLine(screen, x0, y0, x1, y1, 6, legColor, true)
	}

	tx, ty := b.at(0, r.torsoY+sim.BodyRadius)
	vector.FillCircle(screen, tx, ty, sim.BodyRadius+2, torsoColor, true)

	// arms up to the grips
	for _, side := range []float64{-1, 1} {
		x0, y0 := b.at(16*side, r.handleY-20)
		x1, y1 := b.at(48*side, r.handleY-44)
		vector.StrokeLine(screen, x0, y0, x1, y1, 10, headColor, true)
	}

	h := r.head
	cx, cy := h.at(0, -sim.HeadRadius)
	vector.FillCircle(screen, cx, cy, sim.HeadRadius, headColor, true)
	for _, side := range []float64{-6, 6} {
		ex, ey := h.at(side, -sim.HeadRadius-3)
		vector.FillCircle(screen, ex, ey, 4, eyeColor, true)
	}
	mx, my := h.at(0, -sim.HeadRadius+7)
	vector.FillCircle(screen, mx, my, 5, mouthColor, true)
}

func drawDim(screen *ebiten.Image) {
	vector.FillRect(screen, 0, 0, screenWidth, screenHeight, dimColor, false)
}
