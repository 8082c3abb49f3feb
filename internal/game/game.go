// Package game hosts the pogo simulation in an ebiten window: it samples the
// keyboard, feeds wall-clock frame time to the stepper, and draws snapshots.
package game

import (
	"log"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Garsondee/Pogo-Stickman/internal/audio"
	"github.com/Garsondee/Pogo-Stickman/internal/sim"
)

const (
	screenWidth  = 960
	screenHeight = 540

	// flashFrames is how long a one-line notice stays on screen.
	flashFrames = 120
)

// Game implements ebiten.Game.
type Game struct {
	stepper *sim.Stepper
	keys    *controls
	ticker  *EventTicker
	sound   *audio.SoundManager

	lastUpdate time.Time
	showHelp   bool
	flash      string
	flashLeft  int

	// copyText writes to the system clipboard; replaced in tests.
	copyText func(string) error
}

// New creates a game for lvl. sound may be nil to run silently.
func New(lvl *sim.Level, sound *audio.SoundManager) *Game {
	g := &Game{
		keys:     newControls(ebiten.IsKeyPressed),
		ticker:   NewEventTicker(),
		sound:    sound,
		showHelp: true,
		copyText: clipboard.WriteAll,
	}
	g.stepper = sim.NewStepper(lvl, g.keys)
	g.stepper.OnEvent(g.ticker.Add)
	g.stepper.OnEvent(g.logOutcome)
	if sound != nil {
		g.stepper.OnEvent(sound.HandleEvent)
	}
	return g
}

func (g *Game) Update() error {
	now := time.Now()
	delta := 0.0
	if !g.lastUpdate.IsZero() {
		delta = now.Sub(g.lastUpdate).Seconds()
	}
	g.lastUpdate = now

	g.handleInput()
	g.stepper.Tick(delta)
	g.stepper.FollowCamera(screenWidth)

	if g.flashLeft > 0 {
		g.flashLeft--
		if g.flashLeft == 0 {
			g.flash = ""
		}
	}
	return nil
}

// handleInput processes the edge-triggered host keys. Movement keys are
// sampled by the stepper through g.keys.
func (g *Game) handleInput() {
	g.keys.poll(inpututil.IsKeyJustPressed(ebiten.KeyR))

	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copyReport()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHelp = !g.showHelp
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && g.sound != nil {
		g.sound.SetMuted(!g.sound.Muted())
		if g.sound.Muted() {
			g.notify("sound off")
		} else {
			g.notify("sound on")
		}
	}
}

// copyReport puts the current run report on the clipboard.
func (g *Game) copyReport() {
	report := sim.BuildRunReport(g.stepper).Format()
	if err := g.copyText(report); err != nil {
		log.Printf("clipboard: %v", err)
		g.notify("could not copy report")
		return
	}
	g.notify("run report copied to clipboard")
}

func (g *Game) notify(msg string) {
	g.flash = msg
	g.flashLeft = flashFrames
}

func (g *Game) logOutcome(e sim.Event) {
	switch e.Kind {
	case sim.EventFail, sim.EventVictory:
		log.Printf("run ended at tick %d: %s", e.Tick, e.Message)
	case sim.EventReset:
		log.Printf("run reset after %d ticks", e.Tick)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.stepper.Snapshot()
	lvl := g.stepper.Level()

	drawSky(screen)
	drawClouds(screen, snap.CameraX, lvl.Width)
	drawPlatforms(screen, lvl, snap.CameraX)
	drawHazards(screen, lvl, snap.CameraX)
	drawFinish(screen, lvl, snap.CameraX)
	drawRider(screen, snap.Pose, snap.CameraX)

	if snap.Status.Terminal() {
		drawDim(screen)
		drawBanner(screen, snap)
	}
	g.drawHUD(screen, snap)
	g.ticker.Draw(screen, screenWidth-8, 8)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return screenWidth, screenHeight
}

// ScreenSize returns the logical window size.
func ScreenSize() (int, int) {
	return screenWidth, screenHeight
}
