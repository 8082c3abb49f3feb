package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Pogo-Stickman/internal/sim"
)

const (
	tickerWidth      = 230
	tickerMaxEntries = 8
	tickerLineHeight = 14
)

// TickerEntry is a single line in the event ticker.
type TickerEntry struct {
	Tick    int
	Kind    sim.EventKind
	Message string
}

// EventTicker is a ring buffer of recent run events rendered in a corner panel.
type EventTicker struct {
	entries []TickerEntry
	head    int
	count   int
}

// NewEventTicker creates a ticker with a fixed capacity.
func NewEventTicker() *EventTicker {
	return &EventTicker{
		entries: make([]TickerEntry, tickerMaxEntries),
	}
}

// Add appends an event. Resets clear the panel so it only shows the current run.
func (et *EventTicker) Add(e sim.Event) {
	if e.Kind == sim.EventReset {
		et.head, et.count = 0, 0
	}
	et.entries[et.head] = TickerEntry{
		Tick:    e.Tick,
		Kind:    e.Kind,
		Message: tickerText(e),
	}
	et.head = (et.head + 1) % tickerMaxEntries
	if et.count < tickerMaxEntries {
		et.count++
	}
}

// Recent returns entries in chronological order (oldest first).
func (et *EventTicker) Recent() []TickerEntry {
	result := make([]TickerEntry, et.count)
	for i := 0; i < et.count; i++ {
		idx := (et.head - et.count + i + tickerMaxEntries) % tickerMaxEntries
		result[i] = et.entries[idx]
	}
	return result
}

func tickerText(e sim.Event) string {
	switch e.Kind {
	case sim.EventLanded:
		return fmt.Sprintf("boing %.0f", e.Value)
	case sim.EventJumped:
		return "hop!"
	case sim.EventBonk:
		return "bonk"
	case sim.EventPoleTip:
		return "pole caught"
	case sim.EventReset:
		return "new run"
	default:
		return e.Message
	}
}

func tickerColor(k sim.EventKind) color.RGBA {
	switch k {
	case sim.EventFail:
		return color.RGBA{R: 255, G: 96, B: 118, A: 255}
	case sim.EventVictory:
		return color.RGBA{R: 120, G: 230, B: 140, A: 255}
	case sim.EventJumped:
		return color.RGBA{R: 255, G: 217, B: 91, A: 255}
	default:
		return color.RGBA{R: 160, G: 167, B: 255, A: 255}
	}
}

// Draw renders the panel with its top-right corner at (right, top).
func (et *EventTicker) Draw(screen *ebiten.Image, right, top int) {
	entries := et.Recent()
	if len(entries) == 0 {
		return
	}
	x := float32(right - tickerWidth)
	h := float32(len(entries)*tickerLineHeight + 8)
	vector.FillRect(screen, x, float32(top), tickerWidth, h, color.RGBA{R: 10, G: 12, B: 24, A: 170}, false)
	vector.StrokeRect(screen, x, float32(top), tickerWidth, h, 1, color.RGBA{R: 60, G: 70, B: 120, A: 200}, false)

	y := top + 4
	for i, e := range entries {
		// newest entry gets a highlight bar
		if i == len(entries)-1 {
			vector.FillRect(screen, x+2, float32(y), tickerWidth-4, tickerLineHeight, color.RGBA{R: 40, G: 46, B: 80, A: 160}, false)
		}
		vector.FillRect(screen, x+5, float32(y+4), 3, 6, tickerColor(e.Kind), false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%4d %s", e.Tick, e.Message), int(x)+12, y-1)
		y += tickerLineHeight
	}
}
