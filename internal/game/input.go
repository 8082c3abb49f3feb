package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Pogo-Stickman/internal/sim"
)

var (
	leftKeys  = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	jumpKeys  = []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeySpace}
)

// controls maps the keyboard to sim.Input. A restart drops every held key:
// a key held through a reset is ignored until it is released.
type controls struct {
	pressed    func(ebiten.Key) bool
	suppressed map[ebiten.Key]bool
	reset      bool
}

func newControls(pressed func(ebiten.Key) bool) *controls {
	return &controls{
		pressed:    pressed,
		suppressed: make(map[ebiten.Key]bool),
	}
}

// poll runs once per frame before the stepper samples input.
func (c *controls) poll(resetPressed bool) {
	for k := range c.suppressed {
		if !c.pressed(k) {
			delete(c.suppressed, k)
		}
	}
	if resetPressed {
		c.reset = true
	}
}

// Sample implements sim.InputSource. The reset pulse is delivered once.
func (c *controls) Sample() sim.Input {
	if c.reset {
		c.reset = false
		c.suppressHeld()
		return sim.Input{Reset: true}
	}
	return sim.Input{
		Left:  c.any(leftKeys),
		Right: c.any(rightKeys),
		Jump:  c.any(jumpKeys),
	}
}

func (c *controls) any(keys []ebiten.Key) bool {
	for _, k := range keys {
		if c.pressed(k) && !c.suppressed[k] {
			return true
		}
	}
	return false
}

func (c *controls) suppressHeld() {
	for _, group := range [][]ebiten.Key{leftKeys, rightKeys, jumpKeys} {
		for _, k := range group {
			if c.pressed(k) {
				c.suppressed[k] = true
			}
		}
	}
}
