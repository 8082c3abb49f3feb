package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Garsondee/Pogo-Stickman/internal/sim"
)

func TestRig_UprightPoleReachesHandle(t *testing.T) {
	r := newRig(sim.Pose{Pos: sim.Vec2{X: 500, Y: 470}}, 300)

	x, y := r.body.at(0, r.handleY)
	assert.InDelta(t, 200, x, 1e-4)
	assert.InDelta(t, 470-sim.PogoLength, y, 1e-4)
}

func TestRig_SpringShortensPole(t *testing.T) {
	relaxed := newRig(sim.Pose{}, 0)
	squashed := newRig(sim.Pose{SpringCompression: 1}, 0)
	assert.InDelta(t, sim.PogoLength*(1-springShrink), squashed.poleLength, 1e-9)
	assert.Less(t, squashed.poleLength, relaxed.poleLength)
}

func TestRig_TiltLeansAroundFoot(t *testing.T) {
	r := newRig(sim.Pose{Pos: sim.Vec2{X: 0, Y: 0}, Tilt: 0.5}, 0)

	fx, fy := r.body.at(0, 0)
	assert.InDelta(t, 0, fx, 1e-6)
	assert.InDelta(t, 0, fy, 1e-6)

	// positive tilt swings the top of the pole to the right
	hx, _ := r.body.at(0, r.handleY)
	assert.Greater(t, hx, float32(0))
}

func TestRig_HeadSpinsAroundNeck(t *testing.T) {
	still := newRig(sim.Pose{}, 0)
	spun := newRig(sim.Pose{Rotation: 1}, 0)

	nx, ny := still.head.at(0, 0)
	sx, sy := spun.head.at(0, 0)
	assert.InDelta(t, nx, sx, 1e-4)
	assert.InDelta(t, ny, sy, 1e-4)

	_, headStill := still.head.at(0, -sim.HeadRadius)
	_, headSpun := spun.head.at(0, -sim.HeadRadius)
	assert.NotEqual(t, headStill, headSpun)
}
