package game

import (
	"math"

	"github.com/Garsondee/Pogo-Stickman/internal/sim"
)

// rigFrame maps points in a rotated local frame to screen space.
type rigFrame struct {
	ox, oy   float64
	cos, sin float64
}

func newRigFrame(ox, oy, angle float64) rigFrame {
	return rigFrame{ox: ox, oy: oy, cos: math.Cos(angle), sin: math.Sin(angle)}
}

func (f rigFrame) at(lx, ly float64) (float32, float32) {
	return float32(f.ox + lx*f.cos - ly*f.sin), float32(f.oy + lx*f.sin + ly*f.cos)
}

// child returns a frame anchored at local (lx,ly) with an extra rotation.
func (f rigFrame) child(lx, ly, angle float64) rigFrame {
	x, y := f.at(lx, ly)
	return newRigFrame(float64(x), float64(y), math.Atan2(f.sin, f.cos)+angle)
}

// rig is the stick figure laid out from a pose. The whole figure leans by
// the tilt around the foot; the head spins by the rotation around the neck.
type rig struct {
	body       rigFrame
	head       rigFrame
	handleY    float64
	torsoY     float64
	poleLength float64
}

// springShrink is how much of the pole a full compression hides.
const springShrink = 0.35

func newRig(p sim.Pose, cameraX float64) rig {
	length := sim.PogoLength * (1 - p.SpringCompression*springShrink)
	handleY := -length
	torsoY := handleY - sim.BodyRadius*2
	body := newRigFrame(p.Pos.X-cameraX, p.Pos.Y, p.Tilt)
	return rig{
		body:       body,
		head:       body.child(0, torsoY-sim.BodyRadius, p.Rotation),
		handleY:    handleY,
		torsoY:     torsoY,
		poleLength: length,
	}
}
