package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flatLevel is a single wide platform with no hazards and a high ceiling.
func flatLevel(platforms ...Platform) *Level {
	if len(platforms) == 0 {
		platforms = []Platform{{X: 0, Y: 500, Width: 400, Height: 100, Bounce: 0.3}}
	}
	return &Level{
		Name:      "flat",
		Width:     1000,
		Ceiling:   -1000,
		Start:     Vec2{X: 200, Y: 400},
		Platforms: platforms,
		Finish:    Zone{X: 900, Y: 400, Width: 60, Height: 100},
	}
}

func TestLanding_ReflectsWithBounceCoefficient(t *testing.T) {
	for _, b := range []float64{0.28, 0.3, 0.35, 0.9} {
		lvl := flatLevel(Platform{X: 0, Y: 500, Width: 400, Height: 100, Bounce: b})
		tr := NewTestRun(WithLevel(lvl), WithStart(200, 490), WithVelocity(0, 600))
		tr.RunTicks(1)

		ch := tr.Character()
		impact := 600 + Gravity*StepTime
		assert.InDelta(t, -impact*b, ch.Vel.Y, 1e-9, "bounce %.2f", b)
		assert.InDelta(t, 500, ch.Pos.Y, 1e-9)
		assert.True(t, ch.OnGround)
	}
}

func TestLanding_SlowReboundSnapsToRest(t *testing.T) {
	tr := NewTestRun(WithLevel(flatLevel()), WithStart(200, 499.5), WithVelocity(0, 100))
	tr.RunTicks(1)

	ch := tr.Character()
	assert.Equal(t, 0.0, ch.Vel.Y)
	assert.InDelta(t, 500, ch.Pos.Y, 1e-9)
	assert.True(t, ch.OnGround)
}

func TestLanding_MovingUpIgnoresFootContact(t *testing.T) {
	tr := NewTestRun(WithLevel(flatLevel()), WithStart(200, 600), WithVelocity(0, -400))
	tr.RunTicks(1)

	ch := tr.Character()
	assert.False(t, ch.OnGround)
	assert.Less(t, ch.Vel.Y, 0.0)
}

func TestLanding_BelowCatchBandFallsThrough(t *testing.T) {
	// Foot ends 170 below the top: deeper than height 100 + catch band 60.
	tr := NewTestRun(WithLevel(flatLevel()), WithStart(200, 670), WithVelocity(0, 0))
	tr.RunTicks(1)
	assert.False(t, tr.Character().OnGround)
}

func TestLanding_FootOutsideSpan(t *testing.T) {
	tr := NewTestRun(WithLevel(flatLevel()), WithStart(420, 499), WithVelocity(0, 300))
	tr.RunTicks(1)
	assert.False(t, tr.Character().OnGround)
}

func TestPoleTip_StopsUnderPlatform(t *testing.T) {
	lvl := flatLevel(Platform{X: 0, Y: 300, Width: 400, Height: 20, Bounce: 0.3})
	tr := NewTestRun(WithLevel(lvl), WithStart(200, 340), WithVelocity(0, -300))
	tr.RunTicks(1)

	ch := tr.Character()
	assert.InDelta(t, 300+PogoLength/2, ch.Pos.Y, 1e-9)
	assert.Equal(t, 0.0, ch.Vel.Y)
	assert.False(t, ch.OnGround)
	assert.Equal(t, 1, tr.SimLog.CountCategory("contact", "pole_tip"))
}

func TestPoleTip_BodyBesidePlatform_NoContact(t *testing.T) {
	// Body spans 432..488, clear of the platform's right edge at 400.
	lvl := flatLevel(Platform{X: 0, Y: 300, Width: 400, Height: 20, Bounce: 0.3})
	tr := NewTestRun(WithLevel(lvl), WithStart(460, 340), WithVelocity(0, -300))
	tr.RunTicks(1)
	assert.Less(t, tr.Character().Vel.Y, 0.0)
}

func TestOverlappingPlatforms_IterationOrderDecides(t *testing.T) {
	soft := Platform{X: 0, Y: 500, Width: 400, Height: 100, Bounce: 0.5}
	hard := Platform{X: 0, Y: 500, Width: 400, Height: 100, Bounce: 0.2}
	impact := 600 + Gravity*StepTime

	// The first platform reflects the velocity upward, which disqualifies the
	// second one for the rest of the tick.
	a := NewTestRun(WithLevel(flatLevel(soft, hard)), WithStart(200, 490), WithVelocity(0, 600))
	a.RunTicks(1)
	assert.InDelta(t, -impact*0.5, a.Character().Vel.Y, 1e-9)

	b := NewTestRun(WithLevel(flatLevel(hard, soft)), WithStart(200, 490), WithVelocity(0, 600))
	b.RunTicks(1)
	assert.InDelta(t, -impact*0.2, b.Character().Vel.Y, 1e-9)
}

func TestOverlappingPlatforms_LaterOverridesResting(t *testing.T) {
	lower := Platform{X: 0, Y: 494, Width: 400, Height: 100, Bounce: 0.3}
	upper := Platform{X: 0, Y: 490, Width: 400, Height: 100, Bounce: 0.3}
	tr := NewTestRun(WithLevel(flatLevel(lower, upper)), WithStart(200, 494), WithVelocity(0, 0))
	tr.RunTicks(1)

	// Lower snaps the foot to 494 at rest; upper then still sees a downward-or-
	// resting foot inside its catch band and lifts it to 490.
	ch := tr.Character()
	require.True(t, ch.OnGround)
	assert.InDelta(t, 490, ch.Pos.Y, 1e-9)
	assert.Equal(t, 0.0, ch.Vel.Y)
}
