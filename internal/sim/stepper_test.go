package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func heldRight() InputSource {
	return InputFunc(func() Input { return Input{Right: true, Jump: true} })
}

// drive feeds frames of length delta until n ticks have run or the run ends.
func drive(st *Stepper, delta float64, n int) {
	for i := 0; i < 20*n && st.State().Tick < n; i++ {
		st.Tick(delta)
	}
}

func TestStepper_DeterministicAcrossFramePartitions(t *testing.T) {
	const n = 240
	d := StepTime

	a := NewStepper(DefaultLevel(), heldRight())
	drive(a, d, n)
	b := NewStepper(DefaultLevel(), heldRight())
	drive(b, d+d, n)
	c := NewStepper(DefaultLevel(), heldRight())
	drive(c, 0.004, n)

	require.Positive(t, a.State().Tick)
	require.Equal(t, a.State(), b.State())
	require.Equal(t, a.State(), c.State())
}

func TestStepper_MatchesPureStep(t *testing.T) {
	lvl := DefaultLevel()
	st := NewStepper(lvl, heldRight())
	s := NewState(lvl)
	for i := 0; i < 90; i++ {
		st.Tick(StepTime)
		s, _ = Step(s, Input{Right: true, Jump: true}, lvl)
	}
	assert.Equal(t, s, st.State())
}

func TestStepper_DeltaIsClamped(t *testing.T) {
	st := NewStepper(DefaultLevel(), nil)
	st.Tick(10)
	ticks := st.State().Tick
	assert.LessOrEqual(t, ticks, 3)
	assert.GreaterOrEqual(t, ticks, 2)

	neg := NewStepper(DefaultLevel(), nil)
	neg.Tick(-1)
	assert.Zero(t, neg.State().Tick)
}

func TestStepper_SmallDeltasAccumulate(t *testing.T) {
	st := NewStepper(DefaultLevel(), nil)
	st.Tick(0.01)
	assert.Zero(t, st.State().Tick)
	st.Tick(0.01)
	assert.Equal(t, 1, st.State().Tick)
}

func TestStepper_TerminalRunIgnoresFrames(t *testing.T) {
	lvl := DefaultLevel()
	st := NewStepper(lvl, nil)
	st.state.Character.Pos = Vec2{X: 660, Y: 440}
	st.StepOnce(Input{})
	require.Equal(t, StatusFail, st.State().Status)
	frozen := st.State()

	for i := 0; i < 30; i++ {
		st.Tick(StepTime)
	}
	assert.Equal(t, frozen, st.State())
	assert.Less(t, st.accumulator, StepTime)
}

func TestStepper_ResetInputStartsFreshRun(t *testing.T) {
	lvl := DefaultLevel()
	reset := false
	st := NewStepper(lvl, InputFunc(func() Input { return Input{Reset: reset} }))
	st.state.Character.Pos = Vec2{X: 660, Y: 440}
	st.StepOnce(Input{})
	require.Equal(t, StatusFail, st.State().Status)

	reset = true
	st.Tick(0)
	reset = false

	assert.Equal(t, NewState(lvl), st.State())
	last, ok := st.Log().LastOf("status", "reset")
	require.True(t, ok)
	assert.Equal(t, 1, last.Tick)
}

func TestStepper_ResetClearsCameraAndStats(t *testing.T) {
	st := NewStepper(DefaultLevel(), nil)
	st.state.Character.Pos.X = 1500
	for i := 0; i < 20; i++ {
		st.FollowCamera(960)
		st.StepOnce(Input{Right: true})
	}
	require.Positive(t, st.State().CameraX)
	require.Positive(t, st.Stats().AirTicks+st.Stats().GroundTicks)

	st.Reset()
	assert.Zero(t, st.State().CameraX)
	assert.Zero(t, st.Stats().AirTicks+st.Stats().GroundTicks)
}

func TestStepper_ListenersSeeEveryEvent(t *testing.T) {
	st := NewStepper(DefaultLevel(), nil)
	var kinds []EventKind
	st.OnEvent(func(e Event) { kinds = append(kinds, e.Kind) })

	st.state.Character.Pos.Y = 200
	for i := 0; i < 120; i++ {
		st.StepOnce(Input{})
	}

	require.NotEmpty(t, kinds)
	assert.Equal(t, len(st.Log().Entries()), len(kinds))
	for _, k := range kinds {
		assert.Equal(t, EventLanded, k)
	}
}

func TestStepper_VerboseLogRecordsProbes(t *testing.T) {
	st := NewStepper(DefaultLevel(), nil)
	st.SetLog(NewSimLog(true))
	st.StepOnce(Input{})
	st.StepOnce(Input{})

	assert.Equal(t, 2, st.Log().CountCategory("probe", "position"))
	assert.Equal(t, 2, st.Log().CountCategory("probe", "velocity"))
}

func TestSnapshot_HUDValuesAreThrottled(t *testing.T) {
	st := NewStepper(DefaultLevel(), nil)
	snap := st.Snapshot()
	assert.Equal(t, MsgPlaying, snap.StatusLine)
	assert.Equal(t, 2030.0, snap.DistanceToFinish)
	assert.Zero(t, snap.Elapsed)

	for i := 0; i < 7; i++ {
		st.StepOnce(Input{})
	}
	assert.Zero(t, st.Snapshot().Elapsed)
	assert.Positive(t, st.State().Elapsed)

	st.StepOnce(Input{})
	assert.InDelta(t, 8*StepTime, st.Snapshot().Elapsed, 1e-9)
}

func TestSnapshot_FailLineHasRetryHint(t *testing.T) {
	st := NewStepper(DefaultLevel(), nil)
	st.state.Character.Pos = Vec2{X: 660, Y: 440}
	st.StepOnce(Input{})

	snap := st.Snapshot()
	assert.Equal(t, StatusFail, snap.Status)
	assert.Equal(t, MsgSpikesBody+MsgRetrySuffix, snap.StatusLine)
}
