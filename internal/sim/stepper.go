package sim

import "fmt"

// Scheduler is driven once per presentation frame with the wall-clock time
// since the previous frame.
type Scheduler interface {
	Tick(deltaSeconds float64)
}

// InputSource supplies the current control state. The stepper samples it
// once per fixed sub-step.
type InputSource interface {
	Sample() Input
}

// InputFunc adapts a function to InputSource.
type InputFunc func() Input

// Sample implements InputSource.
func (f InputFunc) Sample() Input { return f() }

// Stepper converts variable frame deltas into fixed sub-steps and owns the
// single State of the active run.
type Stepper struct {
	level       *Level
	input       InputSource
	state       State
	accumulator float64
	log         *SimLog
	stats       RunStats
	listeners   []func(Event)
}

// NewStepper creates a stepper for lvl. A nil input source means no input.
func NewStepper(lvl *Level, input InputSource) *Stepper {
	if input == nil {
		input = InputFunc(func() Input { return Input{} })
	}
	return &Stepper{
		level: lvl,
		input: input,
		state: NewState(lvl),
		log:   NewSimLog(false),
		stats: newRunStats(lvl.Start),
	}
}

// SetLog replaces the event log.
func (st *Stepper) SetLog(log *SimLog) {
	st.log = log
}

// Log returns the event log.
func (st *Stepper) Log() *SimLog {
	return st.log
}

// OnEvent registers a callback invoked synchronously for every event.
func (st *Stepper) OnEvent(fn func(Event)) {
	st.listeners = append(st.listeners, fn)
}

// Tick implements Scheduler. delta is clamped to [0, MaxFrameTime] so a long
// pause cannot trigger a runaway catch-up.
func (st *Stepper) Tick(delta float64) {
	in := st.input.Sample()
	if in.Reset {
		st.Reset()
	}

	st.accumulator += clamp(delta, 0, MaxFrameTime)
	for st.accumulator >= StepTime {
		st.step(st.input.Sample())
		st.accumulator -= StepTime
	}
}

// StepOnce runs exactly one fixed sub-step with the given input, bypassing
// the accumulator.
func (st *Stepper) StepOnce(in Input) {
	st.step(in)
}

func (st *Stepper) step(in Input) {
	if st.state.Status != StatusPlaying {
		return
	}
	next, events := Step(st.state, in, st.level)
	st.state = next
	st.stats.observe(&next.Character)
	for _, e := range events {
		st.record(e)
	}
	if st.log != nil && st.log.Verbose() {
		ch := next.Character
		st.log.AddVerbose(next.Tick, "probe", "position", fmt.Sprintf("(%.1f,%.1f)", ch.Pos.X, ch.Pos.Y), ch.Pos.Y)
		st.log.AddVerbose(next.Tick, "probe", "velocity", fmt.Sprintf("(%.1f,%.1f)", ch.Vel.X, ch.Vel.Y), ch.Vel.Y)
	}
}

// Reset discards the current run and starts a fresh one, camera included.
// The accumulator is kept so frame pacing is unaffected.
func (st *Stepper) Reset() {
	prevTick := st.state.Tick
	st.state = NewState(st.level)
	st.stats = newRunStats(st.level.Start)
	st.record(Event{Tick: prevTick, Kind: EventReset})
}

func (st *Stepper) record(e Event) {
	if st.log != nil {
		st.log.AddEvent(e)
	}
	for _, fn := range st.listeners {
		fn(e)
	}
}

// FollowCamera advances the camera one render frame toward the character.
// It only touches CameraX and is never read by physics.
func (st *Stepper) FollowCamera(viewportWidth float64) {
	cam := Camera{X: st.state.CameraX}
	cam.Follow(st.state.Character.Pos.X, viewportWidth, st.level.Width)
	st.state.CameraX = cam.X
}

// State returns a copy of the current run state.
func (st *Stepper) State() State {
	return st.state
}

// Level returns the level being played.
func (st *Stepper) Level() *Level {
	return st.level
}

// Stats returns the running statistics of the current run.
func (st *Stepper) Stats() RunStats {
	return st.stats
}

// Snapshot returns the read-only view handed to rendering and the HUD.
func (st *Stepper) Snapshot() Snapshot {
	return NewSnapshot(st.state)
}
