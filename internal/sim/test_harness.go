package sim

// TestRun is a headless harness used by tests and the headless report. It
// drives a Stepper one fixed sub-step at a time from a scripted input.
type TestRun struct {
	Stepper *Stepper
	SimLog  *SimLog

	level  *Level
	script func(tick int) Input
	start  *Vec2
	vel    Vec2
}

// runOptionKind controls the pass in which an option is applied.
type runOptionKind int

const (
	runOptInfra     runOptionKind = iota // level, log, script: applied before the stepper exists
	runOptCharacter                      // start position, velocity: applied to the fresh state
)

// RunOption is a builder function applied to a TestRun during construction.
type RunOption struct {
	kind runOptionKind
	fn   func(*TestRun)
}

// WithLevel plays lvl instead of the built-in level.
func WithLevel(lvl *Level) RunOption {
	return RunOption{runOptInfra, func(tr *TestRun) {
		tr.level = lvl
	}}
}

// WithVerbose enables per-tick probe logging.
func WithVerbose(v bool) RunOption {
	return RunOption{runOptInfra, func(tr *TestRun) {
		tr.SimLog = NewSimLog(v)
	}}
}

// WithInputScript supplies the input for each tick (1-based).
func WithInputScript(script func(tick int) Input) RunOption {
	return RunOption{runOptInfra, func(tr *TestRun) {
		tr.script = script
	}}
}

// WithHeldInput holds the same input for the whole run.
func WithHeldInput(in Input) RunOption {
	return WithInputScript(func(int) Input { return in })
}

// WithStart places the character at (x,y) instead of the level start.
func WithStart(x, y float64) RunOption {
	return RunOption{runOptCharacter, func(tr *TestRun) {
		tr.start = &Vec2{X: x, Y: y}
	}}
}

// WithVelocity gives the character an initial velocity.
func WithVelocity(vx, vy float64) RunOption {
	return RunOption{runOptCharacter, func(tr *TestRun) {
		tr.vel = Vec2{X: vx, Y: vy}
	}}
}

// NewTestRun constructs a TestRun from the given options in two passes:
//  1. Infrastructure (level, log, input script), then the stepper is built
//  2. Character placement
func NewTestRun(opts ...RunOption) *TestRun {
	tr := &TestRun{
		level:  DefaultLevel(),
		SimLog: NewSimLog(false),
		script: func(int) Input { return Input{} },
	}
	for _, o := range opts {
		if o.kind == runOptInfra {
			o.fn(tr)
		}
	}
	tr.Stepper = NewStepper(tr.level, nil)
	tr.Stepper.SetLog(tr.SimLog)
	for _, o := range opts {
		if o.kind == runOptCharacter {
			o.fn(tr)
		}
	}
	if tr.start != nil {
		tr.Stepper.state.Character.Pos = *tr.start
		tr.Stepper.stats = newRunStats(*tr.start)
	}
	tr.Stepper.state.Character.Vel = tr.vel
	return tr
}

// RunTicks advances the run n fixed sub-steps.
func (tr *TestRun) RunTicks(n int) {
	for i := 0; i < n; i++ {
		tr.stepOne()
	}
}

// RunUntil advances up to maxTicks sub-steps, stopping early once predicate
// returns true. Returns the tick at which the predicate held, or -1.
func (tr *TestRun) RunUntil(predicate func(State) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		tr.stepOne()
		if predicate(tr.Stepper.State()) {
			return tr.Stepper.State().Tick
		}
	}
	return -1
}

func (tr *TestRun) stepOne() {
	tick := tr.Stepper.State().Tick + 1
	tr.Stepper.StepOnce(tr.script(tick))
}

// State returns the current run state.
func (tr *TestRun) State() State {
	return tr.Stepper.State()
}

// Character returns the current character.
func (tr *TestRun) Character() Character {
	return tr.Stepper.State().Character
}

// Report builds the run report.
func (tr *TestRun) Report() RunReport {
	return BuildRunReport(tr.Stepper)
}
