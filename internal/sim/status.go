package sim

// Status is the outcome state of a run.
type Status int

const (
	StatusPlaying Status = iota
	StatusVictory
	StatusFail
)

func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusVictory:
		return "victory"
	case StatusFail:
		return "fail"
	default:
		return "unknown"
	}
}

// Terminal reports whether the run has ended.
func (s Status) Terminal() bool {
	return s == StatusVictory || s == StatusFail
}

// Outcome messages shown by the HUD.
const (
	MsgPlaying     = "Reach the finish line!"
	MsgVictory     = "Victory! Pogo Stickman survives!"
	MsgSpikesBody  = "Ouch! The spikes were unforgiving."
	MsgSpikesHead  = "Head first into spikes..."
	MsgSpikesFoot  = "Impaled! Try a softer landing."
	MsgAbyss       = "You tumbled into the abyss."
	MsgRetrySuffix = " Press R to retry."
)

// State is everything the host loop owns for one run. It is a plain value:
// Step returns a new State and never keeps references into the old one.
type State struct {
	Character Character
	Status    Status
	Message   string
	Elapsed   float64 // simulated seconds spent playing
	CameraX   float64
	Tick      int

	// Throttled presentation values, refreshed every HUDInterval.
	HUDElapsed  float64
	HUDDistance float64
	hudTimer    float64
}

// NewState builds a fresh run at the level's start point.
func NewState(lvl *Level) State {
	return State{
		Character:   NewCharacter(lvl.Start),
		Status:      StatusPlaying,
		Message:     MsgPlaying,
		HUDDistance: distanceToFinish(lvl, lvl.Start.X),
	}
}

// fail moves Playing to Fail. It returns false when the run already ended.
func (s *State) fail(msg string) bool {
	if s.Status != StatusPlaying {
		return false
	}
	s.Status = StatusFail
	s.Message = msg
	return true
}

// win moves Playing to Victory. It returns false when the run already ended.
func (s *State) win() bool {
	if s.Status != StatusPlaying {
		return false
	}
	s.Status = StatusVictory
	s.Message = MsgVictory
	return true
}

// StatusLine is the text the HUD shows for the current status.
func (s *State) StatusLine() string {
	if s.Status == StatusFail {
		return s.Message + MsgRetrySuffix
	}
	return s.Message
}
