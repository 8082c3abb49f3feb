package sim

// EventKind identifies something noteworthy that happened during a tick.
type EventKind int

const (
	EventLanded  EventKind = iota // foot contact; Value = impact speed
	EventPoleTip                  // pole tip stopped under a platform
	EventJumped                   // take-off; Value = horizontal speed after the kick
	EventBonk                     // head hit the ceiling; Value = overlap pushed back
	EventFail                     // Message carries the reason
	EventVictory
	EventReset
)

func (k EventKind) String() string {
	switch k {
	case EventLanded:
		return "landed"
	case EventPoleTip:
		return "pole_tip"
	case EventJumped:
		return "jumped"
	case EventBonk:
		return "bonk"
	case EventFail:
		return "fail"
	case EventVictory:
		return "victory"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Category groups kinds for log filtering.
func (k EventKind) Category() string {
	switch k {
	case EventLanded, EventPoleTip, EventBonk:
		return "contact"
	case EventJumped:
		return "move"
	default:
		return "status"
	}
}

// Event is emitted by Step. Tick is the tick number the event happened on.
type Event struct {
	Tick    int
	Kind    EventKind
	Value   float64
	Message string
}
