package core

// EventKind identifies a gameplay event reported by a simulation tick.
type EventKind int

const (
	EventJump EventKind = iota + 1
	EventPickup
	EventDamage
	EventDeath
	EventFinish
	EventPhase
)

// String returns the event name used in logs.
func (k EventKind) String() string {
	switch k {
	case EventJump:
		return "jump"
	case EventPickup:
		return "pickup"
	case EventDamage:
		return "damage"
	case EventDeath:
		return "death"
	case EventFinish:
		return "finish"
	case EventPhase:
		return "phase"
	default:
		return "unknown"
	}
}

// Event is a discrete occurrence inside one tick. The platform layer uses
// events for sound cues and logging; they carry no gameplay effect.
type Event struct {
	Kind   EventKind
	Detail string // pickup kind, new phase name, damage source
}
