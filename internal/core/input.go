package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move left (held)
	ActionRight          // D, Right arrow - move right (held)
	ActionJump           // Space, W, Up - jump
	ActionConfirm        // Enter - start the stage / confirm menu selection
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - reset the run
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P key - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// IsDirectional reports whether the action is a held movement key.
func (a Action) IsDirectional() bool {
	return a == ActionLeft || a == ActionRight
}

// InputFrame is the input snapshot for one simulation tick.
// Actions holds edge-triggered commands (pressed since the last tick);
// Held holds movement keys that are down for the whole tick.
type InputFrame struct {
	Actions map[Action]bool
	Held    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Hold marks a movement key as held for this frame.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// IsHeld returns true if the movement key is held this frame.
func (f InputFrame) IsHeld(a Action) bool {
	return f.Held[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	for k := range f.Held {
		delete(f.Held, k)
	}
}

// HeldInput turns discrete key presses into held-key flags.
//
// Terminals report key presses (and auto-repeats) but no key releases, so a
// press keeps its action held for holdTicks ticks; auto-repeat refreshes the
// window while the key stays down. An explicit Release ends it immediately.
type HeldInput struct {
	holdTicks int
	remaining map[Action]int
}

// DefaultHoldTicks covers the usual terminal auto-repeat delay at 60 ticks/s.
const DefaultHoldTicks = 20

// NewHeldInput creates a tracker; holdTicks <= 0 uses DefaultHoldTicks.
func NewHeldInput(holdTicks int) *HeldInput {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &HeldInput{
		holdTicks: holdTicks,
		remaining: make(map[Action]int),
	}
}

// Press starts or refreshes the hold window of a directional action.
// Pressing one direction releases the opposite one.
func (h *HeldInput) Press(a Action) {
	if !a.IsDirectional() {
		return
	}
	switch a {
	case ActionLeft:
		h.Release(ActionRight)
	case ActionRight:
		h.Release(ActionLeft)
	}
	h.remaining[a] = h.holdTicks
}

// Release drops a held action.
func (h *HeldInput) Release(a Action) {
	delete(h.remaining, a)
}

// ReleaseAll drops every held action.
func (h *HeldInput) ReleaseAll() {
	for a := range h.remaining {
		delete(h.remaining, a)
	}
}

// Apply writes the currently held actions into the frame and ages them by one tick.
func (h *HeldInput) Apply(f *InputFrame) {
	for a, n := range h.remaining {
		f.Hold(a)
		if n <= 1 {
			delete(h.remaining, a)
		} else {
			h.remaining[a] = n - 1
		}
	}
}
