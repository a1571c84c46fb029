package core

// Action is a semantic input, decoupled from physical keys.
type Action uint8

const (
	ActionNone    Action = iota
	ActionLeft           // h, Left arrow
	ActionRight          // l, Right arrow
	ActionSlice          // Space
	ActionBoost          // a
	ActionPause          // Escape, p
	ActionConfirm        // Enter
	ActionRestart        // r
	ActionBack           // b
	ActionQuit           // q, Ctrl+C
	actionCount
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
	case ActionSlice:
		return "Slice"
	case ActionBoost:
		return "Boost"
	case ActionPause:
		return "Pause"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input state for one simulation tick.
//
// Pressed actions are edge-triggered: they fire once on the tick the key went
// down. Held actions are level-triggered and stay set for as long as the
// platform considers the key down; movement reads them.
type InputFrame struct {
	pressed uint32
	held    uint32
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Press marks a just-pressed action. A pressed action also counts as held.
func (f *InputFrame) Press(a Action) {
	f.pressed |= 1 << a
	f.held |= 1 << a
}

// Hold marks an action as held without a fresh press.
func (f *InputFrame) Hold(a Action) {
	f.held |= 1 << a
}

// Pressed reports whether the action went down this tick.
func (f InputFrame) Pressed(a Action) bool {
	return f.pressed&(1<<a) != 0
}

// Held reports whether the action is currently down.
func (f InputFrame) Held(a Action) bool {
	return f.held&(1<<a) != 0
}

// Empty reports whether nothing is pressed or held.
func (f InputFrame) Empty() bool {
	return f.pressed == 0 && f.held == 0
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	f.pressed, f.held = 0, 0
}
