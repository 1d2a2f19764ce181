package core

// Action represents a semantic game action, abstracted from physical key presses.
// Drivers translate keys or buttons into actions; the simulation only sees actions.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - walk left
	ActionRight          // D, Right arrow - walk right
	ActionJump           // Space, W, Up - jump or swim up
	ActionFire           // I/J/K/L, mouse click - fire the mining gun toward InputFrame.Aim
	ActionRestart        // R key - start a new run
	ActionQuit           // Q, Ctrl+C - exit
	ActionPause          // P, Escape - pause/unpause
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
	case ActionFire:
		return "Fire"
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

// Aim directions in radians, screen orientation (y grows downward).
const (
	AimRight = 0.0
	AimDown  = 1.5707963267948966
	AimLeft  = 3.141592653589793
	AimUp    = -1.5707963267948966
)

// InputFrame represents the input state for one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were active this frame.
	Actions map[Action]bool
	// Aim is the firing angle in radians, read only when ActionFire is set.
	Aim float64
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Fire marks ActionFire with the given aim angle.
func (f *InputFrame) Fire(aim float64) {
	f.Set(ActionFire)
	f.Aim = aim
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Aim = 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Aim = f.Aim
	return clone
}
