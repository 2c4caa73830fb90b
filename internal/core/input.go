package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone     Action = iota
	ActionActivate        // Space, Up, W - start the run, then flap
	ActionQuit            // Q, Esc, Ctrl+C, window close - stop the run
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionActivate:
		return "Activate"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds every action delivered since the previous tick, in arrival order.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates a frame holding the given actions.
func NewInputFrame(actions ...Action) InputFrame {
	return InputFrame{Actions: actions}
}

// Set appends an action to the frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.Actions {
		if got == a {
			return true
		}
	}
	return false
}

// Empty reports whether no action arrived this frame.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}

// InputQueue buffers actions between ticks. It is not safe for concurrent use;
// frontends with a reader goroutine feed a channel instead.
type InputQueue struct {
	pending []Action
}

// Push records an action for the next poll.
func (q *InputQueue) Push(a Action) {
	if a == ActionNone {
		return
	}
	q.pending = append(q.pending, a)
}

// Poll drains all pending actions into a frame.
func (q *InputQueue) Poll() InputFrame {
	if len(q.pending) == 0 {
		return InputFrame{}
	}
	frame := InputFrame{Actions: make([]Action, len(q.pending))}
	copy(frame.Actions, q.pending)
	q.pending = q.pending[:0]
	return frame
}

// Len returns the number of pending actions.
func (q *InputQueue) Len() int {
	return len(q.pending)
}
