package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move cursor up
	ActionDown           // S, Down arrow - move cursor down
	ActionLeft           // A, Left arrow - move cursor left
	ActionRight          // D, Right arrow - move cursor right
	ActionReveal         // Space, Enter - reveal the tile under the cursor
	ActionReady          // Y - toggle ready (race)
	ActionStart          // N - deal a fresh board (race)
	ActionRestart        // R - restart the match
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionReveal:
		return "Reveal"
	case ActionReady:
		return "Ready"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input of a single player during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
	// Target is the tile a Reveal applies to. Nil means the player's cursor.
	Target *Coord
}

// Coord mirrors board.Coord so frontends need not import the board package.
type Coord struct {
	Row, Col int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// RevealAt marks a reveal of (row, col) for this frame.
func (f *InputFrame) RevealAt(row, col int) {
	f.Set(ActionReveal)
	f.Target = &Coord{Row: row, Col: col}
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	for _, v := range f.Actions {
		if v {
			return false
		}
	}
	return true
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	f.Target = nil
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	if f.Target != nil {
		t := *f.Target
		clone.Target = &t
	}
	return clone
}

// MultiInputFrame contains input from both seats for a single tick.
// Games consume it without knowing whether input came from a keyboard,
// a bot or a remote session.
type MultiInputFrame struct {
	ByRole map[Role]InputFrame
}

// NewMultiInputFrame creates an empty multi-input frame.
func NewMultiInputFrame() MultiInputFrame {
	return MultiInputFrame{
		ByRole: make(map[Role]InputFrame),
	}
}

// Role returns the input frame for a seat, or an empty frame.
func (m MultiInputFrame) Role(r Role) InputFrame {
	if frame, ok := m.ByRole[r]; ok {
		return frame
	}
	return NewInputFrame()
}

// SetRole sets the input frame for a seat.
func (m *MultiInputFrame) SetRole(r Role, frame InputFrame) {
	if m.ByRole == nil {
		m.ByRole = make(map[Role]InputFrame)
	}
	m.ByRole[r] = frame
}

// Clear resets all inputs for the next frame.
func (m *MultiInputFrame) Clear() {
	for r := range m.ByRole {
		frame := m.ByRole[r]
		frame.Clear()
		m.ByRole[r] = frame
	}
}

// Clone creates a deep copy of this multi-input frame.
func (m MultiInputFrame) Clone() MultiInputFrame {
	clone := NewMultiInputFrame()
	for r, frame := range m.ByRole {
		clone.ByRole[r] = frame.Clone()
	}
	return clone
}
