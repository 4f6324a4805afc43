package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone       Action = iota
	ActionFlap              // Space, W, Up, mouse click - the single primary action
	ActionPause             // P, Escape - pause/unpause ticking
	ActionScoreboard        // Tab - open the scoreboard
	ActionQuit              // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionPause:
		return "Pause"
	case ActionScoreboard:
		return "Scoreboard"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the input observed between two simulation ticks.
// Flap presses are counted rather than flagged so that two taps inside one
// frame are both delivered to the game in order.
type InputFrame struct {
	Actions map[Action]int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]int),
	}
}

// Set records one occurrence of an action for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]int)
	}
	f.Actions[a]++
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Count(a) > 0
}

// Count returns how many times the action was triggered this frame.
func (f InputFrame) Count(a Action) int {
	if f.Actions == nil {
		return 0
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
