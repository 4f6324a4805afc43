package flappy

import "github.com/vovakirdan/tui-flappy/internal/physics"

// Event is the meaning of a contact between two bodies.
type Event int

const (
	Ignore Event = iota
	ScoreEvent
	LethalEvent
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case Ignore:
		return "Ignore"
	case ScoreEvent:
		return "Score"
	case LethalEvent:
		return "Lethal"
	default:
		return "Unknown"
	}
}

// Classify decides what a contact between bodies tagged a and b means.
// A score trigger wins over everything else, then the bird touching ground
// or a wall is lethal.
func Classify(a, b physics.Category) Event {
	if a.Has(physics.CategoryScoreTrigger) || b.Has(physics.CategoryScoreTrigger) {
		return ScoreEvent
	}
	pair := a.Union(b)
	if pair.Has(physics.CategoryBird) && pair.Intersects(physics.CategoryGround|physics.CategoryWall) {
		return LethalEvent
	}
	return Ignore
}
