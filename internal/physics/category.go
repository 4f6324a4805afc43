// Package physics provides the minimal 2D rigid-body model used by the game:
// category-tagged bodies with circle or rectangle shapes, explicit Euler
// integration under gravity, and shape overlap tests.
package physics

import "strings"

// Category is a set of body classification flags. A body may carry more than
// one flag and masks are combined with Union.
type Category uint32

// Body categories.
const (
	CategoryBird Category = 1 << iota
	CategoryGround
	CategoryWall
	CategoryScoreTrigger

	CategoryNone Category = 0
)

// Has reports whether every flag in other is present in c.
func (c Category) Has(other Category) bool {
	return other != CategoryNone && c&other == other
}

// Intersects reports whether c and other share at least one flag.
func (c Category) Intersects(other Category) bool {
	return c&other != 0
}

// Union returns the set of flags present in either category.
func (c Category) Union(other Category) Category {
	return c | other
}

// Without returns c with the flags of other removed.
func (c Category) Without(other Category) Category {
	return c &^ other
}

// String returns the flag names joined with "|".
func (c Category) String() string {
	if c == CategoryNone {
		return "None"
	}

	names := []struct {
		flag Category
		name string
	}{
		{CategoryBird, "Bird"},
		{CategoryGround, "Ground"},
		{CategoryWall, "Wall"},
		{CategoryScoreTrigger, "ScoreTrigger"},
	}

	var parts []string
	for _, n := range names {
		if c.Has(n.flag) {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "Unknown"
	}
	return strings.Join(parts, "|")
}
