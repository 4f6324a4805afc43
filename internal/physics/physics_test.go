package physics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestCategoryHasAndUnion(t *testing.T) {
	mask := CategoryGround.Union(CategoryWall)

	if !mask.Has(CategoryGround) || !mask.Has(CategoryWall) {
		t.Errorf("%v should contain Ground and Wall", mask)
	}
	if mask.Has(CategoryBird) {
		t.Errorf("%v should not contain Bird", mask)
	}
	if mask.Has(CategoryNone) {
		t.Error("Has(None) should be false")
	}
	if got := mask.Without(CategoryWall); got != CategoryGround {
		t.Errorf("Without(Wall) = %v, expected Ground", got)
	}
	if got := mask.String(); got != "Ground|Wall" {
		t.Errorf("String() = %q, expected %q", got, "Ground|Wall")
	}
}

func TestIntegrateDynamicBody(t *testing.T) {
	b := &Body{Shape: Circle(1)}
	gravity := mgl64.Vec2{0, -10}

	b.Integrate(0.5, gravity)

	// v = -5, p = v*dt = -2.5
	if b.Velocity.Y() != -5 {
		t.Errorf("Velocity.Y = %v, expected -5", b.Velocity.Y())
	}
	if b.Position.Y() != -2.5 {
		t.Errorf("Position.Y = %v, expected -2.5", b.Position.Y())
	}
}

func TestIntegrateStaticBodyIsNoop(t *testing.T) {
	b := &Body{Shape: Rectangle(10, 10), Static: true, Position: mgl64.Vec2{3, 4}}
	b.Integrate(1, mgl64.Vec2{0, -10})
	b.ApplyImpulse(mgl64.Vec2{0, 100})

	if b.Position != (mgl64.Vec2{3, 4}) || b.Velocity != (mgl64.Vec2{}) {
		t.Errorf("static body moved: pos=%v vel=%v", b.Position, b.Velocity)
	}
}

func TestApplyImpulseReplacesVerticalVelocity(t *testing.T) {
	for _, prior := range []float64{-900, -10, 0, 50, 400} {
		b := &Body{Shape: Circle(1), Velocity: mgl64.Vec2{0, prior}}
		b.ApplyImpulse(mgl64.Vec2{0, 300})

		if b.Velocity.Y() != 300 {
			t.Errorf("prior %v: Velocity.Y = %v, expected 300", prior, b.Velocity.Y())
		}
	}
}

func TestOverlaps(t *testing.T) {
	rect := func(x, y, w, h float64) *Body {
		return &Body{Shape: Rectangle(w, h), Position: mgl64.Vec2{x, y}}
	}
	circle := func(x, y, r float64) *Body {
		return &Body{Shape: Circle(r), Position: mgl64.Vec2{x, y}}
	}

	tests := []struct {
		name     string
		a, b     *Body
		expected bool
	}{
		{"circle crossing rect edge", circle(0, 12, 5), rect(0, 0, 20, 20), true},
		{"circle above rect", circle(0, 20, 5), rect(0, 0, 20, 20), false},
		{"circle inside tall rect", circle(0, 0, 5), rect(0, 0, 30, 400), true},
		{"rect inside circle", rect(0, 0, 2, 2), circle(1, 1, 10), true},
		{"rects overlapping", rect(0, 0, 10, 10), rect(8, 8, 10, 10), true},
		{"rects apart", rect(0, 0, 10, 10), rect(30, 0, 10, 10), false},
		{"rect containing rect", rect(0, 0, 100, 100), rect(5, 5, 4, 4), true},
		{"circles overlapping", circle(0, 0, 5), circle(6, 0, 5), true},
		{"circles apart", circle(0, 0, 5), circle(20, 0, 5), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.a, tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := Overlaps(tc.b, tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestSeparateRestsOnTop(t *testing.T) {
	ground := &Body{Shape: Rectangle(100, 20), Position: mgl64.Vec2{50, 10}, Static: true}
	bird := &Body{Shape: Circle(5), Position: mgl64.Vec2{50, 22}, Velocity: mgl64.Vec2{0, -40}}

	if !bird.Separate(ground) {
		t.Fatal("Separate should report penetration")
	}
	if bird.Position.Y() != 25 {
		t.Errorf("bird should rest at y=25, got %v", bird.Position.Y())
	}
	if bird.Velocity.Y() != 0 {
		t.Errorf("downward velocity should be cancelled, got %v", bird.Velocity.Y())
	}
	if bird.Separate(ground) {
		t.Error("resting body should no longer penetrate")
	}
}

func TestSeparateFollowsDirectionOfMotion(t *testing.T) {
	tests := []struct {
		name     string
		y, vy    float64
		expected float64
	}{
		// Sunk below the ground's middle in a single fast step.
		{"falling deep", 4, -600, 25},
		{"falling shallow", 18, -600, 25},
		{"rising from below", 16, 300, -5},
		{"at rest near top", 18, 0, 25},
		{"at rest near bottom", 2, 0, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ground := &Body{Shape: Rectangle(100, 20), Position: mgl64.Vec2{50, 10}, Static: true}
			bird := &Body{Shape: Circle(5), Position: mgl64.Vec2{50, tt.y}, Velocity: mgl64.Vec2{0, tt.vy}}

			if !bird.Separate(ground) {
				t.Fatal("Separate should report penetration")
			}
			if math.Abs(bird.Position.Y()-tt.expected) > 1e-9 {
				t.Errorf("y = %v, expected %v", bird.Position.Y(), tt.expected)
			}
			if bird.Velocity.Y() != 0 {
				t.Errorf("velocity into the ground should be cancelled, got %v", bird.Velocity.Y())
			}
			if bird.Position.X() != 50 {
				t.Errorf("bird should not be pushed sideways, x = %v", bird.Position.X())
			}
		})
	}
}

func TestBlocksAndReports(t *testing.T) {
	bird := &Body{Category: CategoryBird, CollidesWith: CategoryGround | CategoryWall, ContactWith: CategoryGround | CategoryWall}
	wall := &Body{Category: CategoryWall}
	trigger := &Body{Category: CategoryScoreTrigger, ContactWith: CategoryBird}

	if !bird.Blocks(wall) {
		t.Error("wall should block bird")
	}
	if bird.Blocks(trigger) {
		t.Error("score trigger must never block")
	}
	if !bird.Reports(trigger) {
		t.Error("trigger contact should be reported via the trigger's mask")
	}
}
