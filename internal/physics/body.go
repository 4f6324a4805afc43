package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// BodyID uniquely identifies a body within a world.
type BodyID uint64

// Body is a minimal rigid body. Position is the shape's center in world
// units with y pointing up.
type Body struct {
	ID       BodyID
	Position mgl64.Vec2
	Velocity mgl64.Vec2
	Rotation float64 // radians, visual only
	Shape    Shape

	Category     Category // what this body is
	CollidesWith Category // categories that physically block this body
	ContactWith  Category // categories whose overlap is reported as a contact

	// Static bodies never move under gravity or impulses.
	Static bool
}

// Integrate advances a dynamic body by dt seconds under the given gravity
// using semi-implicit Euler: velocity first, then position.
func (b *Body) Integrate(dt float64, gravity mgl64.Vec2) {
	if b.Static || dt <= 0 {
		return
	}
	b.Velocity = b.Velocity.Add(gravity.Mul(dt))
	b.Position = b.Position.Add(b.Velocity.Mul(dt))
}

// ApplyImpulse applies an instantaneous change of velocity. The vertical
// component replaces the current vertical velocity instead of adding to it,
// so repeated taps while falling never accumulate.
func (b *Body) ApplyImpulse(impulse mgl64.Vec2) {
	if b.Static {
		return
	}
	b.Velocity = mgl64.Vec2{b.Velocity.X() + impulse.X(), impulse.Y()}
}

// ResetVelocity stops the body.
func (b *Body) ResetVelocity() {
	b.Velocity = mgl64.Vec2{}
}

// Translate moves the body by (dx, dy) regardless of Static.
func (b *Body) Translate(dx, dy float64) {
	b.Position = b.Position.Add(mgl64.Vec2{dx, dy})
}

// Bounds returns the axis-aligned bounding box of the body.
func (b *Body) Bounds() (minX, minY, maxX, maxY float64) {
	w, h := b.Shape.Size()
	x, y := b.Position.X(), b.Position.Y()
	return x - w/2, y - h/2, x + w/2, y + h/2
}

// Blocks reports whether other physically blocks b.
func (b *Body) Blocks(other *Body) bool {
	return b.CollidesWith.Intersects(other.Category)
}

// Reports reports whether an overlap between b and other is a contact
// worth reporting from either side.
func (b *Body) Reports(other *Body) bool {
	return b.ContactWith.Intersects(other.Category) || other.ContactWith.Intersects(b.Category)
}

// Separate pushes the dynamic body b out of the static body other and
// cancels the velocity component driving it in. On each axis the push
// opposes b's motion, so a body that sank past the middle of other in one
// step still comes out on the side it entered from. The axis needing the
// shorter push wins. It reports whether the bodies were interpenetrating.
func (b *Body) Separate(other *Body) bool {
	aMinX, aMinY, aMaxX, aMaxY := b.Bounds()
	bMinX, bMinY, bMaxX, bMaxY := other.Bounds()

	up, down := bMaxY-aMinY, aMaxY-bMinY
	right, left := bMaxX-aMinX, aMaxX-bMinX
	if up <= 0 || down <= 0 || right <= 0 || left <= 0 {
		return false
	}

	dx := exitPush(right, left, b.Velocity.X())
	dy := exitPush(up, down, b.Velocity.Y())

	if math.Abs(dy) <= math.Abs(dx) {
		b.Translate(0, dy)
		if dy*b.Velocity.Y() < 0 {
			b.Velocity = mgl64.Vec2{b.Velocity.X(), 0}
		}
		return true
	}

	b.Translate(dx, 0)
	if dx*b.Velocity.X() < 0 {
		b.Velocity = mgl64.Vec2{0, b.Velocity.Y()}
	}
	return true
}

// exitPush returns the signed distance that moves a body out along one
// axis: +pos when it moves toward negative, -neg when it moves toward
// positive, and the shorter way when it is at rest on that axis.
func exitPush(pos, neg, velocity float64) float64 {
	switch {
	case velocity < 0:
		return pos
	case velocity > 0:
		return -neg
	case pos <= neg:
		return pos
	default:
		return -neg
	}
}
