package physics

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

// ShapeKind identifies the geometry of a body.
type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapeRect
)

// Shape is a body's collision geometry, centered on the body position.
type Shape struct {
	Kind   ShapeKind
	Radius float64 // ShapeCircle
	Width  float64 // ShapeRect
	Height float64 // ShapeRect
}

// Circle returns a circle shape of the given radius.
func Circle(radius float64) Shape {
	return Shape{Kind: ShapeCircle, Radius: radius}
}

// Rectangle returns an axis-aligned rectangle shape.
func Rectangle(width, height float64) Shape {
	return Shape{Kind: ShapeRect, Width: width, Height: height}
}

// Size returns the width and height of the shape's bounding box.
func (s Shape) Size() (float64, float64) {
	if s.Kind == ShapeCircle {
		return s.Radius * 2, s.Radius * 2
	}
	return s.Width, s.Height
}

// Overlaps reports whether the shapes of two bodies intersect.
func Overlaps(a, b *Body) bool {
	switch {
	case a.Shape.Kind == ShapeCircle && b.Shape.Kind == ShapeCircle:
		reach := a.Shape.Radius + b.Shape.Radius
		d := a.Position.Sub(b.Position)
		return d.Dot(d) < reach*reach

	case a.Shape.Kind == ShapeCircle:
		return circleRect(a, b)

	case b.Shape.Kind == ShapeCircle:
		return circleRect(b, a)

	default:
		// Containment produces no crossing edges, so check centers first.
		if a.containsPoint(b.Position) || b.containsPoint(a.Position) {
			return true
		}
		return a.polygon().Intersection(0, 0, b.polygon()) != nil
	}
}

func circleRect(c, r *Body) bool {
	if r.containsPoint(c.Position) || c.containsPoint(r.Position) {
		return true
	}
	return c.circle().Intersection(0, 0, r.polygon()) != nil
}

// containsPoint reports whether p lies strictly inside the body's shape.
func (b *Body) containsPoint(p mgl64.Vec2) bool {
	d := p.Sub(b.Position)
	if b.Shape.Kind == ShapeCircle {
		return d.Dot(d) < b.Shape.Radius*b.Shape.Radius
	}
	hw, hh := b.Shape.Width/2, b.Shape.Height/2
	return d.X() > -hw && d.X() < hw && d.Y() > -hh && d.Y() < hh
}

func (b *Body) polygon() *resolv.ConvexPolygon {
	minX, minY, _, _ := b.Bounds()
	return resolv.NewRectangle(minX, minY, b.Shape.Width, b.Shape.Height)
}

func (b *Body) circle() *resolv.Circle {
	return resolv.NewCircle(b.Position.X(), b.Position.Y(), b.Shape.Radius)
}
