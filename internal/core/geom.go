// Package core provides fundamental types and utilities for the game platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned cell rectangle on a Screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Viewport maps world coordinates (origin bottom-left, y up) onto a screen
// of cells (origin top-left, y down).
type Viewport struct {
	WorldW, WorldH   float64
	ScreenW, ScreenH int
}

// NewViewport creates a viewport scaling a world onto a screen.
func NewViewport(worldW, worldH float64, screenW, screenH int) Viewport {
	return Viewport{WorldW: worldW, WorldH: worldH, ScreenW: screenW, ScreenH: screenH}
}

// Col converts a world x to a screen column.
func (v Viewport) Col(x float64) int {
	if v.WorldW <= 0 {
		return 0
	}
	return int(math.Floor(x / v.WorldW * float64(v.ScreenW)))
}

// Row converts a world y to a screen row.
func (v Viewport) Row(y float64) int {
	if v.WorldH <= 0 {
		return 0
	}
	return int(math.Floor((v.WorldH - y) / v.WorldH * float64(v.ScreenH)))
}

// RectOf converts a world-space box given by its center and size into the
// cell rectangle covering it. The result is at least one cell in each axis.
func (v Viewport) RectOf(cx, cy, w, h float64) Rect {
	left := v.Col(cx - w/2)
	right := v.Col(cx + w/2)
	top := v.Row(cy + h/2)
	bottom := v.Row(cy - h/2)
	return NewRect(left, top, Max(right-left, 1), Max(bottom-top, 1))
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
