package core

import "testing"

func TestViewportFlipsYAxis(t *testing.T) {
	v := NewViewport(100, 50, 20, 10)

	if got := v.Row(50); got != 0 {
		t.Errorf("Row(top of world) = %d, expected 0", got)
	}
	if got := v.Row(0); got != 10 {
		t.Errorf("Row(bottom of world) = %d, expected 10", got)
	}
	if got := v.Col(50); got != 10 {
		t.Errorf("Col(50) = %d, expected 10", got)
	}
}

func TestViewportRectOf(t *testing.T) {
	v := NewViewport(100, 100, 100, 100)

	r := v.RectOf(50, 50, 20, 10)
	if r.X != 40 || r.Y != 45 || r.W != 20 || r.H != 10 {
		t.Errorf("RectOf() = %+v, expected {40 45 20 10}", r)
	}

	// Tiny bodies still occupy a cell
	small := NewViewport(1000, 1000, 10, 10).RectOf(500, 500, 1, 1)
	if small.W != 1 || small.H != 1 {
		t.Errorf("RectOf() of sub-cell body = %+v, expected 1x1", small)
	}
}
