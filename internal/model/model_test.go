package model

import (
	"errors"
	"testing"
)

func TestRotatePreservesArea(t *testing.T) {
	for w := 1; w <= 20; w++ {
		for h := 1; h <= 20; h++ {
			r := NewRectangle("r", w, h)
			before := r.Area()
			r.Rotate()
			if r.Area() != before {
				t.Fatalf("%dx%d: area changed from %d to %d", w, h, before, r.Area())
			}
		}
	}
}

func TestRotateTwiceRestoresOrientation(t *testing.T) {
	r := NewRectangle("r", 3, 7)
	r.Rotate()
	if r.Width != 7 || r.Height != 3 || !r.Rotated {
		t.Fatalf("unexpected state after one rotation: %+v", r)
	}
	r.Rotate()
	if r.Width != 3 || r.Height != 7 || r.Rotated {
		t.Errorf("expected original orientation after two rotations, got %+v", r)
	}
}

func TestTurnedLeavesReceiverUntouched(t *testing.T) {
	r := NewRectangle("r", 2, 5)
	turned := r.Turned()
	if r.Width != 2 || r.Height != 5 || r.Rotated {
		t.Errorf("receiver was modified: %+v", r)
	}
	if turned.Width != 5 || turned.Height != 2 || !turned.Rotated {
		t.Errorf("unexpected turned copy: %+v", turned)
	}
}

func TestPlacementDistinguishesOrigin(t *testing.T) {
	var r Rectangle
	if r.Placement.Placed {
		t.Error("zero rectangle should be unplaced")
	}
	r.Placement = PlacedAt(0, 0)
	if !r.Placement.Placed {
		t.Error("rectangle placed at the origin should report placed")
	}
	if got := r.Placement.String(); got != "(0, 0)" {
		t.Errorf("expected (0, 0), got %s", got)
	}
	if got := Unplaced().String(); got != "unplaced" {
		t.Errorf("expected unplaced, got %s", got)
	}
}

func TestValidate(t *testing.T) {
	if err := NewRectangle("ok", 1, 1).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	err := NewRectangle("bad", 0, 4).Validate()
	if !errors.Is(err, ErrInvalidSize) {
		t.Errorf("expected ErrInvalidSize, got %v", err)
	}
}

func TestRegionContains(t *testing.T) {
	rg := Square(10)
	r := NewRectangle("r", 4, 4)
	if rg.Contains(r) {
		t.Error("unplaced rectangle should not be contained")
	}
	r.Placement = PlacedAt(6, 6)
	if !rg.Contains(r) {
		t.Error("rectangle touching the far edge should be contained")
	}
	r.Placement = PlacedAt(7, 6)
	if rg.Contains(r) {
		t.Error("rectangle crossing the right edge should not be contained")
	}
}

func TestBoundingBox(t *testing.T) {
	a := NewRectangle("a", 4, 2)
	a.Placement = PlacedAt(1, 1)
	b := NewRectangle("b", 3, 6)
	b.Placement = PlacedAt(7, 1)

	maxX, maxY := BoundingBox([]Rectangle{a, b})
	if maxX != 10 || maxY != 7 {
		t.Errorf("expected 10x7, got %dx%d", maxX, maxY)
	}
	if a.Overlaps(b) {
		t.Error("disjoint rectangles reported as overlapping")
	}
}

func TestSettingsValidate(t *testing.T) {
	s := DefaultSettings()
	if err := s.Validate(); err != nil {
		t.Fatalf("default settings should validate: %v", err)
	}

	bad := s
	bad.SpaceSize = 0
	if bad.Validate() == nil {
		t.Error("expected error for zero space size")
	}
	bad = s
	bad.Policy = "pareto"
	if bad.Validate() == nil {
		t.Error("expected error for unknown policy")
	}
	bad = s
	bad.Algorithm = "annealing"
	if bad.Validate() == nil {
		t.Error("expected error for unknown algorithm")
	}
}

func TestResultEfficiency(t *testing.T) {
	a := NewRectangle("a", 4, 5)
	a.Placement = PlacedAt(1, 1)
	res := Result{Success: true, Width: 10, Height: 10, Rectangles: []Rectangle{a}}
	if got := res.Efficiency(); got != 20.0 {
		t.Errorf("expected 20%% efficiency, got %f", got)
	}
	if (Result{}).Efficiency() != 0 {
		t.Error("failed result should have zero efficiency")
	}
}
