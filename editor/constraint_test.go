package editor

import (
	"math"
	"testing"
)

func TestPlaceOverSpacerRejected(t *testing.T) {
	e := newTestEditor()
	placeSpacer(e, 0, 0, 1, 1)
	if len(e.Spacers()) != 1 {
		t.Fatalf("spacer not placed")
	}

	placePeg(e, 0, 0)
	if len(e.Pegs()) != 0 {
		t.Fatalf("peg placed inside a spacer")
	}
	placeCircleChar(e, 0.3, 0)
	if len(e.Characteristics()) != 0 {
		t.Fatalf("characteristic placed overlapping a spacer")
	}

	// Outside the exclusion zone placement works.
	placePeg(e, 2, 0)
	if len(e.Pegs()) != 1 {
		t.Fatalf("peg next to spacer rejected")
	}
}

func TestSpacerPlacementOverEntityRejected(t *testing.T) {
	e := newTestEditor()
	placePeg(e, 0.2, 0)
	placeSpacer(e, 0, 0, 1, 1)
	if len(e.Spacers()) != 0 {
		t.Fatalf("spacer trapped an existing peg")
	}
}

func TestDragSlidesAlongSpacerWall(t *testing.T) {
	e := newTestEditor()
	placeSpacer(e, 0, 0, 1, 1)
	placePeg(e, -1, 0)

	e.SetTool(Tool{Category: ToolMove})
	e.PointerDown(-1, 0)
	e.PointerMove(0, 0.2)

	pos := e.Pegs()[0].Position()
	// The x push lands edge-to-edge against the spacer; y moves freely.
	wantX := -0.5 - e.Pegs()[0].SizeClass().Radius()
	if math.Abs(pos.X-wantX) > 1e-9 || math.Abs(pos.Y-0.2) > 1e-9 {
		t.Fatalf("dragged peg at %+v, want (%v, 0.2)", pos, wantX)
	}
}

func TestDragEndCenterSnap(t *testing.T) {
	cases := []struct {
		name  string
		endX  float64
		wantX float64
	}{
		{"inside_threshold", 0.02, 0},
		{"outside_threshold", 0.05, 0.05},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := newTestEditor()
			placePeg(e, 1, 1)

			e.SetTool(Tool{Category: ToolMove})
			e.PointerDown(1, 1)
			e.PointerMove(c.endX, 1)
			e.PointerUp(c.endX, 1)

			pos := e.Pegs()[0].Position()
			if pos.X != c.wantX {
				t.Fatalf("peg x = %v after release, want %v", pos.X, c.wantX)
			}
		})
	}
}

func TestSnapGuideVisibleDuringDrag(t *testing.T) {
	e := newTestEditor()
	placePeg(e, 1, 1)

	e.SetTool(Tool{Category: ToolMove})
	e.PointerDown(1, 1)
	if e.SnapGuideActive() {
		t.Fatalf("guide active before any move")
	}
	e.PointerMove(0.01, 1)
	if !e.SnapGuideActive() {
		t.Fatalf("guide not active near the center line")
	}
	e.PointerMove(0.5, 1)
	if e.SnapGuideActive() {
		t.Fatalf("guide still active away from the center line")
	}
	e.PointerUp(0.5, 1)
	if e.SnapGuideActive() {
		t.Fatalf("guide survived pointer up")
	}
}

func TestSpacerPlacementClampedToLevel(t *testing.T) {
	e := newTestEditor()
	placeSpacer(e, 5.9, 0, 1, 1)
	if len(e.Spacers()) != 1 {
		t.Fatalf("spacer not placed")
	}
	pos := e.Spacers()[0].Position()
	if pos.X != 5.5 {
		t.Fatalf("spacer x = %v, want clamped 5.5", pos.X)
	}
}

func TestSpacerDragClampedOnRelease(t *testing.T) {
	e := newTestEditor()
	placeSpacer(e, 0, 0, 1, 1)

	e.SetTool(Tool{Category: ToolMove})
	e.PointerDown(0, 0)
	e.PointerMove(0, -4.3)
	e.PointerUp(0, -4.3)

	pos := e.Spacers()[0].Position()
	if pos.Y != -4.0 {
		t.Fatalf("spacer y = %v after release, want clamped -4", pos.Y)
	}
}

func TestDragTransfersPegIntoShape(t *testing.T) {
	e := newTestEditor()
	placeShape(e, 0, 0)
	placePeg(e, 3, 0)

	e.SetTool(Tool{Category: ToolMove})
	e.PointerDown(3, 0)
	e.PointerMove(0.2, 0)
	e.PointerUp(0.2, 0)

	s := e.Shapes()[0]
	if len(s.ContainedPegs()) != 1 {
		t.Fatalf("shape holds %d pegs after drag in, want 1", len(s.ContainedPegs()))
	}
	if e.Pegs()[0].Container() != s {
		t.Fatalf("peg container not set after drag in")
	}
}
