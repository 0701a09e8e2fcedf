package editor

import (
	"math"
	"testing"
)

func TestResizeCircleCharacteristicRadius(t *testing.T) {
	e := newTestEditor()
	placeCircleChar(e, 0, 0)

	e.SetTool(Tool{Category: ToolResize})
	e.PointerDown(0, 0)
	e.PointerUp(0, 0)
	c := e.SelectedCharacteristic()
	if c == nil || len(c.Handles()) == 0 {
		t.Fatalf("characteristic not selected with handles")
	}

	// Grab the right rim handle and pull outward; the radius follows the
	// pointer distance exactly.
	e.PointerDown(0.5, 0)
	e.PointerMove(0.8, 0)
	e.PointerUp(0.8, 0)
	if got := c.Radius(); math.Abs(got-0.8) > 1e-9 {
		t.Fatalf("radius = %v, want 0.8", got)
	}
}

func TestResizeCircleRadiusFloor(t *testing.T) {
	e := newTestEditor()
	placeCircleChar(e, 0, 0)

	e.SetTool(Tool{Category: ToolResize})
	e.PointerDown(0, 0)
	e.PointerUp(0, 0)
	c := e.SelectedCharacteristic()

	e.PointerDown(0.5, 0)
	e.PointerMove(0.01, 0)
	e.PointerUp(0.01, 0)
	if got := c.Radius(); got != 0.1 {
		t.Fatalf("radius = %v, want floor 0.1", got)
	}
}

func TestResizeSpacerEdgeHandleDoublesDelta(t *testing.T) {
	e := newTestEditor()
	placeSpacer(e, 0, 0, 1, 1)

	e.SetTool(Tool{Category: ToolResize})
	e.PointerDown(0, 0)
	e.PointerUp(0, 0)
	sp := e.SelectedSpacer()
	if sp == nil || len(sp.Handles()) == 0 {
		t.Fatalf("spacer not selected with handles")
	}

	// The right edge handle sits at x=0.5; 0.2 of pointer travel grows the
	// width by 0.4 because the center stays fixed.
	e.PointerDown(0.5, 0)
	e.PointerMove(0.7, 0)
	e.PointerUp(0.7, 0)
	if got := sp.Width(); math.Abs(got-1.4) > 1e-9 {
		t.Fatalf("width = %v, want 1.4", got)
	}
	if got := sp.Height(); got != 1 {
		t.Fatalf("height = %v, want unchanged 1", got)
	}
	if pos := sp.Position(); pos.X != 0 || pos.Y != 0 {
		t.Fatalf("spacer center moved to %+v", pos)
	}
}

func TestResizeSpacerCornerHandleBothAxes(t *testing.T) {
	e := newTestEditor()
	placeSpacer(e, 0, 0, 1, 1)

	e.SetTool(Tool{Category: ToolResize})
	e.PointerDown(0, 0)
	e.PointerUp(0, 0)
	sp := e.SelectedSpacer()

	// Top-right corner at (0.5, 0.5) dragged outward on both axes.
	e.PointerDown(0.5, 0.5)
	e.PointerMove(0.6, 0.75)
	e.PointerUp(0.6, 0.75)
	if got := sp.Width(); math.Abs(got-1.2) > 1e-9 {
		t.Fatalf("width = %v, want 1.2", got)
	}
	if got := sp.Height(); math.Abs(got-1.5) > 1e-9 {
		t.Fatalf("height = %v, want 1.5", got)
	}
}

func TestResizeBoxDimensionFloor(t *testing.T) {
	e := newTestEditor()
	placeSpacer(e, 0, 0, 1, 1)

	e.SetTool(Tool{Category: ToolResize})
	e.PointerDown(0, 0)
	e.PointerUp(0, 0)
	sp := e.SelectedSpacer()

	// Dragging the right edge far past the center inverts the width; it
	// clamps at the floor instead.
	e.PointerDown(0.5, 0)
	e.PointerMove(-2, 0)
	e.PointerUp(-2, 0)
	if got := sp.Width(); got != 0.2 {
		t.Fatalf("width = %v, want floor 0.2", got)
	}
}

func TestResizeSpacerClampedAtLevelEdge(t *testing.T) {
	e := newTestEditor()
	placeSpacer(e, 5.5, 0, 1, 1)

	e.SetTool(Tool{Category: ToolResize})
	e.PointerDown(5.5, 0)
	e.PointerUp(5.5, 0)
	sp := e.SelectedSpacer()

	// Growing right would cross the level edge at x=6; the width holds.
	e.PointerDown(6, 0)
	e.PointerMove(6.5, 0)
	e.PointerUp(6.5, 0)
	if got := sp.Width(); got != 1 {
		t.Fatalf("width = %v, want held at 1", got)
	}
}

func TestResizeSpacerBlockedByEntity(t *testing.T) {
	e := newTestEditor()
	placePeg(e, 1.1, 0)
	placeSpacer(e, 0, 0, 1, 1)
	if len(e.Spacers()) != 1 {
		t.Fatalf("spacer not placed")
	}

	e.SetTool(Tool{Category: ToolResize})
	e.PointerDown(0, 0)
	e.PointerUp(0, 0)
	sp := e.SelectedSpacer()

	// Growing over the peg would trap it; the size holds.
	e.PointerDown(0.5, 0)
	e.PointerMove(1.0, 0)
	e.PointerUp(1.0, 0)
	if got := sp.Width(); got != 1 {
		t.Fatalf("width = %v, want held at 1", got)
	}
}

func TestResizeLineShapeAlongAxis(t *testing.T) {
	e := newTestEditor()
	placeShape(e, 0, 0)

	e.SetTool(Tool{Category: ToolResize})
	e.PointerDown(0, 0)
	e.PointerUp(0, 0)
	s := e.SelectedShape()
	if s == nil || len(s.Handles()) == 0 {
		t.Fatalf("shape not selected with handles")
	}

	// End handle at x=1 dragged to x=1.5; the dragged end sets the half
	// length, so the full length becomes 3.
	e.PointerDown(1, 0)
	e.PointerMove(1.5, 0.05)
	e.PointerUp(1.5, 0.05)
	if got := s.Size(); math.Abs(got-3) > 1e-9 {
		t.Fatalf("line length = %v, want 3", got)
	}
}

func TestResizeCommitRoundsDimensions(t *testing.T) {
	e := newTestEditor()
	placeSpacer(e, 0, 0, 1, 1)

	e.SetTool(Tool{Category: ToolResize})
	e.PointerDown(0, 0)
	e.PointerUp(0, 0)
	sp := e.SelectedSpacer()

	e.PointerDown(0.5, 0)
	e.PointerMove(0.70005, 0)
	e.PointerUp(0.70005, 0)
	if got := sp.Width(); got != 1.4 {
		t.Fatalf("width = %v, want rounded 1.4", got)
	}

	rec, ok := e.Ledger().Get(sp.ID())
	if !ok {
		t.Fatalf("spacer missing from ledger")
	}
	if rec.Width != 1.4 {
		t.Fatalf("ledger width = %v, want 1.4", rec.Width)
	}
}
