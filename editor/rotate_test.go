package editor

import (
	"math"
	"testing"
	"time"
)

const stepRad = 5 * math.Pi / 180

func selectPegForRotate(t *testing.T, e *Editor, x, y float64) {
	t.Helper()
	e.SetTool(Tool{Category: ToolRotate})
	e.PointerDown(x, y)
	if e.SelectedPeg() == nil {
		t.Fatalf("rotate click did not select the peg")
	}
}

func TestRotateStepOnKeyDown(t *testing.T) {
	e := newTestEditor()
	placePeg(e, 1, 1)
	selectPegForRotate(t, e, 1, 1)

	e.KeyDown(KeyArrowLeft)
	if got := e.Pegs()[0].Rotation(); math.Abs(got-stepRad) > 1e-9 {
		t.Fatalf("rotation = %v after left, want %v", got, stepRad)
	}
	e.KeyUp(KeyArrowLeft)

	e.KeyDown(KeyArrowRight)
	if got := e.Pegs()[0].Rotation(); math.Abs(got) > 1e-9 {
		t.Fatalf("rotation = %v after right, want 0", got)
	}
}

func TestRotateOSAutoRepeatIgnored(t *testing.T) {
	e := newTestEditor()
	placePeg(e, 1, 1)
	selectPegForRotate(t, e, 1, 1)

	e.KeyDown(KeyArrowLeft)
	// The OS fires KeyDown repeatedly while held; only the first counts.
	e.KeyDown(KeyArrowLeft)
	e.KeyDown(KeyArrowLeft)
	if got := e.Pegs()[0].Rotation(); math.Abs(got-stepRad) > 1e-9 {
		t.Fatalf("rotation = %v, want a single step %v", got, stepRad)
	}
}

func TestRotateHoldRepeats(t *testing.T) {
	e := newTestEditor()
	placePeg(e, 1, 1)
	selectPegForRotate(t, e, 1, 1)

	e.KeyDown(KeyArrowLeft)

	// Under the repeat delay nothing extra fires.
	e.Tick(200 * time.Millisecond)
	if got := e.Pegs()[0].Rotation(); math.Abs(got-stepRad) > 1e-9 {
		t.Fatalf("rotation = %v before repeat delay, want %v", got, stepRad)
	}

	// Crossing the delay with 50ms of overshoot fires exactly one repeat.
	e.Tick(150 * time.Millisecond)
	if got := e.Pegs()[0].Rotation(); math.Abs(got-2*stepRad) > 1e-9 {
		t.Fatalf("rotation = %v after repeat delay, want %v", got, 2*stepRad)
	}

	// Each further interval fires one more step.
	e.Tick(100 * time.Millisecond)
	if got := e.Pegs()[0].Rotation(); math.Abs(got-4*stepRad) > 1e-9 {
		t.Fatalf("rotation = %v after two intervals, want %v", got, 4*stepRad)
	}
}

func TestRotateKeyUpStopsRepeat(t *testing.T) {
	e := newTestEditor()
	placePeg(e, 1, 1)
	selectPegForRotate(t, e, 1, 1)

	e.KeyDown(KeyArrowLeft)
	e.KeyUp(KeyArrowLeft)
	e.Tick(time.Second)
	if got := e.Pegs()[0].Rotation(); math.Abs(got-stepRad) > 1e-9 {
		t.Fatalf("rotation = %v after key up, want %v", got, stepRad)
	}
}

func TestRotateWithoutSelectionNoOp(t *testing.T) {
	e := newTestEditor()
	placePeg(e, 1, 1)
	e.SetTool(Tool{Category: ToolRotate})

	e.KeyDown(KeyArrowLeft)
	e.Tick(time.Second)
	if got := e.Pegs()[0].Rotation(); got != 0 {
		t.Fatalf("rotation = %v with nothing selected, want 0", got)
	}
}

func TestRotateSelectionVanishedCancelsRepeat(t *testing.T) {
	e := newTestEditor()
	placePeg(e, 1, 1)
	selectPegForRotate(t, e, 1, 1)
	e.KeyDown(KeyArrowLeft)

	// Clicking empty space drops the selection mid-hold.
	e.PointerDown(5, -4)
	e.Tick(time.Second)
	if got := e.Pegs()[0].Rotation(); math.Abs(got-stepRad) > 1e-9 {
		t.Fatalf("rotation = %v after selection vanished, want %v", got, stepRad)
	}
}

func TestRotateShapeRelayoutsMembers(t *testing.T) {
	e := newTestEditor()
	placeShape(e, 0, 0)
	placePeg(e, 0.4, 0)

	placePeg(e, -0.4, 0)

	e.SetTool(Tool{Category: ToolRotate})
	// Click the shape away from the pegs so the shape is the target.
	e.PointerDown(1.1, 0)
	if e.SelectedShape() == nil {
		t.Fatalf("rotate click did not select the shape")
	}
	e.KeyDown(KeyArrowLeft)
	// Layout puts the two members at local x = -0.25 and 0.25; after the
	// rotation step they leave the x axis.
	for i, p := range e.Pegs() {
		if math.Abs(p.Position().Y) < 1e-6 {
			t.Fatalf("member %d still on the x axis after shape rotation", i)
		}
	}
	if math.Abs(e.Shapes()[0].Rotation()-stepRad) > 1e-9 {
		t.Fatalf("shape rotation = %v, want %v", e.Shapes()[0].Rotation(), stepRad)
	}
}
