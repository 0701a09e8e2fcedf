package editor

import "testing"

func TestEraseNearestPegWithinRadius(t *testing.T) {
	e := newTestEditor()
	placePeg(e, 0, 0)
	placePeg(e, 0.3, 0)

	e.SetTool(Tool{Category: ToolEraser})
	// The click is nearest to the first peg.
	e.PointerDown(0.1, 0)
	if len(e.Pegs()) != 1 {
		t.Fatalf("peg count = %d, want 1", len(e.Pegs()))
	}
	if e.Pegs()[0].Position().X != 0.3 {
		t.Fatalf("wrong peg erased")
	}

	// Out of reach of the remaining peg.
	e.PointerDown(0.6, 0)
	if len(e.Pegs()) != 1 {
		t.Fatalf("erase beyond the grab radius deleted a peg")
	}
	if e.Ledger().Len() != 1 {
		t.Fatalf("ledger len = %d, want 1", e.Ledger().Len())
	}
}

func TestEraseShapeWinsOverMembers(t *testing.T) {
	e := newTestEditor()
	placeShape(e, 0, 0)
	placePeg(e, 0.4, 0)
	placeCircleChar(e, 4, 0)

	e.SetTool(Tool{Category: ToolEraser})
	// The click sits on both the shape and its member peg; the shape wins
	// and the cascade takes the member with it.
	e.PointerDown(0, 0)

	if len(e.Shapes()) != 0 {
		t.Fatalf("shape survived erase")
	}
	if len(e.Pegs()) != 0 {
		t.Fatalf("contained peg survived the cascade")
	}
	if len(e.Characteristics()) != 1 {
		t.Fatalf("unrelated characteristic was deleted")
	}
	if e.Ledger().Len() != 1 {
		t.Fatalf("ledger len = %d, want 1", e.Ledger().Len())
	}
}

func TestEraseSpacerBeforeCharacteristic(t *testing.T) {
	e := newTestEditor()
	placeCircleChar(e, 0, 0)
	placeSpacer(e, 2, 0, 1, 1)

	e.SetTool(Tool{Category: ToolEraser})
	e.PointerDown(2, 0)
	if len(e.Spacers()) != 0 {
		t.Fatalf("spacer survived erase")
	}
	if len(e.Characteristics()) != 1 {
		t.Fatalf("characteristic deleted by spacer erase")
	}
}

func TestEraseCharacteristic(t *testing.T) {
	e := newTestEditor()
	placeCircleChar(e, 0, 0)
	placePeg(e, 2, 0)

	e.SetTool(Tool{Category: ToolEraser})
	e.PointerDown(0.2, 0)
	if len(e.Characteristics()) != 0 {
		t.Fatalf("characteristic survived erase")
	}
	if len(e.Pegs()) != 1 {
		t.Fatalf("peg deleted by characteristic erase")
	}
	if e.Ledger().Len() != 1 {
		t.Fatalf("ledger len = %d, want 1", e.Ledger().Len())
	}
}

func TestEraseEmptySpaceNoOp(t *testing.T) {
	e := newTestEditor()
	placePeg(e, 0, 0)

	e.SetTool(Tool{Category: ToolEraser})
	e.PointerDown(5, 4)
	if len(e.Pegs()) != 1 || e.Ledger().Len() != 1 {
		t.Fatalf("erase on empty space changed state")
	}
}
