package editor

import (
	"testing"

	"github.com/arcadebit/pegfall/obj"
)

func TestSettingsClickReportsTarget(t *testing.T) {
	e := newTestEditor()
	placePeg(e, 1, 1)
	placeSpacer(e, 4, 0, 1, 1)

	var opened obj.Placeable
	e.OnOpenSettings = func(p obj.Placeable) { opened = p }

	e.SetTool(Tool{Category: ToolSettings})
	e.PointerDown(1, 1)
	if opened != obj.Placeable(e.Pegs()[0]) {
		t.Fatalf("settings opened %v, want the peg", opened)
	}

	// Spacers have no settings.
	opened = nil
	e.PointerDown(4, 0)
	if opened != nil {
		t.Fatalf("settings opened for a spacer")
	}
}

func TestApplyShapeSettingsRelayouts(t *testing.T) {
	e := newTestEditor()
	placeShape(e, 0, 0)
	placePeg(e, -0.4, 0)
	placePeg(e, 0.4, 0)
	s := e.Shapes()[0]

	e.ApplyShapeSettings(s, obj.AlignAbove, obj.JustifyStart, 0.5, false)

	if s.Align() != obj.AlignAbove || s.Justify() != obj.JustifyStart || s.Gap() != 0.5 {
		t.Fatalf("layout params not applied")
	}
	if s.CanTakeObjects() {
		t.Fatalf("can-take flag not applied")
	}
	// JustifyStart anchors the first member at the line start.
	first := s.ContainedPegs()[0].Position()
	if first.X != -1 || first.Y != 0.25 {
		t.Fatalf("first member at %+v, want (-1, 0.25)", first)
	}

	// A closed shape no longer accepts dropped pegs.
	placePeg(e, 0, 0.1)
	if got := len(s.ContainedPegs()); got != 2 {
		t.Fatalf("closed shape took a new member, count %d", got)
	}
}

func TestApplyShapeSettingsUnknownShapeIgnored(t *testing.T) {
	e := newTestEditor()
	stray := obj.NewShape(nil, obj.ShapeConfig{Type: obj.ShapeLine})
	e.ApplyShapeSettings(stray, obj.AlignBelow, obj.JustifyEnd, 1, true)
	if stray.Align() == obj.AlignBelow {
		t.Fatalf("settings applied to a shape the editor does not own")
	}
}

func TestApplyCharacteristicBounce(t *testing.T) {
	e := newTestEditor()
	placeCircleChar(e, 0, 0)
	c := e.Characteristics()[0]

	e.ApplyCharacteristicBounce(c, obj.BounceSuper)
	if c.Bounce() != obj.BounceSuper {
		t.Fatalf("bounce = %v, want super", c.Bounce())
	}
	rec, ok := e.Ledger().Get(c.ID())
	if !ok || rec.Bounce != "super-bouncy" {
		t.Fatalf("ledger bounce = %q, want super-bouncy", rec.Bounce)
	}
}

func TestApplyPegColor(t *testing.T) {
	e := newTestEditor()
	placePeg(e, 0, 0)
	p := e.Pegs()[0]

	e.ApplyPegColor(p, obj.ColorPurple)
	if p.Color() != obj.ColorPurple {
		t.Fatalf("color = %v, want purple", p.Color())
	}
	rec, _ := e.Ledger().Get(p.ID())
	if rec.Color != "purple" {
		t.Fatalf("ledger color = %q, want purple", rec.Color)
	}
}
