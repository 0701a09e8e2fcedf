package editor

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/arcadebit/pegfall/obj"
)

type dragState struct {
	active bool
	target obj.Placeable
	// offset is pointer minus object position, captured at drag start so the
	// object does not jump under the cursor.
	offset    cp.Vector
	origin    cp.Vector
	snapGuide bool
}

// DragTarget exposes the entity currently being dragged, if any.
func (e *Editor) DragTarget() obj.Placeable {
	if !e.drag.active {
		return nil
	}
	return e.drag.target
}

func (e *Editor) beginDrag(at cp.Vector) {
	target := e.placeableAt(at)
	if target == nil {
		return
	}
	e.drag = dragState{
		active: true,
		target: target,
		offset: at.Sub(target.Position()),
		origin: target.Position(),
	}
}

// dragMove advances the drag. Pegs and characteristics can transfer into or
// out of shape containers mid-drag; while contained, the shape's layout owns
// their position and the raw cursor position is ignored.
func (e *Editor) dragMove(at cp.Vector) {
	d := &e.drag
	if !d.active || d.target == nil {
		return
	}

	switch t := d.target.(type) {
	case *obj.Peg:
		if s := e.shapeAt(at); s != nil {
			e.transferPegInto(s, t, at)
			d.snapGuide = false
			return
		}
		if prev := t.Container(); prev != nil {
			prev.RemovePeg(t)
			e.syncShape(prev)
			// Re-center on the cursor; the layout position the peg held
			// inside the shape makes the original grab offset meaningless.
			d.offset = cp.Vector{}
		}
	case *obj.Characteristic:
		if s := e.shapeAt(at); s != nil {
			e.transferCharacteristicInto(s, t, at)
			d.snapGuide = false
			return
		}
		if prev := t.Container(); prev != nil {
			prev.RemoveCharacteristic(t)
			e.syncShape(prev)
			d.offset = cp.Vector{}
		}
	case *obj.Shape, *obj.Spacer:
		// Containers and spacers never transfer.
	}

	want := at.Sub(d.offset)
	old := d.target.Position()
	adj := e.constrainMove(d.target, old, want)
	d.target.MoveTo(adj)
	d.snapGuide = math.Abs(adj.X) < centerSnapThreshold
}

func (e *Editor) transferPegInto(s *obj.Shape, p *obj.Peg, at cp.Vector) {
	prev := p.Container()
	if prev == s {
		// Re-insertion at a new point: drop out first so the index is
		// computed against the remaining members.
		s.RemovePeg(p)
	} else if prev != nil {
		prev.RemovePeg(p)
		e.syncShape(prev)
	}
	s.InsertPeg(p, s.PegInsertionIndex(at))
	e.syncShape(s)
}

func (e *Editor) transferCharacteristicInto(s *obj.Shape, c *obj.Characteristic, at cp.Vector) {
	prev := c.Container()
	if prev == s {
		s.RemoveCharacteristic(c)
	} else if prev != nil {
		prev.RemoveCharacteristic(c)
		e.syncShape(prev)
	}
	s.InsertCharacteristic(c, s.CharacteristicInsertionIndex(at))
	e.syncShape(s)
}

// dragEnd commits the drag: center snap, spacer level clamp, 3-decimal
// rounding, ledger sync.
func (e *Editor) dragEnd() {
	d := e.drag
	e.drag = dragState{}
	if !d.active || d.target == nil {
		return
	}

	// Members inside a shape are owned by its layout; just sync.
	switch t := d.target.(type) {
	case *obj.Peg:
		if t.Container() != nil {
			e.syncShape(t.Container())
			return
		}
	case *obj.Characteristic:
		if t.Container() != nil {
			e.syncShape(t.Container())
			return
		}
	}

	pos := d.target.Position()
	if d.snapGuide && math.Abs(pos.X) < centerSnapThreshold {
		pos.X = 0
	}
	d.target.MoveTo(pos)

	if sp, ok := d.target.(*obj.Spacer); ok {
		clampSpacerToLevel(sp)
		pos = sp.Position()
	}

	// Rounding can nudge the bounds a hair into a spacer; one more pass of
	// the solver lands exactly edge-to-edge.
	final := roundVec(pos)
	final = e.constrainMove(d.target, d.origin, final)
	d.target.MoveTo(roundVec(final))
	e.syncWithMembers(d.target)
}
