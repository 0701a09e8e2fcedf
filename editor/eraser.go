package editor

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/arcadebit/pegfall/obj"
)

// pegEraseRadius is how far from a peg's center an eraser click still counts.
// Pegs are small; a pure bounds test makes them fiddly to hit.
const pegEraseRadius = 0.2

// erase deletes the entity under the click. Shapes win over everything so a
// cluttered container can be removed without picking off its members first,
// then spacers, then characteristics, then the nearest peg.
func (e *Editor) erase(at cp.Vector) {
	for i := len(e.shapes) - 1; i >= 0; i-- {
		if e.shapes[i].ContainsPoint(at.X, at.Y) {
			e.deleteShape(e.shapes[i])
			return
		}
	}
	for i := len(e.spacers) - 1; i >= 0; i-- {
		if e.spacers[i].ContainsPoint(at.X, at.Y) {
			e.deleteSpacer(e.spacers[i])
			return
		}
	}
	for i := len(e.chars) - 1; i >= 0; i-- {
		if e.chars[i].ContainsPoint(at.X, at.Y) {
			e.deleteCharacteristic(e.chars[i])
			return
		}
	}
	if p := e.nearestPeg(at, pegEraseRadius); p != nil {
		e.deletePeg(p)
	}
}

func (e *Editor) nearestPeg(at cp.Vector, within float64) *obj.Peg {
	var best *obj.Peg
	bestDist := within
	for _, p := range e.pegs {
		pos := p.Position()
		d := math.Hypot(pos.X-at.X, pos.Y-at.Y)
		if d <= bestDist {
			best = p
			bestDist = d
		}
	}
	return best
}

func (e *Editor) deletePeg(p *obj.Peg) {
	if c := p.Container(); c != nil {
		c.RemovePeg(p)
		e.syncShape(c)
	}
	e.pegs = removeFrom(e.pegs, p)
	e.forgetEntity(p)
	p.Remove()
	e.ledger.Delete(p.ID())
}

func (e *Editor) deleteCharacteristic(c *obj.Characteristic) {
	if s := c.Container(); s != nil {
		s.RemoveCharacteristic(c)
		e.syncShape(s)
	}
	e.chars = removeFrom(e.chars, c)
	e.forgetEntity(c)
	c.Remove()
	e.ledger.Delete(c.ID())
}

func (e *Editor) deleteSpacer(sp *obj.Spacer) {
	e.spacers = removeFrom(e.spacers, sp)
	e.forgetEntity(sp)
	sp.Remove()
	e.ledger.Delete(sp.ID())
}

// deleteShape removes a shape and cascades to every contained member.
func (e *Editor) deleteShape(s *obj.Shape) {
	for _, p := range append([]*obj.Peg(nil), s.ContainedPegs()...) {
		s.RemovePeg(p)
		e.pegs = removeFrom(e.pegs, p)
		e.forgetEntity(p)
		p.Remove()
		e.ledger.Delete(p.ID())
	}
	for _, c := range append([]*obj.Characteristic(nil), s.ContainedCharacteristics()...) {
		s.RemoveCharacteristic(c)
		e.chars = removeFrom(e.chars, c)
		e.forgetEntity(c)
		c.Remove()
		e.ledger.Delete(c.ID())
	}
	e.shapes = removeFrom(e.shapes, s)
	e.forgetEntity(s)
	s.Remove()
	e.ledger.Delete(s.ID())
}

// forgetEntity scrubs a deleted entity out of selections and in-flight
// interactions so nothing keeps a dangling pointer.
func (e *Editor) forgetEntity(p obj.Placeable) {
	switch t := p.(type) {
	case *obj.Peg:
		if e.selectedPeg == t {
			e.selectedPeg = nil
		}
	case *obj.Shape:
		if e.selectedShape == t {
			e.selectedShape = nil
		}
	case *obj.Characteristic:
		if e.selectedChar == t {
			e.selectedChar = nil
		}
	case *obj.Spacer:
		if e.selectedSpacer == t {
			e.selectedSpacer = nil
		}
	}
	if e.drag.target == p {
		e.drag = dragState{}
	}
	if obj.Placeable(e.resize.target) == p {
		e.resize = resizeState{}
	}
	if e.copying.source == p {
		e.copying = copyState{}
	}
}

func removeFrom[T comparable](list []T, item T) []T {
	for i, cur := range list {
		if cur == item {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
