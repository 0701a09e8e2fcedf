package editor

import (
	"github.com/jakecoffman/cp"

	"github.com/arcadebit/pegfall/geom"
	"github.com/arcadebit/pegfall/obj"
)

// placePeg creates a peg at the click point. Placement over a spacer is
// rejected outright; edge snapping only applies when moving an existing
// entity. A click inside an accepting shape inserts the new peg into it.
func (e *Editor) placePeg(at cp.Vector) {
	if !e.ready() {
		return
	}
	pos := roundVec(at)
	cfg := obj.PegConfig{
		Position: pos,
		Type:     e.tool.PegType,
		Size:     e.tool.PegSize,
		Color:    e.tool.PegColor,
	}
	if e.overlapsSpacer(cfg.Bounds(), nil) != nil {
		return
	}
	container := e.shapeAt(pos)
	e.enqueue(func() {
		p := obj.NewPeg(e.scene, e.world, cfg)
		e.pegs = append(e.pegs, p)
		if container != nil && e.hasShape(container) {
			container.InsertPeg(p, container.PegInsertionIndex(pos))
			e.syncShape(container)
		} else {
			e.syncEntity(p)
		}
	})
}

func (e *Editor) placeCharacteristic(at cp.Vector) {
	if !e.ready() {
		return
	}
	pos := roundVec(at)
	cfg := obj.CharacteristicConfig{
		Position: pos,
		Shape:    e.tool.CharShape,
		Bounce:   e.tool.BounceType,
	}
	if e.overlapsSpacer(cfg.Bounds(), nil) != nil {
		return
	}
	container := e.shapeAt(pos)
	e.enqueue(func() {
		c := obj.NewCharacteristic(e.scene, e.world, cfg)
		e.chars = append(e.chars, c)
		if container != nil && e.hasShape(container) {
			container.InsertCharacteristic(c, container.CharacteristicInsertionIndex(pos))
			e.syncShape(container)
		} else {
			e.syncEntity(c)
		}
	})
}

func (e *Editor) placeShape(at cp.Vector) {
	if !e.ready() {
		return
	}
	pos := roundVec(at)
	cfg := obj.ShapeConfig{
		Position:       pos,
		Type:           e.tool.ShapeType,
		CanTakeObjects: true,
	}
	if e.overlapsSpacer(cfg.Bounds(), nil) != nil {
		return
	}
	e.enqueue(func() {
		s := obj.NewShape(e.scene, cfg)
		e.shapes = append(e.shapes, s)
		e.syncEntity(s)
	})
}

func (e *Editor) placeSpacer(at cp.Vector) {
	if !e.ready() {
		return
	}
	pos := roundVec(at)
	cfg := obj.SpacerConfig{
		Position: pos,
		Width:    e.tool.SpacerWidth,
		Height:   e.tool.SpacerHeight,
	}
	// A new spacer must not trap already-placed entities inside it.
	if e.overlapsAnyEntity(cfg.Bounds()) {
		return
	}
	e.enqueue(func() {
		sp := obj.NewSpacer(e.scene, cfg)
		clampSpacerToLevel(sp)
		sp.MoveTo(roundVec(sp.Position()))
		e.spacers = append(e.spacers, sp)
		e.syncEntity(sp)
	})
}

// overlapsAnyEntity reports whether b overlaps any placed peg, shape or
// characteristic.
func (e *Editor) overlapsAnyEntity(b geom.Bounds) bool {
	for _, p := range e.pegs {
		if b.Overlaps(p.Bounds()) {
			return true
		}
	}
	for _, s := range e.shapes {
		if b.Overlaps(s.Bounds()) {
			return true
		}
	}
	for _, c := range e.chars {
		if b.Overlaps(c.Bounds()) {
			return true
		}
	}
	return false
}

func (e *Editor) hasShape(s *obj.Shape) bool {
	for _, cur := range e.shapes {
		if cur == s {
			return true
		}
	}
	return false
}
