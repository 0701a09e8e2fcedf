package editor

import (
	"github.com/jakecoffman/cp"

	"github.com/arcadebit/pegfall/obj"
)

// copyState holds the two-click copy interaction: the first click picks a
// source and arms a preview that follows the pointer, the second click
// pastes a duplicate at the click point.
type copyState struct {
	source  obj.Placeable
	preview *CopyPreview
}

// CopyPreview is the ghost drawn between the two copy clicks.
type CopyPreview struct {
	Source obj.Placeable
	Pos    cp.Vector
	// ChildOffsets are member positions relative to the source, captured at
	// arm time so the ghost shows the whole shape even if the live source
	// re-lays-out meanwhile.
	ChildOffsets []cp.Vector
}

func (e *Editor) CopyPreview() *CopyPreview { return e.copying.preview }

// copyClick runs one click of the two-click copy. The paste goes through the
// deferred queue like placement; the source is cleared synchronously first so
// a second click before the queue drains cannot paste twice.
func (e *Editor) copyClick(at cp.Vector) {
	if e.copying.source == nil {
		src := e.placeableAt(at)
		if src == nil {
			return
		}
		preview := &CopyPreview{Source: src, Pos: at}
		if s, ok := src.(*obj.Shape); ok {
			origin := s.Position()
			for _, p := range s.ContainedPegs() {
				preview.ChildOffsets = append(preview.ChildOffsets, p.Position().Sub(origin))
			}
			for _, c := range s.ContainedCharacteristics() {
				preview.ChildOffsets = append(preview.ChildOffsets, c.Position().Sub(origin))
			}
		}
		e.copying = copyState{source: src, preview: preview}
		return
	}

	src := e.copying.source
	e.copying = copyState{}
	e.pasteAt(src, at)
}

// pasteAt duplicates src at pos. Pegs and characteristics respect the spacer
// exclusion like fresh placement; shapes carry deep copies of their members in
// order.
func (e *Editor) pasteAt(src obj.Placeable, at cp.Vector) {
	if !e.ready() {
		return
	}
	pos := roundVec(at)

	switch s := src.(type) {
	case *obj.Peg:
		cfg := obj.PegConfig{
			Position: pos,
			Z:        s.Z(),
			Type:     s.Type(),
			Size:     s.SizeClass(),
			Color:    s.Color(),
			Rotation: s.Rotation(),
		}
		if e.overlapsSpacer(cfg.Bounds(), nil) != nil {
			return
		}
		e.enqueue(func() {
			p := obj.NewPeg(e.scene, e.world, cfg)
			e.pegs = append(e.pegs, p)
			e.syncEntity(p)
		})
	case *obj.Characteristic:
		cfg := obj.CharacteristicConfig{
			Position: pos,
			Z:        s.Z(),
			Shape:    s.Shape(),
			Width:    s.Width(),
			Height:   s.Height(),
			Radius:   s.Radius(),
			Rotation: s.Rotation(),
			Bounce:   s.Bounce(),
		}
		if e.overlapsSpacer(cfg.Bounds(), nil) != nil {
			return
		}
		e.enqueue(func() {
			c := obj.NewCharacteristic(e.scene, e.world, cfg)
			e.chars = append(e.chars, c)
			e.syncEntity(c)
		})
	case *obj.Shape:
		e.pasteShape(s, pos)
	case *obj.Spacer:
		cfg := obj.SpacerConfig{Position: pos, Z: s.Z(), Width: s.Width(), Height: s.Height()}
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
}

func (e *Editor) pasteShape(src *obj.Shape, pos cp.Vector) {
	cfg := obj.ShapeConfig{
		Position:       pos,
		Z:              src.Z(),
		Type:           src.Type(),
		Size:           src.Size(),
		Align:          src.Align(),
		Justify:        src.Justify(),
		Gap:            src.Gap(),
		Rotation:       src.Rotation(),
		CanTakeObjects: src.CanTakeObjects(),
	}
	if e.overlapsSpacer(cfg.Bounds(), nil) != nil {
		return
	}

	// Capture member configs now; the source can be edited or erased before
	// the queue drains.
	pegCfgs := make([]obj.PegConfig, 0, len(src.ContainedPegs()))
	for _, p := range src.ContainedPegs() {
		pegCfgs = append(pegCfgs, obj.PegConfig{
			Z:        p.Z(),
			Type:     p.Type(),
			Size:     p.SizeClass(),
			Color:    p.Color(),
			Rotation: p.Rotation(),
		})
	}
	charCfgs := make([]obj.CharacteristicConfig, 0, len(src.ContainedCharacteristics()))
	for _, c := range src.ContainedCharacteristics() {
		charCfgs = append(charCfgs, obj.CharacteristicConfig{
			Z:        c.Z(),
			Shape:    c.Shape(),
			Width:    c.Width(),
			Height:   c.Height(),
			Radius:   c.Radius(),
			Rotation: c.Rotation(),
			Bounce:   c.Bounce(),
		})
	}

	e.enqueue(func() {
		dst := obj.NewShape(e.scene, cfg)
		e.shapes = append(e.shapes, dst)
		for i, pc := range pegCfgs {
			pc.Position = pos
			p := obj.NewPeg(e.scene, e.world, pc)
			e.pegs = append(e.pegs, p)
			dst.InsertPeg(p, i)
		}
		for i, cc := range charCfgs {
			cc.Position = pos
			c := obj.NewCharacteristic(e.scene, e.world, cc)
			e.chars = append(e.chars, c)
			dst.InsertCharacteristic(c, i)
		}
		e.syncShape(dst)
	})
}
