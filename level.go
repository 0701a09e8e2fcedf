package main

import (
	"fmt"

	"github.com/jakecoffman/cp"

	"github.com/arcadebit/pegfall/levels"
	"github.com/arcadebit/pegfall/obj"
)

// Level is the built, playable form of a level file: live entities registered
// with the scene and the physics world.
type Level struct {
	Name    string
	Pegs    []*obj.Peg
	Chars   []*obj.Characteristic
	Shapes  []*obj.Shape
	Spacers []*obj.Spacer
}

// BuildLevel instantiates every record in the file. Contained members are
// inserted in record order so shape layouts come out the same as in the
// editor.
func BuildLevel(scene obj.Scene, world obj.PhysicsWorld, f *levels.File) (*Level, error) {
	lvl := &Level{Name: f.Name}

	for _, rec := range f.Pegs {
		p, err := buildPeg(scene, world, rec)
		if err != nil {
			return nil, err
		}
		lvl.Pegs = append(lvl.Pegs, p)
	}
	for _, rec := range f.Characteristics {
		c, err := buildCharacteristic(scene, world, rec)
		if err != nil {
			return nil, err
		}
		lvl.Chars = append(lvl.Chars, c)
	}
	for _, rec := range f.Shapes {
		if err := lvl.buildShape(scene, world, rec); err != nil {
			return nil, err
		}
	}
	for _, rec := range f.Spacers {
		sp := obj.NewSpacer(scene, obj.SpacerConfig{
			Position: cp.Vector{X: rec.X, Y: rec.Y},
			Z:        rec.Z,
			Width:    rec.Size.Width,
			Height:   rec.Size.Height,
		})
		lvl.Spacers = append(lvl.Spacers, sp)
	}
	return lvl, nil
}

func (lvl *Level) buildShape(scene obj.Scene, world obj.PhysicsWorld, rec levels.Shape) error {
	typ, err := obj.ParseShapeType(rec.Type)
	if err != nil {
		return fmt.Errorf("level %s: %w", lvl.Name, err)
	}
	align, err := obj.ParseAlign(rec.Align)
	if err != nil {
		return fmt.Errorf("level %s: %w", lvl.Name, err)
	}
	justify, err := obj.ParseJustify(rec.Justify)
	if err != nil {
		return fmt.Errorf("level %s: %w", lvl.Name, err)
	}

	s := obj.NewShape(scene, obj.ShapeConfig{
		Position:       cp.Vector{X: rec.X, Y: rec.Y},
		Z:              rec.Z,
		Type:           typ,
		Size:           rec.Size,
		Align:          align,
		Justify:        justify,
		Gap:            rec.Gap,
		Rotation:       rec.Rotation,
		CanTakeObjects: rec.CanTakeObjects,
	})
	lvl.Shapes = append(lvl.Shapes, s)

	for i, pr := range rec.ContainedPegs {
		p, err := buildPeg(scene, world, pr)
		if err != nil {
			return err
		}
		lvl.Pegs = append(lvl.Pegs, p)
		s.InsertPeg(p, i)
	}
	for i, cr := range rec.ContainedCharacteristics {
		c, err := buildCharacteristic(scene, world, cr)
		if err != nil {
			return err
		}
		lvl.Chars = append(lvl.Chars, c)
		s.InsertCharacteristic(c, i)
	}
	return nil
}

func buildPeg(scene obj.Scene, world obj.PhysicsWorld, rec levels.Peg) (*obj.Peg, error) {
	typ, err := obj.ParsePegType(rec.Type)
	if err != nil {
		return nil, err
	}
	size, err := obj.ParsePegSize(rec.Size)
	if err != nil {
		return nil, err
	}
	color, err := obj.ParsePegColor(rec.Color)
	if err != nil {
		return nil, err
	}
	return obj.NewPeg(scene, world, obj.PegConfig{
		Position: cp.Vector{X: rec.X, Y: rec.Y},
		Z:        rec.Z,
		Type:     typ,
		Size:     size,
		Color:    color,
		Rotation: rec.Rotation,
	}), nil
}

func buildCharacteristic(scene obj.Scene, world obj.PhysicsWorld, rec levels.Characteristic) (*obj.Characteristic, error) {
	shape, err := obj.ParseCharShape(rec.Shape)
	if err != nil {
		return nil, err
	}
	bounce, err := obj.ParseBounceType(rec.BounceType)
	if err != nil {
		return nil, err
	}
	return obj.NewCharacteristic(scene, world, obj.CharacteristicConfig{
		Position: cp.Vector{X: rec.X, Y: rec.Y},
		Z:        rec.Z,
		Shape:    shape,
		Width:    rec.Size.Width,
		Height:   rec.Size.Height,
		Radius:   rec.Size.Radius,
		Rotation: rec.Rotation,
		Bounce:   bounce,
	}), nil
}

// OrangeCount reports how many orange pegs are still unhit.
func (lvl *Level) OrangeCount() int {
	n := 0
	for _, p := range lvl.Pegs {
		if p.IsOrange() && !p.Hit() {
			n++
		}
	}
	return n
}

// UnhitCount reports how many pegs of any color are still unhit.
func (lvl *Level) UnhitCount() int {
	n := 0
	for _, p := range lvl.Pegs {
		if !p.Hit() {
			n++
		}
	}
	return n
}

// RemoveHitPegs clears hit pegs from the board after a ball resolves and
// returns how many were removed.
func (lvl *Level) RemoveHitPegs() int {
	kept := lvl.Pegs[:0]
	removed := 0
	for _, p := range lvl.Pegs {
		if !p.Hit() {
			kept = append(kept, p)
			continue
		}
		if c := p.Container(); c != nil {
			c.RemovePeg(p)
		}
		p.Remove()
		removed++
	}
	lvl.Pegs = kept
	return removed
}
