package editor

import (
	"fmt"
	"log"
	"os"

	"github.com/jakecoffman/cp"

	"github.com/arcadebit/pegfall/common"
	"github.com/arcadebit/pegfall/levels"
	"github.com/arcadebit/pegfall/obj"
)

// SaveLevel snapshots the live entities into the persisted format. Free pegs
// and characteristics serialize at top level; contained ones serialize inside
// their shape in member order. All coordinates round to 3 decimals.
func (e *Editor) SaveLevel() *levels.File {
	f := &levels.File{Name: e.levelName}

	for _, p := range e.pegs {
		if p.Container() != nil {
			continue
		}
		f.Pegs = append(f.Pegs, pegRecord(p))
	}
	for _, c := range e.chars {
		if c.Container() != nil {
			continue
		}
		f.Characteristics = append(f.Characteristics, charRecord(c))
	}
	for _, s := range e.shapes {
		rec := levels.Shape{
			X:              common.Round3(s.Position().X),
			Y:              common.Round3(s.Position().Y),
			Z:              common.Round3(s.Z()),
			Type:           s.Type().String(),
			Size:           common.Round3(s.Size()),
			Align:          s.Align().String(),
			Justify:        s.Justify().String(),
			Gap:            common.Round3(s.Gap()),
			Rotation:       common.Round3(s.Rotation()),
			CanTakeObjects: s.CanTakeObjects(),
		}
		for _, p := range s.ContainedPegs() {
			rec.ContainedPegs = append(rec.ContainedPegs, pegRecord(p))
		}
		for _, c := range s.ContainedCharacteristics() {
			rec.ContainedCharacteristics = append(rec.ContainedCharacteristics, charRecord(c))
		}
		f.Shapes = append(f.Shapes, rec)
	}
	for _, sp := range e.spacers {
		f.Spacers = append(f.Spacers, levels.Spacer{
			X: common.Round3(sp.Position().X),
			Y: common.Round3(sp.Position().Y),
			Z: common.Round3(sp.Z()),
			Size: levels.Size{
				Width:  common.Round3(sp.Width()),
				Height: common.Round3(sp.Height()),
			},
		})
	}
	return f
}

func pegRecord(p *obj.Peg) levels.Peg {
	return levels.Peg{
		X:        common.Round3(p.Position().X),
		Y:        common.Round3(p.Position().Y),
		Z:        common.Round3(p.Z()),
		Color:    p.Color().String(),
		Type:     p.Type().String(),
		Size:     p.SizeClass().String(),
		Rotation: common.Round3(p.Rotation()),
	}
}

func charRecord(c *obj.Characteristic) levels.Characteristic {
	rec := levels.Characteristic{
		X:          common.Round3(c.Position().X),
		Y:          common.Round3(c.Position().Y),
		Z:          common.Round3(c.Z()),
		Shape:      c.Shape().String(),
		Rotation:   common.Round3(c.Rotation()),
		BounceType: c.Bounce().String(),
	}
	if c.Shape() == obj.CharCircle {
		rec.Size.Radius = common.Round3(c.Radius())
	} else {
		rec.Size.Width = common.Round3(c.Width())
		rec.Size.Height = common.Round3(c.Height())
	}
	return rec
}

// SaveToFile writes the current level as indented JSON.
func (e *Editor) SaveToFile(path string) error {
	b, err := e.SaveLevel().Encode()
	if err != nil {
		return fmt.Errorf("editor: save %s: %w", path, err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("editor: save %s: %w", path, err)
	}
	return nil
}

// LoadLevel replaces the editor contents with the file's. Construction goes
// through the deferred queue and is flushed before returning, so callers see
// a fully built level.
func (e *Editor) LoadLevel(f *levels.File) error {
	if f == nil {
		return fmt.Errorf("editor: load: nil level")
	}
	if !e.ready() {
		return fmt.Errorf("editor: load: scene not ready")
	}
	e.Reset()
	e.levelName = f.Name

	for _, rec := range f.Pegs {
		cfg, err := pegConfig(rec)
		if err != nil {
			return err
		}
		e.enqueue(func() {
			p := obj.NewPeg(e.scene, e.world, cfg)
			e.pegs = append(e.pegs, p)
			e.syncEntity(p)
		})
	}
	for _, rec := range f.Characteristics {
		cfg, err := charConfig(rec)
		if err != nil {
			return err
		}
		e.enqueue(func() {
			c := obj.NewCharacteristic(e.scene, e.world, cfg)
			e.chars = append(e.chars, c)
			e.syncEntity(c)
		})
	}
	for _, rec := range f.Shapes {
		if err := e.loadShape(rec); err != nil {
			return err
		}
	}
	for _, rec := range f.Spacers {
		cfg := obj.SpacerConfig{
			Position: cp.Vector{X: rec.X, Y: rec.Y},
			Z:        rec.Z,
			Width:    rec.Size.Width,
			Height:   rec.Size.Height,
		}
		e.enqueue(func() {
			sp := obj.NewSpacer(e.scene, cfg)
			e.spacers = append(e.spacers, sp)
			e.syncEntity(sp)
		})
	}

	e.Flush()
	return nil
}

func (e *Editor) loadShape(rec levels.Shape) error {
	typ, err := obj.ParseShapeType(rec.Type)
	if err != nil {
		return err
	}
	align, err := obj.ParseAlign(rec.Align)
	if err != nil {
		return err
	}
	justify, err := obj.ParseJustify(rec.Justify)
	if err != nil {
		return err
	}
	cfg := obj.ShapeConfig{
		Position:       cp.Vector{X: rec.X, Y: rec.Y},
		Z:              rec.Z,
		Type:           typ,
		Size:           rec.Size,
		Align:          align,
		Justify:        justify,
		Gap:            rec.Gap,
		Rotation:       rec.Rotation,
		CanTakeObjects: rec.CanTakeObjects,
	}

	pegCfgs := make([]obj.PegConfig, 0, len(rec.ContainedPegs))
	for _, pr := range rec.ContainedPegs {
		pc, err := pegConfig(pr)
		if err != nil {
			return err
		}
		pegCfgs = append(pegCfgs, pc)
	}
	charCfgs := make([]obj.CharacteristicConfig, 0, len(rec.ContainedCharacteristics))
	for _, cr := range rec.ContainedCharacteristics {
		cc, err := charConfig(cr)
		if err != nil {
			return err
		}
		charCfgs = append(charCfgs, cc)
	}

	e.enqueue(func() {
		s := obj.NewShape(e.scene, cfg)
		e.shapes = append(e.shapes, s)
		for i, pc := range pegCfgs {
			p := obj.NewPeg(e.scene, e.world, pc)
			e.pegs = append(e.pegs, p)
			s.InsertPeg(p, i)
		}
		for i, cc := range charCfgs {
			c := obj.NewCharacteristic(e.scene, e.world, cc)
			e.chars = append(e.chars, c)
			s.InsertCharacteristic(c, i)
		}
		e.syncShape(s)
	})
	return nil
}

func pegConfig(rec levels.Peg) (obj.PegConfig, error) {
	typ, err := obj.ParsePegType(rec.Type)
	if err != nil {
		return obj.PegConfig{}, err
	}
	size, err := obj.ParsePegSize(rec.Size)
	if err != nil {
		return obj.PegConfig{}, err
	}
	color, err := obj.ParsePegColor(rec.Color)
	if err != nil {
		return obj.PegConfig{}, err
	}
	return obj.PegConfig{
		Position: cp.Vector{X: rec.X, Y: rec.Y},
		Z:        rec.Z,
		Type:     typ,
		Size:     size,
		Color:    color,
		Rotation: rec.Rotation,
	}, nil
}

func charConfig(rec levels.Characteristic) (obj.CharacteristicConfig, error) {
	shape, err := obj.ParseCharShape(rec.Shape)
	if err != nil {
		return obj.CharacteristicConfig{}, err
	}
	bounce, err := obj.ParseBounceType(rec.BounceType)
	if err != nil {
		return obj.CharacteristicConfig{}, err
	}
	return obj.CharacteristicConfig{
		Position: cp.Vector{X: rec.X, Y: rec.Y},
		Z:        rec.Z,
		Shape:    shape,
		Width:    rec.Size.Width,
		Height:   rec.Size.Height,
		Radius:   rec.Size.Radius,
		Rotation: rec.Rotation,
		Bounce:   bounce,
	}, nil
}

// LoadFromFile parses and loads a level file. The file is parsed in full
// before any state changes, so a malformed file leaves the editor untouched.
func (e *Editor) LoadFromFile(path string) error {
	f, err := levels.LoadFile(path)
	if err != nil {
		log.Printf("editor: load %s: %v", path, err)
		return err
	}
	return e.LoadLevel(f)
}

// Reset removes every entity and clears all interaction state.
func (e *Editor) Reset() {
	e.cancelInteractions()
	e.clearSelection()
	e.clearSpacerSelection()
	e.queue = nil

	for _, p := range e.pegs {
		p.Remove()
	}
	for _, c := range e.chars {
		c.Remove()
	}
	for _, s := range e.shapes {
		s.Remove()
	}
	for _, sp := range e.spacers {
		sp.Remove()
	}
	e.pegs = nil
	e.chars = nil
	e.shapes = nil
	e.spacers = nil
	e.ledger.Clear()
	e.levelName = ""
}
