package editor

import (
	"github.com/jakecoffman/cp"

	"github.com/arcadebit/pegfall/obj"
)

// settingsClick opens the settings overlay for the entity under the click.
// The overlay itself is frontend UI; the editor only reports the target.
func (e *Editor) settingsClick(at cp.Vector) {
	target := e.placeableAt(at)
	if target == nil || e.OnOpenSettings == nil {
		return
	}
	if target.Kind() == obj.KindSpacer {
		// Spacers have nothing to configure.
		return
	}
	e.OnOpenSettings(target)
}

// ApplyShapeSettings commits the settings form for a shape: layout parameters
// and whether it accepts new members. Members re-lay-out immediately.
func (e *Editor) ApplyShapeSettings(s *obj.Shape, align obj.Align, justify obj.Justify, gap float64, canTake bool) {
	if s == nil || !e.hasShape(s) {
		return
	}
	s.SetCanTakeObjects(canTake)
	s.SetLayoutParams(align, justify, gap)
	e.syncShape(s)
}

// ApplyCharacteristicBounce changes a characteristic's bounce behavior. The
// physics material updates live so play-testing picks it up without a reload.
func (e *Editor) ApplyCharacteristicBounce(c *obj.Characteristic, b obj.BounceType) {
	if c == nil {
		return
	}
	c.SetBounce(b)
	e.syncEntity(c)
}

// ApplyPegColor recolors a peg in place.
func (e *Editor) ApplyPegColor(p *obj.Peg, color obj.PegColor) {
	if p == nil {
		return
	}
	p.SetColor(color)
	e.syncEntity(p)
}
