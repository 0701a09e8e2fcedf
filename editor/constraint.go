package editor

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/arcadebit/pegfall/common"
	"github.com/arcadebit/pegfall/geom"
	"github.com/arcadebit/pegfall/obj"
)

// centerSnapThreshold is how close to x=0 a drag has to end for the object to
// snap onto the center line.
const centerSnapThreshold = 0.03

// overlapsSpacer returns the first spacer whose bounds overlap b, ignoring
// skip (a spacer is excluded from its own check while it is being moved).
func (e *Editor) overlapsSpacer(b geom.Bounds, skip obj.Placeable) *obj.Spacer {
	for _, sp := range e.spacers {
		if obj.Placeable(sp) == skip {
			continue
		}
		if b.Overlaps(sp.Bounds()) {
			return sp
		}
	}
	return nil
}

// constrainMove resolves a proposed move of target from old to next against
// every spacer. When the moved bounds would overlap a spacer, the axis with
// the larger attempted delta is treated as the push direction and the object
// snaps edge-to-edge on that axis while the perpendicular axis moves freely,
// so drags slide along spacer walls instead of sticking.
func (e *Editor) constrainMove(target obj.Placeable, old, next cp.Vector) cp.Vector {
	// Extents of the target's bounds relative to its position; bounds are not
	// necessarily centered once rotation is involved.
	b := target.Bounds()
	pos := target.Position()
	offL := pos.X - b.Left
	offR := b.Right - pos.X
	offB := pos.Y - b.Bottom
	offT := b.Top - pos.Y

	var skip obj.Placeable
	if target.Kind() == obj.KindSpacer {
		skip = target
	}

	dx := next.X - old.X
	dy := next.Y - old.Y
	adj := next

	for _, sp := range e.spacers {
		if obj.Placeable(sp) == skip {
			continue
		}
		spb := sp.Bounds()
		nb := geom.Bounds{
			Left:   adj.X - offL,
			Right:  adj.X + offR,
			Bottom: adj.Y - offB,
			Top:    adj.Y + offT,
		}
		if !nb.Overlaps(spb) {
			continue
		}
		if math.Abs(dx) >= math.Abs(dy) && dx != 0 {
			if dx > 0 {
				adj.X = spb.Left - offR
			} else {
				adj.X = spb.Right + offL
			}
		} else if dy != 0 {
			if dy > 0 {
				adj.Y = spb.Bottom - offT
			} else {
				adj.Y = spb.Top + offB
			}
		} else {
			// No attempted motion; hold the old position.
			adj = old
		}
	}
	return adj
}

// clampSpacerToLevel translates a spacer the minimum distance needed to sit
// fully inside the level bounds. One-shot correction applied on drag end and
// at placement, not continuously during the drag.
func clampSpacerToLevel(sp *obj.Spacer) {
	b := sp.Bounds()
	pos := sp.Position()
	if b.Left < common.LevelLeft {
		pos.X += common.LevelLeft - b.Left
	} else if b.Right > common.LevelRight {
		pos.X -= b.Right - common.LevelRight
	}
	if b.Bottom < common.LevelBottom {
		pos.Y += common.LevelBottom - b.Bottom
	} else if b.Top > common.LevelTop {
		pos.Y -= b.Top - common.LevelTop
	}
	sp.MoveTo(pos)
}
