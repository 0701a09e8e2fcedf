package editor

import (
	"math"
	"time"

	"github.com/jakecoffman/cp"

	"github.com/arcadebit/pegfall/obj"
)

const (
	rotationStep = 5 * math.Pi / 180

	// Holding an arrow key this long starts key repeat, which then fires on
	// the repeat interval until key-up.
	rotateRepeatDelay    = 300 * time.Millisecond
	rotateRepeatInterval = 50 * time.Millisecond
)

// rotateState tracks the arrow-key repeat timer. dir is -1 or +1 while a key
// is held, 0 otherwise.
type rotateState struct {
	dir         int
	held        time.Duration
	sinceRepeat time.Duration
	repeating   bool
}

// selectRotateTarget picks the rotation target under the click: pegs first,
// then characteristics, then shapes. Clicking empty space clears the
// selection.
func (e *Editor) selectRotateTarget(at cp.Vector) {
	for i := len(e.pegs) - 1; i >= 0; i-- {
		if e.pegs[i].ContainsPoint(at.X, at.Y) {
			e.selectPeg(e.pegs[i])
			return
		}
	}
	for i := len(e.chars) - 1; i >= 0; i-- {
		if e.chars[i].ContainsPoint(at.X, at.Y) {
			e.selectCharacteristic(e.chars[i])
			return
		}
	}
	for i := len(e.shapes) - 1; i >= 0; i-- {
		if e.shapes[i].ContainsPoint(at.X, at.Y) {
			e.selectShape(e.shapes[i])
			return
		}
	}
	e.clearSelection()
	e.rotate = rotateState{}
}

// rotateTarget returns the entity rotation keys act on.
func (e *Editor) rotateTarget() obj.Placeable {
	switch {
	case e.selectedPeg != nil:
		return e.selectedPeg
	case e.selectedShape != nil:
		return e.selectedShape
	case e.selectedChar != nil:
		return e.selectedChar
	default:
		return nil
	}
}

// KeyDown handles a key press. Arrow keys rotate the selected object one step
// immediately; the repeat timer takes over while the key stays held.
func (e *Editor) KeyDown(k Key) {
	if e == nil || e.testingMode {
		return
	}
	var dir int
	switch k {
	case KeyArrowLeft:
		dir = 1
	case KeyArrowRight:
		dir = -1
	default:
		return
	}
	if e.rotateTarget() == nil {
		return
	}
	if e.rotate.dir == dir {
		// OS auto-repeat; our own timer owns repetition.
		return
	}
	e.rotate = rotateState{dir: dir}
	e.applyRotationStep(dir)
}

func (e *Editor) KeyUp(k Key) {
	if e == nil {
		return
	}
	switch k {
	case KeyArrowLeft, KeyArrowRight:
		e.rotate = rotateState{}
	default:
	}
}

// tickRotate advances the hold-to-repeat timer.
func (e *Editor) tickRotate(dt time.Duration) {
	r := &e.rotate
	if r.dir == 0 {
		return
	}
	if e.rotateTarget() == nil {
		// Selection vanished mid-hold; the timer self-cancels.
		*r = rotateState{}
		return
	}
	r.held += dt
	if !r.repeating {
		if r.held < rotateRepeatDelay {
			return
		}
		r.repeating = true
		r.sinceRepeat = r.held - rotateRepeatDelay
	} else {
		r.sinceRepeat += dt
	}
	for r.sinceRepeat >= rotateRepeatInterval {
		r.sinceRepeat -= rotateRepeatInterval
		e.applyRotationStep(r.dir)
	}
}

// applyRotationStep rotates the selected object by one 5 degree step. Pegs
// push the new angle into their physics body; shapes re-lay-out members.
func (e *Editor) applyRotationStep(dir int) {
	t := e.rotateTarget()
	if t == nil {
		return
	}
	t.SetRotation(t.Rotation() + float64(dir)*rotationStep)
	e.syncWithMembers(t)
}
