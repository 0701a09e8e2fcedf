// Package editor implements the level editor controller: tool dispatch over
// pointer/keyboard input, the spacer/shape constraint solver, and the placed
// object ledger that backs save/load.
package editor

import (
	"time"

	"github.com/jakecoffman/cp"

	"github.com/arcadebit/pegfall/common"
	"github.com/arcadebit/pegfall/geom"
	"github.com/arcadebit/pegfall/obj"
)

// Editor owns the full editing state: tool selection, every placed entity,
// the in-flight drag/resize/rotate interaction, and the ledger. It is driven
// from a single goroutine; pointer coordinates are world-space.
type Editor struct {
	scene obj.Scene
	world obj.PhysicsWorld
	audio obj.AudioPlayer

	// Reinit is the best-effort lazy re-init hook: consulted when a tool
	// fires before the collaborators are wired. Operations stay silent
	// no-ops while it returns nils.
	Reinit func() (obj.Scene, obj.PhysicsWorld)

	// OnOpenSettings is invoked when the settings tool hits an entity.
	OnOpenSettings func(target obj.Placeable)

	tool        Tool
	testingMode bool

	pegs    []*obj.Peg
	shapes  []*obj.Shape
	spacers []*obj.Spacer
	chars   []*obj.Characteristic

	ledger *Ledger

	// queue holds deferred entity construction steps; drained by Flush.
	queue []func()

	// At most one of these three is non-nil at any time.
	selectedPeg   *obj.Peg
	selectedShape *obj.Shape
	selectedChar  *obj.Characteristic

	// Spacer selection only matters for resize and is tracked separately.
	selectedSpacer *obj.Spacer

	drag    dragState
	resize  resizeState
	copying copyState
	rotate  rotateState

	modals []geom.Bounds

	levelName string
}

func New(scene obj.Scene, world obj.PhysicsWorld, audio obj.AudioPlayer) *Editor {
	return &Editor{
		scene:  scene,
		world:  world,
		audio:  audio,
		ledger: NewLedger(),
	}
}

// ready reports whether the collaborators are wired, attempting the lazy
// re-init hook first. Tool handlers no-op while not ready.
func (e *Editor) ready() bool {
	if e.scene == nil || e.world == nil {
		if e.Reinit != nil {
			scene, world := e.Reinit()
			if scene != nil {
				e.scene = scene
			}
			if world != nil {
				e.world = world
			}
		}
	}
	return e.scene != nil && e.world != nil
}

func (e *Editor) Tool() Tool            { return e.tool }
func (e *Editor) TestingMode() bool     { return e.testingMode }
func (e *Editor) LevelName() string     { return e.levelName }
func (e *Editor) SetLevelName(n string) { e.levelName = n }

func (e *Editor) Pegs() []*obj.Peg                       { return e.pegs }
func (e *Editor) Shapes() []*obj.Shape                   { return e.shapes }
func (e *Editor) Spacers() []*obj.Spacer                 { return e.spacers }
func (e *Editor) Characteristics() []*obj.Characteristic { return e.chars }
func (e *Editor) Ledger() *Ledger                        { return e.ledger }

func (e *Editor) SelectedPeg() *obj.Peg                       { return e.selectedPeg }
func (e *Editor) SelectedShape() *obj.Shape                   { return e.selectedShape }
func (e *Editor) SelectedCharacteristic() *obj.Characteristic { return e.selectedChar }
func (e *Editor) SelectedSpacer() *obj.Spacer                 { return e.selectedSpacer }

// SnapGuideActive reports whether the center guide line should be drawn for
// the current drag.
func (e *Editor) SnapGuideActive() bool { return e.drag.active && e.drag.snapGuide }

// SetTestingMode toggles play-testing; all editing input is ignored while on.
func (e *Editor) SetTestingMode(on bool) {
	e.testingMode = on
	if on {
		e.cancelInteractions()
	}
}

// SetTool switches the active tool. Transient state of the previous tool is
// cleared. The rotate and resize tools share their selection so an object
// picked with rotate immediately shows resize handles after the switch.
func (e *Editor) SetTool(t Tool) {
	prev := e.tool.Category
	e.tool = t

	e.cancelInteractions()

	keepSelection := (t.Category == ToolRotate || t.Category == ToolResize) &&
		(prev == ToolRotate || prev == ToolResize)
	if !keepSelection {
		e.clearSelection()
		e.clearSpacerSelection()
	}

	e.removeAllHandles()
	if t.Category == ToolResize {
		if r := e.selectedResizable(); r != nil {
			r.CreateHandles()
		}
	}
}

// cancelInteractions drops in-flight drag/resize/copy state without touching
// entity data.
func (e *Editor) cancelInteractions() {
	e.drag = dragState{}
	e.resize = resizeState{}
	e.copying = copyState{}
	e.rotate = rotateState{}
}

// PushModal registers an overlay rectangle; pointer events inside any
// registered modal are swallowed.
func (e *Editor) PushModal(b geom.Bounds) {
	e.modals = append(e.modals, b)
}

func (e *Editor) PopModal() {
	if len(e.modals) > 0 {
		e.modals = e.modals[:len(e.modals)-1]
	}
}

func (e *Editor) inModal(x, y float64) bool {
	for _, m := range e.modals {
		if m.Contains(x, y) {
			return true
		}
	}
	return false
}

// PointerDown routes a press at world coordinates to the active tool.
func (e *Editor) PointerDown(x, y float64) {
	if e == nil || e.testingMode || e.inModal(x, y) {
		return
	}
	at := cp.Vector{X: x, Y: y}
	switch e.tool.Category {
	case ToolPeg:
		e.placePeg(at)
	case ToolShape:
		e.placeShape(at)
	case ToolCharacteristic:
		e.placeCharacteristic(at)
	case ToolSpacer:
		e.placeSpacer(at)
	case ToolEraser:
		e.erase(at)
	case ToolMove:
		e.beginDrag(at)
	case ToolRotate:
		e.selectRotateTarget(at)
	case ToolCopy:
		e.copyClick(at)
	case ToolResize:
		e.resizeDown(at)
	case ToolSettings:
		e.settingsClick(at)
	case ToolNone:
	}
}

func (e *Editor) PointerMove(x, y float64) {
	if e == nil || e.testingMode {
		return
	}
	at := cp.Vector{X: x, Y: y}
	if e.drag.active {
		e.dragMove(at)
		return
	}
	if e.resize.active {
		e.resizeMove(at)
		return
	}
	if e.copying.preview != nil {
		e.copying.preview.Pos = at
	}
}

func (e *Editor) PointerUp(x, y float64) {
	if e == nil {
		return
	}
	if e.drag.active {
		e.dragEnd()
	}
	if e.resize.active {
		e.resizeEnd()
	}
}

// Tick advances time-based state (key-repeat rotation) and completes any
// deferred entity construction.
func (e *Editor) Tick(dt time.Duration) {
	if e == nil {
		return
	}
	e.Flush()
	e.tickRotate(dt)
}

// Flush drains the deferred construction queue. Entity creation is
// eventually-completing: callers that need the entity to exist (ledger
// updates, tests) run after the next Flush.
func (e *Editor) Flush() {
	for len(e.queue) > 0 {
		fn := e.queue[0]
		e.queue = e.queue[1:]
		fn()
	}
}

func (e *Editor) enqueue(fn func()) {
	e.queue = append(e.queue, fn)
}

// clearSelection drops the peg/shape/characteristic selection and its visual
// affordances.
func (e *Editor) clearSelection() {
	e.selectedPeg = nil
	if e.selectedShape != nil {
		e.selectedShape.RemoveHandles()
		e.selectedShape = nil
	}
	if e.selectedChar != nil {
		e.selectedChar.RemoveHandles()
		e.selectedChar = nil
	}
}

func (e *Editor) clearSpacerSelection() {
	if e.selectedSpacer != nil {
		e.selectedSpacer.RemoveHandles()
		e.selectedSpacer = nil
	}
}

func (e *Editor) selectPeg(p *obj.Peg) {
	e.clearSelection()
	e.selectedPeg = p
}

func (e *Editor) selectShape(s *obj.Shape) {
	e.clearSelection()
	e.selectedShape = s
}

func (e *Editor) selectCharacteristic(c *obj.Characteristic) {
	e.clearSelection()
	e.selectedChar = c
}

// selectedResizable returns the current resize-capable selection, if any.
func (e *Editor) selectedResizable() obj.Resizable {
	switch {
	case e.selectedShape != nil:
		return e.selectedShape
	case e.selectedChar != nil:
		return e.selectedChar
	case e.selectedSpacer != nil:
		return e.selectedSpacer
	default:
		return nil
	}
}

func (e *Editor) removeAllHandles() {
	if e.selectedShape != nil {
		e.selectedShape.RemoveHandles()
	}
	if e.selectedChar != nil {
		e.selectedChar.RemoveHandles()
	}
	if e.selectedSpacer != nil {
		e.selectedSpacer.RemoveHandles()
	}
}

// placeableAt hit-tests every entity, smallest kinds first so pegs win over
// the larger area entities stacked around them. Later placements win ties.
func (e *Editor) placeableAt(at cp.Vector) obj.Placeable {
	for i := len(e.pegs) - 1; i >= 0; i-- {
		if e.pegs[i].ContainsPoint(at.X, at.Y) {
			return e.pegs[i]
		}
	}
	for i := len(e.chars) - 1; i >= 0; i-- {
		if e.chars[i].ContainsPoint(at.X, at.Y) {
			return e.chars[i]
		}
	}
	for i := len(e.shapes) - 1; i >= 0; i-- {
		if e.shapes[i].ContainsPoint(at.X, at.Y) {
			return e.shapes[i]
		}
	}
	for i := len(e.spacers) - 1; i >= 0; i-- {
		if e.spacers[i].ContainsPoint(at.X, at.Y) {
			return e.spacers[i]
		}
	}
	return nil
}

// shapeAt returns the topmost shape that accepts objects and contains the
// point.
func (e *Editor) shapeAt(at cp.Vector) *obj.Shape {
	for i := len(e.shapes) - 1; i >= 0; i-- {
		s := e.shapes[i]
		if s.CanTakeObjects() && s.ContainsPoint(at.X, at.Y) {
			return s
		}
	}
	return nil
}

func roundVec(v cp.Vector) cp.Vector {
	return cp.Vector{X: common.Round3(v.X), Y: common.Round3(v.Y)}
}

// syncEntity refreshes the ledger record for a single entity.
func (e *Editor) syncEntity(p obj.Placeable) {
	e.ledger.Sync(p)
}

// syncWithMembers refreshes the ledger for an entity and, for shapes, every
// contained member whose position the layout just rewrote.
func (e *Editor) syncWithMembers(p obj.Placeable) {
	e.ledger.Sync(p)
	if s, ok := p.(*obj.Shape); ok {
		for _, m := range s.ContainedPegs() {
			e.ledger.Sync(m)
		}
		for _, m := range s.ContainedCharacteristics() {
			e.ledger.Sync(m)
		}
	}
}

func (e *Editor) syncShape(s *obj.Shape) {
	if s != nil {
		e.syncWithMembers(s)
	}
}
