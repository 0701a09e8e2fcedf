package editor

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/arcadebit/pegfall/common"
	"github.com/arcadebit/pegfall/obj"
)

const (
	minDimension = 0.2
	minRadius    = 0.1
)

// resizeState tracks one handle drag. Only one handle can be active at a
// time; the state persists across pointer moves until pointer-up.
type resizeState struct {
	active       bool
	target       obj.Resizable
	handle       obj.Handle
	startPointer cp.Vector
	startW       float64
	startH       float64
	startSize    float64
}

// resizeDown either grabs a handle on the current selection or re-selects a
// resizable entity under the pointer. Pegs are fixed-size and never selected
// here.
func (e *Editor) resizeDown(at cp.Vector) {
	if r := e.selectedResizable(); r != nil {
		if h, ok := r.HandleAt(at.X, at.Y); ok {
			e.beginResize(r, h, at)
			return
		}
	}

	// Selection pass: characteristics, then shapes, then spacers.
	for i := len(e.chars) - 1; i >= 0; i-- {
		if e.chars[i].ContainsPoint(at.X, at.Y) {
			e.selectCharacteristic(e.chars[i])
			e.clearSpacerSelection()
			e.chars[i].CreateHandles()
			return
		}
	}
	for i := len(e.shapes) - 1; i >= 0; i-- {
		if e.shapes[i].ContainsPoint(at.X, at.Y) {
			e.selectShape(e.shapes[i])
			e.clearSpacerSelection()
			e.shapes[i].CreateHandles()
			return
		}
	}
	for i := len(e.spacers) - 1; i >= 0; i-- {
		if e.spacers[i].ContainsPoint(at.X, at.Y) {
			e.clearSelection()
			e.clearSpacerSelection()
			e.selectedSpacer = e.spacers[i]
			e.spacers[i].CreateHandles()
			return
		}
	}

	e.clearSelection()
	e.clearSpacerSelection()
}

func (e *Editor) beginResize(target obj.Resizable, h obj.Handle, at cp.Vector) {
	st := resizeState{
		active:       true,
		target:       target,
		handle:       h,
		startPointer: at,
	}
	switch t := target.(type) {
	case *obj.Spacer:
		st.startW = t.Width()
		st.startH = t.Height()
	case *obj.Characteristic:
		st.startW = t.Width()
		st.startH = t.Height()
	case *obj.Shape:
		st.startSize = t.Size()
	}
	e.resize = st
}

func (e *Editor) resizeMove(at cp.Vector) {
	st := &e.resize
	if !st.active || st.target == nil {
		return
	}
	switch t := st.target.(type) {
	case *obj.Spacer:
		e.resizeSpacer(t, at)
	case *obj.Characteristic:
		e.resizeCharacteristic(t, at)
	case *obj.Shape:
		e.resizeShape(t, at)
	}
}

// boxDims computes new width/height for a box entity from the handle drag.
// Corner handles drive both axes, edge handles one. The center stays fixed,
// so each unit of pointer travel changes the dimension by two.
func (st *resizeState) boxDims(at cp.Vector) (float64, float64) {
	dx := at.X - st.startPointer.X
	dy := at.Y - st.startPointer.Y

	w := st.startW
	h := st.startH
	switch st.handle.Kind {
	case obj.HandleLeft:
		w = st.startW - 2*dx
	case obj.HandleRight:
		w = st.startW + 2*dx
	case obj.HandleTop:
		h = st.startH + 2*dy
	case obj.HandleBottom:
		h = st.startH - 2*dy
	case obj.HandleTopLeft:
		w = st.startW - 2*dx
		h = st.startH + 2*dy
	case obj.HandleTopRight:
		w = st.startW + 2*dx
		h = st.startH + 2*dy
	case obj.HandleBottomLeft:
		w = st.startW - 2*dx
		h = st.startH - 2*dy
	case obj.HandleBottomRight:
		w = st.startW + 2*dx
		h = st.startH - 2*dy
	case obj.HandleRadial:
	}
	return math.Max(w, minDimension), math.Max(h, minDimension)
}

func (e *Editor) resizeSpacer(sp *obj.Spacer, at cp.Vector) {
	w, h := e.resize.boxDims(at)

	// Spacers shrink against whichever level edge they would cross instead
	// of sliding.
	pos := sp.Position()
	w = math.Min(w, 2*math.Min(pos.X-common.LevelLeft, common.LevelRight-pos.X))
	h = math.Min(h, 2*math.Min(pos.Y-common.LevelBottom, common.LevelTop-pos.Y))
	w = math.Max(w, minDimension)
	h = math.Max(h, minDimension)

	// Growing a spacer over placed entities would break the exclusion
	// invariant; hold the last valid size instead.
	nb := obj.SpacerConfig{Position: pos, Width: w, Height: h}.Bounds()
	if e.overlapsAnyEntity(nb) {
		return
	}
	sp.UpdateSize(w, h)
}

func (e *Editor) resizeCharacteristic(c *obj.Characteristic, at cp.Vector) {
	if c.Shape() == obj.CharCircle {
		// True circles only: the radius is the center-to-pointer distance.
		pos := c.Position()
		r := math.Max(math.Hypot(at.X-pos.X, at.Y-pos.Y), minRadius)
		nb := obj.CharacteristicConfig{Position: pos, Shape: obj.CharCircle, Radius: r}.Bounds()
		if e.overlapsSpacer(nb, nil) != nil {
			return
		}
		c.SetRadius(r)
		return
	}
	w, h := e.resize.boxDims(at)
	nb := obj.CharacteristicConfig{
		Position: c.Position(),
		Shape:    obj.CharRect,
		Width:    w,
		Height:   h,
		Rotation: c.Rotation(),
	}.Bounds()
	if e.overlapsSpacer(nb, nil) != nil {
		return
	}
	c.UpdateSize(w, h)
}

func (e *Editor) resizeShape(s *obj.Shape, at cp.Vector) {
	pos := s.Position()
	var size float64
	if s.Type() == obj.ShapeCircle {
		size = math.Max(math.Hypot(at.X-pos.X, at.Y-pos.Y), minRadius)
	} else {
		// Line handles sit at the ends; the dragged end sets the half
		// length along the line's own axis.
		dx := at.X - pos.X
		dy := at.Y - pos.Y
		local := dx*math.Cos(s.Rotation()) + dy*math.Sin(s.Rotation())
		size = math.Max(2*math.Abs(local), minDimension)
	}
	nb := obj.ShapeConfig{Position: pos, Type: s.Type(), Size: size, Rotation: s.Rotation()}.Bounds()
	if e.overlapsSpacer(nb, nil) != nil {
		return
	}
	s.UpdateSize(size)
}

// resizeEnd commits the resize: dimensions round to 3 decimals and the
// ledger record is refreshed. The selection and its handles stay.
func (e *Editor) resizeEnd() {
	st := e.resize
	e.resize = resizeState{}
	if !st.active || st.target == nil {
		return
	}
	switch t := st.target.(type) {
	case *obj.Spacer:
		t.UpdateSize(common.Round3(t.Width()), common.Round3(t.Height()))
	case *obj.Characteristic:
		if t.Shape() == obj.CharCircle {
			t.SetRadius(common.Round3(t.Radius()))
		} else {
			t.UpdateSize(common.Round3(t.Width()), common.Round3(t.Height()))
		}
	case *obj.Shape:
		t.UpdateSize(common.Round3(t.Size()))
	}
	e.syncWithMembers(st.target)
}
