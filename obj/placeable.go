package obj

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/arcadebit/pegfall/geom"
)

// Placeable is the capability set shared by every entity the editor can
// place: pegs, shapes, spacers and characteristics.
type Placeable interface {
	ID() uint64
	Kind() Kind
	Position() cp.Vector
	Z() float64
	MoveTo(pos cp.Vector)
	Bounds() geom.Bounds
	ContainsPoint(x, y float64) bool
	Rotation() float64
	SetRotation(radians float64)
	Remove()
}

// Resizable adds drag handles. Pegs are fixed-size and do not implement it.
type Resizable interface {
	Placeable
	CreateHandles()
	RemoveHandles()
	Handles() []Handle
	HandleAt(x, y float64) (Handle, bool)
}

type HandleKind int

const (
	HandleTopLeft HandleKind = iota
	HandleTop
	HandleTopRight
	HandleRight
	HandleBottomRight
	HandleBottom
	HandleBottomLeft
	HandleLeft
	// HandleRadial sits on the rim of a circle entity; dragging it sets the
	// radius to the center-to-pointer distance.
	HandleRadial
)

// Handle is a drag target on a selected resizable entity.
type Handle struct {
	Kind HandleKind
	Pos  cp.Vector
}

const handleHitRadius = 0.12

func handleAt(handles []Handle, x, y float64) (Handle, bool) {
	for _, h := range handles {
		dx := h.Pos.X - x
		dy := h.Pos.Y - y
		if math.Hypot(dx, dy) <= handleHitRadius {
			return h, true
		}
	}
	return Handle{}, false
}

// boxHandles returns the eight handles around an axis-aligned box.
func boxHandles(b geom.Bounds) []Handle {
	cx := b.CenterX()
	cy := b.CenterY()
	return []Handle{
		{Kind: HandleTopLeft, Pos: cp.Vector{X: b.Left, Y: b.Top}},
		{Kind: HandleTop, Pos: cp.Vector{X: cx, Y: b.Top}},
		{Kind: HandleTopRight, Pos: cp.Vector{X: b.Right, Y: b.Top}},
		{Kind: HandleRight, Pos: cp.Vector{X: b.Right, Y: cy}},
		{Kind: HandleBottomRight, Pos: cp.Vector{X: b.Right, Y: b.Bottom}},
		{Kind: HandleBottom, Pos: cp.Vector{X: cx, Y: b.Bottom}},
		{Kind: HandleBottomLeft, Pos: cp.Vector{X: b.Left, Y: b.Bottom}},
		{Kind: HandleLeft, Pos: cp.Vector{X: b.Left, Y: cy}},
	}
}

// radialHandles returns four rim handles for a circle of the given radius.
func radialHandles(center cp.Vector, radius float64) []Handle {
	return []Handle{
		{Kind: HandleRadial, Pos: cp.Vector{X: center.X + radius, Y: center.Y}},
		{Kind: HandleRadial, Pos: cp.Vector{X: center.X - radius, Y: center.Y}},
		{Kind: HandleRadial, Pos: cp.Vector{X: center.X, Y: center.Y + radius}},
		{Kind: HandleRadial, Pos: cp.Vector{X: center.X, Y: center.Y - radius}},
	}
}

// rotatedAABB returns the axis-aligned bounds of a w x h box rotated by the
// given angle around its center.
func rotatedAABB(center cp.Vector, w, h, angle float64) geom.Bounds {
	c := math.Abs(math.Cos(angle))
	s := math.Abs(math.Sin(angle))
	halfW := (w*c + h*s) / 2
	halfH := (w*s + h*c) / 2
	return geom.FromCenter(center.X, center.Y, halfW, halfH)
}

// rotatedBoxContains tests a point against a w x h box rotated by angle.
func rotatedBoxContains(center cp.Vector, w, h, angle, x, y float64) bool {
	dx := x - center.X
	dy := y - center.Y
	c := math.Cos(-angle)
	s := math.Sin(-angle)
	lx := dx*c - dy*s
	ly := dx*s + dy*c
	return math.Abs(lx) <= w/2 && math.Abs(ly) <= h/2
}
