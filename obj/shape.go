package obj

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/arcadebit/pegfall/geom"
)

type ShapeType int

const (
	ShapeLine ShapeType = iota
	ShapeCircle
)

type Align int

const (
	AlignMiddle Align = iota
	AlignAbove
	AlignBelow
)

type Justify int

const (
	JustifyCenter Justify = iota
	JustifyStart
	JustifyEnd
)

const (
	// captureMargin pads shape hit-testing so members can be dropped near the
	// layout path, not only exactly on it.
	captureMargin = 0.3

	lineThickness = 0.6

	defaultLineLength   = 2.0
	defaultCircleRadius = 0.5
	defaultMemberGap    = 0.5

	alignOffset = 0.25
)

type ShapeConfig struct {
	Position       cp.Vector
	Z              float64
	Type           ShapeType
	Size           float64
	Align          Align
	Justify        Justify
	Gap            float64
	Rotation       float64
	CanTakeObjects bool
}

// Bounds returns the bounds a shape built from this config would occupy.
func (cfg ShapeConfig) Bounds() geom.Bounds {
	size := cfg.Size
	if math.IsNaN(size) || size <= 0 {
		if cfg.Type == ShapeCircle {
			size = defaultCircleRadius
		} else {
			size = defaultLineLength
		}
	}
	switch cfg.Type {
	case ShapeCircle:
		r := size + captureMargin
		return geom.FromCenter(cfg.Position.X, cfg.Position.Y, r, r)
	default:
		return rotatedAABB(cfg.Position, size+2*captureMargin, lineThickness, cfg.Rotation)
	}
}

// Shape is a layout container. Contained pegs and characteristics never keep
// their raw cursor positions; the shape's layout algorithm owns their final
// placement, in list order.
type Shape struct {
	id    uint64
	scene Scene

	pos      cp.Vector
	z        float64
	typ      ShapeType
	size     float64
	rotation float64

	align          Align
	justify        Justify
	gap            float64
	canTakeObjects bool

	pegs  []*Peg
	chars []*Characteristic

	handles []Handle
}

func NewShape(scene Scene, cfg ShapeConfig) *Shape {
	s := &Shape{
		id:             NextID(),
		scene:          scene,
		pos:            cfg.Position,
		z:              cfg.Z,
		typ:            cfg.Type,
		size:           cfg.Size,
		rotation:       cfg.Rotation,
		align:          cfg.Align,
		justify:        cfg.Justify,
		gap:            cfg.Gap,
		canTakeObjects: cfg.CanTakeObjects,
	}
	if math.IsNaN(s.size) || s.size <= 0 {
		if s.typ == ShapeCircle {
			s.size = defaultCircleRadius
		} else {
			s.size = defaultLineLength
		}
	}
	if math.IsNaN(s.gap) || s.gap < 0 {
		s.gap = 0
	}
	if scene != nil {
		scene.Add(s)
	}
	return s
}

func (s *Shape) ID() uint64          { return s.id }
func (s *Shape) Kind() Kind          { return KindShape }
func (s *Shape) Position() cp.Vector { return s.pos }
func (s *Shape) Z() float64          { return s.z }
func (s *Shape) Type() ShapeType     { return s.typ }
func (s *Shape) Size() float64       { return s.size }
func (s *Shape) Rotation() float64   { return s.rotation }
func (s *Shape) Align() Align        { return s.align }
func (s *Shape) Justify() Justify    { return s.justify }
func (s *Shape) Gap() float64        { return s.gap }

func (s *Shape) CanTakeObjects() bool       { return s.canTakeObjects }
func (s *Shape) SetCanTakeObjects(can bool) { s.canTakeObjects = can }

func (s *Shape) ContainedPegs() []*Peg                       { return s.pegs }
func (s *Shape) ContainedCharacteristics() []*Characteristic { return s.chars }
func (s *Shape) MemberCount() int                            { return len(s.pegs) + len(s.chars) }

// SetLayoutParams updates alignment parameters and re-lays-out members.
func (s *Shape) SetLayoutParams(align Align, justify Justify, gap float64) {
	if math.IsNaN(gap) || gap < 0 {
		gap = 0
	}
	s.align = align
	s.justify = justify
	s.gap = gap
	s.Layout()
}

func (s *Shape) MoveTo(pos cp.Vector) {
	s.pos = pos
	s.Layout()
	s.refreshHandles()
}

func (s *Shape) SetRotation(radians float64) {
	s.rotation = radians
	s.Layout()
	s.refreshHandles()
}

func (s *Shape) UpdateSize(size float64) {
	if math.IsNaN(size) || size <= 0 {
		return
	}
	s.size = size
	s.Layout()
	s.refreshHandles()
}

// InsertPeg places p at index in the contained list, pulling it out of any
// prior container first so a peg never belongs to two shapes.
func (s *Shape) InsertPeg(p *Peg, index int) {
	if p == nil {
		return
	}
	if prev := p.Container(); prev != nil && prev != s {
		prev.RemovePeg(p)
	} else if prev == s {
		s.removePegNoLayout(p)
	}
	if index < 0 {
		index = 0
	}
	if index > len(s.pegs) {
		index = len(s.pegs)
	}
	s.pegs = append(s.pegs, nil)
	copy(s.pegs[index+1:], s.pegs[index:])
	s.pegs[index] = p
	p.setContainer(s)
	s.Layout()
}

func (s *Shape) RemovePeg(p *Peg) bool {
	if !s.removePegNoLayout(p) {
		return false
	}
	s.Layout()
	return true
}

func (s *Shape) removePegNoLayout(p *Peg) bool {
	for i, m := range s.pegs {
		if m == p {
			s.pegs = append(s.pegs[:i], s.pegs[i+1:]...)
			p.setContainer(nil)
			return true
		}
	}
	return false
}

func (s *Shape) InsertCharacteristic(c *Characteristic, index int) {
	if c == nil {
		return
	}
	if prev := c.Container(); prev != nil && prev != s {
		prev.RemoveCharacteristic(c)
	} else if prev == s {
		s.removeCharNoLayout(c)
	}
	if index < 0 {
		index = 0
	}
	if index > len(s.chars) {
		index = len(s.chars)
	}
	s.chars = append(s.chars, nil)
	copy(s.chars[index+1:], s.chars[index:])
	s.chars[index] = c
	c.setContainer(s)
	s.Layout()
}

func (s *Shape) RemoveCharacteristic(c *Characteristic) bool {
	if !s.removeCharNoLayout(c) {
		return false
	}
	s.Layout()
	return true
}

func (s *Shape) removeCharNoLayout(c *Characteristic) bool {
	for i, m := range s.chars {
		if m == c {
			s.chars = append(s.chars[:i], s.chars[i+1:]...)
			c.setContainer(nil)
			return true
		}
	}
	return false
}

type shapeMember interface {
	MoveTo(pos cp.Vector)
	Position() cp.Vector
}

func (s *Shape) members() []shapeMember {
	out := make([]shapeMember, 0, len(s.pegs)+len(s.chars))
	for _, p := range s.pegs {
		out = append(out, p)
	}
	for _, c := range s.chars {
		out = append(out, c)
	}
	return out
}

// Layout recomputes every contained member's world position from the list
// order and the shape's alignment parameters.
func (s *Shape) Layout() {
	members := s.members()
	n := len(members)
	if n == 0 {
		return
	}
	switch s.typ {
	case ShapeCircle:
		s.layoutCircle(members)
	default:
		s.layoutLine(members)
	}
}

func (s *Shape) layoutLine(members []shapeMember) {
	n := len(members)
	gap := s.gap
	if gap <= 0 {
		gap = defaultMemberGap
	}
	span := gap * float64(n-1)

	var start float64
	switch s.justify {
	case JustifyStart:
		start = -s.size / 2
	case JustifyEnd:
		start = s.size/2 - span
	default:
		start = -span / 2
	}

	var perp float64
	switch s.align {
	case AlignAbove:
		perp = alignOffset
	case AlignBelow:
		perp = -alignOffset
	}

	cos := math.Cos(s.rotation)
	sin := math.Sin(s.rotation)
	for i, m := range members {
		lx := start + gap*float64(i)
		m.MoveTo(cp.Vector{
			X: s.pos.X + lx*cos - perp*sin,
			Y: s.pos.Y + lx*sin + perp*cos,
		})
	}
}

func (s *Shape) layoutCircle(members []shapeMember) {
	n := len(members)
	r := s.size

	// Angles grow clockwise starting from the top of the circle so list
	// order reads naturally.
	top := s.rotation + math.Pi/2
	step := 2 * math.Pi / float64(n)
	if s.justify != JustifyCenter {
		arc := s.gap
		if arc <= 0 {
			arc = defaultMemberGap
		}
		step = arc / math.Max(r, 0.1)
	}

	var angle func(i int) float64
	switch s.justify {
	case JustifyStart:
		angle = func(i int) float64 { return top - step*float64(i) }
	case JustifyEnd:
		angle = func(i int) float64 { return top + step*float64(n-1-i) }
	default:
		angle = func(i int) float64 { return top - step*float64(i) }
	}

	for i, m := range members {
		a := angle(i)
		m.MoveTo(cp.Vector{
			X: s.pos.X + r*math.Cos(a),
			Y: s.pos.Y + r*math.Sin(a),
		})
	}
}

// scalarCoord projects a world point onto the layout axis: local x for lines,
// clockwise-from-top angle for circles. Used for nearest-match insertion.
func (s *Shape) scalarCoord(p cp.Vector) float64 {
	switch s.typ {
	case ShapeCircle:
		a := math.Atan2(p.Y-s.pos.Y, p.X-s.pos.X)
		t := s.rotation + math.Pi/2 - a
		for t < 0 {
			t += 2 * math.Pi
		}
		for t >= 2*math.Pi {
			t -= 2 * math.Pi
		}
		return t
	default:
		dx := p.X - s.pos.X
		dy := p.Y - s.pos.Y
		return dx*math.Cos(s.rotation) + dy*math.Sin(s.rotation)
	}
}

// PegInsertionIndex returns where a peg dropped at point should land in the
// contained list, by nearest match against the current members.
func (s *Shape) PegInsertionIndex(point cp.Vector) int {
	t := s.scalarCoord(point)
	idx := 0
	for _, p := range s.pegs {
		if s.scalarCoord(p.Position()) < t {
			idx++
		}
	}
	return idx
}

func (s *Shape) CharacteristicInsertionIndex(point cp.Vector) int {
	t := s.scalarCoord(point)
	idx := 0
	for _, c := range s.chars {
		if s.scalarCoord(c.Position()) < t {
			idx++
		}
	}
	return idx
}

func (s *Shape) Bounds() geom.Bounds {
	switch s.typ {
	case ShapeCircle:
		r := s.size + captureMargin
		return geom.FromCenter(s.pos.X, s.pos.Y, r, r)
	default:
		return rotatedAABB(s.pos, s.size+2*captureMargin, lineThickness, s.rotation)
	}
}

func (s *Shape) ContainsPoint(x, y float64) bool {
	switch s.typ {
	case ShapeCircle:
		return math.Hypot(x-s.pos.X, y-s.pos.Y) <= s.size+captureMargin
	default:
		return rotatedBoxContains(s.pos, s.size+2*captureMargin, lineThickness, s.rotation, x, y)
	}
}

func (s *Shape) CreateHandles() {
	switch s.typ {
	case ShapeCircle:
		s.handles = radialHandles(s.pos, s.size)
	default:
		half := s.size / 2
		cos := math.Cos(s.rotation)
		sin := math.Sin(s.rotation)
		s.handles = []Handle{
			{Kind: HandleLeft, Pos: cp.Vector{X: s.pos.X - half*cos, Y: s.pos.Y - half*sin}},
			{Kind: HandleRight, Pos: cp.Vector{X: s.pos.X + half*cos, Y: s.pos.Y + half*sin}},
		}
	}
}

func (s *Shape) RemoveHandles() {
	s.handles = nil
}

func (s *Shape) Handles() []Handle {
	return s.handles
}

func (s *Shape) HandleAt(x, y float64) (Handle, bool) {
	return handleAt(s.handles, x, y)
}

func (s *Shape) refreshHandles() {
	if s.handles != nil {
		s.CreateHandles()
	}
}

// Remove detaches the shape itself. Contained members are not touched; the
// editor cascades their deletion so the ledger stays in sync.
func (s *Shape) Remove() {
	if s.scene != nil {
		s.scene.Remove(s)
	}
}
