package obj

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/arcadebit/pegfall/geom"
)

type PegType int

const (
	PegRound PegType = iota
	PegRect
	PegDome
)

type PegSize int

const (
	SizeSmall PegSize = iota
	SizeBase
	SizeLarge
)

type PegColor int

const (
	ColorBlue PegColor = iota
	ColorOrange
	ColorGreen
	ColorPurple
)

// Radius is the collision radius for round and dome pegs of this size class.
func (s PegSize) Radius() float64 {
	switch s {
	case SizeSmall:
		return 0.12
	case SizeLarge:
		return 0.25
	default:
		return 0.175
	}
}

// RectDims returns width and height for rect pegs of this size class.
func (s PegSize) RectDims() (float64, float64) {
	switch s {
	case SizeSmall:
		return 0.7, 0.16
	case SizeLarge:
		return 1.4, 0.3
	default:
		return 1.0, 0.22
	}
}

func (c PegColor) Points() int {
	switch c {
	case ColorOrange:
		return 100
	case ColorPurple:
		return 500
	default:
		return 10
	}
}

type PegConfig struct {
	Position cp.Vector
	Z        float64
	Type     PegType
	Size     PegSize
	Color    PegColor
	Rotation float64
}

// Bounds returns the bounds a peg built from this config would occupy, for
// placement checks before the entity exists.
func (cfg PegConfig) Bounds() geom.Bounds {
	switch cfg.Type {
	case PegRect:
		w, h := cfg.Size.RectDims()
		return rotatedAABB(cfg.Position, w, h, cfg.Rotation)
	default:
		r := cfg.Size.Radius()
		return geom.FromCenter(cfg.Position.X, cfg.Position.Y, r, r)
	}
}

// Peg is a single hit target. Its physics body is static; rotation is pushed
// through to the body so collision response matches the visual.
type Peg struct {
	id    uint64
	scene Scene
	world PhysicsWorld

	pos      cp.Vector
	z        float64
	typ      PegType
	size     PegSize
	color    PegColor
	rotation float64

	hit bool

	// container is the Shape currently laying this peg out, nil when free.
	container *Shape

	body  *cp.Body
	shape *cp.Shape
}

func NewPeg(scene Scene, world PhysicsWorld, cfg PegConfig) *Peg {
	p := &Peg{
		id:       NextID(),
		scene:    scene,
		world:    world,
		pos:      cfg.Position,
		z:        cfg.Z,
		typ:      cfg.Type,
		size:     cfg.Size,
		color:    cfg.Color,
		rotation: cfg.Rotation,
	}
	p.buildBody()
	if scene != nil {
		scene.Add(p)
	}
	return p
}

func (p *Peg) buildBody() {
	if p.world == nil {
		return
	}
	body := cp.NewStaticBody()
	body.SetPosition(p.pos)
	body.SetAngle(p.rotation)

	var shape *cp.Shape
	switch p.typ {
	case PegRect:
		w, h := p.size.RectDims()
		shape = cp.NewBox(body, w, h, 0)
	default:
		// Dome pegs share the round collision primitive; only the visual
		// differs.
		shape = cp.NewCircle(body, p.size.Radius(), cp.Vector{})
	}
	mat := p.world.PegMaterial()
	shape.SetFriction(mat.Friction)
	shape.SetElasticity(mat.Elasticity)
	shape.SetCollisionType(CollisionTypePeg)
	shape.UserData = p

	p.body = p.world.AddBody(body)
	p.shape = p.world.AddShape(shape)
}

func (p *Peg) ID() uint64          { return p.id }
func (p *Peg) Kind() Kind          { return KindPeg }
func (p *Peg) Position() cp.Vector { return p.pos }
func (p *Peg) Z() float64          { return p.z }
func (p *Peg) Type() PegType       { return p.typ }
func (p *Peg) SizeClass() PegSize  { return p.size }
func (p *Peg) Color() PegColor     { return p.color }
func (p *Peg) Points() int         { return p.color.Points() }
func (p *Peg) Rotation() float64   { return p.rotation }

func (p *Peg) IsOrange() bool { return p.color == ColorOrange }
func (p *Peg) IsGreen() bool  { return p.color == ColorGreen }
func (p *Peg) IsPurple() bool { return p.color == ColorPurple }

func (p *Peg) Hit() bool { return p.hit }
func (p *Peg) MarkHit()  { p.hit = true }
func (p *Peg) ClearHit() { p.hit = false }

func (p *Peg) Container() *Shape     { return p.container }
func (p *Peg) setContainer(s *Shape) { p.container = s }

func (p *Peg) MoveTo(pos cp.Vector) {
	p.pos = pos
	if p.body != nil {
		p.body.SetPosition(pos)
	}
}

func (p *Peg) SetRotation(radians float64) {
	p.rotation = radians
	if p.body != nil {
		p.body.SetAngle(radians)
	}
}

func (p *Peg) SetColor(c PegColor) { p.color = c }

func (p *Peg) Bounds() geom.Bounds {
	switch p.typ {
	case PegRect:
		w, h := p.size.RectDims()
		return rotatedAABB(p.pos, w, h, p.rotation)
	default:
		r := p.size.Radius()
		return geom.FromCenter(p.pos.X, p.pos.Y, r, r)
	}
}

func (p *Peg) ContainsPoint(x, y float64) bool {
	switch p.typ {
	case PegRect:
		w, h := p.size.RectDims()
		return rotatedBoxContains(p.pos, w, h, p.rotation, x, y)
	default:
		return math.Hypot(x-p.pos.X, y-p.pos.Y) <= p.size.Radius()
	}
}

// Remove detaches the peg from the physics world and scene. Safe to call
// when collaborators were never wired.
func (p *Peg) Remove() {
	if p.world != nil {
		if p.shape != nil {
			p.world.RemoveShape(p.shape)
			p.shape = nil
		}
		if p.body != nil {
			p.world.RemoveBody(p.body)
			p.body = nil
		}
	}
	if p.scene != nil {
		p.scene.Remove(p)
	}
}
