package obj

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/arcadebit/pegfall/geom"
)

type CharShape int

const (
	CharRect CharShape = iota
	CharCircle
)

type BounceType int

const (
	BounceNormal BounceType = iota
	BounceDampened
	BounceNone
	BounceSuper
)

// Elasticity maps a bounce type to the restitution applied to the region's
// collision shape.
func (b BounceType) Elasticity() float64 {
	switch b {
	case BounceDampened:
		return 0.35
	case BounceNone:
		return 0
	case BounceSuper:
		return 1.5
	default:
		return 0.8
	}
}

const defaultCharRadius = 0.5

type CharacteristicConfig struct {
	Position cp.Vector
	Z        float64
	Shape    CharShape
	Width    float64
	Height   float64
	Radius   float64
	Rotation float64
	Bounce   BounceType
}

// Bounds returns the bounds a characteristic built from this config would
// occupy, applying the same defaulting as the constructor.
func (cfg CharacteristicConfig) Bounds() geom.Bounds {
	switch cfg.Shape {
	case CharCircle:
		r := cfg.Radius
		if math.IsNaN(r) || r <= 0 {
			r = defaultCharRadius
		}
		return geom.FromCenter(cfg.Position.X, cfg.Position.Y, r, r)
	default:
		w := cfg.Width
		h := cfg.Height
		if math.IsNaN(w) || w <= 0 {
			w = 1
		}
		if math.IsNaN(h) || h <= 0 {
			h = 0.5
		}
		return rotatedAABB(cfg.Position, w, h, cfg.Rotation)
	}
}

// Characteristic is a bounce-modifier region. It participates in the physics
// world as a solid surface whose elasticity comes from its bounce type.
type Characteristic struct {
	id    uint64
	scene Scene
	world PhysicsWorld

	pos      cp.Vector
	z        float64
	shape    CharShape
	width    float64
	height   float64
	radius   float64
	rotation float64
	bounce   BounceType

	container *Shape
	handles   []Handle

	body    *cp.Body
	cpShape *cp.Shape
}

func NewCharacteristic(scene Scene, world PhysicsWorld, cfg CharacteristicConfig) *Characteristic {
	c := &Characteristic{
		id:       NextID(),
		scene:    scene,
		world:    world,
		pos:      cfg.Position,
		z:        cfg.Z,
		shape:    cfg.Shape,
		width:    cfg.Width,
		height:   cfg.Height,
		radius:   cfg.Radius,
		rotation: cfg.Rotation,
		bounce:   cfg.Bounce,
	}
	// Malformed sizes from deserialization clamp to documented defaults
	// instead of letting NaN run through the geometry math.
	if math.IsNaN(c.radius) || c.radius <= 0 {
		c.radius = defaultCharRadius
	}
	if math.IsNaN(c.width) || c.width <= 0 {
		c.width = 1
	}
	if math.IsNaN(c.height) || c.height <= 0 {
		c.height = 0.5
	}
	c.buildBody()
	if scene != nil {
		scene.Add(c)
	}
	return c
}

func (c *Characteristic) buildBody() {
	if c.world == nil {
		return
	}
	body := cp.NewStaticBody()
	body.SetPosition(c.pos)
	body.SetAngle(c.rotation)
	c.body = c.world.AddBody(body)
	c.rebuildShape()
}

func (c *Characteristic) rebuildShape() {
	if c.world == nil || c.body == nil {
		return
	}
	if c.cpShape != nil {
		c.world.RemoveShape(c.cpShape)
		c.cpShape = nil
	}
	var shape *cp.Shape
	switch c.shape {
	case CharCircle:
		shape = cp.NewCircle(c.body, c.radius, cp.Vector{})
	default:
		shape = cp.NewBox(c.body, c.width, c.height, 0)
	}
	shape.SetFriction(0.5)
	shape.SetElasticity(c.bounce.Elasticity())
	shape.SetCollisionType(CollisionTypeCharacteristic)
	shape.UserData = c
	c.cpShape = c.world.AddShape(shape)
}

func (c *Characteristic) ID() uint64          { return c.id }
func (c *Characteristic) Kind() Kind          { return KindCharacteristic }
func (c *Characteristic) Position() cp.Vector { return c.pos }
func (c *Characteristic) Z() float64          { return c.z }
func (c *Characteristic) Shape() CharShape    { return c.shape }
func (c *Characteristic) Width() float64      { return c.width }
func (c *Characteristic) Height() float64     { return c.height }
func (c *Characteristic) Radius() float64     { return c.radius }
func (c *Characteristic) Rotation() float64   { return c.rotation }
func (c *Characteristic) Bounce() BounceType  { return c.bounce }

func (c *Characteristic) Container() *Shape     { return c.container }
func (c *Characteristic) setContainer(s *Shape) { c.container = s }

func (c *Characteristic) SetBounce(b BounceType) {
	c.bounce = b
	if c.cpShape != nil {
		c.cpShape.SetElasticity(b.Elasticity())
	}
}

func (c *Characteristic) MoveTo(pos cp.Vector) {
	c.pos = pos
	if c.body != nil {
		c.body.SetPosition(pos)
	}
	c.refreshHandles()
}

func (c *Characteristic) SetRotation(radians float64) {
	c.rotation = radians
	if c.body != nil {
		c.body.SetAngle(radians)
	}
	c.refreshHandles()
}

// UpdateSize sets the rect dimensions. Circle regions resize through
// SetRadius; the collision primitive only supports true circles, so there is
// no aspect to distort.
func (c *Characteristic) UpdateSize(w, h float64) {
	if math.IsNaN(w) || math.IsNaN(h) {
		return
	}
	c.width = w
	c.height = h
	c.rebuildShape()
	c.refreshHandles()
}

func (c *Characteristic) SetRadius(r float64) {
	if math.IsNaN(r) || r <= 0 {
		r = defaultCharRadius
	}
	c.radius = r
	c.rebuildShape()
	c.refreshHandles()
}

func (c *Characteristic) Bounds() geom.Bounds {
	switch c.shape {
	case CharCircle:
		return geom.FromCenter(c.pos.X, c.pos.Y, c.radius, c.radius)
	default:
		return rotatedAABB(c.pos, c.width, c.height, c.rotation)
	}
}

func (c *Characteristic) ContainsPoint(x, y float64) bool {
	switch c.shape {
	case CharCircle:
		return math.Hypot(x-c.pos.X, y-c.pos.Y) <= c.radius
	default:
		return rotatedBoxContains(c.pos, c.width, c.height, c.rotation, x, y)
	}
}

func (c *Characteristic) CreateHandles() {
	switch c.shape {
	case CharCircle:
		c.handles = radialHandles(c.pos, c.radius)
	default:
		c.handles = boxHandles(c.Bounds())
	}
}

func (c *Characteristic) RemoveHandles() {
	c.handles = nil
}

func (c *Characteristic) Handles() []Handle {
	return c.handles
}

func (c *Characteristic) HandleAt(x, y float64) (Handle, bool) {
	return handleAt(c.handles, x, y)
}

func (c *Characteristic) refreshHandles() {
	if c.handles != nil {
		c.CreateHandles()
	}
}

func (c *Characteristic) Remove() {
	if c.world != nil {
		if c.cpShape != nil {
			c.world.RemoveShape(c.cpShape)
			c.cpShape = nil
		}
		if c.body != nil {
			c.world.RemoveBody(c.body)
			c.body = nil
		}
	}
	if c.scene != nil {
		c.scene.Remove(c)
	}
}
