package main

import (
	"github.com/jakecoffman/cp"

	"github.com/arcadebit/pegfall/common"
	"github.com/arcadebit/pegfall/obj"
)

// World wraps the chipmunk space and implements obj.PhysicsWorld. The walls
// along the level sides and a kill sensor below the bottom edge are built
// once at construction.
type World struct {
	space *cp.Space

	pegMaterial obj.Material

	// OnBallHitPeg fires once per peg per ball flight.
	OnBallHitPeg func(p *obj.Peg)
	// OnBallHitCharacteristic fires on every bounce off a characteristic.
	OnBallHitCharacteristic func(c *obj.Characteristic)
	// OnBallLost fires when a ball crosses the bottom kill line.
	OnBallLost func(b *Ball)
}

func NewWorld() *World {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: common.Gravity})

	w := &World{
		space:       space,
		pegMaterial: obj.Material{Friction: 0.4, Elasticity: 0.8},
	}
	w.buildWalls()
	w.installHandlers()
	return w
}

func (w *World) Space() *cp.Space { return w.space }

func (w *World) AddBody(body *cp.Body) *cp.Body     { return w.space.AddBody(body) }
func (w *World) AddShape(shape *cp.Shape) *cp.Shape { return w.space.AddShape(shape) }

func (w *World) RemoveBody(body *cp.Body) {
	if body != nil {
		w.space.RemoveBody(body)
	}
}

func (w *World) RemoveShape(shape *cp.Shape) {
	if shape != nil {
		w.space.RemoveShape(shape)
	}
}

func (w *World) PegMaterial() obj.Material { return w.pegMaterial }

func (w *World) Step(dt float64) {
	w.space.Step(dt)
}

// buildWalls adds static segments along the side and top edges. The bottom
// stays open; a sensor line below it reports lost balls.
func (w *World) buildWalls() {
	static := w.space.StaticBody
	walls := []struct{ a, b cp.Vector }{
		{cp.Vector{X: common.LevelLeft, Y: common.LevelBottom}, cp.Vector{X: common.LevelLeft, Y: common.LevelTop}},
		{cp.Vector{X: common.LevelRight, Y: common.LevelBottom}, cp.Vector{X: common.LevelRight, Y: common.LevelTop}},
		{cp.Vector{X: common.LevelLeft, Y: common.LevelTop}, cp.Vector{X: common.LevelRight, Y: common.LevelTop}},
	}
	for _, seg := range walls {
		s := w.space.AddShape(cp.NewSegment(static, seg.a, seg.b, 0.05))
		s.SetElasticity(0.7)
		s.SetFriction(0.4)
		s.SetCollisionType(obj.CollisionTypeWall)
	}

	killY := common.LevelBottom - 1.0
	kill := w.space.AddShape(cp.NewSegment(static,
		cp.Vector{X: common.LevelLeft - 2, Y: killY},
		cp.Vector{X: common.LevelRight + 2, Y: killY}, 0.1))
	kill.SetSensor(true)
	kill.SetCollisionType(obj.CollisionTypeKill)
}

func (w *World) installHandlers() {
	pegHandler := w.space.NewCollisionHandler(obj.CollisionTypeBall, obj.CollisionTypePeg)
	pegHandler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, _ interface{}) bool {
		_, pegShape := arb.Shapes()
		p, ok := pegShape.Body().UserData.(*obj.Peg)
		if !ok {
			return true
		}
		if !p.Hit() {
			p.MarkHit()
			if w.OnBallHitPeg != nil {
				w.OnBallHitPeg(p)
			}
		}
		return true
	}

	charHandler := w.space.NewCollisionHandler(obj.CollisionTypeBall, obj.CollisionTypeCharacteristic)
	charHandler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, _ interface{}) bool {
		_, cs := arb.Shapes()
		c, ok := cs.Body().UserData.(*obj.Characteristic)
		if !ok {
			return true
		}
		if w.OnBallHitCharacteristic != nil {
			w.OnBallHitCharacteristic(c)
		}
		return true
	}

	killHandler := w.space.NewCollisionHandler(obj.CollisionTypeBall, obj.CollisionTypeKill)
	killHandler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, _ interface{}) bool {
		ballShape, _ := arb.Shapes()
		if b, ok := ballShape.Body().UserData.(*Ball); ok && w.OnBallLost != nil {
			w.OnBallLost(b)
		}
		return false
	}
}
