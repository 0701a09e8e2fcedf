package main

import (
	"github.com/jakecoffman/cp"

	"github.com/arcadebit/pegfall/common"
	"github.com/arcadebit/pegfall/obj"
)

// Ball is the projectile in flight. One ball exists at a time; extra balls
// from powers queue up in the game state rather than spawning concurrently.
type Ball struct {
	world *World
	body  *cp.Body
	shape *cp.Shape

	lost bool
}

func NewBall(world *World, pos, velocity cp.Vector) *Ball {
	mass := 1.0
	moment := cp.MomentForCircle(mass, 0, common.BallRadius, cp.Vector{})

	body := world.AddBody(cp.NewBody(mass, moment))
	body.SetPosition(pos)
	body.SetVelocity(velocity.X, velocity.Y)

	shape := world.AddShape(cp.NewCircle(body, common.BallRadius, cp.Vector{}))
	shape.SetElasticity(0.8)
	shape.SetFriction(0.4)
	shape.SetCollisionType(obj.CollisionTypeBall)

	b := &Ball{world: world, body: body, shape: shape}
	body.UserData = b
	return b
}

func (b *Ball) Position() cp.Vector { return b.body.Position() }
func (b *Ball) Velocity() cp.Vector { return b.body.Velocity() }
func (b *Ball) Lost() bool          { return b.lost }

func (b *Ball) markLost() { b.lost = true }

func (b *Ball) Remove() {
	if b.shape != nil {
		b.world.RemoveShape(b.shape)
		b.shape = nil
	}
	if b.body != nil {
		b.world.RemoveBody(b.body)
		b.body = nil
	}
}
