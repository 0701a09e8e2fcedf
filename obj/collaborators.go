package obj

import "github.com/jakecoffman/cp"

// Scene is the visual collection entities register themselves with. Both Add
// and Remove must be idempotent.
type Scene interface {
	Add(node any)
	Remove(node any)
}

// Material carries the surface parameters applied to peg and characteristic
// collision shapes.
type Material struct {
	Friction   float64
	Elasticity float64
}

// PhysicsWorld is the slice of the physics space entities need. Implemented
// by the game's chipmunk space wrapper; nil-tolerant callers treat a missing
// world as "editor not wired yet" and skip body creation.
type PhysicsWorld interface {
	AddBody(body *cp.Body) *cp.Body
	AddShape(shape *cp.Shape) *cp.Shape
	RemoveBody(body *cp.Body)
	RemoveShape(shape *cp.Shape)
	PegMaterial() Material
}

// SoundOptions tunes a single playback.
type SoundOptions struct {
	Volume float64
	Pitch  float64
}

type AudioPlayer interface {
	PlaySound(name string, opts SoundOptions)
}
