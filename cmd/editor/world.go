package main

import (
	"github.com/jakecoffman/cp"

	"github.com/arcadebit/pegfall/obj"
)

// editorWorld is the editing-time physics space. Entities build real bodies
// so play-testing uses the same geometry, but nothing steps the space until
// testing mode runs.
type editorWorld struct {
	space *cp.Space
}

func newEditorWorld() *editorWorld {
	return &editorWorld{space: cp.NewSpace()}
}

func (w *editorWorld) AddBody(body *cp.Body) *cp.Body     { return w.space.AddBody(body) }
func (w *editorWorld) AddShape(shape *cp.Shape) *cp.Shape { return w.space.AddShape(shape) }

func (w *editorWorld) RemoveBody(body *cp.Body) {
	if body != nil {
		w.space.RemoveBody(body)
	}
}

func (w *editorWorld) RemoveShape(shape *cp.Shape) {
	if shape != nil {
		w.space.RemoveShape(shape)
	}
}

func (w *editorWorld) PegMaterial() obj.Material {
	return obj.Material{Friction: 0.4, Elasticity: 0.8}
}
