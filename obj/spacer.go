package obj

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/arcadebit/pegfall/geom"
)

// Spacer is an editor-only rectangular exclusion zone. It never enters the
// physics world and is invisible during play; its whole job is to keep other
// entities out of its bounds.
type Spacer struct {
	id    uint64
	scene Scene

	pos    cp.Vector
	z      float64
	width  float64
	height float64

	handles []Handle
}

type SpacerConfig struct {
	Position cp.Vector
	Z        float64
	Width    float64
	Height   float64
}

// Bounds returns the bounds a spacer built from this config would occupy.
func (cfg SpacerConfig) Bounds() geom.Bounds {
	w := cfg.Width
	h := cfg.Height
	if math.IsNaN(w) || w <= 0 {
		w = 1
	}
	if math.IsNaN(h) || h <= 0 {
		h = 1
	}
	return geom.FromCenter(cfg.Position.X, cfg.Position.Y, w/2, h/2)
}

func NewSpacer(scene Scene, cfg SpacerConfig) *Spacer {
	w := cfg.Width
	h := cfg.Height
	if math.IsNaN(w) || w <= 0 {
		w = 1
	}
	if math.IsNaN(h) || h <= 0 {
		h = 1
	}
	s := &Spacer{
		id:     NextID(),
		scene:  scene,
		pos:    cfg.Position,
		z:      cfg.Z,
		width:  w,
		height: h,
	}
	if scene != nil {
		scene.Add(s)
	}
	return s
}

func (s *Spacer) ID() uint64          { return s.id }
func (s *Spacer) Kind() Kind          { return KindSpacer }
func (s *Spacer) Position() cp.Vector { return s.pos }
func (s *Spacer) Z() float64          { return s.z }
func (s *Spacer) Width() float64      { return s.width }
func (s *Spacer) Height() float64     { return s.height }

// Spacers do not rotate; the constraint solver relies on their bounds being
// axis-aligned.
func (s *Spacer) Rotation() float64           { return 0 }
func (s *Spacer) SetRotation(radians float64) {}

func (s *Spacer) MoveTo(pos cp.Vector) {
	s.pos = pos
	s.refreshHandles()
}

func (s *Spacer) UpdateSize(w, h float64) {
	if math.IsNaN(w) || math.IsNaN(h) {
		return
	}
	s.width = w
	s.height = h
	s.refreshHandles()
}

func (s *Spacer) Bounds() geom.Bounds {
	return geom.FromCenter(s.pos.X, s.pos.Y, s.width/2, s.height/2)
}

func (s *Spacer) ContainsPoint(x, y float64) bool {
	return s.Bounds().Contains(x, y)
}

func (s *Spacer) CreateHandles() {
	s.handles = boxHandles(s.Bounds())
}

func (s *Spacer) RemoveHandles() {
	s.handles = nil
}

func (s *Spacer) Handles() []Handle {
	return s.handles
}

func (s *Spacer) HandleAt(x, y float64) (Handle, bool) {
	return handleAt(s.handles, x, y)
}

func (s *Spacer) refreshHandles() {
	if s.handles != nil {
		s.CreateHandles()
	}
}

func (s *Spacer) Remove() {
	if s.scene != nil {
		s.scene.Remove(s)
	}
}
