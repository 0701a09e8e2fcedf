package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"

	"github.com/arcadebit/pegfall/common"
	"github.com/arcadebit/pegfall/editor"
	"github.com/arcadebit/pegfall/obj"
)

var (
	canvasBackground = color.NRGBA{R: 18, G: 20, B: 32, A: 255}
	borderColor      = color.NRGBA{R: 90, G: 95, B: 120, A: 255}
	spacerFill       = color.NRGBA{R: 120, G: 120, B: 130, A: 60}
	spacerEdge       = color.NRGBA{R: 150, G: 150, B: 160, A: 180}
	shapeGuide       = color.NRGBA{R: 110, G: 180, B: 200, A: 120}
	charFill         = color.NRGBA{R: 120, G: 160, B: 220, A: 70}
	handleFill       = color.NRGBA{R: 250, G: 250, B: 250, A: 255}
	guideColor       = color.NRGBA{R: 250, G: 220, B: 90, A: 200}
	previewTint      = color.NRGBA{R: 200, G: 200, B: 200, A: 90}

	pegFill = map[obj.PegColor]color.NRGBA{
		obj.ColorBlue:   {R: 70, G: 130, B: 235, A: 255},
		obj.ColorOrange: {R: 240, G: 140, B: 40, A: 255},
		obj.ColorGreen:  {R: 80, G: 200, B: 110, A: 255},
		obj.ColorPurple: {R: 170, G: 90, B: 220, A: 255},
	}
)

func drawCanvas(screen *ebiten.Image, ed *editor.Editor) {
	screen.Fill(canvasBackground)

	l, t := worldToScreen(cp.Vector{X: common.LevelLeft, Y: common.LevelTop})
	r, b := worldToScreen(cp.Vector{X: common.LevelRight, Y: common.LevelBottom})
	vector.StrokeRect(screen, l, t, r-l, b-t, 2, borderColor, true)

	if ed.SnapGuideActive() {
		gx, gt := worldToScreen(cp.Vector{X: 0, Y: common.LevelTop})
		_, gb := worldToScreen(cp.Vector{X: 0, Y: common.LevelBottom})
		vector.StrokeLine(screen, gx, gt, gx, gb, 1, guideColor, true)
	}

	for _, sp := range ed.Spacers() {
		drawSpacer(screen, sp)
	}
	for _, s := range ed.Shapes() {
		drawShapeGuide(screen, s)
	}
	for _, c := range ed.Characteristics() {
		drawChar(screen, c)
	}
	for _, p := range ed.Pegs() {
		drawPeg(screen, p)
	}

	drawHandles(screen, ed)
	drawCopyPreview(screen, ed)
}

func drawSpacer(screen *ebiten.Image, sp *obj.Spacer) {
	b := sp.Bounds()
	x, y := worldToScreen(cp.Vector{X: b.Left, Y: b.Top})
	w := float32(b.Width() * common.PixelsPerUnit)
	h := float32(b.Height() * common.PixelsPerUnit)
	vector.DrawFilledRect(screen, x, y, w, h, spacerFill, false)
	vector.StrokeRect(screen, x, y, w, h, 1, spacerEdge, true)
}

func drawShapeGuide(screen *ebiten.Image, s *obj.Shape) {
	pos := s.Position()
	cx, cy := worldToScreen(pos)
	if s.Type() == obj.ShapeCircle {
		vector.StrokeCircle(screen, cx, cy, float32(s.Size()*common.PixelsPerUnit), 1, shapeGuide, true)
		return
	}
	half := s.Size() / 2
	dx := math.Cos(s.Rotation()) * half
	dy := math.Sin(s.Rotation()) * half
	ax, ay := worldToScreen(cp.Vector{X: pos.X - dx, Y: pos.Y - dy})
	bx, by := worldToScreen(cp.Vector{X: pos.X + dx, Y: pos.Y + dy})
	vector.StrokeLine(screen, ax, ay, bx, by, 1, shapeGuide, true)
}

func drawChar(screen *ebiten.Image, c *obj.Characteristic) {
	pos := c.Position()
	cx, cy := worldToScreen(pos)
	if c.Shape() == obj.CharCircle {
		vector.DrawFilledCircle(screen, cx, cy, float32(c.Radius()*common.PixelsPerUnit), charFill, true)
		return
	}
	b := c.Bounds()
	x, y := worldToScreen(cp.Vector{X: b.Left, Y: b.Top})
	vector.DrawFilledRect(screen, x, y,
		float32(b.Width()*common.PixelsPerUnit), float32(b.Height()*common.PixelsPerUnit), charFill, false)
}

func drawPeg(screen *ebiten.Image, p *obj.Peg) {
	fill := pegFill[p.Color()]
	pos := p.Position()
	cx, cy := worldToScreen(pos)
	if p.Type() == obj.PegRect {
		b := p.Bounds()
		x, y := worldToScreen(cp.Vector{X: b.Left, Y: b.Top})
		vector.DrawFilledRect(screen, x, y,
			float32(b.Width()*common.PixelsPerUnit), float32(b.Height()*common.PixelsPerUnit), fill, false)
		return
	}
	vector.DrawFilledCircle(screen, cx, cy, float32(p.SizeClass().Radius()*common.PixelsPerUnit), fill, true)
}

func drawHandles(screen *ebiten.Image, ed *editor.Editor) {
	var handles []obj.Handle
	if s := ed.SelectedShape(); s != nil {
		handles = s.Handles()
	} else if c := ed.SelectedCharacteristic(); c != nil {
		handles = c.Handles()
	} else if sp := ed.SelectedSpacer(); sp != nil {
		handles = sp.Handles()
	}
	for _, h := range handles {
		hx, hy := worldToScreen(h.Pos)
		vector.DrawFilledRect(screen, hx-3, hy-3, 6, 6, handleFill, false)
	}
}

func drawCopyPreview(screen *ebiten.Image, ed *editor.Editor) {
	pv := ed.CopyPreview()
	if pv == nil {
		return
	}
	cx, cy := worldToScreen(pv.Pos)
	vector.DrawFilledCircle(screen, cx, cy, 6, previewTint, true)
	for _, off := range pv.ChildOffsets {
		ox, oy := worldToScreen(pv.Pos.Add(off))
		vector.DrawFilledCircle(screen, ox, oy, 4, previewTint, true)
	}
}

func drawStatus(screen *ebiten.Image, msg string) {
	ebitenutil.DebugPrintAt(screen, msg, 8, screenHeight-20)
}
