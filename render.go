package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/arcadebit/pegfall/common"
	"github.com/arcadebit/pegfall/obj"
)

var (
	colorBackground = color.NRGBA{R: 18, G: 20, B: 32, A: 255}
	colorWall       = color.NRGBA{R: 90, G: 95, B: 120, A: 255}
	colorBall       = color.NRGBA{R: 235, G: 235, B: 235, A: 255}
	colorLauncher   = color.NRGBA{R: 200, G: 200, B: 210, A: 255}

	pegColors = map[obj.PegColor]color.NRGBA{
		obj.ColorBlue:   {R: 70, G: 130, B: 235, A: 255},
		obj.ColorOrange: {R: 240, G: 140, B: 40, A: 255},
		obj.ColorGreen:  {R: 80, G: 200, B: 110, A: 255},
		obj.ColorPurple: {R: 170, G: 90, B: 220, A: 255},
	}
	pegHitColor = color.NRGBA{R: 250, G: 240, B: 170, A: 255}

	charFill = color.NRGBA{R: 120, G: 160, B: 220, A: 70}
)

func toScreen(x, y float64) (float32, float32) {
	sx := (x - common.LevelLeft) * common.PixelsPerUnit
	sy := (common.LevelTop - y) * common.PixelsPerUnit
	return float32(sx), float32(sy)
}

func drawPlayfield(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	l, t := toScreen(common.LevelLeft, common.LevelTop)
	r, b := toScreen(common.LevelRight, common.LevelBottom)
	vector.StrokeRect(screen, l, t, r-l, b-t, 2, colorWall, true)
}

func drawLevel(screen *ebiten.Image, lvl *Level) {
	for _, c := range lvl.Chars {
		drawCharacteristic(screen, c)
	}
	for _, p := range lvl.Pegs {
		drawPeg(screen, p)
	}
}

func drawPeg(screen *ebiten.Image, p *obj.Peg) {
	fill := pegColors[p.Color()]
	if p.Hit() {
		fill = pegHitColor
	}
	pos := p.Position()
	cx, cy := toScreen(pos.X, pos.Y)

	switch p.Type() {
	case obj.PegRect:
		w, h := p.SizeClass().RectDims()
		drawRotatedRect(screen, cx, cy, w, h, p.Rotation(), fill)
	case obj.PegDome:
		r := float32(p.SizeClass().Radius() * common.PixelsPerUnit)
		vector.DrawFilledCircle(screen, cx, cy, r, fill, true)
		// Flat base drawn over the lower half.
		vector.DrawFilledRect(screen, cx-r, cy, 2*r, r, colorBackground, false)
	default:
		r := float32(p.SizeClass().Radius() * common.PixelsPerUnit)
		vector.DrawFilledCircle(screen, cx, cy, r, fill, true)
	}
}

func drawCharacteristic(screen *ebiten.Image, c *obj.Characteristic) {
	pos := c.Position()
	cx, cy := toScreen(pos.X, pos.Y)
	if c.Shape() == obj.CharCircle {
		vector.DrawFilledCircle(screen, cx, cy, float32(c.Radius()*common.PixelsPerUnit), charFill, true)
		return
	}
	drawRotatedRect(screen, cx, cy, c.Width(), c.Height(), c.Rotation(), charFill)
}

// drawRotatedRect fills a w x h world-unit rectangle centered at screen
// coordinates, rotated by angle (world convention, counterclockwise).
func drawRotatedRect(screen *ebiten.Image, cx, cy float32, w, h, angle float64, fill color.NRGBA) {
	hw := w / 2 * common.PixelsPerUnit
	hh := h / 2 * common.PixelsPerUnit
	// Screen y grows downward, so the world angle flips sign.
	cos := math.Cos(-angle)
	sin := math.Sin(-angle)

	corners := [4][2]float64{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}
	var path vector.Path
	for i, c := range corners {
		x := float32(float64(cx) + c[0]*cos - c[1]*sin)
		y := float32(float64(cy) + c[0]*sin + c[1]*cos)
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].ColorR = float32(fill.R) / 255
		vs[i].ColorG = float32(fill.G) / 255
		vs[i].ColorB = float32(fill.B) / 255
		vs[i].ColorA = float32(fill.A) / 255
	}
	screen.DrawTriangles(vs, is, whitePixel(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

var whiteImg *ebiten.Image

func whitePixel() *ebiten.Image {
	if whiteImg == nil {
		whiteImg = ebiten.NewImage(1, 1)
		whiteImg.Fill(color.White)
	}
	return whiteImg
}

func drawBall(screen *ebiten.Image, b *Ball) {
	pos := b.Position()
	cx, cy := toScreen(pos.X, pos.Y)
	vector.DrawFilledCircle(screen, cx, cy, float32(common.BallRadius*common.PixelsPerUnit), colorBall, true)
}

func drawLauncher(screen *ebiten.Image, l *Launcher) {
	origin := l.Position()
	cx, cy := toScreen(origin.X, origin.Y)
	vector.DrawFilledCircle(screen, cx, cy, 10, colorLauncher, true)

	// Aim line.
	dir := l.Angle()
	tip := origin.Add(cpDir(dir).Mult(0.8))
	tx, ty := toScreen(tip.X, tip.Y)
	vector.StrokeLine(screen, cx, cy, tx, ty, 2, colorLauncher, true)
}
