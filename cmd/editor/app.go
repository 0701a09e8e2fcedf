package main

import (
	"log"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"golang.design/x/clipboard"

	"github.com/arcadebit/pegfall/common"
	"github.com/arcadebit/pegfall/editor"
	"github.com/arcadebit/pegfall/geom"
	"github.com/arcadebit/pegfall/obj"
)

const (
	toolbarHeight = 48

	screenWidth  = 960
	screenHeight = 720 + toolbarHeight
)

// App is the ebiten shell around the editor controller: it translates
// screen input to world coordinates, hosts the toolbar UI and draws the
// canvas.
type App struct {
	ed    *editor.Editor
	scene *obj.SceneList
	world *editorWorld

	ui      *ebitenui.UI
	toolbar *ToolBar

	outPath        string
	clipboardReady bool

	statusText  string
	statusUntil time.Time

	prevMouseDown bool
}

func NewApp(levelPath, outPath string, clipboardReady bool) *App {
	scene := obj.NewSceneList()
	world := newEditorWorld()
	ed := editor.New(scene, world, nil)

	app := &App{
		ed:             ed,
		scene:          scene,
		world:          world,
		outPath:        outPath,
		clipboardReady: clipboardReady,
	}
	app.ui, app.toolbar = BuildUI(func(t editor.Tool) {
		ed.SetTool(t)
	})

	// The toolbar strip swallows pointer input before it reaches the canvas.
	ed.PushModal(geom.Bounds{
		Left:   common.LevelLeft,
		Right:  common.LevelRight,
		Bottom: common.LevelTop,
		Top:    common.LevelTop + float64(toolbarHeight)/common.PixelsPerUnit,
	})

	if levelPath != "" {
		if err := ed.LoadFromFile(levelPath); err != nil {
			log.Printf("editor: open %s: %v", levelPath, err)
		} else {
			app.setStatus("loaded " + levelPath)
		}
	}
	return app
}

func (a *App) setStatus(msg string) {
	a.statusText = msg
	a.statusUntil = time.Now().Add(3 * time.Second)
}

// screenToWorld maps a canvas pixel to world coordinates. The toolbar strip
// sits above the playfield, so the canvas origin is shifted down.
func screenToWorld(x, y int) cp.Vector {
	return cp.Vector{
		X: float64(x)/common.PixelsPerUnit + common.LevelLeft,
		Y: common.LevelTop - (float64(y)-toolbarHeight)/common.PixelsPerUnit,
	}
}

func worldToScreen(p cp.Vector) (float32, float32) {
	return float32((p.X - common.LevelLeft) * common.PixelsPerUnit),
		float32((common.LevelTop-p.Y)*common.PixelsPerUnit + toolbarHeight)
}

func (a *App) Update() error {
	a.ui.Update()

	mx, my := ebiten.CursorPosition()
	at := screenToWorld(mx, my)
	mouseDown := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	hoveringUI := my < toolbarHeight
	if mouseDown && !a.prevMouseDown && !hoveringUI {
		a.ed.PointerDown(at.X, at.Y)
	}
	if mouseDown {
		a.ed.PointerMove(at.X, at.Y)
	}
	if !mouseDown && a.prevMouseDown {
		a.ed.PointerUp(at.X, at.Y)
	}
	a.prevMouseDown = mouseDown

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		a.ed.KeyDown(editor.KeyArrowLeft)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		a.ed.KeyDown(editor.KeyArrowRight)
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyArrowLeft) {
		a.ed.KeyUp(editor.KeyArrowLeft)
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyArrowRight) {
		a.ed.KeyUp(editor.KeyArrowRight)
	}

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := a.ed.SaveToFile(a.outPath); err != nil {
			log.Printf("editor: %v", err)
			a.setStatus("save failed")
		} else {
			a.setStatus("saved " + a.outPath)
		}
	}
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		a.copyLevelToClipboard()
	}
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyT) {
		a.ed.SetTestingMode(!a.ed.TestingMode())
	}

	a.ed.Tick(time.Second / common.TickRate)
	return nil
}

// copyLevelToClipboard exports the current level JSON for pasting into a
// file or bug report.
func (a *App) copyLevelToClipboard() {
	if !a.clipboardReady {
		a.setStatus("clipboard unavailable")
		return
	}
	b, err := a.ed.SaveLevel().Encode()
	if err != nil {
		log.Printf("editor: encode level: %v", err)
		a.setStatus("copy failed")
		return
	}
	clipboard.Write(clipboard.FmtText, b)
	a.setStatus("level JSON copied")
}

func (a *App) Draw(screen *ebiten.Image) {
	drawCanvas(screen, a.ed)
	a.ui.Draw(screen)
	if a.statusText != "" && time.Now().Before(a.statusUntil) {
		drawStatus(screen, a.statusText)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
