package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"

	"github.com/arcadebit/pegfall/common"
	"github.com/arcadebit/pegfall/levels"
	"github.com/arcadebit/pegfall/obj"
	"github.com/arcadebit/pegfall/powers"
)

const (
	baseWidth  = 960
	baseHeight = 720
)

type gamePhase int

const (
	phaseAiming gamePhase = iota
	phaseFlight
	phaseWon
	phaseLost
)

// Game runs a level in play mode: aim, fire, resolve, repeat until the
// orange pegs are cleared or the balls run out.
type Game struct {
	frames int

	scene    *obj.SceneList
	world    *World
	level    *Level
	launcher *Launcher
	ball     *Ball
	audio    obj.AudioPlayer

	character *powers.Character
	reloader  *powers.Reloader
	powerCtx  powers.Context

	phase     gamePhase
	score     int
	ballsLeft int

	paused        bool
	quitRequested bool
	pauseUI       *ebitenui.UI
	debugDraw     bool

	prevMouseDown bool
}

func NewGame(levelName, characterName string, muted, debugDraw, watchPowers bool) *Game {
	scene := obj.NewSceneList()
	world := NewWorld()

	f, err := loadLevelFile(levelName)
	if err != nil {
		log.Fatalf("pegfall: %v", err)
	}
	lvl, err := BuildLevel(scene, world, f)
	if err != nil {
		log.Fatalf("pegfall: build level %s: %v", levelName, err)
	}

	character, err := loadCharacter(characterName)
	if err != nil {
		log.Fatalf("pegfall: %v", err)
	}

	g := &Game{
		scene:     scene,
		world:     world,
		level:     lvl,
		launcher:  &Launcher{},
		audio:     newSoundPlayer(muted),
		character: character,
		ballsLeft: 10 + character.Spec.BallBonus,
		debugDraw: debugDraw,
	}
	g.pauseUI = NewPauseUI(g)
	if watchPowers {
		r, err := powers.NewReloader(character.Spec.Name)
		if err != nil {
			log.Printf("pegfall: %v", err)
		} else {
			g.reloader = r
		}
	}
	g.startTurn()

	world.OnBallHitPeg = g.onPegHit
	world.OnBallLost = g.onBallLost
	return g
}

func loadLevelFile(name string) (*levels.File, error) {
	if name == "" {
		name = "classic"
	}
	embedded := name
	if !strings.HasSuffix(embedded, ".json") {
		embedded += ".json"
	}
	f, err := levels.LoadFromFS(embedded)
	if err == nil {
		return f, nil
	}
	// Fall back to a path on disk for levels saved straight from the editor.
	return levels.LoadFile(name)
}

func loadCharacter(name string) (*powers.Character, error) {
	all, err := powers.LoadAllCharacters()
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("no characters defined")
	}
	if name == "" {
		return all[0], nil
	}
	for _, c := range all {
		if c.Spec.Name == name {
			return c, nil
		}
	}
	return nil, fmt.Errorf("unknown character %q", name)
}

func (g *Game) startTurn() {
	g.powerCtx = powers.Context{
		Multiplier:      1,
		Score:           g.score,
		PegsRemaining:   g.level.UnhitCount(),
		OrangeRemaining: g.level.OrangeCount(),
	}
	if sp, ok := g.character.Power.(*powers.ScriptPower); ok {
		sp.ResetState()
	}
	if err := g.character.Power.TurnStart(&g.powerCtx); err != nil {
		log.Printf("pegfall: power %s turn start: %v", g.character.Power.Name(), err)
	}
}

func (g *Game) Update() error {
	g.frames++

	if g.quitRequested {
		if g.reloader != nil {
			g.reloader.Close()
		}
		return ebiten.Termination
	}
	if c := g.reloader.Poll(); c != nil {
		log.Printf("pegfall: reloaded character %s", c.Spec.Name)
		g.character = c
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	mx, my := ebiten.CursorPosition()
	cursor := screenToWorld(float64(mx), float64(my))
	mouseDown := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	clicked := mouseDown && !g.prevMouseDown
	g.prevMouseDown = mouseDown

	switch g.phase {
	case phaseAiming:
		g.launcher.AimAt(cursor)
		if clicked && g.ballsLeft > 0 {
			g.fire()
		}
	case phaseFlight:
		g.world.Step(1.0 / common.TickRate)
		if g.ball != nil && g.ball.Lost() {
			g.resolveTurn()
		}
	case phaseWon, phaseLost:
		if clicked {
			return ebiten.Termination
		}
	}
	return nil
}

func (g *Game) fire() {
	g.ballsLeft--
	g.ball = g.launcher.Fire(g.world)
	g.phase = phaseFlight
	if err := g.character.Power.BallLaunched(&g.powerCtx); err != nil {
		log.Printf("pegfall: power %s ball launched: %v", g.character.Power.Name(), err)
	}
}

func (g *Game) onPegHit(p *obj.Peg) {
	g.powerCtx.LastHit = p
	g.powerCtx.PegsRemaining = g.level.UnhitCount()
	g.powerCtx.OrangeRemaining = g.level.OrangeCount()
	if err := g.character.Power.PegHit(&g.powerCtx); err != nil {
		log.Printf("pegfall: power %s peg hit: %v", g.character.Power.Name(), err)
	}
	g.powerCtx.LastHit = nil

	g.score += int(float64(p.Points()) * g.powerCtx.Multiplier)
	g.powerCtx.Score = g.score
	g.audio.PlaySound("peg_hit", obj.SoundOptions{Volume: 1, Pitch: 1})
}

func (g *Game) onBallLost(b *Ball) {
	if b != g.ball || b.Lost() {
		return
	}
	b.markLost()
}

// resolveTurn runs after the ball leaves the field: hit pegs clear, power
// effects (extra balls, free ball) apply, and the next turn starts.
func (g *Game) resolveTurn() {
	if err := g.character.Power.BallLost(&g.powerCtx); err != nil {
		log.Printf("pegfall: power %s ball lost: %v", g.character.Power.Name(), err)
	}

	g.audio.PlaySound("ball_lost", obj.SoundOptions{Volume: 0.8, Pitch: 1})
	g.ball.Remove()
	g.ball = nil
	g.level.RemoveHitPegs()

	if g.powerCtx.FreeBall {
		g.ballsLeft++
	}
	g.ballsLeft += g.powerCtx.ExtraBalls

	switch {
	case g.level.OrangeCount() == 0:
		g.phase = phaseWon
	case g.ballsLeft == 0:
		g.phase = phaseLost
	default:
		g.phase = phaseAiming
		g.startTurn()
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawPlayfield(screen)
	drawLevel(screen, g.level)
	drawLauncher(screen, g.launcher)
	if g.ball != nil {
		drawBall(screen, g.ball)
	}
	if g.debugDraw {
		g.world.DebugDraw(screen)
	}

	status := fmt.Sprintf("score %d    balls %d    oranges %d    %s",
		g.score, g.ballsLeft, g.level.OrangeCount(), g.character.Spec.Title)
	switch g.phase {
	case phaseWon:
		status += "    LEVEL CLEARED - click to exit"
	case phaseLost:
		status += "    OUT OF BALLS - click to exit"
	}
	ebitenutil.DebugPrint(screen, status)

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

func worldToScreen(p cp.Vector) (float64, float64) {
	return (p.X - common.LevelLeft) * common.PixelsPerUnit,
		(common.LevelTop - p.Y) * common.PixelsPerUnit
}

func screenToWorld(x, y float64) cp.Vector {
	return cp.Vector{
		X: x/common.PixelsPerUnit + common.LevelLeft,
		Y: common.LevelTop - y/common.PixelsPerUnit,
	}
}
