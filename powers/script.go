package powers

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/arcadebit/pegfall/obj"
)

// powerDispatchScript is appended to every power script so one compiled
// program serves all four hooks. The script must define onTurnStart,
// onBallLaunched, onPegHit and onBallLost.
const powerDispatchScript = `
if __phase == "turn_start" {
	onTurnStart(__engine, __state)
} else if __phase == "ball_launched" {
	onBallLaunched(__engine, __state)
} else if __phase == "peg_hit" {
	onPegHit(__engine, __state)
} else if __phase == "ball_lost" {
	onBallLost(__engine, __state)
}
`

// ScriptPower runs a tengo power script. The compiled program and its
// persistent __state map live for the power's lifetime, so a script can carry
// counters across hooks within a turn.
type ScriptPower struct {
	name      string
	compiled  *tengo.Compiled
	stateData *tengo.Map
}

// CompilePower compiles a power script. The optional script global
// `power_name` overrides the fallback name.
func CompilePower(fallbackName string, src []byte) (*ScriptPower, error) {
	full := string(src) + "\n" + powerDispatchScript
	script := tengo.NewScript([]byte(full))
	_ = script.Add("__phase", "")
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__state", map[string]any{})

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("powers: compile %s: %w", fallbackName, err)
	}

	p := &ScriptPower{
		name:      fallbackName,
		compiled:  compiled,
		stateData: &tengo.Map{Value: map[string]tengo.Object{}},
	}

	// One noop run resolves script-level globals like power_name.
	if err := p.runPhase("noop", nil); err != nil {
		return nil, fmt.Errorf("powers: init %s: %w", fallbackName, err)
	}
	if compiled.IsDefined("power_name") {
		if s := strings.TrimSpace(compiled.Get("power_name").String()); s != "" {
			p.name = strings.Trim(s, "\"")
		}
	}
	return p, nil
}

// LoadPower reads and compiles an embedded power script.
func LoadPower(scriptPath string) (*ScriptPower, error) {
	src, err := LoadScript(scriptPath)
	if err != nil {
		return nil, fmt.Errorf("powers: load %s: %w", scriptPath, err)
	}
	base := strings.TrimSuffix(scriptPath, ".tengo")
	if i := strings.LastIndexByte(base, '/'); i >= 0 {
		base = base[i+1:]
	}
	return CompilePower(base, src)
}

func (p *ScriptPower) Name() string { return p.name }

func (p *ScriptPower) TurnStart(ctx *Context) error    { return p.runPhase("turn_start", ctx) }
func (p *ScriptPower) BallLaunched(ctx *Context) error { return p.runPhase("ball_launched", ctx) }
func (p *ScriptPower) PegHit(ctx *Context) error       { return p.runPhase("peg_hit", ctx) }
func (p *ScriptPower) BallLost(ctx *Context) error     { return p.runPhase("ball_lost", ctx) }

// ResetState drops the script's persistent state between turns.
func (p *ScriptPower) ResetState() {
	p.stateData = &tengo.Map{Value: map[string]tengo.Object{}}
}

func (p *ScriptPower) runPhase(phase string, ctx *Context) error {
	if p == nil || p.compiled == nil {
		return fmt.Errorf("powers: nil script power")
	}
	engine := buildPowerEngine(ctx)
	if err := p.compiled.Set("__phase", phase); err != nil {
		return err
	}
	if err := p.compiled.Set("__engine", engine); err != nil {
		return err
	}
	if err := p.compiled.Set("__state", p.stateData); err != nil {
		return err
	}
	return p.compiled.Run()
}

// buildPowerEngine exposes the hook context to the script as an immutable map
// of functions. Mutators write pending effects into ctx; readers report the
// game state at hook time.
func buildPowerEngine(ctx *Context) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["set_multiplier"] = &tengo.UserFunction{Name: "set_multiplier", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if ctx == nil || len(args) < 1 {
			return tengo.FalseValue, nil
		}
		if f, ok := tengo.ToFloat64(args[0]); ok && f > 0 {
			ctx.Multiplier = f
			return tengo.TrueValue, nil
		}
		return tengo.FalseValue, nil
	}}

	values["extra_balls"] = &tengo.UserFunction{Name: "extra_balls", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if ctx == nil || len(args) < 1 {
			return tengo.FalseValue, nil
		}
		if n, ok := tengo.ToInt(args[0]); ok && n > 0 {
			ctx.ExtraBalls += n
			return tengo.TrueValue, nil
		}
		return tengo.FalseValue, nil
	}}

	values["free_ball"] = &tengo.UserFunction{Name: "free_ball", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if ctx == nil {
			return tengo.FalseValue, nil
		}
		ctx.FreeBall = true
		return tengo.TrueValue, nil
	}}

	values["score"] = &tengo.UserFunction{Name: "score", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if ctx == nil {
			return &tengo.Int{Value: 0}, nil
		}
		return &tengo.Int{Value: int64(ctx.Score)}, nil
	}}

	values["pegs_remaining"] = &tengo.UserFunction{Name: "pegs_remaining", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if ctx == nil {
			return &tengo.Int{Value: 0}, nil
		}
		return &tengo.Int{Value: int64(ctx.PegsRemaining)}, nil
	}}

	values["orange_remaining"] = &tengo.UserFunction{Name: "orange_remaining", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if ctx == nil {
			return &tengo.Int{Value: 0}, nil
		}
		return &tengo.Int{Value: int64(ctx.OrangeRemaining)}, nil
	}}

	values["hit_color"] = &tengo.UserFunction{Name: "hit_color", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if ctx == nil || ctx.LastHit == nil {
			return &tengo.String{Value: ""}, nil
		}
		return &tengo.String{Value: ctx.LastHit.Color().String()}, nil
	}}

	values["hit_points"] = &tengo.UserFunction{Name: "hit_points", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if ctx == nil || ctx.LastHit == nil {
			return &tengo.Int{Value: 0}, nil
		}
		return &tengo.Int{Value: int64(ctx.LastHit.Points())}, nil
	}}

	values["hit_is_green"] = &tengo.UserFunction{Name: "hit_is_green", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if ctx != nil && ctx.LastHit != nil && ctx.LastHit.Color() == obj.ColorGreen {
			return tengo.TrueValue, nil
		}
		return tengo.FalseValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}
