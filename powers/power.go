// Package powers implements character powers: the hooks the game invokes
// across a turn and the tengo script runtime the shipped powers are written
// in. Character definitions live in yaml specs alongside their scripts.
package powers

import (
	"github.com/arcadebit/pegfall/obj"
)

// Context is the per-turn game state a power reads and mutates through its
// hooks. The game owns the struct; powers write pending effects into it and
// the game applies them after the hook returns.
type Context struct {
	// Multiplier scales peg points for the rest of the turn.
	Multiplier float64
	// ExtraBalls is how many bonus balls the power grants.
	ExtraBalls int
	// FreeBall refunds the current ball when set at turn end.
	FreeBall bool

	Score           int
	PegsRemaining   int
	OrangeRemaining int

	// LastHit is the peg that triggered a PegHit hook, nil in other hooks.
	LastHit *obj.Peg
}

// Power is one character's special ability. Hooks run on the game goroutine;
// an implementation must not retain ctx past the call.
type Power interface {
	Name() string
	TurnStart(ctx *Context) error
	BallLaunched(ctx *Context) error
	PegHit(ctx *Context) error
	BallLost(ctx *Context) error
}

// NopPower is the default for characters with no scripted ability.
type NopPower struct{}

func (NopPower) Name() string                { return "none" }
func (NopPower) TurnStart(*Context) error    { return nil }
func (NopPower) BallLaunched(*Context) error { return nil }
func (NopPower) PegHit(*Context) error       { return nil }
func (NopPower) BallLost(*Context) error     { return nil }
