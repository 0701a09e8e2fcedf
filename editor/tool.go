package editor

import "github.com/arcadebit/pegfall/obj"

// ToolCategory selects which handler a pointer event routes to. Exactly one
// tool is active at a time.
type ToolCategory int

const (
	ToolNone ToolCategory = iota
	ToolPeg
	ToolShape
	ToolCharacteristic
	ToolSpacer
	ToolEraser
	ToolMove
	ToolRotate
	ToolCopy
	ToolResize
	ToolSettings
)

func (c ToolCategory) String() string {
	switch c {
	case ToolPeg:
		return "peg"
	case ToolShape:
		return "shape"
	case ToolCharacteristic:
		return "characteristic"
	case ToolSpacer:
		return "spacer"
	case ToolEraser:
		return "eraser"
	case ToolMove:
		return "move"
	case ToolRotate:
		return "rotate"
	case ToolCopy:
		return "copy"
	case ToolResize:
		return "resize"
	case ToolSettings:
		return "settings"
	default:
		return "none"
	}
}

// Tool is the full tool selection: a category plus the variant parameters the
// placement tools read.
type Tool struct {
	Category ToolCategory

	PegType  obj.PegType
	PegSize  obj.PegSize
	PegColor obj.PegColor

	ShapeType obj.ShapeType

	CharShape  obj.CharShape
	BounceType obj.BounceType

	SpacerWidth  float64
	SpacerHeight float64
}

// Key identifies the keyboard inputs the editor reacts to.
type Key int

const (
	KeyNone Key = iota
	KeyArrowLeft
	KeyArrowRight
)
