package obj

import "fmt"

// String forms used by the level file format.

func (t PegType) String() string {
	switch t {
	case PegRect:
		return "rect"
	case PegDome:
		return "dome"
	default:
		return "round"
	}
}

func ParsePegType(s string) (PegType, error) {
	switch s {
	case "round", "":
		return PegRound, nil
	case "rect":
		return PegRect, nil
	case "dome":
		return PegDome, nil
	}
	return PegRound, fmt.Errorf("obj: unknown peg type %q", s)
}

func (s PegSize) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeLarge:
		return "large"
	default:
		return "base"
	}
}

func ParsePegSize(s string) (PegSize, error) {
	switch s {
	case "small":
		return SizeSmall, nil
	case "base", "":
		return SizeBase, nil
	case "large":
		return SizeLarge, nil
	}
	return SizeBase, fmt.Errorf("obj: unknown peg size %q", s)
}

func (c PegColor) String() string {
	switch c {
	case ColorOrange:
		return "orange"
	case ColorGreen:
		return "green"
	case ColorPurple:
		return "purple"
	default:
		return "blue"
	}
}

func ParsePegColor(s string) (PegColor, error) {
	switch s {
	case "blue", "":
		return ColorBlue, nil
	case "orange":
		return ColorOrange, nil
	case "green":
		return ColorGreen, nil
	case "purple":
		return ColorPurple, nil
	}
	return ColorBlue, fmt.Errorf("obj: unknown peg color %q", s)
}

func (c CharShape) String() string {
	if c == CharCircle {
		return "circle"
	}
	return "rect"
}

func ParseCharShape(s string) (CharShape, error) {
	switch s {
	case "rect", "":
		return CharRect, nil
	case "circle":
		return CharCircle, nil
	}
	return CharRect, fmt.Errorf("obj: unknown characteristic shape %q", s)
}

func (b BounceType) String() string {
	switch b {
	case BounceDampened:
		return "dampened"
	case BounceNone:
		return "no-bounce"
	case BounceSuper:
		return "super-bouncy"
	default:
		return "normal"
	}
}

func ParseBounceType(s string) (BounceType, error) {
	switch s {
	case "normal", "":
		return BounceNormal, nil
	case "dampened":
		return BounceDampened, nil
	case "no-bounce":
		return BounceNone, nil
	case "super-bouncy":
		return BounceSuper, nil
	}
	return BounceNormal, fmt.Errorf("obj: unknown bounce type %q", s)
}

func (t ShapeType) String() string {
	if t == ShapeCircle {
		return "circle"
	}
	return "line"
}

func ParseShapeType(s string) (ShapeType, error) {
	switch s {
	case "line", "":
		return ShapeLine, nil
	case "circle":
		return ShapeCircle, nil
	}
	return ShapeLine, fmt.Errorf("obj: unknown shape type %q", s)
}

func (a Align) String() string {
	switch a {
	case AlignAbove:
		return "above"
	case AlignBelow:
		return "below"
	default:
		return "middle"
	}
}

func ParseAlign(s string) (Align, error) {
	switch s {
	case "middle", "":
		return AlignMiddle, nil
	case "above":
		return AlignAbove, nil
	case "below":
		return AlignBelow, nil
	}
	return AlignMiddle, fmt.Errorf("obj: unknown align %q", s)
}

func (j Justify) String() string {
	switch j {
	case JustifyStart:
		return "start"
	case JustifyEnd:
		return "end"
	default:
		return "center"
	}
}

func ParseJustify(s string) (Justify, error) {
	switch s {
	case "center", "":
		return JustifyCenter, nil
	case "start":
		return JustifyStart, nil
	case "end":
		return JustifyEnd, nil
	}
	return JustifyCenter, fmt.Errorf("obj: unknown justify %q", s)
}
