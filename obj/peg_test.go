package obj

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestPegConfigBounds(t *testing.T) {
	cases := []struct {
		name string
		cfg  PegConfig
		w, h float64
	}{
		{"round_base", PegConfig{Type: PegRound, Size: SizeBase}, 0.35, 0.35},
		{"round_small", PegConfig{Type: PegRound, Size: SizeSmall}, 0.24, 0.24},
		{"dome_large", PegConfig{Type: PegDome, Size: SizeLarge}, 0.5, 0.5},
		{"rect_base", PegConfig{Type: PegRect, Size: SizeBase}, 1.0, 0.22},
		{"rect_rotated", PegConfig{Type: PegRect, Size: SizeBase, Rotation: math.Pi / 2}, 0.22, 1.0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := c.cfg.Bounds()
			if math.Abs(b.Width()-c.w) > 1e-9 || math.Abs(b.Height()-c.h) > 1e-9 {
				t.Fatalf("bounds %v x %v, want %v x %v", b.Width(), b.Height(), c.w, c.h)
			}
		})
	}
}

func TestPegContainsPoint(t *testing.T) {
	p := NewPeg(nil, nil, PegConfig{Position: cp.Vector{X: 1, Y: 1}, Type: PegRound, Size: SizeBase})
	if !p.ContainsPoint(1.1, 1) {
		t.Fatalf("point inside radius should be contained")
	}
	if p.ContainsPoint(1.3, 1) {
		t.Fatalf("point outside radius should not be contained")
	}
}

func TestPegHitFlag(t *testing.T) {
	p := NewPeg(nil, nil, PegConfig{Type: PegRound, Size: SizeBase, Color: ColorOrange})
	if p.Hit() {
		t.Fatalf("new peg should be unhit")
	}
	p.MarkHit()
	if !p.Hit() {
		t.Fatalf("MarkHit did not stick")
	}
	p.ClearHit()
	if p.Hit() {
		t.Fatalf("ClearHit did not reset")
	}
}

func TestPegColorPoints(t *testing.T) {
	cases := []struct {
		color PegColor
		want  int
	}{
		{ColorBlue, 10},
		{ColorGreen, 10},
		{ColorOrange, 100},
		{ColorPurple, 500},
	}
	for _, c := range cases {
		if got := c.color.Points(); got != c.want {
			t.Fatalf("%v points = %d, want %d", c.color, got, c.want)
		}
	}
}

func TestParseRoundTrips(t *testing.T) {
	for _, typ := range []PegType{PegRound, PegRect, PegDome} {
		got, err := ParsePegType(typ.String())
		if err != nil || got != typ {
			t.Fatalf("ParsePegType(%q) = %v, %v", typ.String(), got, err)
		}
	}
	for _, b := range []BounceType{BounceNormal, BounceDampened, BounceNone, BounceSuper} {
		got, err := ParseBounceType(b.String())
		if err != nil || got != b {
			t.Fatalf("ParseBounceType(%q) = %v, %v", b.String(), got, err)
		}
	}
	if _, err := ParsePegColor("magenta"); err == nil {
		t.Fatalf("unknown color should error")
	}
	if got, err := ParsePegSize(""); err != nil || got != SizeBase {
		t.Fatalf("empty size should default to base, got %v, %v", got, err)
	}
}
