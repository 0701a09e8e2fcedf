package obj

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func testPeg(pos cp.Vector) *Peg {
	return NewPeg(nil, nil, PegConfig{Position: pos, Type: PegRound, Size: SizeBase, Color: ColorBlue})
}

func near(a, b cp.Vector) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestShapeLineLayoutJustify(t *testing.T) {
	cases := []struct {
		name    string
		justify Justify
		want    []cp.Vector
	}{
		{"center", JustifyCenter, []cp.Vector{{X: -0.5}, {X: 0}, {X: 0.5}}},
		{"start", JustifyStart, []cp.Vector{{X: -1}, {X: -0.5}, {X: 0}}},
		{"end", JustifyEnd, []cp.Vector{{X: 0}, {X: 0.5}, {X: 1}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := NewShape(nil, ShapeConfig{Type: ShapeLine, Size: 2, Justify: c.justify, Gap: 0.5})
			for i := 0; i < 3; i++ {
				s.InsertPeg(testPeg(cp.Vector{}), i)
			}
			for i, p := range s.ContainedPegs() {
				if !near(p.Position(), c.want[i]) {
					t.Fatalf("member %d at %+v, want %+v", i, p.Position(), c.want[i])
				}
			}
		})
	}
}

func TestShapeLineLayoutAlign(t *testing.T) {
	cases := []struct {
		name  string
		align Align
		wantY float64
	}{
		{"middle", AlignMiddle, 0},
		{"above", AlignAbove, 0.25},
		{"below", AlignBelow, -0.25},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := NewShape(nil, ShapeConfig{Type: ShapeLine, Size: 2, Align: c.align})
			s.InsertPeg(testPeg(cp.Vector{}), 0)
			got := s.ContainedPegs()[0].Position()
			if math.Abs(got.Y-c.wantY) > 1e-9 {
				t.Fatalf("member y = %v, want %v", got.Y, c.wantY)
			}
		})
	}
}

func TestShapeLineLayoutRotated(t *testing.T) {
	s := NewShape(nil, ShapeConfig{Type: ShapeLine, Size: 2, Rotation: math.Pi / 2, Gap: 0.5})
	s.InsertPeg(testPeg(cp.Vector{}), 0)
	s.InsertPeg(testPeg(cp.Vector{}), 1)
	s.InsertPeg(testPeg(cp.Vector{}), 2)
	// The layout axis points up; the first member sits below center.
	wantY := []float64{-0.5, 0, 0.5}
	for i, p := range s.ContainedPegs() {
		got := p.Position()
		if math.Abs(got.X) > 1e-9 || math.Abs(got.Y-wantY[i]) > 1e-9 {
			t.Fatalf("member %d at %+v, want (0, %v)", i, got, wantY[i])
		}
	}
}

func TestShapeCircleLayoutClockwiseFromTop(t *testing.T) {
	s := NewShape(nil, ShapeConfig{Type: ShapeCircle, Size: 1})
	for i := 0; i < 4; i++ {
		s.InsertPeg(testPeg(cp.Vector{}), i)
	}
	want := []cp.Vector{{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: -1}, {X: -1, Y: 0}}
	for i, p := range s.ContainedPegs() {
		if !near(p.Position(), want[i]) {
			t.Fatalf("member %d at %+v, want %+v", i, p.Position(), want[i])
		}
	}
}

func TestShapeInsertPegSingleContainer(t *testing.T) {
	a := NewShape(nil, ShapeConfig{Type: ShapeLine, Size: 2})
	b := NewShape(nil, ShapeConfig{Type: ShapeLine, Size: 2})
	p := testPeg(cp.Vector{})

	a.InsertPeg(p, 0)
	if p.Container() != a {
		t.Fatalf("container = %v, want first shape", p.Container())
	}
	b.InsertPeg(p, 0)
	if p.Container() != b {
		t.Fatalf("container = %v, want second shape", p.Container())
	}
	if len(a.ContainedPegs()) != 0 {
		t.Fatalf("first shape still holds %d pegs", len(a.ContainedPegs()))
	}
	if len(b.ContainedPegs()) != 1 {
		t.Fatalf("second shape holds %d pegs, want 1", len(b.ContainedPegs()))
	}
}

func TestShapeInsertPegReorder(t *testing.T) {
	s := NewShape(nil, ShapeConfig{Type: ShapeLine, Size: 2, Gap: 0.5})
	first := testPeg(cp.Vector{})
	second := testPeg(cp.Vector{})
	s.InsertPeg(first, 0)
	s.InsertPeg(second, 1)

	// Re-inserting an existing member moves it instead of duplicating it.
	s.InsertPeg(first, 2)
	pegs := s.ContainedPegs()
	if len(pegs) != 2 {
		t.Fatalf("member count = %d, want 2", len(pegs))
	}
	if pegs[0] != second || pegs[1] != first {
		t.Fatalf("unexpected member order after reinsert")
	}
}

func TestShapePegInsertionIndex(t *testing.T) {
	s := NewShape(nil, ShapeConfig{Type: ShapeLine, Size: 2, Gap: 0.5})
	for i := 0; i < 3; i++ {
		s.InsertPeg(testPeg(cp.Vector{}), i)
	}
	// Members sit at x = -0.5, 0, 0.5.
	cases := []struct {
		name string
		at   cp.Vector
		want int
	}{
		{"before_all", cp.Vector{X: -2}, 0},
		{"between_first_two", cp.Vector{X: -0.25}, 1},
		{"between_last_two", cp.Vector{X: 0.25}, 2},
		{"after_all", cp.Vector{X: 2}, 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := s.PegInsertionIndex(c.at); got != c.want {
				t.Fatalf("PegInsertionIndex(%+v) = %d, want %d", c.at, got, c.want)
			}
		})
	}
}

func TestShapeMoveRelayout(t *testing.T) {
	s := NewShape(nil, ShapeConfig{Type: ShapeLine, Size: 2, Gap: 0.5})
	s.InsertPeg(testPeg(cp.Vector{}), 0)
	s.MoveTo(cp.Vector{X: 3, Y: -2})
	got := s.ContainedPegs()[0].Position()
	if !near(got, cp.Vector{X: 3, Y: -2}) {
		t.Fatalf("member at %+v after move, want (3, -2)", got)
	}
}

func TestShapeConfigDefaults(t *testing.T) {
	line := NewShape(nil, ShapeConfig{Type: ShapeLine})
	if line.Size() != 2 {
		t.Fatalf("default line length = %v, want 2", line.Size())
	}
	circle := NewShape(nil, ShapeConfig{Type: ShapeCircle, Size: math.NaN()})
	if circle.Size() != 0.5 {
		t.Fatalf("default circle radius = %v, want 0.5", circle.Size())
	}
	neg := NewShape(nil, ShapeConfig{Type: ShapeLine, Gap: -1})
	if neg.Gap() != 0 {
		t.Fatalf("negative gap kept: %v", neg.Gap())
	}
}
