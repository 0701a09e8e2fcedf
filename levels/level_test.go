package levels

import "testing"

func TestEmbeddedLevelsDecode(t *testing.T) {
	names := Names()
	if len(names) == 0 {
		t.Fatalf("no embedded levels")
	}
	found := false
	for _, n := range names {
		f, err := LoadFromFS(n)
		if err != nil {
			t.Fatalf("load %s: %v", n, err)
		}
		if f.Name == "" {
			t.Fatalf("%s has no level name", n)
		}
		if n == "classic.json" {
			found = true
			if len(f.Pegs) == 0 {
				t.Fatalf("classic.json ships without pegs")
			}
		}
	}
	if !found {
		t.Fatalf("classic.json missing from embedded set: %v", names)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := Decode([]byte("not json at all")); err == nil {
		t.Fatalf("garbage decoded without error")
	}
}

func TestEncodeDecodePreservesContainment(t *testing.T) {
	src := &File{
		Name: "t",
		Shapes: []Shape{{
			X: 1, Y: 2, Type: "line", Size: 3, CanTakeObjects: true,
			ContainedPegs: []Peg{
				{X: 0.5, Y: 2, Color: "orange", Type: "round", Size: "base"},
				{X: 1.5, Y: 2, Color: "blue", Type: "dome", Size: "small"},
			},
		}},
		Spacers: []Spacer{{X: -4, Y: 0, Size: Size{Width: 1.5, Height: 2}}},
	}
	b, err := src.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := Decode(b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Shapes) != 1 || len(got.Shapes[0].ContainedPegs) != 2 {
		t.Fatalf("containment lost: %+v", got.Shapes)
	}
	if got.Shapes[0].ContainedPegs[0].Color != "orange" {
		t.Fatalf("contained order lost")
	}
	if got.Spacers[0].Size.Width != 1.5 {
		t.Fatalf("spacer size lost")
	}
}
