package geom

import "testing"

func TestBoundsOverlaps(t *testing.T) {
	base := Bounds{Left: 0, Right: 2, Bottom: 0, Top: 2}
	cases := []struct {
		name  string
		other Bounds
		want  bool
	}{
		{"full_overlap", Bounds{Left: 0.5, Right: 1.5, Bottom: 0.5, Top: 1.5}, true},
		{"partial_overlap", Bounds{Left: 1, Right: 3, Bottom: 1, Top: 3}, true},
		{"touching_edge", Bounds{Left: 2, Right: 4, Bottom: 0, Top: 2}, false},
		{"touching_corner", Bounds{Left: 2, Right: 4, Bottom: 2, Top: 4}, false},
		{"disjoint", Bounds{Left: 5, Right: 6, Bottom: 5, Top: 6}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := base.Overlaps(c.other); got != c.want {
				t.Fatalf("Overlaps(%+v) = %v, want %v", c.other, got, c.want)
			}
			if got := c.other.Overlaps(base); got != c.want {
				t.Fatalf("reverse Overlaps(%+v) = %v, want %v", c.other, got, c.want)
			}
		})
	}
}

func TestBoundsFromCenter(t *testing.T) {
	b := FromCenter(1, -1, 0.5, 0.25)
	if b.Left != 0.5 || b.Right != 1.5 || b.Bottom != -1.25 || b.Top != -0.75 {
		t.Fatalf("unexpected bounds %+v", b)
	}
	if b.Width() != 1 || b.Height() != 0.5 {
		t.Fatalf("unexpected dims %v x %v", b.Width(), b.Height())
	}
	if b.CenterX() != 1 || b.CenterY() != -1 {
		t.Fatalf("unexpected center %v, %v", b.CenterX(), b.CenterY())
	}
}

func TestBoundsContains(t *testing.T) {
	b := Bounds{Left: -1, Right: 1, Bottom: -1, Top: 1}
	if !b.Contains(0, 0) {
		t.Fatalf("center should be contained")
	}
	if !b.Contains(1, 1) {
		t.Fatalf("edge should be contained")
	}
	if b.Contains(1.001, 0) {
		t.Fatalf("outside point should not be contained")
	}
}

func TestBoundsTranslate(t *testing.T) {
	b := Bounds{Left: 0, Right: 1, Bottom: 0, Top: 1}.Translate(2, -3)
	if b.Left != 2 || b.Right != 3 || b.Bottom != -3 || b.Top != -2 {
		t.Fatalf("unexpected translated bounds %+v", b)
	}
}
