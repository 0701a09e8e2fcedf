package geom

// Bounds is an axis-aligned box in world units. Top > Bottom, Right > Left
// (y grows upward in world space).
type Bounds struct {
	Left   float64
	Right  float64
	Bottom float64
	Top    float64
}

// FromCenter builds bounds around a center point with the given half extents.
func FromCenter(x, y, halfW, halfH float64) Bounds {
	return Bounds{
		Left:   x - halfW,
		Right:  x + halfW,
		Bottom: y - halfH,
		Top:    y + halfH,
	}
}

func (b Bounds) Width() float64  { return b.Right - b.Left }
func (b Bounds) Height() float64 { return b.Top - b.Bottom }

func (b Bounds) CenterX() float64 { return (b.Left + b.Right) / 2 }
func (b Bounds) CenterY() float64 { return (b.Bottom + b.Top) / 2 }

func (b Bounds) Overlaps(other Bounds) bool {
	return b.Left < other.Right &&
		b.Right > other.Left &&
		b.Bottom < other.Top &&
		b.Top > other.Bottom
}

func (b Bounds) Contains(x, y float64) bool {
	return x >= b.Left && x <= b.Right && y >= b.Bottom && y <= b.Top
}

func (b Bounds) Translate(dx, dy float64) Bounds {
	return Bounds{
		Left:   b.Left + dx,
		Right:  b.Right + dx,
		Bottom: b.Bottom + dy,
		Top:    b.Top + dy,
	}
}

// Expand grows the bounds by m on every side. Negative m shrinks.
func (b Bounds) Expand(m float64) Bounds {
	return Bounds{
		Left:   b.Left - m,
		Right:  b.Right + m,
		Bottom: b.Bottom - m,
		Top:    b.Top + m,
	}
}
