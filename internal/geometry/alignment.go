package geometry

// Alignment is a normalized anchor on a rectangle. Each axis ranges over
// [-1, 1]: -1 is the leading edge (left/top), 0 the center, 1 the trailing
// edge (right/bottom).
type Alignment struct {
	X, Y float64
}

// Named anchors.
var (
	TopLeft      = Alignment{-1, -1}
	TopCenter    = Alignment{0, -1}
	TopRight     = Alignment{1, -1}
	CenterLeft   = Alignment{-1, 0}
	Center       = Alignment{0, 0}
	CenterRight  = Alignment{1, 0}
	BottomLeft   = Alignment{-1, 1}
	BottomCenter = Alignment{0, 1}
	BottomRight  = Alignment{1, 1}
)

// Along resolves the anchor against a size, mapping [-1, 1] to [0, extent]
// on each axis.
func (a Alignment) Along(s Size) Point {
	return Point{
		X: (a.X + 1) / 2 * s.Width,
		Y: (a.Y + 1) / 2 * s.Height,
	}
}

// IsTopLeft returns true if the anchor is the top-left corner. Anchors other
// than top-left can only be resolved against a known size.
func (a Alignment) IsTopLeft() bool {
	return a == TopLeft
}
