package geometry

// Rect represents a rectangle with position and dimensions.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect creates a rectangle from a position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// RectFrom creates a rectangle from an origin point and a size.
func RectFrom(origin Point, size Size) Rect {
	return Rect{X: origin.X, Y: origin.Y, Width: size.Width, Height: size.Height}
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Contains returns true if the point lies within the rectangle.
// Points on the right/bottom edge are outside, matching half-open bounds.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Translate returns a new Rect shifted by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Intersects returns true if the two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() && other.X < r.Right() &&
		r.Y < other.Bottom() && other.Y < r.Bottom()
}

// ShiftInto returns the per-axis shift that moves r inside bounds by the
// minimum amount. Axes are independent: an axis already inside contributes
// zero, and an axis where r is larger than bounds aligns the leading edge.
func (r Rect) ShiftInto(bounds Rect) Point {
	var shift Point
	if r.Right() > bounds.Right() {
		shift.X = bounds.Right() - r.Right()
	}
	if r.X+shift.X < bounds.X {
		shift.X = bounds.X - r.X
	}
	if r.Bottom() > bounds.Bottom() {
		shift.Y = bounds.Bottom() - r.Bottom()
	}
	if r.Y+shift.Y < bounds.Y {
		shift.Y = bounds.Y - r.Y
	}
	return shift
}
