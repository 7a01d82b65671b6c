package geometry

// Size represents a width/height pair.
type Size struct {
	Width, Height float64
}

// IsEmpty returns true if either dimension is zero or negative.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}
