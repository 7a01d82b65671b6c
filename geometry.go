// geometry.go re-exports geometry types from internal/geometry.
// Any changes to internal/geometry types must be mirrored here.
package anchor

import "github.com/grindlemire/go-anchor/internal/geometry"

// Point represents an (X, Y) coordinate.
type Point = geometry.Point

// Size represents a width/height pair.
type Size = geometry.Size

// Rect represents a rectangle with position and dimensions.
type Rect = geometry.Rect

// Matrix is a 2D affine transform.
type Matrix = geometry.Matrix

// Alignment is a normalized anchor on a rectangle, [-1, 1] per axis.
type Alignment = geometry.Alignment

// Named anchors.
var (
	TopLeft      = geometry.TopLeft
	TopCenter    = geometry.TopCenter
	TopRight     = geometry.TopRight
	CenterLeft   = geometry.CenterLeft
	Center       = geometry.Center
	CenterRight  = geometry.CenterRight
	BottomLeft   = geometry.BottomLeft
	BottomCenter = geometry.BottomCenter
	BottomRight  = geometry.BottomRight
)

// ErrSingularMatrix is returned by Matrix.Invert for degenerate transforms.
var ErrSingularMatrix = geometry.ErrSingularMatrix

// NewRect creates a rectangle from a position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return geometry.NewRect(x, y, width, height)
}

// RectFrom creates a rectangle from an origin point and a size.
func RectFrom(origin Point, size Size) Rect {
	return geometry.RectFrom(origin, size)
}

// Identity returns the identity transform.
func Identity() Matrix {
	return geometry.Identity()
}

// Translation returns a transform that translates by (dx, dy).
func Translation(dx, dy float64) Matrix {
	return geometry.Translation(dx, dy)
}

// Scaling returns a transform that scales by (sx, sy) about the origin.
func Scaling(sx, sy float64) Matrix {
	return geometry.Scaling(sx, sy)
}

// Rotation returns a transform that rotates by the given angle in radians.
func Rotation(radians float64) Matrix {
	return geometry.Rotation(radians)
}
