package geometry

import (
	"math"

	"github.com/pkg/errors"
)

// ErrSingularMatrix is returned by Invert when the matrix has no inverse,
// e.g. a zero scale on some axis.
var ErrSingularMatrix = errors.New("geometry: singular matrix has no inverse")

// Matrix is a 2D affine transform. It maps a point (x, y) to
// (A*x + C*y + TX, B*x + D*y + TY), i.e. column-vector convention.
type Matrix struct {
	A, B, C, D, TX, TY float64
}

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Translation returns a transform that translates by (dx, dy).
func Translation(dx, dy float64) Matrix {
	return Matrix{A: 1, D: 1, TX: dx, TY: dy}
}

// Scaling returns a transform that scales by (sx, sy) about the origin.
func Scaling(sx, sy float64) Matrix {
	return Matrix{A: sx, D: sy}
}

// Rotation returns a transform that rotates by the given angle in radians
// about the origin.
func Rotation(radians float64) Matrix {
	sin, cos := math.Sin(radians), math.Cos(radians)
	return Matrix{A: cos, B: sin, C: -sin, D: cos}
}

// IsIdentity returns true if the matrix is exactly the identity.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// Mul returns m * n: the transform that applies n first, then m.
func (m Matrix) Mul(n Matrix) Matrix {
	return Matrix{
		A:  m.A*n.A + m.C*n.B,
		B:  m.B*n.A + m.D*n.B,
		C:  m.A*n.C + m.C*n.D,
		D:  m.B*n.C + m.D*n.D,
		TX: m.A*n.TX + m.C*n.TY + m.TX,
		TY: m.B*n.TX + m.D*n.TY + m.TY,
	}
}

// Translated returns the matrix post-multiplied by a translation, so the
// translation applies in the matrix's local (pre-transform) space.
func (m Matrix) Translated(dx, dy float64) Matrix {
	return m.Mul(Translation(dx, dy))
}

// Apply transforms the given point.
func (m Matrix) Apply(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y + m.TX,
		Y: m.B*p.X + m.D*p.Y + m.TY,
	}
}

// Determinant returns the determinant of the linear part.
func (m Matrix) Determinant() float64 {
	return m.A*m.D - m.B*m.C
}

// Invert returns the inverse transform, or ErrSingularMatrix if the matrix
// is degenerate.
func (m Matrix) Invert() (Matrix, error) {
	det := m.Determinant()
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return Matrix{}, errors.Wrapf(ErrSingularMatrix, "determinant %v", det)
	}
	inv := 1 / det
	out := Matrix{
		A: m.D * inv,
		B: -m.B * inv,
		C: -m.C * inv,
		D: m.A * inv,
	}
	out.TX = -(out.A*m.TX + out.C*m.TY)
	out.TY = -(out.B*m.TX + out.D*m.TY)
	return out, nil
}
