package glint

import "math"

// Affine is a 2D affine matrix in [a, b, c, d, tx, ty] layout:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type Affine [6]float64

// AffineIdentity is the identity affine matrix.
var AffineIdentity = Affine{1, 0, 0, 1, 0, 0}

// Mul returns the product m * n, the matrix that applies n first and then m.
func (m Affine) Mul(n Affine) Affine {
	return Affine{
		m[0]*n[0] + m[2]*n[1],
		m[1]*n[0] + m[3]*n[1],
		m[0]*n[2] + m[2]*n[3],
		m[1]*n[2] + m[3]*n[3],
		m[0]*n[4] + m[2]*n[5] + m[4],
		m[1]*n[4] + m[3]*n[5] + m[5],
	}
}

// Apply transforms the point (x, y) by m.
func (m Affine) Apply(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// Affine returns the frame's transform about origin: a rotation by
// Frame.Angle (degrees) followed by a translation to origin plus the
// frame's offset. Sinks compose symbol-local adjustments, such as
// centering, in front of it and apply opacity separately.
func (f Frame) Affine(origin Vec2) Affine {
	sin, cos := math.Sincos(f.Angle * math.Pi / 180)
	return Affine{cos, sin, -sin, cos, origin.X + f.Offset.X, origin.Y + f.Offset.Y}
}
