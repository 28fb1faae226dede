package shapeplay

import "math"

// Matrix is a 2D affine transform stored as the top two rows of a 3x3
// matrix acting on column vectors:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
//
// Model, view and projection transforms of the scene are all Matrix
// values; Mat4 lifts one into the 4x4 layout shaders consume.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the transform that leaves every point unchanged.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translate returns a transform moving points by (x, y).
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

// Scale returns a transform stretching x by sx and y by sy.
func Scale(sx, sy float64) Matrix {
	return Matrix{A: sx, E: sy}
}

// Rotate returns a counter-clockwise rotation by rad radians.
func Rotate(rad float64) Matrix {
	sin, cos := math.Sincos(rad)
	return Matrix{A: cos, B: -sin, D: sin, E: cos}
}

// RotateDegrees returns a counter-clockwise rotation by deg degrees.
func RotateDegrees(deg float64) Matrix {
	return Rotate(deg * math.Pi / 180)
}

// Ortho returns the projection mapping the world rectangle
// [left, right] x [bottom, top] onto normalized device coordinates
// [-1, 1] x [-1, 1]. An empty rectangle yields the identity.
func Ortho(left, right, bottom, top float64) Matrix {
	w, h := right-left, top-bottom
	if w == 0 || h == 0 {
		return Identity()
	}
	return Matrix{
		A: 2 / w, C: -(right + left) / w,
		E: 2 / h, F: -(top + bottom) / h,
	}
}

// Multiply returns m * n: the transform applying n first, then m.
func (m Matrix) Multiply(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.B*n.D,
		B: m.A*n.B + m.B*n.E,
		C: m.A*n.C + m.B*n.F + m.C,
		D: m.D*n.A + m.E*n.D,
		E: m.D*n.B + m.E*n.E,
		F: m.D*n.C + m.E*n.F + m.F,
	}
}

// TransformPoint maps p through m.
func (m Matrix) TransformPoint(p Point) Point {
	return Pt(m.A*p.X+m.B*p.Y+m.C, m.D*p.X+m.E*p.Y+m.F)
}

// Determinant returns the determinant of the linear part.
func (m Matrix) Determinant() float64 {
	return m.A*m.E - m.B*m.D
}

// Invert returns the inverse of m, or the identity when m collapses the
// plane.
func (m Matrix) Invert() Matrix {
	det := m.Determinant()
	if math.Abs(det) < 1e-10 {
		return Identity()
	}
	inv := 1 / det
	return Matrix{
		A: m.E * inv,
		B: -m.B * inv,
		C: (m.B*m.F - m.C*m.E) * inv,
		D: -m.D * inv,
		E: m.A * inv,
		F: (m.C*m.D - m.A*m.F) * inv,
	}
}

// IsIdentity reports whether m is exactly the identity.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// Mat4 returns the matrix embedded in a 4x4 float32 matrix in column-major
// order, the layout WGSL mat4x4<f32> uniforms expect. z passes through.
func (m Matrix) Mat4() [16]float32 {
	return [16]float32{
		float32(m.A), float32(m.D), 0, 0,
		float32(m.B), float32(m.E), 0, 0,
		0, 0, 1, 0,
		float32(m.C), float32(m.F), 0, 1,
	}
}
