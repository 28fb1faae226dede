package shapeplay

import (
	"math"
	"testing"
)

func TestMatrixTransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   Point
		want Point
	}{
		{"identity", Identity(), Pt(3, 4), Pt(3, 4)},
		{"translate", Translate(10, -5), Pt(1, 1), Pt(11, -4)},
		{"scale", Scale(2, 3), Pt(1, 1), Pt(2, 3)},
		{"rotate 90", Rotate(math.Pi / 2), Pt(1, 0), Pt(0, 1)},
		{"rotate degrees 180", RotateDegrees(180), Pt(1, 0), Pt(-1, 0)},
		{"translate after scale", Translate(5, 5).Multiply(Scale(2, 2)), Pt(1, 1), Pt(7, 7)},
		{"scale after translate", Scale(2, 2).Multiply(Translate(5, 5)), Pt(1, 1), Pt(12, 12)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformPoint(tt.in)
			if !pointNear(got, tt.want) {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMatrixInvert(t *testing.T) {
	m := Translate(3, 4).Multiply(RotateDegrees(30)).Multiply(Scale(2, 0.5))
	p := Pt(1.5, -2)
	if got := m.Invert().TransformPoint(m.TransformPoint(p)); !pointNear(got, p) {
		t.Errorf("Invert round trip = %v, want %v", got, p)
	}
	if !Scale(0, 1).Invert().IsIdentity() {
		t.Error("singular matrix should invert to identity")
	}
}

func TestMatrixMat4ColumnMajor(t *testing.T) {
	m := Matrix{A: 1, B: 2, C: 3, D: 4, E: 5, F: 6}
	got := m.Mat4()
	want := [16]float32{1, 4, 0, 0, 2, 5, 0, 0, 0, 0, 1, 0, 3, 6, 0, 1}
	if got != want {
		t.Errorf("Mat4() = %v, want %v", got, want)
	}

	// Column-major multiply of (x, y, 0, 1) must agree with TransformPoint.
	x, y := float32(0.5), float32(-2)
	gx := got[0]*x + got[4]*y + got[12]
	gy := got[1]*x + got[5]*y + got[13]
	p := m.TransformPoint(Pt(0.5, -2))
	if math.Abs(float64(gx)-p.X) > 1e-5 || math.Abs(float64(gy)-p.Y) > 1e-5 {
		t.Errorf("Mat4 applied = (%v, %v), want %v", gx, gy, p)
	}
}

func pointNear(a, b Point) bool {
	const eps = 1e-9
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func TestOrtho(t *testing.T) {
	m := Ortho(0, 100, 0, 75)
	corners := map[Point]Point{
		Pt(0, 0):     Pt(-1, -1),
		Pt(100, 75):  Pt(1, 1),
		Pt(50, 37.5): Pt(0, 0),
		Pt(100, 0):   Pt(1, -1),
	}
	for in, want := range corners {
		if got := m.TransformPoint(in); !pointNear(got, want) {
			t.Errorf("Ortho maps %v to %v, want %v", in, got, want)
		}
	}
	if !Ortho(1, 1, 0, 10).IsIdentity() {
		t.Error("empty rectangle should give the identity")
	}
	if d := m.Determinant(); math.Abs(d-2.0/100*2.0/75) > 1e-12 {
		t.Errorf("Determinant() = %v", d)
	}
}
