package shapeplay

import (
	"math"
	"testing"
)

func TestTransformSetters(t *testing.T) {
	var tr Transform
	tr.SetPosition(10, 20)
	tr.IncPositionBy(-1, 0.5)
	tr.SetSize(3, 4)
	tr.SetRotationDegrees(45)

	if got := tr.Position(); got != Pt(9, 20.5) {
		t.Errorf("Position() = %v, want (9, 20.5)", got)
	}
	if got := tr.Size(); got != Pt(3, 4) {
		t.Errorf("Size() = %v, want (3, 4)", got)
	}
	if got := tr.RotationDegrees(); got != 45 {
		t.Errorf("RotationDegrees() = %v, want 45", got)
	}
}

func TestTransformMatrixComposesTranslateRotateScale(t *testing.T) {
	tests := []struct {
		name     string
		pos      Point
		size     Point
		rotation float64
		in       Point
		want     Point
	}{
		{"unit at origin", Pt(0, 0), Pt(1, 1), 0, Pt(0.5, 0.5), Pt(0.5, 0.5)},
		{"translated", Pt(50, 37.5), Pt(1, 1), 0, Pt(0.5, 0.5), Pt(50.5, 38)},
		{"scaled before translate", Pt(10, 10), Pt(4, 2), 0, Pt(0.5, 0.5), Pt(12, 11)},
		{"rotated 90 after scale", Pt(0, 0), Pt(2, 1), 90, Pt(0.5, 0), Pt(0, 1)},
		{"all three", Pt(5, 5), Pt(2, 2), 180, Pt(0.5, 0), Pt(4, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tr Transform
			tr.SetPosition(tt.pos.X, tt.pos.Y)
			tr.SetSize(tt.size.X, tt.size.Y)
			tr.SetRotationDegrees(tt.rotation)
			got := tr.Matrix().TransformPoint(tt.in)
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Errorf("Matrix().TransformPoint(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTransformMatrixNotCached(t *testing.T) {
	var tr Transform
	tr.SetSize(1, 1)
	before := tr.Matrix()
	tr.IncPositionBy(3, 0)
	after := tr.Matrix()
	if before == after {
		t.Error("Matrix() did not reflect a position change")
	}
	if after.C != 3 {
		t.Errorf("translation = %v, want 3", after.C)
	}
}
