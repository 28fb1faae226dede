package shapeplay_test

import (
	"image"
	"math"
	"testing"

	"github.com/gogpu/shapeplay"
	"github.com/gogpu/shapeplay/internal/recorder"
)

func TestCameraHeightFollowsAspect(t *testing.T) {
	cam := shapeplay.NewCamera(shapeplay.Pt(50, 37.5), 100, image.Rect(0, 0, 640, 480))
	if got := cam.Height(); got != 75 {
		t.Errorf("Height() = %v, want 75", got)
	}
}

func TestCameraViewProjection(t *testing.T) {
	cam := shapeplay.NewCamera(shapeplay.Pt(50, 37.5), 100, image.Rect(0, 0, 640, 480))
	vp := cam.ViewProjection()

	tests := []struct {
		world shapeplay.Point
		ndc   shapeplay.Point
	}{
		{shapeplay.Pt(50, 37.5), shapeplay.Pt(0, 0)},
		{shapeplay.Pt(0, 0), shapeplay.Pt(-1, -1)},
		{shapeplay.Pt(100, 75), shapeplay.Pt(1, 1)},
		{shapeplay.Pt(75, 37.5), shapeplay.Pt(0.5, 0)},
	}
	for _, tt := range tests {
		got := vp.TransformPoint(tt.world)
		if math.Abs(got.X-tt.ndc.X) > 1e-9 || math.Abs(got.Y-tt.ndc.Y) > 1e-9 {
			t.Errorf("VP(%v) = %v, want %v", tt.world, got, tt.ndc)
		}
	}
}

func TestCameraWorldToPixel(t *testing.T) {
	cam := shapeplay.NewCamera(shapeplay.Pt(50, 37.5), 100, image.Rect(0, 0, 640, 480))
	tests := []struct {
		world, pixel shapeplay.Point
	}{
		{shapeplay.Pt(0, 75), shapeplay.Pt(0, 0)},
		{shapeplay.Pt(50, 37.5), shapeplay.Pt(320, 240)},
		{shapeplay.Pt(100, 0), shapeplay.Pt(640, 480)},
	}
	for _, tt := range tests {
		got := cam.WorldToPixel(tt.world)
		if math.Abs(got.X-tt.pixel.X) > 1e-6 || math.Abs(got.Y-tt.pixel.Y) > 1e-6 {
			t.Errorf("WorldToPixel(%v) = %v, want %v", tt.world, got, tt.pixel)
		}
	}
}

func TestCameraSetupViewProjection(t *testing.T) {
	rec := recorder.New(640, 480)
	vpRect := image.Rect(10, 20, 330, 260)
	cam := shapeplay.NewCamera(shapeplay.Pt(0, 0), 10, vpRect)
	cam.SetBackgroundColor(shapeplay.Blue)

	got := cam.SetupViewProjection(rec)
	if got != cam.ViewProjection() {
		t.Error("SetupViewProjection returned a different matrix than ViewProjection")
	}
	if len(rec.Calls) != 2 || rec.Calls[0].Op != recorder.OpViewport || rec.Calls[1].Op != recorder.OpClear {
		t.Fatalf("calls = %v, want viewport then clear", rec.Ops())
	}
	if rec.Calls[0].Rect != vpRect || rec.Calls[1].Color != shapeplay.Blue {
		t.Errorf("viewport/clear = %v/%v", rec.Calls[0].Rect, rec.Calls[1].Color)
	}
}

func TestCameraDegenerateViewport(t *testing.T) {
	cam := shapeplay.NewCamera(shapeplay.Pt(0, 0), 10, image.Rectangle{})
	if !cam.ViewProjection().IsIdentity() {
		t.Error("empty viewport should yield identity view-projection")
	}
}
