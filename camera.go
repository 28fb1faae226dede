package shapeplay

import "image"

// Camera maps a world-space rectangle onto a pixel viewport.
// The visible world height follows from the width and the viewport
// aspect ratio.
type Camera struct {
	center     Point
	width      float64
	viewport   image.Rectangle
	background RGBA
}

// NewCamera returns a camera centered on center showing width world units
// across viewport. The background defaults to 0.8 gray.
func NewCamera(center Point, width float64, viewport image.Rectangle) *Camera {
	return &Camera{
		center:     center,
		width:      width,
		viewport:   viewport.Canon(),
		background: Gray(0.8),
	}
}

// SetCenter moves the camera.
func (c *Camera) SetCenter(p Point) { c.center = p }

// Center returns the world point at the middle of the viewport.
func (c *Camera) Center() Point { return c.center }

// SetWidth sets the visible world width.
func (c *Camera) SetWidth(w float64) { c.width = w }

// Width returns the visible world width.
func (c *Camera) Width() float64 { return c.width }

// Height returns the visible world height.
func (c *Camera) Height() float64 {
	if c.viewport.Dx() == 0 {
		return 0
	}
	return c.width * float64(c.viewport.Dy()) / float64(c.viewport.Dx())
}

// SetViewport sets the pixel viewport.
func (c *Camera) SetViewport(r image.Rectangle) { c.viewport = r.Canon() }

// Viewport returns the pixel viewport.
func (c *Camera) Viewport() image.Rectangle { return c.viewport }

// SetBackgroundColor sets the color the viewport is cleared to.
func (c *Camera) SetBackgroundColor(bg RGBA) { c.background = bg }

// BackgroundColor returns the viewport clear color.
func (c *Camera) BackgroundColor() RGBA { return c.background }

// ViewProjection returns the matrix mapping the visible world rectangle to
// normalized device coordinates [-1, 1] with y up.
func (c *Camera) ViewProjection() Matrix {
	hw, hh := c.width/2, c.Height()/2
	return Ortho(c.center.X-hw, c.center.X+hw, c.center.Y-hh, c.center.Y+hh)
}

// SetupViewProjection points dev at the camera viewport, clears it to the
// background color and returns the view-projection matrix.
func (c *Camera) SetupViewProjection(dev Device) Matrix {
	dev.SetViewport(c.viewport)
	dev.Clear(c.background)
	return c.ViewProjection()
}

// WorldToPixel maps a world point to viewport pixel coordinates (y down).
func (c *Camera) WorldToPixel(p Point) Point {
	ndc := c.ViewProjection().TransformPoint(p)
	return Point{
		X: float64(c.viewport.Min.X) + (ndc.X+1)/2*float64(c.viewport.Dx()),
		Y: float64(c.viewport.Min.Y) + (1-ndc.Y)/2*float64(c.viewport.Dy()),
	}
}
