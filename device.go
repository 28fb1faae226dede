package shapeplay

import "image"

// VertexBuffer is an opaque handle to a device-resident vertex array.
// Handles are created by a Device and are only meaningful to it.
type VertexBuffer interface {
	// Label returns the debug label given at creation.
	Label() string
	// VertexCount returns the number of x, y, z vertices in the buffer.
	VertexCount() int
}

// Drawer issues primitive draw calls against the currently bound vertex
// buffer and uniform state.
type Drawer interface {
	// DrawArrays draws count vertices starting at first with topology t.
	// A range outside the bound buffer panics with ErrVertexRange.
	DrawArrays(t Topology, first, count int)
}

// Device is the GPU context contract: buffer creation and upload, binding,
// uniform state and draw-call issuance. Uniform and binding state persists
// until changed, as with a GL context.
//
// Devices are not safe for concurrent use.
type Device interface {
	Drawer

	// CreateVertexBuffer allocates a buffer and uploads vertices (x, y, z
	// triples) as static data.
	CreateVertexBuffer(label string, vertices []float32) (VertexBuffer, error)

	// DestroyVertexBuffer releases a buffer created by this device.
	DestroyVertexBuffer(vb VertexBuffer)

	// BindVertexBuffer makes vb the source of subsequent draws.
	BindVertexBuffer(vb VertexBuffer)

	// SetColor sets the fill color uniform.
	SetColor(c RGBA)

	// SetViewProjection sets the world to clip-space matrix uniform.
	SetViewProjection(m Matrix)

	// SetModel sets the object to world matrix uniform.
	SetModel(m Matrix)

	// SetViewport maps normalized device coordinates onto r, in pixels
	// with the origin at the top-left of the target.
	SetViewport(r image.Rectangle)

	// Clear fills the current viewport with c.
	Clear(c RGBA)
}

// Surface is a Device that renders whole frames into a pixel target.
type Surface interface {
	Device

	// Size returns the target dimensions in pixels.
	Size() (width, height int)

	// BeginFrame starts recording a frame. The viewport resets to the
	// full target.
	BeginFrame() error

	// EndFrame finishes the frame and, if dst is non-nil, copies the
	// result into it (resizing dst to the target size).
	EndFrame(dst *Pixmap) error

	// Close releases all device resources. Close is idempotent.
	Close() error
}
