// Package software provides a CPU implementation of shapeplay.Surface.
//
// Triangles are filled with edge functions evaluated at pixel centers and
// composited source-over into a Pixmap. Shared edges follow a consistent
// fill rule, so adjacent triangles of a strip or fan never touch a pixel
// twice.
package software

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/gogpu/shapeplay"
)

var (
	// ErrInvalidDimensions is returned for non-positive surface sizes.
	ErrInvalidDimensions = errors.New("software: invalid dimensions")

	// ErrClosed is returned by BeginFrame after Close.
	ErrClosed = errors.New("software: surface closed")

	// ErrForeignBuffer is raised when a buffer from another device is used.
	ErrForeignBuffer = errors.New("software: vertex buffer from another device")
)

type vertexBuffer struct {
	owner *Surface
	label string
	verts []shapeplay.Point
}

func (b *vertexBuffer) Label() string    { return b.label }
func (b *vertexBuffer) VertexCount() int { return len(b.verts) }

// Surface rasterizes draw calls into an in-memory pixmap.
type Surface struct {
	target   *shapeplay.Pixmap
	viewport image.Rectangle

	bound *vertexBuffer
	color shapeplay.RGBA
	vp    shapeplay.Matrix
	model shapeplay.Matrix

	live   map[*vertexBuffer]struct{}
	closed bool
}

var _ shapeplay.Surface = (*Surface)(nil)

// New creates a surface of the given size.
func New(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	s := &Surface{
		target: shapeplay.NewPixmap(width, height),
		color:  shapeplay.White,
		vp:     shapeplay.Identity(),
		model:  shapeplay.Identity(),
		live:   make(map[*vertexBuffer]struct{}),
	}
	s.viewport = s.target.Bounds()
	return s, nil
}

// Target returns the pixmap the surface renders into.
func (s *Surface) Target() *shapeplay.Pixmap { return s.target }

// CreateVertexBuffer keeps the x, y components of each vertex.
func (s *Surface) CreateVertexBuffer(label string, vertices []float32) (shapeplay.VertexBuffer, error) {
	if len(vertices)%3 != 0 {
		return nil, fmt.Errorf("software: %s: %d floats is not a whole number of vertices", label, len(vertices))
	}
	b := &vertexBuffer{owner: s, label: label, verts: make([]shapeplay.Point, len(vertices)/3)}
	for i := range b.verts {
		b.verts[i] = shapeplay.Pt(float64(vertices[i*3]), float64(vertices[i*3+1]))
	}
	s.live[b] = struct{}{}
	shapeplay.Logger().Debug("software: vertex buffer created", "label", label, "vertices", len(b.verts))
	return b, nil
}

func (s *Surface) buffer(vb shapeplay.VertexBuffer) *vertexBuffer {
	b, ok := vb.(*vertexBuffer)
	if !ok || b.owner != s {
		panic(ErrForeignBuffer)
	}
	return b
}

// DestroyVertexBuffer forgets vb and unbinds it if bound.
func (s *Surface) DestroyVertexBuffer(vb shapeplay.VertexBuffer) {
	b := s.buffer(vb)
	delete(s.live, b)
	if s.bound == b {
		s.bound = nil
	}
}

// BindVertexBuffer selects vb as the source of later DrawArrays calls.
func (s *Surface) BindVertexBuffer(vb shapeplay.VertexBuffer) { s.bound = s.buffer(vb) }

// SetColor sets the flat fill color of later draws.
func (s *Surface) SetColor(c shapeplay.RGBA) { s.color = c }

// SetViewProjection sets the world-to-clip transform.
func (s *Surface) SetViewProjection(m shapeplay.Matrix) { s.vp = m }

// SetModel sets the object-to-world transform.
func (s *Surface) SetModel(m shapeplay.Matrix) { s.model = m }

// SetViewport restricts later draws and clears to r, in pixels.
func (s *Surface) SetViewport(r image.Rectangle) { s.viewport = r.Canon() }

// Clear replaces every pixel of the viewport with c.
func (s *Surface) Clear(c shapeplay.RGBA) {
	s.target.FillRect(s.viewport, c)
}

// DrawArrays rasterizes count vertices from first as a triangle list or
// strip. Incomplete trailing triangles are ignored.
func (s *Surface) DrawArrays(t shapeplay.Topology, first, count int) {
	b := s.bound
	if b == nil || first < 0 || count < 0 || first+count > len(b.verts) {
		panic(shapeplay.ErrVertexRange)
	}
	if count < 3 {
		return
	}

	mvp := s.vp.Multiply(s.model)
	pts := make([]shapeplay.Point, count)
	for i := range pts {
		pts[i] = s.toPixel(mvp.TransformPoint(b.verts[first+i]))
	}

	clip := s.viewport.Intersect(s.target.Bounds())
	switch t {
	case shapeplay.TriangleStrip:
		for i := 0; i+2 < len(pts); i++ {
			s.fillTriangle(pts[i], pts[i+1], pts[i+2], clip)
		}
	default:
		for i := 0; i+2 < len(pts); i += 3 {
			s.fillTriangle(pts[i], pts[i+1], pts[i+2], clip)
		}
	}
}

// toPixel maps normalized device coordinates (y up) to target pixels
// (y down) through the viewport.
func (s *Surface) toPixel(ndc shapeplay.Point) shapeplay.Point {
	vw, vh := float64(s.viewport.Dx()), float64(s.viewport.Dy())
	return shapeplay.Point{
		X: float64(s.viewport.Min.X) + (ndc.X+1)/2*vw,
		Y: float64(s.viewport.Min.Y) + (1-ndc.Y)/2*vh,
	}
}

func edge(a, b, p shapeplay.Point) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

// owns reports whether a pixel center lying exactly on edge a->b belongs to
// the triangle. The opposite orientation of a shared edge gets the other
// answer.
func owns(a, b shapeplay.Point) bool {
	dy := b.Y - a.Y
	return dy > 0 || (dy == 0 && b.X < a.X)
}

func (s *Surface) fillTriangle(a, b, c shapeplay.Point, clip image.Rectangle) {
	area := edge(a, b, c)
	if area == 0 || math.IsNaN(area) {
		return
	}
	if area < 0 {
		b, c = c, b
	}

	x0 := max(clip.Min.X, int(math.Floor(min(a.X, b.X, c.X))))
	x1 := min(clip.Max.X-1, int(math.Ceil(max(a.X, b.X, c.X))))
	y0 := max(clip.Min.Y, int(math.Floor(min(a.Y, b.Y, c.Y))))
	y1 := min(clip.Max.Y-1, int(math.Ceil(max(a.Y, b.Y, c.Y))))

	ownBC, ownCA, ownAB := owns(b, c), owns(c, a), owns(a, b)
	inside := func(w float64, own bool) bool {
		return w > 0 || (w == 0 && own)
	}

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			p := shapeplay.Pt(float64(x)+0.5, float64(y)+0.5)
			if inside(edge(b, c, p), ownBC) &&
				inside(edge(c, a, p), ownCA) &&
				inside(edge(a, b, p), ownAB) {
				s.target.BlendPixel(x, y, s.color)
			}
		}
	}
}

// Size returns the target dimensions.
func (s *Surface) Size() (int, int) {
	return s.target.Width(), s.target.Height()
}

// Resize changes the target size. Contents are undefined until the next
// frame is drawn.
func (s *Surface) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	s.target.Resize(width, height)
	s.viewport = s.target.Bounds()
	return nil
}

// BeginFrame resets the viewport to the whole target.
func (s *Surface) BeginFrame() error {
	if s.closed {
		return ErrClosed
	}
	s.viewport = s.target.Bounds()
	return nil
}

// EndFrame copies the target into dst unless dst is nil or the target
// itself.
func (s *Surface) EndFrame(dst *shapeplay.Pixmap) error {
	if dst == nil || dst == s.target {
		return nil
	}
	dst.Resize(s.target.Width(), s.target.Height())
	copy(dst.Data(), s.target.Data())
	return nil
}

// Close drops every vertex buffer. Close is idempotent.
func (s *Surface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	clear(s.live)
	s.bound = nil
	return nil
}
