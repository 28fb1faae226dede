// Package recorder provides a shapeplay.Surface that records device calls
// instead of rendering them.
package recorder

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/shapeplay"
)

// Op names a recorded device call.
type Op string

// Recorded operations.
const (
	OpCreate   Op = "create"
	OpDestroy  Op = "destroy"
	OpBind     Op = "bind"
	OpColor    Op = "color"
	OpVP       Op = "view-projection"
	OpModel    Op = "model"
	OpViewport Op = "viewport"
	OpClear    Op = "clear"
	OpDraw     Op = "draw"
)

// Call is one recorded device call. Only the fields relevant to Op are set.
type Call struct {
	Op       Op
	Buffer   string
	Topology shapeplay.Topology
	First    int
	Count    int
	Color    shapeplay.RGBA
	Matrix   shapeplay.Matrix
	Rect     image.Rectangle
}

// ErrInjected is returned by CreateVertexBuffer for labels listed in
// Surface.FailCreate.
var ErrInjected = errors.New("recorder: injected failure")

type buffer struct {
	label string
	n     int
}

func (b *buffer) Label() string    { return b.label }
func (b *buffer) VertexCount() int { return b.n }

// Surface records every call it receives.
type Surface struct {
	// Calls holds the recorded calls in order.
	Calls []Call

	// FailCreate makes CreateVertexBuffer fail for the listed labels.
	FailCreate map[string]bool

	width, height int
	bound         *buffer
	live          map[*buffer]bool
	frames        int
	closed        bool
}

var _ shapeplay.Surface = (*Surface)(nil)

// New returns a recording surface of the given size.
func New(width, height int) *Surface {
	return &Surface{width: width, height: height, live: make(map[*buffer]bool)}
}

// Reset drops the recorded calls.
func (s *Surface) Reset() { s.Calls = s.Calls[:0] }

// Live returns the number of buffers created and not yet destroyed.
func (s *Surface) Live() int { return len(s.live) }

// Frames returns the number of completed frames.
func (s *Surface) Frames() int { return s.frames }

// Draws returns only the draw calls.
func (s *Surface) Draws() []Call {
	var out []Call
	for _, c := range s.Calls {
		if c.Op == OpDraw {
			out = append(out, c)
		}
	}
	return out
}

// Ops returns the sequence of recorded operation names.
func (s *Surface) Ops() []Op {
	out := make([]Op, len(s.Calls))
	for i, c := range s.Calls {
		out[i] = c.Op
	}
	return out
}

func (s *Surface) CreateVertexBuffer(label string, vertices []float32) (shapeplay.VertexBuffer, error) {
	if s.FailCreate[label] {
		return nil, fmt.Errorf("%w: %s", ErrInjected, label)
	}
	b := &buffer{label: label, n: len(vertices) / 3}
	s.live[b] = true
	s.Calls = append(s.Calls, Call{Op: OpCreate, Buffer: label, Count: b.n})
	return b, nil
}

func (s *Surface) DestroyVertexBuffer(vb shapeplay.VertexBuffer) {
	b := vb.(*buffer)
	delete(s.live, b)
	s.Calls = append(s.Calls, Call{Op: OpDestroy, Buffer: b.label})
}

func (s *Surface) BindVertexBuffer(vb shapeplay.VertexBuffer) {
	s.bound = vb.(*buffer)
	s.Calls = append(s.Calls, Call{Op: OpBind, Buffer: s.bound.label})
}

func (s *Surface) SetColor(c shapeplay.RGBA) {
	s.Calls = append(s.Calls, Call{Op: OpColor, Color: c})
}

func (s *Surface) SetViewProjection(m shapeplay.Matrix) {
	s.Calls = append(s.Calls, Call{Op: OpVP, Matrix: m})
}

func (s *Surface) SetModel(m shapeplay.Matrix) {
	s.Calls = append(s.Calls, Call{Op: OpModel, Matrix: m})
}

func (s *Surface) SetViewport(r image.Rectangle) {
	s.Calls = append(s.Calls, Call{Op: OpViewport, Rect: r})
}

func (s *Surface) Clear(c shapeplay.RGBA) {
	s.Calls = append(s.Calls, Call{Op: OpClear, Color: c})
}

func (s *Surface) DrawArrays(t shapeplay.Topology, first, count int) {
	if s.bound == nil || first < 0 || count < 0 || first+count > s.bound.n {
		panic(shapeplay.ErrVertexRange)
	}
	s.Calls = append(s.Calls, Call{Op: OpDraw, Buffer: s.bound.label, Topology: t, First: first, Count: count})
}

func (s *Surface) Size() (int, int) { return s.width, s.height }

func (s *Surface) BeginFrame() error {
	if s.closed {
		return errors.New("recorder: surface closed")
	}
	s.SetViewport(image.Rect(0, 0, s.width, s.height))
	return nil
}

func (s *Surface) EndFrame(dst *shapeplay.Pixmap) error {
	s.frames++
	if dst != nil {
		dst.Resize(s.width, s.height)
	}
	return nil
}

func (s *Surface) Close() error {
	s.closed = true
	return nil
}
