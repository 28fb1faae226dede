package shapeplay

import "fmt"

// VertexBufferStore owns one device vertex buffer per catalog shape.
// Buffers are created once by Initialize and are read-only afterwards.
type VertexBufferStore struct {
	dev         Device
	buffers     [shapeCount]VertexBuffer
	initialized bool
}

// NewVertexBufferStore returns an empty store bound to dev.
func NewVertexBufferStore(dev Device) *VertexBufferStore {
	return &VertexBufferStore{dev: dev}
}

// Initialize uploads the vertex array of every catalog shape.
// A second call returns ErrAlreadyInitialized. If any upload fails, the
// buffers created so far are destroyed and the error is returned.
func (s *VertexBufferStore) Initialize() error {
	if s.dev == nil {
		return ErrNilDevice
	}
	if s.initialized {
		return ErrAlreadyInitialized
	}

	for _, shape := range Shapes() {
		vb, err := s.dev.CreateVertexBuffer(shape.String(), catalog[shape].vertices)
		if err != nil {
			s.destroyAll()
			return fmt.Errorf("shapeplay: create %s vertex buffer: %w", shape, err)
		}
		s.buffers[shape] = vb
	}
	s.initialized = true

	Logger().Debug("vertex buffers initialized", "shapes", int(shapeCount))
	return nil
}

// Initialized reports whether Initialize has completed.
func (s *VertexBufferStore) Initialized() bool {
	return s.initialized
}

// Handle returns the vertex buffer of a shape. It panics with
// ErrNotInitialized before Initialize and ErrUnknownShape for tags outside
// the catalog.
func (s *VertexBufferStore) Handle(shape Shape) VertexBuffer {
	if !s.initialized {
		panic(ErrNotInitialized)
	}
	if !shape.Valid() {
		panic(fmt.Errorf("%w: %d", ErrUnknownShape, int(shape)))
	}
	return s.buffers[shape]
}

// Release destroys every buffer. The store is unusable afterwards.
// Release is idempotent.
func (s *VertexBufferStore) Release() {
	if !s.initialized {
		return
	}
	s.destroyAll()
	s.initialized = false
}

func (s *VertexBufferStore) destroyAll() {
	for i, vb := range s.buffers {
		if vb != nil {
			s.dev.DestroyVertexBuffer(vb)
			s.buffers[i] = nil
		}
	}
}
