package backend

import (
	"github.com/gogpu/shapeplay"
	"github.com/gogpu/shapeplay/backend/software"
)

// Backend name constants.
const (
	// BackendSoftware is the name of the CPU-based software backend.
	BackendSoftware = "software"
	// BackendWGPU is the name of the Pure Go GPU backend (gogpu/wgpu hal).
	BackendWGPU = "wgpu"
)

// SoftwareBackend is a CPU-based rendering backend.
// It wraps software.Surface.
type SoftwareBackend struct {
	initialized bool
	surfaces    []*software.Surface
}

// init registers the software backend on package import.
func init() {
	Register(BackendSoftware, func() RenderBackend {
		return &SoftwareBackend{}
	})
}

// NewSoftwareBackend creates a new software rendering backend.
func NewSoftwareBackend() *SoftwareBackend {
	return &SoftwareBackend{}
}

// Name returns the backend identifier.
func (b *SoftwareBackend) Name() string {
	return BackendSoftware
}

// Init initializes the backend.
func (b *SoftwareBackend) Init() error {
	b.initialized = true
	return nil
}

// Close releases all backend resources, including surfaces it created.
func (b *SoftwareBackend) Close() {
	for _, s := range b.surfaces {
		_ = s.Close()
	}
	b.surfaces = nil
	b.initialized = false
}

// NewSurface creates a CPU rasterizing surface.
func (b *SoftwareBackend) NewSurface(width, height int) (shapeplay.Surface, error) {
	if !b.initialized {
		return nil, ErrNotInitialized
	}
	s, err := software.New(width, height)
	if err != nil {
		return nil, err
	}
	b.surfaces = append(b.surfaces, s)
	return s, nil
}
