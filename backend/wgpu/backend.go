//go:build !nogpu

package wgpu

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/shapeplay"
	"github.com/gogpu/shapeplay/backend"
)

// init registers the wgpu backend on package import and routes hal logs
// through the shapeplay logger.
func init() {
	backend.Register(backend.BackendWGPU, func() backend.RenderBackend {
		return &Backend{}
	})
	shapeplay.RegisterLogSink(func(l *slog.Logger) {
		hal.SetLogger(l.With("component", "hal"))
	})
}

// Backend renders through the Pure Go gogpu/wgpu hal.
// It implements the backend.RenderBackend interface.
//
// Which hal backends exist depends on the program's imports, typically
// github.com/gogpu/wgpu/hal/allbackends. With none registered Init fails
// with ErrNoGPU and callers fall back to software.
type Backend struct {
	mu sync.Mutex

	api      hal.Backend
	dev      *gpuDevice
	surfaces []*Surface
}

// NewBackend creates a backend bound to api. A nil api selects the best
// registered hal backend at Init.
func NewBackend(api hal.Backend) *Backend {
	return &Backend{api: api}
}

// Name returns the backend identifier.
func (b *Backend) Name() string {
	return backend.BackendWGPU
}

// Init opens a device. Calling Init on an initialized backend is a no-op.
func (b *Backend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.dev != nil {
		return nil
	}
	api := b.api
	if api == nil {
		best, err := hal.SelectBestBackend()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrNoGPU, err)
		}
		api = best
	}
	dev, err := openDevice(api)
	if err != nil {
		return err
	}
	b.dev = dev
	return nil
}

// Info returns the GPU in use. ok is false before Init.
func (b *Backend) Info() (info GPUInfo, ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.dev == nil {
		return GPUInfo{}, false
	}
	return b.dev.info, true
}

// NewSurface creates an off-screen GPU surface.
func (b *Backend) NewSurface(width, height int) (shapeplay.Surface, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.dev == nil {
		return nil, ErrNotInitialized
	}
	s, err := newSurface(b.dev, width, height)
	if err != nil {
		return nil, err
	}
	b.surfaces = append(b.surfaces, s)
	return s, nil
}

// Close releases every surface and the device.
func (b *Backend) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, s := range b.surfaces {
		_ = s.Close()
	}
	b.surfaces = nil
	if b.dev != nil {
		b.dev.destroy()
		b.dev = nil
		shapeplay.Logger().Info("wgpu: device closed")
	}
}
