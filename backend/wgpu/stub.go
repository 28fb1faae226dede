//go:build nogpu

package wgpu

import "github.com/gogpu/shapeplay/backend"

// init registers a nil-returning factory when GPU support is compiled out,
// so backend.Get(backend.BackendWGPU) returns nil and selection falls back
// to software.
func init() {
	backend.Register(backend.BackendWGPU, func() backend.RenderBackend {
		return nil
	})
}
