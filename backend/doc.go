// Package backend provides a pluggable rendering backend abstraction.
//
// A backend produces shapeplay.Surface values: off-screen render targets
// implementing the device contract the game draws through. The software
// backend is always available; the wgpu backend is added by importing its
// package.
//
// # Backend Registration
//
// Backends are registered via init() functions and selected at runtime.
// The software backend is automatically registered on import:
//
//	import _ "github.com/gogpu/shapeplay/backend"
//
// The GPU backend registers itself when imported:
//
//	import _ "github.com/gogpu/shapeplay/backend/wgpu"
//
// # Backend Selection
//
// Use InitDefault() to get the best backend that initializes, or Open()
// to request a specific backend by name:
//
//	b, err := backend.Open("software")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer b.Close()
//
//	surface, err := b.NewSurface(640, 480)
//
// # Available Backends
//
// - "software": CPU triangle rasterizer (always available)
// - "wgpu": GPU via gogpu/wgpu hal, off-screen with readback
package backend
