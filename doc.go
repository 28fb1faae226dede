// Package shapeplay is a small 2D rendering and game-loop toolkit built on
// the GoGPU stack.
//
// # Overview
//
// A fixed catalog of shapes (square, triangle, polygon, star) is uploaded
// once into per-shape vertex buffers owned by a [VertexBufferStore]. Each
// on-screen entity is a [Renderable]: a shape tag, a [Transform], a color,
// a [ShaderBinding] and a creation timestamp. The game package drives a
// cooperative frame loop over a collection of renderables.
//
// # Quick Start
//
//	surface, err := software.New(640, 480)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	store := shapeplay.NewVertexBufferStore(surface)
//	if err := store.Initialize(); err != nil {
//	    log.Fatal(err)
//	}
//	shaders := shapeplay.NewShaderRegistry(surface, store)
//
//	r := shapeplay.NewRenderable(shaders.For(shapeplay.Star), shapeplay.Star, 0)
//	r.Transform().SetPosition(50, 37.5)
//	r.Transform().SetSize(10, 10)
//	r.SetColor(shapeplay.Red)
//
//	cam := shapeplay.NewCamera(shapeplay.Pt(50, 37.5), 100, image.Rect(0, 0, 640, 480))
//	r.Draw(surface, cam.SetupViewProjection(surface))
//
// # Devices
//
// Rendering goes through the narrow [Device] contract: buffer creation,
// binding, uniform state and array draws. The backend/software package
// rasterizes on the CPU; backend/wgpu records the same calls into a
// gogpu/wgpu HAL render pass.
//
// # Coordinate System
//
// World coordinates are y-up. A [Camera] maps a world rectangle centered on
// its center point to normalized device coordinates in [-1, 1].
// Rotations are in degrees at the [Transform] level and radians at the
// [Matrix] level, counter-clockwise.
package shapeplay
