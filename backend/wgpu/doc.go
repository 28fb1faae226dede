// Package wgpu provides a GPU rendering backend using gogpu/wgpu.
//
// The backend talks to the hal layer of the Pure Go WebGPU implementation
// directly: one device, one off-screen RGBA8 texture per surface, and three
// render pipelines built from a single WGSL shader (triangle list, triangle
// strip, and an unblended strip used to clear the viewport).
//
// # Frames
//
// Device calls between BeginFrame and EndFrame are recorded, not executed.
// Every draw captures its model-view-projection matrix and color into a
// 256-byte slot of a per-frame uniform buffer, bound with a dynamic offset.
// EndFrame encodes the recorded draws into one render pass, submits it and
// waits for the queue. When a destination pixmap is given the target is
// copied into a staging buffer and read back row by row.
//
// # Shaders
//
// Vulkan and the CPU hal consume SPIR-V, which is produced from the WGSL
// source with naga at pipeline creation. Metal, DX12 and GLES receive WGSL.
//
// # Backend selection
//
// Importing this package registers the "wgpu" backend. The hal backends
// themselves are registered by importing
//
//	_ "github.com/gogpu/wgpu/hal/allbackends"
//
// Build with -tags nogpu to compile GPU support out; the factory then
// returns nil and backend selection falls back to software.
package wgpu
