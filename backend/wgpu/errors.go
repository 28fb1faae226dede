//go:build !nogpu

package wgpu

import "errors"

// Package errors for the wgpu backend.
var (
	// ErrNotInitialized is returned when operations are called before Init.
	ErrNotInitialized = errors.New("wgpu: backend not initialized")

	// ErrNoGPU is returned when no hal backend yields a usable device.
	ErrNoGPU = errors.New("wgpu: no GPU device available")

	// ErrShaderCompile is returned when the shape shader fails to compile.
	ErrShaderCompile = errors.New("wgpu: shader compilation failed")

	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("wgpu: invalid dimensions")

	// ErrClosed is returned when a closed surface is used.
	ErrClosed = errors.New("wgpu: surface closed")

	// ErrForeignBuffer is raised when a buffer from another device is used.
	ErrForeignBuffer = errors.New("wgpu: vertex buffer from another device")
)
