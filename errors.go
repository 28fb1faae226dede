package shapeplay

import "errors"

// Sentinel errors. Programmer errors (lookups before initialization,
// unknown shape tags) are raised as panics carrying these values.
var (
	// ErrNotInitialized is raised when a store is used before Initialize.
	ErrNotInitialized = errors.New("shapeplay: vertex buffer store not initialized")

	// ErrAlreadyInitialized is returned by a second call to Initialize.
	ErrAlreadyInitialized = errors.New("shapeplay: vertex buffer store already initialized")

	// ErrUnknownShape is raised for shape tags outside the catalog.
	ErrUnknownShape = errors.New("shapeplay: unknown shape")

	// ErrNilDevice is returned when a nil Device is supplied.
	ErrNilDevice = errors.New("shapeplay: nil device")

	// ErrVertexRange is raised when a draw call reads past the bound buffer.
	ErrVertexRange = errors.New("shapeplay: draw range outside vertex buffer")
)
