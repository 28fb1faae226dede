package game

import "errors"

// Common errors returned by New and configuration loading.
var (
	// ErrInvalidConfig wraps every configuration validation failure.
	ErrInvalidConfig = errors.New("game: invalid config")

	// ErrNilInput is returned when New receives a nil Input.
	ErrNilInput = errors.New("game: nil input")

	// ErrNilClock is returned when New receives a nil Clock.
	ErrNilClock = errors.New("game: nil clock")

	// ErrBadScript is returned by ParseScript for malformed scripts.
	ErrBadScript = errors.New("game: bad input script")
)
