package model

import "errors"

var (
	// ErrInvalidIndex is returned when a list position is out of range.
	ErrInvalidIndex = errors.New("invalid index")

	// ErrInvalidStep is returned when a pattern step is out of range.
	ErrInvalidStep = errors.New("invalid step")

	// ErrInvalidColorComponent is returned when hue, saturation or brightness
	// lies outside [0, 1].
	ErrInvalidColorComponent = errors.New("invalid color component")

	// ErrLoopNotFound is returned when no loop carries the requested ID.
	ErrLoopNotFound = errors.New("loop not found")
)
