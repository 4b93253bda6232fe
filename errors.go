package polyclip

import "errors"

var (
	// ErrInvalidClipType indicates a clip type outside the defined range
	ErrInvalidClipType = errors.New("invalid clip type")

	// ErrInvalidFillRule indicates a fill rule outside the defined range
	ErrInvalidFillRule = errors.New("invalid fill rule")

	// ErrInvalidPrecision indicates a rounding decimal precision outside [-8, 8]
	ErrInvalidPrecision = errors.New("invalid precision: must be in range [-8, 8]")

	// ErrCoordinateRange indicates a coordinate beyond the safe bound for the
	// requested scale, where cross/area products would overflow the 128-bit helpers
	ErrCoordinateRange = errors.New("coordinate outside safe range for precision")

	// ErrOpenPathsDisabled indicates an open subject was added where only
	// closed paths are accepted
	ErrOpenPathsDisabled = errors.New("open paths have been disabled")

	// ErrExecutionFailed indicates the sweep detected an internal invariant
	// violation and aborted; output buckets are left empty
	ErrExecutionFailed = errors.New("clipping execution failed")

	// ErrEmptyPath indicates a nil or empty path where a valid path is required
	ErrEmptyPath = errors.New("empty path")
)
