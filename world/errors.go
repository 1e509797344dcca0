package world

import "errors"

// Sentinel errors returned by the engine. Callers branch with errors.Is;
// call sites attach context via %w wrapping.
var (
	// ErrInvalidDimensions indicates a non-positive width or height at
	// construction time. Resize below the minimum is a silent no-op
	// instead, never an error.
	ErrInvalidDimensions = errors.New("world: non-positive grid dimensions")

	// ErrMalformedGrid indicates non-rectangular rows or a cell value
	// outside [0, 1] on load.
	ErrMalformedGrid = errors.New("world: malformed grid rows")

	// ErrInvalidConfig indicates fade parameters outside their valid
	// ranges while fade rules are enabled.
	ErrInvalidConfig = errors.New("world: invalid configuration")

	// ErrUnknownMode indicates an unrecognized populate mode. The grid is
	// left untouched.
	ErrUnknownMode = errors.New("world: unknown populate mode")
)
