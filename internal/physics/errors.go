package physics

import "errors"

var (
	// ErrNonPositiveMass indicates a body constructed with mass <= 0.
	ErrNonPositiveMass = errors.New("physics: mass must be positive")

	// ErrInvalidBounds indicates a non-positive screen dimension.
	ErrInvalidBounds = errors.New("physics: screen dimensions must be positive")
)
