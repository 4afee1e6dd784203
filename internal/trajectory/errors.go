package trajectory

import "errors"

var (
	// ErrInvalidParameter reports a limit or offset that is not an integer
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrNotFound reports that no state vector carries the requested epoch
	ErrNotFound = errors.New("epoch not found")

	// ErrInvalidInput reports a state vector component that is not a number
	ErrInvalidInput = errors.New("invalid input")
)
