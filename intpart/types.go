package intpart

import (
	"errors"
	"fmt"
)

// Sentinel errors for NewSuccessor.
var (
	// ErrInvalidArgument is the parent of every precondition violation.
	ErrInvalidArgument = errors.New("intpart: invalid argument")

	// ErrZeroParts is returned when k < 1.
	ErrZeroParts = fmt.Errorf("%w: part count must be at least 1", ErrInvalidArgument)

	// ErrZeroTotal is returned when n < 1.
	ErrZeroTotal = fmt.Errorf("%w: total must be at least 1", ErrInvalidArgument)

	// ErrTooManyParts is returned when k > n: no partition into k positive parts exists.
	ErrTooManyParts = fmt.Errorf("%w: part count exceeds total", ErrInvalidArgument)
)
