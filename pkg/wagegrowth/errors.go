package wagegrowth

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the sentinel matched by every validation failure.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError reports which parameter failed and why.
type InvalidArgumentError struct {
	// Param is the parameter name, e.g. "beta" or "deltaRange[2]".
	Param string

	// Reason describes the constraint that was violated.
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidArgument, e.Param, e.Reason)
}

// Is reports whether target is ErrInvalidArgument.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func invalid(param, reason string) error {
	return &InvalidArgumentError{Param: param, Reason: reason}
}
