// Package usererr classifies errors caused by user input so the CLI can
// report them as validation failures rather than internal faults.
package usererr

import (
	"errors"
	"fmt"
)

// InvalidArgumentError is returned when a user-supplied value fails
// validation: an unrecognized coin or currency, an unknown resource kind,
// or a date ordering violation.
type InvalidArgumentError struct {
	msg string
}

func (e *InvalidArgumentError) Error() string { return e.msg }

// Invalidf creates an InvalidArgumentError with a formatted message.
func Invalidf(format string, args ...interface{}) error {
	return &InvalidArgumentError{msg: fmt.Sprintf(format, args...)}
}

// IsInvalidArgument reports whether err is (or wraps) an invalid-argument
// validation failure.
func IsInvalidArgument(err error) bool {
	var iae *InvalidArgumentError
	return errors.As(err, &iae)
}
