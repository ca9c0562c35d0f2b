package directory

import (
	"fmt"
)

// EnumerateError is returned when a directory's entries cannot be read.
type EnumerateError struct {
	Path  string
	Cause error
}

func (e *EnumerateError) Error() string {
	return fmt.Sprintf("could not read directory '%s': %v", e.Path, e.Cause)
}

func (e *EnumerateError) Unwrap() error {
	return e.Cause
}

func (e *EnumerateError) IOError() bool {
	return true
}
