package fileinfo

import "fmt"

// QueryError is returned when a path's metadata cannot be read.
type QueryError struct {
	Path  string
	Cause error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("could not stat file at '%s': %v", e.Path, e.Cause)
}

func (e *QueryError) Unwrap() error {
	return e.Cause
}

func (e *QueryError) IOError() bool {
	return true
}
