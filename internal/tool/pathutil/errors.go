package pathutil

import (
	"errors"
	"fmt"
)

// ErrNotDirectory is returned when the scratch location exists but is not a
// directory.
var ErrNotDirectory = errors.New("not a directory")

// ScratchDirError is returned when no usable scratch directory is found.
type ScratchDirError struct {
	Path  string
	Cause error
}

func (e *ScratchDirError) Error() string {
	return fmt.Sprintf("could not get temporary directory '%s': %v", e.Path, e.Cause)
}

func (e *ScratchDirError) Unwrap() error {
	return e.Cause
}

func (e *ScratchDirError) InvalidScratchDir() bool {
	return true
}
