package fsutil

import (
	"fmt"
)

// RemoveError is returned when a path could not be deleted.
type RemoveError struct {
	Path  string
	Cause error
}

func (e *RemoveError) Error() string {
	return fmt.Sprintf("could not remove file at '%s': %v", e.Path, e.Cause)
}

func (e *RemoveError) Unwrap() error {
	return e.Cause
}

func (e *RemoveError) IOError() bool {
	return true
}

// CopyError is returned when copying a file fails.
type CopyError struct {
	Source      string
	Destination string
	Cause       error
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("could not copy file from '%s' to '%s': %v", e.Source, e.Destination, e.Cause)
}

func (e *CopyError) Unwrap() error {
	return e.Cause
}

func (e *CopyError) IOError() bool {
	return true
}

// MoveError is returned when a move fails after every fallback was tried.
// DestinationWritten is set when the destination already received the new
// content but the source could not be removed.
type MoveError struct {
	Source             string
	Destination        string
	Cause              error
	DestinationWritten bool
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("could not move file from '%s' to '%s': %v", e.Source, e.Destination, e.Cause)
}

func (e *MoveError) Unwrap() error {
	return e.Cause
}

func (e *MoveError) IOError() bool {
	return true
}
