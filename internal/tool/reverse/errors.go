package reverse

import (
	"errors"
	"fmt"
)

// -- Sentinels --

var (
	ErrPathRequired      = errors.New("path is required")
	ErrRecursionRequired = errors.New("refusing to recurse down into directory")
	ErrIsDirectory       = errors.New("path is a directory")
	ErrSpecialFile       = errors.New("not a regular file")
)

// Op names the step of a reversal that failed.
type Op string

const (
	OpOpen    Op = "open"
	OpSeek    Op = "seek"
	OpStat    Op = "stat"
	OpRead    Op = "read"
	OpCreate  Op = "create"
	OpWrite   Op = "write"
	OpClose   Op = "close"
	OpReplace Op = "replace"
)

// ReversalError is returned when streaming a file into its reversed copy
// fails. Path is the file the failing step touched: the source for open,
// seek and read, the temporary file for create, write and close, and the
// original for replace.
type ReversalError struct {
	Op    Op
	Path  string
	Cause error
}

func (e *ReversalError) Error() string {
	switch e.Op {
	case OpRead:
		return fmt.Sprintf("could not read contents of file at '%s': %v", e.Path, e.Cause)
	case OpWrite:
		return fmt.Sprintf("could not write to file at '%s': %v", e.Path, e.Cause)
	case OpReplace:
		return fmt.Sprintf("could not replace file at '%s': %v", e.Path, e.Cause)
	default:
		return fmt.Sprintf("could not %s file at '%s': %v", e.Op, e.Path, e.Cause)
	}
}

func (e *ReversalError) Unwrap() error {
	return e.Cause
}

func (e *ReversalError) IOError() bool {
	return true
}

// RecursionRequiredError is returned when a directory is given without
// recursive authorization.
type RecursionRequiredError struct {
	Path string
}

func (e *RecursionRequiredError) Error() string {
	return fmt.Sprintf("%v '%s'", ErrRecursionRequired, e.Path)
}

func (e *RecursionRequiredError) Unwrap() error {
	return ErrRecursionRequired
}
