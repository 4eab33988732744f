package fileformat

import (
	"errors"
	"fmt"
	"io/fs"
)

// Common errors returned by the source-form entry points and the
// scan/watch/inspect surfaces. Classification itself never fails.
var (
	ErrNotExist       = errors.New("file does not exist")
	ErrPermission     = errors.New("permission denied")
	ErrClosed         = errors.New("watcher already closed")
	ErrNotDir         = errors.New("not a directory")
	ErrIsDir          = errors.New("is a directory")
	ErrInvalidPattern = errors.New("invalid glob pattern")
	ErrNotSupported   = errors.New("operation not supported")
)

// PathError records an error and the operation and file path that caused it
type PathError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface
func (e *PathError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *PathError) Unwrap() error {
	return e.Err
}

// wrapPathError wraps an OS-level error into a *PathError, substituting
// the package sentinel where the cause is recognizable so callers can use
// errors.Is without knowing the source of the failure.
func wrapPathError(op, path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		err = ErrNotExist
	case errors.Is(err, fs.ErrPermission):
		err = ErrPermission
	}
	return &PathError{Op: op, Path: path, Err: err}
}

// IsNotExist reports whether an error indicates that a file or directory
// does not exist
func IsNotExist(err error) bool {
	return errors.Is(err, ErrNotExist)
}

// IsPermission reports whether an error indicates that permission is denied
func IsPermission(err error) bool {
	return errors.Is(err, ErrPermission)
}

// IsInvalidPattern reports whether an error indicates a malformed glob
// pattern
func IsInvalidPattern(err error) bool {
	return errors.Is(err, ErrInvalidPattern)
}
