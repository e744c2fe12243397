package model

import (
	"errors"
	"fmt"
	"io/fs"
)

// Sentinel errors for the failure kinds the analyzer distinguishes
var (
	ErrNotFound         = errors.New("file not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrInvalidPath      = errors.New("path is neither a file nor a directory")
)

// ClassifyReadError maps an OS-level read failure for path to one of the
// analyzer's error kinds, wrapping so errors.Is still sees the sentinel.
// Unrecognized failures pass through wrapped as generic I/O errors.
func ClassifyReadError(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %s", ErrPermissionDenied, path)
	default:
		return fmt.Errorf("reading %s: %w", path, err)
	}
}
