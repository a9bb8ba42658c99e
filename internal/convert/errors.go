// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"errors"
	"fmt"
	"io/fs"
)

// Failure conditions of a conversion run. Every error returned by this
// package wraps exactly one of them; callers test with errors.Is.
var (
	ErrFileNotFound     = errors.New("file not found")
	ErrMalformedInput   = errors.New("malformed input")
	ErrRowTooShort      = errors.New("row has too few fields")
	ErrPermissionDenied = errors.New("permission denied")
	ErrIO               = errors.New("i/o error")
)

// classifyFSError maps an os-level read error onto the package's conditions.
func classifyFSError(err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %w", ErrFileNotFound, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	default:
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
}

// classifyWriteError maps an os-level write error. A missing parent
// directory is an I/O failure here, not a missing input.
func classifyWriteError(err error) error {
	if errors.Is(err, fs.ErrPermission) {
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	}
	return fmt.Errorf("%w: %w", ErrIO, err)
}
