package repository

import (
	"errors"
	"fmt"

	"github.com/amirasaad/retailbank/pkg/repository"
)

// MapIOError converts file system errors to ErrPersistenceIO, keeping the cause
// in the chain. Errors that already carry a persistence kind are returned untouched.
func MapIOError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrPersistenceIO) || errors.Is(err, repository.ErrPersistenceFormat) {
		return err
	}
	return fmt.Errorf("%w: %s %s: %w", repository.ErrPersistenceIO, op, path, err)
}

// WrapError runs a file operation and maps its error:
//
//	err := WrapError("write", path, func() error {
//	    return os.WriteFile(path, data, 0o644)
//	})
func WrapError(op, path string, fn func() error) error {
	return MapIOError(op, path, fn())
}

// FormatError reports an unparseable field at a given line of a store file.
func FormatError(path string, line int, field string, err error) error {
	return fmt.Errorf("%w: %s:%d: %s: %w", repository.ErrPersistenceFormat, path, line, field, err)
}
