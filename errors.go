// Package gitstatus provides sentinel errors for status cache operations.
// All errors can be checked using errors.Is() for programmatic handling.
package gitstatus

import (
	"errors"
	"fmt"
)

// Common sentinel errors that can be checked with errors.Is().
// These wrap underlying go-git errors while providing a stable API for consumers.

// ErrNoRepository is returned when no Git repository exists at or above
// the queried path.
var ErrNoRepository = errors.New("no git repository")

// ErrBareRepository is returned when a discovered repository has no
// working tree and therefore cannot answer status queries.
var ErrBareRepository = errors.New("repository has no working tree")

// ErrDetachedHead is returned when HEAD does not point at a branch.
var ErrDetachedHead = errors.New("HEAD is detached")

// ErrInvalidPath is returned when a queried path is empty or malformed.
var ErrInvalidPath = errors.New("invalid path")

// WrapError wraps an error with additional context while preserving
// the ability to check against sentinel errors using errors.Is().
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// WrapErrorf wraps an error with formatted additional context while preserving
// the ability to check against sentinel errors using errors.Is().
func WrapErrorf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}
