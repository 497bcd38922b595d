// Package errors provides error handling for this module.
//
// It re-exports github.com/cockroachdb/errors, which adds stack traces,
// wrapping with context, and rich inspection on top of the standard errors
// contract.
//
// Usage:
//
//	// Create new error
//	err := errors.Newf("unknown product family: %s", family)
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrNotFound) {
//	    // handle not found
//	}
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New   = crdb.New
	Newf  = crdb.Newf
	Wrap  = crdb.Wrap
	Wrapf = crdb.Wrapf
)

// Error inspection
var (
	Is     = crdb.Is
	As     = crdb.As
	Unwrap = crdb.Unwrap
)

// ErrNotFound indicates the requested resource does not exist. Wrap it with
// errors.Wrap() to add context while preserving the type.
var ErrNotFound = New("not found")

// IsNotFoundError checks if an error is or wraps ErrNotFound.
func IsNotFoundError(err error) bool {
	return err != nil && Is(err, ErrNotFound)
}

// NewNotFoundError creates a not-found error with a formatted message.
func NewNotFoundError(format string, args ...interface{}) error {
	return Wrap(ErrNotFound, Newf(format, args...).Error())
}
