// Copyright 2025 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package wakepair

import (
	"errors"
)

// Standard errors.
var (
	// ErrCreate wraps every failure returned by [New] that occurs after option
	// validation, typically alongside the underlying OS error.
	ErrCreate = errors.New("wakepair: create failed")

	// ErrUnsupported indicates the requested [SourceKind] is not available on
	// the running platform.
	ErrUnsupported = errors.New("wakepair: source kind not supported on this platform")

	// ErrInvalidOption is returned by [New] for option values that cannot be
	// applied, before any descriptor is allocated.
	ErrInvalidOption = errors.New("wakepair: invalid option")

	// ErrClosed is returned by operations that start after [Pair.Close].
	ErrClosed = errors.New("wakepair: pair closed")
)

// WaitError reports a failure of the readiness wait itself, as distinct from
// a timeout. It is returned by [Pair.Wait].
type WaitError struct {
	Err error
	// Op is the name of the failing primitive, e.g. "poll".
	Op string
}

// Error implements the error interface.
func (e *WaitError) Error() string {
	if e.Err == nil {
		return "wakepair: " + e.Op + " failed"
	}
	return "wakepair: " + e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying OS error, for use with [errors.Is].
func (e *WaitError) Unwrap() error {
	return e.Err
}
