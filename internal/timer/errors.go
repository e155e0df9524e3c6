// Copyright (C) 2025 Jan Wrobel <jan@wwwhisper.io>
// This program is freely distributable under the terms of the
// Simplified BSD License. See COPYING.

package timer

import "github.com/pkg/errors"

// Errors returned by Timer operations are wrapped with the name of
// the operation. Use errors.Is to check for a specific kind.
var (
	// ErrAlreadyRunning is returned by Start when the timer runs.
	ErrAlreadyRunning = errors.New("timer is already running")

	// ErrNotRunning is returned by Stop when the timer is stopped.
	ErrNotRunning = errors.New("timer is not running")

	// ErrStillRunning is returned by Reset, Total and Elapsed when the
	// timer runs. A running timer has an open interval, so neither its
	// total nor discarding it is well defined.
	ErrStillRunning = errors.New("timer is still running")

	ErrInvalidArgument = errors.New("invalid argument")
)
