// Copyright (C) 2025 Jan Wrobel <jan@wwwhisper.io>
// This program is freely distributable under the terms of the
// Simplified BSD License. See COPYING.

package timer

import (
	"strings"

	"github.com/pkg/errors"
)

// Representation selects how the running state is rendered.
type Representation int

const (
	// Text renders "running" or "stopped".
	Text Representation = iota
	// Bool renders true or false.
	Bool
	// Int renders 1 or 0.
	Int
)

const (
	StatusRunning = "running"
	StatusStopped = "stopped"
)

func (r Representation) String() string {
	switch r {
	case Text:
		return "str"
	case Bool:
		return "bool"
	case Int:
		return "int"
	default:
		return "unknown"
	}
}

// ParseRepresentation is case insensitive, "str", "string" and "text"
// all select Text.
func ParseRepresentation(s string) (Representation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "str", "string", "text":
		return Text, nil
	case "bool":
		return Bool, nil
	case "int":
		return Int, nil
	default:
		return 0, errors.Wrapf(ErrInvalidArgument,
			"status representation %q, must be one of str, bool, int", s)
	}
}

// RenderStatus maps the running state to the requested
// representation.
func RenderStatus(running bool, rep Representation) (any, error) {
	switch rep {
	case Text:
		if running {
			return StatusRunning, nil
		}
		return StatusStopped, nil
	case Bool:
		return running, nil
	case Int:
		if running {
			return 1, nil
		}
		return 0, nil
	default:
		return nil, errors.Wrapf(ErrInvalidArgument,
			"status representation %d", int(rep))
	}
}
