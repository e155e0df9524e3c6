// Copyright (C) 2025 Jan Wrobel <jan@wwwhisper.io>
// This program is freely distributable under the terms of the
// Simplified BSD License. See COPYING.

package timer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderStatus(t *testing.T) {
	testCases := []struct {
		running  bool
		rep      Representation
		expected any
	}{
		{true, Text, "running"},
		{false, Text, "stopped"},
		{true, Bool, true},
		{false, Bool, false},
		{true, Int, 1},
		{false, Int, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.rep.String(), func(t *testing.T) {
			out, err := RenderStatus(tc.running, tc.rep)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, out)
		})
	}
}

func TestRenderStatusInvalid(t *testing.T) {
	_, err := RenderStatus(true, Representation(42))
	assert.ErrorIs(t, err, ErrInvalidArgument)

	tmr, err := New()
	require.NoError(t, err)
	_, err = tmr.Status(Representation(-1))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestParseRepresentation(t *testing.T) {
	testCases := []struct {
		in  string
		out Representation
	}{
		{"str", Text},
		{"STRING", Text},
		{" text ", Text},
		{"bool", Bool},
		{"Int", Int},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			rep, err := ParseRepresentation(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.out, rep)
		})
	}

	for _, in := range []string{"", "float", "1"} {
		_, err := ParseRepresentation(in)
		assert.ErrorIs(t, err, ErrInvalidArgument, "input %q", in)
	}
}
