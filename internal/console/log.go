// Copyright (C) 2025 Jan Wrobel <jan@wwwhisper.io>
// This program is freely distributable under the terms of the
// Simplified BSD License. See COPYING.

package console

import (
	"context"
	"io"
	"log/slog"
	"time"

	charmlog "github.com/charmbracelet/log"

	"github.com/wrr/stopwatch/internal/timer"
)

// NewLogger returns a logger that writes human readable lines to w.
// Records below level are dropped.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	handler := charmlog.NewWithOptions(w, charmlog.Options{
		Level:           charmlog.Level(level),
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})
	return slog.New(handler)
}

// CommandLogger collects attributes of a single dispatched command in
// several places in code. The attributes are then output as a single
// log line when Done() method is called.
type CommandLogger struct {
	log   *slog.Logger
	start time.Time
	attrs []slog.Attr
	level slog.Level
}

// Result stores the value printed in response to a query command.
func (c *CommandLogger) Result(value string) {
	c.attrs = append(c.attrs, slog.String("result", value))
}

// Failed stores the error returned by the timer. The log line is
// emitted at warn level.
func (c *CommandLogger) Failed(err error) {
	c.attrs = append(c.attrs, slog.String("error", err.Error()))
	c.level = slog.LevelWarn
}

// Running stores the timer state after the command.
func (c *CommandLogger) Running(running bool) {
	c.attrs = append(c.attrs, slog.Bool("running", running))
}

// Must be called at the end of the command processing. Outputs all
// the command attributes as a single log entry.
func (c *CommandLogger) Done() {
	duration := time.Since(c.start)
	c.attrs = append(c.attrs, slog.String("timer", timer.MsString(duration)))
	c.log.LogAttrs(context.Background(), c.level, "stopwatch", c.attrs...)
}

// NewCommandLogger starts a command processing timer which is then
// output together with all other command attributes when the Done()
// method is called.
func NewCommandLogger(log *slog.Logger, command string) *CommandLogger {
	return &CommandLogger{
		log:   log,
		start: time.Now(),
		attrs: []slog.Attr{slog.String("command", command)},
		level: slog.LevelInfo,
	}
}
