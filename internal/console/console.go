// Copyright (C) 2025 Jan Wrobel <jan@wwwhisper.io>
// This program is freely distributable under the terms of the
// Simplified BSD License. See COPYING.

// Package console implements the interactive loop that drives a
// stopwatch from text commands.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/wrr/stopwatch/internal/timer"
)

type Config struct {
	// Precision is used only if HasPrecision is set.
	Precision    int
	HasPrecision bool
	NoColor      bool
	LogLevel     slog.Level
}

const Version string = "1.0.0"

const menu = `Please choose from the available actions:
	status - Check if stopwatch is stopped or running.
	start  - Start a stopped stopwatch.
	stop   - Stop a running stopwatch.
	reset  - Reset a stopped stopwatch.
	total  - Show time when stopped.
	quit   - Quit program.

What would you like to do? `

// Confirmations printed after successful commands.
var confirmations = map[string]string{
	"start":  "Stopwatch is now running...",
	"stop":   "Stopwatch is stopped...",
	"reset":  "Stopwatch timer has been reset...",
	"quit":   "Thank you, goodbye...",
	"total":  "Calculating total...",
	"status": "Checking status...",
}

// Dispatcher maps command lines to timer operations and prints the
// results.
type Dispatcher struct {
	timer *timer.Timer
	out   io.Writer
	log   *slog.Logger
	ok    *color.Color
	fail  *color.Color
}

func NewDispatcher(t *timer.Timer, out io.Writer, log *slog.Logger, noColor bool) *Dispatcher {
	d := &Dispatcher{
		timer: t,
		out:   out,
		log:   log,
		ok:    color.New(color.FgGreen),
		fail:  color.New(color.FgRed),
	}
	if noColor {
		d.ok.DisableColor()
		d.fail.DisableColor()
	}
	return d
}

func (d *Dispatcher) Prompt() {
	fmt.Fprint(d.out, menu)
}

func (d *Dispatcher) confirm(command string) {
	d.ok.Fprintf(d.out, "\n\n\t>> %s\n", confirmations[command])
}

func (d *Dispatcher) failed(err error) {
	d.fail.Fprintf(d.out, "\n\n\t>> Error: %s\n", err)
}

// Dispatch executes a single command line. Returns true if the user
// asked to quit.
func (d *Dispatcher) Dispatch(line string) bool {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 || !isCommand(fields) {
		fmt.Fprint(d.out, "\n\tI'm sorry, I didn't understand.\n\n")
		return false
	}
	command := fields[0]
	cl := NewCommandLogger(d.log, command)
	defer cl.Done()

	var err error
	switch command {
	case "start":
		err = d.timer.Start()
	case "stop":
		err = d.timer.Stop()
	case "reset":
		err = d.timer.Reset()
	case "total":
		err = d.total(cl)
	case "status":
		err = d.status(cl, fields[1:])
	case "quit":
		d.confirm(command)
		fmt.Fprintln(d.out)
		return true
	}
	cl.Running(d.timer.Running())
	if err != nil {
		cl.Failed(err)
		d.failed(err)
	} else if command != "total" && command != "status" {
		d.confirm(command)
	}
	fmt.Fprintln(d.out)
	return false
}

func isCommand(fields []string) bool {
	if _, ok := confirmations[fields[0]]; !ok {
		return false
	}
	// Only status takes an argument, the requested representation.
	if fields[0] == "status" {
		return len(fields) <= 2
	}
	return len(fields) == 1
}

func (d *Dispatcher) total(cl *CommandLogger) error {
	formatted, err := d.timer.Format()
	if err != nil {
		return err
	}
	d.confirm("total")
	cl.Result(formatted)
	fmt.Fprintf(d.out, "\t>> total is %s\n", formatted)
	return nil
}

func (d *Dispatcher) status(cl *CommandLogger, args []string) error {
	rep := timer.Text
	if len(args) > 0 {
		var err error
		if rep, err = timer.ParseRepresentation(args[0]); err != nil {
			return err
		}
	}
	value, err := d.timer.Status(rep)
	if err != nil {
		return err
	}
	d.confirm("status")
	cl.Result(fmt.Sprint(value))
	fmt.Fprintf(d.out, "\t>> status is %v\n", value)
	return nil
}

func newTimer(cfg Config, log *slog.Logger) (*timer.Timer, error) {
	opts := []timer.Option{timer.WithLogger(log)}
	if cfg.HasPrecision {
		opts = append(opts, timer.WithPrecision(cfg.Precision))
	}
	return timer.New(opts...)
}

// Run reads commands from in until quit, end of input or cancellation
// of ctx. Cancellation is how an interrupt signal ends the loop, in
// which case a farewell is printed.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer, log *slog.Logger) error {
	t, err := newTimer(cfg, log)
	if err != nil {
		return err
	}
	d := NewDispatcher(t, out, log, cfg.NoColor)

	lines := make(chan string)
	readStatus := make(chan error, 1)
	// The reader may stay blocked on input after Run returns. It never
	// touches the dispatcher.
	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readStatus <- scanner.Err()
	}()

	for {
		d.Prompt()
		select {
		case line := <-lines:
			if d.Dispatch(line) {
				return nil
			}
		case err := <-readStatus:
			if err != nil {
				return errors.Wrap(err, "error reading input")
			}
			fmt.Fprintln(out)
			return nil
		case <-ctx.Done():
			log.Info("signal received, terminating")
			fmt.Fprint(out, "\nGoodbye!\n")
			return nil
		}
	}
}
