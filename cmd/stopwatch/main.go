// Copyright (C) 2025 Jan Wrobel <jan@wwwhisper.io>
// This program is freely distributable under the terms of the
// Simplified BSD License. See COPYING.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wrr/stopwatch/internal/console"
	"github.com/wrr/stopwatch/internal/timer"
)

func parseLogLevel(logLevelStr string) slog.Level {
	switch strings.ToLower(logLevelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "":
		// default if STOPWATCH_LOG is not set
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "off":
		return slog.LevelError + 1
	default:
		// Use Info if logLevelStr is set to any other string
		return slog.LevelInfo
	}
}

func parsePrecision(in string) (int, error) {
	precision, err := strconv.Atoi(strings.TrimSpace(in))
	if err != nil {
		return 0, errors.Errorf("precision has invalid format: %s", in)
	}
	if precision < 0 || precision > timer.MaxPrecision {
		return 0, errors.Errorf("precision out of range %d", precision)
	}
	return precision, nil
}

// newConsoleConfig resolves settings from flags bound to v, with
// STOPWATCH_* environment variables as a fallback.
func newConsoleConfig(v *viper.Viper) (console.Config, error) {
	_, noColor := os.LookupEnv("STOPWATCH_NO_COLOR")
	config := console.Config{
		NoColor:  noColor || v.GetBool("no-color"),
		LogLevel: parseLogLevel(v.GetString("log-level")),
	}
	if v.IsSet("precision") {
		precision, err := parsePrecision(v.GetString("precision"))
		if err != nil {
			return console.Config{}, err
		}
		config.Precision = precision
		config.HasPrecision = true
	}
	return config, nil
}

func newRootCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stopwatch",
		Short: "Interactive stopwatch",
		Long: `stopwatch measures time over any number of start/stop cycles.
Commands are read from standard input: status, start, stop, reset,
total and quit.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if v.GetBool("version") {
				fmt.Fprintln(cmd.OutOrStdout(), console.Version)
				return nil
			}
			config, err := newConsoleConfig(v)
			if err != nil {
				return err
			}
			log := console.NewLogger(cmd.ErrOrStderr(), config.LogLevel)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return console.Run(ctx, config, cmd.InOrStdin(), cmd.OutOrStdout(), log)
		},
	}

	flags := cmd.Flags()
	flags.IntP("precision", "p", 0, `Number of fractional digits of a second in the total (0-16).
When not set, the total is printed with full precision.`)
	flags.String("log-level", "", "Log level: debug, info, warn, error or off")
	flags.Bool("no-color", false, "Disable colored output")
	flags.Bool("version", false, "Print the program version")

	for _, name := range []string{"precision", "log-level", "no-color", "version"} {
		// Binding fails only for a nil flag.
		_ = v.BindPFlag(name, flags.Lookup(name))
	}
	_ = v.BindEnv("precision", "STOPWATCH_PRECISION")
	_ = v.BindEnv("log-level", "STOPWATCH_LOG")
	return cmd
}

func die(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}

func main() {
	cmd := newRootCommand(viper.New())
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		die(err)
	}
}
