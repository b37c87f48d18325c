package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/kula-app/geocalc/internal/config"
	"github.com/kula-app/geocalc/internal/geometry"
	"github.com/kula-app/geocalc/internal/logging"
	"github.com/kula-app/geocalc/internal/session"
)

// The run function is like the main function, except that it takes in operating system fundamentals as arguments, and returns an error.
//
// If the run function finishes without an error, the result line has been written to stdout.
// If the run function returns an error, the calculation was aborted.
//
// Prompts and the result go to stdout; diagnostics go to stderr only.
func run(ctx context.Context, args []string, getenv func(key string) string, stdin io.Reader, stdout, stderr io.Writer) error {
	// Load configuration: defaults, then environment, then flags
	cfg := config.DefaultConfig()
	cfg.ApplyEnv(getenv)

	flags := flag.NewFlagSet(args[0], flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Diagnostic log level written to stderr (debug, info, warn, error)")
	if err := flags.Parse(args[1:]); err != nil {
		// Usage has already been printed for -h
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	level, err := cfg.Level()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := slog.New(logging.NewTerminalHandler(stderr, level))
	logger.Debug("configuration loaded",
		"pi", cfg.Pi,
		"log_level", level.String())

	calculator := geometry.NewCalculator(cfg.Pi, logger)
	result, err := session.NewSession(stdin, stdout, calculator, logger).Run(ctx)
	if err != nil {
		return fmt.Errorf("calculation failed: %w", err)
	}

	logger.Debug("calculation finished", "result", result)
	return nil
}
