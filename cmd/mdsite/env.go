package main

import (
	"io"
	"log/slog"
	"os"
	"time"
)

// Environment holds injectable dependencies for testability.
// Result lines go to Stdout/Stderr; operational messages go through Logger.
type Environment struct {
	Now    func() time.Time
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Level  *slog.LevelVar // Controls Logger; set from --quiet/--verbose
}

// DefaultEnv returns the production environment logging text to stderr.
func DefaultEnv() *Environment {
	return newEnv(os.Stdout, os.Stderr)
}

// newEnv builds an Environment whose logger writes to stderr.
func newEnv(stdout, stderr io.Writer) *Environment {
	level := new(slog.LevelVar)
	return &Environment{
		Now:    time.Now,
		Stdout: stdout,
		Stderr: stderr,
		Logger: slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})),
		Level:  level,
	}
}

// setVerbosity maps --quiet and --verbose to a log level.
// --quiet wins when both are given.
func (e *Environment) setVerbosity(quiet, verbose bool) {
	switch {
	case quiet:
		e.Level.Set(slog.LevelWarn)
	case verbose:
		e.Level.Set(slog.LevelDebug)
	default:
		e.Level.Set(slog.LevelInfo)
	}
}
