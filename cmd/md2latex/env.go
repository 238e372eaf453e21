package main

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alnah/go-md2latex/internal/config"
)

// Environment holds injectable dependencies for testability.
// Includes I/O, time and configuration.
type Environment struct {
	Now    func() time.Time
	Stdout io.Writer
	Stderr io.Writer
	Config *config.Config // Replaced by --config, shared across the batch
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Config: config.DefaultConfig(),
	}
}

// newLogger returns a text logger on the environment's stderr. Warnings are
// shown unless quiet; verbose adds debug records.
func (e *Environment) newLogger(quiet, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case verbose:
		level = slog.LevelDebug
	case quiet:
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(e.Stderr, &slog.HandlerOptions{Level: level}))
}
