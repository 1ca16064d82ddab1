// Package config provides configuration for the chess command-line driver.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessboard-go/internal/engine"
	"github.com/lgbarn/chessboard-go/internal/errors"
)

// Verbosity levels for the log stream.
const (
	Silent     = 0 // nothing
	Results    = 1 // game results and rejected moves
	Commentary = 2 // every move as it is played
)

// Config holds all driver configuration.
type Config struct {
	// Verbosity controls what is written to LogFile.
	Verbosity int

	// StartFEN is the starting position; empty means the standard start.
	StartFEN string

	// Interactive runs the terminal board instead of the line driver.
	Interactive bool

	// Output holds rendering settings.
	Output *OutputConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Results,
		Output:     NewOutputConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks the configuration for values the driver cannot run with.
func (c *Config) Validate() error {
	if c.Verbosity < Silent || c.Verbosity > Commentary {
		return fmt.Errorf("verbosity %d not in [%d, %d]: %w", c.Verbosity, Silent, Commentary, errors.ErrInvalidConfig)
	}
	if c.OutputFile == nil || c.LogFile == nil {
		return fmt.Errorf("output and log streams must be set: %w", errors.ErrInvalidConfig)
	}
	if c.Output == nil {
		return fmt.Errorf("output settings missing: %w", errors.ErrInvalidConfig)
	}
	if c.StartFEN != "" {
		if _, err := engine.NewGameFromFEN(c.StartFEN); err != nil {
			return fmt.Errorf("start position: %v: %w", err, errors.ErrInvalidConfig)
		}
	}
	return nil
}

// NewGame creates the game the configuration asks for.
func (c *Config) NewGame() (*engine.Game, error) {
	if c.StartFEN == "" {
		return engine.NewGame(), nil
	}
	g, err := engine.NewGameFromFEN(c.StartFEN)
	if err != nil {
		return nil, errors.Wrap(err, "loading start position")
	}
	return g, nil
}

// Logf writes to the log stream when the verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.Verbosity < level || c.LogFile == nil {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}
