// Package config provides configuration for the chessrules command.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	// Verbosity: 0=nothing, 1=position count summary, 2=running commentary
	Verbosity int

	// Workers is the number of positions processed in parallel (0 = one per CPU)
	Workers int

	// StopAfter ends processing once this many positions are output (0 = all)
	StopAfter int

	// Sub-configurations
	Output    *OutputConfig
	Report    *ReportConfig
	Filter    *FilterConfig
	Duplicate *DuplicateConfig

	// PlayMoves are UCI moves applied to every position before it is reported
	PlayMoves []string

	// File handling
	CurrentInputFile string
	OutputFilename   string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Output:     NewOutputConfig(),
		Report:     NewReportConfig(),
		Filter:     NewFilterConfig(),
		Duplicate:  NewDuplicateConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the diagnostics stream.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks the configuration for inconsistent values.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("verbosity %d not in 0..2: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.Workers < 0 {
		return fmt.Errorf("worker count %d is negative: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.StopAfter < 0 {
		return fmt.Errorf("stop-after %d is negative: %w", c.StopAfter, errors.ErrInvalidConfig)
	}
	if err := c.Report.Validate(); err != nil {
		return err
	}
	return c.Filter.Validate()
}
