package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MaxPerftDepth bounds the perft depth accepted on the command line.
const MaxPerftDepth = 8

// ReportConfig selects what is computed for each position.
type ReportConfig struct {
	Status     bool // Report check, checkmate or stalemate
	Moves      bool // List the legal moves
	Hash       bool // Include the Zobrist key
	Check      bool // Include the square of a checked king
	PerftDepth int  // Count leaf nodes to this depth (0 = off)
	Divide     bool // Break the perft count down by root move
	Verify     bool // Cross-check perft counts against a reference generator
}

// NewReportConfig creates a ReportConfig that reports status only.
func NewReportConfig() *ReportConfig {
	return &ReportConfig{Status: true}
}

// Validate checks that the report configuration is valid.
func (r *ReportConfig) Validate() error {
	if r.PerftDepth < 0 || r.PerftDepth > MaxPerftDepth {
		return fmt.Errorf("perft depth %d not in 0..%d: %w", r.PerftDepth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if (r.Divide || r.Verify) && r.PerftDepth == 0 {
		return fmt.Errorf("divide and verify need a perft depth: %w", errors.ErrInvalidConfig)
	}
	return nil
}
