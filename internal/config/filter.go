package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// FilterConfig selects which positions are reported.
type FilterConfig struct {
	// Match conditions; when any is set only positions with a matching
	// status are output. MatchCheck covers checkmate as well as check.
	MatchCheck     bool
	MatchCheckmate bool
	MatchStalemate bool

	// MinMoves and MaxMoves bound the number of legal moves (MaxMoves 0 = no bound)
	MinMoves int
	MaxMoves int
}

// NewFilterConfig creates a FilterConfig with default values.
// All fields use Go zero values - filters are disabled by default.
func NewFilterConfig() *FilterConfig {
	return &FilterConfig{}
}

// MatchesStatus reports whether any status condition is set.
func (f *FilterConfig) MatchesStatus() bool {
	return f.MatchCheck || f.MatchCheckmate || f.MatchStalemate
}

// Validate checks that the filter configuration is valid.
func (f *FilterConfig) Validate() error {
	if f.MinMoves < 0 || f.MaxMoves < 0 {
		return fmt.Errorf("move count bounds must not be negative: %w", errors.ErrInvalidConfig)
	}
	if f.MaxMoves > 0 && f.MinMoves > f.MaxMoves {
		return fmt.Errorf("minimum move count (%d) > maximum move count (%d): %w",
			f.MinMoves, f.MaxMoves, errors.ErrInvalidConfig)
	}
	return nil
}
