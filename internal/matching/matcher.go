// Package matching provides position filtering by material and piece placement.
package matching

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// BoardMatcher is the interface for all position matching implementations.
type BoardMatcher interface {
	// Match returns true if the board matches the matcher's criteria.
	Match(board *chess.Board) bool

	// Name returns a descriptive name for this matcher.
	Name() string
}

// MatchMode specifies how multiple matchers are combined.
type MatchMode int

const (
	// MatchAll requires all matchers to match (AND logic).
	MatchAll MatchMode = iota

	// MatchAny requires at least one matcher to match (OR logic).
	MatchAny
)

// CompositeMatcher combines multiple BoardMatchers with AND or OR logic.
type CompositeMatcher struct {
	matchers []BoardMatcher
	mode     MatchMode
}

// NewCompositeMatcher creates a new CompositeMatcher with the given mode and matchers.
func NewCompositeMatcher(mode MatchMode, matchers ...BoardMatcher) *CompositeMatcher {
	return &CompositeMatcher{
		matchers: matchers,
		mode:     mode,
	}
}

// Add appends a matcher.
func (c *CompositeMatcher) Add(m BoardMatcher) {
	c.matchers = append(c.matchers, m)
}

// Len returns the number of combined matchers.
func (c *CompositeMatcher) Len() int {
	return len(c.matchers)
}

// Match implements BoardMatcher.
func (c *CompositeMatcher) Match(board *chess.Board) bool {
	if len(c.matchers) == 0 {
		// Empty composite: AND mode is vacuously true, OR mode has no conditions
		return c.mode == MatchAll
	}

	switch c.mode {
	case MatchAll:
		for _, m := range c.matchers {
			if !m.Match(board) {
				return false
			}
		}
		return true
	case MatchAny:
		for _, m := range c.matchers {
			if m.Match(board) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// Name implements BoardMatcher.
func (c *CompositeMatcher) Name() string {
	if len(c.matchers) == 0 {
		return "CompositeMatcher(empty)"
	}

	names := make([]string, len(c.matchers))
	for i, m := range c.matchers {
		names[i] = m.Name()
	}

	op := " AND "
	if c.mode == MatchAny {
		op = " OR "
	}
	return fmt.Sprintf("(%s)", strings.Join(names, op))
}
