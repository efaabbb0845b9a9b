// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidArgument indicates a value rejected at construction, such as
	// a promotion letter outside Q, R, B, N.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIllegalState indicates the engine was driven outside its contract,
	// e.g. applying a move from an empty square. It is a programming error.
	ErrIllegalState = errors.New("illegal state")

	// ErrOutOfBounds indicates square coordinates outside the 8x8 grid.
	ErrOutOfBounds = errors.New("square out of bounds")

	// ErrIllegalMove indicates a move that is not in the current legal set.
	ErrIllegalMove = errors.New("illegal move")

	// ErrNothingToUndo indicates an empty history.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrNothingToRedo indicates an empty redo history.
	ErrNothingToRedo = errors.New("nothing to redo")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// FormatError describes a malformed FEN field. It unwraps to ErrInvalidFEN
// unless a more specific cause is given.
type FormatError struct {
	Field string // FEN field name ("placement", "side", "castling", ...)
	Value string // The offending text
	Msg   string // What was wrong with it
	Err   error  // Underlying cause; defaults to ErrInvalidFEN
}

// NewFormatError builds a FormatError for the given field.
func NewFormatError(field, value, msg string) *FormatError {
	return &FormatError{Field: field, Value: value, Msg: msg, Err: ErrInvalidFEN}
}

// Error returns a formatted error message with field context.
func (e *FormatError) Error() string {
	var parts []string

	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	if e.Value != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Value))
	}
	if e.Msg != "" {
		parts = append(parts, e.Msg)
	}

	cause := e.Err
	if cause == nil {
		cause = ErrInvalidFEN
	}
	if len(parts) == 0 {
		return cause.Error()
	}
	return fmt.Sprintf("%v: %s", cause, strings.Join(parts, ": "))
}

// Unwrap returns the underlying error.
func (e *FormatError) Unwrap() error {
	if e.Err == nil {
		return ErrInvalidFEN
	}
	return e.Err
}

// PositionError wraps errors with position context: where the FEN came from
// and which move, if any, was being played when the failure occurred.
type PositionError struct {
	Err      error  // The underlying error
	Index    int    // 1-based position number in the input
	FEN      string // The FEN text (if known)
	MoveText string // The move text that caused the error (if applicable)
	File     string // Source file name (if known)
	Line     int    // Line number in source file (if known)
}

// Error returns a formatted error message including all available context.
func (e *PositionError) Error() string {
	var parts []string

	if e.File != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.File, e.Line))
		} else {
			parts = append(parts, e.File)
		}
	}

	parts = append(parts, fmt.Sprintf("position %d", e.Index))

	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the PositionError wrapper.
func (e *PositionError) Unwrap() error {
	return e.Err
}

// IllegalState returns an ErrIllegalState error carrying a stack trace of the
// call site. Callers reaching it bypassed the legal-move gate.
func IllegalState(format string, args ...interface{}) error {
	return pkgerrors.WithStack(fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrIllegalState))
}

// OutOfBounds returns an ErrOutOfBounds error for the given coordinates,
// with the stack of the misplaced board access.
func OutOfBounds(rank, file int) error {
	return pkgerrors.WithStack(fmt.Errorf("square (%d, %d): %w", rank, file, ErrOutOfBounds))
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
