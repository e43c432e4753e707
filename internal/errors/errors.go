// Package errors provides sentinel errors and error types for the chessstego tool.
// It defines the failure conditions of the FEN and PGN codecs and structured
// error types that preserve context while allowing error inspection with
// errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidCharacter indicates a message character outside the 28-symbol alphabet.
	ErrInvalidCharacter = errors.New("character not in alphabet")

	// ErrMessageTooLong indicates a message exceeding the FEN carrier capacity.
	ErrMessageTooLong = errors.New("message too long")

	// ErrValueTooLarge indicates an integer that does not fit the requested digit count.
	ErrValueTooLarge = errors.New("value too large for length")

	// ErrHeaderOverflow indicates a message length that does not fit the header squares.
	ErrHeaderOverflow = errors.New("length does not fit header")

	// ErrBodyOverflow indicates a message integer exceeding the body capacity.
	ErrBodyOverflow = errors.New("message exceeds board capacity")

	// ErrDigitOutOfRange indicates a digit at or above its square's base.
	ErrDigitOutOfRange = errors.New("digit out of range for square")

	// ErrUnknownSymbol indicates a piece symbol absent from a square's table.
	ErrUnknownSymbol = errors.New("symbol not permitted on square")

	// ErrMalformedFEN indicates a FEN string that does not parse.
	ErrMalformedFEN = errors.New("malformed FEN")

	// ErrMalformedBoard indicates the fixed base board failed its self-check.
	// This is an invariant violation, never a normal input error.
	ErrMalformedBoard = errors.New("base board invariant violated")

	// ErrWidthOverflow indicates an integer that does not fit a fixed bit width.
	ErrWidthOverflow = errors.New("value does not fit bit width")

	// ErrGameEnded indicates the game ended before the bitstream was consumed.
	ErrGameEnded = errors.New("game ended before encoding was complete")

	// ErrUnknownMove indicates a PGN token that is not legal at its ply.
	ErrUnknownMove = errors.New("move not legal in position")

	// ErrDecompression indicates a payload that failed to decompress.
	ErrDecompression = errors.New("payload decompression failed")
)

// SquareError wraps errors with board context: the square's coordinates in
// the fixed scan order and the symbol or digit that caused the failure. It
// implements the error interface and supports unwrapping via errors.Is()
// and errors.As().
type SquareError struct {
	Err    error  // The underlying error
	Row    int    // Board row, 0 = topmost rank
	Col    int    // Board column, 0 = file a
	Symbol string // The offending piece symbol (if applicable)
	Digit  int    // The offending digit (if applicable, -1 otherwise)
}

// Error returns a formatted error message including all available context.
func (e *SquareError) Error() string {
	parts := []string{fmt.Sprintf("square %c%d", 'a'+rune(e.Col), 8-e.Row)}

	if e.Symbol != "" {
		parts = append(parts, fmt.Sprintf("symbol %q", e.Symbol))
	}
	if e.Digit >= 0 {
		parts = append(parts, fmt.Sprintf("digit %d", e.Digit))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the SquareError wrapper.
func (e *SquareError) Unwrap() error {
	return e.Err
}

// MoveError wraps errors with game context: the ply at which decoding or
// encoding failed and the move token involved.
type MoveError struct {
	Err   error  // The underlying error
	Ply   int    // 1-based ply number
	Token string // The move token that caused the error (if applicable)
}

// Error returns a formatted error message with ply and token context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Token != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.Token))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context != "" {
			return fmt.Sprintf("%s: %v", context, e.Err)
		}
		return e.Err.Error()
	}
	if context != "" {
		return context
	}
	return "move error"
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	return e.Err
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
