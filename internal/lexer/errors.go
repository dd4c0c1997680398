package lexer

import (
	"errors"
	"fmt"

	"github.com/kolkov/scriptlang/internal/token"
)

// Sentinel errors identifying the lexical error kinds.
// Use errors.Is to test an error returned by the lexer.
var (
	ErrUnterminatedString  = errors.New("unterminated string")
	ErrUnexpectedCharacter = errors.New("unexpected character")
	ErrInvalidNumber       = errors.New("invalid number")
)

// Error is a lexical error anchored to the offending source span.
type Error struct {
	Kind error      // One of the Err* sentinels
	Span token.Span // Offending source range
	Text string     // Offending source text (may be empty)
}

// Error returns the error message, prefixed with the span.
func (e *Error) Error() string {
	if e.Text != "" {
		return fmt.Sprintf("%s: %v %q", e.Span, e.Kind, e.Text)
	}
	return fmt.Sprintf("%s: %v", e.Span, e.Kind)
}

// Unwrap returns the error kind so errors.Is matches the sentinels.
func (e *Error) Unwrap() error {
	return e.Kind
}
