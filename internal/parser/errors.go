// Package parser provides a scriptlang recursive descent parser.
package parser

import (
	"errors"
	"fmt"

	"github.com/kolkov/scriptlang/internal/lexer"
	"github.com/kolkov/scriptlang/internal/token"
)

// Sentinel errors identifying the syntax error kinds.
// Use errors.Is to test an error returned by the parser.
var (
	ErrUnexpectedToken       = errors.New("unexpected token")
	ErrUnexpectedEOF         = errors.New("unexpected end of input")
	ErrBreakOutsideLoop      = errors.New("break outside of a loop")
	ErrReturnOutsideFunction = errors.New("return outside of a function")
)

// ParseError represents a syntax error encountered during parsing.
// It implements the error interface and includes the source span.
type ParseError struct {
	Kind    error       // One of the Err* sentinels
	Span    token.Span  // Source range of the offending token
	Message string      // Human-readable error message
	Want    string      // What was expected (optional)
	Got     lexer.Token // Token that was found
}

// Error returns a formatted error message with span information.
func (e *ParseError) Error() string {
	if e.Span.IsDummy() {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Span, e.Message)
}

// Unwrap returns the error kind so errors.Is matches the sentinels.
func (e *ParseError) Unwrap() error {
	return e.Kind
}

// errorf creates a ParseError of the given kind anchored at tok.
func errorf(kind error, tok lexer.Token, format string, args ...any) *ParseError {
	return &ParseError{
		Kind:    kind,
		Span:    tok.Span,
		Message: fmt.Sprintf(format, args...),
		Got:     tok,
	}
}

// expectedError creates a ParseError for an unexpected token. Running out
// of tokens is reported as ErrUnexpectedEOF.
func expectedError(want string, got lexer.Token) *ParseError {
	if got.Type == token.EOF {
		err := errorf(ErrUnexpectedEOF, got, "unexpected end of input, expected %s", want)
		err.Want = want
		return err
	}
	err := errorf(ErrUnexpectedToken, got, "expected %s, got %s", want, describe(got))
	err.Want = want
	return err
}

// describe returns a token description for error messages. Fixed
// lexemes are quoted; literals print their value.
func describe(tok lexer.Token) string {
	if tok.Type.IsLiteral() {
		return tok.Type.String() + " " + tok.String()
	}
	return describeType(tok.Type)
}

// describeType is describe for a token kind without a value.
func describeType(t token.Token) string {
	if t.IsOperator() || t.IsKeyword() {
		return "'" + t.String() + "'"
	}
	return t.String()
}
