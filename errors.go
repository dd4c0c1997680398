package scriptlang

import (
	"errors"
	"fmt"

	"github.com/kolkov/scriptlang/internal/lexer"
	"github.com/kolkov/scriptlang/internal/parser"
	"github.com/kolkov/scriptlang/internal/token"
)

// Error kinds. A *SyntaxError unwraps to exactly one of these.
var (
	ErrUnterminatedString    = lexer.ErrUnterminatedString
	ErrUnexpectedCharacter   = lexer.ErrUnexpectedCharacter
	ErrInvalidNumber         = lexer.ErrInvalidNumber
	ErrUnexpectedToken       = parser.ErrUnexpectedToken
	ErrUnexpectedEOF         = parser.ErrUnexpectedEOF
	ErrBreakOutsideLoop      = parser.ErrBreakOutsideLoop
	ErrReturnOutsideFunction = parser.ErrReturnOutsideFunction
)

// Stage names the front end pass that reported an error.
type Stage string

const (
	StageLex   Stage = "lex"
	StageParse Stage = "parse"
)

// SyntaxError represents a lexical or syntax error in source code.
type SyntaxError struct {
	Stage    Stage  // Pass that failed
	Kind     error  // One of the Err* kinds
	Filename string // From Config.Filename
	Line     int    // 1-based line number (0 if unknown)
	Column   int    // 1-based byte column (0 if unknown)
	Span     Span   // Offending byte range
	Message  string // Error description
}

func (e *SyntaxError) Error() string {
	pos := token.Position{Filename: e.Filename, Line: e.Line, Column: e.Column}
	if !pos.IsValid() {
		return fmt.Sprintf("%s error: %s", e.Stage, e.Message)
	}
	return fmt.Sprintf("%s error at %s: %s", e.Stage, pos, e.Message)
}

// Unwrap returns the error kind so errors.Is matches the Err* values.
func (e *SyntaxError) Unwrap() error {
	return e.Kind
}

// convertError converts internal lexer and parser errors to SyntaxError.
// Other errors are returned unchanged.
func convertError(err error, file *token.File) error {
	var le *lexer.Error
	if errors.As(err, &le) {
		msg := le.Kind.Error()
		if le.Text != "" {
			msg = fmt.Sprintf("%s %q", msg, le.Text)
		}
		return newSyntaxError(StageLex, le.Kind, le.Span, msg, file)
	}
	var pe *parser.ParseError
	if errors.As(err, &pe) {
		return newSyntaxError(StageParse, pe.Kind, pe.Span, pe.Message, file)
	}
	return err
}

func newSyntaxError(stage Stage, kind error, span Span, msg string, file *token.File) *SyntaxError {
	e := &SyntaxError{
		Stage:    stage,
		Kind:     kind,
		Filename: file.Name(),
		Span:     span,
		Message:  msg,
	}
	if !span.IsDummy() {
		pos := file.Position(span.Start)
		e.Line, e.Column = pos.Line, pos.Column
	}
	return e
}
