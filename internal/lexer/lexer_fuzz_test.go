// Package lexer provides scriptlang source code tokenization.
package lexer

import (
	"errors"
	"testing"

	"github.com/coregx/coregex"

	"github.com/kolkov/scriptlang/internal/token"
)

// FuzzLexer tests that the lexer handles arbitrary input without panicking
// and produces well-formed tokens.
func FuzzLexer(f *testing.F) {
	seeds := []string{
		// Statements
		`let x = 10;`,
		`x = x + 1;`,
		`fn add(a, b) { return a + b; }`,
		`if a { b; } else if c { d; } else { e; }`,
		`while i < 10 { i = i + 1; }`,
		`loop { break; }`,

		// Expressions
		`a == b && c != d`,
		`!x || -y >= z % 2`,
		`obj.field.method(1, "two", [3, null])`,

		// Numbers
		`123 456.789 1.x 12ab 1.5.6`,

		// Strings
		`"hello" "multi
line"`,

		// Edge cases
		``,
		`# comment only`,
		`// comment only`,
		`"unterminated`,
		`a & b`,
		`a | b`,
		`@`,

		// Unicode
		`"привет мир"`,
		`"emoji 🎉"`,
		`é`,
	}

	for _, seed := range seeds {
		f.Add([]byte(seed))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		l := New(data)

		tokenCount := 0
		const maxTokens = 10000 // Prevent infinite loops
		last := 0

		for tokenCount < maxTokens {
			tok, err := l.Scan()
			if err != nil {
				var lexErr *Error
				if !errors.As(err, &lexErr) {
					t.Fatalf("error %T is not *Error", err)
				}
				if lexErr.Span.Start < last || lexErr.Span.End > len(data) {
					t.Errorf("error span %v out of range", lexErr.Span)
				}
				break
			}

			if tok.Span.Start < last || tok.Span.End < tok.Span.Start || tok.Span.End > len(data) {
				t.Fatalf("token %v has bad span %v (last end %d, len %d)", tok, tok.Span, last, len(data))
			}
			last = tok.Span.End

			if tok.Type == token.EOF {
				if tok.Span.Start != len(data) {
					t.Errorf("EOF span = %v, want at %d", tok.Span, len(data))
				}
				break
			}

			tokenCount++
		}

		if tokenCount >= maxTokens {
			t.Skip("too many tokens, possibly malformed input")
		}
	})
}

// FuzzLexemeShapes checks that every scanned identifier and number matches
// its lexical grammar.
func FuzzLexemeShapes(f *testing.F) {
	identRe, err := coregex.Compile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	if err != nil {
		f.Fatal(err)
	}
	numberRe, err := coregex.Compile(`^[0-9]+(\.[0-9]+)?$`)
	if err != nil {
		f.Fatal(err)
	}

	seeds := []string{
		`x1 _y 0 10.25 1.x 3..4`,
		`iffy if_ _ __ a1b2`,
		`0000.0001`,
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, src string) {
		for tok, err := range NewFromString(src).All() {
			if err != nil {
				return
			}
			switch tok.Type {
			case token.IDENT:
				if !identRe.MatchString(tok.Value) {
					t.Errorf("identifier %q does not match identifier grammar", tok.Value)
				}
			case token.NUMBER:
				if !numberRe.MatchString(tok.Value) {
					t.Errorf("number %q does not match number grammar", tok.Value)
				}
			}
			if tok.Type.IsKeyword() && token.Lookup(tok.Value) != tok.Type {
				t.Errorf("keyword %v has lexeme %q", tok.Type, tok.Value)
			}
		}
	})
}
