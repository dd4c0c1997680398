// Package lexer provides scriptlang source code tokenization.
package lexer

import (
	"iter"
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/kolkov/scriptlang/internal/token"
)

// Lexer tokenizes scriptlang source code.
// A Lexer is a one-shot forward scanner: once it reports EOF or an error,
// every further Scan returns the same result. Re-scanning requires a new Lexer.
type Lexer struct {
	src    []byte // Source code
	ch     byte   // Current character (0 at EOF)
	pos    int    // Byte offset of ch
	offset int    // Byte offset of the character after ch

	err error // Sticky error, set by the first failed scan
}

// New creates a new Lexer for the given source code.
func New(src []byte) *Lexer {
	l := &Lexer{src: src}
	l.next() // Initialize first character
	return l
}

// NewFromString creates a new Lexer from a string.
func NewFromString(src string) *Lexer {
	return New([]byte(src))
}

// Token represents a scanned token with its span and value.
type Token struct {
	Type  token.Token
	Span  token.Span
	Value string  // Identifier name, string contents or number lexeme
	Num   float64 // Parsed value of a NUMBER token
}

// String returns a short description of the token for diagnostics.
func (t Token) String() string {
	switch t.Type {
	case token.IDENT, token.NUMBER:
		return t.Value
	case token.STRING:
		return strconv.Quote(t.Value)
	default:
		return t.Type.String()
	}
}

// Scan scans and returns the next token.
// At end of input it returns an EOF token whose span is empty and
// positioned at the end of the source.
func (l *Lexer) Scan() (Token, error) {
	if l.err != nil {
		return Token{Type: token.ILLEGAL, Span: l.err.(*Error).Span}, l.err
	}
	tok, err := l.scan()
	if err != nil {
		l.err = err
	}
	return tok, err
}

// All returns a lazy sequence over the remaining tokens.
// The sequence stops before EOF, or after yielding the first error.
// It can be ranged over only once.
func (l *Lexer) All() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		for {
			tok, err := l.Scan()
			if err != nil {
				yield(tok, err)
				return
			}
			if tok.Type == token.EOF {
				return
			}
			if !yield(tok, nil) {
				return
			}
		}
	}
}

// Tokenize scans src to completion and returns its tokens without the
// trailing EOF. Any lexical error aborts the whole pass.
func Tokenize(src string) ([]Token, error) {
	var toks []Token
	for tok, err := range NewFromString(src).All() {
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
	}
	return toks, nil
}

func (l *Lexer) scan() (Token, error) {
	l.skipWhitespace()

	start := l.pos

	// EOF
	if l.atEOF() {
		return Token{Type: token.EOF, Span: token.MakeSpan(start, start)}, nil
	}

	// Single character tokens and operators
	switch l.ch {
	case '+':
		return l.single(token.ADD), nil
	case '-':
		return l.single(token.SUB), nil
	case '*':
		return l.single(token.MUL), nil
	case '/':
		return l.single(token.DIV), nil
	case '%':
		return l.single(token.MOD), nil

	case '=':
		return l.pair('=', token.EQUALS, token.ASSIGN), nil
	case '!':
		return l.pair('=', token.NOT_EQUALS, token.NOT), nil
	case '<':
		return l.pair('=', token.LTE, token.LESS), nil
	case '>':
		return l.pair('=', token.GTE, token.GREATER), nil

	case '&':
		l.next()
		if l.ch == '&' && !l.atEOF() {
			l.next()
			return l.token(token.AND, start), nil
		}
		return l.unexpected(start)

	case '|':
		l.next()
		if l.ch == '|' && !l.atEOF() {
			l.next()
			return l.token(token.OR, start), nil
		}
		return l.unexpected(start)

	case '(':
		return l.single(token.LPAREN), nil
	case ')':
		return l.single(token.RPAREN), nil
	case '{':
		return l.single(token.LBRACE), nil
	case '}':
		return l.single(token.RBRACE), nil
	case '[':
		return l.single(token.LBRACKET), nil
	case ']':
		return l.single(token.RBRACKET), nil
	case ',':
		return l.single(token.COMMA), nil
	case ';':
		return l.single(token.SEMICOLON), nil
	case '.':
		return l.single(token.DOT), nil

	case '"':
		return l.scanString(start)

	default:
		if isDigit(l.ch) {
			return l.scanNumber(start)
		}
		if isIdentStart(l.ch) {
			return l.scanIdent(start), nil
		}
		l.next()
		return l.unexpected(start)
	}
}

// single consumes the current character as a one-character token.
func (l *Lexer) single(typ token.Token) Token {
	start := l.pos
	l.next()
	return l.token(typ, start)
}

// pair consumes a one- or two-character operator: if the character after
// the current one is second, the result is long, otherwise short.
func (l *Lexer) pair(second byte, long, short token.Token) Token {
	start := l.pos
	l.next()
	if l.ch == second && !l.atEOF() {
		l.next()
		return l.token(long, start)
	}
	return l.token(short, start)
}

func (l *Lexer) token(typ token.Token, start int) Token {
	return Token{Type: typ, Span: token.MakeSpan(start, l.pos), Value: string(l.src[start:l.pos])}
}

// unexpected reports the character starting at start. Multi-byte
// characters are reported whole.
func (l *Lexer) unexpected(start int) (Token, error) {
	_, size := utf8.DecodeRune(l.src[start:])
	for l.pos < start+size && !l.atEOF() {
		l.next()
	}
	span := token.MakeSpan(start, start+size)
	return Token{Type: token.ILLEGAL, Span: span}, &Error{
		Kind: ErrUnexpectedCharacter,
		Span: span,
		Text: string(l.src[span.Start:span.End]),
	}
}

func (l *Lexer) scanString(start int) (Token, error) {
	l.next() // consume opening quote
	from := l.pos

	for !l.atEOF() && l.ch != '"' {
		l.next()
	}

	if l.atEOF() {
		span := token.MakeSpan(start, l.pos)
		return Token{Type: token.ILLEGAL, Span: span}, &Error{Kind: ErrUnterminatedString, Span: span}
	}

	value := string(l.src[from:l.pos])
	l.next() // consume closing quote
	return Token{Type: token.STRING, Span: token.MakeSpan(start, l.pos), Value: value}, nil
}

func (l *Lexer) scanNumber(start int) (Token, error) {
	for isDigit(l.ch) && !l.atEOF() {
		l.next()
	}
	// A fraction needs at least one digit after the point; otherwise the
	// point is left for the parser (e.g. field access on a number).
	if l.ch == '.' && l.offset < len(l.src) && isDigit(l.src[l.offset]) {
		l.next()
		for isDigit(l.ch) && !l.atEOF() {
			l.next()
		}
	}

	span := token.MakeSpan(start, l.pos)
	raw := string(l.src[start:l.pos])
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(n, 0) {
		return Token{Type: token.ILLEGAL, Span: span}, &Error{Kind: ErrInvalidNumber, Span: span, Text: raw}
	}
	return Token{Type: token.NUMBER, Span: span, Value: raw, Num: n}, nil
}

func (l *Lexer) scanIdent(start int) Token {
	for isIdentContinue(l.ch) && !l.atEOF() {
		l.next()
	}
	name := string(l.src[start:l.pos])
	return Token{Type: token.Lookup(name), Span: token.MakeSpan(start, l.pos), Value: name}
}

// skipWhitespace skips whitespace and line comments (# ... and // ...).
func (l *Lexer) skipWhitespace() {
	for !l.atEOF() {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n':
			l.next()
		case l.ch == '#':
			l.skipComment()
		case l.ch == '/' && l.offset < len(l.src) && l.src[l.offset] == '/':
			l.skipComment()
		default:
			return
		}
	}
}

func (l *Lexer) skipComment() {
	for !l.atEOF() && l.ch != '\n' {
		l.next()
	}
}

func (l *Lexer) next() {
	if l.offset >= len(l.src) {
		l.ch = 0
		l.pos = len(l.src)
		return
	}
	l.pos = l.offset
	l.ch = l.src[l.offset]
	l.offset++
}

func (l *Lexer) atEOF() bool {
	return l.pos >= len(l.src)
}

// Helper functions

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isIdentContinue(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}
