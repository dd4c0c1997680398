package scriptlang

import (
	"github.com/kolkov/scriptlang/internal/lexer"
	"github.com/kolkov/scriptlang/internal/parser"
	"github.com/kolkov/scriptlang/internal/token"
)

// Version is the scriptlang version string.
const Version = "0.1.0"

// Span is a half-open byte range [Start, End) into the source text.
type Span = token.Span

// Token is a lexical token as seen by library users.
type Token struct {
	// Kind is "identifier", "number" or "string" for literals and the
	// lexeme itself for keywords, operators and punctuation.
	Kind string

	// Text is the exact source text of the token.
	Text string

	// Value is the decoded value: float64 for numbers, the contents for
	// strings and the name for identifiers. It is nil for other tokens.
	Value any

	Span   Span
	Line   int // 1-based
	Column int // 1-based byte column
}

// Tokenize splits src into tokens. The end of input is not returned as a
// token, so empty source yields an empty slice.
//
// If config is nil, default configuration is used.
//
// Example:
//
//	toks, err := scriptlang.Tokenize(`let x = "hi";`, nil)
//	// kinds: let identifier = string ;
func Tokenize(src string, config *Config) ([]Token, error) {
	config = withDefaults(config)
	file := token.NewFile(config.Filename, src)

	toks, err := lexer.Tokenize(src)
	if err != nil {
		return nil, convertError(err, file)
	}

	out := make([]Token, len(toks))
	for i, tok := range toks {
		pos := file.Position(tok.Span.Start)
		out[i] = Token{
			Kind:   tok.Type.String(),
			Text:   src[tok.Span.Start:tok.Span.End],
			Value:  tokenValue(tok),
			Span:   tok.Span,
			Line:   pos.Line,
			Column: pos.Column,
		}
	}
	return out, nil
}

func tokenValue(tok lexer.Token) any {
	switch tok.Type {
	case token.NUMBER:
		return tok.Num
	case token.STRING, token.IDENT:
		return tok.Value
	}
	return nil
}

// Parse parses a complete program.
// The returned Program can be dumped or inspected any number of times.
//
// If config is nil, default configuration is used.
//
// Example:
//
//	prog, err := scriptlang.Parse(`fn add(a, b) { return a + b; }`, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(prog.Len()) // 1
func Parse(src string, config *Config) (*Program, error) {
	config = withDefaults(config)
	file := token.NewFile(config.Filename, src)

	root, err := parser.Parse(src)
	if err != nil {
		return nil, convertError(err, file)
	}

	return &Program{
		root:     root,
		source:   src,
		filename: config.Filename,
	}, nil
}

// MustParse is like Parse but panics on error.
// Useful for programs known to be valid at initialization time.
//
// Example:
//
//	var prog = scriptlang.MustParse(`let answer = 42;`)
func MustParse(src string) *Program {
	prog, err := Parse(src, nil)
	if err != nil {
		panic("scriptlang: " + err.Error())
	}
	return prog
}

// withDefaults returns a defaulted copy of config, leaving the caller's
// value untouched.
func withDefaults(config *Config) *Config {
	c := Config{}
	if config != nil {
		c = *config
	}
	c.applyDefaults()
	return &c
}
