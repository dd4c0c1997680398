// Package token defines lexical tokens for scriptlang.
package token

import "strconv"

// Token represents a lexical token type.
type Token uint8

const (
	// Special tokens
	ILLEGAL Token = iota // <illegal>
	EOF                  // EOF

	// Operators and delimiters
	operatorStart
	ADD        // +
	SUB        // -
	MUL        // *
	DIV        // /
	MOD        // %
	ASSIGN     // =
	EQUALS     // ==
	NOT_EQUALS // !=
	LESS       // <
	LTE        // <=
	GREATER    // >
	GTE        // >=
	AND        // &&
	OR         // ||
	NOT        // !

	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }
	LBRACKET  // [
	RBRACKET  // ]
	COMMA     // ,
	SEMICOLON // ;
	DOT       // .
	operatorEnd

	// Keywords
	keywordStart
	IF     // if
	ELSE   // else
	WHILE  // while
	LOOP   // loop
	BREAK  // break
	RETURN // return
	LET    // let
	FN     // fn
	TRUE   // true
	FALSE  // false
	NULL   // null
	keywordEnd

	// Literals
	IDENT  // identifier
	NUMBER // number
	STRING // string
)

var names = [...]string{
	ILLEGAL: "<illegal>",
	EOF:     "end of file",

	ADD:        "+",
	SUB:        "-",
	MUL:        "*",
	DIV:        "/",
	MOD:        "%",
	ASSIGN:     "=",
	EQUALS:     "==",
	NOT_EQUALS: "!=",
	LESS:       "<",
	LTE:        "<=",
	GREATER:    ">",
	GTE:        ">=",
	AND:        "&&",
	OR:         "||",
	NOT:        "!",

	LPAREN:    "(",
	RPAREN:    ")",
	LBRACE:    "{",
	RBRACE:    "}",
	LBRACKET:  "[",
	RBRACKET:  "]",
	COMMA:     ",",
	SEMICOLON: ";",
	DOT:       ".",

	IF:     "if",
	ELSE:   "else",
	WHILE:  "while",
	LOOP:   "loop",
	BREAK:  "break",
	RETURN: "return",
	LET:    "let",
	FN:     "fn",
	TRUE:   "true",
	FALSE:  "false",
	NULL:   "null",

	IDENT:  "identifier",
	NUMBER: "number",
	STRING: "string",
}

// String returns the lexeme of operators and keywords, or a descriptive
// name for the other token types.
func (t Token) String() string {
	if int(t) < len(names) && names[t] != "" {
		return names[t]
	}
	return "token(" + strconv.Itoa(int(t)) + ")"
}

// IsOperator returns true if the token is an operator or delimiter.
func (t Token) IsOperator() bool {
	return t > operatorStart && t < operatorEnd
}

// IsKeyword returns true if the token is a keyword.
func (t Token) IsKeyword() bool {
	return t > keywordStart && t < keywordEnd
}

// IsLiteral returns true if the token carries a value (identifier, number, string).
func (t Token) IsLiteral() bool {
	return t == IDENT || t == NUMBER || t == STRING
}

// keywords maps keyword strings to their token types.
var keywords = map[string]Token{
	"if":     IF,
	"else":   ELSE,
	"while":  WHILE,
	"loop":   LOOP,
	"break":  BREAK,
	"return": RETURN,
	"let":    LET,
	"fn":     FN,
	"true":   TRUE,
	"false":  FALSE,
	"null":   NULL,
}

// Lookup returns the keyword token for ident, or IDENT if ident is not a keyword.
// Matching is exact and case-sensitive.
func Lookup(ident string) Token {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// Keywords returns the keyword spellings in declaration order.
func Keywords() []string {
	out := make([]string, 0, keywordEnd-keywordStart-1)
	for t := keywordStart + 1; t < keywordEnd; t++ {
		out = append(out, names[t])
	}
	return out
}
