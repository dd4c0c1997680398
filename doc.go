// Package scriptlang provides the front end of a small dynamically typed
// scripting language: a lexer that turns source text into spanned tokens and
// a recursive descent parser that builds an abstract syntax tree.
//
// The language has let declarations, assignments, functions, if/else chains,
// while and infinite loops, break and return, and an expression grammar with
// the usual logical, equality, comparison and arithmetic operators plus
// field access and call chains.
//
// # Quick Start
//
// Parse a program and print it in S-expression form:
//
//	prog, err := scriptlang.Parse(`let x = 10 + 20 * 100;`, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(prog)
//	// (let x (+ 10 (* 20 100)))
//
// Tokenize without parsing:
//
//	toks, err := scriptlang.Tokenize(`x >= 1`, nil)
//	// toks[0].Kind == "identifier", toks[1].Text == ">="
//
// # Configuration
//
// The [Config] type names the source file for diagnostics, selects the
// default dump [Format] and controls diagnostic rendering. Configs can be
// loaded from TOML or YAML files with [LoadConfig].
//
// # Error Handling
//
// Lexing and parsing stop at the first error. Errors are returned as
// [*SyntaxError] values carrying the stage, span and line/column of the
// problem. The error kinds are exported as sentinels for errors.Is:
//
//	_, err := scriptlang.Parse(`break;`, nil)
//	if errors.Is(err, scriptlang.ErrBreakOutsideLoop) {
//	    // ...
//	}
//
// [Diagnose] renders an error together with the offending source line
// and a caret underline.
//
// # Thread Safety
//
// Every call to [Tokenize] and [Parse] is independent. A parsed [Program]
// is never modified and is safe for concurrent use.
package scriptlang
