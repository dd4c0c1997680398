package scriptlang

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kolkov/scriptlang/internal/ast"
)

// Format selects how Program.Dump renders the syntax tree.
type Format string

const (
	FormatSExpr Format = "sexpr" // One S-expression per top-level statement
	FormatYAML  Format = "yaml"
	FormatJSON  Format = "json"
)

// ParseFormat returns the Format named by s (case insensitive).
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatSExpr, FormatYAML, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q (want sexpr, yaml or json)", s)
}

// Program is a parsed scriptlang program.
// It is immutable and safe for concurrent use.
type Program struct {
	root     *ast.Program
	source   string
	filename string
}

// Source returns the source code the program was parsed from.
func (p *Program) Source() string {
	return p.source
}

// Filename returns Config.Filename at parse time.
func (p *Program) Filename() string {
	return p.filename
}

// Len returns the number of top-level statements.
func (p *Program) Len() int {
	return len(p.root.Stmts)
}

// Span returns the source range covered by the program.
func (p *Program) Span() Span {
	return p.root.Span()
}

// String returns the program in S-expression form, one statement per line.
func (p *Program) String() string {
	return ast.String(p.root)
}

// Dump writes the syntax tree to w in the given format.
// YAML and JSON output share one tree shape: every node is a mapping with
// a "type" and a "span" key plus its fields.
func (p *Program) Dump(w io.Writer, format Format) error {
	switch format {
	case FormatSExpr, "":
		return ast.NewPrinter(w).Print(p.root)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(ast.Encode(p.root)); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(ast.Encode(p.root)); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// Stats summarizes the shape of a program.
type Stats struct {
	Statements  int // All statements, nested ones included
	Expressions int // All expressions, literals included
	Literals    int
	Identifiers int // Identifier references and binding names
	Calls       int // Field accesses and function calls
	Functions   int // Function declarations
	Loops       int // loop and while statements
	Branches    int // if statements, else-if arms included
}

// Stats counts the nodes of the program by category.
func (p *Program) Stats() Stats {
	var s Stats
	ast.Walk(p.root, func(n ast.Node) bool {
		if _, ok := n.(ast.Stmt); ok {
			s.Statements++
		}
		if _, ok := n.(ast.Expr); ok {
			s.Expressions++
		}
		switch n.(type) {
		case ast.Literal:
			s.Literals++
		case *ast.Ident:
			s.Identifiers++
		case *ast.CallExpr:
			s.Calls++
		case *ast.FnDecl:
			s.Functions++
		case *ast.LoopStmt, *ast.WhileStmt:
			s.Loops++
		case *ast.IfStmt:
			s.Branches++
		}
		return true
	})
	return s
}
