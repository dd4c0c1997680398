package ast

import "github.com/kolkov/scriptlang/internal/token"

// Program represents a complete scriptlang program: an ordered list of
// top-level statements.
type Program struct {
	Stmts []Stmt

	// Loc covers all statements; it is empty at offset 0 for an empty program.
	Loc token.Span
}

// Span returns the source range of the program.
func (p *Program) Span() token.Span { return p.Loc }

// Pos returns the offset of the first statement.
func (p *Program) Pos() int { return p.Loc.Start }

// End returns the offset after the last statement.
func (p *Program) End() int { return p.Loc.End }

// Functions returns the top-level function declarations in source order.
func (p *Program) Functions() []*FnDecl {
	var fns []*FnDecl
	for _, s := range p.Stmts {
		if fn, ok := s.(*FnDecl); ok {
			fns = append(fns, fn)
		}
	}
	return fns
}

var _ Node = (*Program)(nil)
