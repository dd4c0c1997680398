// Package ast defines the abstract syntax tree for scriptlang programs.
//
// The AST is designed for:
//   - Exclusive ownership (every node has exactly one parent, no sharing)
//   - Source span tracking for error reporting
//   - Generic visitor pattern (Go 1.18+ generics)
//
// Node hierarchy:
//
//	Node (interface)
//	├── Expr (interface) - expressions that produce values
//	│   ├── Ident - references
//	│   ├── Literal (interface) - StrLit, NumLit, ArrayLit, ObjectLit, BoolLit, NullLit
//	│   ├── UnaryExpr, BinaryExpr - operations
//	│   └── CallExpr - field access and invocation (postfix chains nest)
//	├── Stmt (interface) - statements that perform actions
//	│   ├── DeclStmt, AssignStmt, ExprStmt - basic
//	│   ├── FnDecl - function declaration
//	│   ├── IfStmt, LoopStmt, WhileStmt - control flow
//	│   ├── BreakStmt, ReturnStmt - jumps
//	│   └── BlockStmt - compound
//	├── ElsePart (interface) - ElseBlock, ElseIf
//	├── CallKind (interface) - FieldCall, FnCall
//	└── Program - top-level statement list
//
// Nodes are built bottom-up by the parser and never mutated afterwards.
package ast

import "github.com/kolkov/scriptlang/internal/token"

// Node is the interface implemented by all AST nodes.
type Node interface {
	// Span returns the source range the node was parsed from.
	Span() token.Span

	// Pos returns the byte offset of the first character of the node.
	Pos() int

	// End returns the byte offset immediately after the node.
	End() int
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	exprNode() // marker method to prevent external implementations
}

// Stmt is the interface for all statement nodes.
type Stmt interface {
	Node
	stmtNode() // marker method to prevent external implementations
}

// Literal is the interface for literal expressions.
type Literal interface {
	Expr
	literalNode()
}

// ElsePart is the optional tail of an if statement: either a plain
// else block or a chained else-if.
type ElsePart interface {
	Node
	elsePart()
}

// CallKind distinguishes field access from invocation in a CallExpr.
type CallKind interface {
	Node
	callKind()
}

// BaseExpr provides the span for all expression nodes.
type BaseExpr struct {
	Loc token.Span
}

func (b *BaseExpr) Span() token.Span { return b.Loc }
func (b *BaseExpr) Pos() int         { return b.Loc.Start }
func (b *BaseExpr) End() int         { return b.Loc.End }
func (b *BaseExpr) exprNode()        {}

// BaseLit provides the span for literal nodes.
type BaseLit struct {
	BaseExpr
}

func (b *BaseLit) literalNode() {}

// BaseStmt provides the span for all statement nodes.
type BaseStmt struct {
	Loc token.Span
}

func (b *BaseStmt) Span() token.Span { return b.Loc }
func (b *BaseStmt) Pos() int         { return b.Loc.Start }
func (b *BaseStmt) End() int         { return b.Loc.End }
func (b *BaseStmt) stmtNode()        {}

// BasePart provides the span for else parts and call kinds.
type BasePart struct {
	Loc token.Span
}

func (b *BasePart) Span() token.Span { return b.Loc }
func (b *BasePart) Pos() int         { return b.Loc.Start }
func (b *BasePart) End() int         { return b.Loc.End }

// -----------------------------------------------------------------------------
// Constructor helpers
// -----------------------------------------------------------------------------

// MakeBaseExpr creates a BaseExpr with the given span.
func MakeBaseExpr(span token.Span) BaseExpr {
	return BaseExpr{Loc: span}
}

// MakeBaseLit creates a BaseLit with the given span.
func MakeBaseLit(span token.Span) BaseLit {
	return BaseLit{BaseExpr{Loc: span}}
}

// MakeBaseStmt creates a BaseStmt with the given span.
func MakeBaseStmt(span token.Span) BaseStmt {
	return BaseStmt{Loc: span}
}

// MakeBasePart creates a BasePart with the given span.
func MakeBasePart(span token.Span) BasePart {
	return BasePart{Loc: span}
}
