package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Printer writes AST nodes as S-expressions, one top-level statement per
// line. The output is meant for debugging and tests; spans are omitted.
//
//	10 + 20 * 100      =>  (+ 10 (* 20 100))
//	let x = f(1).y;    =>  (let x (. (call f 1) y))
type Printer struct {
	w   io.Writer
	err error
}

// NewPrinter creates a new Printer that writes to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Print writes the S-expression form of node to the writer.
func (p *Printer) Print(node Node) error {
	if prog, ok := node.(*Program); ok {
		for _, s := range prog.Stmts {
			p.printNode(s)
			p.printf("\n")
		}
		return p.err
	}
	p.printNode(node)
	return p.err
}

func (p *Printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) list(head string, nodes ...Node) {
	p.printf("(%s", head)
	for _, n := range nodes {
		p.printf(" ")
		p.printNode(n)
	}
	p.printf(")")
}

func (p *Printer) printNode(node Node) {
	if isNil(node) {
		p.printf("<nil>")
		return
	}

	switch n := node.(type) {
	case *Program:
		p.list("program", stmtNodes(n.Stmts)...)

	// Literals
	case *StrLit:
		p.printf("%s", strconv.Quote(n.Value))
	case *NumLit:
		if n.Raw != "" {
			p.printf("%s", n.Raw)
		} else {
			p.printf("%s", strconv.FormatFloat(n.Value, 'g', -1, 64))
		}
	case *ArrayLit:
		p.list("array", exprNodes(n.Elems)...)
	case *ObjectLit:
		p.printf("(object)")
	case *BoolLit:
		p.printf("%t", n.Value)
	case *NullLit:
		p.printf("null")

	// Expressions
	case *Ident:
		p.printf("%s", n.Name)
	case *UnaryExpr:
		p.list(n.Op.String(), n.Expr)
	case *BinaryExpr:
		p.list(n.Op.String(), n.Left, n.Right)
	case *CallExpr:
		switch k := n.Kind.(type) {
		case *FieldCall:
			p.list(".", n.Callee, k.Field)
		case *FnCall:
			p.list("call", append([]Node{n.Callee}, exprNodes(k.Args)...)...)
		default:
			p.list("call?", n.Callee)
		}
	case *FieldCall:
		p.list(".", n.Field)
	case *FnCall:
		p.list("args", exprNodes(n.Args)...)

	// Statements
	case *DeclStmt:
		p.list("let", n.Name, n.Init)
	case *AssignStmt:
		p.list("=", n.Left, n.Right)
	case *ExprStmt:
		p.printNode(n.Expr)
	case *BlockStmt:
		p.list("block", stmtNodes(n.Stmts)...)
	case *FnDecl:
		p.printf("(fn ")
		p.printNode(n.Name)
		p.printf(" (")
		for i, param := range n.Params {
			if i > 0 {
				p.printf(" ")
			}
			p.printNode(param)
		}
		p.printf(") ")
		p.printNode(n.Body)
		p.printf(")")
	case *IfStmt:
		if n.Else == nil {
			p.list("if", n.Cond, n.Body)
		} else {
			p.list("if", n.Cond, n.Body, n.Else)
		}
	case *ElseBlock:
		p.printNode(n.Body)
	case *ElseIf:
		p.printNode(n.If)
	case *LoopStmt:
		p.list("loop", n.Body)
	case *WhileStmt:
		p.list("while", n.Cond, n.Body)
	case *BreakStmt:
		p.printf("(break)")
	case *ReturnStmt:
		if n.Value == nil {
			p.printf("(return)")
		} else {
			p.list("return", n.Value)
		}

	default:
		p.printf("<%T>", node)
	}
}

func exprNodes(exprs []Expr) []Node {
	nodes := make([]Node, len(exprs))
	for i, e := range exprs {
		nodes[i] = e
	}
	return nodes
}

func stmtNodes(stmts []Stmt) []Node {
	nodes := make([]Node, len(stmts))
	for i, s := range stmts {
		nodes[i] = s
	}
	return nodes
}

// String returns the S-expression form of node. A Program prints one
// statement per line without a trailing newline.
func String(node Node) string {
	var sb strings.Builder
	p := NewPrinter(&sb)
	_ = p.Print(node) // strings.Builder never fails
	return strings.TrimSuffix(sb.String(), "\n")
}
