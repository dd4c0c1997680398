package ast

// Encode converts node into a tree of maps, slices and scalars suitable for
// generic serializers (JSON, YAML). Every node becomes a map with a "type"
// key naming the node and a "span" key holding [start, end].
func Encode(node Node) map[string]any {
	if isNil(node) {
		return nil
	}
	m, _ := Accept[any](node, encoder{}).(map[string]any)
	return m
}

type encoder struct{}

var _ Visitor[any] = encoder{}

func (encoder) node(typ string, n Node, fields ...any) map[string]any {
	span := n.Span()
	m := map[string]any{
		"type": typ,
		"span": []int{span.Start, span.End},
	}
	for i := 0; i+1 < len(fields); i += 2 {
		m[fields[i].(string)] = fields[i+1]
	}
	return m
}

func (e encoder) encode(n Node) any {
	if isNil(n) {
		return nil
	}
	return Accept[any](n, e)
}

func (e encoder) exprs(list []Expr) []any {
	out := make([]any, len(list))
	for i, x := range list {
		out[i] = e.encode(x)
	}
	return out
}

func (e encoder) stmts(list []Stmt) []any {
	out := make([]any, len(list))
	for i, s := range list {
		out[i] = e.encode(s)
	}
	return out
}

func (e encoder) VisitProgram(n *Program) any {
	return e.node("Program", n, "stmts", e.stmts(n.Stmts))
}

func (e encoder) VisitStrLit(n *StrLit) any {
	return e.node("String", n, "value", n.Value)
}

func (e encoder) VisitNumLit(n *NumLit) any {
	return e.node("Number", n, "value", n.Value, "raw", n.Raw)
}

func (e encoder) VisitArrayLit(n *ArrayLit) any {
	return e.node("Array", n, "elems", e.exprs(n.Elems))
}

func (e encoder) VisitObjectLit(n *ObjectLit) any {
	return e.node("Object", n)
}

func (e encoder) VisitBoolLit(n *BoolLit) any {
	return e.node("Boolean", n, "value", n.Value)
}

func (e encoder) VisitNullLit(n *NullLit) any {
	return e.node("Null", n)
}

func (e encoder) VisitIdent(n *Ident) any {
	return e.node("Ident", n, "name", n.Name)
}

func (e encoder) VisitUnaryExpr(n *UnaryExpr) any {
	return e.node("Unary", n, "op", n.Op.Name(), "expr", e.encode(n.Expr))
}

func (e encoder) VisitBinaryExpr(n *BinaryExpr) any {
	return e.node("Binary", n, "op", n.Op.Name(), "left", e.encode(n.Left), "right", e.encode(n.Right))
}

func (e encoder) VisitCallExpr(n *CallExpr) any {
	return e.node("Call", n, "callee", e.encode(n.Callee), "kind", e.encode(n.Kind))
}

func (e encoder) VisitFieldCall(n *FieldCall) any {
	return e.node("Field", n, "field", e.encode(n.Field))
}

func (e encoder) VisitFnCall(n *FnCall) any {
	return e.node("Fn", n, "args", e.exprs(n.Args))
}

func (e encoder) VisitDeclStmt(n *DeclStmt) any {
	return e.node("Declaration", n, "name", e.encode(n.Name), "init", e.encode(n.Init))
}

func (e encoder) VisitAssignStmt(n *AssignStmt) any {
	return e.node("Assignment", n, "left", e.encode(n.Left), "right", e.encode(n.Right))
}

func (e encoder) VisitExprStmt(n *ExprStmt) any {
	return e.node("Expr", n, "expr", e.encode(n.Expr))
}

func (e encoder) VisitBlockStmt(n *BlockStmt) any {
	return e.node("Block", n, "stmts", e.stmts(n.Stmts))
}

func (e encoder) VisitFnDecl(n *FnDecl) any {
	params := make([]any, len(n.Params))
	for i, p := range n.Params {
		params[i] = e.encode(p)
	}
	return e.node("FnDecl", n, "name", e.encode(n.Name), "params", params, "body", e.encode(n.Body))
}

func (e encoder) VisitIfStmt(n *IfStmt) any {
	return e.node("If", n, "cond", e.encode(n.Cond), "body", e.encode(n.Body), "else", e.encode(n.Else))
}

func (e encoder) VisitElseBlock(n *ElseBlock) any {
	return e.node("Else", n, "body", e.encode(n.Body))
}

func (e encoder) VisitElseIf(n *ElseIf) any {
	return e.node("ElseIf", n, "if", e.encode(n.If))
}

func (e encoder) VisitLoopStmt(n *LoopStmt) any {
	return e.node("Loop", n, "body", e.encode(n.Body))
}

func (e encoder) VisitWhileStmt(n *WhileStmt) any {
	return e.node("While", n, "cond", e.encode(n.Cond), "body", e.encode(n.Body))
}

func (e encoder) VisitBreakStmt(n *BreakStmt) any {
	return e.node("Break", n)
}

func (e encoder) VisitReturnStmt(n *ReturnStmt) any {
	return e.node("Return", n, "value", e.encode(n.Value))
}
