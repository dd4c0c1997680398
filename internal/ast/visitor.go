package ast

// Visitor defines the generic visitor pattern for AST traversal.
// Type parameter T is the return type of visit methods.
//
// Example usage for counting nodes:
//
//	type counter struct{ n int }
//	func (c *counter) VisitIdent(*Ident) int { return 1 }
//	// ... other methods
type Visitor[T any] interface {
	// Program-level
	VisitProgram(*Program) T

	// Expressions - Literals
	VisitStrLit(*StrLit) T
	VisitNumLit(*NumLit) T
	VisitArrayLit(*ArrayLit) T
	VisitObjectLit(*ObjectLit) T
	VisitBoolLit(*BoolLit) T
	VisitNullLit(*NullLit) T

	// Expressions - References and operations
	VisitIdent(*Ident) T
	VisitUnaryExpr(*UnaryExpr) T
	VisitBinaryExpr(*BinaryExpr) T

	// Expressions - Calls
	VisitCallExpr(*CallExpr) T
	VisitFieldCall(*FieldCall) T
	VisitFnCall(*FnCall) T

	// Statements
	VisitDeclStmt(*DeclStmt) T
	VisitAssignStmt(*AssignStmt) T
	VisitExprStmt(*ExprStmt) T
	VisitBlockStmt(*BlockStmt) T
	VisitFnDecl(*FnDecl) T
	VisitIfStmt(*IfStmt) T
	VisitElseBlock(*ElseBlock) T
	VisitElseIf(*ElseIf) T
	VisitLoopStmt(*LoopStmt) T
	VisitWhileStmt(*WhileStmt) T
	VisitBreakStmt(*BreakStmt) T
	VisitReturnStmt(*ReturnStmt) T
}

// Walk traverses an AST in depth-first order.
// For each node, it calls fn(node). If fn returns false,
// the children of that node are not visited.
//
// Example: Count all identifiers
//
//	count := 0
//	ast.Walk(program, func(n ast.Node) bool {
//	    if _, ok := n.(*ast.Ident); ok {
//	        count++
//	    }
//	    return true // continue traversal
//	})
func Walk(node Node, fn func(Node) bool) {
	Inspect(node, func(n, _ Node) bool { return fn(n) })
}

// Inspect traverses an AST with parent tracking.
// For each node, it calls fn(node, parent). The parent is nil for the root node.
// If fn returns false, the children of that node are not visited.
func Inspect(node Node, fn func(node, parent Node) bool) {
	inspect(node, nil, fn)
}

func inspect(node, parent Node, fn func(node, parent Node) bool) {
	if isNil(node) || !fn(node, parent) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, s := range n.Stmts {
			inspect(s, n, fn)
		}

	case *StrLit, *NumLit, *ObjectLit, *BoolLit, *NullLit, *Ident:
		// no children

	case *ArrayLit:
		for _, e := range n.Elems {
			inspect(e, n, fn)
		}

	case *UnaryExpr:
		inspect(n.Expr, n, fn)

	case *BinaryExpr:
		inspect(n.Left, n, fn)
		inspect(n.Right, n, fn)

	case *CallExpr:
		inspect(n.Callee, n, fn)
		inspect(n.Kind, n, fn)

	case *FieldCall:
		inspect(n.Field, n, fn)

	case *FnCall:
		for _, arg := range n.Args {
			inspect(arg, n, fn)
		}

	case *DeclStmt:
		inspect(n.Name, n, fn)
		inspect(n.Init, n, fn)

	case *AssignStmt:
		inspect(n.Left, n, fn)
		inspect(n.Right, n, fn)

	case *ExprStmt:
		inspect(n.Expr, n, fn)

	case *BlockStmt:
		for _, s := range n.Stmts {
			inspect(s, n, fn)
		}

	case *FnDecl:
		inspect(n.Name, n, fn)
		for _, p := range n.Params {
			inspect(p, n, fn)
		}
		inspect(n.Body, n, fn)

	case *IfStmt:
		inspect(n.Cond, n, fn)
		inspect(n.Body, n, fn)
		inspect(n.Else, n, fn)

	case *ElseBlock:
		inspect(n.Body, n, fn)

	case *ElseIf:
		inspect(n.If, n, fn)

	case *LoopStmt:
		inspect(n.Body, n, fn)

	case *WhileStmt:
		inspect(n.Cond, n, fn)
		inspect(n.Body, n, fn)

	case *BreakStmt:
		// no children

	case *ReturnStmt:
		inspect(n.Value, n, fn)
	}
}

// isNil reports whether node is nil or a typed nil pointer, so optional
// children such as IfStmt.Else can be passed without checks.
func isNil(node Node) bool {
	switch n := node.(type) {
	case nil:
		return true
	case *Ident:
		return n == nil
	case *BlockStmt:
		return n == nil
	case *IfStmt:
		return n == nil
	}
	return false
}

// WalkFunc is a convenience type for walk callbacks.
type WalkFunc func(Node) bool

// InspectFunc is a convenience type for inspect callbacks.
type InspectFunc func(node, parent Node) bool

// Accept dispatches to the appropriate visitor method based on node type.
// This implements the double-dispatch pattern for the visitor.
//
// Example:
//
//	result := ast.Accept[int](node, myVisitor)
func Accept[T any](node Node, v Visitor[T]) T {
	switch n := node.(type) {
	case *Program:
		return v.VisitProgram(n)

	case *StrLit:
		return v.VisitStrLit(n)
	case *NumLit:
		return v.VisitNumLit(n)
	case *ArrayLit:
		return v.VisitArrayLit(n)
	case *ObjectLit:
		return v.VisitObjectLit(n)
	case *BoolLit:
		return v.VisitBoolLit(n)
	case *NullLit:
		return v.VisitNullLit(n)

	case *Ident:
		return v.VisitIdent(n)
	case *UnaryExpr:
		return v.VisitUnaryExpr(n)
	case *BinaryExpr:
		return v.VisitBinaryExpr(n)

	case *CallExpr:
		return v.VisitCallExpr(n)
	case *FieldCall:
		return v.VisitFieldCall(n)
	case *FnCall:
		return v.VisitFnCall(n)

	case *DeclStmt:
		return v.VisitDeclStmt(n)
	case *AssignStmt:
		return v.VisitAssignStmt(n)
	case *ExprStmt:
		return v.VisitExprStmt(n)
	case *BlockStmt:
		return v.VisitBlockStmt(n)
	case *FnDecl:
		return v.VisitFnDecl(n)
	case *IfStmt:
		return v.VisitIfStmt(n)
	case *ElseBlock:
		return v.VisitElseBlock(n)
	case *ElseIf:
		return v.VisitElseIf(n)
	case *LoopStmt:
		return v.VisitLoopStmt(n)
	case *WhileStmt:
		return v.VisitWhileStmt(n)
	case *BreakStmt:
		return v.VisitBreakStmt(n)
	case *ReturnStmt:
		return v.VisitReturnStmt(n)

	default:
		var zero T
		return zero
	}
}
