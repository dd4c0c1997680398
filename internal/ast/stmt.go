package ast

// -----------------------------------------------------------------------------
// Basic statements
// -----------------------------------------------------------------------------

// DeclStmt represents a variable declaration. A declaration always binds
// an initial value.
// Example: let x = 10;
type DeclStmt struct {
	BaseStmt
	Name *Ident // Declared name
	Init Expr   // Initializer
}

// AssignStmt represents an assignment.
// Example: obj.count = obj.count + 1;
//
// Left is any expression; whether it denotes an assignable place is
// left to later passes.
type AssignStmt struct {
	BaseStmt
	Left  Expr // Target
	Right Expr // Value expression
}

// ExprStmt represents an expression used as a statement.
// Example: print("hi");
type ExprStmt struct {
	BaseStmt
	Expr Expr // Expression to evaluate
}

// BlockStmt represents a block of statements.
// Example: { stmt1; stmt2; }
type BlockStmt struct {
	BaseStmt
	Stmts []Stmt // Statements in the block (may be empty)
}

// FnDecl represents a function declaration.
// Example: fn add(a, b) { return a + b; }
type FnDecl struct {
	BaseStmt
	Name   *Ident     // Function name
	Params []*Ident   // Parameters in order
	Body   *BlockStmt // Function body
}

// -----------------------------------------------------------------------------
// Conditional statements
// -----------------------------------------------------------------------------

// IfStmt represents an if statement.
// Examples:
//   - if cond { ... }
//   - if cond { ... } else { ... }
//   - if cond { ... } else if cond2 { ... } else { ... }
type IfStmt struct {
	BaseStmt
	Cond Expr       // Condition expression
	Body *BlockStmt // Then branch
	Else ElsePart   // nil if there is no else
}

// ElseBlock is a terminal else branch.
type ElseBlock struct {
	BasePart
	Body *BlockStmt
}

// ElseIf is an else branch holding a nested if statement.
type ElseIf struct {
	BasePart
	If *IfStmt
}

func (*ElseBlock) elsePart() {}
func (*ElseIf) elsePart()    {}

// -----------------------------------------------------------------------------
// Loop statements
// -----------------------------------------------------------------------------

// LoopStmt represents an unconditional loop.
// Example: loop { ... }
type LoopStmt struct {
	BaseStmt
	Body *BlockStmt
}

// WhileStmt represents a while loop.
// Example: while i < 10 { ... }
type WhileStmt struct {
	BaseStmt
	Cond Expr       // Loop condition
	Body *BlockStmt // Loop body
}

// -----------------------------------------------------------------------------
// Control flow statements
// -----------------------------------------------------------------------------

// BreakStmt represents a break statement.
// Exits the innermost enclosing loop.
type BreakStmt struct {
	BaseStmt
}

// ReturnStmt represents a return statement.
// Example: return x + 1;
type ReturnStmt struct {
	BaseStmt
	Value Expr // Return value (nil for bare return)
}

// -----------------------------------------------------------------------------
// Compile-time checks
// -----------------------------------------------------------------------------

// Ensure all statement types implement Stmt interface.
var (
	_ Stmt = (*DeclStmt)(nil)
	_ Stmt = (*AssignStmt)(nil)
	_ Stmt = (*ExprStmt)(nil)
	_ Stmt = (*BlockStmt)(nil)
	_ Stmt = (*FnDecl)(nil)
	_ Stmt = (*IfStmt)(nil)
	_ Stmt = (*LoopStmt)(nil)
	_ Stmt = (*WhileStmt)(nil)
	_ Stmt = (*BreakStmt)(nil)
	_ Stmt = (*ReturnStmt)(nil)

	_ ElsePart = (*ElseBlock)(nil)
	_ ElsePart = (*ElseIf)(nil)
)
