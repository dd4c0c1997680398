package ast

import "github.com/kolkov/scriptlang/internal/token"

// -----------------------------------------------------------------------------
// Literals
// -----------------------------------------------------------------------------

// StrLit represents a string literal.
// Example: "hello"
type StrLit struct {
	BaseLit
	Value string // Contents without the quotes
}

// NumLit represents a numeric literal.
// Examples: 42, 3.14
type NumLit struct {
	BaseLit
	Value float64 // Parsed numeric value
	Raw   string  // Source lexeme, printed as written
}

// ArrayLit represents an array literal.
// Example: [1, "two", x]
type ArrayLit struct {
	BaseLit
	Elems []Expr // Element expressions (may be empty)
}

// ObjectLit represents the empty object literal {}.
// Object literals carry no entries yet.
type ObjectLit struct {
	BaseLit
}

// BoolLit represents true or false.
type BoolLit struct {
	BaseLit
	Value bool
}

// NullLit represents null.
type NullLit struct {
	BaseLit
}

// -----------------------------------------------------------------------------
// References
// -----------------------------------------------------------------------------

// Ident represents an identifier.
// Examples: x, count, _tmp
type Ident struct {
	BaseExpr
	Name string // Identifier name
}

// -----------------------------------------------------------------------------
// Operations
// -----------------------------------------------------------------------------

// UnaryOp is a prefix operator.
type UnaryOp uint8

const (
	Not UnaryOp = iota // !x
	Neg                // -x
)

var unaryOps = [...]struct{ sym, name string }{
	Not: {"!", "Not"},
	Neg: {"-", "Neg"},
}

// String returns the operator symbol.
func (op UnaryOp) String() string {
	if int(op) < len(unaryOps) {
		return unaryOps[op].sym
	}
	return "?"
}

// Name returns the operator name, e.g. "Neg".
func (op UnaryOp) Name() string {
	if int(op) < len(unaryOps) {
		return unaryOps[op].name
	}
	return "?"
}

// UnaryOpFor returns the unary operator spelled by tok.
func UnaryOpFor(tok token.Token) (UnaryOp, bool) {
	switch tok {
	case token.NOT:
		return Not, true
	case token.SUB:
		return Neg, true
	}
	return 0, false
}

// BinaryOp is an infix operator.
type BinaryOp uint8

const (
	And BinaryOp = iota
	Or
	Equal
	NotEqual
	Greater
	GreaterEqual
	Less
	LessEqual
	Add
	Sub
	Mul
	Div
	Mod
)

var binaryOps = [...]struct {
	sym  string
	name string
	tok  token.Token
}{
	And:          {"&&", "And", token.AND},
	Or:           {"||", "Or", token.OR},
	Equal:        {"==", "Equal", token.EQUALS},
	NotEqual:     {"!=", "NotEqual", token.NOT_EQUALS},
	Greater:      {">", "Greater", token.GREATER},
	GreaterEqual: {">=", "GreaterEqual", token.GTE},
	Less:         {"<", "Less", token.LESS},
	LessEqual:    {"<=", "LessEqual", token.LTE},
	Add:          {"+", "Add", token.ADD},
	Sub:          {"-", "Sub", token.SUB},
	Mul:          {"*", "Mul", token.MUL},
	Div:          {"/", "Div", token.DIV},
	Mod:          {"%", "Mod", token.MOD},
}

// String returns the operator symbol.
func (op BinaryOp) String() string {
	if int(op) < len(binaryOps) {
		return binaryOps[op].sym
	}
	return "?"
}

// Name returns the operator name, e.g. "Add".
func (op BinaryOp) Name() string {
	if int(op) < len(binaryOps) {
		return binaryOps[op].name
	}
	return "?"
}

// BinaryOpFor returns the binary operator spelled by tok.
func BinaryOpFor(tok token.Token) (BinaryOp, bool) {
	for op, info := range binaryOps {
		if info.tok == tok {
			return BinaryOp(op), true
		}
	}
	return 0, false
}

// UnaryExpr represents a prefix operation.
// Examples: -x, !flag
type UnaryExpr struct {
	BaseExpr
	Op   UnaryOp // Operator
	Expr Expr    // Operand
}

// BinaryExpr represents a binary operation.
// Examples: a + b, x == y, ok && done
type BinaryExpr struct {
	BaseExpr
	Left  Expr     // Left operand
	Op    BinaryOp // Operator
	Right Expr     // Right operand
}

// -----------------------------------------------------------------------------
// Calls
// -----------------------------------------------------------------------------

// CallExpr represents one postfix suffix applied to Callee.
// A chain such as a.b(c) nests: the outer call's Callee is the inner call.
type CallExpr struct {
	BaseExpr
	Callee Expr     // Expression the suffix applies to
	Kind   CallKind // *FieldCall or *FnCall
}

// FieldCall is member access: callee.Field
type FieldCall struct {
	BasePart
	Field *Ident
}

// FnCall is invocation: callee(Args...)
type FnCall struct {
	BasePart
	Args []Expr // Arguments (may be empty)
}

func (*FieldCall) callKind() {}
func (*FnCall) callKind()    {}

// -----------------------------------------------------------------------------
// Compile-time checks
// -----------------------------------------------------------------------------

// Ensure all expression types implement their interfaces.
var (
	_ Literal = (*StrLit)(nil)
	_ Literal = (*NumLit)(nil)
	_ Literal = (*ArrayLit)(nil)
	_ Literal = (*ObjectLit)(nil)
	_ Literal = (*BoolLit)(nil)
	_ Literal = (*NullLit)(nil)
	_ Expr    = (*Ident)(nil)
	_ Expr    = (*UnaryExpr)(nil)
	_ Expr    = (*BinaryExpr)(nil)
	_ Expr    = (*CallExpr)(nil)

	_ CallKind = (*FieldCall)(nil)
	_ CallKind = (*FnCall)(nil)
)
