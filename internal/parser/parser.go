package parser

import (
	"github.com/kolkov/scriptlang/internal/ast"
	"github.com/kolkov/scriptlang/internal/lexer"
	"github.com/kolkov/scriptlang/internal/token"
)

// Parser is a recursive descent parser for scriptlang programs.
// It works over a materialized token buffer and stops at the first error.
//
// Every grammar production is exposed as a method so that callers can
// parse a fragment (an if statement, a single precedence level) directly.
// Only Program requires the whole input to be consumed.
type Parser struct {
	toks []lexer.Token // Token buffer, without EOF
	pos  int           // Index of the current token
	eof  lexer.Token   // Returned once the buffer is exhausted
	last lexer.Token   // Most recently consumed token

	// Parsing state
	fnDepth   int // nesting depth of function bodies (for return validation)
	loopDepth int // nesting depth of loop bodies (for break validation)
}

// New creates a parser over tokens. The slice may end with an EOF token;
// anything after the first EOF is ignored.
func New(tokens []lexer.Token) *Parser {
	p := &Parser{toks: tokens}
	for i, tok := range tokens {
		if tok.Type == token.EOF {
			p.toks = tokens[:i]
			p.eof = tok
			return p
		}
	}

	// Synthesize EOF just past the last token.
	p.eof = lexer.Token{Type: token.EOF, Span: token.MakeSpan(0, 0)}
	if n := len(tokens); n > 0 {
		end := tokens[n-1].Span
		if end.IsDummy() {
			p.eof.Span = token.DummySpan
		} else {
			p.eof.Span = token.MakeSpan(end.End, end.End)
		}
	}
	return p
}

// Parse lexes and parses a scriptlang program from source code.
// Lexical errors are returned unchanged as *lexer.Error.
func Parse(src string) (*ast.Program, error) {
	toks, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	return New(toks).Program()
}

// ParseTokens parses a program from an already lexed token sequence.
func ParseTokens(tokens []lexer.Token) (*ast.Program, error) {
	return New(tokens).Program()
}

// ParseExpr parses a single expression that must span the whole source
// (useful for testing).
func ParseExpr(src string) (ast.Expr, error) {
	toks, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	p := New(toks)
	expr, err := p.Expression()
	if err != nil {
		return nil, err
	}
	if !p.AtEOF() {
		return nil, expectedError("end of input", p.peek())
	}
	return expr, nil
}

// AtEOF reports whether all tokens have been consumed.
func (p *Parser) AtEOF() bool {
	return p.pos >= len(p.toks)
}

// -----------------------------------------------------------------------------
// Token handling
// -----------------------------------------------------------------------------

// peek returns the current token without consuming it.
func (p *Parser) peek() lexer.Token {
	if p.pos < len(p.toks) {
		return p.toks[p.pos]
	}
	return p.eof
}

// next consumes and returns the current token.
func (p *Parser) next() lexer.Token {
	tok := p.peek()
	if p.pos < len(p.toks) {
		p.pos++
		p.last = tok
	}
	return tok
}

// match returns true if the current token matches any of the given types.
func (p *Parser) match(types ...token.Token) bool {
	cur := p.peek().Type
	for _, t := range types {
		if cur == t {
			return true
		}
	}
	return false
}

// expect consumes the current token if it is of type t.
func (p *Parser) expect(t token.Token) (lexer.Token, error) {
	if !p.match(t) {
		return lexer.Token{}, expectedError(describeType(t), p.peek())
	}
	return p.next(), nil
}

// span returns the span from start to the end of the last consumed token.
func (p *Parser) span(start token.Span) token.Span {
	return start.To(p.last.Span)
}

// ident parses an identifier.
func (p *Parser) ident() (*ast.Ident, error) {
	tok, err := p.expect(token.IDENT)
	if err != nil {
		return nil, err
	}
	return &ast.Ident{BaseExpr: ast.MakeBaseExpr(tok.Span), Name: tok.Value}, nil
}

// commaList parses comma-separated elements up to and including the
// closing token. The opening token must already be consumed. A trailing
// comma before close is allowed; an empty element is not.
func (p *Parser) commaList(close token.Token, elem func() error) error {
	for !p.match(close) {
		if err := elem(); err != nil {
			return err
		}
		if !p.match(token.COMMA) {
			break
		}
		p.next()
	}
	_, err := p.expect(close)
	return err
}

// -----------------------------------------------------------------------------
// Program parsing
// -----------------------------------------------------------------------------

// Program parses a complete program. All tokens must be consumed.
func (p *Parser) Program() (*ast.Program, error) {
	start := p.peek().Span
	var stmts []ast.Stmt

	for !p.AtEOF() {
		stmt, err := p.Statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}

	prog := &ast.Program{Stmts: stmts, Loc: token.MakeSpan(0, 0)}
	if len(stmts) > 0 {
		prog.Loc = p.span(start)
	}
	return prog, nil
}

// Block parses a block statement { ... }.
func (p *Parser) Block() (*ast.BlockStmt, error) {
	open, err := p.expect(token.LBRACE)
	if err != nil {
		return nil, err
	}

	var stmts []ast.Stmt
	for !p.match(token.RBRACE, token.EOF) {
		stmt, err := p.Statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}

	if _, err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}
	return &ast.BlockStmt{
		BaseStmt: ast.MakeBaseStmt(p.span(open.Span)),
		Stmts:    stmts,
	}, nil
}

// fnBody parses a function body with return enabled.
func (p *Parser) fnBody() (*ast.BlockStmt, error) {
	p.fnDepth++
	defer func() { p.fnDepth-- }()
	return p.Block()
}

// loopBody parses a loop body with break enabled.
func (p *Parser) loopBody() (*ast.BlockStmt, error) {
	p.loopDepth++
	defer func() { p.loopDepth-- }()
	return p.Block()
}

// -----------------------------------------------------------------------------
// Statement parsing
// -----------------------------------------------------------------------------

// Statement parses any statement, dispatching on the current token.
func (p *Parser) Statement() (ast.Stmt, error) {
	var (
		stmt ast.Stmt
		err  error
	)

	switch p.peek().Type {
	case token.LET:
		stmt, err = p.declaration()
	case token.FN:
		stmt, err = p.fnDecl()
	case token.IF:
		stmt, err = p.IfStmt()
	case token.LOOP:
		stmt, err = p.LoopStmt()
	case token.WHILE:
		stmt, err = p.WhileStmt()
	case token.BREAK:
		stmt, err = p.breakStmt()
	case token.RETURN:
		stmt, err = p.returnStmt()
	case token.LBRACE:
		stmt, err = p.Block()
	default:
		stmt, err = p.simpleStmt()
	}

	if err != nil {
		return nil, err
	}
	return stmt, nil
}

// declaration parses: let NAME = expr ;
func (p *Parser) declaration() (*ast.DeclStmt, error) {
	start := p.next().Span // consume 'let'

	name, err := p.ident()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.ASSIGN); err != nil {
		return nil, err
	}
	init, err := p.Expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}

	return &ast.DeclStmt{
		BaseStmt: ast.MakeBaseStmt(p.span(start)),
		Name:     name,
		Init:     init,
	}, nil
}

// fnDecl parses: fn NAME ( params ) block
func (p *Parser) fnDecl() (*ast.FnDecl, error) {
	start := p.next().Span // consume 'fn'

	name, err := p.ident()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}

	var params []*ast.Ident
	err = p.commaList(token.RPAREN, func() error {
		param, err := p.ident()
		if err != nil {
			return err
		}
		params = append(params, param)
		return nil
	})
	if err != nil {
		return nil, err
	}

	body, err := p.fnBody()
	if err != nil {
		return nil, err
	}

	return &ast.FnDecl{
		BaseStmt: ast.MakeBaseStmt(p.span(start)),
		Name:     name,
		Params:   params,
		Body:     body,
	}, nil
}

// IfStmt parses an if statement with an optional else or else-if tail.
func (p *Parser) IfStmt() (*ast.IfStmt, error) {
	start, err := p.expect(token.IF)
	if err != nil {
		return nil, err
	}

	cond, err := p.Expression()
	if err != nil {
		return nil, err
	}
	body, err := p.Block()
	if err != nil {
		return nil, err
	}

	var elsePart ast.ElsePart
	if p.match(token.ELSE) {
		elseStart := p.next().Span
		if p.match(token.IF) {
			nested, err := p.IfStmt()
			if err != nil {
				return nil, err
			}
			elsePart = &ast.ElseIf{BasePart: ast.MakeBasePart(p.span(elseStart)), If: nested}
		} else {
			block, err := p.Block()
			if err != nil {
				return nil, err
			}
			elsePart = &ast.ElseBlock{BasePart: ast.MakeBasePart(p.span(elseStart)), Body: block}
		}
	}

	return &ast.IfStmt{
		BaseStmt: ast.MakeBaseStmt(p.span(start.Span)),
		Cond:     cond,
		Body:     body,
		Else:     elsePart,
	}, nil
}

// LoopStmt parses an unconditional loop.
func (p *Parser) LoopStmt() (*ast.LoopStmt, error) {
	start, err := p.expect(token.LOOP)
	if err != nil {
		return nil, err
	}
	body, err := p.loopBody()
	if err != nil {
		return nil, err
	}
	return &ast.LoopStmt{
		BaseStmt: ast.MakeBaseStmt(p.span(start.Span)),
		Body:     body,
	}, nil
}

// WhileStmt parses a while statement.
func (p *Parser) WhileStmt() (*ast.WhileStmt, error) {
	start, err := p.expect(token.WHILE)
	if err != nil {
		return nil, err
	}
	cond, err := p.Expression()
	if err != nil {
		return nil, err
	}
	body, err := p.loopBody()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStmt{
		BaseStmt: ast.MakeBaseStmt(p.span(start.Span)),
		Cond:     cond,
		Body:     body,
	}, nil
}

func (p *Parser) breakStmt() (*ast.BreakStmt, error) {
	tok := p.next()
	if p.loopDepth == 0 {
		return nil, errorf(ErrBreakOutsideLoop, tok, "break must be inside a loop")
	}
	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.BreakStmt{BaseStmt: ast.MakeBaseStmt(p.span(tok.Span))}, nil
}

func (p *Parser) returnStmt() (*ast.ReturnStmt, error) {
	tok := p.next()
	if p.fnDepth == 0 {
		return nil, errorf(ErrReturnOutsideFunction, tok, "return must be inside a function")
	}

	var value ast.Expr
	if !p.match(token.SEMICOLON) {
		var err error
		if value, err = p.Expression(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}

	return &ast.ReturnStmt{
		BaseStmt: ast.MakeBaseStmt(p.span(tok.Span)),
		Value:    value,
	}, nil
}

// simpleStmt parses an assignment or an expression statement.
// The assignment target is any expression.
func (p *Parser) simpleStmt() (ast.Stmt, error) {
	start := p.peek().Span

	left, err := p.Expression()
	if err != nil {
		return nil, err
	}

	if p.match(token.ASSIGN) {
		p.next()
		right, err := p.Expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.SEMICOLON); err != nil {
			return nil, err
		}
		return &ast.AssignStmt{
			BaseStmt: ast.MakeBaseStmt(p.span(start)),
			Left:     left,
			Right:    right,
		}, nil
	}

	if _, err := p.expect(token.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.ExprStmt{
		BaseStmt: ast.MakeBaseStmt(p.span(start)),
		Expr:     left,
	}, nil
}

// -----------------------------------------------------------------------------
// Expression parsing (lowest to highest precedence)
// -----------------------------------------------------------------------------

// Expression parses a full expression.
func (p *Parser) Expression() (ast.Expr, error) {
	return p.LogicalOr()
}

// LogicalOr parses || expressions.
func (p *Parser) LogicalOr() (ast.Expr, error) {
	return p.binaryLeft(p.LogicalAnd, token.OR)
}

// LogicalAnd parses && expressions.
func (p *Parser) LogicalAnd() (ast.Expr, error) {
	return p.binaryLeft(p.Equality, token.AND)
}

// Equality parses == and != expressions.
func (p *Parser) Equality() (ast.Expr, error) {
	return p.binaryLeft(p.Comparison, token.EQUALS, token.NOT_EQUALS)
}

// Comparison parses >, >=, < and <= expressions.
func (p *Parser) Comparison() (ast.Expr, error) {
	return p.binaryLeft(p.Term, token.GREATER, token.GTE, token.LESS, token.LTE)
}

// Term parses + and - expressions.
func (p *Parser) Term() (ast.Expr, error) {
	return p.binaryLeft(p.Factor, token.ADD, token.SUB)
}

// Factor parses *, / and % expressions.
func (p *Parser) Factor() (ast.Expr, error) {
	return p.binaryLeft(p.Unary, token.MUL, token.DIV, token.MOD)
}

// Unary parses prefix ! and - (right-recursive).
func (p *Parser) Unary() (ast.Expr, error) {
	op, ok := ast.UnaryOpFor(p.peek().Type)
	if !ok {
		return p.Primary()
	}

	start := p.next().Span
	operand, err := p.Unary()
	if err != nil {
		return nil, err
	}
	return &ast.UnaryExpr{
		BaseExpr: ast.MakeBaseExpr(p.span(start)),
		Op:       op,
		Expr:     operand,
	}, nil
}

// Primary parses an operand followed by any number of postfix suffixes:
// .field for member access and (args) for invocation.
func (p *Parser) Primary() (ast.Expr, error) {
	start := p.peek().Span

	expr, err := p.operand()
	if err != nil {
		return nil, err
	}

	for {
		switch p.peek().Type {
		case token.DOT:
			dot := p.next().Span
			field, err := p.ident()
			if err != nil {
				return nil, err
			}
			expr = &ast.CallExpr{
				BaseExpr: ast.MakeBaseExpr(p.span(start)),
				Callee:   expr,
				Kind:     &ast.FieldCall{BasePart: ast.MakeBasePart(p.span(dot)), Field: field},
			}

		case token.LPAREN:
			open := p.next().Span
			args, err := p.exprList(token.RPAREN)
			if err != nil {
				return nil, err
			}
			expr = &ast.CallExpr{
				BaseExpr: ast.MakeBaseExpr(p.span(start)),
				Callee:   expr,
				Kind:     &ast.FnCall{BasePart: ast.MakeBasePart(p.span(open)), Args: args},
			}

		default:
			return expr, nil
		}
	}
}

// operand parses an identifier, a literal or a parenthesized expression.
func (p *Parser) operand() (ast.Expr, error) {
	tok := p.peek()
	base := ast.MakeBaseLit(tok.Span)

	switch tok.Type {
	case token.IDENT:
		p.next()
		return &ast.Ident{BaseExpr: ast.MakeBaseExpr(tok.Span), Name: tok.Value}, nil

	case token.NUMBER:
		p.next()
		return &ast.NumLit{BaseLit: base, Value: tok.Num, Raw: tok.Value}, nil

	case token.STRING:
		p.next()
		return &ast.StrLit{BaseLit: base, Value: tok.Value}, nil

	case token.TRUE, token.FALSE:
		p.next()
		return &ast.BoolLit{BaseLit: base, Value: tok.Type == token.TRUE}, nil

	case token.NULL:
		p.next()
		return &ast.NullLit{BaseLit: base}, nil

	case token.LBRACKET:
		p.next()
		elems, err := p.exprList(token.RBRACKET)
		if err != nil {
			return nil, err
		}
		return &ast.ArrayLit{BaseLit: ast.MakeBaseLit(p.span(tok.Span)), Elems: elems}, nil

	case token.LBRACE:
		// Only the empty object literal exists.
		p.next()
		if _, err := p.expect(token.RBRACE); err != nil {
			return nil, err
		}
		return &ast.ObjectLit{BaseLit: ast.MakeBaseLit(p.span(tok.Span))}, nil

	case token.LPAREN:
		// Grouping produces no node.
		p.next()
		expr, err := p.Expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return expr, nil

	default:
		return nil, expectedError("expression", tok)
	}
}

// -----------------------------------------------------------------------------
// Helper functions
// -----------------------------------------------------------------------------

// binaryLeft parses left-associative binary operators.
func (p *Parser) binaryLeft(higher func() (ast.Expr, error), ops ...token.Token) (ast.Expr, error) {
	start := p.peek().Span

	expr, err := higher()
	if err != nil {
		return nil, err
	}

	for p.match(ops...) {
		op, _ := ast.BinaryOpFor(p.next().Type)
		right, err := higher()
		if err != nil {
			return nil, err
		}
		expr = &ast.BinaryExpr{
			BaseExpr: ast.MakeBaseExpr(p.span(start)),
			Left:     expr,
			Op:       op,
			Right:    right,
		}
	}
	return expr, nil
}

// exprList parses comma-separated expressions up to close.
func (p *Parser) exprList(close token.Token) ([]ast.Expr, error) {
	var exprs []ast.Expr
	err := p.commaList(close, func() error {
		expr, err := p.Expression()
		if err != nil {
			return err
		}
		exprs = append(exprs, expr)
		return nil
	})
	return exprs, err
}
