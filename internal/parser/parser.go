package parser

import (
	"slices"
	"strconv"

	"github.com/kolkov/ptlang/internal/ast"
	"github.com/kolkov/ptlang/internal/lexer"
	"github.com/kolkov/ptlang/internal/token"
)

// Operators per precedence level, loosest first. Relational '<' and '>'
// share a level with a bare '=' and sit below the equality level, which
// also takes '>=' and '<='.
var (
	equalityOps       = []string{"==", "!=", ">=", "<="}
	relationalOps     = []string{"<", ">", "="}
	additiveOps       = []string{"+", "-"}
	multiplicativeOps = []string{"*", "/", "%"}
)

// Parser is a recursive descent parser for pt programs.
// It pulls tokens from the lexer on demand and never looks further ahead
// than the current and next token. Parsing stops at the first error.
type Parser struct {
	lexer    *lexer.Lexer // Token source
	c        cursor       // Current and next token
	filename string       // Source file name (optional)
}

// Parse parses a pt program from source code.
// Returns the AST or the first lexical or syntax error.
func Parse(src string) (*ast.Program, error) {
	return ParseFile("", src)
}

// ParseFile parses a pt program whose positions carry filename.
func ParseFile(filename, src string) (*ast.Program, error) {
	p, err := newParser(filename, src)
	if err != nil {
		return nil, err
	}
	return p.parseProgram()
}

// ParseExpr parses a single expression (useful for testing).
// The whole input must be consumed.
func ParseExpr(src string) (ast.Expr, error) {
	p, err := newParser("", src)
	if err != nil {
		return nil, err
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.c.hasCur {
		return nil, errorf(UnexpectedEOF, p.c.pos(), p.c.text(),
			"unexpected token %s. expected EOF", p.c.text())
	}
	return expr, nil
}

func newParser(filename, src string) (*Parser, error) {
	p := &Parser{
		lexer:    lexer.NewFile(filename, src),
		filename: filename,
	}
	// Fill both lookahead slots.
	for range 2 {
		if err := p.next(); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// -----------------------------------------------------------------------------
// Token handling
// -----------------------------------------------------------------------------

// next consumes the current token and pulls one more from the lexer.
func (p *Parser) next() error {
	tok, ok, err := p.lexer.Next()
	if err != nil {
		return err
	}
	p.c = p.c.advance(tok, ok)
	return nil
}

// accept checks that the current token's text is text and advances.
func (p *Parser) accept(text string) error {
	if !p.c.is(text) {
		return expectedError(p.c.pos(), text, p.c.text())
	}
	return p.next()
}

// ident builds an identifier node from the current token and advances.
// The current token must be an IDENTIFIER.
func (p *Parser) ident() (*ast.Ident, error) {
	if !p.c.isKind(token.IDENTIFIER) {
		return nil, expectedError(p.c.pos(), "identifier", p.c.text())
	}
	id := &ast.Ident{
		BaseExpr: ast.MakeBaseExpr(p.c.cur.Pos),
		Name:     p.c.cur.Text,
	}
	return id, p.next()
}

// -----------------------------------------------------------------------------
// Program and block parsing
// -----------------------------------------------------------------------------

// parseProgram parses top-level items until the input is exhausted.
func (p *Parser) parseProgram() (*ast.Program, error) {
	prog := &ast.Program{
		Filename: p.filename,
		StartPos: p.c.pos(),
	}

	for p.c.hasCur {
		var item ast.Stmt
		var err error

		switch {
		case token.IsTypeTag(p.c.cur.Text):
			item, err = p.parseFuncDecl()
		case p.c.is("if"):
			item, err = p.parseIfStmt()
		case p.c.is("{"):
			item, err = p.parseBlock()
		default:
			item, err = p.parseSentence()
		}

		if err != nil {
			return nil, err
		}
		if item != nil {
			prog.Items = append(prog.Items, item)
		}
	}

	return prog, nil
}

// parseBlock parses { stmt* }. Stray semicolons are skipped and a '{' in
// statement position opens a nested block.
func (p *Parser) parseBlock() (*ast.Block, error) {
	block := &ast.Block{BaseStmt: ast.MakeBaseStmt(p.c.pos())}
	if err := p.accept("{"); err != nil {
		return nil, err
	}

	for p.c.hasCur && !p.c.is("}") {
		var stmt ast.Stmt
		var err error

		switch {
		case p.c.is(";"):
			err = p.next()
		case p.c.is("{"):
			stmt, err = p.parseBlock()
		default:
			stmt, err = p.parseSentence()
		}

		if err != nil {
			return nil, err
		}
		if stmt != nil {
			block.Stmts = append(block.Stmts, stmt)
		}
	}

	if err := p.accept("}"); err != nil {
		return nil, err
	}
	return block, nil
}

// -----------------------------------------------------------------------------
// Statement parsing
// -----------------------------------------------------------------------------

// parseSentence parses one statement. It returns a nil statement without
// consuming anything when the current token opens a block, and at end of
// input; callers skip nil statements.
func (p *Parser) parseSentence() (ast.Stmt, error) {
	for {
		if !p.c.hasCur || p.c.is("{") {
			return nil, nil
		}

		switch {
		case p.c.isKind(token.KEYWORD):
			return p.parseKeywordStmt()
		case p.c.isKind(token.IDENTIFIER):
			return p.parseIdentStmt()
		case p.c.is(";"):
			if err := p.next(); err != nil {
				return nil, err
			}
		default:
			return nil, errorf(ExpectedStatement, p.c.pos(), p.c.text(),
				"expected identifier for sentence but got %s %s", p.c.cur.Kind, p.c.text())
		}
	}
}

// parseKeywordStmt dispatches on a leading keyword. Keywords other than
// return and if are taken as the type tag of a function declaration.
func (p *Parser) parseKeywordStmt() (ast.Stmt, error) {
	switch p.c.cur.Text {
	case "return":
		return p.parseReturnStmt()
	case "if":
		return p.parseIfStmt()
	default:
		return p.parseFuncDecl()
	}
}

// parseIdentStmt parses a statement that starts with an identifier:
// an assignment, a bare expression or a function call.
func (p *Parser) parseIdentStmt() (ast.Stmt, error) {
	switch {
	case p.c.nextIsKind(token.ASSIGN):
		target, err := p.ident()
		if err != nil {
			return nil, err
		}
		return p.parseAssignment(target)

	case p.c.nextIsKind(token.OPERATION):
		// The identifier is the leftmost operand of the expression.
		return p.parseExpr()

	case p.c.nextIs("("):
		return p.parseCall()

	default:
		return nil, errorf(UnexpectedTokenAfterIdentifier, p.c.nextPos(), p.c.nextText(),
			"unexpected token %s after identifier", p.c.nextText())
	}
}

// parseAssignment parses "= value" after the target identifier.
// The value is a function call when the token after '=' is followed by '('.
func (p *Parser) parseAssignment(target *ast.Ident) (*ast.AssignStmt, error) {
	if !p.c.isKind(token.ASSIGN) {
		return nil, expectedError(p.c.pos(), "=", p.c.text())
	}
	if err := p.next(); err != nil {
		return nil, err
	}

	var value ast.Expr
	var err error
	if p.c.nextIs("(") {
		value, err = p.parseCall()
	} else {
		value, err = p.parseExpr()
	}
	if err != nil {
		return nil, err
	}

	return &ast.AssignStmt{
		BaseStmt: ast.MakeBaseStmt(target.Pos()),
		Target:   target,
		Value:    value,
	}, nil
}

// parseIfStmt parses if ( cond ) block [ else block ].
func (p *Parser) parseIfStmt() (*ast.IfStmt, error) {
	stmt := &ast.IfStmt{BaseStmt: ast.MakeBaseStmt(p.c.pos())}

	if err := p.accept("if"); err != nil {
		return nil, err
	}
	if err := p.accept("("); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.accept(")"); err != nil {
		return nil, err
	}
	stmt.Cond = cond

	if stmt.Then, err = p.parseBlock(); err != nil {
		return nil, err
	}

	if p.c.is("else") {
		if err := p.next(); err != nil {
			return nil, err
		}
		if stmt.Else, err = p.parseBlock(); err != nil {
			return nil, err
		}
	}
	return stmt, nil
}

// parseFuncDecl parses type name ( params ) block. The type tag is taken
// verbatim from the current token.
func (p *Parser) parseFuncDecl() (*ast.FuncDecl, error) {
	decl := &ast.FuncDecl{
		BaseStmt: ast.MakeBaseStmt(p.c.pos()),
		Type:     p.c.cur.Text,
	}
	if err := p.next(); err != nil {
		return nil, err
	}

	var err error
	if decl.Name, err = p.ident(); err != nil {
		return nil, err
	}
	if err := p.accept("("); err != nil {
		return nil, err
	}

	if !p.c.is(")") {
		for {
			param, err := p.ident()
			if err != nil {
				return nil, err
			}
			decl.Params = append(decl.Params, param)
			if !p.c.is(",") {
				break
			}
			if err := p.next(); err != nil {
				return nil, err
			}
		}
	}

	if err := p.accept(")"); err != nil {
		return nil, err
	}
	if decl.Body, err = p.parseBlock(); err != nil {
		return nil, err
	}
	return decl, nil
}

// parseReturnStmt parses return expr ;.
func (p *Parser) parseReturnStmt() (*ast.ReturnStmt, error) {
	stmt := &ast.ReturnStmt{BaseStmt: ast.MakeBaseStmt(p.c.pos())}

	if err := p.accept("return"); err != nil {
		return nil, err
	}
	result, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.accept(";"); err != nil {
		return nil, err
	}
	stmt.Result = result
	return stmt, nil
}

// parseCall parses name ( [expr {, expr}] ).
func (p *Parser) parseCall() (*ast.CallExpr, error) {
	callee, err := p.ident()
	if err != nil {
		return nil, err
	}
	call := &ast.CallExpr{
		BaseExpr: ast.MakeBaseExpr(callee.Pos()),
		Func:     callee,
	}
	if err := p.accept("("); err != nil {
		return nil, err
	}

	if !p.c.is(")") {
		for {
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			call.Args = append(call.Args, arg)
			if !p.c.is(",") {
				break
			}
			if err := p.next(); err != nil {
				return nil, err
			}
		}
	}

	if err := p.accept(")"); err != nil {
		return nil, err
	}
	return call, nil
}

// -----------------------------------------------------------------------------
// Expression parsing
// -----------------------------------------------------------------------------

// parseExpr parses a full expression.
//
//	expr     := equality
//	equality := relational (("==" | "!=" | ">=" | "<=") relational)*
//	relational := additive (("<" | ">" | "=") additive)*
//	additive := multiplicative (("+" | "-") multiplicative)*
//	multiplicative := primary (("*" | "/" | "%") primary)*
func (p *Parser) parseExpr() (ast.Expr, error) {
	return p.parseEquality()
}

func (p *Parser) parseEquality() (ast.Expr, error) {
	return p.parseBinary(equalityOps, p.parseRelational)
}

func (p *Parser) parseRelational() (ast.Expr, error) {
	return p.parseBinary(relationalOps, p.parseAdditive)
}

func (p *Parser) parseAdditive() (ast.Expr, error) {
	return p.parseBinary(additiveOps, p.parseMultiplicative)
}

func (p *Parser) parseMultiplicative() (ast.Expr, error) {
	return p.parseBinary(multiplicativeOps, p.parsePrimary)
}

// parseBinary parses a left-associative chain of operand (op operand)*.
func (p *Parser) parseBinary(ops []string, operand func() (ast.Expr, error)) (ast.Expr, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}

	for p.c.hasCur && slices.Contains(ops, p.c.cur.Text) {
		op := p.c.cur.Text
		if err := p.next(); err != nil {
			return nil, err
		}
		right, err := operand()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{
			BaseExpr: ast.MakeBaseExpr(left.Pos()),
			Left:     left,
			Op:       op,
			Right:    right,
		}
	}
	return left, nil
}

// parsePrimary parses a parenthesized expression or a single-token operand.
// A token that is neither an integer nor an identifier becomes a string
// literal carrying its raw text.
func (p *Parser) parsePrimary() (ast.Expr, error) {
	if !p.c.hasCur {
		return nil, expectedError(token.NoPos, "expression", nullText)
	}

	if p.c.is("(") {
		if err := p.next(); err != nil {
			return nil, err
		}
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.accept(")"); err != nil {
			return nil, err
		}
		return expr, nil
	}

	tok := p.c.cur
	if err := p.next(); err != nil {
		return nil, err
	}

	switch {
	case lexer.IsIntLiteral(tok.Text):
		value, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			return nil, errorf(SyntaxError, tok.Pos, tok.Text, "integer literal %s out of range", tok.Text)
		}
		return &ast.IntLit{BaseExpr: ast.MakeBaseExpr(tok.Pos), Value: value}, nil

	case tok.Kind == token.IDENTIFIER:
		return &ast.Ident{BaseExpr: ast.MakeBaseExpr(tok.Pos), Name: tok.Text}, nil

	default:
		return &ast.StrLit{BaseExpr: ast.MakeBaseExpr(tok.Pos), Value: tok.Text}, nil
	}
}
