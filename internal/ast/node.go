// Package ast defines the abstract syntax tree for pt programs.
//
// Node hierarchy:
//
//	Node (interface)
//	├── Stmt (interface) - items of blocks and programs
//	│   ├── Block - { ... }
//	│   ├── FuncDecl - int add(a, b) { ... }
//	│   ├── AssignStmt - x = expr
//	│   ├── IfStmt - if (cond) { ... } else { ... }
//	│   ├── ReturnStmt - return expr;
//	│   └── Expr (interface) - expressions, also usable as statements
//	│       ├── Ident, IntLit, StrLit
//	│       ├── BinaryExpr
//	│       └── CallExpr
//	└── Program - top-level item list
//
// The set of node types is closed: marker methods are unexported, so only
// this package can add implementations. Consumers dispatch with a type
// switch (see Walk, Fprint and ToMap for the exhaustive form).
//
// Nodes hold plain data extracted from tokens, never the tokens themselves.
// A tree is built once by the parser and not mutated afterwards.
package ast

import "github.com/kolkov/ptlang/internal/token"

// Node is the interface implemented by all AST nodes.
type Node interface {
	// Pos returns the position of the first character belonging to this node.
	Pos() token.Position
}

// Stmt is the interface for nodes that can appear in a Block or Program.
type Stmt interface {
	Node
	stmtNode() // marker method to prevent external implementations
}

// Expr is the interface for expression nodes.
// Every expression may also stand alone as a statement.
type Expr interface {
	Stmt
	exprNode() // marker method to prevent external implementations
}

// BaseStmt provides the position field for statement nodes.
// Embedded in concrete statement types.
type BaseStmt struct {
	StartPos token.Position // Position of first token
}

func (b *BaseStmt) Pos() token.Position { return b.StartPos }
func (b *BaseStmt) stmtNode()           {}

// BaseExpr provides the position field for expression nodes.
// Embedded in concrete expression types.
type BaseExpr struct {
	StartPos token.Position // Position of first token
}

func (b *BaseExpr) Pos() token.Position { return b.StartPos }
func (b *BaseExpr) stmtNode()           {}
func (b *BaseExpr) exprNode()           {}

// -----------------------------------------------------------------------------
// Constructor helpers
// -----------------------------------------------------------------------------

// MakeBaseStmt creates a BaseStmt at the given position.
func MakeBaseStmt(pos token.Position) BaseStmt {
	return BaseStmt{StartPos: pos}
}

// MakeBaseExpr creates a BaseExpr at the given position.
func MakeBaseExpr(pos token.Position) BaseExpr {
	return BaseExpr{StartPos: pos}
}
