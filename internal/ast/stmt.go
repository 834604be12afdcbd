package ast

// Block represents a brace-delimited statement list.
// Stmts never contains nil entries.
// Example: { x = 1; print(x); }
type Block struct {
	BaseStmt
	Stmts []Stmt
}

// FuncDecl represents a function declaration.
// Type is the return-type tag exactly as written ("int" or "void" in
// well-formed programs). Params are bare names without types or defaults.
// Example: int add(a, b) { return a + b; }
type FuncDecl struct {
	BaseStmt
	Type   string
	Name   *Ident
	Params []*Ident
	Body   *Block
}

// AssignStmt represents an assignment.
// Value is an expression or a *CallExpr.
// Example: z = add(x, y)
type AssignStmt struct {
	BaseStmt
	Target *Ident
	Value  Expr
}

// IfStmt represents a conditional statement.
// Else is nil when the statement has no else branch.
// Example: if (z > 25) { ... } else { ... }
type IfStmt struct {
	BaseStmt
	Cond Expr
	Then *Block
	Else *Block
}

// HasElse reports whether the statement has an else branch.
func (s *IfStmt) HasElse() bool {
	return s.Else != nil
}

// ReturnStmt represents a return statement.
// Example: return a + b;
type ReturnStmt struct {
	BaseStmt
	Result Expr
}

// -----------------------------------------------------------------------------
// Compile-time checks
// -----------------------------------------------------------------------------

var (
	_ Stmt = (*Block)(nil)
	_ Stmt = (*FuncDecl)(nil)
	_ Stmt = (*AssignStmt)(nil)
	_ Stmt = (*IfStmt)(nil)
	_ Stmt = (*ReturnStmt)(nil)
)
