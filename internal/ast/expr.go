package ast

// -----------------------------------------------------------------------------
// Literals
// -----------------------------------------------------------------------------

// IntLit represents an integer literal.
// Examples: 42, -7
type IntLit struct {
	BaseExpr
	Value int64
}

// StrLit represents a string literal.
// Value keeps the delimiting quotes; escapes are already resolved.
// Examples: "hello", "tab\there"
type StrLit struct {
	BaseExpr
	Value string
}

// -----------------------------------------------------------------------------
// References
// -----------------------------------------------------------------------------

// Ident represents an identifier. It is used both as a reference inside
// expressions and as a binding occurrence (function name, parameter,
// assignment target).
// Examples: x, long_var, $tmp
type Ident struct {
	BaseExpr
	Name string
}

// -----------------------------------------------------------------------------
// Operations
// -----------------------------------------------------------------------------

// BinaryExpr represents a binary operation.
// Op is one of + - * / % < > <= >= == != =.
// Examples: a + b, x == y, (a + b) * c
type BinaryExpr struct {
	BaseExpr
	Left  Expr
	Op    string
	Right Expr
}

// CallExpr represents a function call.
// Examples: print(x, 5), add()
type CallExpr struct {
	BaseExpr
	Func *Ident
	Args []Expr
}

// -----------------------------------------------------------------------------
// Compile-time checks
// -----------------------------------------------------------------------------

var (
	_ Expr = (*IntLit)(nil)
	_ Expr = (*StrLit)(nil)
	_ Expr = (*Ident)(nil)
	_ Expr = (*BinaryExpr)(nil)
	_ Expr = (*CallExpr)(nil)
)
