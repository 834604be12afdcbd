package ast

import "fmt"

// Visitor has one method per node type; T is what each visit produces.
// A downstream consumer such as an evaluator implements it and dispatches
// with Accept:
//
//	type Eval struct{ env map[string]int64 }
//	func (e *Eval) VisitIntLit(n *IntLit) int64 { return n.Value }
//	func (e *Eval) VisitIdent(n *Ident) int64   { return e.env[n.Name] }
//	// ... other methods
type Visitor[T any] interface {
	VisitProgram(*Program) T

	// Statement nodes
	VisitBlock(*Block) T
	VisitFuncDecl(*FuncDecl) T
	VisitAssignStmt(*AssignStmt) T
	VisitIfStmt(*IfStmt) T
	VisitReturnStmt(*ReturnStmt) T

	// Expression nodes
	VisitIdent(*Ident) T
	VisitIntLit(*IntLit) T
	VisitStrLit(*StrLit) T
	VisitBinaryExpr(*BinaryExpr) T
	VisitCallExpr(*CallExpr) T
}

// Accept dispatches node to the matching method of v.
// It panics on a node type this package does not define, which cannot
// happen for trees built by the parser.
func Accept[T any](node Node, v Visitor[T]) T {
	switch n := node.(type) {
	case *Program:
		return v.VisitProgram(n)
	case *Block:
		return v.VisitBlock(n)
	case *FuncDecl:
		return v.VisitFuncDecl(n)
	case *AssignStmt:
		return v.VisitAssignStmt(n)
	case *IfStmt:
		return v.VisitIfStmt(n)
	case *ReturnStmt:
		return v.VisitReturnStmt(n)
	case *Ident:
		return v.VisitIdent(n)
	case *IntLit:
		return v.VisitIntLit(n)
	case *StrLit:
		return v.VisitStrLit(n)
	case *BinaryExpr:
		return v.VisitBinaryExpr(n)
	case *CallExpr:
		return v.VisitCallExpr(n)
	default:
		panic(fmt.Sprintf("ast: unexpected node type %T", node))
	}
}

// Walk calls fn for node and then, if fn returned true, walks node's
// children in source order. Nil children such as a missing else branch
// are skipped.
//
// Collecting the names a function body refers to:
//
//	var names []string
//	ast.Walk(fn.Body, func(n ast.Node) bool {
//	    if id, ok := n.(*ast.Ident); ok {
//	        names = append(names, id.Name)
//	    }
//	    return true
//	})
func Walk(node Node, fn func(Node) bool) {
	if isNil(node) || !fn(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, item := range n.Items {
			Walk(item, fn)
		}

	case *Block:
		for _, s := range n.Stmts {
			Walk(s, fn)
		}

	case *FuncDecl:
		Walk(n.Name, fn)
		for _, param := range n.Params {
			Walk(param, fn)
		}
		Walk(n.Body, fn)

	case *AssignStmt:
		Walk(n.Target, fn)
		Walk(n.Value, fn)

	case *IfStmt:
		Walk(n.Cond, fn)
		Walk(n.Then, fn)
		if n.Else != nil {
			Walk(n.Else, fn)
		}

	case *ReturnStmt:
		Walk(n.Result, fn)

	case *BinaryExpr:
		Walk(n.Left, fn)
		Walk(n.Right, fn)

	case *CallExpr:
		Walk(n.Func, fn)
		for _, arg := range n.Args {
			Walk(arg, fn)
		}

	case *Ident, *IntLit, *StrLit:
		// leaves
	}
}

// Inspect is like Walk but calls fn for every node unconditionally.
func Inspect(node Node, fn func(Node)) {
	Walk(node, func(n Node) bool {
		fn(n)
		return true
	})
}

// isNil reports whether node is nil or a typed nil pointer, which occurs
// when an optional child such as *Block is passed as a Node.
func isNil(node Node) bool {
	switch n := node.(type) {
	case nil:
		return true
	case *Program:
		return n == nil
	case *Block:
		return n == nil
	case *FuncDecl:
		return n == nil
	case *AssignStmt:
		return n == nil
	case *IfStmt:
		return n == nil
	case *ReturnStmt:
		return n == nil
	case *Ident:
		return n == nil
	case *IntLit:
		return n == nil
	case *StrLit:
		return n == nil
	case *BinaryExpr:
		return n == nil
	case *CallExpr:
		return n == nil
	}
	return false
}
