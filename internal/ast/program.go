package ast

import "github.com/kolkov/ptlang/internal/token"

// Program represents a complete pt source file.
// Items hold top-level blocks, function declarations and statements in
// source order.
type Program struct {
	// Source file name (for error messages)
	Filename string

	Items []Stmt

	StartPos token.Position
}

// Pos returns the position of the first token in the program.
func (p *Program) Pos() token.Position { return p.StartPos }

// Functions returns the top-level function declarations in source order.
func (p *Program) Functions() []*FuncDecl {
	var funcs []*FuncDecl
	for _, item := range p.Items {
		if fn, ok := item.(*FuncDecl); ok {
			funcs = append(funcs, fn)
		}
	}
	return funcs
}

// Func returns the first top-level function declaration named name.
func (p *Program) Func(name string) (*FuncDecl, bool) {
	for _, fn := range p.Functions() {
		if fn.Name != nil && fn.Name.Name == name {
			return fn, true
		}
	}
	return nil, false
}

var _ Node = (*Program)(nil)
