package ast

import (
	"fmt"
	"io"
	"strings"
)

// indentUnit is written once per nesting level.
const indentUnit = "  "

// Printer renders AST nodes as an indented tree, one node per line.
// The output depends only on the tree's content, so structurally equal
// trees print identically; tests compare programs through it.
//
// Example output for "x = a + 1;":
//
//	Program:
//	  Assignment:
//	    Identifier: x
//	    BinaryOp: +
//	      Identifier: a
//	      IntLiteral: 1
type Printer struct {
	w      io.Writer
	indent int
	err    error
}

// NewPrinter creates a new Printer that writes to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Print writes the tree rooted at node to the writer.
// An empty Program produces no output.
func (p *Printer) Print(node Node) error {
	p.printNode(node)
	return p.err
}

// Fprint writes the tree rooted at node to w.
func Fprint(w io.Writer, node Node) error {
	return NewPrinter(w).Print(node)
}

// Sprint returns the tree rooted at node as a string.
func Sprint(node Node) string {
	var sb strings.Builder
	_ = Fprint(&sb, node) // strings.Builder never fails
	return sb.String()
}

// line writes one indented line.
func (p *Printer) line(format string, args ...any) {
	if p.err != nil {
		return
	}
	if _, p.err = io.WriteString(p.w, strings.Repeat(indentUnit, p.indent)); p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}

// nested prints children one level deeper.
func (p *Printer) nested(fn func()) {
	p.indent++
	fn()
	p.indent--
}

func (p *Printer) printNode(node Node) {
	switch n := node.(type) {
	case nil:
		p.line("<nil>")
	case *Program:
		p.printProgram(n)
	case Stmt:
		p.printStmt(n)
	default:
		p.line("<%T>", node)
	}
}

func (p *Printer) printProgram(prog *Program) {
	if len(prog.Items) == 0 {
		return
	}
	p.line("Program:")
	p.nested(func() {
		for _, item := range prog.Items {
			p.printStmt(item)
		}
	})
}

func (p *Printer) printStmt(s Stmt) {
	switch n := s.(type) {
	case nil:
		p.line("<nil>")

	case *Block:
		p.printBlock(n)

	case *FuncDecl:
		p.line("FuncDeclaration:")
		p.nested(func() {
			p.line("Type: %s", n.Type)
			p.line("Name: %s", identName(n.Name))
			if len(n.Params) == 0 {
				p.line("Parameters: ()")
			} else {
				p.line("Parameters:")
				p.nested(func() {
					for _, param := range n.Params {
						p.printStmt(param)
					}
				})
			}
			p.line("Body:")
			p.nested(func() { p.printBlock(n.Body) })
		})

	case *AssignStmt:
		p.line("Assignment:")
		p.nested(func() {
			p.printStmt(n.Target)
			p.printStmt(n.Value)
		})

	case *IfStmt:
		p.line("IfStatement:")
		p.nested(func() {
			p.line("Condition:")
			p.nested(func() { p.printStmt(n.Cond) })
			p.line("Then:")
			p.nested(func() { p.printBlock(n.Then) })
			if n.Else != nil {
				p.line("Else:")
				p.nested(func() { p.printBlock(n.Else) })
			}
		})

	case *ReturnStmt:
		p.line("ReturnStatement:")
		p.nested(func() { p.printStmt(n.Result) })

	case Expr:
		p.printExpr(n)

	default:
		p.line("<%T>", s)
	}
}

func (p *Printer) printBlock(b *Block) {
	if b == nil {
		p.line("<nil>")
		return
	}
	p.line("Block:")
	p.nested(func() {
		for _, s := range b.Stmts {
			p.printStmt(s)
		}
	})
}

func (p *Printer) printExpr(e Expr) {
	switch n := e.(type) {
	case *Ident:
		p.line("Identifier: %s", n.Name)

	case *IntLit:
		p.line("IntLiteral: %d", n.Value)

	case *StrLit:
		p.line("StringLiteral: %s", n.Value)

	case *BinaryExpr:
		p.line("BinaryOp: %s", n.Op)
		p.nested(func() {
			p.printStmt(n.Left)
			p.printStmt(n.Right)
		})

	case *CallExpr:
		p.line("FuncCall:")
		p.nested(func() {
			p.printStmt(n.Func)
			if len(n.Args) == 0 {
				p.line("Arguments: ()")
				return
			}
			p.line("Arguments:")
			p.nested(func() {
				for _, arg := range n.Args {
					p.printStmt(arg)
				}
			})
		})

	default:
		p.line("<%T>", e)
	}
}

func identName(id *Ident) string {
	if id == nil {
		return "<nil>"
	}
	return id.Name
}
