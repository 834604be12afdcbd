package ptlang

import (
	"fmt"
	"io"

	"github.com/kolkov/ptlang/internal/ast"
)

// Program represents a parsed pt program.
// It is immutable and safe for concurrent use.
type Program struct {
	tree   *ast.Program
	source string // Original source for debugging
}

// String returns the indented text dump of the program. An empty
// program renders as the empty string.
func (p *Program) String() string {
	return ast.Sprint(p.tree)
}

// Encode writes the program to w in the given format.
func (p *Program) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatText, "":
		return ast.Fprint(w, p.tree)
	case FormatJSON:
		return ast.FprintJSON(w, p.tree)
	case FormatYAML:
		return ast.FprintYAML(w, p.tree)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// Len returns the number of top-level items.
func (p *Program) Len() int {
	return len(p.tree.Items)
}

// Functions returns the names of the top-level function declarations
// in source order.
func (p *Program) Functions() []string {
	var names []string
	for _, fn := range p.tree.Functions() {
		names = append(names, fn.Name.Name)
	}
	return names
}

// Source returns the original pt source code.
func (p *Program) Source() string {
	return p.source
}
