package token

import (
	"cmp"
	"fmt"
)

// Position locates the first character of a lexeme in pt source.
type Position struct {
	Filename string // Source name; empty for anonymous input
	Line     int    // 1-based line
	Column   int    // 1-based column, counted in characters
	Offset   int    // 0-based byte offset into the source
}

// NoPos is the zero Position. Parser errors at end of input carry it.
var NoPos = Position{}

// String renders the position as "file:line:col", or "line:col" when the
// position has no file name.
func (p Position) String() string {
	if p.Filename == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// IsValid reports whether p points into a source (line > 0).
func (p Position) IsValid() bool {
	return p.Line > 0
}

// Compare orders two positions of the same source by line, then column.
// It returns -1, 0 or +1.
func (p Position) Compare(other Position) int {
	if c := cmp.Compare(p.Line, other.Line); c != 0 {
		return c
	}
	return cmp.Compare(p.Column, other.Column)
}

// Before reports whether p comes strictly before other.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// After reports whether p comes strictly after other.
func (p Position) After(other Position) bool {
	return p.Compare(other) > 0
}
