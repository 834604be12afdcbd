package ptlang

import (
	"fmt"
	"os"

	"github.com/kolkov/ptlang/internal/lexer"
	"github.com/kolkov/ptlang/internal/parser"
)

// Version is the ptlang version string.
const Version = "0.1.0"

// Parse parses a pt program.
// The returned Program can be rendered any number of times.
//
// Example:
//
//	prog, err := ptlang.Parse(`x = (a + b) * 2;`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(prog)
func Parse(src string) (*Program, error) {
	return ParseNamed("", src)
}

// ParseNamed is like Parse but records filename in error positions.
func ParseNamed(filename, src string) (*Program, error) {
	tree, err := parser.ParseFile(filename, src)
	if err != nil {
		return nil, convertError(err, filename)
	}
	return &Program{tree: tree, source: src}, nil
}

// ParseFile reads and parses the pt program stored at path.
func ParseFile(path string) (*Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	return ParseNamed(path, string(data))
}

// MustParse is like Parse but panics if the program cannot be parsed.
// It simplifies initialization of global program variables.
func MustParse(src string) *Program {
	prog, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return prog
}

// Token is a single lexeme of pt source.
type Token struct {
	Kind   string // KEYWORD, IDENTIFIER, OPERATION, COMPARISON, ASSIGN, SPECIAL, STRING or INT
	Text   string // Exact lexeme; strings keep their quotes
	Line   int    // 1-based line number
	Column int    // 1-based column number
}

func (t Token) String() string {
	return fmt.Sprintf("%d:%d %s %q", t.Line, t.Column, t.Kind, t.Text)
}

// Tokenize splits src into tokens.
// It stops at the first lexical error and returns it as a *LexError.
func Tokenize(src string) ([]Token, error) {
	return TokenizeNamed("", src)
}

// TokenizeNamed is like Tokenize but records filename in errors.
func TokenizeNamed(filename, src string) ([]Token, error) {
	var toks []Token
	for tok, err := range lexer.NewFile(filename, src).All() {
		if err != nil {
			return nil, convertError(err, filename)
		}
		toks = append(toks, Token{
			Kind:   tok.Kind.String(),
			Text:   tok.Text,
			Line:   tok.Pos.Line,
			Column: tok.Pos.Column,
		})
	}
	return toks, nil
}
