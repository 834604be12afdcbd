package parser_test

import (
	"errors"
	"testing"

	"github.com/kolkov/ptlang/internal/ast"
	"github.com/kolkov/ptlang/internal/lexer"
	"github.com/kolkov/ptlang/internal/parser"
)

// FuzzParser tests the parser with random inputs to find crashes.
func FuzzParser(f *testing.F) {
	seeds := []string{
		// Empty and minimal
		"",
		";",
		"{}",
		"{ { } }",

		// Declarations
		"void f() { }",
		"int add(a, b) { return a + b; }",
		"void f(a) { if (a) { return 1; } else { return 0; } }",

		// Statements
		"x = 1;",
		"x = add(1, 2);",
		`print("hello\n");`,
		"a + b;",
		"if (a == b) { } else { }",
		"return a;",

		// Errors
		"int add(a, b) { return a + b }",
		"String concat(x, y) { return x + y; }",
		"x = ",
		"a ! b",
		`"unterminated`,
		complexProgram,
	}

	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, src string) {
		const maxLen = 10000
		if len(src) > maxLen {
			return
		}

		prog, err := parser.Parse(src)
		if err != nil {
			if prog != nil {
				t.Errorf("Parse(%q) returned a program and an error", src)
			}
			var perr *parser.ParseError
			var lerr *lexer.Error
			if !errors.As(err, &perr) && !errors.As(err, &lerr) {
				t.Errorf("Parse(%q) error %T is neither a syntax nor a lexical error", src, err)
			}
			return
		}

		// Successful parses never contain absent statements.
		stmts := prog.Items
		ast.Inspect(prog, func(n ast.Node) {
			if b, ok := n.(*ast.Block); ok {
				stmts = append(stmts, b.Stmts...)
			}
		})
		for _, s := range stmts {
			if s == nil {
				t.Fatalf("Parse(%q) kept an absent statement", src)
			}
		}
		if ast.Sprint(prog) != ast.Sprint(prog) {
			t.Errorf("Parse(%q) renders nondeterministically", src)
		}
	})
}

// FuzzParseExpr tests expression parsing with random inputs.
func FuzzParseExpr(f *testing.F) {
	exprs := []string{
		"42",
		"-1",
		`"hello"`,
		"x",
		"a + b",
		"a - b",
		"a * b",
		"a / b",
		"a % b",
		"a == b",
		"a != b",
		"a < b",
		"a <= b",
		"a > b",
		"a >= b",
		"a = b",
		"(a + b) * (c - d)",
		"a-1",
		"(",
	}

	for _, expr := range exprs {
		f.Add(expr)
	}

	f.Fuzz(func(t *testing.T, src string) {
		const maxLen = 1000
		if len(src) > maxLen {
			return
		}
		_, _ = parser.ParseExpr(src)
	})
}
