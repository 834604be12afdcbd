package ptlang

import (
	"errors"
	"fmt"

	"github.com/kolkov/ptlang/internal/lexer"
	"github.com/kolkov/ptlang/internal/parser"
)

// ErrorKind names the category of a lexical or syntax error.
type ErrorKind string

// Lexical error kinds.
const (
	UnterminatedString ErrorKind = "UnterminatedString"
	InvalidEscape      ErrorKind = "InvalidEscape"
	UnknownCharacter   ErrorKind = "UnknownCharacter"
	InvalidToken       ErrorKind = "InvalidToken"
)

// Syntax error kinds.
const (
	SyntaxError                    ErrorKind = "SyntaxError"
	UnexpectedEOF                  ErrorKind = "UnexpectedEOF"
	ExpectedStatement              ErrorKind = "ExpectedStatement"
	UnexpectedTokenAfterIdentifier ErrorKind = "UnexpectedTokenAfterIdentifier"
)

// LexError represents a character sequence that does not form a token.
type LexError struct {
	Kind    ErrorKind
	File    string // Source name, if any
	Line    int    // 1-based line number
	Column  int    // 1-based column number
	Message string // Error description
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at %s: %s", location(e.File, e.Line, e.Column), e.Message)
}

// ParseError represents a syntax error in pt source code.
// Line and Column are zero when the error occurs at end of input.
type ParseError struct {
	Kind    ErrorKind
	File    string // Source name, if any
	Line    int    // 1-based line number
	Column  int    // 1-based column number
	Message string // Error description
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %s: %s", location(e.File, e.Line, e.Column), e.Message)
}

func location(file string, line, col int) string {
	switch {
	case line == 0 && file != "":
		return file + ": end of input"
	case line == 0:
		return "end of input"
	case file != "":
		return fmt.Sprintf("%s:%d:%d", file, line, col)
	default:
		return fmt.Sprintf("%d:%d", line, col)
	}
}

// convertError maps internal lexer and parser errors to the public types.
func convertError(err error, filename string) error {
	var le *lexer.Error
	if errors.As(err, &le) {
		return &LexError{
			Kind:    ErrorKind(le.Kind.String()),
			File:    filename,
			Line:    le.Pos.Line,
			Column:  le.Pos.Column,
			Message: le.Message,
		}
	}

	var pe *parser.ParseError
	if errors.As(err, &pe) {
		return &ParseError{
			Kind:    ErrorKind(pe.Kind.String()),
			File:    filename,
			Line:    pe.Pos.Line,
			Column:  pe.Pos.Column,
			Message: pe.Message,
		}
	}
	return err
}
