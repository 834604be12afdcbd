// Package parser provides a recursive descent parser for pt programs.
package parser

import (
	"fmt"

	"github.com/kolkov/ptlang/internal/token"
)

// ErrorKind classifies a syntax error.
type ErrorKind uint8

const (
	// SyntaxError: the current token is not the literal the grammar requires.
	SyntaxError ErrorKind = iota + 1
	// UnexpectedEOF: a token remains after the top-level loop ends.
	UnexpectedEOF
	// ExpectedStatement: a statement position holds neither a keyword,
	// an identifier nor ';'.
	ExpectedStatement
	// UnexpectedTokenAfterIdentifier: an identifier-led statement continues
	// with something other than '=', an operator or '('.
	UnexpectedTokenAfterIdentifier
)

// String returns the name of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case SyntaxError:
		return "SyntaxError"
	case UnexpectedEOF:
		return "UnexpectedEOF"
	case ExpectedStatement:
		return "ExpectedStatement"
	case UnexpectedTokenAfterIdentifier:
		return "UnexpectedTokenAfterIdentifier"
	default:
		return fmt.Sprintf("ErrorKind(%d)", k)
	}
}

// nullText stands for the missing token at end of input in messages.
const nullText = "null"

// ParseError represents a syntax error encountered during parsing.
// It implements the error interface and includes source position information.
type ParseError struct {
	Kind    ErrorKind      // Error category
	Pos     token.Position // Position of the offending token (invalid at end of input)
	Message string         // Human-readable error message
	Got     string         // Token text that was found (optional)
	Want    string         // Token text that was expected (optional)
}

// Error returns a formatted error message with position information.
func (e *ParseError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s", e.Pos, e.Message)
	}
	return e.Message
}

// errorf creates a ParseError at the given position with formatted message.
func errorf(kind ErrorKind, pos token.Position, got string, format string, args ...any) *ParseError {
	return &ParseError{
		Kind:    kind,
		Pos:     pos,
		Message: fmt.Sprintf(format, args...),
		Got:     got,
	}
}

// expectedError creates a ParseError for a token that does not match.
func expectedError(pos token.Position, want string, got string) *ParseError {
	return &ParseError{
		Kind:    SyntaxError,
		Pos:     pos,
		Message: fmt.Sprintf("incorrect syntax: expected %s, found: %s", want, got),
		Want:    want,
		Got:     got,
	}
}
