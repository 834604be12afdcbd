package lexer

import (
	"fmt"

	"github.com/kolkov/ptlang/internal/token"
)

// ErrorKind classifies a lexical error.
type ErrorKind uint8

const (
	// UnterminatedString: end of input inside a string literal.
	UnterminatedString ErrorKind = iota + 1
	// InvalidEscape: a backslash followed by an unsupported character.
	InvalidEscape
	// UnknownCharacter: '!' not followed by '='.
	UnknownCharacter
	// InvalidToken: no rule matches at the current position.
	InvalidToken
)

// String returns the name of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case UnterminatedString:
		return "UnterminatedString"
	case InvalidEscape:
		return "InvalidEscape"
	case UnknownCharacter:
		return "UnknownCharacter"
	case InvalidToken:
		return "InvalidToken"
	default:
		return fmt.Sprintf("ErrorKind(%d)", k)
	}
}

// Error is a lexical error. Lexing stops at the first one.
type Error struct {
	Kind    ErrorKind      // Error category
	Pos     token.Position // Offending position
	Char    rune           // Offending character, if any
	Message string         // Human-readable error message
}

// Error returns a formatted error message with position information.
func (e *Error) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s", e.Pos, e.Message)
	}
	return e.Message
}

func errorf(kind ErrorKind, pos token.Position, ch rune, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Pos:     pos,
		Char:    ch,
		Message: fmt.Sprintf(format, args...),
	}
}
