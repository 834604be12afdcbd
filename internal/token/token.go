// Package token defines lexical token kinds for pt source code.
package token

import "strconv"

// Kind represents the lexical category of a token.
type Kind uint8

const (
	// ILLEGAL is the zero Kind; the lexer never emits it.
	ILLEGAL Kind = iota

	KEYWORD    // var, void, if, else, return
	IDENTIFIER // names of functions and variables
	OPERATION  // + - * / % < >
	COMPARISON // == != <= >=
	ASSIGN     // =
	SPECIAL    // , { } ( ) ;

	// Literals
	STRING
	INT
)

var kindNames = [...]string{
	ILLEGAL:    "ILLEGAL",
	KEYWORD:    "KEYWORD",
	IDENTIFIER: "IDENTIFIER",
	OPERATION:  "OPERATION",
	COMPARISON: "COMPARISON",
	ASSIGN:     "ASSIGN",
	SPECIAL:    "SPECIAL",
	STRING:     "STRING",
	INT:        "INT",
}

// String returns the upper-case name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// keywords is the lexer keyword set. "int" is deliberately absent: it lexes
// as an IDENTIFIER and is recognized by the parser through IsTypeTag.
var keywords = map[string]bool{
	"var":    true,
	"void":   true,
	"if":     true,
	"else":   true,
	"return": true,
}

// typeTags are the return-type tags the parser accepts at top level,
// compared by literal text regardless of token kind.
var typeTags = map[string]bool{
	"void": true,
	"int":  true,
}

// IsKeyword reports whether text is one of the lexer keywords.
func IsKeyword(text string) bool {
	return keywords[text]
}

// IsTypeTag reports whether text starts a top-level function declaration.
func IsTypeTag(text string) bool {
	return typeTags[text]
}

// Keywords returns the lexer keywords in match order.
func Keywords() []string {
	return []string{"var", "void", "if", "else", "return"}
}
