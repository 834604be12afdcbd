// Package ptlang parses programs written in pt, a small imperative
// language with function declarations, blocks, assignments, calls,
// if/else and return statements, and integer and string expressions.
//
// The package is a front end only: it turns source text into a syntax
// tree and renders that tree for inspection. There is no type checking
// and no evaluation.
//
// # Quick Start
//
//	prog, err := ptlang.Parse(`int add(a, b) { return a + b; }`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(prog)
//
// The text dump indents each nesting level by two spaces:
//
//	Program:
//	  FuncDeclaration:
//	    Type: int
//	    Name: add
//	    ...
//
// [Program.Encode] also renders the tree as JSON or YAML.
//
// # Tokens
//
// [Tokenize] exposes the lexer on its own. Every token carries its kind,
// its exact text and the line and column of its first character.
//
// # Configuration
//
// A [Config] selects the output format and a display file name. It can be
// loaded from a TOML file with [LoadConfig]:
//
//	format = "yaml"
//	filename = "main.pt"
//
// # Error Handling
//
// Parsing stops at the first problem. Errors are returned as specific
// types carrying the position and an [ErrorKind]:
//   - [LexError]: a character sequence that is not a token
//   - [ParseError]: a token sequence the grammar does not accept
package ptlang
