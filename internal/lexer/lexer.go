// Package lexer provides pt source code tokenization.
package lexer

import (
	"iter"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/kolkov/ptlang/internal/token"
)

// Lexer tokenizes pt source code. Tokens are produced lazily, one per call
// to Next, in a single forward pass over the source.
type Lexer struct {
	src      string // Source code
	filename string // Reported in token positions (optional)
	offset   int    // Byte offset of the next unread character
	line     int    // Line of the next unread character (1-indexed)
	col      int    // Column of the next unread character (1-indexed)
	err      error  // First error; the lexer is dead once set
}

// New creates a new Lexer for the given source code.
func New(src string) *Lexer {
	return NewFile("", src)
}

// NewFile creates a new Lexer whose positions carry filename.
func NewFile(filename, src string) *Lexer {
	l := &Lexer{src: src, filename: filename}
	l.Reset()
	return l
}

// Token represents a scanned token with its position and lexeme.
type Token struct {
	Kind token.Kind
	Text string // Exact lexeme; strings keep their quotes and are unescaped
	Pos  token.Position
}

// String returns a debug representation, e.g. IDENTIFIER("x")@1:1.
func (t Token) String() string {
	return t.Kind.String() + "(" + strconv.Quote(t.Text) + ")@" + t.Pos.String()
}

// Reset rewinds the lexer to the start of the source.
func (l *Lexer) Reset() {
	l.offset = 0
	l.line = 1
	l.col = 1
	l.err = nil
}

// Next scans and returns the next token. At end of input it returns
// ok == false and a nil error. After an error every call returns it again.
func (l *Lexer) Next() (tok Token, ok bool, err error) {
	if l.err != nil {
		return Token{}, false, l.err
	}
	tok, ok, err = l.scan()
	if err != nil {
		l.err = err
	}
	return tok, ok, err
}

// All returns an iterator over the tokens of the source, starting from the
// beginning. Iteration stops after the first error, which is yielded with
// a zero Token.
func (l *Lexer) All() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		l.Reset()
		for {
			tok, ok, err := l.Next()
			if err != nil {
				yield(Token{}, err)
				return
			}
			if !ok || !yield(tok, nil) {
				return
			}
		}
	}
}

// Tokenize scans src completely and returns all of its tokens.
func Tokenize(src string) ([]Token, error) {
	var toks []Token
	for tok, err := range New(src).All() {
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
	}
	return toks, nil
}

// pos returns the position of the next unread character.
func (l *Lexer) pos() token.Position {
	return token.Position{
		Filename: l.filename,
		Line:     l.line,
		Column:   l.col,
		Offset:   l.offset,
	}
}

func (l *Lexer) scan() (Token, bool, error) {
	for l.offset < len(l.src) {
		rest := l.src[l.offset:]

		if run := wordRun(rest); run != "" {
			if n := matchKeyword(run); n > 0 {
				return l.emit(token.KEYWORD, n), true, nil
			}
			if n := matchRule(identRule, run); n > 0 {
				return l.emit(token.IDENTIFIER, n), true, nil
			}
		}
		if run := intRun(rest); run != "" {
			if n := matchRule(intRule, run); n > 0 {
				return l.emit(token.INT, n), true, nil
			}
		}

		ch := rest[0]
		switch ch {
		case ' ', '\t', '\r', '\n':
			l.skipWhitespace(ch)
			continue

		case '=':
			if l.peek(1) == '=' {
				return l.emit(token.COMPARISON, 2), true, nil
			}
			return l.emit(token.ASSIGN, 1), true, nil

		case '!':
			if l.peek(1) == '=' {
				return l.emit(token.COMPARISON, 2), true, nil
			}
			return Token{}, false, errorf(UnknownCharacter, l.pos(), '!', "unknown character '!'")

		case '<', '>':
			if l.peek(1) == '=' {
				return l.emit(token.COMPARISON, 2), true, nil
			}
			return l.emit(token.OPERATION, 1), true, nil

		case ',', '{', '}', '(', ')', ';':
			return l.emit(token.SPECIAL, 1), true, nil

		case '"':
			return l.scanString()

		case '+', '-', '*', '/', '%':
			return l.emit(token.OPERATION, 1), true, nil
		}

		r, _ := utf8.DecodeRuneInString(rest)
		return Token{}, false, errorf(InvalidToken, l.pos(), r, "incorrect token %q", r)
	}
	return Token{}, false, nil
}

// emit returns the n-byte ASCII lexeme at the current offset as a token
// and advances past it.
func (l *Lexer) emit(kind token.Kind, n int) Token {
	tok := Token{
		Kind: kind,
		Text: l.src[l.offset : l.offset+n],
		Pos:  l.pos(),
	}
	l.offset += n
	l.col += n
	return tok
}

// peek returns the byte i positions after the current one, or 0 past the end.
func (l *Lexer) peek(i int) byte {
	if l.offset+i < len(l.src) {
		return l.src[l.offset+i]
	}
	return 0
}

func (l *Lexer) skipWhitespace(ch byte) {
	l.offset++
	if ch == '\n' {
		l.line++
		l.col = 1
		return
	}
	l.col++
}

// advance consumes one character of size bytes inside a string literal.
// Newlines there are content and only move the column.
func (l *Lexer) advance(size int) {
	l.offset += size
	l.col++
}

func (l *Lexer) scanString() (Token, bool, error) {
	start := l.pos()
	l.advance(1) // consume opening quote

	var sb strings.Builder
	sb.WriteByte('"')
	for {
		if l.offset >= len(l.src) {
			return Token{}, false, errorf(UnterminatedString, start, '"', "unterminated string literal")
		}
		r, size := utf8.DecodeRuneInString(l.src[l.offset:])
		switch r {
		case '"':
			l.advance(size)
			sb.WriteByte('"')
			return Token{Kind: token.STRING, Text: sb.String(), Pos: start}, true, nil

		case '\\':
			l.advance(size)
			if l.offset >= len(l.src) {
				return Token{}, false, errorf(UnterminatedString, start, '\\', "unterminated escape sequence")
			}
			esc, escSize := utf8.DecodeRuneInString(l.src[l.offset:])
			switch esc {
			case '\\':
				sb.WriteByte('\\')
			case '"':
				sb.WriteByte('"')
			case 'n':
				sb.WriteByte('\n')
			case 'r':
				sb.WriteByte('\r')
			case 't':
				sb.WriteByte('\t')
			case 'b':
				sb.WriteByte('\b')
			case '$':
				sb.WriteByte('$')
			default:
				return Token{}, false, errorf(InvalidEscape, l.pos(), esc, "incorrect escaped symbol: \\%c", esc)
			}
			l.advance(escSize)

		default:
			sb.WriteRune(r)
			l.advance(size)
		}
	}
}
