package parser

import (
	"github.com/kolkov/ptlang/internal/lexer"
	"github.com/kolkov/ptlang/internal/token"
)

// cursor is the parser's two-token lookahead window. It is a value: the
// parser replaces its cursor on every step instead of mutating the slots.
type cursor struct {
	cur     lexer.Token
	next    lexer.Token
	hasCur  bool
	hasNext bool
}

// advance consumes the current token. The next token becomes current and
// tok, if ok, becomes the new next token.
func (c cursor) advance(tok lexer.Token, ok bool) cursor {
	return cursor{
		cur:     c.next,
		hasCur:  c.hasNext,
		next:    tok,
		hasNext: ok,
	}
}

// is reports whether the current token's text is text.
func (c cursor) is(text string) bool {
	return c.hasCur && c.cur.Text == text
}

// nextIs reports whether the next token's text is text.
func (c cursor) nextIs(text string) bool {
	return c.hasNext && c.next.Text == text
}

// isKind reports whether the current token has the given kind.
func (c cursor) isKind(kind token.Kind) bool {
	return c.hasCur && c.cur.Kind == kind
}

// nextIsKind reports whether the next token has the given kind.
func (c cursor) nextIsKind(kind token.Kind) bool {
	return c.hasNext && c.next.Kind == kind
}

// text returns the current token's text, or "null" at end of input.
func (c cursor) text() string {
	if !c.hasCur {
		return nullText
	}
	return c.cur.Text
}

// nextText returns the next token's text, or "null" at end of input.
func (c cursor) nextText() string {
	if !c.hasNext {
		return nullText
	}
	return c.next.Text
}

// pos returns the current token's position, or NoPos at end of input.
func (c cursor) pos() token.Position {
	if !c.hasCur {
		return token.NoPos
	}
	return c.cur.Pos
}

// nextPos returns the next token's position, falling back to the current
// one at end of input.
func (c cursor) nextPos() token.Position {
	if !c.hasNext {
		return c.pos()
	}
	return c.next.Pos
}
