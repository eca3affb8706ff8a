package lexer

import (
	"anvil/internal/token"
)

// scanOperator handles the single-character operators. The three byte values
// are disjoint, so dispatch needs no ordering or lookahead.
func (lx *Lexer) scanOperator() token.Token {
	start := lx.cursor.Mark()
	var kind token.Kind
	switch lx.cursor.Bump() {
	case '+':
		kind = token.Plus
	case '=':
		kind = token.Assign
	case '.':
		kind = token.Dot
	default:
		kind = token.Invalid
	}
	return token.Token{Kind: kind, Span: lx.cursor.SpanFrom(start)}
}
