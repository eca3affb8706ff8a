package lexer

import (
	"anvil/internal/token"
)

// scanIdent scans the longest identifier-start then identifier-continue run.
// There is no keyword table: anvil resolves keywords in a later stage.
// Dispatch guarantees the first rune is a valid identifier start.
func (lx *Lexer) scanIdent() token.Token {
	start := lx.cursor.Mark()

	r, _ := lx.peekRune()
	if r < utf8RuneSelf {
		// ASCII fast path
		lx.cursor.Bump()
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		// A run may continue with non-ASCII letters.
		if lx.cursor.Peek() >= utf8RuneSelf {
			lx.scanIdentRunes()
		}
	} else {
		lx.bumpRune()
		lx.scanIdentRunes()
	}

	sp := lx.cursor.SpanFrom(start)
	tok := token.Token{
		Kind: token.Ident,
		Span: sp,
		Text: lx.internText(lx.file.Content[sp.Start:sp.End]),
	}
	tok.Adj = lx.classifyAdjacency()
	return tok
}

// scanIdentRunes consumes identifier-continue runes, ASCII or Unicode.
func (lx *Lexer) scanIdentRunes() {
	for {
		r, sz := lx.peekRune()
		if sz == 0 || !isIdentContinueRune(r) {
			return
		}
		lx.bumpRune()
	}
}

func (lx *Lexer) internText(lex []byte) string {
	if lx.opts.Interner == nil {
		return string(lex)
	}
	id := lx.opts.Interner.InternBytes(lex)
	return lx.opts.Interner.MustLookup(id)
}
