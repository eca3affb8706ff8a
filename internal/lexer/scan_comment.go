package lexer

import (
	"anvil/internal/diag"
	"anvil/internal/token"
)

// scanComment scans "//" to (not consuming) the next newline, or a
// non-nesting "/* ... */" block. The content is discarded but the token and
// its span are retained so indentation measurement stays correct; a later
// stage filters comments out. Dispatch guarantees "//" or "/*" at the cursor.
func (lx *Lexer) scanComment() (token.Token, *Error) {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'
	form := lx.cursor.Bump()

	if form == '/' {
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		return token.Token{Kind: token.Comment, Span: lx.cursor.SpanFrom(start)}, nil
	}

	// Block form; "/*/*" does not nest.
	for {
		if lx.cursor.EOF() {
			return token.Token{}, lx.fail(diag.LexUnterminatedComment, lx.cursor.SpanFrom(start),
				"block comment is never closed")
		}
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '*' && b1 == '/' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			return token.Token{Kind: token.Comment, Span: lx.cursor.SpanFrom(start)}, nil
		}
		lx.cursor.Bump()
	}
}
