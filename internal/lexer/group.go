package lexer

import (
	"anvil/internal/diag"
	"anvil/internal/source"
	"anvil/internal/token"
)

// scanGroup scans '(' , whitespace-padded token trees, ')'. Newlines inside
// the group are plain padding; the enclosing line resumes after ')'.
func (lx *Lexer) scanGroup() (token.TokenTree, *Error) {
	if err := lx.enterNesting(); err != nil {
		return token.TokenTree{}, err
	}
	defer lx.leaveNesting()

	start := lx.cursor.Mark()
	lx.cursor.Bump() // '('

	var children []token.TokenTree
	for {
		lx.skipPadding()
		if lx.cursor.EOF() {
			return token.TokenTree{}, lx.failNoted(diag.LexUnterminatedGroup,
				lx.cursor.SpanFrom(start), "parenthesized group is never closed",
				lx.openerSpan(start), "group opened here")
		}
		if lx.cursor.Eat(')') {
			return token.Group(token.DelimParen, lx.cursor.SpanFrom(start), children), nil
		}
		tt, err := lx.lexTree(')')
		if err != nil {
			return token.TokenTree{}, err
		}
		children = append(children, tt)
	}
}

// openerSpan is the one-byte span of an opening delimiter at the mark.
func (lx *Lexer) openerSpan(m Mark) source.Span {
	return source.Span{File: lx.file.ID, Start: uint32(m), End: uint32(m) + 1}
}

// enterNesting bounds the mutual recursion of groups, splices, and strings.
func (lx *Lexer) enterNesting() *Error {
	if lx.depth >= lx.opts.maxDepth() {
		return lx.fail(diag.LexNestingTooDeep, lx.charSpan(),
			"grouping nested deeper than the configured limit")
	}
	lx.depth++
	return nil
}

func (lx *Lexer) leaveNesting() {
	lx.depth--
}
