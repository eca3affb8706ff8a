package lexer

import (
	"anvil/internal/diag"
	"anvil/internal/source"
	"anvil/internal/token"
)

// scanString scans a '"' delimited string into an Interpolation tree. The
// body is a repetition of literal runs and '${...}' splices. A literal run
// ends only at '"' or at a '$' immediately followed by '{'; a lone '$' is
// literal text, and escapes decode in place, so two literal fragments can
// never sit next to each other. An empty string yields an Interpolation tree
// with no children.
//
// The grammar is mutually recursive here: a splice re-enters the full token
// tree grammar, which may re-enter string scanning.
func (lx *Lexer) scanString() (token.TokenTree, *Error) {
	if err := lx.enterNesting(); err != nil {
		return token.TokenTree{}, err
	}
	defer lx.leaveNesting()

	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'

	var children []token.TokenTree
	var lit []byte
	litStart := lx.cursor.Off

	flush := func() {
		if lit == nil {
			return
		}
		children = append(children, token.Leaf(token.Token{
			Kind: token.StringLit,
			Span: source.Span{File: lx.file.ID, Start: litStart, End: lx.cursor.Off},
			Text: string(lit),
		}))
		lit = nil
	}
	extend := func(decoded ...byte) {
		if lit == nil {
			litStart = lx.cursor.Off
			lit = make([]byte, 0, 16)
		}
		lit = append(lit, decoded...)
	}

	for {
		if lx.cursor.EOF() {
			return token.TokenTree{}, lx.failNoted(diag.LexUnterminatedString,
				lx.cursor.SpanFrom(start), "string literal is never closed",
				lx.openerSpan(start), "string opened here")
		}

		switch b := lx.cursor.Peek(); b {
		case '"':
			flush()
			lx.cursor.Bump()
			return token.Group(token.DelimInterp, lx.cursor.SpanFrom(start), children), nil

		case '\\':
			escStart := lx.cursor.Off
			decoded, err := lx.scanEscape()
			if err != nil {
				return token.TokenTree{}, err
			}
			if lit == nil {
				litStart = escStart
				lit = make([]byte, 0, 16)
			}
			lit = append(lit, decoded)

		case '$':
			if _, b1, ok := lx.cursor.Peek2(); ok && b1 == '{' {
				flush()
				splice, err := lx.scanSplice()
				if err != nil {
					return token.TokenTree{}, err
				}
				children = append(children, splice)
				continue
			}
			extend(b)
			lx.cursor.Bump()

		default:
			extend(b)
			lx.cursor.Bump()
		}
	}
}

// scanEscape consumes '\' plus one escape character and returns the decoded
// byte. Any unsupported character after '\' is fatal.
func (lx *Lexer) scanEscape() (byte, *Error) {
	lx.cursor.Bump() // '\'
	if lx.cursor.EOF() {
		sp := source.Span{File: lx.file.ID, Start: lx.cursor.Off - 1, End: lx.cursor.Off}
		return 0, lx.fail(diag.LexInvalidEscape, sp, "escape sequence is cut off by end of input")
	}
	escSp := lx.charSpan()
	switch c := lx.cursor.Bump(); c {
	case '\\', '$', '"':
		return c, nil
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case 't':
		return '\t', nil
	case '0':
		return 0, nil
	default:
		return 0, lx.fail(diag.LexInvalidEscape, escSp,
			"unsupported escape character "+lx.quoteAt(escSp))
	}
}

// scanSplice scans '${', whitespace-padded token trees, '}' into a Curly
// tree, re-entering the top grammar for the spliced tokens.
func (lx *Lexer) scanSplice() (token.TokenTree, *Error) {
	if err := lx.enterNesting(); err != nil {
		return token.TokenTree{}, err
	}
	defer lx.leaveNesting()

	start := lx.cursor.Mark()
	lx.cursor.Bump() // '$'
	lx.cursor.Bump() // '{'

	var children []token.TokenTree
	for {
		lx.skipPadding()
		if lx.cursor.EOF() {
			return token.TokenTree{}, lx.failNoted(diag.LexUnterminatedGroup,
				lx.cursor.SpanFrom(start), "interpolation splice is never closed",
				lx.openerSpan(start), "splice opened here")
		}
		if lx.cursor.Eat('}') {
			return token.Group(token.DelimCurly, lx.cursor.SpanFrom(start), children), nil
		}
		tt, err := lx.lexTree('}')
		if err != nil {
			return token.TokenTree{}, err
		}
		children = append(children, tt)
	}
}
