package lexer

import (
	"errors"
	"strconv"

	"anvil/internal/diag"
	"anvil/internal/token"
)

// scanNumber scans the longest decimal digit run as an unsigned 64-bit value.
// Overflow is fatal. Immediately after the digits, the maximal identifier run
// is matched against the closed suffix list; anything else rewinds so the run
// lexes as a separate identifier ("1i8x" is Int(1) then Ident("i8x")).
func (lx *Lexer) scanNumber() (token.Token, *Error) {
	start := lx.cursor.Mark()
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	digitSpan := lx.cursor.SpanFrom(start)
	digits := string(lx.file.Content[digitSpan.Start:digitSpan.End])
	value, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return token.Token{}, lx.fail(diag.LexIntOverflow, digitSpan,
				"integer literal "+digits+" does not fit in 64 bits")
		}
		// Dispatch guarantees at least one digit; ParseUint can only fail on range.
		return token.Token{}, lx.fail(diag.UnknownCode, digitSpan, err.Error())
	}

	suffix := token.SuffixNone
	if lx.startsBareToken() && !isDec(lx.cursor.Peek()) {
		m := lx.cursor.Mark()
		runStart := lx.cursor.Off
		lx.scanIdentRunes()
		run := string(lx.file.Content[runStart:lx.cursor.Off])
		if s, ok := token.LookupSuffix(run); ok {
			suffix = s
		} else {
			lx.cursor.Reset(m)
		}
	}

	sp := lx.cursor.SpanFrom(start)
	tok := token.Token{
		Kind:   token.IntLit,
		Span:   sp,
		Text:   string(lx.file.Content[sp.Start:sp.End]),
		Value:  value,
		Suffix: suffix,
	}
	tok.Adj = lx.classifyAdjacency()
	return tok, nil
}
