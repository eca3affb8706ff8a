package lexer

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"fortio.org/safecast"
)

const utf8RuneSelf = 0x80

// ===== Rune access on top of Cursor =====

// peekRune reads the rune at the cursor without consuming it.
func (lx *Lexer) peekRune() (r rune, size int) {
	if lx.cursor.EOF() {
		return utf8.RuneError, 0
	}
	b := lx.cursor.Peek()
	if b < utf8.RuneSelf { // fast-path ASCII
		return rune(b), 1
	}
	r, sz := utf8.DecodeRune(lx.file.Content[lx.cursor.Off:])
	return r, sz
}

// bumpRune consumes one rune.
func (lx *Lexer) bumpRune() {
	_, sz := lx.peekRune()
	if sz == 0 {
		return
	}
	usz, err := safecast.Conv[uint32](sz)
	if err != nil {
		panic(fmt.Errorf("bumpRune overflow: %w", err))
	}
	lx.cursor.Off += usz
}

// ===== Classifiers =====

// ASCII fast path for identifiers; Unicode goes through the rune variants.
func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}
func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || (b >= '0' && b <= '9')
}
func isIdentStartRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}
func isIdentContinueRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isInline(b byte) bool { return b == ' ' || b == '\t' }

// startsBareToken reports whether the cursor sits on an identifier or integer.
func (lx *Lexer) startsBareToken() bool {
	if lx.cursor.EOF() {
		return false
	}
	b := lx.cursor.Peek()
	if isDec(b) || isIdentStartByte(b) {
		return true
	}
	if b >= utf8RuneSelf {
		r, _ := lx.peekRune()
		return isIdentStartRune(r)
	}
	return false
}

// startsComment reports whether the cursor sits on "//" or "/*".
func (lx *Lexer) startsComment() bool {
	b0, b1, ok := lx.cursor.Peek2()
	return ok && b0 == '/' && (b1 == '/' || b1 == '*')
}

// skipInline consumes spaces and tabs only; never crosses a newline.
func (lx *Lexer) skipInline() {
	for isInline(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
}

// skipPadding consumes all whitespace including newlines. Inside delimited
// groups and interpolation splices, line structure is plain padding.
func (lx *Lexer) skipPadding() {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if !isInline(b) && b != '\n' && b != '\r' {
			break
		}
		lx.cursor.Bump()
	}
}
