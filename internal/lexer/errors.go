package lexer

import (
	"fmt"
	"strings"

	"anvil/internal/diag"
	"anvil/internal/source"
)

// Error is the structured failure of a lex run: the furthest position
// reached, the failure code, and (for expectation errors) the set of
// alternatives that would have been accepted there. All lexical failures are
// fatal; exactly one Error surfaces per failed run.
type Error struct {
	Code     diag.Code
	Span     source.Span
	Expected []string
	Msg      string
}

func (e *Error) Error() string {
	if len(e.Expected) > 0 {
		return fmt.Sprintf("%s at %s: %s (expected %s)", e.Code.ID(), e.Span, e.Msg, strings.Join(e.Expected, ", "))
	}
	return fmt.Sprintf("%s at %s: %s", e.Code.ID(), e.Span, e.Msg)
}

// fail builds the fatal error and emits its diagnostic in one place.
func (lx *Lexer) fail(code diag.Code, sp source.Span, msg string) *Error {
	lx.report(diag.NewError(code, sp, msg))
	return &Error{Code: code, Span: sp, Msg: msg}
}

// failExpected is fail with an expectation set attached.
func (lx *Lexer) failExpected(code diag.Code, sp source.Span, msg string, expected []string) *Error {
	lx.report(diag.NewError(code, sp, msg).WithExpected(expected...))
	return &Error{Code: code, Span: sp, Msg: msg, Expected: expected}
}

// failNoted is fail with one secondary span for context.
func (lx *Lexer) failNoted(code diag.Code, sp source.Span, msg string, noteSp source.Span, note string) *Error {
	lx.report(diag.NewError(code, sp, msg).WithNote(noteSp, note))
	return &Error{Code: code, Span: sp, Msg: msg}
}
