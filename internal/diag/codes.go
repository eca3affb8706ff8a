package diag

import (
	"fmt"
)

// Code is a compact, stable identifier for a diagnostic.
type Code uint16

const (
	// UnknownCode is the fallback for unclassified failures.
	UnknownCode Code = 0

	// Lexical codes. Every lexical failure is fatal: the lexer surfaces
	// exactly one of these per run.
	LexInfo Code = 1000
	// LexUnexpectedChar reports a character that starts no alternative at the
	// current position; the diagnostic carries the expected set.
	LexUnexpectedChar Code = 1001
	// LexUnterminatedString reports EOF inside a string literal.
	LexUnterminatedString Code = 1002
	// LexUnterminatedComment reports EOF inside a block comment.
	LexUnterminatedComment Code = 1003
	// LexIntOverflow reports a decimal literal outside the unsigned 64-bit range.
	LexIntOverflow Code = 1004
	// LexUnterminatedGroup reports a group or splice that is never closed.
	LexUnterminatedGroup Code = 1005
	// LexInvalidEscape reports an unsupported character after '\' in a string.
	LexInvalidEscape Code = 1006
	// LexInconsistentIndent reports a dedent to a level never opened before.
	LexInconsistentIndent Code = 1007
	// LexNestingTooDeep reports grouping nested past Options.MaxDepth.
	LexNestingTooDeep Code = 1008
)

var codeDescription = map[Code]string{
	UnknownCode:            "unknown failure",
	LexInfo:                "lexical note",
	LexUnexpectedChar:      "unexpected character",
	LexUnterminatedString:  "unterminated string literal",
	LexUnterminatedComment: "unterminated block comment",
	LexIntOverflow:         "integer literal overflow",
	LexUnterminatedGroup:   "unterminated group",
	LexInvalidEscape:       "invalid escape sequence",
	LexInconsistentIndent:  "inconsistent indentation",
	LexNestingTooDeep:      "nesting too deep",
}

// ID returns the stable short form, e.g. "LEX1001".
func (c Code) ID() string {
	if ic := int(c); ic >= 1000 && ic < 2000 {
		return fmt.Sprintf("LEX%04d", ic)
	}
	return "E0000"
}

// Title returns the human-readable description of the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
