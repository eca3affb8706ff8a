package lexer

import (
	"anvil/internal/diag"
	"anvil/internal/source"
	"anvil/internal/token"
)

// Lexer converts one source file into a tree of nested token groups. It runs
// single-threaded and single-pass over the in-memory buffer; the first
// failure is fatal and surfaces as *Error.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	depth  int // current group/splice/string nesting
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Lex tokenizes an entire file into one top-level block.
func Lex(file *source.File, opts Options) (token.TokenTree, error) {
	lx := New(file, opts)
	tree, err := lx.lexFile()
	if err != nil {
		// *Error is reported at the failure site; just surface it.
		return token.TokenTree{}, err
	}
	return tree, nil
}

// expectations of the token-tree grammar, in alternative-try order.
var treeAlternatives = []string{
	"identifier", "integer", "operator", "string", "'('", "comment",
}

// lexTree scans exactly one token tree at the cursor. closer is the pending
// closing delimiter (')' or '}') when inside a group, or 0 at line level; it
// only widens the expectation set of failures.
func (lx *Lexer) lexTree(closer byte) (token.TokenTree, *Error) {
	ch := lx.cursor.Peek()

	switch {
	case ch == '"':
		return lx.scanString()

	case ch == '(':
		return lx.scanGroup()

	case lx.startsComment():
		tok, err := lx.scanComment()
		if err != nil {
			return token.TokenTree{}, err
		}
		return token.Leaf(tok), nil

	case ch == '+' || ch == '=' || ch == '.':
		return token.Leaf(lx.scanOperator()), nil

	case isDec(ch):
		tok, err := lx.scanNumber()
		if err != nil {
			return token.TokenTree{}, err
		}
		return token.Leaf(tok), nil

	case lx.startsBareToken():
		return token.Leaf(lx.scanIdent()), nil
	}

	expected := treeAlternatives
	if closer != 0 {
		expected = append([]string{"'" + string(closer) + "'"}, expected...)
	}
	sp := lx.charSpan()
	return token.TokenTree{}, lx.failExpected(diag.LexUnexpectedChar, sp,
		"unexpected character "+lx.quoteAt(sp), expected)
}

// classifyAdjacency tags a just-scanned bare token: Sequential when, after
// skipping only inline whitespace, another bare token starts on this line;
// Terminal otherwise. One explicit lookahead, then rewind.
func (lx *Lexer) classifyAdjacency() token.Adjacency {
	m := lx.cursor.Mark()
	lx.skipInline()
	sequential := lx.startsBareToken()
	lx.cursor.Reset(m)
	if sequential {
		return token.AdjSequential
	}
	return token.AdjTerminal
}

// charSpan is the span of the single rune at the cursor.
func (lx *Lexer) charSpan() source.Span {
	_, sz := lx.peekRune()
	if sz == 0 {
		return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
	}
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off + uint32(sz)} // #nosec G115 -- rune size <= 4
}

func (lx *Lexer) quoteAt(sp source.Span) string {
	if sp.Empty() {
		return "at end of input"
	}
	return "'" + string(lx.file.Content[sp.Start:sp.End]) + "'"
}
