package token

import (
	"anvil/internal/source"
)

// Delim identifies the bracketing construct of a non-leaf token tree.
type Delim uint8

const (
	// DelimNone marks a leaf tree holding a single token.
	DelimNone Delim = iota
	// DelimBlock is an indentation-derived block.
	DelimBlock
	// DelimParen is an explicit '(' ... ')' group.
	DelimParen
	// DelimCurly is one '${' ... '}' interpolation splice.
	DelimCurly
	// DelimInterp wraps an entire string's fragments.
	DelimInterp
)

func (d Delim) String() string {
	switch d {
	case DelimNone:
		return "None"
	case DelimBlock:
		return "Block"
	case DelimParen:
		return "Parenthesis"
	case DelimCurly:
		return "Curly"
	case DelimInterp:
		return "Interpolation"
	}
	return "Unknown"
}

// TokenTree is either a leaf token or a delimited ordered group of child
// trees. Trees are built bottom-up and are immutable afterwards; each child
// belongs to exactly one parent.
type TokenTree struct {
	Span     source.Span
	Delim    Delim // DelimNone for leaves
	Tok      Token // valid only when Delim == DelimNone
	Children []TokenTree
}

// Leaf wraps a token into a leaf tree carrying the token's own span.
func Leaf(tok Token) TokenTree {
	return TokenTree{Span: tok.Span, Tok: tok}
}

// Group builds a non-leaf tree from ordered children.
func Group(delim Delim, span source.Span, children []TokenTree) TokenTree {
	return TokenTree{Span: span, Delim: delim, Children: children}
}

// IsLeaf reports whether the tree is a single token.
func (tt *TokenTree) IsLeaf() bool { return tt.Delim == DelimNone }

// Walk visits the tree in depth-first pre-order. Returning false from visit
// skips the subtree's children.
func (tt *TokenTree) Walk(visit func(node *TokenTree, depth int) bool) {
	tt.walk(visit, 0)
}

func (tt *TokenTree) walk(visit func(node *TokenTree, depth int) bool, depth int) {
	if !visit(tt, depth) {
		return
	}
	for i := range tt.Children {
		tt.Children[i].walk(visit, depth+1)
	}
}

// CountLeaves returns the number of leaf tokens in the tree.
func (tt *TokenTree) CountLeaves() int {
	n := 0
	tt.Walk(func(node *TokenTree, _ int) bool {
		if node.IsLeaf() {
			n++
		}
		return true
	})
	return n
}
