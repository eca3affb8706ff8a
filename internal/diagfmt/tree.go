package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"anvil/internal/token"
)

// WriteTree dumps a token tree as an indented outline, one node per line:
//
//	Block 0-8
//	  Ident(a) 0-1
//	  Block 2-6
//	    Ident(b) seq 4-5
//
// Leaves print their Token.String() form plus a "seq" marker when the token
// is tagged as followed by another bare token. Spans are byte offsets.
func WriteTree(w io.Writer, tree *token.TokenTree) {
	tree.Walk(func(node *token.TokenTree, depth int) bool {
		indent := strings.Repeat("  ", depth)
		if node.IsLeaf() {
			fmt.Fprintf(w, "%s%s%s %d-%d\n", indent, node.Tok.String(), seqMark(node.Tok), node.Span.Start, node.Span.End)
		} else {
			fmt.Fprintf(w, "%s%s %d-%d\n", indent, node.Delim.String(), node.Span.Start, node.Span.End)
		}
		return true
	})
}

// TreeString renders the outline into a string, mostly for tests and golden
// comparisons.
func TreeString(tree *token.TokenTree) string {
	var sb strings.Builder
	WriteTree(&sb, tree)
	return sb.String()
}

func seqMark(tok token.Token) string {
	if tok.Adj == token.AdjSequential {
		return " seq"
	}
	return ""
}
