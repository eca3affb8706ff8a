package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"anvil/internal/source"
	"anvil/internal/token"
)

// CheckTreeInvariants runs structural invariants on a lexed token tree:
// 1) the root is a Block whose span starts at 0 and ends at the content end
// 2) every node span is well-formed, points at sf, and stays in bounds
// 3) children are ordered, non-overlapping, and contained in their parent
// 4) leaves carry DelimNone and a token span equal to the node span
// 5) bare tokens are adjacency-tagged, non-bare tokens are not
// 6) Interpolation groups hold only string fragments and Curly splices,
// with no two literal fragments in a row
func CheckTreeInvariants(tree *token.TokenTree, sf *source.File) error {
	if tree == nil || sf == nil {
		return fmt.Errorf("nil tree or file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	if tree.Delim != token.DelimBlock {
		return fmt.Errorf("root delim is %s, want Block", tree.Delim)
	}
	if tree.Span.Start != 0 || tree.Span.End != lenContent {
		return fmt.Errorf("root span %v does not cover content 0-%d", tree.Span, lenContent)
	}
	return checkNode(tree, sf.ID, lenContent)
}

func checkNode(node *token.TokenTree, fileID source.FileID, lenContent uint32) error {
	sp := node.Span
	if sp.File != fileID {
		return fmt.Errorf("span %v points at file %d, want %d", sp, sp.File, fileID)
	}
	if sp.Start > sp.End {
		return fmt.Errorf("inverted span %v", sp)
	}
	if sp.End > lenContent {
		return fmt.Errorf("span %v beyond content end %d", sp, lenContent)
	}

	if node.IsLeaf() {
		return checkLeaf(node)
	}

	prevEnd := sp.Start
	for i := range node.Children {
		child := &node.Children[i]
		if child.Span.Start < prevEnd {
			return fmt.Errorf("child %d span %v overlaps or precedes previous end %d", i, child.Span, prevEnd)
		}
		if child.Span.End > sp.End {
			return fmt.Errorf("child %d span %v escapes parent %v", i, child.Span, sp)
		}
		if err := checkNode(child, fileID, lenContent); err != nil {
			return err
		}
		prevEnd = child.Span.End
	}

	if node.Delim == token.DelimInterp {
		return checkInterp(node)
	}
	return nil
}

func checkLeaf(node *token.TokenTree) error {
	tok := node.Tok
	if tok.Span != node.Span {
		return fmt.Errorf("leaf span %v differs from token span %v", node.Span, tok.Span)
	}
	switch tok.Kind {
	case token.Invalid, token.EOF:
		return fmt.Errorf("leaf with kind %s at %v", tok.Kind, tok.Span)
	}
	if tok.IsBare() && tok.Adj == token.AdjNone {
		return fmt.Errorf("bare token %s at %v is not adjacency-tagged", tok, tok.Span)
	}
	if !tok.IsBare() && tok.Adj != token.AdjNone {
		return fmt.Errorf("non-bare token %s at %v carries adjacency %s", tok, tok.Span, tok.Adj)
	}
	return nil
}

func checkInterp(node *token.TokenTree) error {
	prevWasLit := false
	for i := range node.Children {
		child := &node.Children[i]
		switch {
		case child.IsLeaf() && child.Tok.Kind == token.StringLit:
			if prevWasLit {
				return fmt.Errorf("adjacent string fragments at %v", child.Span)
			}
			prevWasLit = true
		case child.Delim == token.DelimCurly:
			prevWasLit = false
		default:
			return fmt.Errorf("unexpected interpolation child at %v", child.Span)
		}
	}
	return nil
}
