package lexer

import (
	"fmt"

	"anvil/internal/diag"
	"anvil/internal/source"
	"anvil/internal/token"
)

// blockFrame is one open indentation level while grouping lines.
type blockFrame struct {
	indent   uint32 // leading whitespace bytes that opened the level
	start    uint32 // byte offset of the level's first line
	children []token.TokenTree
}

// lexFile is the outermost driver: it partitions the source into logical
// lines, measures each line's leading whitespace, and folds strictly deeper
// lines into nested Block trees. A dedent must land on a previously opened
// level. The result is one top-level Block spanning the whole buffer.
func (lx *Lexer) lexFile() (token.TokenTree, *Error) {
	stack := []blockFrame{{indent: 0, start: 0}}

	for !lx.cursor.EOF() {
		lineStart := lx.cursor.Off
		lx.skipInline()
		indent := lx.cursor.Off - lineStart

		if lx.cursor.EOF() {
			break
		}
		if lx.cursor.Peek() == '\n' {
			// Blank line: no tokens, no level change.
			lx.cursor.Bump()
			continue
		}

		top := &stack[len(stack)-1]
		switch {
		case indent > top.indent:
			stack = append(stack, blockFrame{indent: indent, start: lineStart})

		case indent < top.indent:
			for len(stack) > 1 && stack[len(stack)-1].indent > indent {
				stack = lx.closeBlock(stack, lineStart)
			}
			if stack[len(stack)-1].indent != indent {
				sp := source.Span{File: lx.file.ID, Start: lineStart, End: lx.cursor.Off}
				return token.TokenTree{}, lx.fail(diag.LexInconsistentIndent, sp,
					fmt.Sprintf("dedent to %d leading whitespace bytes, which matches no open block", indent))
			}
		}

		if err := lx.lexLine(&stack[len(stack)-1]); err != nil {
			return token.TokenTree{}, err
		}
	}

	end := lx.cursor.Off
	for len(stack) > 1 {
		stack = lx.closeBlock(stack, end)
	}

	root := stack[0]
	rootSpan := source.Span{File: lx.file.ID, Start: 0, End: end}
	return token.Group(token.DelimBlock, rootSpan, root.children), nil
}

// closeBlock pops the deepest frame and attaches it to its parent as a Block
// tree. Block spans run from the first byte of their first line through end,
// so sibling blocks tile their parent's line range.
func (lx *Lexer) closeBlock(stack []blockFrame, end uint32) []blockFrame {
	closed := stack[len(stack)-1]
	stack = stack[:len(stack)-1]
	parent := &stack[len(stack)-1]
	sp := source.Span{File: lx.file.ID, Start: closed.start, End: end}
	parent.children = append(parent.children, token.Group(token.DelimBlock, sp, closed.children))
	return stack
}

// lexLine scans one logical line's token trees into the current frame. A
// group or string opened on the line may consume newlines, so the line ends
// at the first newline seen at nesting depth zero.
func (lx *Lexer) lexLine(frame *blockFrame) *Error {
	for {
		lx.skipInline()
		if lx.cursor.EOF() {
			return nil
		}
		if lx.cursor.Peek() == '\n' {
			lx.cursor.Bump()
			return nil
		}
		tt, err := lx.lexTree(0)
		if err != nil {
			return err
		}
		frame.children = append(frame.children, tt)
	}
}
