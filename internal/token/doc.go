// Package token defines lexical token kinds, integer suffixes, adjacency
// tags, and the spanned token-tree shape produced by the anvil lexer.
// Invariants:
//   - Token.Span matches the consumed source bytes exactly.
//   - Token.Text holds the identifier text or the decoded string fragment;
//     Comment tokens carry no payload, only a span.
//   - There is no keyword table: anvil keywords are resolved by a later stage.
//   - A TokenTree's children are contiguous, non-overlapping, and ordered by
//     position; a tree owns its children exclusively.
package token
