// Package treewire serializes lexed token trees with msgpack for reuse
// across runs. Payloads carry a schema version and the source content hash;
// either mismatching makes a stored tree stale.
package treewire

import (
	"errors"

	"github.com/vmihailenco/msgpack/v5"

	"anvil/internal/source"
	"anvil/internal/token"
)

// Increment when the wire format changes.
const schemaVersion uint16 = 1

var (
	// ErrSchemaMismatch means the payload was written by an incompatible version.
	ErrSchemaMismatch = errors.New("treewire: schema version mismatch")
	// ErrHashMismatch means the source file changed since the payload was written.
	ErrHashMismatch = errors.New("treewire: content hash mismatch")
)

// wireNode flattens one TokenTree node. Leaf fields stay zero for groups and
// vice versa, which msgpack encodes compactly.
type wireNode struct {
	Delim    uint8
	Start    uint32
	End      uint32
	Kind     uint8
	Text     string
	Value    uint64
	Suffix   uint8
	Adj      uint8
	Children []wireNode
}

type payload struct {
	Schema      uint16
	Path        string
	ContentHash [32]byte
	Root        wireNode
}

// Encode serializes a lexed tree together with the file's identity.
func Encode(f *source.File, tree *token.TokenTree) ([]byte, error) {
	p := payload{
		Schema:      schemaVersion,
		Path:        f.Path,
		ContentHash: f.Hash,
		Root:        toWire(tree),
	}
	return msgpack.Marshal(&p)
}

// Decode deserializes a payload back into a token tree whose spans point at
// f. A non-nil f is validated against the stored content hash.
func Decode(data []byte, f *source.File) (token.TokenTree, error) {
	var p payload
	if err := msgpack.Unmarshal(data, &p); err != nil {
		return token.TokenTree{}, err
	}
	if p.Schema != schemaVersion {
		return token.TokenTree{}, ErrSchemaMismatch
	}
	var fileID source.FileID
	if f != nil {
		if p.ContentHash != f.Hash {
			return token.TokenTree{}, ErrHashMismatch
		}
		fileID = f.ID
	}
	return fromWire(&p.Root, fileID), nil
}

func toWire(tt *token.TokenTree) wireNode {
	n := wireNode{
		Delim: uint8(tt.Delim),
		Start: tt.Span.Start,
		End:   tt.Span.End,
	}
	if tt.IsLeaf() {
		n.Kind = uint8(tt.Tok.Kind)
		n.Text = tt.Tok.Text
		n.Value = tt.Tok.Value
		n.Suffix = uint8(tt.Tok.Suffix)
		n.Adj = uint8(tt.Tok.Adj)
		return n
	}
	for i := range tt.Children {
		n.Children = append(n.Children, toWire(&tt.Children[i]))
	}
	return n
}

func fromWire(n *wireNode, fileID source.FileID) token.TokenTree {
	sp := source.Span{File: fileID, Start: n.Start, End: n.End}
	if token.Delim(n.Delim) == token.DelimNone {
		return token.Leaf(token.Token{
			Kind:   token.Kind(n.Kind),
			Span:   sp,
			Text:   n.Text,
			Value:  n.Value,
			Suffix: token.IntSuffix(n.Suffix),
			Adj:    token.Adjacency(n.Adj),
		})
	}
	var children []token.TokenTree
	for i := range n.Children {
		children = append(children, fromWire(&n.Children[i], fileID))
	}
	return token.Group(token.Delim(n.Delim), sp, children)
}
