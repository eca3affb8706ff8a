package token

import (
	"fmt"

	"anvil/internal/source"
)

// Adjacency tags a bare token by whether more bare tokens follow it on the
// same line. The tag never alters the token value; a later parsing stage uses
// it to reconstruct juxtaposition-based application without reparsing.
type Adjacency uint8

const (
	// AdjNone marks tokens that do not participate in juxtaposition.
	AdjNone Adjacency = iota
	// AdjSequential marks a bare token with another bare token ahead.
	AdjSequential
	// AdjTerminal marks the final bare token of a sequence.
	AdjTerminal
)

func (a Adjacency) String() string {
	switch a {
	case AdjNone:
		return "None"
	case AdjSequential:
		return "Sequential"
	case AdjTerminal:
		return "Terminal"
	}
	return "Unknown"
}

// Token represents a single leaf lexical unit with its location.
type Token struct {
	Kind   Kind
	Span   source.Span
	Text   string    // identifier text or decoded string fragment
	Value  uint64    // IntLit only
	Suffix IntSuffix // IntLit only
	Adj    Adjacency // bare tokens only
}

// IsBare reports whether the token participates in juxtaposition sequences.
func (t Token) IsBare() bool { return t.Kind.IsBare() }

func (t Token) String() string {
	switch t.Kind {
	case Ident:
		return fmt.Sprintf("Ident(%s)", t.Text)
	case IntLit:
		if t.Suffix != SuffixNone {
			return fmt.Sprintf("Int(%d%s)", t.Value, t.Suffix)
		}
		return fmt.Sprintf("Int(%d)", t.Value)
	case StringLit:
		return fmt.Sprintf("Str(%q)", t.Text)
	default:
		return t.Kind.String()
	}
}
