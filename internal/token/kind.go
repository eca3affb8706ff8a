package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// IntLit represents an unsigned decimal integer literal.
	IntLit
	// StringLit represents one decoded literal fragment of a string.
	StringLit

	// Plus represents the '+' operator.
	Plus // +
	// Assign represents the '=' operator.
	Assign // =
	// Dot represents the '.' member-access operator.
	Dot // .

	// Comment represents a line or block comment. The payload is discarded;
	// the span is retained so indentation measurement stays correct.
	Comment
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case Ident:
		return "Ident"
	case IntLit:
		return "IntLit"
	case StringLit:
		return "StringLit"
	case Plus:
		return "Plus"
	case Assign:
		return "Assign"
	case Dot:
		return "Dot"
	case Comment:
		return "Comment"
	}
	return "Unknown"
}

// IsBare reports whether the token participates in juxtaposition sequences.
func (k Kind) IsBare() bool {
	return k == Ident || k == IntLit
}

// IsOperator reports whether the token is one of the anvil operators.
func (k Kind) IsOperator() bool {
	switch k {
	case Plus, Assign, Dot:
		return true
	default:
		return false
	}
}
