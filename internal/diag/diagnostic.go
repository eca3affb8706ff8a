package diag

import (
	"anvil/internal/source"
)

// Note is a secondary span attached to a diagnostic for extra context.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic captures a single finding with its position and context.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
	// Expected lists the lexical alternatives acceptable at Primary.Start.
	// Only expectation-set errors (LexUnexpectedChar) populate it.
	Expected []string
}
