package diag

// Severity ranks how serious a diagnostic is. Every lexical failure is
// fatal, so the lexer itself only emits SevError; the lower levels exist for
// secondary notes and for later front-end passes sharing this model.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

// String returns the upper-case label used in golden and pretty output.
func (s Severity) String() string {
	switch s {
	case SevError:
		return "ERROR"
	case SevWarning:
		return "WARNING"
	case SevInfo:
		return "INFO"
	default:
		return "UNKNOWN"
	}
}
