package lexer

import (
	"anvil/internal/diag"
	"anvil/internal/source"
)

// DefaultMaxDepth bounds group/splice/string nesting. The grammar is mutually
// recursive (strings re-enter the top grammar), so native call depth must stay
// bounded under adversarial input.
const DefaultMaxDepth = 128

type Options struct {
	// Reporter receives the single fatal diagnostic of a failed run.
	// May be nil: the error is still returned from Lex.
	Reporter diag.Reporter
	// Interner deduplicates identifier texts. May be nil.
	Interner *source.Interner
	// MaxDepth overrides DefaultMaxDepth when positive.
	MaxDepth int
}

func (o Options) maxDepth() int {
	if o.MaxDepth > 0 {
		return o.MaxDepth
	}
	return DefaultMaxDepth
}

func (lx *Lexer) report(d diag.Diagnostic) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(d)
	}
}
