package diag

// Reporter is the minimal contract for receiving diagnostics from the lexer.
// Implementations: BagReporter (stores into a Bag), or test doubles.
type Reporter interface {
	Report(d Diagnostic)
}

// BagReporter forwards every diagnostic into a *Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(d Diagnostic) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(d)
}

// NopReporter discards all diagnostics.
type NopReporter struct{}

func (NopReporter) Report(Diagnostic) {}
