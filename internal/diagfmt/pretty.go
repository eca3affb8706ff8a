package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"anvil/internal/diag"
	"anvil/internal/source"
)

// Pretty formats diagnostics in a human-readable way. It walks bag.Items()
// (call bag.Sort() first if a stable order matters) and prints for each one:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed by the source line with a ^~~~ underline covering the primary span,
// the expected-alternative list when present, and notes when enabled.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil || fs == nil {
		return
	}
	for _, d := range bag.Items() {
		prettyOne(w, d, fs, opts)
	}
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	start, _ := fs.Resolve(d.Primary)
	f := fs.Get(d.Primary.File)

	sev := d.Severity.String()
	if opts.Color {
		sev = severityColor(d.Severity).Sprint(sev)
	}
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", f.Path, start.Line, start.Col, sev, d.Code.ID(), d.Message)

	if len(d.Expected) > 0 {
		fmt.Fprintf(w, "  expected %s\n", strings.Join(d.Expected, ", "))
	}

	if !opts.NoContext {
		writeContext(w, f, d.Primary, start, opts)
	}

	if opts.ShowNotes {
		for _, n := range d.Notes {
			nstart, _ := fs.Resolve(n.Span)
			nf := fs.Get(n.Span.File)
			fmt.Fprintf(w, "%s:%d:%d: note: %s\n", nf.Path, nstart.Line, nstart.Col, n.Msg)
			if !opts.NoContext {
				writeContext(w, nf, n.Span, nstart, opts)
			}
		}
	}
}

// writeContext prints the source line holding the span start plus a caret
// underline. Columns are byte-based, so the underline offset is computed from
// the display width of the byte prefix, which keeps carets aligned under
// multi-byte and wide runes.
func writeContext(w io.Writer, f *source.File, sp source.Span, start source.LineCol, opts PrettyOpts) {
	line := f.GetLine(start.Line)
	if line == "" && sp.Len() == 0 {
		return
	}
	fmt.Fprintf(w, "  %s\n", line)

	prefixCols := 0
	if int(start.Col)-1 <= len(line) {
		prefixCols = runewidth.StringWidth(line[:start.Col-1])
	}

	marked := spanOnLine(line, start.Col, sp)
	width := runewidth.StringWidth(marked)
	if width < 1 {
		width = 1
	}
	underline := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		underline = color.New(color.FgHiRed, color.Bold).Sprint(underline)
	}
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", prefixCols), underline)
}

// spanOnLine clamps the spanned text to the line that holds its start.
func spanOnLine(line string, startCol uint32, sp source.Span) string {
	from := int(startCol) - 1
	if from < 0 || from > len(line) {
		return ""
	}
	to := from + int(sp.Len())
	if to > len(line) {
		to = len(line)
	}
	return line[from:to]
}

func severityColor(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold)
	case diag.SevInfo:
		return color.New(color.FgCyan)
	}
	return color.New(color.Reset)
}
