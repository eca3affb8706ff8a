package diag

import (
	"fmt"
	"sort"
	"strings"

	"anvil/internal/source"
)

type goldenDiagnostic struct {
	Severity string
	Code     string
	Path     string
	Line     uint32
	Column   uint32
	Message  string
}

// FormatGolden renders diagnostics into a stable, single-line-per-entry
// representation suitable for golden files. Entries are sorted
// deterministically and returned as a single string (empty when the bag holds
// nothing).
func FormatGolden(bag *Bag, fs *source.FileSet, includeNotes bool) string {
	if fs == nil || bag == nil || bag.Len() == 0 {
		return ""
	}

	rendered := make([]goldenDiagnostic, 0, bag.Len())
	for _, d := range bag.Items() {
		start, _ := fs.Resolve(d.Primary)
		f := fs.Get(d.Primary.File)
		rendered = append(rendered, goldenDiagnostic{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Path:     f.Path,
			Line:     start.Line,
			Column:   start.Col,
			Message:  d.Message,
		})
		if includeNotes {
			for _, n := range d.Notes {
				nstart, _ := fs.Resolve(n.Span)
				rendered = append(rendered, goldenDiagnostic{
					Severity: "NOTE",
					Code:     d.Code.ID(),
					Path:     fs.Get(n.Span.File).Path,
					Line:     nstart.Line,
					Column:   nstart.Col,
					Message:  n.Msg,
				})
			}
		}
	}

	sort.SliceStable(rendered, func(i, j int) bool {
		di, dj := rendered[i], rendered[j]
		if di.Path != dj.Path {
			return di.Path < dj.Path
		}
		if di.Line != dj.Line {
			return di.Line < dj.Line
		}
		if di.Column != dj.Column {
			return di.Column < dj.Column
		}
		if di.Severity != dj.Severity {
			return di.Severity < dj.Severity
		}
		return di.Code < dj.Code
	})

	var sb strings.Builder
	for _, g := range rendered {
		fmt.Fprintf(&sb, "%s %s %s:%d:%d %s\n", g.Severity, g.Code, g.Path, g.Line, g.Column, g.Message)
	}
	return sb.String()
}
