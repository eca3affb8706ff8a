package diagfmt

import (
	"encoding/json"
	"io"

	"anvil/internal/diag"
	"anvil/internal/source"
	"anvil/internal/token"
)

type diagOut struct {
	Severity string    `json:"severity"`
	Code     string    `json:"code"`
	Message  string    `json:"message"`
	File     string    `json:"file"`
	Start    uint32    `json:"start"`
	End      uint32    `json:"end"`
	Line     uint32    `json:"line,omitempty"`
	Col      uint32    `json:"col,omitempty"`
	Expected []string  `json:"expected,omitempty"`
	Notes    []noteOut `json:"notes,omitempty"`
}

type noteOut struct {
	Message string `json:"message"`
	File    string `json:"file"`
	Start   uint32 `json:"start"`
	End     uint32 `json:"end"`
	Line    uint32 `json:"line,omitempty"`
	Col     uint32 `json:"col,omitempty"`
}

// DiagJSON writes the bag as a JSON array, one object per diagnostic.
func DiagJSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	out := make([]diagOut, 0, bag.Len())
	for _, d := range bag.Items() {
		entry := diagOut{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Message:  d.Message,
			File:     fs.Get(d.Primary.File).Path,
			Start:    d.Primary.Start,
			End:      d.Primary.End,
			Expected: d.Expected,
		}
		if opts.IncludePositions {
			start, _ := fs.Resolve(d.Primary)
			entry.Line = start.Line
			entry.Col = start.Col
		}
		if opts.IncludeNotes {
			for _, n := range d.Notes {
				nout := noteOut{
					Message: n.Msg,
					File:    fs.Get(n.Span.File).Path,
					Start:   n.Span.Start,
					End:     n.Span.End,
				}
				if opts.IncludePositions {
					nstart, _ := fs.Resolve(n.Span)
					nout.Line = nstart.Line
					nout.Col = nstart.Col
				}
				entry.Notes = append(entry.Notes, nout)
			}
		}
		out = append(out, entry)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

type treeOut struct {
	Delim    string    `json:"delim,omitempty"`
	Kind     string    `json:"kind,omitempty"`
	Text     string    `json:"text,omitempty"`
	Value    uint64    `json:"value,omitempty"`
	Suffix   string    `json:"suffix,omitempty"`
	Adj      string    `json:"adj,omitempty"`
	Start    uint32    `json:"start"`
	End      uint32    `json:"end"`
	Children []treeOut `json:"children,omitempty"`
}

// TreeJSON writes the token tree as nested JSON objects mirroring the tree
// shape. Leaves carry kind/text/value, groups carry delim and children.
func TreeJSON(w io.Writer, tree *token.TokenTree) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(treeToOut(tree))
}

func treeToOut(tt *token.TokenTree) treeOut {
	out := treeOut{
		Start: tt.Span.Start,
		End:   tt.Span.End,
	}
	if tt.IsLeaf() {
		out.Kind = tt.Tok.Kind.String()
		out.Text = tt.Tok.Text
		if tt.Tok.Kind == token.IntLit {
			out.Value = tt.Tok.Value
			if tt.Tok.Suffix != token.SuffixNone {
				out.Suffix = tt.Tok.Suffix.String()
			}
		}
		if tt.Tok.Adj != token.AdjNone {
			out.Adj = tt.Tok.Adj.String()
		}
		return out
	}
	out.Delim = tt.Delim.String()
	out.Children = make([]treeOut, 0, len(tt.Children))
	for i := range tt.Children {
		out.Children = append(out.Children, treeToOut(&tt.Children[i]))
	}
	return out
}
