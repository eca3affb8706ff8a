// Package diagfmt renders diagnostics and token trees for humans and tools.
//
// Pretty writes compiler-style diagnostics with source context and a caret
// underline. WriteTree dumps the nested token tree as an indented outline.
// The JSON variants produce stable machine-readable output.
package diagfmt
