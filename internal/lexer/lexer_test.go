package lexer_test

import (
	"errors"
	"strings"
	"testing"

	"anvil/internal/diag"
	"anvil/internal/lexer"
	"anvil/internal/source"
	"anvil/internal/token"
)

// lexInput runs the lexer over a virtual file and returns the tree, the
// error, and the bag that collected the diagnostics.
func lexInput(t *testing.T, input string, opts lexer.Options) (token.TokenTree, *diag.Bag, error) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.an", []byte(input))

	bag := diag.NewBag(4)
	opts.Reporter = diag.BagReporter{Bag: bag}
	tree, err := lexer.Lex(fs.Get(id), opts)
	return tree, bag, err
}

// mustLex fails the test on any lex error.
func mustLex(t *testing.T, input string) token.TokenTree {
	t.Helper()
	tree, _, err := lexInput(t, input, lexer.Options{})
	if err != nil {
		t.Fatalf("Lex(%q) failed: %v", input, err)
	}
	return tree
}

// mustFail asserts the run fails with the given code and returns the error.
func mustFail(t *testing.T, input string, code diag.Code) *lexer.Error {
	t.Helper()
	_, bag, err := lexInput(t, input, lexer.Options{})
	if err == nil {
		t.Fatalf("Lex(%q) unexpectedly succeeded", input)
	}
	var lexErr *lexer.Error
	if !errors.As(err, &lexErr) {
		t.Fatalf("Lex(%q) returned %T, want *lexer.Error", input, err)
	}
	if lexErr.Code != code {
		t.Fatalf("Lex(%q) failed with %s, want %s", input, lexErr.Code.ID(), code.ID())
	}
	if bag.Len() != 1 {
		t.Fatalf("expected exactly one diagnostic, got %d", bag.Len())
	}
	if bag.Items()[0].Code != code {
		t.Fatalf("reported code %s, want %s", bag.Items()[0].Code.ID(), code.ID())
	}
	return lexErr
}

func leafKinds(tt token.TokenTree) []token.Kind {
	kinds := make([]token.Kind, 0, len(tt.Children))
	for _, c := range tt.Children {
		if c.IsLeaf() {
			kinds = append(kinds, c.Tok.Kind)
		} else {
			kinds = append(kinds, token.Invalid)
		}
	}
	return kinds
}

func TestIntegerLiterals(t *testing.T) {
	tests := []struct {
		input  string
		value  uint64
		suffix token.IntSuffix
	}{
		{"123", 123, token.SuffixNone},
		{"0", 0, token.SuffixNone},
		{"123i8", 123, token.SuffixI8},
		{"5isz", 5, token.SuffixIsz},
		{"7u64", 7, token.SuffixU64},
		{"42usz", 42, token.SuffixUsz},
		{"18446744073709551615", 18446744073709551615, token.SuffixNone},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tree := mustLex(t, tt.input)
			if len(tree.Children) != 1 {
				t.Fatalf("got %d children, want 1", len(tree.Children))
			}
			tok := tree.Children[0].Tok
			if tok.Kind != token.IntLit {
				t.Fatalf("kind = %s, want IntLit", tok.Kind)
			}
			if tok.Value != tt.value {
				t.Errorf("value = %d, want %d", tok.Value, tt.value)
			}
			if tok.Suffix != tt.suffix {
				t.Errorf("suffix = %s, want %s", tok.Suffix, tt.suffix)
			}
		})
	}
}

func TestIntegerSuffixNotFollowedByIdent(t *testing.T) {
	// "123i8x" lexes as Int(123) then Ident("i8x"): the run after the digits
	// is not exactly a suffix, so it rewinds and lexes separately.
	tree := mustLex(t, "123i8x")
	if len(tree.Children) != 2 {
		t.Fatalf("got %d children, want 2", len(tree.Children))
	}

	intTok := tree.Children[0].Tok
	if intTok.Kind != token.IntLit || intTok.Value != 123 || intTok.Suffix != token.SuffixNone {
		t.Errorf("first token = %s, want Int(123) without suffix", intTok)
	}
	if intTok.Adj != token.AdjSequential {
		t.Errorf("Int(123) adjacency = %s, want Sequential", intTok.Adj)
	}

	identTok := tree.Children[1].Tok
	if identTok.Kind != token.Ident || identTok.Text != "i8x" {
		t.Errorf("second token = %s, want Ident(i8x)", identTok)
	}
	if identTok.Adj != token.AdjTerminal {
		t.Errorf("Ident(i8x) adjacency = %s, want Terminal", identTok.Adj)
	}
}

func TestIntegerOverflow(t *testing.T) {
	lexErr := mustFail(t, "18446744073709551616", diag.LexIntOverflow)
	if lexErr.Span.Start != 0 || lexErr.Span.End != 20 {
		t.Errorf("overflow span = %v, want 0-20", lexErr.Span)
	}
}

func TestOperators(t *testing.T) {
	tree := mustLex(t, "a + b = c.d")
	want := []token.Kind{
		token.Ident, token.Plus, token.Ident, token.Assign,
		token.Ident, token.Dot, token.Ident,
	}
	got := leafKinds(tree)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens (%v), want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestAdjacencyTagging(t *testing.T) {
	// "f x" is two identifiers: f has a bare token ahead, x is final.
	tree := mustLex(t, "f x")
	if len(tree.Children) != 2 {
		t.Fatalf("got %d children, want 2", len(tree.Children))
	}
	if adj := tree.Children[0].Tok.Adj; adj != token.AdjSequential {
		t.Errorf("f adjacency = %s, want Sequential", adj)
	}
	if adj := tree.Children[1].Tok.Adj; adj != token.AdjTerminal {
		t.Errorf("x adjacency = %s, want Terminal", adj)
	}
}

func TestAdjacencyStopsAtNonBare(t *testing.T) {
	// An operator ahead does not make a bare token sequential.
	tree := mustLex(t, "f + x")
	if adj := tree.Children[0].Tok.Adj; adj != token.AdjTerminal {
		t.Errorf("f adjacency = %s, want Terminal", adj)
	}
	// Operators themselves carry no tag.
	if adj := tree.Children[1].Tok.Adj; adj != token.AdjNone {
		t.Errorf("+ adjacency = %s, want None", adj)
	}
}

func TestStringInterpolation(t *testing.T) {
	tree := mustLex(t, `"a${1+2}b"`)
	if len(tree.Children) != 1 {
		t.Fatalf("got %d children, want 1", len(tree.Children))
	}

	str := tree.Children[0]
	if str.Delim != token.DelimInterp {
		t.Fatalf("delim = %s, want Interpolation", str.Delim)
	}
	if len(str.Children) != 3 {
		t.Fatalf("interpolation has %d fragments, want 3", len(str.Children))
	}

	if tok := str.Children[0].Tok; tok.Kind != token.StringLit || tok.Text != "a" {
		t.Errorf("fragment 0 = %s, want Str(a)", tok)
	}

	splice := str.Children[1]
	if splice.Delim != token.DelimCurly {
		t.Fatalf("fragment 1 delim = %s, want Curly", splice.Delim)
	}
	spliceKinds := leafKinds(splice)
	wantSplice := []token.Kind{token.IntLit, token.Plus, token.IntLit}
	for i := range wantSplice {
		if spliceKinds[i] != wantSplice[i] {
			t.Errorf("splice token %d = %s, want %s", i, spliceKinds[i], wantSplice[i])
		}
	}

	if tok := str.Children[2].Tok; tok.Kind != token.StringLit || tok.Text != "b" {
		t.Errorf("fragment 2 = %s, want Str(b)", tok)
	}
}

func TestEmptyString(t *testing.T) {
	tree := mustLex(t, `""`)
	str := tree.Children[0]
	if str.Delim != token.DelimInterp {
		t.Fatalf("delim = %s, want Interpolation", str.Delim)
	}
	if len(str.Children) != 0 {
		t.Errorf("empty string has %d fragments, want 0", len(str.Children))
	}
	if str.Span.Start != 0 || str.Span.End != 2 {
		t.Errorf("span = %v, want 0-2", str.Span)
	}
}

func TestStringEscapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"newline", `"a\nb"`, "a\nb"},
		{"tab", `"\t"`, "\t"},
		{"carriage return", `"\r"`, "\r"},
		{"backslash", `"\\"`, `\`},
		{"dollar", `"\$"`, "$"},
		{"quote", `"\""`, `"`},
		{"nul", `"\0"`, "\x00"},
		{"lone dollar is literal", `"price: 5$"`, "price: 5$"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := mustLex(t, tt.input)
			str := tree.Children[0]
			if len(str.Children) != 1 {
				t.Fatalf("got %d fragments, want 1", len(str.Children))
			}
			if got := str.Children[0].Tok.Text; got != tt.want {
				t.Errorf("decoded = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStringMergesAroundEscapes(t *testing.T) {
	// One run, not three: escapes continue the surrounding literal fragment.
	tree := mustLex(t, `"a\nb\tc"`)
	str := tree.Children[0]
	if len(str.Children) != 1 {
		t.Fatalf("got %d fragments, want 1", len(str.Children))
	}
	if got := str.Children[0].Tok.Text; got != "a\nb\tc" {
		t.Errorf("decoded = %q", got)
	}
}

func TestInvalidEscape(t *testing.T) {
	lexErr := mustFail(t, `"\q"`, diag.LexInvalidEscape)
	if lexErr.Span.Start != 2 || lexErr.Span.End != 3 {
		t.Errorf("escape error span = %v, want 2-3", lexErr.Span)
	}
}

func TestUnterminatedString(t *testing.T) {
	mustFail(t, `"abc`, diag.LexUnterminatedString)
	mustFail(t, `"a${1}`, diag.LexUnterminatedString)
}

func TestUnterminatedGroup(t *testing.T) {
	lexErr := mustFail(t, "(a", diag.LexUnterminatedGroup)
	if lexErr.Span.Start != 0 {
		t.Errorf("group error span starts at %d, want 0", lexErr.Span.Start)
	}
	mustFail(t, `"${a`, diag.LexUnterminatedGroup)
}

func TestUnterminatedBlockComment(t *testing.T) {
	mustFail(t, "/* never closed", diag.LexUnterminatedComment)
}

func TestParenGroup(t *testing.T) {
	tree := mustLex(t, "f (a b)")
	if len(tree.Children) != 2 {
		t.Fatalf("got %d children, want 2", len(tree.Children))
	}
	group := tree.Children[1]
	if group.Delim != token.DelimParen {
		t.Fatalf("delim = %s, want Parenthesis", group.Delim)
	}
	if len(group.Children) != 2 {
		t.Fatalf("group has %d children, want 2", len(group.Children))
	}
	// Inside the group, adjacency still applies per line.
	if adj := group.Children[0].Tok.Adj; adj != token.AdjSequential {
		t.Errorf("a adjacency = %s, want Sequential", adj)
	}
}

func TestGroupSpansLines(t *testing.T) {
	// Newlines inside a group are padding; the logical line continues.
	tree := mustLex(t, "f (a\n  b)\nc")
	if len(tree.Children) != 3 {
		t.Fatalf("got %d children, want 3: f, group, c", len(tree.Children))
	}
	if tree.Children[1].Delim != token.DelimParen {
		t.Errorf("second child delim = %s, want Parenthesis", tree.Children[1].Delim)
	}
	if tok := tree.Children[2].Tok; tok.Kind != token.Ident || tok.Text != "c" {
		t.Errorf("third child = %s, want Ident(c)", tok)
	}
}

func TestIndentationBlocks(t *testing.T) {
	tree := mustLex(t, "a\n  b\nc\n")

	if tree.Delim != token.DelimBlock {
		t.Fatalf("root delim = %s, want Block", tree.Delim)
	}
	if tree.Span.Start != 0 || tree.Span.End != 8 {
		t.Errorf("root span = %v, want 0-8", tree.Span)
	}
	if len(tree.Children) != 3 {
		t.Fatalf("root has %d children, want 3", len(tree.Children))
	}

	if tok := tree.Children[0].Tok; tok.Kind != token.Ident || tok.Text != "a" {
		t.Errorf("child 0 = %s, want Ident(a)", tok)
	}

	nested := tree.Children[1]
	if nested.Delim != token.DelimBlock {
		t.Fatalf("child 1 delim = %s, want Block", nested.Delim)
	}
	if len(nested.Children) != 1 {
		t.Fatalf("nested block has %d children, want 1", len(nested.Children))
	}
	if tok := nested.Children[0].Tok; tok.Text != "b" {
		t.Errorf("nested child = %s, want Ident(b)", tok)
	}

	if tok := tree.Children[2].Tok; tok.Text != "c" {
		t.Errorf("child 2 = %s, want Ident(c)", tok)
	}
}

func TestDeepIndentation(t *testing.T) {
	tree := mustLex(t, "a\n  b\n    c\n  d\ne\n")
	// Block[a, Block[b, Block[c], d], e]
	if len(tree.Children) != 3 {
		t.Fatalf("root has %d children, want 3", len(tree.Children))
	}
	mid := tree.Children[1]
	if mid.Delim != token.DelimBlock || len(mid.Children) != 3 {
		t.Fatalf("mid block = %s with %d children, want Block with 3", mid.Delim, len(mid.Children))
	}
	inner := mid.Children[1]
	if inner.Delim != token.DelimBlock || len(inner.Children) != 1 {
		t.Fatalf("inner block wrong shape")
	}
	if inner.Children[0].Tok.Text != "c" {
		t.Errorf("inner child = %s, want c", inner.Children[0].Tok)
	}
}

func TestInconsistentIndentation(t *testing.T) {
	// Levels 0 and 4 are open; a dedent to 3 matches neither.
	mustFail(t, "a\n    b\n   c\n", diag.LexInconsistentIndent)
}

func TestBlankLinesDoNotCloseBlocks(t *testing.T) {
	tree := mustLex(t, "a\n  b\n\n  c\n")
	if len(tree.Children) != 2 {
		t.Fatalf("root has %d children, want 2", len(tree.Children))
	}
	nested := tree.Children[1]
	if nested.Delim != token.DelimBlock || len(nested.Children) != 2 {
		t.Fatalf("nested block has %d children, want b and c", len(nested.Children))
	}
}

func TestCommentsKeepSpans(t *testing.T) {
	tree := mustLex(t, "// heading\na\n")
	if len(tree.Children) != 2 {
		t.Fatalf("root has %d children, want 2", len(tree.Children))
	}
	comment := tree.Children[0].Tok
	if comment.Kind != token.Comment {
		t.Fatalf("first child = %s, want Comment", comment.Kind)
	}
	if comment.Text != "" {
		t.Errorf("comment payload = %q, want empty", comment.Text)
	}
	if comment.Span.Start != 0 || comment.Span.End != 10 {
		t.Errorf("comment span = %v, want 0-10", comment.Span)
	}
}

func TestBlockCommentInsideLine(t *testing.T) {
	tree := mustLex(t, "a /* note */ b")
	kinds := leafKinds(tree)
	want := []token.Kind{token.Ident, token.Comment, token.Ident}
	if len(kinds) != len(want) {
		t.Fatalf("got %v", kinds)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("token %d = %s, want %s", i, kinds[i], want[i])
		}
	}
	// A comment ahead is not a bare token.
	if adj := tree.Children[0].Tok.Adj; adj != token.AdjTerminal {
		t.Errorf("a adjacency = %s, want Terminal", adj)
	}
}

func TestUnexpectedCharacterExpectedSet(t *testing.T) {
	lexErr := mustFail(t, "@", diag.LexUnexpectedChar)
	if len(lexErr.Expected) == 0 {
		t.Fatal("expected set must not be empty")
	}
	joined := strings.Join(lexErr.Expected, ",")
	for _, alt := range []string{"identifier", "integer", "string", "'('"} {
		if !strings.Contains(joined, alt) {
			t.Errorf("expected set %v misses %q", lexErr.Expected, alt)
		}
	}
}

func TestUnexpectedCloserInGroupMentionsCloser(t *testing.T) {
	lexErr := mustFail(t, "(a }", diag.LexUnexpectedChar)
	if len(lexErr.Expected) == 0 || lexErr.Expected[0] != "')'" {
		t.Errorf("expected set %v should lead with \"')'\"", lexErr.Expected)
	}
}

func TestNestingDepthLimit(t *testing.T) {
	_, _, err := lexInput(t, "(((1)))", lexer.Options{MaxDepth: 2})
	var lexErr *lexer.Error
	if !errors.As(err, &lexErr) || lexErr.Code != diag.LexNestingTooDeep {
		t.Fatalf("err = %v, want LexNestingTooDeep", err)
	}

	// The same input passes with the default bound.
	if _, _, err := lexInput(t, "(((1)))", lexer.Options{}); err != nil {
		t.Errorf("default depth rejected shallow nesting: %v", err)
	}
}

func TestDeeplyNestedInterpolation(t *testing.T) {
	// Strings re-enter the grammar: a splice may contain another string.
	tree := mustLex(t, `"${"${1}"}"`)
	outer := tree.Children[0]
	if outer.Delim != token.DelimInterp {
		t.Fatalf("outer delim = %s", outer.Delim)
	}
	splice := outer.Children[0]
	if splice.Delim != token.DelimCurly {
		t.Fatalf("splice delim = %s", splice.Delim)
	}
	inner := splice.Children[0]
	if inner.Delim != token.DelimInterp {
		t.Fatalf("inner delim = %s", inner.Delim)
	}
	if inner.Children[0].Delim != token.DelimCurly {
		t.Fatalf("inner splice delim = %s", inner.Children[0].Delim)
	}
}

func TestEmptyInput(t *testing.T) {
	tree := mustLex(t, "")
	if tree.Delim != token.DelimBlock {
		t.Fatalf("root delim = %s, want Block", tree.Delim)
	}
	if len(tree.Children) != 0 {
		t.Errorf("empty input has %d children, want 0", len(tree.Children))
	}
	if !tree.Span.Empty() {
		t.Errorf("empty input span = %v, want empty", tree.Span)
	}
}

func TestInternerSharesIdentifiers(t *testing.T) {
	in := source.NewInterner()
	tree, _, err := lexInput(t, "foo foo foo", lexer.Options{Interner: in})
	if err != nil {
		t.Fatal(err)
	}
	if len(tree.Children) != 3 {
		t.Fatalf("got %d children", len(tree.Children))
	}
	// "", plus one entry for foo
	if in.Len() != 2 {
		t.Errorf("interner has %d entries, want 2", in.Len())
	}
}

func TestSpanInvariantsExample(t *testing.T) {
	tree := mustLex(t, "f (a\n  b)\nc\n\"s\"\n")
	var prevEnd uint32
	for i, c := range tree.Children {
		if c.Span.Start < prevEnd {
			t.Errorf("child %d overlaps previous sibling: %v", i, c.Span)
		}
		if c.Span.End < c.Span.Start {
			t.Errorf("child %d has inverted span: %v", i, c.Span)
		}
		prevEnd = c.Span.End
	}
}

func TestUnicodeIdentifiers(t *testing.T) {
	tree := mustLex(t, "αβ x")
	if len(tree.Children) != 2 {
		t.Fatalf("got %d children, want 2", len(tree.Children))
	}
	tok := tree.Children[0].Tok
	if tok.Kind != token.Ident || tok.Text != "αβ" {
		t.Errorf("token = %s, want Ident(αβ)", tok)
	}
	if tok.Adj != token.AdjSequential {
		t.Errorf("αβ adjacency = %s, want Sequential", tok.Adj)
	}
}
