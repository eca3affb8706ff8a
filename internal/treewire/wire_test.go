package treewire

import (
	"reflect"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"anvil/internal/lexer"
	"anvil/internal/source"
	"anvil/internal/token"
)

func lexFile(t *testing.T, fs *source.FileSet, name, input string) (token.TokenTree, *source.File) {
	t.Helper()
	fid := fs.AddVirtual(name, []byte(input))
	f := fs.Get(fid)
	tree, err := lexer.Lex(f, lexer.Options{})
	if err != nil {
		t.Fatalf("lex %q: %v", input, err)
	}
	return tree, f
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"a\n  b\nc\n",
		`f (x + 1u8) . y` + "\n",
		`"a${1+2}b"` + "\n",
		"",
	}
	for _, input := range inputs {
		fs := source.NewFileSet()
		tree, f := lexFile(t, fs, "test.an", input)

		data, err := Encode(f, &tree)
		if err != nil {
			t.Fatalf("encode %q: %v", input, err)
		}
		got, err := Decode(data, f)
		if err != nil {
			t.Fatalf("decode %q: %v", input, err)
		}
		if !reflect.DeepEqual(got, tree) {
			t.Errorf("round trip changed tree for %q:\ngot  %+v\nwant %+v", input, got, tree)
		}
	}
}

func TestDecodeRejectsSchemaMismatch(t *testing.T) {
	data, err := msgpack.Marshal(&payload{Schema: schemaVersion + 1})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if _, err := Decode(data, nil); err != ErrSchemaMismatch {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
}

func TestDecodeRejectsHashMismatch(t *testing.T) {
	fs := source.NewFileSet()
	tree, f := lexFile(t, fs, "test.an", "a\n")

	data, err := Encode(f, &tree)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	otherID := fs.AddVirtual("other.an", []byte("b\n"))
	if _, err := Decode(data, fs.Get(otherID)); err != ErrHashMismatch {
		t.Fatalf("expected ErrHashMismatch, got %v", err)
	}
}

func TestDecodeWithoutFileSkipsHashCheck(t *testing.T) {
	fs := source.NewFileSet()
	tree, f := lexFile(t, fs, "test.an", "a + b\n")

	data, err := Encode(f, &tree)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := Decode(data, nil)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	// Spans lose their file ID when no file is supplied.
	if got.CountLeaves() != tree.CountLeaves() {
		t.Fatalf("leaf count changed: got %d want %d", got.CountLeaves(), tree.CountLeaves())
	}
}

func TestCacheRoundTrip(t *testing.T) {
	cache, err := OpenCache(t.TempDir())
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}

	fs := source.NewFileSet()
	tree, f := lexFile(t, fs, "test.an", "f x\n  y\n")

	if _, hit, err := cache.Get(f); err != nil || hit {
		t.Fatalf("expected cold miss, hit=%v err=%v", hit, err)
	}
	if err := cache.Put(f, &tree); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, hit, err := cache.Get(f)
	if err != nil || !hit {
		t.Fatalf("expected hit, hit=%v err=%v", hit, err)
	}
	if !reflect.DeepEqual(got, tree) {
		t.Errorf("cache changed tree:\ngot  %+v\nwant %+v", got, tree)
	}

	// A different content hash misses even with the same path.
	changedID := fs.AddVirtual("test.an", []byte("f x\n  z\n"))
	if _, hit, err := cache.Get(fs.Get(changedID)); err != nil || hit {
		t.Fatalf("expected miss for changed content, hit=%v err=%v", hit, err)
	}
}
