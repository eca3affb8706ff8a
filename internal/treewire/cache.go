package treewire

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"anvil/internal/source"
	"anvil/internal/token"
)

// Cache stores encoded token trees on disk keyed by source content hash.
// Thread-safe for concurrent access.
type Cache struct {
	mu  sync.RWMutex
	dir string
}

// OpenCache initializes a cache rooted at dir, creating it if needed.
func OpenCache(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir}, nil
}

func (c *Cache) pathFor(hash [32]byte) string {
	return filepath.Join(c.dir, hex.EncodeToString(hash[:])+".mp")
}

// Put encodes the tree and writes it under the file's content hash. The
// write goes through a temp file and a rename so readers never observe a
// partial payload.
func (c *Cache) Put(f *source.File, tree *token.TokenTree) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := Encode(f, tree)
	if err != nil {
		return err
	}

	p := c.pathFor(f.Hash)
	tmp, err := os.CreateTemp(c.dir, "tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), p)
}

// Get loads the cached tree for the file, if a fresh one exists. Stale
// payloads (schema or hash mismatch) count as a miss, not an error.
func (c *Cache) Get(f *source.File) (token.TokenTree, bool, error) {
	if c == nil {
		return token.TokenTree{}, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.pathFor(f.Hash))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return token.TokenTree{}, false, nil
		}
		return token.TokenTree{}, false, err
	}

	tree, err := Decode(data, f)
	if err != nil {
		if errors.Is(err, ErrSchemaMismatch) || errors.Is(err, ErrHashMismatch) {
			return token.TokenTree{}, false, nil
		}
		return token.TokenTree{}, false, err
	}
	return tree, true, nil
}
