package fs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/wiredoc"
)

// indexFile is the name of the consolidated index under the corpus root.
const indexFile = "index.json"

// Ensure IndexStore implements wiredoc.IndexService at compile time.
var _ wiredoc.IndexService = (*IndexStore)(nil)

// IndexStore persists the search index as a single JSON file.
type IndexStore struct {
	dir string
}

// NewIndexStore creates a new IndexStore rooted at dir.
func NewIndexStore(dir string) *IndexStore {
	return &IndexStore{dir: dir}
}

func (s *IndexStore) path() string {
	return filepath.Join(s.dir, indexFile)
}

// WriteIndex replaces the index file. The new index is written to a
// temporary file and renamed over the old one.
func (s *IndexStore) WriteIndex(ctx context.Context, idx *wiredoc.Index) error {
	if idx.Topics == nil {
		idx.Topics = []wiredoc.TopicEntry{}
	}
	if idx.Directives == nil {
		idx.Directives = []wiredoc.DirectiveEntry{}
	}
	return writeJSON(s.path(), idx)
}

// ReadIndex loads the index file. Returns ENOTFOUND if no index has been
// written yet.
func (s *IndexStore) ReadIndex(ctx context.Context) (*wiredoc.Index, error) {
	data, err := os.ReadFile(s.path())
	if errors.Is(err, os.ErrNotExist) {
		return nil, wiredoc.Errorf(wiredoc.ENOTFOUND, "index not found; run 'wiredoc reindex' first")
	} else if err != nil {
		return nil, err
	}

	var idx wiredoc.Index
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", indexFile, err)
	}
	return &idx, nil
}
