package wiredoc

import (
	"context"
	"time"
)

// IndexVersion tags index files written by this version of the builder.
const IndexVersion = "1.0"

// TopicEntry is the flattened search record for a document.
type TopicEntry struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Keywords    []string `json:"keywords"`
}

// DirectiveEntry is the flattened search record for a directive.
type DirectiveEntry struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	Variants    []string `json:"variants"`
}

// Index is the consolidated search structure derived from the corpus.
// It is always rebuilt from scratch, never patched.
type Index struct {
	Version    string           `json:"version"`
	UpdatedAt  time.Time        `json:"updated_at"`
	Topics     []TopicEntry     `json:"topics"`
	Directives []DirectiveEntry `json:"directives"`
}

// IndexService persists the search index.
type IndexService interface {
	// WriteIndex atomically replaces the stored index.
	WriteIndex(ctx context.Context, idx *Index) error

	// ReadIndex returns the stored index.
	// Returns ENOTFOUND if no index has been built.
	ReadIndex(ctx context.Context) (*Index, error)
}

// Indexer rebuilds the search index from the corpus.
type Indexer interface {
	Rebuild(ctx context.Context) (*Index, error)
}
