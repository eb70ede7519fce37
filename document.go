package wiredoc

import (
	"context"
	"time"
)

// ExampleType classifies a code example by the component API it uses.
type ExampleType string

// Example types.
const (
	ExampleClass      ExampleType = "class"
	ExampleFunctional ExampleType = "functional"
)

// Example is a code block taken from a documentation section.
type Example struct {
	Code string      `json:"code"`
	Type ExampleType `json:"type"`
}

// Section is the content under one second-level heading of a page.
type Section struct {
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	Examples []Example `json:"examples"`
}

// IsEmpty reports whether the section has neither content nor examples.
// Empty sections are dropped during extraction.
func (s *Section) IsEmpty() bool {
	return s.Content == "" && len(s.Examples) == 0
}

// Document represents a scraped documentation topic.
type Document struct {
	Slug           string    `json:"slug"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Category       Category  `json:"category"`
	URL            string    `json:"url"`
	Sections       []Section `json:"sections"`
	DirectivesUsed []string  `json:"directives_used"`
	Related        []string  `json:"related"`
	ScrapedAt      time.Time `json:"scraped_at"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Slug == "" {
		return Errorf(EINVALID, "document slug required")
	}
	if !d.Category.Valid() {
		return Errorf(EINVALID, "document %q has unknown category %q", d.Slug, d.Category)
	}
	return nil
}

// Normalize replaces nil slices with empty ones so persisted records never
// contain null lists.
func (d *Document) Normalize() {
	if d.Sections == nil {
		d.Sections = []Section{}
	}
	for i := range d.Sections {
		if d.Sections[i].Examples == nil {
			d.Sections[i].Examples = []Example{}
		}
	}
	if d.DirectivesUsed == nil {
		d.DirectivesUsed = []string{}
	}
	if d.Related == nil {
		d.Related = []string{}
	}
}

// HasRelated reports whether slug is listed in the document's related links.
func (d *Document) HasRelated(slug string) bool {
	for _, r := range d.Related {
		if r == slug {
			return true
		}
	}
	return false
}

// DocumentService represents a service for managing documents.
type DocumentService interface {
	// SaveDocument creates or fully overwrites a document.
	SaveDocument(ctx context.Context, doc *Document) error

	// FindDocument retrieves a document by slug. If category is empty, all
	// categories are probed in canonical order and the first hit is returned.
	// Returns ENOTFOUND if the document does not exist.
	FindDocument(ctx context.Context, slug string, category Category) (*Document, error)

	// FindDocuments retrieves documents matching the filter, ordered by
	// category then slug.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)

	// Suggest returns up to limit known slugs ordered by edit distance to name.
	Suggest(ctx context.Context, name string, limit int) ([]string, error)

	// EnsureBidirectionalLinks appends back-links to documents that are
	// referenced but do not reference back. Returns the number of documents
	// written.
	EnsureBidirectionalLinks(ctx context.Context) (int, error)
}

// DocumentFilter represents a filter for FindDocuments.
type DocumentFilter struct {
	Category *Category `json:"category"`
}

// DocsPath returns the versioned documentation path for a slug,
// e.g. "/docs/3.x/forms".
func DocsPath(version, slug string) string {
	return "/docs/" + version + "/" + slug
}
