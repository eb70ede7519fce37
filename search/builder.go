// Package search builds the consolidated corpus index and ranks index
// entries against free-text queries.
package search

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/fwojciec/wiredoc"
)

var _ wiredoc.Indexer = (*Builder)(nil)

// Builder derives the search index from the full corpus and persists it.
type Builder struct {
	Documents  wiredoc.DocumentService
	Directives wiredoc.DirectiveService
	Indexes    wiredoc.IndexService

	// Now returns the rebuild timestamp. Defaults to time.Now.
	Now func() time.Time
}

// Rebuild reads every document and directive, derives a fresh index and
// replaces the stored one. Nothing from the previous index is carried over.
func (b *Builder) Rebuild(ctx context.Context) (*wiredoc.Index, error) {
	docs, err := b.Documents.FindDocuments(ctx, wiredoc.DocumentFilter{})
	if err != nil {
		return nil, fmt.Errorf("load documents: %w", err)
	}

	directives, err := b.Directives.FindDirectives(ctx)
	if err != nil {
		return nil, fmt.Errorf("load directives: %w", err)
	}

	now := time.Now
	if b.Now != nil {
		now = b.Now
	}

	idx := BuildIndex(docs, directives, now().UTC())
	if err := b.Indexes.WriteIndex(ctx, idx); err != nil {
		return nil, fmt.Errorf("write index: %w", err)
	}
	return idx, nil
}

// BuildIndex derives an index from the given records. The result depends
// only on its arguments.
func BuildIndex(docs []*wiredoc.Document, directives []*wiredoc.Directive, now time.Time) *wiredoc.Index {
	idx := &wiredoc.Index{
		Version:    wiredoc.IndexVersion,
		UpdatedAt:  now,
		Topics:     make([]wiredoc.TopicEntry, 0, len(docs)),
		Directives: make([]wiredoc.DirectiveEntry, 0, len(directives)),
	}

	for _, doc := range docs {
		idx.Topics = append(idx.Topics, wiredoc.TopicEntry{
			Slug:        doc.Slug,
			Title:       doc.Title,
			Description: doc.Description,
			Category:    doc.Category,
			Keywords:    TopicKeywords(doc),
		})
	}

	for _, d := range directives {
		variants := make([]string, 0, len(d.Variants))
		for _, v := range d.Variants {
			variants = append(variants, v.Syntax)
		}
		idx.Directives = append(idx.Directives, wiredoc.DirectiveEntry{
			Name:        d.Name,
			Description: d.Description,
			Keywords:    DirectiveKeywords(d),
			Variants:    variants,
		})
	}

	return idx
}

// TopicKeywords returns the deduplicated keyword set of a document: title
// tokens, related slugs, section titles and directives used.
func TopicKeywords(doc *wiredoc.Document) []string {
	var k keywordSet
	for _, token := range tokenize(doc.Title) {
		k.add(token)
	}
	for _, slug := range doc.Related {
		k.add(slug)
	}
	for _, s := range doc.Sections {
		k.add(strings.ToLower(strings.TrimSpace(s.Title)))
	}
	for _, d := range doc.DirectivesUsed {
		k.add(d)
	}
	return k.list()
}

// DirectiveKeywords returns the deduplicated keyword set of a directive:
// its name with and without prefix, variant syntaxes and related topics.
func DirectiveKeywords(d *wiredoc.Directive) []string {
	var k keywordSet
	k.add(d.Name)
	k.add(wiredoc.StripPrefix(d.Name))
	for _, v := range d.Variants {
		k.add(v.Syntax)
	}
	for _, slug := range d.RelatedTopics {
		k.add(slug)
	}
	return k.list()
}

// tokenize lowercases s and splits it on anything other than letters,
// digits, hyphens and colons.
func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != ':'
	})
}

// keywordSet accumulates unique, non-empty keywords in first-seen order.
type keywordSet struct {
	seen  map[string]bool
	items []string
}

func (k *keywordSet) add(s string) {
	if s == "" {
		return
	}
	if k.seen == nil {
		k.seen = make(map[string]bool)
	}
	if k.seen[s] {
		return
	}
	k.seen[s] = true
	k.items = append(k.items, s)
}

func (k *keywordSet) list() []string {
	if k.items == nil {
		return []string{}
	}
	return k.items
}
