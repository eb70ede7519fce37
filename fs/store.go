// Package fs provides file-based storage for the documentation corpus.
//
// Documents live at {dir}/{category}/{slug}.json, directives at
// {dir}/directives/{base}.json and the search index at {dir}/index.json.
package fs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fwojciec/wiredoc"
	"github.com/fwojciec/wiredoc/levenshtein"
)

// directivesDir is the directory holding directive records.
const directivesDir = "directives"

// Ensure Store implements the corpus services at compile time.
var (
	_ wiredoc.DocumentService  = (*Store)(nil)
	_ wiredoc.DirectiveService = (*Store)(nil)
)

// Store persists documents and directives as one JSON file per record.
// It assumes a single writer; there is no locking.
type Store struct {
	dir string

	// Logger receives warnings about unreadable records.
	Logger *slog.Logger
}

// NewStore creates a new Store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{
		dir:    dir,
		Logger: slog.New(slog.DiscardHandler),
	}
}

// Dir returns the root directory of the corpus.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) documentPath(category wiredoc.Category, slug string) string {
	return filepath.Join(s.dir, string(category), slug+".json")
}

func (s *Store) directivePath(base string) string {
	return filepath.Join(s.dir, directivesDir, base+".json")
}

// SaveDocument writes doc to {category}/{slug}.json, replacing any
// previous version.
func (s *Store) SaveDocument(ctx context.Context, doc *wiredoc.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	if strings.ContainsAny(doc.Slug, `/\`) {
		return wiredoc.Errorf(wiredoc.EINVALID, "invalid document slug %q", doc.Slug)
	}
	doc.Normalize()
	return writeJSON(s.documentPath(doc.Category, doc.Slug), doc)
}

// FindDocument retrieves a document by slug. An empty category probes every
// category in canonical order.
func (s *Store) FindDocument(ctx context.Context, slug string, category wiredoc.Category) (*wiredoc.Document, error) {
	if slug == "" || strings.ContainsAny(slug, `/\`) {
		return nil, wiredoc.Errorf(wiredoc.ENOTFOUND, "document %q not found", slug)
	}

	categories := wiredoc.Categories()
	if category != "" {
		if !category.Valid() {
			return nil, wiredoc.Errorf(wiredoc.EINVALID, "unknown category %q", category)
		}
		categories = []wiredoc.Category{category}
	}

	for _, c := range categories {
		var doc wiredoc.Document
		err := s.readJSON(s.documentPath(c, slug), &doc)
		if err == nil {
			doc.Normalize()
			return &doc, nil
		}
		if !wiredoc.IsNotFound(err) {
			return nil, err
		}
	}

	return nil, wiredoc.Errorf(wiredoc.ENOTFOUND, "document %q not found", slug)
}

// FindDocuments retrieves every readable document, ordered by category in
// canonical order and then by slug. Unreadable records are skipped.
func (s *Store) FindDocuments(ctx context.Context, filter wiredoc.DocumentFilter) ([]*wiredoc.Document, error) {
	categories := wiredoc.Categories()
	if filter.Category != nil {
		if !filter.Category.Valid() {
			return nil, wiredoc.Errorf(wiredoc.EINVALID, "unknown category %q", *filter.Category)
		}
		categories = []wiredoc.Category{*filter.Category}
	}

	docs := []*wiredoc.Document{}
	for _, c := range categories {
		slugs, err := listKeys(filepath.Join(s.dir, string(c)))
		if err != nil {
			return nil, err
		}
		for _, slug := range slugs {
			var doc wiredoc.Document
			if err := s.readJSON(s.documentPath(c, slug), &doc); err != nil {
				if wiredoc.IsNotFound(err) {
					continue
				}
				return nil, err
			}
			doc.Normalize()
			docs = append(docs, &doc)
		}
	}

	return docs, nil
}

// Suggest returns up to limit known slugs ordered by ascending edit distance
// to the lowercased name. Ties keep the corpus order.
func (s *Store) Suggest(ctx context.Context, name string, limit int) ([]string, error) {
	if limit <= 0 {
		return []string{}, nil
	}

	docs, err := s.FindDocuments(ctx, wiredoc.DocumentFilter{})
	if err != nil {
		return nil, err
	}

	type candidate struct {
		slug     string
		distance int
	}

	query := strings.ToLower(name)
	seen := make(map[string]bool, len(docs))
	candidates := make([]candidate, 0, len(docs))
	for _, doc := range docs {
		if seen[doc.Slug] {
			continue
		}
		seen[doc.Slug] = true
		candidates = append(candidates, candidate{
			slug:     doc.Slug,
			distance: levenshtein.Distance(query, doc.Slug),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	slugs := make([]string, len(candidates))
	for i, c := range candidates {
		slugs[i] = c.slug
	}
	return slugs, nil
}

// EnsureBidirectionalLinks makes related links symmetric by one hop. Every
// document is loaded into a snapshot; when A lists B and B does not list A,
// A is appended to B and B is written. Documents changed during the pass are
// not re-scanned, so links are not closed transitively. Write failures are
// collected and do not stop the pass.
func (s *Store) EnsureBidirectionalLinks(ctx context.Context) (int, error) {
	docs, err := s.FindDocuments(ctx, wiredoc.DocumentFilter{})
	if err != nil {
		return 0, err
	}

	bySlug := make(map[string]*wiredoc.Document, len(docs))
	for _, doc := range docs {
		if _, ok := bySlug[doc.Slug]; !ok {
			bySlug[doc.Slug] = doc
		}
	}

	var writes int
	var errs []error
	for _, a := range docs {
		for _, slug := range a.Related {
			if slug == a.Slug {
				continue
			}
			b, ok := bySlug[slug]
			if !ok || b.HasRelated(a.Slug) {
				continue
			}
			b.Related = append(b.Related, a.Slug)
			if err := s.SaveDocument(ctx, b); err != nil {
				errs = append(errs, fmt.Errorf("link %s -> %s: %w", b.Slug, a.Slug, err))
				continue
			}
			writes++
		}
	}

	return writes, errors.Join(errs...)
}

// SaveDirective writes d to directives/{base}.json.
func (s *Store) SaveDirective(ctx context.Context, d *wiredoc.Directive) error {
	if err := d.Validate(); err != nil {
		return err
	}
	d.Normalize()
	return writeJSON(s.directivePath(wiredoc.BaseName(d.Name)), d)
}

// FindDirective retrieves a directive by name. Prefix and modifiers are
// ignored, so "wire:model.live" finds the "model" record.
func (s *Store) FindDirective(ctx context.Context, name string) (*wiredoc.Directive, error) {
	base := wiredoc.BaseName(name)
	if base == "" || strings.ContainsAny(base, `/\`) {
		return nil, wiredoc.Errorf(wiredoc.ENOTFOUND, "directive %q not found", name)
	}

	var d wiredoc.Directive
	if err := s.readJSON(s.directivePath(base), &d); err != nil {
		if wiredoc.IsNotFound(err) {
			return nil, wiredoc.Errorf(wiredoc.ENOTFOUND, "directive %q not found", name)
		}
		return nil, err
	}
	d.Normalize()
	return &d, nil
}

// FindDirectives retrieves every readable directive ordered by base name.
func (s *Store) FindDirectives(ctx context.Context) ([]*wiredoc.Directive, error) {
	bases, err := listKeys(filepath.Join(s.dir, directivesDir))
	if err != nil {
		return nil, err
	}

	directives := []*wiredoc.Directive{}
	for _, base := range bases {
		var d wiredoc.Directive
		if err := s.readJSON(s.directivePath(base), &d); err != nil {
			if wiredoc.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		d.Normalize()
		directives = append(directives, &d)
	}
	return directives, nil
}

// readJSON decodes the file at path into v. Missing files and records that
// cannot be decoded both report ENOTFOUND; the latter are logged.
func (s *Store) readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return wiredoc.Errorf(wiredoc.ENOTFOUND, "%s not found", path)
	} else if err != nil {
		return err
	}

	if err := json.Unmarshal(data, v); err != nil {
		s.Logger.Warn("corrupt record", "path", path, "err", err)
		return wiredoc.Errorf(wiredoc.ENOTFOUND, "%s unreadable", path)
	}
	return nil
}

// listKeys returns the sorted base names of the .json files in dir.
// A missing directory yields no keys.
func listKeys(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	var keys []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		keys = append(keys, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(keys)
	return keys, nil
}

// writeJSON writes v as indented JSON. The file is written to a temporary
// sibling and renamed into place so readers never see a partial record.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filepath.Base(path), err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
