// Package crawl refreshes the documentation corpus from the live site.
// It coordinates fetching, extraction, storage, directive synchronization,
// index rebuilding and link normalization.
package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fwojciec/wiredoc"
)

// maxDirectiveExamples caps the snippets borrowed from topic pages when a
// directive page has none of its own.
const maxDirectiveExamples = 3

// Updater scrapes topic pages into the corpus and rebuilds derived data.
// Pages are fetched strictly one at a time.
type Updater struct {
	Fetcher    wiredoc.Fetcher
	Extractor  wiredoc.Extractor
	Documents  wiredoc.DocumentService
	Directives wiredoc.DirectiveService
	Indexer    wiredoc.Indexer

	// Pacer spaces out fetches. Nil disables pacing.
	Pacer *Pacer

	// BaseURL and Version locate pages at {BaseURL}/docs/{Version}/{slug}.
	BaseURL string
	Version string

	// RetryDelays are the waits between fetch attempts. Nil disables retries.
	RetryDelays []time.Duration

	// CheckRobots fetches robots.txt first and skips disallowed pages,
	// matching rules for UserAgent (DefaultUserAgent when empty).
	CheckRobots bool
	UserAgent   string

	// Logger receives per-item failures. Defaults to discarding.
	Logger *slog.Logger
}

// Result holds the outcome of an update. Saved and Unchanged pages are
// both written; Unchanged means the content hash matched the prior record.
type Result struct {
	Saved             int `json:"saved"`
	Unchanged         int `json:"unchanged"`
	Failed            int `json:"failed"`
	Directives        int `json:"directives"`
	DirectivesFailed  int `json:"directives_failed"`
	LinksAdded        int `json:"links_added"`
	IndexedTopics     int `json:"indexed_topics"`
	IndexedDirectives int `json:"indexed_directives"`
}

// ProgressEvent reports progress during an update.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Slug      string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressSaved
	ProgressUnchanged
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting update progress.
type ProgressFunc func(event ProgressEvent)

// Update scrapes the given slugs, or every known topic when slugs is empty.
// Fetch, extraction and storage failures are counted and skipped. Errors
// from the index rebuild, or a canceled context, abort the update; the
// partial result is returned alongside the error.
func (u *Updater) Update(ctx context.Context, slugs []string, progress ProgressFunc) (*Result, error) {
	if len(slugs) == 0 {
		for _, t := range wiredoc.Topics() {
			slugs = append(slugs, t.Slug)
		}
	}
	if progress == nil {
		progress = func(ProgressEvent) {}
	}
	logger := u.logger()

	result := &Result{}
	total := len(slugs)

	robots, err := u.loadRobots(ctx)
	if err != nil {
		return result, err
	}

	progress(ProgressEvent{Type: ProgressStarted, Total: total})

	for i, slug := range slugs {
		if err := u.wait(ctx); err != nil {
			return result, err
		}

		event := ProgressEvent{Completed: i + 1, Total: total, Slug: slug}
		switch changed, err := u.updateTopic(ctx, slug, robots); {
		case err != nil:
			if ctx.Err() != nil {
				return result, ctx.Err()
			}
			logger.Warn("update topic", "slug", slug, "err", err)
			result.Failed++
			event.Type = ProgressFailed
			event.Error = err
		case changed:
			result.Saved++
			event.Type = ProgressSaved
		default:
			result.Unchanged++
			event.Type = ProgressUnchanged
		}
		progress(event)
	}

	err = u.syncDirectives(ctx, robots, result)
	if err != nil {
		return result, fmt.Errorf("sync directives: %w", err)
	}

	idx, err := u.Indexer.Rebuild(ctx)
	if err != nil {
		return result, fmt.Errorf("rebuild index: %w", err)
	}
	result.IndexedTopics = len(idx.Topics)
	result.IndexedDirectives = len(idx.Directives)

	links, err := u.Documents.EnsureBidirectionalLinks(ctx)
	result.LinksAdded = links
	if err != nil {
		logger.Warn("link normalization", "err", err)
	}

	progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	return result, nil
}

// updateTopic fetches and stores one page. The fresh record always replaces
// the stored one; it reports false when the content hash is unchanged.
func (u *Updater) updateTopic(ctx context.Context, slug string, robots *robotsPolicy) (bool, error) {
	path := wiredoc.DocsPath(u.Version, slug)
	if !robots.allowed(path) {
		return false, wiredoc.Errorf(wiredoc.EINVALID, "%s disallowed by robots.txt", path)
	}

	html, err := fetchWithRetry(ctx, u.Fetcher, u.siteURL(path), u.RetryDelays, u.logger())
	if err != nil {
		return false, fmt.Errorf("fetch: %w", err)
	}

	doc := u.Extractor.Extract(html, slug)

	prev, err := u.Documents.FindDocument(ctx, slug, doc.Category)
	if err != nil && !wiredoc.IsNotFound(err) {
		return false, fmt.Errorf("load previous: %w", err)
	}
	if err := u.Documents.SaveDocument(ctx, doc); err != nil {
		return false, fmt.Errorf("save: %w", err)
	}
	return !sameContent(prev, doc), nil
}

// syncDirectives refreshes a record for every known directive. Page data
// wins over the built-in table; empty fields fall back to the table.
// Related topics and fallback examples come from the stored documents.
func (u *Updater) syncDirectives(ctx context.Context, robots *robotsPolicy, result *Result) error {
	docs, err := u.Documents.FindDocuments(ctx, wiredoc.DocumentFilter{})
	if err != nil {
		return err
	}
	logger := u.logger()

	for _, known := range wiredoc.KnownDirectives() {
		if err := u.wait(ctx); err != nil {
			return err
		}

		d := &wiredoc.Directive{Name: known.Name}
		path := wiredoc.DocsPath(u.Version, "wire-"+wiredoc.BaseName(known.Name))
		if !robots.allowed(path) {
			logger.Debug("directive page disallowed", "name", known.Name)
		} else if html, err := fetchWithRetry(ctx, u.Fetcher, u.siteURL(path), u.RetryDelays, logger); err == nil {
			if extracted := u.Extractor.ExtractDirective(html, known.Name); extracted != nil {
				d = extracted
			}
		} else if ctx.Err() != nil {
			return ctx.Err()
		} else {
			logger.Debug("directive page unavailable", "name", known.Name, "err", err)
		}

		if d.Name == "" {
			d.Name = known.Name
		}
		if d.Description == "" {
			d.Description = known.Description
		}
		if len(d.Variants) == 0 {
			d.Variants = known.Variants
		}
		d.RelatedTopics = topicsUsing(docs, known.Name)
		if len(d.Examples) == 0 {
			d.Examples = examplesMentioning(docs, known.Name, maxDirectiveExamples)
		}

		if err := u.Directives.SaveDirective(ctx, d); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			logger.Warn("save directive", "name", d.Name, "err", err)
			result.DirectivesFailed++
			continue
		}
		result.Directives++
	}
	return nil
}

func (u *Updater) siteURL(path string) string {
	return strings.TrimSuffix(u.BaseURL, "/") + path
}

func (u *Updater) wait(ctx context.Context) error {
	if u.Pacer == nil {
		return ctx.Err()
	}
	return u.Pacer.Wait(ctx)
}

func (u *Updater) logger() *slog.Logger {
	if u.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return u.Logger
}

// topicsUsing returns the slugs of documents that reference the directive.
func topicsUsing(docs []*wiredoc.Document, name string) []string {
	slugs := []string{}
	for _, doc := range docs {
		for _, used := range doc.DirectivesUsed {
			if used == name {
				slugs = append(slugs, doc.Slug)
				break
			}
		}
	}
	return slugs
}

// examplesMentioning collects up to limit distinct snippets containing name.
func examplesMentioning(docs []*wiredoc.Document, name string, limit int) []string {
	seen := make(map[string]bool)
	examples := []string{}
	for _, doc := range docs {
		for _, s := range doc.Sections {
			for _, ex := range s.Examples {
				if len(examples) == limit {
					return examples
				}
				if seen[ex.Code] || !strings.Contains(ex.Code, name) {
					continue
				}
				seen[ex.Code] = true
				examples = append(examples, ex.Code)
			}
		}
	}
	return examples
}
