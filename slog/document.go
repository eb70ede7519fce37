package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/wiredoc"
)

// Ensure LoggingDocumentService implements wiredoc.DocumentService.
var _ wiredoc.DocumentService = (*LoggingDocumentService)(nil)

// LoggingDocumentService wraps a DocumentService with debug logging.
type LoggingDocumentService struct {
	next   wiredoc.DocumentService
	logger *slog.Logger
}

// NewLoggingDocumentService creates a new LoggingDocumentService.
func NewLoggingDocumentService(next wiredoc.DocumentService, logger *slog.Logger) *LoggingDocumentService {
	return &LoggingDocumentService{next: next, logger: logger}
}

func (s *LoggingDocumentService) SaveDocument(ctx context.Context, doc *wiredoc.Document) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("save document",
			"slug", doc.Slug,
			"category", doc.Category,
			"sections", len(doc.Sections),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SaveDocument(ctx, doc)
}

func (s *LoggingDocumentService) FindDocument(ctx context.Context, slug string, category wiredoc.Category) (doc *wiredoc.Document, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find document",
			"slug", slug,
			"category", category,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindDocument(ctx, slug, category)
}

func (s *LoggingDocumentService) FindDocuments(ctx context.Context, filter wiredoc.DocumentFilter) (docs []*wiredoc.Document, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find documents",
			"count", len(docs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindDocuments(ctx, filter)
}

func (s *LoggingDocumentService) Suggest(ctx context.Context, name string, limit int) (slugs []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("suggest",
			"name", name,
			"count", len(slugs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Suggest(ctx, name, limit)
}

func (s *LoggingDocumentService) EnsureBidirectionalLinks(ctx context.Context) (writes int, err error) {
	defer func(begin time.Time) {
		s.logger.Info("link normalization",
			"writes", writes,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.EnsureBidirectionalLinks(ctx)
}
