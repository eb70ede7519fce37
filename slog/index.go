package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/wiredoc"
)

// Ensure LoggingIndexService implements wiredoc.IndexService.
var _ wiredoc.IndexService = (*LoggingIndexService)(nil)

// LoggingIndexService wraps an IndexService with debug logging.
type LoggingIndexService struct {
	next   wiredoc.IndexService
	logger *slog.Logger
}

// NewLoggingIndexService creates a new LoggingIndexService.
func NewLoggingIndexService(next wiredoc.IndexService, logger *slog.Logger) *LoggingIndexService {
	return &LoggingIndexService{next: next, logger: logger}
}

func (s *LoggingIndexService) WriteIndex(ctx context.Context, idx *wiredoc.Index) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("write index",
			"topics", len(idx.Topics),
			"directives", len(idx.Directives),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.WriteIndex(ctx, idx)
}

func (s *LoggingIndexService) ReadIndex(ctx context.Context) (idx *wiredoc.Index, err error) {
	defer func(begin time.Time) {
		var topics, directives int
		if idx != nil {
			topics, directives = len(idx.Topics), len(idx.Directives)
		}
		s.logger.Info("read index",
			"topics", topics,
			"directives", directives,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ReadIndex(ctx)
}
