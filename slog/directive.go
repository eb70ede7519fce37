package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/wiredoc"
)

// Ensure LoggingDirectiveService implements wiredoc.DirectiveService.
var _ wiredoc.DirectiveService = (*LoggingDirectiveService)(nil)

// LoggingDirectiveService wraps a DirectiveService with debug logging.
type LoggingDirectiveService struct {
	next   wiredoc.DirectiveService
	logger *slog.Logger
}

// NewLoggingDirectiveService creates a new LoggingDirectiveService.
func NewLoggingDirectiveService(next wiredoc.DirectiveService, logger *slog.Logger) *LoggingDirectiveService {
	return &LoggingDirectiveService{next: next, logger: logger}
}

func (s *LoggingDirectiveService) SaveDirective(ctx context.Context, d *wiredoc.Directive) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("save directive",
			"name", d.Name,
			"variants", len(d.Variants),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SaveDirective(ctx, d)
}

func (s *LoggingDirectiveService) FindDirective(ctx context.Context, name string) (d *wiredoc.Directive, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find directive",
			"name", name,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindDirective(ctx, name)
}

func (s *LoggingDirectiveService) FindDirectives(ctx context.Context) (directives []*wiredoc.Directive, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find directives",
			"count", len(directives),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindDirectives(ctx)
}
