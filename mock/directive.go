package mock

import (
	"context"

	"github.com/fwojciec/wiredoc"
)

var _ wiredoc.DirectiveService = (*DirectiveService)(nil)

// DirectiveService is a mock implementation of wiredoc.DirectiveService.
type DirectiveService struct {
	SaveDirectiveFn  func(ctx context.Context, d *wiredoc.Directive) error
	FindDirectiveFn  func(ctx context.Context, name string) (*wiredoc.Directive, error)
	FindDirectivesFn  func(ctx context.Context) ([]*wiredoc.Directive, error)
}

func (s *DirectiveService) SaveDirective(ctx context.Context, d *wiredoc.Directive) error {
	return s.SaveDirectiveFn(ctx, d)
}

func (s *DirectiveService) FindDirective(ctx context.Context, name string) (*wiredoc.Directive, error) {
	return s.FindDirectiveFn(ctx, name)
}

func (s *DirectiveService) FindDirectives(ctx context.Context) ([]*wiredoc.Directive, error) {
	return s.FindDirectivesFn(ctx)
}
