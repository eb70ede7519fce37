package mock

import (
	"context"

	"github.com/fwojciec/wiredoc"
)

var _ wiredoc.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of wiredoc.DocumentService.
type DocumentService struct {
	SaveDocumentFn             func(ctx context.Context, doc *wiredoc.Document) error
	FindDocumentFn             func(ctx context.Context, slug string, category wiredoc.Category) (*wiredoc.Document, error)
	FindDocumentsFn            func(ctx context.Context, filter wiredoc.DocumentFilter) ([]*wiredoc.Document, error)
	SuggestFn                  func(ctx context.Context, name string, limit int) ([]string, error)
	EnsureBidirectionalLinksFn func(ctx context.Context) (int, error)
}

func (s *DocumentService) SaveDocument(ctx context.Context, doc *wiredoc.Document) error {
	return s.SaveDocumentFn(ctx, doc)
}

func (s *DocumentService) FindDocument(ctx context.Context, slug string, category wiredoc.Category) (*wiredoc.Document, error) {
	return s.FindDocumentFn(ctx, slug, category)
}

func (s *DocumentService) FindDocuments(ctx context.Context, filter wiredoc.DocumentFilter) ([]*wiredoc.Document, error) {
	return s.FindDocumentsFn(ctx, filter)
}

func (s *DocumentService) Suggest(ctx context.Context, name string, limit int) ([]string, error) {
	return s.SuggestFn(ctx, name, limit)
}

func (s *DocumentService) EnsureBidirectionalLinks(ctx context.Context) (int, error) {
	return s.EnsureBidirectionalLinksFn(ctx)
}
