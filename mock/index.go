package mock

import (
	"context"

	"github.com/fwojciec/wiredoc"
)

var (
	_ wiredoc.IndexService = (*IndexService)(nil)
	_ wiredoc.Indexer      = (*Indexer)(nil)
)

// IndexService is a mock implementation of wiredoc.IndexService.
type IndexService struct {
	WriteIndexFn func(ctx context.Context, idx *wiredoc.Index) error
	ReadIndexFn  func(ctx context.Context) (*wiredoc.Index, error)
}

func (s *IndexService) WriteIndex(ctx context.Context, idx *wiredoc.Index) error {
	return s.WriteIndexFn(ctx, idx)
}

func (s *IndexService) ReadIndex(ctx context.Context) (*wiredoc.Index, error) {
	return s.ReadIndexFn(ctx)
}

// Indexer is a mock implementation of wiredoc.Indexer.
type Indexer struct {
	RebuildFn func(ctx context.Context) (*wiredoc.Index, error)
}

func (i *Indexer) Rebuild(ctx context.Context) (*wiredoc.Index, error) {
	return i.RebuildFn(ctx)
}
