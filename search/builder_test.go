package search_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/wiredoc"
	"github.com/fwojciec/wiredoc/fs"
	"github.com/fwojciec/wiredoc/mock"
	"github.com/fwojciec/wiredoc/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
}

func formsDoc() *wiredoc.Document {
	return &wiredoc.Document{
		Slug:        "forms",
		Title:       "Forms & Validation",
		Description: "Livewire makes working with forms easy.",
		Category:    wiredoc.CategoryEssentials,
		Sections: []wiredoc.Section{
			{Title: "Submitting a form", Content: "text"},
			{Title: "Forms", Content: "text"},
		},
		DirectivesUsed: []string{"wire:model", "wire:submit"},
		Related:        []string{"properties", "forms"},
	}
}

func modelDirective() *wiredoc.Directive {
	return &wiredoc.Directive{
		Name:        "wire:model",
		Description: "Bind a property to an input.",
		Variants: []wiredoc.Variant{
			{Syntax: "wire:model.live"},
			{Syntax: "wire:model.blur"},
		},
		RelatedTopics: []string{"forms"},
	}
}

func TestTopicKeywords(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{
		"forms", "validation", "properties", "submitting a form", "wire:model", "wire:submit",
	}, search.TopicKeywords(formsDoc()))
}

func TestDirectiveKeywords(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{
		"wire:model", "model", "wire:model.live", "wire:model.blur", "forms",
	}, search.DirectiveKeywords(modelDirective()))
}

func TestBuildIndex(t *testing.T) {
	t.Parallel()

	t.Run("flattens documents and directives", func(t *testing.T) {
		t.Parallel()

		idx := search.BuildIndex(
			[]*wiredoc.Document{formsDoc()},
			[]*wiredoc.Directive{modelDirective()},
			fixedNow(),
		)

		assert.Equal(t, wiredoc.IndexVersion, idx.Version)
		assert.Equal(t, fixedNow(), idx.UpdatedAt)

		require.Len(t, idx.Topics, 1)
		assert.Equal(t, "forms", idx.Topics[0].Slug)
		assert.Equal(t, "Forms & Validation", idx.Topics[0].Title)
		assert.Equal(t, wiredoc.CategoryEssentials, idx.Topics[0].Category)

		require.Len(t, idx.Directives, 1)
		assert.Equal(t, "wire:model", idx.Directives[0].Name)
		assert.Equal(t, []string{"wire:model.live", "wire:model.blur"}, idx.Directives[0].Variants)
	})

	t.Run("empty corpus yields empty lists", func(t *testing.T) {
		t.Parallel()

		idx := search.BuildIndex(nil, nil, fixedNow())

		assert.NotNil(t, idx.Topics)
		assert.Empty(t, idx.Topics)
		assert.NotNil(t, idx.Directives)
		assert.Empty(t, idx.Directives)
	})

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()

		docs := []*wiredoc.Document{formsDoc()}
		directives := []*wiredoc.Directive{modelDirective()}

		assert.Equal(t,
			search.BuildIndex(docs, directives, fixedNow()),
			search.BuildIndex(docs, directives, fixedNow()),
		)
	})
}

func TestBuilder_Rebuild(t *testing.T) {
	t.Parallel()

	t.Run("writes a fresh index", func(t *testing.T) {
		t.Parallel()

		var written *wiredoc.Index
		b := &search.Builder{
			Documents: &mock.DocumentService{
				FindDocumentsFn: func(_ context.Context, filter wiredoc.DocumentFilter) ([]*wiredoc.Document, error) {
					assert.Nil(t, filter.Category)
					return []*wiredoc.Document{formsDoc()}, nil
				},
			},
			Directives: &mock.DirectiveService{
				FindDirectivesFn: func(_ context.Context) ([]*wiredoc.Directive, error) {
					return []*wiredoc.Directive{modelDirective()}, nil
				},
			},
			Indexes: &mock.IndexService{
				WriteIndexFn: func(_ context.Context, idx *wiredoc.Index) error {
					written = idx
					return nil
				},
			},
			Now: fixedNow,
		}

		idx, err := b.Rebuild(context.Background())

		require.NoError(t, err)
		assert.Same(t, idx, written)
		assert.Len(t, idx.Topics, 1)
		assert.Len(t, idx.Directives, 1)
		assert.Equal(t, fixedNow(), idx.UpdatedAt)
	})

	t.Run("returns error when documents cannot be loaded", func(t *testing.T) {
		t.Parallel()

		b := &search.Builder{
			Documents: &mock.DocumentService{
				FindDocumentsFn: func(_ context.Context, _ wiredoc.DocumentFilter) ([]*wiredoc.Document, error) {
					return nil, errors.New("disk error")
				},
			},
			Directives: &mock.DirectiveService{},
			Indexes:    &mock.IndexService{},
			Now:        fixedNow,
		}

		_, err := b.Rebuild(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk error")
	})

	t.Run("returns error when index cannot be written", func(t *testing.T) {
		t.Parallel()

		b := &search.Builder{
			Documents: &mock.DocumentService{
				FindDocumentsFn: func(_ context.Context, _ wiredoc.DocumentFilter) ([]*wiredoc.Document, error) {
					return nil, nil
				},
			},
			Directives: &mock.DirectiveService{
				FindDirectivesFn: func(_ context.Context) ([]*wiredoc.Directive, error) {
					return nil, nil
				},
			},
			Indexes: &mock.IndexService{
				WriteIndexFn: func(_ context.Context, _ *wiredoc.Index) error {
					return errors.New("read-only")
				},
			},
			Now: fixedNow,
		}

		_, err := b.Rebuild(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "write index")
	})
}

func TestBuilder_RebuildThenSearch(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()
	store := fs.NewStore(dir)
	indexes := fs.NewIndexStore(dir)

	require.NoError(t, store.SaveDocument(ctx, formsDoc()))
	require.NoError(t, store.SaveDocument(ctx, &wiredoc.Document{
		Slug:        "properties",
		Title:       "Properties",
		Description: "Properties store and manage data inside components.",
		Category:    wiredoc.CategoryFor("properties"),
		Related:     []string{"forms"},
	}))
	require.NoError(t, store.SaveDirective(ctx, modelDirective()))

	b := &search.Builder{Documents: store, Directives: store, Indexes: indexes, Now: fixedNow}
	_, err := b.Rebuild(ctx)
	require.NoError(t, err)

	idx, err := indexes.ReadIndex(ctx)
	require.NoError(t, err)

	results := search.NewEngine(idx).Search("properties", 10)

	require.NotEmpty(t, results)
	assert.Equal(t, wiredoc.KindTopic, results[0].Kind)
	assert.Equal(t, "properties", results[0].Key)
	assert.Equal(t, 100, results[0].Score)
	for _, r := range results {
		assert.Positive(t, r.Score)
	}
}
