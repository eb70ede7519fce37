package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/fwojciec/wiredoc"
	main "github.com/fwojciec/wiredoc/cmd/wiredoc"
	"github.com/fwojciec/wiredoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchIndex() *wiredoc.Index {
	return &wiredoc.Index{
		Version: wiredoc.IndexVersion,
		Topics: []wiredoc.TopicEntry{
			{Slug: "forms", Title: "Forms", Category: wiredoc.CategoryEssentials, Keywords: []string{"properties"}},
			{Slug: "properties", Title: "Properties", Category: wiredoc.CategoryEssentials},
		},
		Directives: []wiredoc.DirectiveEntry{
			{Name: "wire:model", Description: "Bind properties to inputs.", Variants: []string{"wire:model.live"}},
		},
	}
}

func TestSearchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints ranked results", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Indexes: &mock.IndexService{
				ReadIndexFn: func(_ context.Context) (*wiredoc.Index, error) {
					return searchIndex(), nil
				},
			},
		}

		err := (&main.SearchCmd{Query: "properties", Limit: 10}).Run(deps)

		require.NoError(t, err)
		lines := bytes.Split(bytes.TrimSpace(stdout.Bytes()), []byte("\n"))
		require.NotEmpty(t, lines)
		assert.Contains(t, string(lines[0]), "properties")
		assert.Contains(t, string(lines[0]), "100")
	})

	t.Run("prints JSON results", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Indexes: &mock.IndexService{
				ReadIndexFn: func(_ context.Context) (*wiredoc.Index, error) {
					return searchIndex(), nil
				},
			},
		}

		err := (&main.SearchCmd{Query: "model", Limit: 1, JSON: true}).Run(deps)

		require.NoError(t, err)
		var results []wiredoc.SearchResult
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &results))
		require.Len(t, results, 1)
		assert.Equal(t, wiredoc.KindDirective, results[0].Kind)
		assert.Equal(t, "wire:model", results[0].Key)
		assert.Contains(t, stdout.String(), `"type": "directive"`)
		assert.Contains(t, stdout.String(), `"matched_on": "name"`)
	})

	t.Run("reports no results", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Indexes: &mock.IndexService{
				ReadIndexFn: func(_ context.Context) (*wiredoc.Index, error) {
					return searchIndex(), nil
				},
			},
		}

		err := (&main.SearchCmd{Query: "zzzzzz", Limit: 10}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No results")
	})

	t.Run("explains missing index", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Indexes: &mock.IndexService{
				ReadIndexFn: func(_ context.Context) (*wiredoc.Index, error) {
					return nil, wiredoc.Errorf(wiredoc.ENOTFOUND, "index not found; run 'wiredoc reindex' first")
				},
			},
		}

		err := (&main.SearchCmd{Query: "forms", Limit: 10}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "wiredoc reindex")
	})
}
