package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/fwojciec/wiredoc"
	main "github.com/fwojciec/wiredoc/cmd/wiredoc"
	"github.com/fwojciec/wiredoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	docs := []*wiredoc.Document{
		{Slug: "quickstart", Title: "Quickstart", Category: wiredoc.CategoryGettingStarted},
		{Slug: "forms", Title: "Forms", Category: wiredoc.CategoryEssentials},
		{Slug: "properties", Title: "Properties", Category: wiredoc.CategoryEssentials},
	}

	t.Run("groups topics by category", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Documents: &mock.DocumentService{
				FindDocumentsFn: func(_ context.Context, _ wiredoc.DocumentFilter) ([]*wiredoc.Document, error) {
					return docs, nil
				},
			},
		}

		err := (&main.ListCmd{}).Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "getting-started:")
		assert.Contains(t, output, "essentials:")
		assert.Contains(t, output, "forms")
		assert.Contains(t, output, "Properties")
	})

	t.Run("passes category filter", func(t *testing.T) {
		t.Parallel()

		var got wiredoc.DocumentFilter
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			Documents: &mock.DocumentService{
				FindDocumentsFn: func(_ context.Context, filter wiredoc.DocumentFilter) ([]*wiredoc.Document, error) {
					got = filter
					return nil, nil
				},
			},
		}

		err := (&main.ListCmd{Category: "advanced"}).Run(deps)

		require.NoError(t, err)
		require.NotNil(t, got.Category)
		assert.Equal(t, wiredoc.CategoryAdvanced, *got.Category)
	})

	t.Run("prints JSON", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Documents: &mock.DocumentService{
				FindDocumentsFn: func(_ context.Context, _ wiredoc.DocumentFilter) ([]*wiredoc.Document, error) {
					return docs, nil
				},
			},
		}

		err := (&main.ListCmd{JSON: true}).Run(deps)

		require.NoError(t, err)
		var decoded []wiredoc.Document
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &decoded))
		require.Len(t, decoded, 3)
		assert.Equal(t, "quickstart", decoded[0].Slug)
	})

	t.Run("shows helpful message when corpus is empty", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Documents: &mock.DocumentService{
				FindDocumentsFn: func(_ context.Context, _ wiredoc.DocumentFilter) ([]*wiredoc.Document, error) {
					return []*wiredoc.Document{}, nil
				},
			},
		}

		err := (&main.ListCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "wiredoc update")
	})

	t.Run("returns error when listing fails", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Documents: &mock.DocumentService{
				FindDocumentsFn: func(_ context.Context, _ wiredoc.DocumentFilter) ([]*wiredoc.Document, error) {
					return nil, errors.New("permission denied")
				},
			},
		}

		err := (&main.ListCmd{}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
