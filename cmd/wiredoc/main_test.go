package main_test

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/wiredoc"
	main "github.com/fwojciec/wiredoc/cmd/wiredoc"
	"github.com/fwojciec/wiredoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestMain returns a Main that ignores the user's config file.
func newTestMain(t *testing.T) *main.Main {
	t.Helper()
	m := main.NewMain()
	m.ConfigPath = filepath.Join(t.TempDir(), "config.toml")
	return m
}

func livewireSite() *mock.Fetcher {
	pages := map[string]string{
		"https://livewire.test/docs/3.x/forms": `<html><body>
<h1>Forms</h1>
<p>Livewire makes working with forms pleasant.</p>
<h2>Submitting a form</h2>
<p>Use wire:submit on the form element.</p>
<pre><code>&lt;form wire:submit="save"&gt;&lt;/form&gt;</code></pre>
<a href="/docs/3.x/actions">Actions</a>
</body></html>`,
		"https://livewire.test/docs/3.x/actions": `<html><body>
<h1>Actions</h1>
<p>Actions are methods that respond to user interaction.</p>
<h2>Basic usage</h2>
<pre><code>&lt;button wire:click="save"&gt;Save&lt;/button&gt;</code></pre>
</body></html>`,
	}
	return &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			if html, ok := pages[url]; ok {
				return html, nil
			}
			return "", wiredoc.Errorf(wiredoc.ENOTFOUND, "HTTP 404 for %s", url)
		},
		CloseFn: func() error { return nil },
	}
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("requires a command", func(t *testing.T) {
		t.Parallel()

		err := newTestMain(t).Run(context.Background(), nil, &bytes.Buffer{}, &bytes.Buffer{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})

	t.Run("prints help", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		err := newTestMain(t).Run(context.Background(), []string{"--help"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "search")
	})

	t.Run("lists an empty corpus", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		dir := t.TempDir()

		err := newTestMain(t).Run(context.Background(), []string{"--data", dir, "list"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No topics found")
	})

	t.Run("reads settings from the config file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := writeConfig(t, "data_dir = \""+filepath.ToSlash(dir)+"\"\ndelay = \"1ms\"\n")
		m := newTestMain(t)

		err := m.Run(context.Background(), []string{"--config", path, "list"}, &bytes.Buffer{}, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Equal(t, filepath.ToSlash(dir), m.Settings.DataDir)
		assert.Equal(t, time.Millisecond, m.Settings.Delay)
	})

	t.Run("fails when the named config file is missing", func(t *testing.T) {
		t.Parallel()

		err := newTestMain(t).Run(context.Background(),
			[]string{"--config", filepath.Join(t.TempDir(), "missing.toml"), "list"},
			&bytes.Buffer{}, &bytes.Buffer{})

		require.Error(t, err)
	})

	t.Run("updates, searches and shows topics end to end", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		m := newTestMain(t)
		m.Fetcher = livewireSite()
		global := []string{"--data", dir, "--base-url", "https://livewire.test"}

		stdout := &bytes.Buffer{}
		err := m.Run(context.Background(),
			append(global, "update", "--slug", "forms", "--slug", "actions", "--delay", "1ms"),
			stdout, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Saved 2, unchanged 0, failed 0.")
		assert.Contains(t, stdout.String(), "Links added: 1.")

		stdout.Reset()
		err = m.Run(context.Background(), append(global, "search", "actions"), stdout, &bytes.Buffer{})
		require.NoError(t, err)
		first := strings.SplitN(stdout.String(), "\n", 2)[0]
		assert.Contains(t, first, "actions")
		assert.Contains(t, first, "100")

		stdout.Reset()
		err = m.Run(context.Background(), append(global, "show", "actions"), stdout, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "# Actions")
		assert.Contains(t, stdout.String(), "Related: forms")

		stdout.Reset()
		err = m.Run(context.Background(), append(global, "directive", "click"), stdout, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "# wire:click")
		assert.Contains(t, stdout.String(), "Related: actions")
	})
}
