package main

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"github.com/fwojciec/wiredoc"
	"github.com/fwojciec/wiredoc/crawl"
)

// Updater refreshes the corpus from the documentation site.
type Updater interface {
	Update(ctx context.Context, slugs []string, progress crawl.ProgressFunc) (*crawl.Result, error)
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Documents  wiredoc.DocumentService
	Directives wiredoc.DirectiveService
	Indexes    wiredoc.IndexService
	Indexer    wiredoc.Indexer
	Updater    Updater
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Data        string `short:"d" env:"WIREDOC_DATA" help:"Corpus directory (default: ./data)"`
	BaseURL     string `name:"base-url" env:"WIREDOC_BASE_URL" help:"Documentation site (default: https://livewire.laravel.com)"`
	DocsVersion string `name:"docs-version" env:"WIREDOC_DOCS_VERSION" help:"Documentation version (default: 3.x)"`
	Config      string `type:"path" help:"Config file (default: ~/.wiredoc/config.toml)"`
	Debug       bool   `help:"Log service calls to stderr"`

	List      ListCmd      `cmd:"" help:"List stored topics"`
	Show      ShowCmd      `cmd:"" help:"Show a stored topic"`
	Search    SearchCmd    `cmd:"" help:"Search topics and directives"`
	Directive DirectiveCmd `cmd:"" help:"Show a directive reference"`
	Update    UpdateCmd    `cmd:"" help:"Scrape the documentation site into the corpus"`
	Reindex   ReindexCmd   `cmd:"" help:"Rebuild the search index"`
	Links     LinksCmd     `cmd:"" help:"Make related links bidirectional"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Category string `short:"c" help:"Only list topics in this category"`
	JSON     bool   `name:"json" help:"Print JSON"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Slug     string `arg:"" help:"Topic slug"`
	Category string `short:"c" help:"Category to look in (default: all, in order)"`
	JSON     bool   `name:"json" help:"Print JSON"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Search query"`
	Limit int    `short:"n" default:"10" help:"Maximum results (0 for all)"`
	JSON  bool   `name:"json" help:"Print JSON"`
}

// DirectiveCmd is the "directive" subcommand.
type DirectiveCmd struct {
	Name string `arg:"" help:"Directive name, with or without the wire: prefix"`
	JSON bool   `name:"json" help:"Print JSON"`
}

// UpdateCmd is the "update" subcommand.
type UpdateCmd struct {
	Slugs []string      `name:"slug" short:"s" help:"Only update these topics (repeatable)"`
	Delay time.Duration `env:"WIREDOC_DELAY" help:"Minimum delay between fetches (default: 500ms)"`
	JSON  bool          `name:"json" help:"Print JSON"`
}

// ReindexCmd is the "reindex" subcommand.
type ReindexCmd struct {
	JSON bool `name:"json" help:"Print JSON"`
}

// LinksCmd is the "links" subcommand.
type LinksCmd struct {
	JSON bool `name:"json" help:"Print JSON"`
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
