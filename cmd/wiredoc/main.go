package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/wiredoc"
	"github.com/fwojciec/wiredoc/crawl"
	"github.com/fwojciec/wiredoc/fs"
	"github.com/fwojciec/wiredoc/goquery"
	wiredochttp "github.com/fwojciec/wiredoc/http"
	"github.com/fwojciec/wiredoc/search"
	wiredocslog "github.com/fwojciec/wiredoc/slog"
	"github.com/joho/godotenv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config file read when --config is not given. Set before calling Run().
	ConfigPath string

	// Resolved settings, available after Run() has parsed the arguments.
	Settings Settings

	// Fetcher used by the update command. Defaults to an HTTP fetcher.
	Fetcher wiredoc.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPath: DefaultConfigPath(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("wiredoc"),
		kong.Description("Offline Livewire documentation corpus"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'wiredoc --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	configPath, required := m.ConfigPath, false
	if cli.Config != "" {
		configPath, required = cli.Config, true
	}
	cfg, err := LoadConfig(configPath, required)
	if err != nil {
		return err
	}
	m.Settings, err = ResolveSettings(cli, cfg)
	if err != nil {
		return err
	}

	logger := slog.New(slog.DiscardHandler)
	if cli.Debug {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	store := fs.NewStore(m.Settings.DataDir)
	store.Logger = logger

	var (
		documents  wiredoc.DocumentService  = store
		directives wiredoc.DirectiveService = store
		indexes    wiredoc.IndexService     = fs.NewIndexStore(m.Settings.DataDir)
	)
	if cli.Debug {
		documents = wiredocslog.NewLoggingDocumentService(documents, logger)
		directives = wiredocslog.NewLoggingDirectiveService(directives, logger)
		indexes = wiredocslog.NewLoggingIndexService(indexes, logger)
	}

	deps.Documents = documents
	deps.Directives = directives
	deps.Indexes = indexes
	deps.Indexer = &search.Builder{
		Documents:  documents,
		Directives: directives,
		Indexes:    indexes,
	}

	if kongCtx.Command() == "update" {
		fetcher := m.Fetcher
		if fetcher == nil {
			fetcher = wiredochttp.NewFetcher()
		}
		defer fetcher.Close()
		if cli.Debug {
			fetcher = wiredocslog.NewLoggingFetcher(fetcher, logger)
		}

		deps.Updater = &crawl.Updater{
			Fetcher:     fetcher,
			Extractor:   goquery.NewExtractor(m.Settings.BaseURL, m.Settings.DocsVersion),
			Documents:   documents,
			Directives:  directives,
			Indexer:     deps.Indexer,
			Pacer:       crawl.NewPacer(m.Settings.Delay),
			BaseURL:     m.Settings.BaseURL,
			Version:     m.Settings.DocsVersion,
			RetryDelays: crawl.DefaultRetryDelays(),
			CheckRobots: true,
			UserAgent:   crawl.DefaultUserAgent,
			Logger:      logger,
		}
	}

	return kongCtx.Run(deps)
}
