package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/wiredoc"
	"github.com/fwojciec/wiredoc/crawl"
	"github.com/pelletier/go-toml/v2"
)

// Defaults applied when neither flags, environment nor config file set a value.
const (
	DefaultDataDir     = "data"
	DefaultBaseURL     = "https://livewire.laravel.com"
	DefaultDocsVersion = "3.x"
)

// Config is the optional TOML config file.
//
//	data_dir = "/srv/wiredoc"
//	base_url = "https://livewire.laravel.com"
//	docs_version = "3.x"
//	delay = "1s"
type Config struct {
	DataDir     string `toml:"data_dir"`
	BaseURL     string `toml:"base_url"`
	DocsVersion string `toml:"docs_version"`
	Delay       string `toml:"delay"`
}

// Settings are the resolved runtime options.
type Settings struct {
	DataDir     string
	BaseURL     string
	DocsVersion string
	Delay       time.Duration
}

// DefaultConfigPath returns ~/.wiredoc/config.toml, or "" when the home
// directory is unknown.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".wiredoc", "config.toml")
}

// LoadConfig reads the config file at path. A missing file yields an empty
// config unless required is set.
func LoadConfig(path string, required bool) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) && !required {
		return cfg, nil
	} else if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, wiredoc.Errorf(wiredoc.EINVALID, "invalid config %s: %v", path, err)
	}
	return cfg, nil
}

// ResolveSettings merges flag values over the config file over defaults.
// Empty flag values count as unset.
func ResolveSettings(cli *CLI, cfg *Config) (Settings, error) {
	s := Settings{
		DataDir:     first(cli.Data, cfg.DataDir, DefaultDataDir),
		BaseURL:     first(cli.BaseURL, cfg.BaseURL, DefaultBaseURL),
		DocsVersion: first(cli.DocsVersion, cfg.DocsVersion, DefaultDocsVersion),
		Delay:       crawl.DefaultDelay,
	}

	switch {
	case cli.Update.Delay != 0:
		s.Delay = cli.Update.Delay
	case cfg.Delay != "":
		d, err := time.ParseDuration(cfg.Delay)
		if err != nil {
			return Settings{}, wiredoc.Errorf(wiredoc.EINVALID, "invalid delay %q in config", cfg.Delay)
		}
		s.Delay = d
	}

	return s, nil
}

func first(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
