package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ersonp/wikilog/internal/application/handlers"
	"github.com/ersonp/wikilog/internal/domain/ports"
	"github.com/ersonp/wikilog/internal/domain/services"
	"github.com/ersonp/wikilog/internal/infrastructure/config"
	"github.com/ersonp/wikilog/internal/infrastructure/filesource"
	"github.com/ersonp/wikilog/internal/infrastructure/logstore/sqlite"
	"github.com/ersonp/wikilog/internal/infrastructure/mediawiki"
)

// Deps holds high-level dependencies for commands.
type Deps struct {
	Config      *config.Config
	Site        ports.Site
	LogsHandler *handlers.LogsHandler
}

// withDeps loads config, builds the client and services, and calls the
// provided function. When dumpFile is non-empty, records come from that JSON
// dump instead of the live API (the client still serves as site context).
func withDeps(ctx context.Context, dumpFile string, fn func(*Deps) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	client, err := mediawiki.NewClient(cfg.Site, cfg.Client)
	if err != nil {
		return fmt.Errorf("creating api client: %w", err)
	}
	if err := client.EnsureSiteInfo(ctx); err != nil {
		return fmt.Errorf("loading site info: %w", err)
	}

	var source ports.RecordSource = client
	if dumpFile != "" {
		source, err = filesource.FromFile(dumpFile)
		if err != nil {
			return fmt.Errorf("loading dump: %w", err)
		}
	}

	factory := services.NewFactory(services.NewRegistry())
	queryService := services.NewQueryService(source, client, factory)

	return fn(&Deps{
		Config:      cfg,
		Site:        client,
		LogsHandler: handlers.NewLogsHandler(queryService),
	})
}

// withStore opens the SQLite log store and ensures its schema before calling
// the provided function.
func withStore(ctx context.Context, fn func(ports.LogStore) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	store, err := sqlite.NewRepository(config.SQLiteConfig{Path: config.StorePath(cwd, cfg)})
	if err != nil {
		return fmt.Errorf("creating sqlite store: %w", err)
	}
	defer store.Close()

	if err := store.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensuring store schema: %w", err)
	}
	return fn(store)
}
