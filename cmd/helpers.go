package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/heritage-alg/heritage/internal/booking"
	"github.com/heritage-alg/heritage/internal/catalog"
	"github.com/heritage-alg/heritage/internal/config"
	"github.com/heritage-alg/heritage/internal/db"
	"github.com/heritage-alg/heritage/internal/site"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `heritage init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newCatalogSource picks the product source named by data.source. The
// returned close func releases the SQLite mirror, if one was opened.
func newCatalogSource(cfg *config.Config) (catalog.Source, func() error, error) {
	noop := func() error { return nil }
	switch cfg.Data.Source {
	case config.SourceHTTP:
		return catalog.JSONHTTP{
			URL:    cfg.Data.ProductsURL,
			Client: &http.Client{Timeout: 15 * time.Second},
		}, noop, nil
	case config.SourceSQLite:
		database, err := db.Open(cfg.Data.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("opening catalog mirror: %w", err)
		}
		return catalog.SQLSource{DB: database}, database.Close, nil
	default:
		return catalog.JSONFile{Path: cfg.Data.ProductsJSON}, noop, nil
	}
}

// newSite wires the catalog and booking services into a site, loading the
// catalog once so a broken source is reported before serving starts.
func newSite(ctx context.Context, cfg *config.Config) (*site.Site, func() error, error) {
	src, closeSource, err := newCatalogSource(cfg)
	if err != nil {
		return nil, nil, err
	}

	loader := catalog.NewLoader(src)
	products, err := loader.Load(ctx)
	if err != nil {
		// The site still renders with an empty catalog; the next request
		// retries the source.
		fmt.Fprintf(os.Stderr, "Warning: could not load catalog from %s: %v\n", src, err)
	} else if verbose {
		fmt.Fprintf(os.Stderr, "Loaded %d products from %s\n", len(products), src)
	}

	s, err := site.New(cfg, catalog.NewService(loader), booking.NewService(cfg.Contact.CalendlyURL))
	if err != nil {
		closeSource()
		return nil, nil, fmt.Errorf("creating site: %w", err)
	}
	return s, closeSource, nil
}
