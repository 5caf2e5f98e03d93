package cmd

import (
	"path/filepath"
	"testing"

	"github.com/heritage-alg/heritage/internal/catalog"
	"github.com/heritage-alg/heritage/internal/config"
)

func TestNewCatalogSource(t *testing.T) {
	cfg := config.DefaultConfig()

	src, closeSource, err := newCatalogSource(cfg)
	if err != nil {
		t.Fatalf("json source: %v", err)
	}
	if _, ok := src.(catalog.JSONFile); !ok {
		t.Errorf("json source = %T, want catalog.JSONFile", src)
	}
	closeSource()

	cfg.Data.Source = config.SourceHTTP
	cfg.Data.ProductsURL = "https://example.com/products.json"
	src, closeSource, err = newCatalogSource(cfg)
	if err != nil {
		t.Fatalf("http source: %v", err)
	}
	if h, ok := src.(catalog.JSONHTTP); !ok || h.URL != cfg.Data.ProductsURL {
		t.Errorf("http source = %#v", src)
	}
	closeSource()

	cfg.Data.Source = config.SourceSQLite
	cfg.Data.DBPath = filepath.Join(t.TempDir(), "catalog.db")
	src, closeSource, err = newCatalogSource(cfg)
	if err != nil {
		t.Fatalf("sqlite source: %v", err)
	}
	if _, ok := src.(catalog.SQLSource); !ok {
		t.Errorf("sqlite source = %T, want catalog.SQLSource", src)
	}
	if err := closeSource(); err != nil {
		t.Errorf("closing mirror: %v", err)
	}
}

func TestJSONSource(t *testing.T) {
	tests := []struct {
		arg    string
		remote bool
	}{
		{"data/products.json", false},
		{"https://example.com/products.json", true},
		{"http://localhost:3000/products.json", true},
	}
	for _, tt := range tests {
		_, remote := jsonSource(tt.arg).(catalog.JSONHTTP)
		if remote != tt.remote {
			t.Errorf("jsonSource(%q) remote = %v, want %v", tt.arg, remote, tt.remote)
		}
	}
}

func TestBatchOptions(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Images.Quality = 70
	cfg.Images.Concurrency = 2

	opts := batchOptions(cfg)
	if opts.Encode.Quality != 70 || opts.Concurrency != 2 {
		t.Errorf("from config: quality %d, concurrency %d", opts.Encode.Quality, opts.Concurrency)
	}

	imagesQuality, imagesConcurrency = 90, 8
	defer func() { imagesQuality, imagesConcurrency = 0, 0 }()
	opts = batchOptions(cfg)
	if opts.Encode.Quality != 90 || opts.Concurrency != 8 {
		t.Errorf("from flags: quality %d, concurrency %d", opts.Encode.Quality, opts.Concurrency)
	}
}

func TestFailedImages(t *testing.T) {
	if err := failedImages(nil); err != nil {
		t.Errorf("no failures: %v", err)
	}
	if err := failedImages([]string{"a.webp", "b.webp"}); err == nil || err.Error() != "2 images failed" {
		t.Errorf("failures: %v", err)
	}
}
