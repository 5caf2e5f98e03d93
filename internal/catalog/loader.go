package catalog

import (
	"context"
	"log"
	"sync"
)

// Loader lazily loads the product list from a Source and keeps it until
// Reset. It is safe for concurrent use.
type Loader struct {
	src Source

	mu       sync.Mutex
	products []Product
	loaded   bool
}

// NewLoader creates a loader over src. Nothing is read until first use.
func NewLoader(src Source) *Loader {
	return &Loader{src: src}
}

// Source returns the underlying source.
func (l *Loader) Source() Source { return l.src }

// Load returns the cached products, reading the source on first use. A failed
// read is not cached, so the next call tries again.
func (l *Loader) Load(ctx context.Context) ([]Product, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.loaded {
		return l.products, nil
	}
	products, err := l.src.Load(ctx)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []Product{}
	}
	l.products = products
	l.loaded = true
	return products, nil
}

// Products is Load for callers that render whatever is available: errors are
// logged and yield an empty list. The returned slice must not be modified.
func (l *Loader) Products(ctx context.Context) []Product {
	products, err := l.Load(ctx)
	if err != nil {
		log.Printf("catalog: loading products from %s: %v", l.src, err)
		return []Product{}
	}
	return products
}

// Reset drops the cached list. The next call reads the source again.
func (l *Loader) Reset() {
	l.mu.Lock()
	l.products = nil
	l.loaded = false
	l.mu.Unlock()
}
