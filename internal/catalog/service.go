package catalog

import (
	"context"
	"strings"

	"github.com/go-faster/errors"
)

// SimilarLimit is the number of related products shown on a detail page.
const SimilarLimit = 3

// Service answers catalog queries over a Loader.
type Service struct {
	loader *Loader
}

// NewService creates a Service.
func NewService(loader *Loader) *Service {
	return &Service{loader: loader}
}

// Loader returns the cache behind the service.
func (s *Service) Loader() *Loader { return s.loader }

// All returns every product, including accessories.
func (s *Service) All(ctx context.Context) []Product {
	return s.loader.Products(ctx)
}

// Dresses returns the products of type t, or every product when t is empty.
func (s *Service) Dresses(ctx context.Context, t DressType) []Product {
	products := s.loader.Products(ctx)
	if t == "" {
		return products
	}
	return filter(products, func(p Product) bool { return p.Type == t })
}

// DressByID returns the product with the given id.
func (s *Service) DressByID(ctx context.Context, id string) (Product, error) {
	for _, p := range s.loader.Products(ctx) {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, errors.Wrapf(ErrNotFound, "dress %q", id)
}

// CaftansTakchitas returns the caftans and takchitas of the catalogue page.
func (s *Service) CaftansTakchitas(ctx context.Context) []Product {
	return filter(s.loader.Products(ctx), func(p Product) bool {
		return p.Type == Caftan || p.Type == Takchita
	})
}

// AlgerianOutfits returns the traditional Algerian garments.
func (s *Service) AlgerianOutfits(ctx context.Context) []Product {
	return filter(s.loader.Products(ctx), func(p Product) bool {
		for _, t := range AlgerianTypes {
			if p.Type == t {
				return true
			}
		}
		return false
	})
}

// Accessories returns the products whose type is an accessory type.
func (s *Service) Accessories(ctx context.Context) []Product {
	return filter(s.loader.Products(ctx), func(p Product) bool {
		return IsAccessoryType(string(p.Type))
	})
}

// AccessoryByID returns the accessory with the given id.
func (s *Service) AccessoryByID(ctx context.Context, id string) (Product, error) {
	for _, p := range s.Accessories(ctx) {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, errors.Wrapf(ErrNotFound, "accessory %q", id)
}

// Similar returns up to SimilarLimit other products of the same type as p.
func (s *Service) Similar(ctx context.Context, p Product) []Product {
	return Similar(s.loader.Products(ctx), p, SimilarLimit)
}

// Create is not available: the catalog is a static file.
func (s *Service) Create(ctx context.Context, req CreateDressRequest) (Product, error) {
	return Product{}, errors.Wrap(ErrStaticMode, "create")
}

// Update is not available: the catalog is a static file.
func (s *Service) Update(ctx context.Context, id string, req CreateDressRequest) (Product, error) {
	return Product{}, errors.Wrapf(ErrStaticMode, "update %q", id)
}

// Delete is not available: the catalog is a static file.
func (s *Service) Delete(ctx context.Context, id string) error {
	return errors.Wrapf(ErrStaticMode, "delete %q", id)
}

// Similar returns up to limit products sharing p's type, excluding p, in
// catalog order.
func Similar(products []Product, p Product, limit int) []Product {
	out := []Product{}
	for _, o := range products {
		if len(out) == limit {
			break
		}
		if o.Type == p.Type && o.ID != p.ID {
			out = append(out, o)
		}
	}
	return out
}

// Search keeps the products whose name contains term, ignoring case. An empty
// term keeps everything.
func Search(products []Product, term string) []Product {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return products
	}
	return filter(products, func(p Product) bool {
		return strings.Contains(strings.ToLower(p.Name), term)
	})
}

func filter(products []Product, keep func(Product) bool) []Product {
	out := []Product{}
	for _, p := range products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
