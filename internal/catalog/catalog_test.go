package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

const fixture = `[
  {"id": "1", "name": "Caftan Yasmine", "type": "caftan", "description": "Velours brodé", "imageUrl": "/assets/caftan-yasmine.webp", "price": 150, "rentalPrice": 150, "purchasePrice": 890, "available": true, "createdAt": "2024-01-15T10:00:00Z"},
  {"id": "2", "name": "Takchita Lalla", "type": "takchita", "description": "Deux pièces", "imageUrl": "/assets/takchita-lalla.webp", "price": 200, "available": true, "createdAt": "2024-02-01T09:30:00Z"},
  {"id": "3", "name": "Karakou Algérois", "type": "karakou", "description": "Veste brodée", "imageUrl": "/assets/karakou.webp", "price": 180, "available": true, "createdAt": "2024-02-10"},
  {"id": "4", "name": "Caftan Royal", "type": "caftan", "description": "Soie", "imageUrl": "/assets/caftan-royal.webp", "price": 250.5, "available": false, "createdAt": "2024-03-05T14:00:00Z"},
  {"id": "5", "name": "Jellaba Fès", "type": "jellaba", "description": "Laine fine", "imageUrl": "/assets/jellaba.webp", "price": 90, "available": true, "createdAt": "2024-03-20T08:00:00Z"},
  {"id": "6", "name": "Ceinture dorée", "type": "ceinture", "description": "Mdamma", "imageUrl": "/assets/ceinture.webp", "price": 45, "available": true, "createdAt": "2024-04-01T08:00:00Z"},
  {"id": "7", "name": "Caftan Nour", "type": "caftan", "description": "Mousseline", "imageUrl": "/assets/caftan-nour.webp", "price": 120, "available": true, "createdAt": "2024-04-11T08:00:00Z"},
  {"id": "8", "name": "caftan zina", "type": "caftan", "description": "Crêpe", "imageUrl": "/assets/caftan-zina.webp", "price": 130, "available": true, "createdAt": "2024-04-12T08:00:00Z"},
  {"id": "9", "name": "Caftan Safia", "type": "caftan", "description": "Satin", "imageUrl": "/assets/caftan-safia.webp", "price": 140, "available": true, "createdAt": "2024-04-13T08:00:00Z"}
]`

// staticSource serves fixed products and counts reads.
type staticSource struct {
	mu       sync.Mutex
	products []Product
	err      error
	calls    int
}

func (s *staticSource) Load(ctx context.Context) ([]Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.products, nil
}

func (s *staticSource) String() string { return "static" }

func fixtureProducts(t *testing.T) []Product {
	t.Helper()
	products, err := Decode(strings.NewReader(fixture))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	return products
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(NewLoader(&staticSource{products: fixtureProducts(t)}))
}

func ids(products []Product) string {
	var out []string
	for _, p := range products {
		out = append(out, p.ID)
	}
	return strings.Join(out, ",")
}

func TestDecode(t *testing.T) {
	products := fixtureProducts(t)
	if len(products) != 9 {
		t.Fatalf("got %d products, want 9", len(products))
	}

	p := products[0]
	if p.Type != Caftan || p.ImageURL != "/assets/caftan-yasmine.webp" {
		t.Errorf("unexpected product: %+v", p)
	}
	if !p.PurchasePrice.Valid || !p.PurchasePrice.Decimal.Equal(decimal.NewFromInt(890)) {
		t.Errorf("purchase price = %v", p.PurchasePrice)
	}
	if !p.HasPurchase() {
		t.Error("expected a purchase price")
	}

	q := products[1]
	if q.RentalPrice.Valid {
		t.Errorf("rental price should be unset, got %v", q.RentalPrice)
	}
	if !q.Rental().Equal(decimal.NewFromInt(200)) {
		t.Errorf("Rental() = %v, want 200", q.Rental())
	}
	if !products[3].Price.Equal(decimal.RequireFromString("250.5")) {
		t.Errorf("price = %v, want 250.5", products[3].Price)
	}
}

func TestDecodeInvalid(t *testing.T) {
	if _, err := Decode(strings.NewReader(`{"id": 1}`)); err == nil {
		t.Fatal("expected error for a non-array document")
	}
}

func TestLoaderCachesUntilReset(t *testing.T) {
	src := &staticSource{products: fixtureProducts(t)}
	l := NewLoader(src)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if got := len(l.Products(ctx)); got != 9 {
			t.Fatalf("got %d products, want 9", got)
		}
	}
	if src.calls != 1 {
		t.Errorf("source read %d times, want 1", src.calls)
	}

	l.Reset()
	l.Products(ctx)
	if src.calls != 2 {
		t.Errorf("source read %d times after reset, want 2", src.calls)
	}
}

func TestLoaderDoesNotCacheFailures(t *testing.T) {
	src := &staticSource{err: fmt.Errorf("boom")}
	l := NewLoader(src)
	ctx := context.Background()

	if got := l.Products(ctx); got == nil || len(got) != 0 {
		t.Fatalf("failed load = %v, want empty list", got)
	}
	if _, err := l.Load(ctx); err == nil {
		t.Fatal("expected Load() to report the error")
	}

	src.mu.Lock()
	src.err = nil
	src.products = fixtureProducts(t)
	src.mu.Unlock()

	if got := len(l.Products(ctx)); got != 9 {
		t.Errorf("got %d products after recovery, want 9", got)
	}
	if src.calls != 3 {
		t.Errorf("source read %d times, want 3", src.calls)
	}
}

func TestLoaderConcurrentFirstUse(t *testing.T) {
	src := &staticSource{products: fixtureProducts(t)}
	l := NewLoader(src)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Products(context.Background())
		}()
	}
	wg.Wait()

	if src.calls != 1 {
		t.Errorf("source read %d times, want 1", src.calls)
	}
}

func TestJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.json")
	if err := os.WriteFile(path, []byte(fixture), 0o644); err != nil {
		t.Fatal(err)
	}

	products, err := JSONFile{Path: path}.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(products) != 9 {
		t.Errorf("got %d products, want 9", len(products))
	}

	if _, err := (JSONFile{Path: filepath.Join(t.TempDir(), "missing.json")}).Load(context.Background()); err == nil {
		t.Error("expected error for a missing file")
	}
}

func TestJSONHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/data/products.json" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(fixture))
	}))
	defer srv.Close()

	products, err := JSONHTTP{URL: srv.URL + "/data/products.json"}.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(products) != 9 {
		t.Errorf("got %d products, want 9", len(products))
	}

	_, err = JSONHTTP{URL: srv.URL + "/missing.json", Client: srv.Client()}.Load(context.Background())
	if err == nil || !strings.Contains(err.Error(), "unexpected status 404") {
		t.Errorf("error = %v, want unexpected status 404", err)
	}
}

func TestServiceFilters(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		got  []Product
		want string
	}{
		{"all", s.Dresses(ctx, ""), "1,2,3,4,5,6,7,8,9"},
		{"caftans", s.Dresses(ctx, Caftan), "1,4,7,8,9"},
		{"unknown type", s.Dresses(ctx, "robe-de-soiree"), ""},
		{"catalogue", s.CaftansTakchitas(ctx), "1,2,4,7,8,9"},
		{"algerian", s.AlgerianOutfits(ctx), "3,5"},
		{"accessories", s.Accessories(ctx), "6"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ids(tt.got); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDressByID(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	p, err := s.DressByID(ctx, "3")
	if err != nil {
		t.Fatalf("DressByID() error: %v", err)
	}
	if p.Name != "Karakou Algérois" {
		t.Errorf("name = %q", p.Name)
	}

	_, err = s.DressByID(ctx, "42")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
	if !strings.Contains(err.Error(), "42") {
		t.Errorf("error %q should name the id", err)
	}
}

func TestAccessoryByID(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	if _, err := s.AccessoryByID(ctx, "6"); err != nil {
		t.Errorf("AccessoryByID(6) error: %v", err)
	}
	// A dress is never an accessory.
	if _, err := s.AccessoryByID(ctx, "1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("AccessoryByID(1) error = %v, want ErrNotFound", err)
	}
}

func TestSimilar(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	p, _ := s.DressByID(ctx, "1")
	if got := ids(s.Similar(ctx, p)); got != "4,7,8" {
		t.Errorf("Similar(1) = %q, want 4,7,8", got)
	}

	q, _ := s.DressByID(ctx, "2")
	if got := s.Similar(ctx, q); len(got) != 0 {
		t.Errorf("Similar(2) = %v, want none", ids(got))
	}
}

func TestSearch(t *testing.T) {
	products := fixtureProducts(t)
	tests := []struct {
		term string
		want string
	}{
		{"", "1,2,3,4,5,6,7,8,9"},
		{"ZINA", "8"},
		{"caftan", "1,4,7,8,9"},
		{"  nour ", "7"},
		{"robe", ""},
	}
	for _, tt := range tests {
		if got := ids(Search(products, tt.term)); got != tt.want {
			t.Errorf("Search(%q) = %q, want %q", tt.term, got, tt.want)
		}
	}
}

func TestWritesAreStatic(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	if _, err := s.Create(ctx, CreateDressRequest{Name: "Nouveau"}); !errors.Is(err, ErrStaticMode) {
		t.Errorf("Create() error = %v", err)
	}
	if _, err := s.Update(ctx, "1", CreateDressRequest{}); !errors.Is(err, ErrStaticMode) {
		t.Errorf("Update() error = %v", err)
	}
	if err := s.Delete(ctx, "1"); !errors.Is(err, ErrStaticMode) {
		t.Errorf("Delete() error = %v", err)
	}
}

func TestTypes(t *testing.T) {
	if !Karakou.Valid() || DressType("ceinture").Valid() {
		t.Error("Valid() misclassifies types")
	}
	if !IsAccessoryType("boucles-oreilles") || IsAccessoryType("caftan") || IsAccessoryType("chaussures") {
		t.Error("IsAccessoryType() misclassifies types")
	}
}
