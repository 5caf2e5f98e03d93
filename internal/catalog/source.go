package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/shopspring/decimal"

	"github.com/heritage-alg/heritage/internal/db"
)

// Source produces the full product list.
type Source interface {
	Load(ctx context.Context) ([]Product, error)
	String() string
}

// Decode reads a products.json document.
func Decode(r io.Reader) ([]Product, error) {
	var products []Product
	if err := json.NewDecoder(r).Decode(&products); err != nil {
		return nil, fmt.Errorf("decoding products: %w", err)
	}
	return products, nil
}

// JSONFile loads products from a file on disk.
type JSONFile struct {
	Path string
}

func (s JSONFile) Load(ctx context.Context) ([]Product, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", s.Path, err)
	}
	defer f.Close()
	return Decode(f)
}

func (s JSONFile) String() string { return s.Path }

// JSONHTTP loads products with a single GET. There is no retry.
type JSONHTTP struct {
	URL    string
	Client *http.Client
}

func (s JSONHTTP) Load(ctx context.Context) ([]Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", s.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetching %s: unexpected status %d", s.URL, resp.StatusCode)
	}
	return Decode(resp.Body)
}

func (s JSONHTTP) String() string { return s.URL }

// SQLSource reads the SQLite mirror written by Import.
type SQLSource struct {
	DB *db.DB
}

func (s SQLSource) Load(ctx context.Context) ([]Product, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, name, type, description, image_url, price,
		       rental_price, purchase_price, available, created_at
		FROM products ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	var products []Product
	for rows.Next() {
		var (
			p                Product
			price            string
			rental, purchase sql.NullString
			available        int
		)
		if err := rows.Scan(&p.ID, &p.Name, &p.Type, &p.Description, &p.ImageURL,
			&price, &rental, &purchase, &available, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}
		if p.Price, err = decimal.NewFromString(price); err != nil {
			return nil, fmt.Errorf("product %s: parsing price: %w", p.ID, err)
		}
		if p.RentalPrice, err = nullDecimal(rental); err != nil {
			return nil, fmt.Errorf("product %s: parsing rental price: %w", p.ID, err)
		}
		if p.PurchasePrice, err = nullDecimal(purchase); err != nil {
			return nil, fmt.Errorf("product %s: parsing purchase price: %w", p.ID, err)
		}
		p.Available = available != 0
		products = append(products, p)
	}
	return products, rows.Err()
}

func (s SQLSource) String() string { return "sqlite:" + s.DB.Path() }

func nullDecimal(s sql.NullString) (decimal.NullDecimal, error) {
	if !s.Valid {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(s.String)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NewNullDecimal(d), nil
}
