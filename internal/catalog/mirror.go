package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/heritage-alg/heritage/internal/db"
)

// ImportResult summarizes a mirror import.
type ImportResult struct {
	ID       string
	Source   string
	Products int
	// Generated counts products that had no id and were given one.
	Generated int
}

// Import replaces the content of the SQLite mirror with products, in one
// transaction. Products without an id get a random one.
func Import(ctx context.Context, d *db.DB, source string, products []Product) (ImportResult, error) {
	res := ImportResult{ID: uuid.New().String(), Source: source}

	tx, err := d.BeginTx(ctx, nil)
	if err != nil {
		return res, fmt.Errorf("beginning import: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM products`); err != nil {
		return res, fmt.Errorf("clearing products: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO products (id, name, type, description, image_url, price,
		                      rental_price, purchase_price, available, created_at,
		                      position, import_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return res, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	seen := make(map[string]bool, len(products))
	for i, p := range products {
		if p.ID == "" {
			p.ID = uuid.New().String()
			res.Generated++
		}
		if seen[p.ID] {
			return res, fmt.Errorf("product %d: duplicate id %q", i, p.ID)
		}
		seen[p.ID] = true

		available := 0
		if p.Available {
			available = 1
		}
		if _, err := stmt.ExecContext(ctx, p.ID, p.Name, string(p.Type), p.Description, p.ImageURL,
			p.Price.String(), nullString(p.RentalPrice.Valid, p.RentalPrice.Decimal.String()),
			nullString(p.PurchasePrice.Valid, p.PurchasePrice.Decimal.String()),
			available, p.CreatedAt, i, res.ID); err != nil {
			return res, fmt.Errorf("inserting product %s: %w", p.ID, err)
		}
		res.Products++
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO catalog_imports (id, source, product_count) VALUES (?, ?, ?)`,
		res.ID, source, res.Products); err != nil {
		return res, fmt.Errorf("recording import: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return res, fmt.Errorf("committing import: %w", err)
	}
	return res, nil
}

func nullString(valid bool, s string) sql.NullString {
	return sql.NullString{String: s, Valid: valid}
}
