// Package catalog serves the boutique's product list: dresses, traditional
// Algerian outfits and accessories, loaded from a static JSON catalog.
package catalog

import (
	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

var (
	// ErrNotFound is returned when a requested product does not exist.
	ErrNotFound = errors.New("product not found")

	// ErrStaticMode is returned by write operations: the catalog is a static
	// file and has no backend to persist changes.
	ErrStaticMode = errors.New("operation not available in static mode")
)

func init() {
	// Prices travel as JSON numbers, as in products.json.
	decimal.MarshalJSONWithoutQuotes = true
}

// DressType is the kind of a garment.
type DressType string

const (
	Caftan   DressType = "caftan"
	Takchita DressType = "takchita"
	Jellaba  DressType = "jellaba"
	Karakou  DressType = "karakou"
	Gandoura DressType = "gandoura"
	Keswa    DressType = "keswa"
	Fouta    DressType = "fouta"
)

// DressTypes lists every garment type in display order.
var DressTypes = []DressType{Caftan, Takchita, Jellaba, Karakou, Gandoura, Keswa, Fouta}

// AlgerianTypes are the garments shown on the traditional Algerian outfits page.
var AlgerianTypes = []DressType{Karakou, Jellaba, Gandoura, Keswa, Fouta}

// AccessoryTypes are the product types sold as accessories.
var AccessoryTypes = []string{
	"ceinture",
	"sfifa",
	"broche",
	"collier",
	"boucles-oreilles",
	"bracelet",
	"diademe",
	"parure",
}

// Valid reports whether t is a known garment type.
func (t DressType) Valid() bool {
	for _, d := range DressTypes {
		if d == t {
			return true
		}
	}
	return false
}

// IsAccessoryType reports whether a product type is an accessory and not a
// garment.
func IsAccessoryType(t string) bool {
	if DressType(t).Valid() {
		return false
	}
	for _, a := range AccessoryTypes {
		if a == t {
			return true
		}
	}
	return false
}

// Product is one entry of the catalog.
type Product struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	Type          DressType           `json:"type"`
	Description   string              `json:"description"`
	ImageURL      string              `json:"imageUrl"`
	Price         decimal.Decimal     `json:"price"`
	RentalPrice   decimal.NullDecimal `json:"rentalPrice"`
	PurchasePrice decimal.NullDecimal `json:"purchasePrice"`
	Available     bool                `json:"available"`
	CreatedAt     string              `json:"createdAt"`
}

// Rental returns the rental price, falling back to Price.
func (p Product) Rental() decimal.Decimal {
	if p.RentalPrice.Valid {
		return p.RentalPrice.Decimal
	}
	return p.Price
}

// HasPurchase reports whether the product can also be bought.
func (p Product) HasPurchase() bool {
	return p.PurchasePrice.Valid && p.PurchasePrice.Decimal.IsPositive()
}

// CreateDressRequest is the payload of a catalog write.
type CreateDressRequest struct {
	Name        string          `json:"name"`
	Type        DressType       `json:"type"`
	Description string          `json:"description"`
	ImageURL    string          `json:"imageUrl"`
	Price       decimal.Decimal `json:"price"`
}
