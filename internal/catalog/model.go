package catalog

import (
	"github.com/shopspring/decimal"
)

// Product is the storefront product as the API returns it. Price travels as
// a string-encoded decimal on the wire and is parsed on demand.
type Product struct {
	ID          uint           `json:"id"`
	Title       string         `json:"title"`
	Price       string         `json:"price"`
	PriceOld    *string        `json:"price_old,omitempty"`
	Description string         `json:"description,omitempty"`
	Stock       int            `json:"stock"`
	Category    string         `json:"category,omitempty"`
	Image       string         `json:"image,omitempty"`
	Images      []ProductImage `json:"images,omitempty"`
	CreatedAt   string         `json:"created_at,omitempty"`
	UpdatedAt   string         `json:"updated_at,omitempty"`
}

type ProductImage struct {
	ID        uint   `json:"id"`
	ProductID uint   `json:"product_id"`
	Path      string `json:"path"`
}

// UnitPrice parses the wire price into a decimal.
func (p Product) UnitPrice() (decimal.Decimal, error) {
	return decimal.NewFromString(p.Price)
}

// ImageURL returns the primary display image: the flat image field when the
// endpoint denormalizes one, otherwise the first uploaded image.
func (p Product) ImageURL() string {
	if p.Image != "" {
		return p.Image
	}
	if len(p.Images) > 0 {
		return p.Images[0].Path
	}
	return ""
}

type Category struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

// Page is one page of a paginated product listing.
type Page struct {
	Data        []Product `json:"data"`
	LastPage    int       `json:"last_page"`
	CurrentPage int       `json:"current_page"`
	Total       int       `json:"total"`
}
