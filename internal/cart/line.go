package cart

import (
	"encoding/json"

	"sportshop-client/internal/catalog"

	"github.com/shopspring/decimal"
)

// Kind tags the two line variants. A cart mixes them only transiently while
// a merge is in flight; after any Fetch all lines share one kind.
type Kind uint8

const (
	// KindLocal lines live in the guest cart: no server line id, display
	// fields denormalized at the moment the product was added.
	KindLocal Kind = iota
	// KindRemote lines carry a server-assigned id and the product snapshot
	// as the server last returned it.
	KindRemote
)

// Line is one product+quantity entry in the cart.
type Line struct {
	Kind      Kind
	ID        uint // server line id, remote lines only
	ProductID uint
	Quantity  int

	// Remote snapshot, set on KindRemote lines.
	Product *catalog.Product

	// Denormalized display fields, set on KindLocal lines.
	Price string
	Title string
	Image string
}

// RemoteLine builds a line from a server cart entry.
func RemoteLine(id, productID uint, quantity int, product catalog.Product) Line {
	return Line{
		Kind:      KindRemote,
		ID:        id,
		ProductID: productID,
		Quantity:  quantity,
		Product:   &product,
	}
}

// LocalLine builds a guest line, capturing the display fields now since no
// product fetch is guaranteed at merge time.
func LocalLine(product catalog.Product, quantity int) Line {
	return Line{
		Kind:      KindLocal,
		ProductID: product.ID,
		Quantity:  quantity,
		Price:     product.Price,
		Title:     product.Title,
		Image:     product.ImageURL(),
	}
}

// UnitPrice reads the price from whichever variant the line is.
func (l Line) UnitPrice() (decimal.Decimal, error) {
	if l.Kind == KindRemote && l.Product != nil {
		return l.Product.UnitPrice()
	}
	return decimal.NewFromString(l.Price)
}

// DisplayTitle returns the product title for rendering.
func (l Line) DisplayTitle() string {
	if l.Kind == KindRemote && l.Product != nil {
		return l.Product.Title
	}
	return l.Title
}

// DisplayImage returns the product image for rendering.
func (l Line) DisplayImage() string {
	if l.Kind == KindRemote && l.Product != nil {
		return l.Product.ImageURL()
	}
	return l.Image
}

// localLine is the guest cart wire shape:
// {"product_id":N,"quantity":N,"price":"S","title":"S","image":"S"}
type localLine struct {
	ProductID uint   `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
	Title     string `json:"title"`
	Image     string `json:"image"`
}

// encodeLocal serializes lines for the local store. Remote lines degrade to
// the local shape through the display accessors.
func encodeLocal(lines []Line) (string, error) {
	out := make([]localLine, 0, len(lines))
	for _, l := range lines {
		price := l.Price
		if l.Kind == KindRemote && l.Product != nil {
			price = l.Product.Price
		}
		out = append(out, localLine{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			Price:     price,
			Title:     l.DisplayTitle(),
			Image:     l.DisplayImage(),
		})
	}
	data, err := json.Marshal(out)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// decodeLocal parses a guest cart payload. Callers treat an error as an
// empty cart; a corrupt payload never propagates.
func decodeLocal(payload string) ([]Line, error) {
	var raw []localLine
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return nil, err
	}
	lines := make([]Line, 0, len(raw))
	for _, r := range raw {
		lines = append(lines, Line{
			Kind:      KindLocal,
			ProductID: r.ProductID,
			Quantity:  r.Quantity,
			Price:     r.Price,
			Title:     r.Title,
			Image:     r.Image,
		})
	}
	return lines, nil
}
