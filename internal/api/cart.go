package api

import (
	"context"
	"fmt"

	"sportshop-client/internal/cart"
	"sportshop-client/internal/catalog"
)

// cartLine is the server cart entry wire shape.
type cartLine struct {
	ID        uint            `json:"id"`
	CartID    uint            `json:"cart_id"`
	ProductID uint            `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Product   catalog.Product `json:"product"`
}

type addItemRequest struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

// FetchCart implements cart.RemoteCart.
func (c *Client) FetchCart(ctx context.Context) ([]cart.Line, error) {
	var raw []cartLine
	if err := c.get(ctx, "/cart", nil, &raw); err != nil {
		return nil, err
	}
	return mapCartLines(raw), nil
}

// AddItem implements cart.RemoteCart. The quantity is the delta to add; the
// server keeps its own running total per product.
func (c *Client) AddItem(ctx context.Context, productID uint, quantity int) ([]cart.Line, error) {
	var raw []cartLine
	if err := c.post(ctx, "/cart", addItemRequest{ProductID: productID, Quantity: quantity}, &raw); err != nil {
		return nil, err
	}
	return mapCartLines(raw), nil
}

// UpdateItemQuantity implements cart.RemoteCart. The quantity is absolute.
func (c *Client) UpdateItemQuantity(ctx context.Context, productID uint, quantity int) ([]cart.Line, error) {
	var raw []cartLine
	if err := c.put(ctx, fmt.Sprintf("/cart/%d", productID), updateItemRequest{Quantity: quantity}, &raw); err != nil {
		return nil, err
	}
	return mapCartLines(raw), nil
}

// DeleteItem implements cart.RemoteCart.
func (c *Client) DeleteItem(ctx context.Context, productID uint) ([]cart.Line, error) {
	var raw []cartLine
	if err := c.delete(ctx, fmt.Sprintf("/cart/%d", productID), &raw); err != nil {
		return nil, err
	}
	return mapCartLines(raw), nil
}

func mapCartLines(raw []cartLine) []cart.Line {
	lines := make([]cart.Line, 0, len(raw))
	for _, r := range raw {
		lines = append(lines, cart.RemoteLine(r.ID, r.ProductID, r.Quantity, r.Product))
	}
	return lines
}
