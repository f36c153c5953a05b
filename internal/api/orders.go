package api

import (
	"context"
	"net/url"

	"sportshop-client/internal/checkout"
)

type createOrderRequest struct {
	Items []checkout.OrderItem `json:"items"`
}

type createOrderResponse struct {
	URL string `json:"url"`
}

type ordersResponse struct {
	Orders []checkout.Order `json:"orders"`
}

// CreateOrder implements checkout.API and returns the payment redirect URL.
func (c *Client) CreateOrder(ctx context.Context, items []checkout.OrderItem) (string, error) {
	var res createOrderResponse
	if err := c.post(ctx, "/checkout", createOrderRequest{Items: items}, &res); err != nil {
		return "", err
	}
	return res.URL, nil
}

// Orders implements checkout.API.
func (c *Client) Orders(ctx context.Context) ([]checkout.Order, error) {
	var res ordersResponse
	if err := c.get(ctx, "/orders", nil, &res); err != nil {
		return nil, err
	}
	return res.Orders, nil
}

// OrderBySession implements checkout.API.
func (c *Client) OrderBySession(ctx context.Context, sessionID string) (*checkout.Order, error) {
	var order checkout.Order
	if err := c.get(ctx, "/orders/by-session/"+url.PathEscape(sessionID), nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
