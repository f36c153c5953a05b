// Package checkout turns the current cart into an order. Payment itself
// happens on the URL the API hands back; this package only invokes the
// order-creation call.
package checkout

import (
	"context"

	"sportshop-client/internal/cart"
	"sportshop-client/internal/logger"
	"sportshop-client/internal/session"

	"go.uber.org/zap"
)

// API is the remote order surface the service consumes.
type API interface {
	CreateOrder(ctx context.Context, items []OrderItem) (string, error)
	Orders(ctx context.Context) ([]Order, error)
	OrderBySession(ctx context.Context, sessionID string) (*Order, error)
}

type Service struct {
	api  API
	cart *cart.Synchronizer
}

func NewService(api API, cartSync *cart.Synchronizer) *Service {
	return &Service{api: api, cart: cartSync}
}

// PlaceOrder creates an order from the current cart lines and returns the
// payment redirect URL. On success the cart is cleared; the server moves
// the purchased lines into the order on its side.
func (s *Service) PlaceOrder(ctx context.Context, user *session.User) (string, error) {
	if user == nil {
		return "", ErrNotAuthenticated
	}

	lines := s.cart.Items()
	items := make([]OrderItem, 0, len(lines))
	for _, l := range lines {
		if l.Quantity < 1 {
			continue
		}
		items = append(items, OrderItem{ProductID: l.ProductID, Quantity: l.Quantity})
	}
	if len(items) == 0 {
		return "", ErrEmptyCart
	}

	url, err := s.api.CreateOrder(ctx, items)
	if err != nil {
		return "", err
	}

	logger.FromCtx(ctx).Info("order created",
		zap.Uint("user_id", user.ID),
		zap.Int("lines", len(items)),
	)
	s.cart.Clear(ctx)
	return url, nil
}

// Orders fetches the user's order history.
func (s *Service) Orders(ctx context.Context, user *session.User) ([]Order, error) {
	if user == nil {
		return nil, ErrNotAuthenticated
	}
	return s.api.Orders(ctx)
}

// OrderBySession looks an order up by the payment session id the success
// page receives.
func (s *Service) OrderBySession(ctx context.Context, sessionID string) (*Order, error) {
	return s.api.OrderBySession(ctx, sessionID)
}
