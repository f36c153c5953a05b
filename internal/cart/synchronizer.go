// Package cart implements the client-side cart synchronization engine: one
// in-memory cart kept consistent across guest (locally persisted) and
// authenticated (server-persisted) sessions, with a one-time merge of the
// guest cart into the server cart at login.
package cart

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"sportshop-client/internal/catalog"
	"sportshop-client/internal/localstore"
	"sportshop-client/internal/logger"
	"sportshop-client/internal/session"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// localCartKey is the well-known local-store key for the guest cart payload.
const localCartKey = "cart"

// RemoteCart is the server-side cart surface. Every call returns the full
// updated line list, scoped to the authenticated identity by the transport.
type RemoteCart interface {
	FetchCart(ctx context.Context) ([]Line, error)
	AddItem(ctx context.Context, productID uint, quantity int) ([]Line, error)
	UpdateItemQuantity(ctx context.Context, productID uint, quantity int) ([]Line, error)
	DeleteItem(ctx context.Context, productID uint) ([]Line, error)
}

// Synchronizer owns the in-memory cart and mediates between the local store
// (guest mode) and the remote cart (authenticated mode). Mutations apply to
// memory synchronously before any propagation, so callers always render a
// consistent optimistic state; propagation failures are logged and left for
// the next Fetch to reconcile.
type Synchronizer struct {
	mu    sync.Mutex
	items []Line

	remote RemoteCart
	store  localstore.Store
}

func NewSynchronizer(remote RemoteCart, store localstore.Store) *Synchronizer {
	return &Synchronizer{remote: remote, store: store}
}

// Items returns a snapshot of the current cart for rendering.
func (s *Synchronizer) Items() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Line, len(s.items))
	copy(out, s.items)
	return out
}

// Fetch hydrates the cart from the authoritative source for the session.
//
// Guest: the local store, with a corrupt or absent payload treated as an
// empty cart. Authenticated: the remote cart, preceded by a one-time merge
// of any leftover guest lines. Remote fetch failure degrades to an empty
// cart and is not an error; only a failed merge is surfaced, and in that
// case the local payload is kept so the next fetch retries the merge.
func (s *Synchronizer) Fetch(ctx context.Context, user *session.User) error {
	if user == nil {
		s.setItems(s.readLocal(ctx))
		return nil
	}

	log := logger.FromCtx(ctx).With(zap.Uint("user_id", user.ID))

	remote, err := s.remote.FetchCart(ctx)
	if err != nil {
		log.Error("failed to fetch remote cart, showing empty cart", zap.Error(err))
		s.setItems(nil)
		return nil
	}

	local := s.readLocal(ctx)
	if len(local) == 0 {
		s.setItems(remote)
		return nil
	}

	log.Info("merging guest cart into server cart", zap.Int("guest_lines", len(local)))

	if err := s.merge(ctx, local, remote); err != nil {
		// Keep the pre-merge server view in memory and the guest payload
		// on disk; the next authenticated fetch retries.
		s.setItems(remote)
		return err
	}

	merged, err := s.remote.FetchCart(ctx)
	if err != nil {
		s.setItems(remote)
		return fmt.Errorf("%w: %w", ErrMergeRefetch, err)
	}
	s.setItems(merged)

	// Clear only after the re-fetch confirmed the server has everything.
	if err := s.store.Remove(ctx, localCartKey); err != nil {
		log.Warn("failed to clear guest cart after merge", zap.Error(err))
	}
	return nil
}

// merge pushes guest lines to the server one at a time. Sequential on
// purpose: concurrent quantity updates for the same product would race on
// the server's running total.
func (s *Synchronizer) merge(ctx context.Context, local, remote []Line) error {
	for _, l := range local {
		if r, ok := findLine(remote, l.ProductID); ok {
			// Guest additions are additive on top of the server quantity;
			// the server cart is never overwritten.
			if _, err := s.remote.UpdateItemQuantity(ctx, l.ProductID, r.Quantity+l.Quantity); err != nil {
				return fmt.Errorf("%w (product %d): %w", ErrMergeUpdateItem, l.ProductID, err)
			}
		} else {
			if _, err := s.remote.AddItem(ctx, l.ProductID, l.Quantity); err != nil {
				return fmt.Errorf("%w (product %d): %w", ErrMergeAddItem, l.ProductID, err)
			}
		}
	}
	return nil
}

// AddToCart adds quantity units of the product, merging into an existing
// line when the product is already in the cart. Memory first, then the
// backing store; a failed propagation is logged, never returned.
func (s *Synchronizer) AddToCart(ctx context.Context, product *catalog.Product, quantity int, user *session.User) error {
	if product == nil || product.ID == 0 {
		return ErrNilProduct
	}
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	s.mu.Lock()
	if i := indexOf(s.items, product.ID); i >= 0 {
		s.items[i].Quantity += quantity
	} else if user != nil {
		// The server is about to create this line; the id and canonical
		// snapshot arrive with the next fetch.
		s.items = append(s.items, RemoteLine(0, product.ID, quantity, *product))
	} else {
		s.items = append(s.items, LocalLine(*product, quantity))
	}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	if user != nil {
		// The delta, not the merged total: the server owns its own total.
		if _, err := s.remote.AddItem(ctx, product.ID, quantity); err != nil {
			logger.FromCtx(ctx).Error("failed to add item to remote cart",
				zap.Uint("product_id", product.ID), zap.Error(err))
		}
		return nil
	}
	s.persistLocal(ctx, snapshot)
	return nil
}

// AddOne increments the matching line by one. Unknown product ids are a
// no-op so stale UI callbacks stay harmless.
func (s *Synchronizer) AddOne(ctx context.Context, productID uint, user *session.User) {
	s.bumpQuantity(ctx, productID, +1, user)
}

// RemoveOne decrements the matching line by one. A line at quantity 1 is
// left untouched; deleting is RemoveFromCart's job, not a decrement side
// effect.
func (s *Synchronizer) RemoveOne(ctx context.Context, productID uint, user *session.User) {
	s.bumpQuantity(ctx, productID, -1, user)
}

func (s *Synchronizer) bumpQuantity(ctx context.Context, productID uint, delta int, user *session.User) {
	s.mu.Lock()
	i := indexOf(s.items, productID)
	if i < 0 || s.items[i].Quantity+delta < 1 {
		s.mu.Unlock()
		return
	}
	s.items[i].Quantity += delta
	newQuantity := s.items[i].Quantity
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	if user != nil {
		if _, err := s.remote.UpdateItemQuantity(ctx, productID, newQuantity); err != nil {
			logger.FromCtx(ctx).Error("failed to update remote quantity",
				zap.Uint("product_id", productID), zap.Int("quantity", newQuantity), zap.Error(err))
		}
		return
	}
	s.persistLocal(ctx, snapshot)
}

// RemoveFromCart removes the matching line entirely. Removing an absent
// product id leaves the cart unchanged.
func (s *Synchronizer) RemoveFromCart(ctx context.Context, productID uint, user *session.User) {
	s.mu.Lock()
	i := indexOf(s.items, productID)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	if user != nil {
		if _, err := s.remote.DeleteItem(ctx, productID); err != nil {
			logger.FromCtx(ctx).Error("failed to delete remote cart item",
				zap.Uint("product_id", productID), zap.Error(err))
		}
		return
	}
	s.persistLocal(ctx, snapshot)
}

// TotalPrice sums unit price times quantity across all lines with decimal
// arithmetic. A line whose price does not parse contributes zero and is
// logged, keeping the accessor pure for callers.
func (s *Synchronizer) TotalPrice() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for _, l := range s.items {
		price, err := l.UnitPrice()
		if err != nil {
			logger.L().Warn("cart line has unparseable price",
				zap.Uint("product_id", l.ProductID), zap.Error(err))
			continue
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}

// Clear empties the cart and erases the guest payload. The remote cart is
// untouched; there is no clear-server-cart call.
func (s *Synchronizer) Clear(ctx context.Context) {
	s.setItems(nil)
	if err := s.store.Remove(ctx, localCartKey); err != nil {
		logger.FromCtx(ctx).Error("failed to clear guest cart", zap.Error(err))
	}
}

// Reset empties only the in-memory cart. Used at logout: the session
// detaches from the remote cart without deleting it, and any merged guest
// payload is already gone.
func (s *Synchronizer) Reset() {
	s.setItems(nil)
}

// readLocal loads and parses the guest payload. Absent or corrupt payloads
// come back as an empty cart, never as an error.
func (s *Synchronizer) readLocal(ctx context.Context) []Line {
	payload, err := s.store.Get(ctx, localCartKey)
	if errors.Is(err, localstore.ErrNotFound) {
		return nil
	}
	if err != nil {
		logger.FromCtx(ctx).Warn("failed to read guest cart", zap.Error(err))
		return nil
	}
	lines, err := decodeLocal(payload)
	if err != nil {
		logger.FromCtx(ctx).Warn("guest cart payload is corrupt, treating as empty", zap.Error(err))
		return nil
	}
	return lines
}

// persistLocal overwrites the guest payload with the full serialized cart.
func (s *Synchronizer) persistLocal(ctx context.Context, lines []Line) {
	payload, err := encodeLocal(lines)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to serialize guest cart", zap.Error(err))
		return
	}
	if err := s.store.Set(ctx, localCartKey, payload); err != nil {
		logger.FromCtx(ctx).Error("failed to persist guest cart", zap.Error(err))
	}
}

func (s *Synchronizer) setItems(lines []Line) {
	s.mu.Lock()
	s.items = lines
	s.mu.Unlock()
}

func (s *Synchronizer) snapshotLocked() []Line {
	out := make([]Line, len(s.items))
	copy(out, s.items)
	return out
}

func indexOf(lines []Line, productID uint) int {
	for i, l := range lines {
		if l.ProductID == productID {
			return i
		}
	}
	return -1
}

func findLine(lines []Line, productID uint) (Line, bool) {
	if i := indexOf(lines, productID); i >= 0 {
		return lines[i], true
	}
	return Line{}, false
}
