package session

import (
	"context"
	"errors"

	"sportshop-client/internal/localstore"
	"sportshop-client/internal/logger"

	"go.uber.org/zap"
)

// tokenKey is the well-known local-store key for the access token.
const tokenKey = "token"

// TokenStore persists the bearer access token between runs. It is the
// credential source the API transport reads on every request.
type TokenStore struct {
	store localstore.Store
}

func NewTokenStore(store localstore.Store) *TokenStore {
	return &TokenStore{store: store}
}

func (t *TokenStore) Save(ctx context.Context, token string) error {
	return t.store.Set(ctx, tokenKey, token)
}

// Load returns the stored token, or "" when none is stored.
func (t *TokenStore) Load(ctx context.Context) (string, error) {
	token, err := t.store.Get(ctx, tokenKey)
	if errors.Is(err, localstore.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return token, nil
}

func (t *TokenStore) Clear(ctx context.Context) error {
	return t.store.Remove(ctx, tokenKey)
}

// Token implements the transport's credential source. A read failure means
// the request goes out unauthenticated; the server rejects it if auth was
// required.
func (t *TokenStore) Token(ctx context.Context) string {
	token, err := t.Load(ctx)
	if err != nil {
		logger.FromCtx(ctx).Warn("failed to load access token", zap.Error(err))
		return ""
	}
	return token
}
