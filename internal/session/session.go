// Package session tracks who the client is acting as. A non-nil User means
// authenticated mode; nil means guest. Identity is derived from the stored
// access token's claims, so no network round trip is needed to answer
// "who am I" on startup.
package session

import (
	"context"
	"errors"
	"time"

	"sportshop-client/internal/logger"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

type User struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Claims mirrors the token payload the storefront API signs.
type Claims struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

type AuthResult struct {
	User        User   `json:"user"`
	AccessToken string `json:"access_token"`
}

type RegisterInput struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// API is the remote auth surface the manager consumes.
type API interface {
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*User, error)
}

var ErrNotAuthenticated = errors.New("not authenticated")

// Manager owns the session lifecycle: login stores the token, Current
// derives the user from it, logout detaches. It never touches the cart; the
// caller decides what happens to cart state on session changes.
type Manager struct {
	api    API
	tokens *TokenStore
}

func NewManager(api API, tokens *TokenStore) *Manager {
	return &Manager{api: api, tokens: tokens}
}

// Current returns the authenticated user, or nil in guest mode. An invalid
// or expired stored token is dropped so later requests go out clean.
func (m *Manager) Current(ctx context.Context) *User {
	token, err := m.tokens.Load(ctx)
	if err != nil {
		logger.FromCtx(ctx).Warn("failed to load access token", zap.Error(err))
		return nil
	}
	if token == "" {
		return nil
	}

	claims, err := parseClaims(token)
	if err != nil {
		logger.FromCtx(ctx).Warn("dropping unreadable access token", zap.Error(err))
		_ = m.tokens.Clear(ctx)
		return nil
	}

	if claims.ExpiresAt != nil && time.Now().After(claims.ExpiresAt.Time) {
		logger.FromCtx(ctx).Info("access token expired, switching to guest mode")
		_ = m.tokens.Clear(ctx)
		return nil
	}

	return &User{ID: claims.UserID, Name: claims.Name, Email: claims.Email}
}

func (m *Manager) Login(ctx context.Context, email, password string) (*User, error) {
	res, err := m.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := m.tokens.Save(ctx, res.AccessToken); err != nil {
		return nil, err
	}
	return &res.User, nil
}

func (m *Manager) Register(ctx context.Context, input RegisterInput) (*User, error) {
	res, err := m.api.Register(ctx, input)
	if err != nil {
		return nil, err
	}
	if err := m.tokens.Save(ctx, res.AccessToken); err != nil {
		return nil, err
	}
	return &res.User, nil
}

// Logout revokes the session server-side and always drops the local token.
// The remote cart stays on the server untouched; only the attachment to it
// ends here.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.api.Logout(ctx); err != nil {
		logger.FromCtx(ctx).Warn("server logout failed, clearing local session anyway", zap.Error(err))
	}
	return m.tokens.Clear(ctx)
}

// parseClaims decodes the token payload without verifying the signature.
// Verification is the server's job; the client only needs the identity and
// expiry baked into a token it received over TLS.
func parseClaims(token string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, err
	}
	if claims.UserID == 0 {
		return nil, errors.New("token carries no user id")
	}
	return claims, nil
}
