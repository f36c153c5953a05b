package catalog

import (
	"context"
	"errors"
)

var ErrProductNotFound = errors.New("product not found")

// Default query sizes, matching what the storefront UI requests.
const (
	DefaultPerPage       = 8
	DefaultSearchLimit   = 5
	DefaultCategoryLimit = 12
)

// API is the remote catalog surface the service consumes.
type API interface {
	Products(ctx context.Context) ([]Product, error)
	LatestProducts(ctx context.Context) ([]Product, error)
	ProductsPage(ctx context.Context, page, perPage int) (*Page, error)
	ProductByID(ctx context.Context, id uint) (*Product, error)
	SearchProducts(ctx context.Context, query string, limit int) ([]Product, error)
	ProductsByCategory(ctx context.Context, slug string, limit int) ([]Product, error)
	ProductsByTag(ctx context.Context, tag string) ([]Product, error)
	Categories(ctx context.Context) ([]Category, error)
	CategoryBySlug(ctx context.Context, slug string) (*Category, error)
}

// Service defines product and category lookup for the client.
type Service interface {
	All(ctx context.Context) ([]Product, error)
	Latest(ctx context.Context) ([]Product, error)
	Page(ctx context.Context, page, perPage int) (*Page, error)
	ByID(ctx context.Context, id uint) (*Product, error)
	Search(ctx context.Context, query string, limit int) ([]Product, error)
	ByCategory(ctx context.Context, slug string, limit int) ([]Product, error)
	ByTag(ctx context.Context, tag string) ([]Product, error)
	Categories(ctx context.Context) ([]Category, error)
	CategoryBySlug(ctx context.Context, slug string) (*Category, error)
}

type service struct {
	api API
}

// NewService creates a new catalog service
func NewService(api API) Service {
	return &service{api: api}
}

func (s *service) All(ctx context.Context) ([]Product, error) {
	return s.api.Products(ctx)
}

func (s *service) Latest(ctx context.Context) ([]Product, error) {
	return s.api.LatestProducts(ctx)
}

func (s *service) Page(ctx context.Context, page, perPage int) (*Page, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	return s.api.ProductsPage(ctx, page, perPage)
}

func (s *service) ByID(ctx context.Context, id uint) (*Product, error) {
	p, err := s.api.ProductByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (s *service) Search(ctx context.Context, query string, limit int) ([]Product, error) {
	if limit < 1 {
		limit = DefaultSearchLimit
	}
	return s.api.SearchProducts(ctx, query, limit)
}

func (s *service) ByCategory(ctx context.Context, slug string, limit int) ([]Product, error) {
	if limit < 1 {
		limit = DefaultCategoryLimit
	}
	return s.api.ProductsByCategory(ctx, slug, limit)
}

func (s *service) ByTag(ctx context.Context, tag string) ([]Product, error) {
	return s.api.ProductsByTag(ctx, tag)
}

func (s *service) Categories(ctx context.Context) ([]Category, error) {
	return s.api.Categories(ctx)
}

func (s *service) CategoryBySlug(ctx context.Context, slug string) (*Category, error) {
	return s.api.CategoryBySlug(ctx, slug)
}
