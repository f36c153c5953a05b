package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"sportshop-client/internal/catalog"
)

// Products implements catalog.API.
func (c *Client) Products(ctx context.Context) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := c.get(ctx, "/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// LatestProducts implements catalog.API.
func (c *Client) LatestProducts(ctx context.Context) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := c.get(ctx, "/products/latest", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// ProductsPage implements catalog.API.
func (c *Client) ProductsPage(ctx context.Context, page, perPage int) (*catalog.Page, error) {
	query := url.Values{
		"page":     {strconv.Itoa(page)},
		"per_page": {strconv.Itoa(perPage)},
	}
	var result catalog.Page
	if err := c.get(ctx, "/products/paginated", query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ProductByID implements catalog.API.
func (c *Client) ProductByID(ctx context.Context, id uint) (*catalog.Product, error) {
	var product catalog.Product
	err := c.get(ctx, fmt.Sprintf("/products/%d", id), nil, &product)
	if IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// SearchProducts implements catalog.API.
func (c *Client) SearchProducts(ctx context.Context, queryText string, limit int) ([]catalog.Product, error) {
	query := url.Values{
		"query": {queryText},
		"limit": {strconv.Itoa(limit)},
	}
	var products []catalog.Product
	if err := c.get(ctx, "/products/search", query, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// ProductsByCategory implements catalog.API.
func (c *Client) ProductsByCategory(ctx context.Context, slug string, limit int) ([]catalog.Product, error) {
	query := url.Values{"limit": {strconv.Itoa(limit)}}
	var products []catalog.Product
	if err := c.get(ctx, "/products/category/"+url.PathEscape(slug), query, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// ProductsByTag implements catalog.API.
func (c *Client) ProductsByTag(ctx context.Context, tag string) ([]catalog.Product, error) {
	query := url.Values{"tag": {tag}}
	var products []catalog.Product
	if err := c.get(ctx, "/products/tags", query, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Categories implements catalog.API.
func (c *Client) Categories(ctx context.Context) ([]catalog.Category, error) {
	var categories []catalog.Category
	if err := c.get(ctx, "/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CategoryBySlug implements catalog.API.
func (c *Client) CategoryBySlug(ctx context.Context, slug string) (*catalog.Category, error) {
	var category catalog.Category
	err := c.get(ctx, "/categories/"+url.PathEscape(slug), nil, &category)
	if IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}
