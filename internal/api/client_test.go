package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sportshop-client/internal/cart"
	"sportshop-client/internal/checkout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticTokens string

func (s staticTokens) Token(context.Context) string { return string(s) }

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, 5*time.Second, staticTokens("test-token"))
}

func TestClient_FetchCart(t *testing.T) {
	ctx := context.Background()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/cart", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":11,"cart_id":3,"product_id":7,"quantity":2,
			"product":{"id":7,"title":"Whey","price":"199.90","images":[{"id":1,"product_id":7,"path":"/img/whey.jpg"}]}}]`))
	}))

	lines, err := client.FetchCart(ctx)

	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, cart.KindRemote, lines[0].Kind)
	assert.Equal(t, uint(11), lines[0].ID)
	assert.Equal(t, uint(7), lines[0].ProductID)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "Whey", lines[0].DisplayTitle())
	assert.Equal(t, "/img/whey.jpg", lines[0].DisplayImage())
}

func TestClient_AddItem(t *testing.T) {
	ctx := context.Background()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/cart", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]int
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 7, body["product_id"])
		assert.Equal(t, 2, body["quantity"])

		w.Write([]byte(`[]`))
	}))

	_, err := client.AddItem(ctx, 7, 2)
	assert.NoError(t, err)
}

func TestClient_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			assert.Equal(t, "/cart/7", r.URL.Path)
			var body map[string]int
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, 5, body["quantity"])
		case http.MethodDelete:
			assert.Equal(t, "/cart/7", r.URL.Path)
		default:
			t.Errorf("unexpected method %s", r.Method)
		}
		w.Write([]byte(`[]`))
	}))

	_, err := client.UpdateItemQuantity(ctx, 7, 5)
	assert.NoError(t, err)

	_, err = client.DeleteItem(ctx, 7)
	assert.NoError(t, err)
}

func TestClient_ErrorResponses(t *testing.T) {
	ctx := context.Background()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"unauthenticated"}`, http.StatusUnauthorized)
	}))

	_, err := client.FetchCart(ctx)

	require.Error(t, err)
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "unauthenticated")
	assert.True(t, IsUnauthorized(err))
	assert.False(t, IsNotFound(err))
}

func TestClient_ProductByID_NotFound(t *testing.T) {
	ctx := context.Background()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	product, err := client.ProductByID(ctx, 404)

	assert.NoError(t, err)
	assert.Nil(t, product)
}

func TestClient_Login(t *testing.T) {
	ctx := context.Background()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/login", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "a@b.c", body["email"])

		w.Write([]byte(`{"user":{"id":42,"name":"Test","email":"a@b.c"},"access_token":"jwt-here"}`))
	}))

	res, err := client.Login(ctx, "a@b.c", "pw")

	require.NoError(t, err)
	assert.Equal(t, uint(42), res.User.ID)
	assert.Equal(t, "jwt-here", res.AccessToken)
}

func TestClient_CreateOrder(t *testing.T) {
	ctx := context.Background()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/checkout", r.URL.Path)
		var body struct {
			Items []checkout.OrderItem `json:"items"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.Items, 1)
		assert.Equal(t, uint(7), body.Items[0].ProductID)

		w.Write([]byte(`{"url":"https://pay.example/session/abc"}`))
	}))

	url, err := client.CreateOrder(ctx, []checkout.OrderItem{{ProductID: 7, Quantity: 2}})

	require.NoError(t, err)
	assert.Equal(t, "https://pay.example/session/abc", url)
}

func TestClient_ProductsPage(t *testing.T) {
	ctx := context.Background()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/paginated", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "8", r.URL.Query().Get("per_page"))

		w.Write([]byte(`{"data":[{"id":1,"title":"Whey","price":"199.90"}],"last_page":3,"current_page":2,"total":20}`))
	}))

	page, err := client.ProductsPage(ctx, 2, 8)

	require.NoError(t, err)
	assert.Equal(t, 2, page.CurrentPage)
	assert.Equal(t, 20, page.Total)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Whey", page.Data[0].Title)
}
