package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/cart/add":
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"message":"Insufficient stock"}`))
		case "/cart/remove":
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`not json`))
		}
	}))
	defer srv.Close()

	client := NewBackendClient(srv.URL)

	t.Run("server message wins", func(t *testing.T) {
		err := client.AddToCart("tok", 1, 1)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.Equal(t, "Insufficient stock", apiErr.Message)
	})

	t.Run("fallback when body is not json", func(t *testing.T) {
		err := client.RemoveFromCart("tok", 1)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
		assert.Equal(t, "Failed to remove item from cart", apiErr.Message)
	})
}

func TestRequestAuthorization(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"cart_id":1,"user_id":2,"CartItems":[]}`))
	}))
	defer srv.Close()

	client := NewBackendClient(srv.URL)

	_, err := client.GetCart("secret-token")
	require.NoError(t, err)
	assert.Equal(t, "Bearer secret-token", gotAuth)
}

func TestGetCartCreatesWhenMissing(t *testing.T) {
	created := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"Cart not found"}`))
			return
		}
		created = true
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"cart_id":9,"user_id":2,"CartItems":[]}`))
	}))
	defer srv.Close()

	cart, err := NewBackendClient(srv.URL).GetCart("tok")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 9, cart.CartID)
}

func TestGetProductsFallsBackToMockCatalog(t *testing.T) {
	t.Run("backend unreachable", func(t *testing.T) {
		client := NewBackendClient("http://127.0.0.1:0")
		products, err := client.GetProducts()
		require.NoError(t, err)
		assert.Equal(t, MockCatalog(), products)
	})

	t.Run("backend errors", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		products, err := NewBackendClient(srv.URL).GetProducts()
		require.NoError(t, err)
		assert.Equal(t, MockCatalog(), products)
	})

	t.Run("healthy backend is passed through", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[{"product_id":42,"name":"Vintage Tee","price":499}]`))
		}))
		defer srv.Close()

		products, err := NewBackendClient(srv.URL).GetProducts()
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, 42, products[0].ProductID)
		assert.Equal(t, 499.0, products[0].Price.Float64())
	})
}

func TestGetProductByIDFallback(t *testing.T) {
	client := NewBackendClient("http://127.0.0.1:0")

	t.Run("known id served from mock catalog", func(t *testing.T) {
		product, err := client.GetProductByID(MockCatalog()[0].ProductID)
		require.NoError(t, err)
		assert.Equal(t, MockCatalog()[0], product)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := client.GetProductByID(99999)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	})
}
