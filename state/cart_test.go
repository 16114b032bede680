package state

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streetware/gateway/models"
	"github.com/streetware/gateway/services"
)

func TestTotals(t *testing.T) {
	t.Run("empty list is zero", func(t *testing.T) {
		assert.Equal(t, 0, TotalItems(nil))
		assert.Equal(t, 0.0, TotalPrice(nil))
	})

	t.Run("sums quantities and line totals", func(t *testing.T) {
		items := []models.CartItem{
			{CartItemID: 1, ProductID: 3, Quantity: 2, Price: 1299},
			{CartItemID: 2, ProductID: 7, Quantity: 1, Price: 799},
		}
		assert.Equal(t, 3, TotalItems(items))
		assert.InDelta(t, 3397.0, TotalPrice(items), 1e-9)
	})
}

// fakeBackend is an in-memory stand-in for the remote cart API.
type fakeBackend struct {
	items  []models.CartItem
	nextID int
}

func (f *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /cart", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.Cart{CartID: 1, UserID: 7, Items: f.items})
	})
	mux.HandleFunc("POST /cart/add", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ProductID int `json:"product_id"`
			Quantity  int `json:"quantity"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		f.nextID++
		f.items = append(f.items, models.CartItem{
			CartItemID: f.nextID,
			ProductID:  req.ProductID,
			Quantity:   req.Quantity,
			Price:      1299,
		})
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"message":"added"}`))
	})
	mux.HandleFunc("POST /cart/update", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			CartItemID int `json:"cart_item_id"`
			Quantity   int `json:"quantity"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		for i := range f.items {
			if f.items[i].CartItemID == req.CartItemID {
				f.items[i].Quantity = req.Quantity
			}
		}
		w.Write([]byte(`{"message":"updated"}`))
	})
	mux.HandleFunc("POST /cart/remove", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ProductID int `json:"product_id"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		kept := f.items[:0]
		for _, item := range f.items {
			if item.ProductID != req.ProductID {
				kept = append(kept, item)
			}
		}
		f.items = kept
		w.Write([]byte(`{"message":"removed"}`))
	})
	mux.HandleFunc("POST /cart/clear", func(w http.ResponseWriter, r *http.Request) {
		f.items = nil
		w.Write([]byte(`{"message":"cleared"}`))
	})
	return mux
}

func TestCartHolderLifecycle(t *testing.T) {
	backend := &fakeBackend{}
	srv := httptest.NewServer(backend.handler())
	defer srv.Close()

	holder := NewCartHolder(services.NewBackendClient(srv.URL), "test-token")

	// Add product 3 twice to an empty cart.
	require.NoError(t, holder.Add(3, 2))
	assert.Equal(t, 2, holder.TotalItems())
	assert.InDelta(t, 2598.0, holder.TotalPrice(), 1e-9)

	// Drop the line back to a single unit.
	item := holder.Cart().Items[0]
	require.NoError(t, holder.Update(item.CartItemID, 1))
	assert.Equal(t, 1, holder.TotalItems())
	assert.InDelta(t, 1299.0, holder.TotalPrice(), 1e-9)

	// Quantity below one is clamped, not sent.
	require.NoError(t, holder.Update(item.CartItemID, 0))
	assert.Equal(t, 1, holder.TotalItems())

	require.NoError(t, holder.Remove(3))
	assert.Equal(t, 0, holder.TotalItems())

	require.NoError(t, holder.Add(5, 1))
	require.NoError(t, holder.Clear())
	assert.Empty(t, holder.Cart().Items)
}

func TestCartHolderUnauthenticatedIsNoop(t *testing.T) {
	holder := NewCartHolder(services.NewBackendClient("http://127.0.0.1:0"), "")

	require.NoError(t, holder.Fetch())
	require.NoError(t, holder.Add(1, 1))
	require.NoError(t, holder.Clear())
	assert.Equal(t, 0, holder.TotalItems())
	assert.False(t, holder.Loaded())
}
