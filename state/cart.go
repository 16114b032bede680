package state

import (
	"github.com/streetware/gateway/models"
	"github.com/streetware/gateway/services"
)

// CartHolder owns the in-memory cart for one authenticated user. Every
// mutation calls the backend and then reconciles with an authoritative
// wholesale refetch; there is no optimistic merge. For an unauthenticated
// session all operations are no-ops over an empty cart.
type CartHolder struct {
	backend *services.BackendClient
	token   string
	cart    models.Cart
	loaded  bool
}

func NewCartHolder(backend *services.BackendClient, token string) *CartHolder {
	return &CartHolder{backend: backend, token: token}
}

func (h *CartHolder) Fetch() error {
	if h.token == "" {
		return nil
	}
	cart, err := h.backend.GetCart(h.token)
	if err != nil {
		return err
	}
	h.cart = cart
	h.loaded = true
	return nil
}

func (h *CartHolder) Add(productID, quantity int) error {
	if h.token == "" {
		return nil
	}
	if err := h.backend.AddToCart(h.token, productID, quantity); err != nil {
		return err
	}
	return h.Fetch()
}

func (h *CartHolder) Remove(productID int) error {
	if h.token == "" {
		return nil
	}
	if err := h.backend.RemoveFromCart(h.token, productID); err != nil {
		return err
	}
	return h.Fetch()
}

func (h *CartHolder) Update(cartItemID, quantity int) error {
	if h.token == "" {
		return nil
	}
	if quantity < 1 {
		quantity = 1
	}
	if err := h.backend.UpdateCartItem(h.token, cartItemID, quantity); err != nil {
		return err
	}
	return h.Fetch()
}

func (h *CartHolder) Clear() error {
	if h.token == "" {
		return nil
	}
	if err := h.backend.ClearCart(h.token); err != nil {
		return err
	}
	return h.Fetch()
}

func (h *CartHolder) Cart() models.Cart {
	return h.cart
}

func (h *CartHolder) Loaded() bool {
	return h.loaded
}

// TotalItems is the sum of line quantities.
func (h *CartHolder) TotalItems() int {
	return TotalItems(h.cart.Items)
}

// TotalPrice is the sum of price x quantity over all lines.
func (h *CartHolder) TotalPrice() float64 {
	return TotalPrice(h.cart.Items)
}

func TotalItems(items []models.CartItem) int {
	total := 0
	for _, item := range items {
		total += item.Quantity
	}
	return total
}

func TotalPrice(items []models.CartItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Price.Float64() * float64(item.Quantity)
	}
	return total
}
