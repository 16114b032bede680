package services

import (
	"fmt"
	"net/http"

	"github.com/streetware/gateway/models"
)

// GetCart fetches the authenticated user's cart. A 404 means the user has no
// cart yet, in which case one is created on the fly.
func (c *BackendClient) GetCart(token string) (models.Cart, error) {
	var cart models.Cart
	resp, err := c.request(token).SetResult(&cart).Get("/cart")
	if err != nil {
		return models.Cart{}, fmt.Errorf("fetch cart request failed: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return c.CreateCart(token)
	}
	if resp.IsError() {
		return models.Cart{}, apiError(resp, "Failed to fetch cart")
	}
	return cart, nil
}

func (c *BackendClient) CreateCart(token string) (models.Cart, error) {
	var cart models.Cart
	resp, err := c.request(token).SetResult(&cart).Post("/cart")
	if err != nil {
		return models.Cart{}, fmt.Errorf("create cart request failed: %w", err)
	}
	if resp.IsError() {
		return models.Cart{}, apiError(resp, "Failed to create cart")
	}
	return cart, nil
}

func (c *BackendClient) AddToCart(token string, productID, quantity int) error {
	resp, err := c.request(token).
		SetBody(map[string]int{"product_id": productID, "quantity": quantity}).
		Post("/cart/add")
	if err != nil {
		return fmt.Errorf("add to cart request failed: %w", err)
	}
	if resp.IsError() {
		return apiError(resp, "Failed to add item to cart")
	}
	return nil
}

func (c *BackendClient) RemoveFromCart(token string, productID int) error {
	resp, err := c.request(token).
		SetBody(map[string]int{"product_id": productID}).
		Post("/cart/remove")
	if err != nil {
		return fmt.Errorf("remove from cart request failed: %w", err)
	}
	if resp.IsError() {
		return apiError(resp, "Failed to remove item from cart")
	}
	return nil
}

func (c *BackendClient) UpdateCartItem(token string, cartItemID, quantity int) error {
	resp, err := c.request(token).
		SetBody(map[string]int{"cart_item_id": cartItemID, "quantity": quantity}).
		Post("/cart/update")
	if err != nil {
		return fmt.Errorf("update cart item request failed: %w", err)
	}
	if resp.IsError() {
		return apiError(resp, "Failed to update cart item")
	}
	return nil
}

func (c *BackendClient) ClearCart(token string) error {
	resp, err := c.request(token).Post("/cart/clear")
	if err != nil {
		return fmt.Errorf("clear cart request failed: %w", err)
	}
	if resp.IsError() {
		return apiError(resp, "Failed to clear cart")
	}
	return nil
}

// CheckoutResponse is the backend's answer to a successful checkout.
type CheckoutResponse struct {
	OrderID     int           `json:"order_id"`
	TotalAmount models.Amount `json:"total_amount"`
}

func (c *BackendClient) Checkout(token string, cartID int, paymentMethod, shippingAddress string) (CheckoutResponse, error) {
	var result CheckoutResponse
	resp, err := c.request(token).
		SetBody(map[string]any{
			"cart_id":          cartID,
			"payment_method":   paymentMethod,
			"shipping_address": shippingAddress,
		}).
		SetResult(&result).
		Post("/cart/checkout")
	if err != nil {
		return CheckoutResponse{}, fmt.Errorf("checkout request failed: %w", err)
	}
	if resp.IsError() {
		return CheckoutResponse{}, apiError(resp, "Checkout failed")
	}
	return result, nil
}
