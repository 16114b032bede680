package services

import (
	"fmt"

	"github.com/streetware/gateway/models"
)

func (c *BackendClient) GetOrders(token string) ([]models.Order, error) {
	var orders []models.Order
	resp, err := c.request(token).SetResult(&orders).Get("/orders")
	if err != nil {
		return nil, fmt.Errorf("fetch orders request failed: %w", err)
	}
	if resp.IsError() {
		return nil, apiError(resp, "Failed to fetch orders")
	}
	return orders, nil
}

func (c *BackendClient) GetOrderByID(token string, id int) (models.Order, error) {
	var order models.Order
	resp, err := c.request(token).SetResult(&order).Get(fmt.Sprintf("/orders/%d", id))
	if err != nil {
		return models.Order{}, fmt.Errorf("fetch order request failed: %w", err)
	}
	if resp.IsError() {
		return models.Order{}, apiError(resp, "Failed to fetch order details")
	}
	return order, nil
}

func (c *BackendClient) UpdateOrderStatus(token string, id int, status string) error {
	resp, err := c.request(token).
		SetBody(map[string]string{"status": status}).
		Put(fmt.Sprintf("/orders/%d", id))
	if err != nil {
		return fmt.Errorf("update order status request failed: %w", err)
	}
	if resp.IsError() {
		return apiError(resp, "Failed to update order status")
	}
	return nil
}
