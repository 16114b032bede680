package services

import (
	"fmt"

	"github.com/streetware/gateway/models"
)

func (c *BackendClient) CreatePayment(token string, orderID int, amount float64, paymentMethod string) (models.Payment, error) {
	var payment models.Payment
	resp, err := c.request(token).
		SetBody(map[string]any{
			"order_id":       orderID,
			"amount":         amount,
			"currency":       "USD",
			"payment_method": paymentMethod,
		}).
		SetResult(&payment).
		Post("/payments")
	if err != nil {
		return models.Payment{}, fmt.Errorf("create payment request failed: %w", err)
	}
	if resp.IsError() {
		return models.Payment{}, apiError(resp, "Failed to create payment")
	}
	return payment, nil
}

func (c *BackendClient) GetPaymentByOrderID(token string, orderID int) (models.Payment, error) {
	var payment models.Payment
	resp, err := c.request(token).SetResult(&payment).Get(fmt.Sprintf("/payments/order/%d", orderID))
	if err != nil {
		return models.Payment{}, fmt.Errorf("fetch payment request failed: %w", err)
	}
	if resp.IsError() {
		return models.Payment{}, apiError(resp, "Failed to fetch payment details")
	}
	return payment, nil
}

func (c *BackendClient) UpdatePaymentStatus(token string, paymentID int, status string) error {
	resp, err := c.request(token).
		SetBody(map[string]string{"status": status}).
		Put(fmt.Sprintf("/payments/%d", paymentID))
	if err != nil {
		return fmt.Errorf("update payment status request failed: %w", err)
	}
	if resp.IsError() {
		return apiError(resp, "Failed to update payment status")
	}
	return nil
}
