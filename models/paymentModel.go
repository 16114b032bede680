package models

import "time"

type Payment struct {
	PaymentID     int       `json:"payment_id"`
	OrderID       int       `json:"order_id"`
	Amount        Amount    `json:"amount"`
	Currency      string    `json:"currency"`
	PaymentMethod string    `json:"payment_method"`
	TransactionID string    `json:"transaction_id,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
