package models

import "time"

// Order statuses form a linear progression placed -> shipped -> delivered,
// with cancelled as an alternate terminal state.
const (
	OrderStatusPlaced    = "placed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

type OrderItem struct {
	ProductID int              `json:"product_id"`
	Quantity  int              `json:"quantity"`
	Price     Amount           `json:"price"`
	Product   *ProductSnapshot `json:"Product,omitempty"`
}

type Order struct {
	OrderID              int         `json:"order_id"`
	UserID               int         `json:"user_id"`
	TotalAmount          Amount      `json:"total_amount"`
	Status               string      `json:"status"`
	PaymentMethod        string      `json:"payment_method"`
	PaymentStatus        string      `json:"payment_status"`
	ShippingAddress      string      `json:"shipping_address"`
	TrackingNumber       string      `json:"tracking_number,omitempty"`
	ExpectedDeliveryDate string      `json:"expected_delivery_date,omitempty"`
	CreatedAt            time.Time   `json:"createdAt"`
	UpdatedAt            time.Time   `json:"updatedAt"`
	Items                []OrderItem `json:"OrderItems"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
