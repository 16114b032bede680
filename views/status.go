package views

import "strings"

// StatusView drives the 3-stage order progress indicator. Step 0 means the
// status sits outside the linear progression; the bar is hidden entirely for
// cancelled orders.
type StatusView struct {
	Step         int    `json:"step"`
	Icon         string `json:"icon"`
	Description  string `json:"description"`
	ShowProgress bool   `json:"show_progress"`
}

// StatusStep maps an order status, case-insensitively, to its progress step:
// placed=1, shipped=2, delivered=3, anything else 0.
func StatusStep(status string) int {
	switch strings.ToLower(status) {
	case "placed":
		return 1
	case "shipped":
		return 2
	case "delivered":
		return 3
	default:
		return 0
	}
}

func StatusIcon(status string) string {
	switch strings.ToLower(status) {
	case "placed":
		return "clock"
	case "shipped":
		return "truck"
	case "delivered":
		return "check-circle"
	case "cancelled":
		return "alert-circle"
	default:
		return "package"
	}
}

func StatusDescription(status string) string {
	switch strings.ToLower(status) {
	case "placed":
		return "Your order has been received and is being processed"
	case "shipped":
		return "Your order is on its way to you"
	case "delivered":
		return "Your order has been delivered"
	case "cancelled":
		return "Your order has been cancelled"
	default:
		return "Order status unknown"
	}
}

func OrderStatusView(status string) StatusView {
	return StatusView{
		Step:         StatusStep(status),
		Icon:         StatusIcon(status),
		Description:  StatusDescription(status),
		ShowProgress: strings.ToLower(status) != "cancelled",
	}
}
