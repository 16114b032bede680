package views

import (
	"sort"
	"strings"

	"github.com/streetware/gateway/models"
)

type DashboardStats struct {
	TotalOrders   int     `json:"total_orders"`
	TotalProducts int     `json:"total_products"`
	PendingOrders int     `json:"pending_orders"`
	Revenue       float64 `json:"revenue"`
}

// Dashboard aggregates the admin landing-page stats. Pending counts orders
// that are still in flight (placed or shipped).
func Dashboard(orders []models.Order, products []models.Product) DashboardStats {
	stats := DashboardStats{
		TotalOrders:   len(orders),
		TotalProducts: len(products),
	}
	for _, o := range orders {
		status := strings.ToLower(o.Status)
		if status == models.OrderStatusPlaced || status == models.OrderStatusShipped {
			stats.PendingOrders++
		}
		stats.Revenue += o.TotalAmount.Float64()
	}
	return stats
}

// RecentOrders returns the n newest orders by creation date.
func RecentOrders(orders []models.Order, n int) []models.Order {
	recent := make([]models.Order, len(orders))
	copy(recent, orders)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[j].CreatedAt.Before(recent[i].CreatedAt)
	})
	if len(recent) > n {
		recent = recent[:n]
	}
	return recent
}
