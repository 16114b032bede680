package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/streetware/gateway/models"
)

func testOrders() []models.Order {
	day := func(d int) time.Time {
		return time.Date(2025, 6, d, 12, 0, 0, 0, time.UTC)
	}
	return []models.Order{
		{OrderID: 101, UserID: 7, TotalAmount: 250, Status: "placed", PaymentStatus: "pending", PaymentMethod: "COD", ShippingAddress: "Ada Okoro, 5 Market Lane, Lagos", CreatedAt: day(3)},
		{OrderID: 102, UserID: 8, TotalAmount: 1200, Status: "Shipped", PaymentStatus: "paid", PaymentMethod: "CARD", ShippingAddress: "Ben Carter, 9 Hill Road, Abuja", CreatedAt: day(1)},
		{OrderID: 103, UserID: 7, TotalAmount: 600, Status: "delivered", PaymentStatus: "Paid", PaymentMethod: "CARD", ShippingAddress: "Ada Okoro, 5 Market Lane, Lagos", CreatedAt: day(2)},
	}
}

func orderIDs(orders []models.Order) []int {
	out := make([]int, len(orders))
	for i, o := range orders {
		out[i] = o.OrderID
	}
	return out
}

func TestOrderFiltersSearch(t *testing.T) {
	t.Run("by order id", func(t *testing.T) {
		result := OrderFilters{Search: "102"}.Apply(testOrders())
		assert.Equal(t, []int{102}, orderIDs(result))
	})

	t.Run("by user id", func(t *testing.T) {
		result := OrderFilters{Search: "7"}.Apply(testOrders())
		assert.Equal(t, []int{101, 103}, orderIDs(result))
	})

	t.Run("by shipping address", func(t *testing.T) {
		result := OrderFilters{Search: "hill road"}.Apply(testOrders())
		assert.Equal(t, []int{102}, orderIDs(result))
	})
}

func TestOrderFiltersStatusFields(t *testing.T) {
	t.Run("status is case-insensitive", func(t *testing.T) {
		result := OrderFilters{Status: "shipped"}.Apply(testOrders())
		assert.Equal(t, []int{102}, orderIDs(result))
	})

	t.Run("payment status", func(t *testing.T) {
		result := OrderFilters{PaymentStatus: "paid"}.Apply(testOrders())
		assert.Equal(t, []int{102, 103}, orderIDs(result))
	})

	t.Run("payment method combined with status", func(t *testing.T) {
		result := OrderFilters{PaymentMethod: "card", Status: "delivered"}.Apply(testOrders())
		assert.Equal(t, []int{103}, orderIDs(result))
	})
}

func TestOrderFiltersSort(t *testing.T) {
	cases := []struct {
		sort string
		want []int
	}{
		{"date-asc", []int{102, 103, 101}},
		{"date-desc", []int{101, 103, 102}},
		{"total-asc", []int{101, 103, 102}},
		{"total-desc", []int{102, 103, 101}},
		{"id-asc", []int{101, 102, 103}},
		{"id-desc", []int{103, 102, 101}},
	}
	for _, tc := range cases {
		t.Run(tc.sort, func(t *testing.T) {
			result := OrderFilters{Sort: tc.sort}.Apply(testOrders())
			assert.Equal(t, tc.want, orderIDs(result))
		})
	}
}

func TestDashboard(t *testing.T) {
	orders := testOrders()
	products := testCatalog()

	stats := Dashboard(orders, products)
	assert.Equal(t, 3, stats.TotalOrders)
	assert.Equal(t, 4, stats.TotalProducts)
	assert.Equal(t, 2, stats.PendingOrders) // placed + shipped
	assert.InDelta(t, 2050.0, stats.Revenue, 1e-9)
}

func TestRecentOrders(t *testing.T) {
	recent := RecentOrders(testOrders(), 2)
	assert.Equal(t, []int{101, 103}, orderIDs(recent))
}
