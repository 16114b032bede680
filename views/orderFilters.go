package views

import (
	"sort"
	"strconv"
	"strings"

	"github.com/streetware/gateway/models"
)

// OrderFilters is the admin order-list filter set: substring search over
// order id, user id and shipping address, exact (case-insensitive) matches on
// the status fields, and six sort modes.
type OrderFilters struct {
	Search        string
	Status        string
	PaymentStatus string
	PaymentMethod string
	Sort          string // date-asc | date-desc | total-asc | total-desc | id-asc | id-desc
}

func (f OrderFilters) Apply(orders []models.Order) []models.Order {
	result := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if f.matches(o) {
			result = append(result, o)
		}
	}

	switch f.Sort {
	case "date-asc":
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		})
	case "date-desc":
		sort.SliceStable(result, func(i, j int) bool {
			return result[j].CreatedAt.Before(result[i].CreatedAt)
		})
	case "total-asc":
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].TotalAmount < result[j].TotalAmount
		})
	case "total-desc":
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].TotalAmount > result[j].TotalAmount
		})
	case "id-asc":
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].OrderID < result[j].OrderID
		})
	case "id-desc":
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].OrderID > result[j].OrderID
		})
	}
	return result
}

func (f OrderFilters) matches(o models.Order) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strconv.Itoa(o.OrderID), needle) &&
			!strings.Contains(strconv.Itoa(o.UserID), needle) &&
			!strings.Contains(strings.ToLower(o.ShippingAddress), needle) {
			return false
		}
	}
	if f.Status != "" && !strings.EqualFold(o.Status, f.Status) {
		return false
	}
	if f.PaymentStatus != "" && !strings.EqualFold(o.PaymentStatus, f.PaymentStatus) {
		return false
	}
	if f.PaymentMethod != "" && !strings.EqualFold(o.PaymentMethod, f.PaymentMethod) {
		return false
	}
	return true
}
