package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/streetware/gateway/middlewares"
	"github.com/streetware/gateway/services"
	"github.com/streetware/gateway/views"
)

// GetOrders serves the caller's order history, newest first, with the
// progress-step data each row needs.
func GetOrders(backend *services.BackendClient) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		session, ok := middlewares.SessionFromContext(ctx)
		if !ok {
			sendErrorResponse(ctx, http.StatusUnauthorized, msgAuthRequired)
			return
		}

		orders, err := backend.GetOrders(session.Token)
		if err != nil {
			log.Println("Error fetching orders:", err)
			sendBackendError(ctx, err)
			return
		}

		sorted := views.OrderFilters{Sort: "date-desc"}.Apply(orders)
		rows := make([]gin.H, 0, len(sorted))
		for _, order := range sorted {
			rows = append(rows, gin.H{
				"order":         order,
				"status_view":   views.OrderStatusView(order.Status),
				"total_display": views.FormatPrice(order.TotalAmount.Float64()),
			})
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{"orders": rows})
	}
}

// GetOrder serves the order detail view. The payment record is looked up by
// order id; a missing record simply leaves that section absent rather than
// failing the page.
func GetOrder(backend *services.BackendClient) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		session, ok := middlewares.SessionFromContext(ctx)
		if !ok {
			sendErrorResponse(ctx, http.StatusUnauthorized, msgAuthRequired)
			return
		}

		orderID, err := strconv.Atoi(ctx.Param("id"))
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
			return
		}

		order, err := backend.GetOrderByID(session.Token, orderID)
		if err != nil {
			log.Println("Error fetching order details:", err)
			sendBackendError(ctx, err)
			return
		}

		response := gin.H{
			"order":         order,
			"status_view":   views.OrderStatusView(order.Status),
			"total_display": views.FormatPrice(order.TotalAmount.Float64()),
		}

		if payment, err := backend.GetPaymentByOrderID(session.Token, orderID); err != nil {
			log.Println("Error fetching payment details:", err)
		} else {
			response["payment"] = payment
		}

		sendJSONResponse(ctx, http.StatusOK, response)
	}
}
