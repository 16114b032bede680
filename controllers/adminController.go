package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/streetware/gateway/models"
	"github.com/streetware/gateway/services"
	"github.com/streetware/gateway/views"
)

// Dashboard aggregates the admin landing page: order and product counts,
// pending orders, total revenue and the five most recent orders.
func Dashboard(backend *services.BackendClient) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := adminToken(ctx)

		orders, err := backend.GetOrders(token)
		if err != nil {
			log.Println("Error fetching dashboard data:", err)
			sendBackendError(ctx, err)
			return
		}

		products, err := backend.GetProducts()
		if err != nil {
			log.Println("Error fetching dashboard data:", err)
			sendBackendError(ctx, err)
			return
		}

		stats := views.Dashboard(orders, products)
		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"stats":           stats,
			"revenue_display": views.FormatPrice(stats.Revenue),
			"recent_orders":   views.RecentOrders(orders, 5),
		})
	}
}

// AdminOrders serves the order management list with the multi-field filter
// and sort pipeline applied.
func AdminOrders(backend *services.BackendClient) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		orders, err := backend.GetOrders(adminToken(ctx))
		if err != nil {
			log.Println("Error fetching orders:", err)
			sendBackendError(ctx, err)
			return
		}

		filters := views.OrderFilters{
			Search:        ctx.Query("search"),
			Status:        ctx.Query("status"),
			PaymentStatus: ctx.Query("payment_status"),
			PaymentMethod: ctx.Query("payment_method"),
			Sort:          ctx.DefaultQuery("sort", "date-desc"),
		}

		filtered := filters.Apply(orders)
		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"orders": filtered,
			"total":  len(filtered),
		})
	}
}

// AdminOrderDetail serves the fulfillment editor view. Since the backend
// persists only the final total, the subtotal/tax figures are reconstructed
// from fixed percentages and flagged as approximate.
func AdminOrderDetail(backend *services.BackendClient) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := adminToken(ctx)

		orderID, err := strconv.Atoi(ctx.Param("id"))
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
			return
		}

		order, err := backend.GetOrderByID(token, orderID)
		if err != nil {
			log.Println("Error fetching order details:", err)
			sendBackendError(ctx, err)
			return
		}

		subtotal, tax := views.ApproximateBreakdown(order.TotalAmount.Float64())
		response := gin.H{
			"order":       order,
			"status_view": views.OrderStatusView(order.Status),
			"approximate_breakdown": gin.H{
				"subtotal": subtotal,
				"tax":      tax,
				"total":    order.TotalAmount.Float64(),
			},
			"status_options": []string{
				models.OrderStatusPlaced,
				models.OrderStatusShipped,
				models.OrderStatusDelivered,
				models.OrderStatusCancelled,
			},
			"payment_status_options": []string{
				models.PaymentStatusPending,
				models.PaymentStatusPaid,
				models.PaymentStatusFailed,
			},
		}

		if payment, err := backend.GetPaymentByOrderID(token, orderID); err != nil {
			log.Println("Error fetching payment details:", err)
		} else {
			response["payment"] = payment
		}

		sendJSONResponse(ctx, http.StatusOK, response)
	}
}

// UpdateOrderStatus forwards the requested status verbatim. The progression
// data in the detail view lets a UI disable invalid transitions; the gateway
// itself does not refuse them.
func UpdateOrderStatus(backend *services.BackendClient) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		orderID, err := strconv.Atoi(ctx.Param("id"))
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
			return
		}

		var req models.UpdateOrderStatusRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			log.Println(err)
			sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
			return
		}

		if err := backend.UpdateOrderStatus(adminToken(ctx), orderID, req.Status); err != nil {
			log.Println("Error updating order status:", err)
			sendBackendError(ctx, err)
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Order status updated successfully."})
	}
}

func UpdatePaymentStatus(backend *services.BackendClient) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		paymentID, err := strconv.Atoi(ctx.Param("id"))
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse paymentId")
			return
		}

		var req struct {
			Status string `json:"status" binding:"required"`
		}
		if err := ctx.ShouldBindJSON(&req); err != nil {
			log.Println(err)
			sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
			return
		}

		if err := backend.UpdatePaymentStatus(adminToken(ctx), paymentID, req.Status); err != nil {
			log.Println("Error updating payment status:", err)
			sendBackendError(ctx, err)
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Payment status updated successfully."})
	}
}
