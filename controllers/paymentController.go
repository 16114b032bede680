package controllers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/streetware/gateway/middlewares"
	"github.com/streetware/gateway/services"
	"github.com/streetware/gateway/utils"
)

// Capture runs for a fixed two seconds to simulate payment processing before
// the payment record is marked paid.
var captureDelay = 2 * time.Second

type confirmPaymentRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
}

// ConfirmPayment finalizes payment for an order. Cash on delivery needs no
// capture; any other method goes through the simulated capture delay, after
// which the payment record is marked Paid with a generated transaction
// reference.
func ConfirmPayment(backend *services.BackendClient) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		session, ok := middlewares.SessionFromContext(ctx)
		if !ok {
			sendErrorResponse(ctx, http.StatusUnauthorized, msgAuthRequired)
			return
		}

		orderID, err := strconv.Atoi(ctx.Param("orderId"))
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
			return
		}

		var req confirmPaymentRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		if req.PaymentMethod == "COD" {
			sendJSONResponse(ctx, http.StatusOK, gin.H{
				"message":  "Cash on delivery confirmed. Pay when your order arrives.",
				"order_id": orderID,
				"status":   "pending",
			})
			return
		}

		time.Sleep(captureDelay)

		payment, err := backend.GetPaymentByOrderID(session.Token, orderID)
		if err != nil {
			log.Println("Error fetching payment details:", err)
			sendBackendError(ctx, err)
			return
		}

		if err := backend.UpdatePaymentStatus(session.Token, payment.PaymentID, "Paid"); err != nil {
			log.Println("Payment capture failed:", err)
			sendBackendError(ctx, err)
			return
		}

		reference, err := utils.GenerateCode(16)
		if err != nil {
			log.Println("Error generating transaction reference:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to generate transaction reference")
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"message":         "Payment captured successfully.",
			"order_id":        orderID,
			"payment_id":      payment.PaymentID,
			"status":          "Paid",
			"transaction_ref": reference,
		})
	}
}

// GetPaymentForOrder exposes the payment record for an order. A missing
// record is reported as-is; callers treat it as a soft failure.
func GetPaymentForOrder(backend *services.BackendClient) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		session, ok := middlewares.SessionFromContext(ctx)
		if !ok {
			sendErrorResponse(ctx, http.StatusUnauthorized, msgAuthRequired)
			return
		}

		orderID, err := strconv.Atoi(ctx.Param("orderId"))
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid order ID")
			return
		}

		payment, err := backend.GetPaymentByOrderID(session.Token, orderID)
		if err != nil {
			log.Println("Error fetching payment details:", err)
			sendBackendError(ctx, err)
			return
		}
		sendJSONResponse(ctx, http.StatusOK, gin.H{"payment": payment})
	}
}
