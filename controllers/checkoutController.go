package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/streetware/gateway/middlewares"
	"github.com/streetware/gateway/services"
	"github.com/streetware/gateway/state"
	"github.com/streetware/gateway/validators"
	"github.com/streetware/gateway/views"
)

// Checkout validates the shipping form, places the order from the current
// cart and creates its payment record. The discrete address fields are
// flattened into the single line the backend stores.
func Checkout(backend *services.BackendClient) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		session, ok := middlewares.SessionFromContext(ctx)
		if !ok {
			sendErrorResponse(ctx, http.StatusUnauthorized, msgAuthRequired)
			return
		}
		holder := state.NewCartHolder(backend, session.Token)

		var form validators.CheckoutForm
		if err := ctx.ShouldBindJSON(&form); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}
		if form.PaymentMethod == "" {
			form.PaymentMethod = "COD"
		}

		if errs := form.Validate(); len(errs) > 0 {
			sendJSONResponse(ctx, http.StatusBadRequest, gin.H{"errors": errs})
			return
		}

		if err := holder.Fetch(); err != nil {
			log.Println("Error fetching cart:", err)
			sendBackendError(ctx, err)
			return
		}
		cart := holder.Cart()
		if len(cart.Items) == 0 {
			sendErrorResponse(ctx, http.StatusBadRequest, "Cart is empty")
			return
		}

		order, err := backend.Checkout(session.Token, cart.CartID, form.PaymentMethod, form.ShippingAddress())
		if err != nil {
			log.Println("Checkout error:", err)
			sendBackendError(ctx, err)
			return
		}

		payment, err := backend.CreatePayment(session.Token, order.OrderID, order.TotalAmount.Float64(), form.PaymentMethod)
		if err != nil {
			// The order exists either way; the payment record can still be
			// created later from the payment screen.
			log.Println("Error creating payment record:", err)
		}

		if err := holder.Clear(); err != nil {
			log.Println("Error clearing cart after checkout:", err)
		}

		sendJSONResponse(ctx, http.StatusCreated, gin.H{
			"message":        "Order placed successfully.",
			"order_id":       order.OrderID,
			"total_amount":   order.TotalAmount,
			"total_display":  views.FormatPrice(order.TotalAmount.Float64()),
			"payment_method": form.PaymentMethod,
			"payment":        payment,
		})
	}
}
