package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/streetware/gateway/middlewares"
	"github.com/streetware/gateway/models"
	"github.com/streetware/gateway/services"
	"github.com/streetware/gateway/state"
	"github.com/streetware/gateway/views"
)

// cartHolder builds the per-request cart holder for the authenticated caller.
func cartHolder(ctx *gin.Context, backend *services.BackendClient) (*state.CartHolder, bool) {
	session, ok := middlewares.SessionFromContext(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, msgAuthRequired)
		return nil, false
	}
	return state.NewCartHolder(backend, session.Token), true
}

func cartResponse(holder *state.CartHolder) gin.H {
	cart := holder.Cart()
	totalPrice := holder.TotalPrice()
	summary := views.Summarize(totalPrice)
	return gin.H{
		"cart":          cart,
		"total_items":   holder.TotalItems(),
		"total_price":   totalPrice,
		"summary":       summary,
		"total_display": views.FormatPrice(summary.Total),
	}
}

func GetCart(backend *services.BackendClient) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		holder, ok := cartHolder(ctx, backend)
		if !ok {
			return
		}
		if err := holder.Fetch(); err != nil {
			log.Println("Error fetching cart:", err)
			sendBackendError(ctx, err)
			return
		}
		sendJSONResponse(ctx, http.StatusOK, cartResponse(holder))
	}
}

func AddCartItem(backend *services.BackendClient) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		holder, ok := cartHolder(ctx, backend)
		if !ok {
			return
		}

		var req models.AddToCartRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			log.Println("Bind error:", err)
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		// No client-side stock check: the backend is authoritative for
		// stock limits and rejects what it cannot fulfil.
		if err := holder.Add(req.ProductID, req.Quantity); err != nil {
			log.Println("Error adding item to cart:", err)
			sendBackendError(ctx, err)
			return
		}
		sendJSONResponse(ctx, http.StatusOK, cartResponse(holder))
	}
}

func RemoveCartItem(backend *services.BackendClient) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		holder, ok := cartHolder(ctx, backend)
		if !ok {
			return
		}

		productID, err := strconv.Atoi(ctx.Param("productId"))
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid product ID")
			return
		}

		if err := holder.Remove(productID); err != nil {
			log.Println("Error removing item from cart:", err)
			sendBackendError(ctx, err)
			return
		}
		sendJSONResponse(ctx, http.StatusOK, cartResponse(holder))
	}
}

func UpdateCartItem(backend *services.BackendClient) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		holder, ok := cartHolder(ctx, backend)
		if !ok {
			return
		}

		cartItemID, err := strconv.Atoi(ctx.Param("cartItemId"))
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid cart item ID")
			return
		}

		var req models.UpdateCartItemRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			log.Println("Bind error:", err)
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		if err := holder.Update(cartItemID, req.Quantity); err != nil {
			log.Println("Error updating cart item:", err)
			sendBackendError(ctx, err)
			return
		}
		sendJSONResponse(ctx, http.StatusOK, cartResponse(holder))
	}
}

// ClearCart empties the cart and, like every other mutation, reconciles with
// an authoritative refetch rather than trusting the local state.
func ClearCart(backend *services.BackendClient) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		holder, ok := cartHolder(ctx, backend)
		if !ok {
			return
		}
		if err := holder.Clear(); err != nil {
			log.Println("Error clearing cart:", err)
			sendBackendError(ctx, err)
			return
		}
		sendJSONResponse(ctx, http.StatusOK, cartResponse(holder))
	}
}
