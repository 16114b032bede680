package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the StreetWare storefront gateway ❤️.

The following are the endpoints for this gateway:

AUTH
- POST "/auth/login" - Sign in
- POST "/auth/signup" - Create account
- POST "/auth/admin-login" - Admin sign in
- POST "/auth/logout" - Sign out
- GET "/auth/session" - Current session

STOREFRONT
- GET "/products" - Browse the catalog (search/size/color/price_range/sort)
- GET "/products/{id}" - Product detail
- GET "/cart" - Current cart with totals
- POST "/cart/items" - Add to cart
- PUT "/cart/items/{cartItemId}" - Change quantity
- DELETE "/cart/items/{productId}" - Remove from cart
- POST "/cart/clear" - Empty the cart
- POST "/checkout" - Place an order
- POST "/payments/confirm/{orderId}" - Confirm or capture payment
- GET "/payments/order/{orderId}" - Payment record for an order
- GET "/orders" - Order history
- GET "/orders/{id}" - Order detail with progress

ADMIN
- GET "/admin/dashboard" - Store overview
- GET "/admin/orders" - Order management (filter/sort)
- GET "/admin/orders/{id}" - Fulfillment editor data
- PUT "/admin/orders/{id}" - Update order status
- PUT "/admin/payments/{id}" - Update payment status
- POST "/admin/products" - Create product
- PUT "/admin/products/{id}" - Update product
- DELETE "/admin/products/{id}" - Delete product
- POST "/admin/products/images" - Upload product images`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
