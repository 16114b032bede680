package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/streetware/gateway/controllers"
	"github.com/streetware/gateway/middlewares"
	"github.com/streetware/gateway/services"
)

func CartRoutes(server *gin.Engine, backend *services.BackendClient) {
	cart := server.Group("/cart", middlewares.RequireAuth())
	{
		cart.GET("", controllers.GetCart(backend))
		cart.POST("/items", controllers.AddCartItem(backend))
		cart.PUT("/items/:cartItemId", controllers.UpdateCartItem(backend))
		cart.DELETE("/items/:productId", controllers.RemoveCartItem(backend))
		cart.POST("/clear", controllers.ClearCart(backend))
	}

	server.POST("/checkout", middlewares.RequireAuth(), controllers.Checkout(backend))
}
