package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/streetware/gateway/controllers"
	"github.com/streetware/gateway/middlewares"
	"github.com/streetware/gateway/services"
)

func OrderRoutes(server *gin.Engine, backend *services.BackendClient) {
	orders := server.Group("/orders", middlewares.RequireAuth())
	{
		orders.GET("", controllers.GetOrders(backend))
		orders.GET("/:id", controllers.GetOrder(backend))
	}
}
