package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/streetware/gateway/config"
	"github.com/streetware/gateway/controllers"
	"github.com/streetware/gateway/middlewares"
	"github.com/streetware/gateway/services"
)

func AdminRoutes(server *gin.Engine, backend *services.BackendClient, cfg *config.Config) {
	admin := server.Group("/admin", middlewares.RequireAdmin())
	{
		admin.GET("/dashboard", controllers.Dashboard(backend))

		admin.GET("/orders", controllers.AdminOrders(backend))
		admin.GET("/orders/:id", controllers.AdminOrderDetail(backend))
		admin.PUT("/orders/:id", controllers.UpdateOrderStatus(backend))
		admin.PUT("/payments/:id", controllers.UpdatePaymentStatus(backend))

		admin.POST("/products", controllers.CreateProduct(backend))
		admin.PUT("/products/:id", controllers.UpdateProduct(backend))
		admin.DELETE("/products/:id", controllers.DeleteProduct(backend))
		admin.POST("/products/images", controllers.UploadProductImages(cfg))
	}
}
