package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/streetware/gateway/controllers"
	"github.com/streetware/gateway/middlewares"
	"github.com/streetware/gateway/services"
)

func PaymentRoutes(server *gin.Engine, backend *services.BackendClient) {
	payments := server.Group("/payments", middlewares.RequireAuth())
	{
		payments.GET("/order/:orderId", controllers.GetPaymentForOrder(backend))
		payments.POST("/confirm/:orderId", controllers.ConfirmPayment(backend))
	}
}
