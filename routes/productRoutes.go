package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/streetware/gateway/controllers"
	"github.com/streetware/gateway/services"
)

func ProductRoutes(server *gin.Engine, backend *services.BackendClient) {
	server.GET("/products", controllers.GetProducts(backend))
	server.GET("/products/:id", controllers.GetProduct(backend))
}
