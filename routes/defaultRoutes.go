package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/streetware/gateway/controllers"
)

func DefaultRoutes(server *gin.Engine) {
	server.GET("/", controllers.GetHome)
}
