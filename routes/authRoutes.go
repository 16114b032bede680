package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/streetware/gateway/controllers"
	"github.com/streetware/gateway/services"
)

func AuthRoutes(server *gin.Engine, backend *services.BackendClient) {
	auth := server.Group("/auth")
	{
		auth.POST("/login", controllers.Login(backend))
		auth.POST("/signup", controllers.Signup(backend))
		auth.POST("/admin-login", controllers.AdminLogin(backend))
		auth.POST("/logout", controllers.Logout())
		auth.GET("/session", controllers.GetSession())
	}
}
