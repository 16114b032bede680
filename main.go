package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/streetware/gateway/config"
	"github.com/streetware/gateway/initializers"
	"github.com/streetware/gateway/middlewares"
	"github.com/streetware/gateway/routes"
	"github.com/streetware/gateway/services"
)

func init() {
	initializers.LoadEnv()
}

func main() {
	cfg := config.LoadConfig()
	backend := services.NewBackendClient(cfg.BackendURL)

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "https://www.streetware.store"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	server.Use(middlewares.RequestID())
	server.Use(middlewares.Identify())

	routes.DefaultRoutes(server)
	routes.AuthRoutes(server, backend)
	routes.ProductRoutes(server, backend)
	routes.CartRoutes(server, backend)
	routes.OrderRoutes(server, backend)
	routes.PaymentRoutes(server, backend)
	routes.AdminRoutes(server, backend, cfg)

	server.Run(":" + cfg.ServerPort)
}
