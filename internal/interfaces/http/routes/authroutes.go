package routes

import (
	"github.com/gin-gonic/gin"

	"nexus/internal/interfaces/http/handlers"
	"nexus/internal/interfaces/http/middleware"
)

type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		auth.POST("/register", config.AuthHandler.Register)
		auth.POST("/login", config.AuthHandler.Login)
		auth.GET("/me",
			config.AuthMiddleware.RequireAuth(),
			config.AuthHandler.Me)
	}
}
