package routes

import (
	"github.com/gin-gonic/gin"

	"nexus/internal/interfaces/http/handlers"
	"nexus/internal/interfaces/http/middleware"
	"nexus/internal/shared/authorization"
)

type UserRouteConfig struct {
	UserHandler    *handlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupUserRoutes(engine *gin.Engine, config *UserRouteConfig) {
	users := engine.Group("/users")
	users.Use(config.AuthMiddleware.RequireAuth())
	{
		users.GET("", config.UserHandler.ListUsers)
		users.PUT("/me", config.UserHandler.UpdateProfile)
		users.PUT("/:id/role",
			authorization.RequireAdmin(),
			config.UserHandler.ChangeRole)
	}
}
