package routes

import (
	"github.com/gin-gonic/gin"

	"nexus/internal/interfaces/http/handlers"
	"nexus/internal/interfaces/http/middleware"
	"nexus/internal/shared/authorization"
)

type VerticalRouteConfig struct {
	VerticalHandler *handlers.VerticalHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

func SetupVerticalRoutes(engine *gin.Engine, config *VerticalRouteConfig) {
	verticals := engine.Group("/verticals")
	verticals.Use(config.AuthMiddleware.RequireAuth())
	{
		verticals.GET("", config.VerticalHandler.ListVerticals)
		verticals.POST("",
			authorization.RequireAdmin(),
			config.VerticalHandler.CreateVertical)
		verticals.PUT("/:id",
			authorization.RequireAdmin(),
			config.VerticalHandler.UpdateVertical)
		verticals.DELETE("/:id",
			authorization.RequireAdmin(),
			config.VerticalHandler.DeleteVertical)
	}
}
