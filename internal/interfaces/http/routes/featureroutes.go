package routes

import (
	"github.com/gin-gonic/gin"

	"nexus/internal/interfaces/http/handlers"
	"nexus/internal/interfaces/http/middleware"
)

type FeatureRouteConfig struct {
	FeatureHandler *handlers.FeatureHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupFeatureRoutes(engine *gin.Engine, config *FeatureRouteConfig) {
	features := engine.Group("/features")
	features.Use(config.AuthMiddleware.RequireAuth())
	{
		features.GET("", config.FeatureHandler.ListFeatures)
		features.POST("", config.FeatureHandler.CreateFeature)
		features.PUT("/:id/status", config.FeatureHandler.ChangeFeatureStatus)
	}
}
