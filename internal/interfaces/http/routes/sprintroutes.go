package routes

import (
	"github.com/gin-gonic/gin"

	"nexus/internal/interfaces/http/handlers"
	"nexus/internal/interfaces/http/middleware"
	"nexus/internal/shared/authorization"
)

type SprintRouteConfig struct {
	SprintHandler  *handlers.SprintHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupSprintRoutes(engine *gin.Engine, config *SprintRouteConfig) {
	sprints := engine.Group("/sprints")
	sprints.Use(config.AuthMiddleware.RequireAuth())
	{
		sprints.GET("", config.SprintHandler.ListSprints)
		sprints.POST("",
			authorization.RequireAdmin(),
			config.SprintHandler.CreateSprint)

		// Register specific paths before parameterized paths
		sprints.POST("/move-task", config.SprintHandler.MoveTask)

		sprints.POST("/:id/activate",
			authorization.RequireAdmin(),
			config.SprintHandler.ActivateSprint)
		sprints.POST("/:id/complete",
			authorization.RequireAdmin(),
			config.SprintHandler.CompleteSprint)
		sprints.GET("/:id/progress", config.SprintHandler.GetSprintProgress)
	}
}
