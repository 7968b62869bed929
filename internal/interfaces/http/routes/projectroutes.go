package routes

import (
	"github.com/gin-gonic/gin"

	"nexus/internal/interfaces/http/handlers"
	"nexus/internal/interfaces/http/middleware"
	"nexus/internal/shared/authorization"
)

type ProjectRouteConfig struct {
	ProjectHandler *handlers.ProjectHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupProjectRoutes(engine *gin.Engine, config *ProjectRouteConfig) {
	projects := engine.Group("/projects")
	projects.Use(config.AuthMiddleware.RequireAuth())
	{
		projects.GET("", config.ProjectHandler.ListProjects)
		projects.POST("",
			authorization.RequireAdmin(),
			config.ProjectHandler.CreateProject)

		projects.GET("/:id/members", config.ProjectHandler.ListMembers)
		projects.POST("/:id/members",
			authorization.RequireAdmin(),
			config.ProjectHandler.AddMember)
		projects.DELETE("/:id/members/:userId",
			authorization.RequireAdmin(),
			config.ProjectHandler.RemoveMember)
		projects.PUT("/:id/github",
			authorization.RequireAdmin(),
			config.ProjectHandler.LinkGithubRepo)

		projects.GET("/:id", config.ProjectHandler.GetProject)
	}
}
