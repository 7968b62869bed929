package routes

import (
	"github.com/gin-gonic/gin"

	"nexus/internal/interfaces/http/handlers"
	"nexus/internal/interfaces/http/middleware"
	"nexus/internal/shared/authorization"
)

type PlannerRouteConfig struct {
	PlannerHandler *handlers.PlannerHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupPlannerRoutes configures the AI sprint planner routes. All planner
// operations are admin-only.
func SetupPlannerRoutes(engine *gin.Engine, config *PlannerRouteConfig) {
	planner := engine.Group("/planner")
	planner.Use(config.AuthMiddleware.RequireAuth(), authorization.RequireAdmin())
	{
		planner.POST("/generate", config.PlannerHandler.GeneratePlan)
		planner.POST("/confirm", config.PlannerHandler.ConfirmPlan)
		planner.DELETE("/plans/:planId", config.PlannerHandler.DiscardPlan)
	}
}
