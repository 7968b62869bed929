package routes

import (
	"github.com/gin-gonic/gin"

	taskhandlers "nexus/internal/interfaces/http/handlers/task"
	"nexus/internal/interfaces/http/middleware"
	"nexus/internal/shared/authorization"
)

type TaskRouteConfig struct {
	TaskHandler    *taskhandlers.TaskHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTaskRoutes(engine *gin.Engine, config *TaskRouteConfig) {
	tasks := engine.Group("/tasks")
	tasks.Use(config.AuthMiddleware.RequireAuth())
	{
		// Register specific paths BEFORE parameterized paths to avoid
		// route conflicts
		tasks.POST("", config.TaskHandler.CreateTask)
		tasks.GET("", config.TaskHandler.ListTasks)

		tasks.DELETE("/comments/:commentId", config.TaskHandler.DeleteComment)
		tasks.GET("/attachments/:attachmentId", config.TaskHandler.DownloadAttachment)
		tasks.DELETE("/attachments/:attachmentId", config.TaskHandler.DeleteAttachment)

		tasks.PUT("/:id/status", config.TaskHandler.ChangeStatus)
		tasks.PUT("/:id/assignee", config.TaskHandler.AssignTask)
		tasks.POST("/:id/comments", config.TaskHandler.AddComment)
		tasks.GET("/:id/comments", config.TaskHandler.ListComments)
		tasks.POST("/:id/attachments", config.TaskHandler.UploadAttachment)
		tasks.GET("/:id/attachments", config.TaskHandler.ListAttachments)
		tasks.POST("/:id/github/push", config.TaskHandler.PushToGithub)
		tasks.POST("/:id/github/pull", config.TaskHandler.PullGithubStatus)

		tasks.GET("/:id", config.TaskHandler.GetTask)
		tasks.PUT("/:id", config.TaskHandler.UpdateTask)
		tasks.DELETE("/:id",
			authorization.RequireAdmin(),
			config.TaskHandler.DeleteTask)
	}
}
