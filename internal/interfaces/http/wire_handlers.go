package http

import (
	"nexus/internal/interfaces/http/handlers"
	taskhandlers "nexus/internal/interfaces/http/handlers/task"
)

// allHandlers holds every HTTP handler instance.
type allHandlers struct {
	authHandler     *handlers.AuthHandler
	userHandler     *handlers.UserHandler
	verticalHandler *handlers.VerticalHandler
	projectHandler  *handlers.ProjectHandler
	sprintHandler   *handlers.SprintHandler
	featureHandler  *handlers.FeatureHandler
	plannerHandler  *handlers.PlannerHandler
	taskHandler     *taskhandlers.TaskHandler
}

func newHandlers(ucs *allUseCases) *allHandlers {
	return &allHandlers{
		authHandler: handlers.NewAuthHandler(ucs.registerUC, ucs.loginUC, ucs.getProfileUC),
		userHandler: handlers.NewUserHandler(ucs.updateProfileUC, ucs.listUsersUC, ucs.changeRoleUC),
		verticalHandler: handlers.NewVerticalHandler(
			ucs.createVerticalUC, ucs.updateVerticalUC, ucs.deleteVerticalUC, ucs.listVerticalsUC,
		),
		projectHandler: handlers.NewProjectHandler(
			ucs.createProjectUC, ucs.addMemberUC, ucs.removeMemberUC, ucs.listMembersUC,
			ucs.linkGithubUC, ucs.getProjectUC, ucs.listProjectsUC,
		),
		sprintHandler: handlers.NewSprintHandler(
			ucs.createSprintUC, ucs.activateSprintUC, ucs.completeSprintUC,
			ucs.moveTaskUC, ucs.sprintProgressUC, ucs.listSprintsUC,
		),
		featureHandler: handlers.NewFeatureHandler(
			ucs.createFeatureUC, ucs.changeFeatureStatusUC, ucs.listFeaturesUC,
		),
		plannerHandler: handlers.NewPlannerHandler(
			ucs.generatePlanUC, ucs.confirmPlanUC, ucs.discardPlanUC,
		),
		taskHandler: taskhandlers.NewTaskHandler(
			ucs.createTaskUC, ucs.updateTaskUC, ucs.changeTaskStatusUC, ucs.assignTaskUC,
			ucs.deleteTaskUC, ucs.getTaskUC, ucs.listTasksUC,
			ucs.addCommentUC, ucs.listCommentsUC, ucs.deleteCommentUC,
			ucs.uploadAttachmentUC, ucs.listAttachmentsUC, ucs.downloadUC, ucs.deleteAttachmentUC,
			ucs.pushGithubUC, ucs.pullGithubUC,
		),
	}
}
