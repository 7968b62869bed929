package http

import (
	featureUsecases "nexus/internal/application/feature/usecases"
	plannerUsecases "nexus/internal/application/planner/usecases"
	projectUsecases "nexus/internal/application/project/usecases"
	sprintUsecases "nexus/internal/application/sprint/usecases"
	taskUsecases "nexus/internal/application/task/usecases"
	userUsecases "nexus/internal/application/user/usecases"
	verticalUsecases "nexus/internal/application/vertical/usecases"
	"nexus/internal/infrastructure/auth"
	"nexus/internal/infrastructure/cache"
	"nexus/internal/infrastructure/github"
	"nexus/internal/shared/db"
	"nexus/internal/shared/logger"
	"nexus/internal/shared/services/markdown"
)

// allUseCases holds every use case instance wired into the HTTP layer.
type allUseCases struct {
	// user
	registerUC      *userUsecases.RegisterUseCase
	loginUC         *userUsecases.LoginUseCase
	getProfileUC    *userUsecases.GetProfileUseCase
	updateProfileUC *userUsecases.UpdateProfileUseCase
	listUsersUC     *userUsecases.ListUsersUseCase
	changeRoleUC    *userUsecases.ChangeRoleUseCase

	// vertical
	createVerticalUC *verticalUsecases.CreateVerticalUseCase
	updateVerticalUC *verticalUsecases.UpdateVerticalUseCase
	deleteVerticalUC *verticalUsecases.DeleteVerticalUseCase
	listVerticalsUC  *verticalUsecases.ListVerticalsUseCase

	// project
	createProjectUC *projectUsecases.CreateProjectUseCase
	addMemberUC     *projectUsecases.AddMemberUseCase
	removeMemberUC  *projectUsecases.RemoveMemberUseCase
	listMembersUC   *projectUsecases.ListMembersUseCase
	linkGithubUC    *projectUsecases.LinkGithubRepoUseCase
	getProjectUC    *projectUsecases.GetProjectUseCase
	listProjectsUC  *projectUsecases.ListProjectsUseCase

	// sprint
	createSprintUC   *sprintUsecases.CreateSprintUseCase
	activateSprintUC *sprintUsecases.ActivateSprintUseCase
	completeSprintUC *sprintUsecases.CompleteSprintUseCase
	moveTaskUC       *sprintUsecases.MoveTaskUseCase
	sprintProgressUC *sprintUsecases.GetSprintProgressUseCase
	listSprintsUC    *sprintUsecases.ListSprintsUseCase

	// feature
	createFeatureUC       *featureUsecases.CreateFeatureUseCase
	changeFeatureStatusUC *featureUsecases.ChangeFeatureStatusUseCase
	listFeaturesUC        *featureUsecases.ListFeaturesUseCase

	// task
	createTaskUC       *taskUsecases.CreateTaskUseCase
	updateTaskUC       *taskUsecases.UpdateTaskUseCase
	changeTaskStatusUC *taskUsecases.ChangeTaskStatusUseCase
	assignTaskUC       *taskUsecases.AssignTaskUseCase
	deleteTaskUC       *taskUsecases.DeleteTaskUseCase
	getTaskUC          *taskUsecases.GetTaskUseCase
	listTasksUC        *taskUsecases.ListTasksUseCase
	recalculateUC      *taskUsecases.RecalculateParentStatusUseCase
	addCommentUC       *taskUsecases.AddCommentUseCase
	listCommentsUC     *taskUsecases.ListCommentsUseCase
	deleteCommentUC    *taskUsecases.DeleteCommentUseCase
	uploadAttachmentUC *taskUsecases.UploadAttachmentUseCase
	listAttachmentsUC  *taskUsecases.ListAttachmentsUseCase
	downloadUC         *taskUsecases.DownloadAttachmentUseCase
	deleteAttachmentUC *taskUsecases.DeleteAttachmentUseCase
	pushGithubUC       *taskUsecases.PushTaskToGithubUseCase
	pullGithubUC       *taskUsecases.PullGithubStatusUseCase

	// planner
	generatePlanUC *plannerUsecases.GeneratePlanUseCase
	confirmPlanUC  *plannerUsecases.ConfirmPlanUseCase
	discardPlanUC  *plannerUsecases.DiscardPlanUseCase
}

type useCaseDeps struct {
	repos        *repositories
	txManager    *db.TransactionManager
	hasher       *auth.BcryptPasswordHasher
	jwtSvc       *auth.JWTService
	planGen      plannerUsecases.PlanGenerator
	planStore    *cache.RedisPlanStore
	githubClient *github.Client
	blobStore    taskUsecases.BlobStore
	notifier     taskUsecases.EmailNotifier // nil when email is disabled
	markdownSvc  markdown.Service
	log          logger.Interface
}

func newUseCases(d *useCaseDeps) *allUseCases {
	r := d.repos

	recalculateUC := taskUsecases.NewRecalculateParentStatusUseCase(r.taskRepo, d.log)

	return &allUseCases{
		registerUC:      userUsecases.NewRegisterUseCase(r.userRepo, d.hasher, d.log),
		loginUC:         userUsecases.NewLoginUseCase(r.userRepo, d.hasher, d.jwtSvc, d.log),
		getProfileUC:    userUsecases.NewGetProfileUseCase(r.userRepo, d.log),
		updateProfileUC: userUsecases.NewUpdateProfileUseCase(r.userRepo, d.log),
		listUsersUC:     userUsecases.NewListUsersUseCase(r.userRepo, d.log),
		changeRoleUC:    userUsecases.NewChangeRoleUseCase(r.userRepo, d.log),

		createVerticalUC: verticalUsecases.NewCreateVerticalUseCase(r.verticalRepo, d.log),
		updateVerticalUC: verticalUsecases.NewUpdateVerticalUseCase(r.verticalRepo, d.log),
		deleteVerticalUC: verticalUsecases.NewDeleteVerticalUseCase(r.verticalRepo, d.log),
		listVerticalsUC:  verticalUsecases.NewListVerticalsUseCase(r.verticalRepo, d.log),

		createProjectUC: projectUsecases.NewCreateProjectUseCase(r.projectRepo, r.verticalRepo, d.log),
		addMemberUC:     projectUsecases.NewAddMemberUseCase(r.projectRepo, r.userRepo, d.log),
		removeMemberUC:  projectUsecases.NewRemoveMemberUseCase(r.projectRepo, d.log),
		listMembersUC:   projectUsecases.NewListMembersUseCase(r.projectRepo, r.userRepo, d.log),
		linkGithubUC:    projectUsecases.NewLinkGithubRepoUseCase(r.projectRepo, d.log),
		getProjectUC:    projectUsecases.NewGetProjectUseCase(r.projectRepo, d.log),
		listProjectsUC:  projectUsecases.NewListProjectsUseCase(r.projectRepo, d.log),

		createSprintUC:   sprintUsecases.NewCreateSprintUseCase(r.sprintRepo, r.projectRepo, d.log),
		activateSprintUC: sprintUsecases.NewActivateSprintUseCase(r.sprintRepo, d.txManager, d.log),
		completeSprintUC: sprintUsecases.NewCompleteSprintUseCase(r.sprintRepo, d.log),
		moveTaskUC:       sprintUsecases.NewMoveTaskUseCase(r.taskRepo, r.sprintRepo, d.txManager, d.log),
		sprintProgressUC: sprintUsecases.NewGetSprintProgressUseCase(r.sprintRepo, r.taskRepo, d.log),
		listSprintsUC:    sprintUsecases.NewListSprintsUseCase(r.sprintRepo, d.log),

		createFeatureUC:       featureUsecases.NewCreateFeatureUseCase(r.featureRepo, r.projectRepo, d.log),
		changeFeatureStatusUC: featureUsecases.NewChangeFeatureStatusUseCase(r.featureRepo, d.log),
		listFeaturesUC:        featureUsecases.NewListFeaturesUseCase(r.featureRepo, d.log),

		createTaskUC:       taskUsecases.NewCreateTaskUseCase(r.taskRepo, r.projectRepo, recalculateUC, d.log),
		updateTaskUC:       taskUsecases.NewUpdateTaskUseCase(r.taskRepo, d.log),
		changeTaskStatusUC: taskUsecases.NewChangeTaskStatusUseCase(r.taskRepo, recalculateUC, d.log),
		assignTaskUC:       taskUsecases.NewAssignTaskUseCase(r.taskRepo, r.userRepo, d.notifier, d.log),
		deleteTaskUC:       taskUsecases.NewDeleteTaskUseCase(r.taskRepo, r.commentRepo, r.attachmentRepo, d.txManager, recalculateUC, d.log),
		getTaskUC:          taskUsecases.NewGetTaskUseCase(r.taskRepo, d.log),
		listTasksUC:        taskUsecases.NewListTasksUseCase(r.taskRepo, d.log),
		recalculateUC:      recalculateUC,
		addCommentUC:       taskUsecases.NewAddCommentUseCase(r.taskRepo, r.commentRepo, d.log),
		listCommentsUC:     taskUsecases.NewListCommentsUseCase(r.commentRepo, d.markdownSvc, d.log),
		deleteCommentUC:    taskUsecases.NewDeleteCommentUseCase(r.commentRepo, d.log),
		uploadAttachmentUC: taskUsecases.NewUploadAttachmentUseCase(r.taskRepo, r.attachmentRepo, d.blobStore, d.log),
		listAttachmentsUC:  taskUsecases.NewListAttachmentsUseCase(r.attachmentRepo, d.log),
		downloadUC:         taskUsecases.NewDownloadAttachmentUseCase(r.attachmentRepo, d.blobStore, d.log),
		deleteAttachmentUC: taskUsecases.NewDeleteAttachmentUseCase(r.attachmentRepo, d.blobStore, d.log),
		pushGithubUC:       taskUsecases.NewPushTaskToGithubUseCase(r.taskRepo, r.projectRepo, r.userRepo, d.githubClient, d.log),
		pullGithubUC:       taskUsecases.NewPullGithubStatusUseCase(r.taskRepo, r.projectRepo, r.userRepo, d.githubClient, recalculateUC, d.log),

		generatePlanUC: plannerUsecases.NewGeneratePlanUseCase(r.projectRepo, r.userRepo, d.planGen, d.planStore, d.log),
		confirmPlanUC:  plannerUsecases.NewConfirmPlanUseCase(r.sprintRepo, r.taskRepo, d.planStore, d.txManager, d.log),
		discardPlanUC:  plannerUsecases.NewDiscardPlanUseCase(d.planStore, d.log),
	}
}
