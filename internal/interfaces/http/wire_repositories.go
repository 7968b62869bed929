package http

import (
	"gorm.io/gorm"

	"nexus/internal/domain/feature"
	"nexus/internal/domain/project"
	"nexus/internal/domain/sprint"
	"nexus/internal/domain/task"
	"nexus/internal/domain/user"
	"nexus/internal/domain/vertical"
	"nexus/internal/infrastructure/repository"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	userRepo       user.Repository
	verticalRepo   vertical.Repository
	projectRepo    project.Repository
	sprintRepo     sprint.Repository
	featureRepo    feature.Repository
	taskRepo       task.Repository
	commentRepo    task.CommentRepository
	attachmentRepo task.AttachmentRepository
}

func newRepositories(db *gorm.DB) *repositories {
	return &repositories{
		userRepo:       repository.NewUserRepository(db),
		verticalRepo:   repository.NewVerticalRepository(db),
		projectRepo:    repository.NewProjectRepository(db),
		sprintRepo:     repository.NewSprintRepository(db),
		featureRepo:    repository.NewFeatureRepository(db),
		taskRepo:       repository.NewTaskRepository(db),
		commentRepo:    repository.NewTaskCommentRepository(db),
		attachmentRepo: repository.NewTaskAttachmentRepository(db),
	}
}
