package usecases

import (
	"context"
	"time"

	"nexus/internal/domain/project"
	"nexus/internal/domain/sprint"
	"nexus/internal/shared/errors"
	"nexus/internal/shared/logger"
)

type CreateSprintCommand struct {
	ProjectID uint
	Name      string
	Goal      string
	StartDate time.Time
	EndDate   time.Time
}

type CreateSprintResult struct {
	SprintID  uint
	Status    string
	CreatedAt time.Time
}

type CreateSprintUseCase struct {
	sprintRepo  sprint.Repository
	projectRepo project.Repository
	logger      logger.Interface
}

func NewCreateSprintUseCase(
	sprintRepo sprint.Repository,
	projectRepo project.Repository,
	logger logger.Interface,
) *CreateSprintUseCase {
	return &CreateSprintUseCase{
		sprintRepo:  sprintRepo,
		projectRepo: projectRepo,
		logger:      logger,
	}
}

func (uc *CreateSprintUseCase) Execute(ctx context.Context, cmd CreateSprintCommand) (*CreateSprintResult, error) {
	uc.logger.Infow("executing create sprint use case", "project_id", cmd.ProjectID, "name", cmd.Name)

	proj, err := uc.projectRepo.FindByID(ctx, cmd.ProjectID)
	if err != nil {
		uc.logger.Errorw("failed to load project", "project_id", cmd.ProjectID, "error", err)
		return nil, err
	}
	if proj == nil {
		return nil, errors.NewNotFoundError("project not found")
	}

	newSprint, err := sprint.NewSprint(cmd.ProjectID, cmd.Name, cmd.Goal, cmd.StartDate, cmd.EndDate)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.sprintRepo.Save(ctx, newSprint); err != nil {
		uc.logger.Errorw("failed to save sprint", "error", err)
		return nil, err
	}

	uc.logger.Infow("sprint created successfully", "sprint_id", newSprint.ID(), "name", newSprint.Name())

	return &CreateSprintResult{
		SprintID:  newSprint.ID(),
		Status:    newSprint.Status().String(),
		CreatedAt: newSprint.CreatedAt(),
	}, nil
}
