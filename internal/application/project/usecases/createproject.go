package usecases

import (
	"context"
	"time"

	"nexus/internal/domain/project"
	"nexus/internal/domain/vertical"
	"nexus/internal/shared/errors"
	"nexus/internal/shared/logger"
)

type CreateProjectCommand struct {
	VerticalID  uint
	Name        string
	Description string
}

type CreateProjectResult struct {
	ProjectID uint
	CreatedAt time.Time
}

type CreateProjectUseCase struct {
	projectRepo  project.Repository
	verticalRepo vertical.Repository
	logger       logger.Interface
}

func NewCreateProjectUseCase(
	projectRepo project.Repository,
	verticalRepo vertical.Repository,
	logger logger.Interface,
) *CreateProjectUseCase {
	return &CreateProjectUseCase{
		projectRepo:  projectRepo,
		verticalRepo: verticalRepo,
		logger:       logger,
	}
}

func (uc *CreateProjectUseCase) Execute(ctx context.Context, cmd CreateProjectCommand) (*CreateProjectResult, error) {
	uc.logger.Infow("executing create project use case", "vertical_id", cmd.VerticalID, "name", cmd.Name)

	v, err := uc.verticalRepo.FindByID(ctx, cmd.VerticalID)
	if err != nil {
		uc.logger.Errorw("failed to load vertical", "vertical_id", cmd.VerticalID, "error", err)
		return nil, err
	}
	if v == nil {
		return nil, errors.NewNotFoundError("vertical not found")
	}

	p, err := project.NewProject(cmd.VerticalID, cmd.Name, cmd.Description)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.projectRepo.Save(ctx, p); err != nil {
		uc.logger.Errorw("failed to save project", "name", cmd.Name, "error", err)
		return nil, err
	}

	uc.logger.Infow("project created", "project_id", p.ID(), "name", p.Name())

	return &CreateProjectResult{ProjectID: p.ID(), CreatedAt: p.CreatedAt()}, nil
}
