package usecases

import (
	"context"
	"time"

	"nexus/internal/domain/project"
	"nexus/internal/shared/errors"
	"nexus/internal/shared/logger"
)

type GetProjectQuery struct {
	ProjectID uint
}

type ProjectDTO struct {
	ID          uint      `json:"id"`
	VerticalID  uint      `json:"vertical_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	GithubOwner string    `json:"github_owner,omitempty"`
	GithubRepo  string    `json:"github_repo,omitempty"`
	MemberIDs   []uint    `json:"member_ids"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type GetProjectUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

func NewGetProjectUseCase(projectRepo project.Repository, logger logger.Interface) *GetProjectUseCase {
	return &GetProjectUseCase{projectRepo: projectRepo, logger: logger}
}

func (uc *GetProjectUseCase) Execute(ctx context.Context, query GetProjectQuery) (*ProjectDTO, error) {
	p, err := uc.projectRepo.FindByID(ctx, query.ProjectID)
	if err != nil {
		uc.logger.Errorw("failed to load project", "project_id", query.ProjectID, "error", err)
		return nil, err
	}
	if p == nil {
		return nil, errors.NewNotFoundError("project not found")
	}

	memberIDs, err := uc.projectRepo.ListMemberIDs(ctx, p.ID())
	if err != nil {
		uc.logger.Errorw("failed to list project members", "project_id", p.ID(), "error", err)
		return nil, err
	}

	return &ProjectDTO{
		ID:          p.ID(),
		VerticalID:  p.VerticalID(),
		Name:        p.Name(),
		Description: p.Description(),
		GithubOwner: p.GithubOwner(),
		GithubRepo:  p.GithubRepo(),
		MemberIDs:   memberIDs,
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}, nil
}
