package usecases

import (
	"context"

	"nexus/internal/domain/project"
	"nexus/internal/shared/logger"
)

type ListProjectsQuery struct {
	VerticalID uint
}

type ListProjectsResult struct {
	Projects []ProjectDTO
}

type ListProjectsUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

func NewListProjectsUseCase(projectRepo project.Repository, logger logger.Interface) *ListProjectsUseCase {
	return &ListProjectsUseCase{projectRepo: projectRepo, logger: logger}
}

func (uc *ListProjectsUseCase) Execute(ctx context.Context, query ListProjectsQuery) (*ListProjectsResult, error) {
	projects, err := uc.projectRepo.ListByVertical(ctx, query.VerticalID)
	if err != nil {
		uc.logger.Errorw("failed to list projects", "vertical_id", query.VerticalID, "error", err)
		return nil, err
	}

	dtos := make([]ProjectDTO, len(projects))
	for i, p := range projects {
		dtos[i] = ProjectDTO{
			ID:          p.ID(),
			VerticalID:  p.VerticalID(),
			Name:        p.Name(),
			Description: p.Description(),
			GithubOwner: p.GithubOwner(),
			GithubRepo:  p.GithubRepo(),
			CreatedAt:   p.CreatedAt(),
			UpdatedAt:   p.UpdatedAt(),
		}
	}

	return &ListProjectsResult{Projects: dtos}, nil
}
