package mappers

import (
	"time"

	"nexus/internal/domain/project"
	"nexus/internal/infrastructure/persistence/models"
)

type ProjectMapper interface {
	ToModel(p *project.Project) *models.ProjectModel
	ToDomain(model *models.ProjectModel) (*project.Project, error)
}

type ProjectMapperImpl struct{}

func NewProjectMapper() ProjectMapper {
	return &ProjectMapperImpl{}
}

func (m *ProjectMapperImpl) ToModel(p *project.Project) *models.ProjectModel {
	return &models.ProjectModel{
		ID:          p.ID(),
		VerticalID:  p.VerticalID(),
		Name:        p.Name(),
		Description: p.Description(),
		GithubOwner: p.GithubOwner(),
		GithubRepo:  p.GithubRepo(),
		CreatedAt:   p.CreatedAt().UnixMilli(),
		UpdatedAt:   p.UpdatedAt().UnixMilli(),
	}
}

func (m *ProjectMapperImpl) ToDomain(model *models.ProjectModel) (*project.Project, error) {
	return project.ReconstructProject(
		model.ID,
		model.VerticalID,
		model.Name,
		model.Description,
		model.GithubOwner,
		model.GithubRepo,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
