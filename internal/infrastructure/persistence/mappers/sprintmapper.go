package mappers

import (
	"time"

	"nexus/internal/domain/sprint"
	vo "nexus/internal/domain/sprint/valueobjects"
	"nexus/internal/infrastructure/persistence/models"
)

type SprintMapper interface {
	ToModel(s *sprint.Sprint) *models.SprintModel
	ToDomain(model *models.SprintModel) (*sprint.Sprint, error)
}

type SprintMapperImpl struct{}

func NewSprintMapper() SprintMapper {
	return &SprintMapperImpl{}
}

func (m *SprintMapperImpl) ToModel(s *sprint.Sprint) *models.SprintModel {
	model := &models.SprintModel{
		ID:        s.ID(),
		ProjectID: s.ProjectID(),
		Name:      s.Name(),
		Goal:      s.Goal(),
		Status:    s.Status().String(),
		StartDate: s.StartDate().UnixMilli(),
		EndDate:   s.EndDate().UnixMilli(),
		CreatedAt: s.CreatedAt().UnixMilli(),
		UpdatedAt: s.UpdatedAt().UnixMilli(),
	}
	if s.CompletedAt() != nil {
		completed := s.CompletedAt().UnixMilli()
		model.CompletedAt = &completed
	}
	return model
}

func (m *SprintMapperImpl) ToDomain(model *models.SprintModel) (*sprint.Sprint, error) {
	var completedAt *time.Time
	if model.CompletedAt != nil {
		ts := time.UnixMilli(*model.CompletedAt)
		completedAt = &ts
	}

	return sprint.ReconstructSprint(
		model.ID,
		model.ProjectID,
		model.Name,
		model.Goal,
		vo.SprintStatus(model.Status),
		time.UnixMilli(model.StartDate),
		time.UnixMilli(model.EndDate),
		completedAt,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
