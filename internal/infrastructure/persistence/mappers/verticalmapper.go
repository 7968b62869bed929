package mappers

import (
	"time"

	"nexus/internal/domain/vertical"
	"nexus/internal/infrastructure/persistence/models"
)

type VerticalMapper interface {
	ToModel(v *vertical.Vertical) *models.VerticalModel
	ToDomain(model *models.VerticalModel) (*vertical.Vertical, error)
}

type VerticalMapperImpl struct{}

func NewVerticalMapper() VerticalMapper {
	return &VerticalMapperImpl{}
}

func (m *VerticalMapperImpl) ToModel(v *vertical.Vertical) *models.VerticalModel {
	return &models.VerticalModel{
		ID:          v.ID(),
		Name:        v.Name(),
		Description: v.Description(),
		CreatedAt:   v.CreatedAt().UnixMilli(),
		UpdatedAt:   v.UpdatedAt().UnixMilli(),
	}
}

func (m *VerticalMapperImpl) ToDomain(model *models.VerticalModel) (*vertical.Vertical, error) {
	return vertical.ReconstructVertical(
		model.ID,
		model.Name,
		model.Description,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
