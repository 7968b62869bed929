package mappers

import (
	"time"

	"nexus/internal/domain/feature"
	"nexus/internal/infrastructure/persistence/models"
)

type FeatureMapper interface {
	ToModel(f *feature.Feature) *models.FeatureModel
	ToDomain(model *models.FeatureModel) (*feature.Feature, error)
}

type FeatureMapperImpl struct{}

func NewFeatureMapper() FeatureMapper {
	return &FeatureMapperImpl{}
}

func (m *FeatureMapperImpl) ToModel(f *feature.Feature) *models.FeatureModel {
	return &models.FeatureModel{
		ID:          f.ID(),
		ProjectID:   f.ProjectID(),
		Name:        f.Name(),
		Description: f.Description(),
		Status:      f.Status().String(),
		CreatedAt:   f.CreatedAt().UnixMilli(),
		UpdatedAt:   f.UpdatedAt().UnixMilli(),
	}
}

func (m *FeatureMapperImpl) ToDomain(model *models.FeatureModel) (*feature.Feature, error) {
	return feature.ReconstructFeature(
		model.ID,
		model.ProjectID,
		model.Name,
		model.Description,
		feature.FeatureStatus(model.Status),
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
