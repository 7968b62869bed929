package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"nexus/internal/domain/feature"
	"nexus/internal/infrastructure/persistence/mappers"
	"nexus/internal/infrastructure/persistence/models"
	"nexus/internal/shared/db"
)

type FeatureRepository struct {
	db     *gorm.DB
	mapper mappers.FeatureMapper
}

func NewFeatureRepository(db *gorm.DB) *FeatureRepository {
	return &FeatureRepository{
		db:     db,
		mapper: mappers.NewFeatureMapper(),
	}
}

func (r *FeatureRepository) Save(ctx context.Context, f *feature.Feature) error {
	model := r.mapper.ToModel(f)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save feature: %w", err)
	}

	if err := f.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *FeatureRepository) Update(ctx context.Context, f *feature.Feature) error {
	model := r.mapper.ToModel(f)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.FeatureModel{}).
		Where("id = ?", model.ID).
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update feature: %w", result.Error)
	}

	return nil
}

func (r *FeatureRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.FeatureModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete feature: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("feature not found")
	}
	return nil
}

// FindByID returns nil when the feature does not exist.
func (r *FeatureRepository) FindByID(ctx context.Context, id uint) (*feature.Feature, error) {
	var model models.FeatureModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find feature: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *FeatureRepository) ListByProject(ctx context.Context, projectID uint) ([]*feature.Feature, error) {
	var featureModels []models.FeatureModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&featureModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list features: %w", err)
	}

	features := make([]*feature.Feature, len(featureModels))
	for i := range featureModels {
		f, err := r.mapper.ToDomain(&featureModels[i])
		if err != nil {
			return nil, err
		}
		features[i] = f
	}

	return features, nil
}
