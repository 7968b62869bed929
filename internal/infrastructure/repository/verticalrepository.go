package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"nexus/internal/domain/vertical"
	"nexus/internal/infrastructure/persistence/mappers"
	"nexus/internal/infrastructure/persistence/models"
	"nexus/internal/shared/db"
)

type VerticalRepository struct {
	db     *gorm.DB
	mapper mappers.VerticalMapper
}

func NewVerticalRepository(db *gorm.DB) *VerticalRepository {
	return &VerticalRepository{
		db:     db,
		mapper: mappers.NewVerticalMapper(),
	}
}

func (r *VerticalRepository) Save(ctx context.Context, v *vertical.Vertical) error {
	model := r.mapper.ToModel(v)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save vertical: %w", err)
	}

	if err := v.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *VerticalRepository) Update(ctx context.Context, v *vertical.Vertical) error {
	model := r.mapper.ToModel(v)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.VerticalModel{}).
		Where("id = ?", model.ID).
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update vertical: %w", result.Error)
	}

	return nil
}

func (r *VerticalRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.VerticalModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete vertical: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("vertical not found")
	}
	return nil
}

// FindByID returns nil when the vertical does not exist.
func (r *VerticalRepository) FindByID(ctx context.Context, id uint) (*vertical.Vertical, error) {
	var model models.VerticalModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find vertical: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *VerticalRepository) List(ctx context.Context) ([]*vertical.Vertical, error) {
	var verticalModels []models.VerticalModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Order("name ASC").
		Find(&verticalModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list verticals: %w", err)
	}

	verticals := make([]*vertical.Vertical, len(verticalModels))
	for i := range verticalModels {
		v, err := r.mapper.ToDomain(&verticalModels[i])
		if err != nil {
			return nil, err
		}
		verticals[i] = v
	}

	return verticals, nil
}

func (r *VerticalRepository) CountProjects(ctx context.Context, id uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.
		Model(&models.ProjectModel{}).
		Where("vertical_id = ?", id).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count vertical projects: %w", err)
	}

	return count, nil
}
