package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"nexus/internal/domain/sprint"
	vo "nexus/internal/domain/sprint/valueobjects"
	"nexus/internal/infrastructure/persistence/mappers"
	"nexus/internal/infrastructure/persistence/models"
	"nexus/internal/shared/db"
)

type SprintRepository struct {
	db     *gorm.DB
	mapper mappers.SprintMapper
}

func NewSprintRepository(db *gorm.DB) *SprintRepository {
	return &SprintRepository{
		db:     db,
		mapper: mappers.NewSprintMapper(),
	}
}

func (r *SprintRepository) Save(ctx context.Context, s *sprint.Sprint) error {
	model := r.mapper.ToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save sprint: %w", err)
	}

	if err := s.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *SprintRepository) Update(ctx context.Context, s *sprint.Sprint) error {
	model := r.mapper.ToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.SprintModel{}).
		Where("id = ?", model.ID).
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update sprint: %w", result.Error)
	}

	return nil
}

func (r *SprintRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.SprintModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete sprint: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("sprint not found")
	}
	return nil
}

// FindByID returns nil when the sprint does not exist.
func (r *SprintRepository) FindByID(ctx context.Context, id uint) (*sprint.Sprint, error) {
	var model models.SprintModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find sprint: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *SprintRepository) ListByProject(ctx context.Context, projectID uint) ([]*sprint.Sprint, error) {
	var sprintModels []models.SprintModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("project_id = ?", projectID).
		Order("start_date DESC").
		Find(&sprintModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list sprints: %w", err)
	}

	sprints := make([]*sprint.Sprint, len(sprintModels))
	for i := range sprintModels {
		s, err := r.mapper.ToDomain(&sprintModels[i])
		if err != nil {
			return nil, err
		}
		sprints[i] = s
	}

	return sprints, nil
}

// FindActiveByProject returns nil when the project has no active sprint.
func (r *SprintRepository) FindActiveByProject(ctx context.Context, projectID uint) (*sprint.Sprint, error) {
	var model models.SprintModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("project_id = ? AND status = ?", projectID, vo.StatusActive.String()).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find active sprint: %w", err)
	}

	return r.mapper.ToDomain(&model)
}
