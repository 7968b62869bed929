package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"nexus/internal/domain/project"
	"nexus/internal/infrastructure/persistence/mappers"
	"nexus/internal/infrastructure/persistence/models"
	"nexus/internal/shared/db"
	apperrors "nexus/internal/shared/errors"
)

type ProjectRepository struct {
	db     *gorm.DB
	mapper mappers.ProjectMapper
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{
		db:     db,
		mapper: mappers.NewProjectMapper(),
	}
}

func (r *ProjectRepository) Save(ctx context.Context, p *project.Project) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save project: %w", err)
	}

	if err := p.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *ProjectRepository) Update(ctx context.Context, p *project.Project) error {
	model := r.mapper.ToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select("*") so an unlinked github repo clears the columns.
	result := tx.
		Model(&models.ProjectModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update project: %w", result.Error)
	}

	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.ProjectModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete project: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("project not found")
	}
	return nil
}

// FindByID returns nil when the project does not exist.
func (r *ProjectRepository) FindByID(ctx context.Context, id uint) (*project.Project, error) {
	var model models.ProjectModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ProjectRepository) ListByVertical(ctx context.Context, verticalID uint) ([]*project.Project, error) {
	var projectModels []models.ProjectModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("vertical_id = ?", verticalID).
		Order("name ASC").
		Find(&projectModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	projects := make([]*project.Project, len(projectModels))
	for i := range projectModels {
		p, err := r.mapper.ToDomain(&projectModels[i])
		if err != nil {
			return nil, err
		}
		projects[i] = p
	}

	return projects, nil
}

func (r *ProjectRepository) AddMember(ctx context.Context, projectID, userID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := &models.ProjectMemberModel{
		ProjectID: projectID,
		UserID:    userID,
	}

	if err := tx.Create(model).Error; err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") {
			return apperrors.NewConflictError("user is already a project member")
		}
		return fmt.Errorf("failed to add project member: %w", err)
	}

	return nil
}

func (r *ProjectRepository) RemoveMember(ctx context.Context, projectID, userID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Delete(&models.ProjectMemberModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to remove project member: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("project member not found")
	}

	return nil
}

func (r *ProjectRepository) ListMemberIDs(ctx context.Context, projectID uint) ([]uint, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var memberIDs []uint
	if err := tx.
		Model(&models.ProjectMemberModel{}).
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Pluck("user_id", &memberIDs).Error; err != nil {
		return nil, fmt.Errorf("failed to list project members: %w", err)
	}

	return memberIDs, nil
}

func (r *ProjectRepository) IsMember(ctx context.Context, projectID, userID uint) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.
		Model(&models.ProjectMemberModel{}).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check project membership: %w", err)
	}

	return count > 0, nil
}
