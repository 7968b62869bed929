package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"nexus/internal/domain/task"
	"nexus/internal/infrastructure/persistence/mappers"
	"nexus/internal/infrastructure/persistence/models"
	"nexus/internal/shared/db"
)

type TaskCommentRepository struct {
	db     *gorm.DB
	mapper mappers.TaskMapper
}

func NewTaskCommentRepository(db *gorm.DB) *TaskCommentRepository {
	return &TaskCommentRepository{
		db:     db,
		mapper: mappers.NewTaskMapper(),
	}
}

func (r *TaskCommentRepository) Save(ctx context.Context, c *task.Comment) error {
	model := r.mapper.CommentToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}

	if err := c.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *TaskCommentRepository) FindByTaskID(ctx context.Context, taskID uint) ([]*task.Comment, error) {
	var commentModels []models.TaskCommentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("task_id = ?", taskID).
		Order("created_at ASC").
		Find(&commentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find comments: %w", err)
	}

	comments := make([]*task.Comment, len(commentModels))
	for i := range commentModels {
		c, err := r.mapper.CommentToDomain(&commentModels[i])
		if err != nil {
			return nil, err
		}
		comments[i] = c
	}

	return comments, nil
}

func (r *TaskCommentRepository) FindByID(ctx context.Context, commentID uint) (*task.Comment, error) {
	var model models.TaskCommentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, commentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find comment: %w", err)
	}

	return r.mapper.CommentToDomain(&model)
}

func (r *TaskCommentRepository) Delete(ctx context.Context, commentID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.TaskCommentModel{}, commentID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("comment not found")
	}
	return nil
}

func (r *TaskCommentRepository) DeleteByTaskID(ctx context.Context, taskID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Where("task_id = ?", taskID).
		Delete(&models.TaskCommentModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete task comments: %w", err)
	}
	return nil
}
