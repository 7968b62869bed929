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

type TaskAttachmentRepository struct {
	db     *gorm.DB
	mapper mappers.TaskMapper
}

func NewTaskAttachmentRepository(db *gorm.DB) *TaskAttachmentRepository {
	return &TaskAttachmentRepository{
		db:     db,
		mapper: mappers.NewTaskMapper(),
	}
}

func (r *TaskAttachmentRepository) Save(ctx context.Context, a *task.Attachment) error {
	model := r.mapper.AttachmentToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save attachment: %w", err)
	}

	if err := a.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *TaskAttachmentRepository) FindByTaskID(ctx context.Context, taskID uint) ([]*task.Attachment, error) {
	var attachmentModels []models.TaskAttachmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("task_id = ?", taskID).
		Order("created_at ASC").
		Find(&attachmentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find attachments: %w", err)
	}

	attachments := make([]*task.Attachment, len(attachmentModels))
	for i := range attachmentModels {
		a, err := r.mapper.AttachmentToDomain(&attachmentModels[i])
		if err != nil {
			return nil, err
		}
		attachments[i] = a
	}

	return attachments, nil
}

func (r *TaskAttachmentRepository) FindByID(ctx context.Context, attachmentID uint) (*task.Attachment, error) {
	var model models.TaskAttachmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, attachmentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find attachment: %w", err)
	}

	return r.mapper.AttachmentToDomain(&model)
}

func (r *TaskAttachmentRepository) Delete(ctx context.Context, attachmentID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.TaskAttachmentModel{}, attachmentID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete attachment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("attachment not found")
	}
	return nil
}

func (r *TaskAttachmentRepository) DeleteByTaskID(ctx context.Context, taskID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Where("task_id = ?", taskID).
		Delete(&models.TaskAttachmentModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete task attachments: %w", err)
	}
	return nil
}
