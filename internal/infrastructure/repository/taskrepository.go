package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"nexus/internal/domain/task"
	"nexus/internal/infrastructure/persistence/mappers"
	"nexus/internal/infrastructure/persistence/models"
	"nexus/internal/shared/db"
)

// allowedTaskOrderByFields defines the whitelist of allowed ORDER BY fields
// to prevent SQL injection attacks.
var allowedTaskOrderByFields = map[string]bool{
	"id":           true,
	"title":        true,
	"type":         true,
	"status":       true,
	"priority":     true,
	"story_points": true,
	"creator_id":   true,
	"assignee_id":  true,
	"created_at":   true,
	"updated_at":   true,
}

type TaskRepository struct {
	db     *gorm.DB
	mapper mappers.TaskMapper
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{
		db:     db,
		mapper: mappers.NewTaskMapper(),
	}
}

func (r *TaskRepository) Save(ctx context.Context, t *task.Task) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save task: %w", err)
	}

	if err := t.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *TaskRepository) Update(ctx context.Context, t *task.Task) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	// Select("*") so cleared pointer columns (sprint_id, assignee_id) are
	// written back as NULL instead of being skipped as zero values.
	result := tx.
		Model(&models.TaskModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update task: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, taskID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.TaskModel{}, taskID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete task: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("task not found")
	}
	return nil
}

// FindByID loads the task with its direct children attached. Returns nil
// when the task does not exist.
func (r *TaskRepository) FindByID(ctx context.Context, taskID uint) (*task.Task, error) {
	var model models.TaskModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, taskID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	t, err := r.mapper.ToDomain(&model)
	if err != nil {
		return nil, err
	}

	children, err := r.FindChildren(ctx, model.ID)
	if err != nil {
		return nil, err
	}
	t.AttachChildren(children)

	return t, nil
}

func (r *TaskRepository) FindChildren(ctx context.Context, parentTaskID uint) ([]*task.Task, error) {
	var childModels []models.TaskModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("parent_task_id = ?", parentTaskID).
		Order("created_at ASC").
		Find(&childModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find child tasks: %w", err)
	}

	children := make([]*task.Task, len(childModels))
	for i, model := range childModels {
		child, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		children[i] = child
	}

	return children, nil
}

func (r *TaskRepository) List(ctx context.Context, filter task.Filter) ([]*task.Task, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TaskModel{})

	if filter.ProjectID != nil {
		query = query.Where("project_id = ?", *filter.ProjectID)
	}
	if filter.SprintID != nil {
		query = query.Where("sprint_id = ?", *filter.SprintID)
	}
	if filter.FeatureID != nil {
		query = query.Where("feature_id = ?", *filter.FeatureID)
	}
	if filter.ParentTaskID != nil {
		query = query.Where("parent_task_id = ?", *filter.ParentTaskID)
	}
	if filter.TopLevelOnly {
		query = query.Where("parent_task_id IS NULL")
	}
	if filter.Type != nil {
		query = query.Where("type = ?", filter.Type.String())
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *filter.AssigneeID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tasks: %w", err)
	}

	// Apply sorting with whitelist validation to prevent SQL injection
	sortBy := strings.ToLower(filter.SortBy)
	if sortBy != "" && allowedTaskOrderByFields[sortBy] {
		order := strings.ToUpper(filter.SortOrder)
		if order != "ASC" && order != "DESC" {
			order = "DESC"
		}
		query = query.Order(sortBy + " " + order)
	} else {
		query = query.Order("created_at DESC")
	}

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(filter.PageSize).Offset(offset)
	}

	var taskModels []models.TaskModel
	if err := query.Find(&taskModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks := make([]*task.Task, len(taskModels))
	for i, model := range taskModels {
		t, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		tasks[i] = t
	}

	return tasks, total, nil
}

// ListBySprint loads the sprint's top-level tasks with their direct children
// attached, using one query per level.
func (r *TaskRepository) ListBySprint(ctx context.Context, sprintID uint) ([]*task.Task, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var topModels []models.TaskModel
	if err := tx.
		Where("sprint_id = ? AND parent_task_id IS NULL", sprintID).
		Order("created_at ASC").
		Find(&topModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list sprint tasks: %w", err)
	}

	if len(topModels) == 0 {
		return []*task.Task{}, nil
	}

	parentIDs := make([]uint, len(topModels))
	for i, model := range topModels {
		parentIDs[i] = model.ID
	}

	var childModels []models.TaskModel
	if err := tx.
		Where("parent_task_id IN ?", parentIDs).
		Order("created_at ASC").
		Find(&childModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list sprint child tasks: %w", err)
	}

	childrenByParent := make(map[uint][]*task.Task, len(topModels))
	for i := range childModels {
		child, err := r.mapper.ToDomain(&childModels[i])
		if err != nil {
			return nil, err
		}
		parentID := *childModels[i].ParentTaskID
		childrenByParent[parentID] = append(childrenByParent[parentID], child)
	}

	tasks := make([]*task.Task, len(topModels))
	for i := range topModels {
		t, err := r.mapper.ToDomain(&topModels[i])
		if err != nil {
			return nil, err
		}
		t.AttachChildren(childrenByParent[t.ID()])
		tasks[i] = t
	}

	return tasks, nil
}
