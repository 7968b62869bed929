package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"nexus/internal/domain/task"
	vo "nexus/internal/domain/task/valueobjects"
	"nexus/internal/infrastructure/persistence/models"
)

// TaskMapper converts between Task domain entities and persistence models.
type TaskMapper interface {
	ToModel(t *task.Task) *models.TaskModel
	ToDomain(model *models.TaskModel) (*task.Task, error)
	CommentToModel(c *task.Comment) *models.TaskCommentModel
	CommentToDomain(model *models.TaskCommentModel) (*task.Comment, error)
	AttachmentToModel(a *task.Attachment) *models.TaskAttachmentModel
	AttachmentToDomain(model *models.TaskAttachmentModel) (*task.Attachment, error)
}

type TaskMapperImpl struct{}

func NewTaskMapper() TaskMapper {
	return &TaskMapperImpl{}
}

func (m *TaskMapperImpl) ToModel(t *task.Task) *models.TaskModel {
	model := &models.TaskModel{
		ID:                t.ID(),
		ProjectID:         t.ProjectID(),
		SprintID:          t.SprintID(),
		FeatureID:         t.FeatureID(),
		ParentTaskID:      t.ParentTaskID(),
		Title:             t.Title(),
		Description:       t.Description(),
		Type:              t.Type().String(),
		Status:            t.Status().String(),
		Priority:          t.Priority().String(),
		StoryPoints:       t.StoryPoints(),
		RequiredRole:      t.RequiredRole(),
		CreatorID:         t.CreatorID(),
		AssigneeID:        t.AssigneeID(),
		ReviewerID:        t.ReviewerID(),
		GithubIssueNumber: t.GithubIssueNumber(),
		GithubIssueID:     t.GithubIssueID(),
		SyncStatus:        t.SyncStatus().String(),
		CreatedAt:         t.CreatedAt().UnixMilli(),
		UpdatedAt:         t.UpdatedAt().UnixMilli(),
	}

	if labels := t.Labels(); len(labels) > 0 {
		labelsJSON, _ := json.Marshal(labels)
		model.Labels = labelsJSON
	}

	if t.SyncedAt() != nil {
		synced := t.SyncedAt().UnixMilli()
		model.SyncedAt = &synced
	}

	return model
}

// ToDomain converts the task row only; children are loaded and attached by
// the repository.
func (m *TaskMapperImpl) ToDomain(model *models.TaskModel) (*task.Task, error) {
	taskType, err := vo.NewTaskType(model.Type)
	if err != nil {
		return nil, fmt.Errorf("task %d: %w", model.ID, err)
	}
	status, err := vo.NewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("task %d: %w", model.ID, err)
	}
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("task %d: %w", model.ID, err)
	}

	var labels []string
	if len(model.Labels) > 0 {
		if err := json.Unmarshal(model.Labels, &labels); err != nil {
			return nil, fmt.Errorf("failed to unmarshal task labels (id=%d): %w", model.ID, err)
		}
	}

	var syncedAt *time.Time
	if model.SyncedAt != nil {
		ts := time.UnixMilli(*model.SyncedAt)
		syncedAt = &ts
	}

	return task.ReconstructTask(
		model.ID,
		model.ProjectID,
		model.SprintID,
		model.FeatureID,
		model.ParentTaskID,
		model.Title,
		model.Description,
		taskType,
		status,
		priority,
		model.StoryPoints,
		model.RequiredRole,
		labels,
		model.CreatorID,
		model.AssigneeID,
		model.ReviewerID,
		model.GithubIssueNumber,
		model.GithubIssueID,
		vo.SyncStatus(model.SyncStatus),
		syncedAt,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}

func (m *TaskMapperImpl) CommentToModel(c *task.Comment) *models.TaskCommentModel {
	return &models.TaskCommentModel{
		ID:        c.ID(),
		TaskID:    c.TaskID(),
		UserID:    c.UserID(),
		Content:   c.Content(),
		CreatedAt: c.CreatedAt().UnixMilli(),
		UpdatedAt: c.UpdatedAt().UnixMilli(),
	}
}

func (m *TaskMapperImpl) CommentToDomain(model *models.TaskCommentModel) (*task.Comment, error) {
	return task.ReconstructComment(
		model.ID,
		model.TaskID,
		model.UserID,
		model.Content,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}

func (m *TaskMapperImpl) AttachmentToModel(a *task.Attachment) *models.TaskAttachmentModel {
	return &models.TaskAttachmentModel{
		ID:          a.ID(),
		TaskID:      a.TaskID(),
		UserID:      a.UserID(),
		FileName:    a.FileName(),
		ContentType: a.ContentType(),
		Size:        a.Size(),
		StoragePath: a.StoragePath(),
		CreatedAt:   a.CreatedAt().UnixMilli(),
	}
}

func (m *TaskMapperImpl) AttachmentToDomain(model *models.TaskAttachmentModel) (*task.Attachment, error) {
	return task.ReconstructAttachment(
		model.ID,
		model.TaskID,
		model.UserID,
		model.FileName,
		model.ContentType,
		model.Size,
		model.StoragePath,
		time.UnixMilli(model.CreatedAt),
	)
}
