package usecases

import (
	"context"
	"time"

	"nexus/internal/domain/task"
	"nexus/internal/shared/errors"
	"nexus/internal/shared/logger"
)

type GetTaskQuery struct {
	TaskID uint
}

type TaskDTO struct {
	ID            uint       `json:"id"`
	ProjectID     uint       `json:"project_id"`
	SprintID      *uint      `json:"sprint_id"`
	FeatureID     *uint      `json:"feature_id"`
	ParentTaskID  *uint      `json:"parent_task_id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Type          string     `json:"type"`
	Status        string     `json:"status"`
	Priority      string     `json:"priority"`
	StoryPoints   int        `json:"story_points"`
	RequiredRole  string     `json:"required_role,omitempty"`
	Labels        []string   `json:"labels"`
	CreatorID     uint       `json:"creator_id"`
	AssigneeID    *uint      `json:"assignee_id"`
	ReviewerID    *uint      `json:"reviewer_id"`
	Progress      int        `json:"progress"`
	ProgressLabel string     `json:"progress_label"`
	ProgressColor string     `json:"progress_color"`
	GithubIssue   *int       `json:"github_issue_number,omitempty"`
	SyncStatus    string     `json:"sync_status"`
	SyncedAt      *time.Time `json:"synced_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	Children      []TaskDTO  `json:"children,omitempty"`
}

type GetTaskUseCase struct {
	taskRepo task.Repository
	logger   logger.Interface
}

func NewGetTaskUseCase(taskRepo task.Repository, logger logger.Interface) *GetTaskUseCase {
	return &GetTaskUseCase{taskRepo: taskRepo, logger: logger}
}

func (uc *GetTaskUseCase) Execute(ctx context.Context, query GetTaskQuery) (*TaskDTO, error) {
	t, err := uc.taskRepo.FindByID(ctx, query.TaskID)
	if err != nil {
		uc.logger.Errorw("failed to load task", "task_id", query.TaskID, "error", err)
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("task not found")
	}

	dto := taskToDTO(t)
	return &dto, nil
}

func taskToDTO(t *task.Task) TaskDTO {
	pct := task.CalculateTaskProgress(t.Status(), t.ChildStatuses())

	dto := TaskDTO{
		ID:            t.ID(),
		ProjectID:     t.ProjectID(),
		SprintID:      t.SprintID(),
		FeatureID:     t.FeatureID(),
		ParentTaskID:  t.ParentTaskID(),
		Title:         t.Title(),
		Description:   t.Description(),
		Type:          t.Type().String(),
		Status:        t.Status().String(),
		Priority:      t.Priority().String(),
		StoryPoints:   t.StoryPoints(),
		RequiredRole:  t.RequiredRole(),
		Labels:        t.Labels(),
		CreatorID:     t.CreatorID(),
		AssigneeID:    t.AssigneeID(),
		ReviewerID:    t.ReviewerID(),
		Progress:      pct,
		ProgressLabel: task.ProgressLabel(pct),
		ProgressColor: task.ProgressColor(pct),
		GithubIssue:   t.GithubIssueNumber(),
		SyncStatus:    t.SyncStatus().String(),
		SyncedAt:      t.SyncedAt(),
		CreatedAt:     t.CreatedAt(),
		UpdatedAt:     t.UpdatedAt(),
	}

	for _, child := range t.Children() {
		dto.Children = append(dto.Children, taskToDTO(child))
	}

	return dto
}
