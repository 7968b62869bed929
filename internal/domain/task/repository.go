package task

import (
	"context"

	vo "nexus/internal/domain/task/valueobjects"
)

// Repository persists tickets. FindByID loads direct children; list methods
// do not.
type Repository interface {
	Save(ctx context.Context, t *Task) error
	Update(ctx context.Context, t *Task) error
	Delete(ctx context.Context, taskID uint) error
	FindByID(ctx context.Context, taskID uint) (*Task, error)
	FindChildren(ctx context.Context, parentTaskID uint) ([]*Task, error)
	List(ctx context.Context, filter Filter) ([]*Task, int64, error)
	// ListBySprint returns the sprint's top-level tickets with their direct
	// children attached, for progress aggregation.
	ListBySprint(ctx context.Context, sprintID uint) ([]*Task, error)
}

// Filter narrows List queries. Nil pointer fields are ignored.
type Filter struct {
	ProjectID    *uint
	SprintID     *uint
	FeatureID    *uint
	ParentTaskID *uint
	TopLevelOnly bool
	Type         *vo.TaskType
	Status       *vo.Status
	Priority     *vo.Priority
	AssigneeID   *uint
	Page         int
	PageSize     int
	SortBy       string
	SortOrder    string
}

type CommentRepository interface {
	Save(ctx context.Context, c *Comment) error
	FindByTaskID(ctx context.Context, taskID uint) ([]*Comment, error)
	FindByID(ctx context.Context, commentID uint) (*Comment, error)
	Delete(ctx context.Context, commentID uint) error
	DeleteByTaskID(ctx context.Context, taskID uint) error
}

type AttachmentRepository interface {
	Save(ctx context.Context, a *Attachment) error
	FindByTaskID(ctx context.Context, taskID uint) ([]*Attachment, error)
	FindByID(ctx context.Context, attachmentID uint) (*Attachment, error)
	Delete(ctx context.Context, attachmentID uint) error
	DeleteByTaskID(ctx context.Context, taskID uint) error
}
