package usecases

import (
	"context"
	"time"

	"nexus/internal/domain/task"
	"nexus/internal/shared/logger"
	"nexus/internal/shared/services/markdown"
)

type ListCommentsQuery struct {
	TaskID uint
}

type CommentDTO struct {
	ID          uint      `json:"id"`
	TaskID      uint      `json:"task_id"`
	UserID      uint      `json:"user_id"`
	Content     string    `json:"content"`
	ContentHTML string    `json:"content_html"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ListCommentsResult struct {
	Comments []CommentDTO
}

// ListCommentsUseCase returns a task's comments with the markdown body
// rendered and sanitized for display.
type ListCommentsUseCase struct {
	commentRepo task.CommentRepository
	markdown    markdown.Service
	logger      logger.Interface
}

func NewListCommentsUseCase(
	commentRepo task.CommentRepository,
	markdownSvc markdown.Service,
	logger logger.Interface,
) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		commentRepo: commentRepo,
		markdown:    markdownSvc,
		logger:      logger,
	}
}

func (uc *ListCommentsUseCase) Execute(ctx context.Context, query ListCommentsQuery) (*ListCommentsResult, error) {
	comments, err := uc.commentRepo.FindByTaskID(ctx, query.TaskID)
	if err != nil {
		uc.logger.Errorw("failed to list comments", "task_id", query.TaskID, "error", err)
		return nil, err
	}

	dtos := make([]CommentDTO, len(comments))
	for i, c := range comments {
		html, err := uc.markdown.ToHTMLSanitized(c.Content())
		if err != nil {
			uc.logger.Warnw("failed to render comment markdown", "comment_id", c.ID(), "error", err)
			html = ""
		}
		dtos[i] = CommentDTO{
			ID:          c.ID(),
			TaskID:      c.TaskID(),
			UserID:      c.UserID(),
			Content:     c.Content(),
			ContentHTML: html,
			CreatedAt:   c.CreatedAt(),
			UpdatedAt:   c.UpdatedAt(),
		}
	}

	return &ListCommentsResult{Comments: dtos}, nil
}
