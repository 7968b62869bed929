package usecases

import (
	"context"
	"time"

	"nexus/internal/domain/task"
	"nexus/internal/shared/errors"
	"nexus/internal/shared/logger"
)

type AddCommentCommand struct {
	TaskID  uint
	UserID  uint
	Content string
}

type AddCommentResult struct {
	CommentID uint
	CreatedAt time.Time
}

type AddCommentUseCase struct {
	taskRepo    task.Repository
	commentRepo task.CommentRepository
	logger      logger.Interface
}

func NewAddCommentUseCase(
	taskRepo task.Repository,
	commentRepo task.CommentRepository,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		taskRepo:    taskRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error) {
	uc.logger.Infow("executing add comment use case", "task_id", cmd.TaskID, "user_id", cmd.UserID)

	t, err := uc.taskRepo.FindByID(ctx, cmd.TaskID)
	if err != nil {
		uc.logger.Errorw("failed to load task", "task_id", cmd.TaskID, "error", err)
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("task not found")
	}

	comment, err := task.NewComment(cmd.TaskID, cmd.UserID, cmd.Content)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Save(ctx, comment); err != nil {
		uc.logger.Errorw("failed to save comment", "task_id", cmd.TaskID, "error", err)
		return nil, err
	}

	uc.logger.Infow("comment added", "task_id", cmd.TaskID, "comment_id", comment.ID())

	return &AddCommentResult{CommentID: comment.ID(), CreatedAt: comment.CreatedAt()}, nil
}
