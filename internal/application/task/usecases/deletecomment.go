package usecases

import (
	"context"

	"nexus/internal/domain/task"
	"nexus/internal/shared/authorization"
	"nexus/internal/shared/errors"
	"nexus/internal/shared/logger"
)

type DeleteCommentCommand struct {
	CommentID uint
	UserID    uint
	UserRole  string
}

type DeleteCommentResult struct {
	CommentID uint
}

// DeleteCommentUseCase removes a comment. Only the author or an admin may
// delete it.
type DeleteCommentUseCase struct {
	commentRepo task.CommentRepository
	logger      logger.Interface
}

func NewDeleteCommentUseCase(commentRepo task.CommentRepository, logger logger.Interface) *DeleteCommentUseCase {
	return &DeleteCommentUseCase{commentRepo: commentRepo, logger: logger}
}

func (uc *DeleteCommentUseCase) Execute(ctx context.Context, cmd DeleteCommentCommand) (*DeleteCommentResult, error) {
	uc.logger.Infow("executing delete comment use case", "comment_id", cmd.CommentID, "user_id", cmd.UserID)

	comment, err := uc.commentRepo.FindByID(ctx, cmd.CommentID)
	if err != nil {
		uc.logger.Errorw("failed to load comment", "comment_id", cmd.CommentID, "error", err)
		return nil, err
	}
	if comment == nil {
		return nil, errors.NewNotFoundError("comment not found")
	}

	role := authorization.ParseUserRole(cmd.UserRole)
	if !authorization.CanAccessResource(cmd.UserID, role, comment) {
		return nil, errors.NewForbiddenError("only the comment author or an admin may delete a comment")
	}

	if err := uc.commentRepo.Delete(ctx, cmd.CommentID); err != nil {
		uc.logger.Errorw("failed to delete comment", "comment_id", cmd.CommentID, "error", err)
		return nil, err
	}

	uc.logger.Infow("comment deleted", "comment_id", cmd.CommentID)

	return &DeleteCommentResult{CommentID: cmd.CommentID}, nil
}
