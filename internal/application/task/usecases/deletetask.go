package usecases

import (
	"context"

	"nexus/internal/domain/task"
	"nexus/internal/shared/errors"
	"nexus/internal/shared/goroutine"
	"nexus/internal/shared/logger"
)

// Transactor runs a function inside a database transaction carried on the
// context. Satisfied by shared/db.TransactionManager.
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type DeleteTaskCommand struct {
	TaskID uint
}

type DeleteTaskResult struct {
	TaskID uint
}

// DeleteTaskUseCase removes a task together with its subtasks, comments and
// attachment rows in one transaction, then triggers a parent recompute.
type DeleteTaskUseCase struct {
	taskRepo       task.Repository
	commentRepo    task.CommentRepository
	attachmentRepo task.AttachmentRepository
	txManager      Transactor
	recalculate    RecalculateParentStatusExecutor
	logger         logger.Interface
}

func NewDeleteTaskUseCase(
	taskRepo task.Repository,
	commentRepo task.CommentRepository,
	attachmentRepo task.AttachmentRepository,
	txManager Transactor,
	recalculate RecalculateParentStatusExecutor,
	logger logger.Interface,
) *DeleteTaskUseCase {
	return &DeleteTaskUseCase{
		taskRepo:       taskRepo,
		commentRepo:    commentRepo,
		attachmentRepo: attachmentRepo,
		txManager:      txManager,
		recalculate:    recalculate,
		logger:         logger,
	}
}

func (uc *DeleteTaskUseCase) Execute(ctx context.Context, cmd DeleteTaskCommand) (*DeleteTaskResult, error) {
	uc.logger.Infow("executing delete task use case", "task_id", cmd.TaskID)

	t, err := uc.taskRepo.FindByID(ctx, cmd.TaskID)
	if err != nil {
		uc.logger.Errorw("failed to load task", "task_id", cmd.TaskID, "error", err)
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("task not found")
	}

	parentID := t.ParentTaskID()
	children := t.Children()

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		for _, child := range children {
			if err := uc.deleteOne(txCtx, child.ID()); err != nil {
				return err
			}
		}
		return uc.deleteOne(txCtx, t.ID())
	})
	if err != nil {
		uc.logger.Errorw("failed to delete task", "task_id", cmd.TaskID, "error", err)
		return nil, err
	}

	uc.logger.Infow("task deleted successfully", "task_id", cmd.TaskID, "children_deleted", len(children))

	if parentID != nil {
		id := *parentID
		goroutine.SafeGo(uc.logger, "recalculate-parent-status", func() {
			_, err := uc.recalculate.Execute(context.Background(), RecalculateParentStatusCommand{ParentTaskID: id})
			if err != nil {
				uc.logger.Errorw("parent status recalculation failed", "parent_task_id", id, "error", err)
			}
		})
	}

	return &DeleteTaskResult{TaskID: cmd.TaskID}, nil
}

func (uc *DeleteTaskUseCase) deleteOne(ctx context.Context, taskID uint) error {
	if err := uc.commentRepo.DeleteByTaskID(ctx, taskID); err != nil {
		return err
	}
	if err := uc.attachmentRepo.DeleteByTaskID(ctx, taskID); err != nil {
		return err
	}
	return uc.taskRepo.Delete(ctx, taskID)
}
