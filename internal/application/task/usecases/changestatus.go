package usecases

import (
	"context"

	"nexus/internal/domain/task"
	vo "nexus/internal/domain/task/valueobjects"
	"nexus/internal/shared/errors"
	"nexus/internal/shared/goroutine"
	"nexus/internal/shared/logger"
)

type ChangeTaskStatusCommand struct {
	TaskID uint
	Status string
}

type ChangeTaskStatusResult struct {
	TaskID uint
	Status string
}

type ChangeTaskStatusUseCase struct {
	taskRepo    task.Repository
	recalculate RecalculateParentStatusExecutor
	logger      logger.Interface
}

func NewChangeTaskStatusUseCase(
	taskRepo task.Repository,
	recalculate RecalculateParentStatusExecutor,
	logger logger.Interface,
) *ChangeTaskStatusUseCase {
	return &ChangeTaskStatusUseCase{
		taskRepo:    taskRepo,
		recalculate: recalculate,
		logger:      logger,
	}
}

func (uc *ChangeTaskStatusUseCase) Execute(ctx context.Context, cmd ChangeTaskStatusCommand) (*ChangeTaskStatusResult, error) {
	uc.logger.Infow("executing change task status use case", "task_id", cmd.TaskID, "status", cmd.Status)

	status, err := vo.NewStatus(cmd.Status)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	t, err := uc.taskRepo.FindByID(ctx, cmd.TaskID)
	if err != nil {
		uc.logger.Errorw("failed to load task", "task_id", cmd.TaskID, "error", err)
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("task not found")
	}

	if err := t.ChangeStatus(status); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.taskRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update task status", "task_id", t.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("task status changed", "task_id", t.ID(), "status", status.String())

	if parentID := t.ParentTaskID(); parentID != nil {
		id := *parentID
		goroutine.SafeGo(uc.logger, "recalculate-parent-status", func() {
			_, err := uc.recalculate.Execute(context.Background(), RecalculateParentStatusCommand{ParentTaskID: id})
			if err != nil {
				uc.logger.Errorw("parent status recalculation failed", "parent_task_id", id, "error", err)
			}
		})
	}

	return &ChangeTaskStatusResult{TaskID: t.ID(), Status: status.String()}, nil
}
