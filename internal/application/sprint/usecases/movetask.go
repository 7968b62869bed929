package usecases

import (
	"context"

	"nexus/internal/domain/sprint"
	"nexus/internal/domain/task"
	"nexus/internal/shared/errors"
	"nexus/internal/shared/logger"
)

type MoveTaskCommand struct {
	TaskID   uint
	SprintID *uint // nil moves the task to the backlog
}

type MoveTaskResult struct {
	TaskID   uint
	SprintID *uint
}

// MoveTaskUseCase moves a ticket between sprints within its project. Its
// subtasks follow the parent.
type MoveTaskUseCase struct {
	taskRepo   task.Repository
	sprintRepo sprint.Repository
	txManager  Transactor
	logger     logger.Interface
}

func NewMoveTaskUseCase(
	taskRepo task.Repository,
	sprintRepo sprint.Repository,
	txManager Transactor,
	logger logger.Interface,
) *MoveTaskUseCase {
	return &MoveTaskUseCase{
		taskRepo:   taskRepo,
		sprintRepo: sprintRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *MoveTaskUseCase) Execute(ctx context.Context, cmd MoveTaskCommand) (*MoveTaskResult, error) {
	uc.logger.Infow("executing move task use case", "task_id", cmd.TaskID, "sprint_id", cmd.SprintID)

	t, err := uc.taskRepo.FindByID(ctx, cmd.TaskID)
	if err != nil {
		uc.logger.Errorw("failed to load task", "task_id", cmd.TaskID, "error", err)
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("task not found")
	}

	if cmd.SprintID != nil {
		target, err := uc.sprintRepo.FindByID(ctx, *cmd.SprintID)
		if err != nil {
			return nil, err
		}
		if target == nil {
			return nil, errors.NewNotFoundError("sprint not found")
		}
		if target.ProjectID() != t.ProjectID() {
			return nil, errors.NewValidationError("target sprint must be in the same project")
		}
	}

	// Parent and subtasks move together or not at all.
	err = uc.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		t.MoveToSprint(cmd.SprintID)
		if err := uc.taskRepo.Update(ctx, t); err != nil {
			return err
		}
		for _, child := range t.Children() {
			child.MoveToSprint(cmd.SprintID)
			if err := uc.taskRepo.Update(ctx, child); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to move task", "task_id", t.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("task moved", "task_id", t.ID(), "sprint_id", cmd.SprintID, "children_moved", len(t.Children()))

	return &MoveTaskResult{TaskID: t.ID(), SprintID: cmd.SprintID}, nil
}
