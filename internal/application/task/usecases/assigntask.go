package usecases

import (
	"context"

	"nexus/internal/domain/task"
	"nexus/internal/domain/user"
	"nexus/internal/shared/errors"
	"nexus/internal/shared/goroutine"
	"nexus/internal/shared/logger"
)

// EmailNotifier sends assignment notifications. Best-effort only.
type EmailNotifier interface {
	SendTaskAssignedEmail(to, assigneeName, taskTitle string, taskID uint) error
}

type AssignTaskCommand struct {
	TaskID     uint
	AssigneeID *uint // nil unassigns
}

type AssignTaskResult struct {
	TaskID     uint
	AssigneeID *uint
}

type AssignTaskUseCase struct {
	taskRepo task.Repository
	userRepo user.Repository
	notifier EmailNotifier
	logger   logger.Interface
}

func NewAssignTaskUseCase(
	taskRepo task.Repository,
	userRepo user.Repository,
	notifier EmailNotifier,
	logger logger.Interface,
) *AssignTaskUseCase {
	return &AssignTaskUseCase{
		taskRepo: taskRepo,
		userRepo: userRepo,
		notifier: notifier,
		logger:   logger,
	}
}

func (uc *AssignTaskUseCase) Execute(ctx context.Context, cmd AssignTaskCommand) (*AssignTaskResult, error) {
	uc.logger.Infow("executing assign task use case", "task_id", cmd.TaskID, "assignee_id", cmd.AssigneeID)

	t, err := uc.taskRepo.FindByID(ctx, cmd.TaskID)
	if err != nil {
		uc.logger.Errorw("failed to load task", "task_id", cmd.TaskID, "error", err)
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("task not found")
	}

	var assignee *user.User
	if cmd.AssigneeID == nil {
		t.Unassign()
	} else {
		assignee, err = uc.userRepo.FindByID(ctx, *cmd.AssigneeID)
		if err != nil {
			return nil, err
		}
		if assignee == nil {
			return nil, errors.NewNotFoundError("assignee not found")
		}
		if err := t.AssignTo(assignee.ID()); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.taskRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update task assignee", "task_id", t.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("task assignment updated", "task_id", t.ID(), "assignee_id", cmd.AssigneeID)

	if assignee != nil && uc.notifier != nil {
		email := assignee.Email()
		name := assignee.Name()
		title := t.Title()
		taskID := t.ID()
		goroutine.SafeGo(uc.logger, "task-assigned-email", func() {
			if err := uc.notifier.SendTaskAssignedEmail(email, name, title, taskID); err != nil {
				uc.logger.Warnw("failed to send assignment email", "task_id", taskID, "error", err)
			}
		})
	}

	return &AssignTaskResult{TaskID: t.ID(), AssigneeID: cmd.AssigneeID}, nil
}
