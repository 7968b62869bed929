package usecases

import (
	"context"

	"nexus/internal/domain/task"
	vo "nexus/internal/domain/task/valueobjects"
	"nexus/internal/shared/logger"
)

type RecalculateParentStatusCommand struct {
	ParentTaskID uint
}

type RecalculateParentStatusResult struct {
	ParentTaskID uint
	Status       string
	Changed      bool
}

// RecalculateParentStatusUseCase derives a parent ticket's status from its
// subtasks after one of them changes. It is a best-effort follow-up: callers
// run it after their own commit and only log failures.
type RecalculateParentStatusUseCase struct {
	taskRepo task.Repository
	logger   logger.Interface
}

func NewRecalculateParentStatusUseCase(
	taskRepo task.Repository,
	logger logger.Interface,
) *RecalculateParentStatusUseCase {
	return &RecalculateParentStatusUseCase{
		taskRepo: taskRepo,
		logger:   logger,
	}
}

func (uc *RecalculateParentStatusUseCase) Execute(ctx context.Context, cmd RecalculateParentStatusCommand) (*RecalculateParentStatusResult, error) {
	parent, err := uc.taskRepo.FindByID(ctx, cmd.ParentTaskID)
	if err != nil {
		uc.logger.Errorw("failed to load parent task for recalculation", "parent_task_id", cmd.ParentTaskID, "error", err)
		return nil, err
	}
	if parent == nil {
		// Parent may have been deleted between commit and follow-up.
		uc.logger.Warnw("parent task no longer exists", "parent_task_id", cmd.ParentTaskID)
		return &RecalculateParentStatusResult{ParentTaskID: cmd.ParentTaskID}, nil
	}

	childStatuses := parent.ChildStatuses()
	if len(childStatuses) == 0 {
		return &RecalculateParentStatusResult{
			ParentTaskID: parent.ID(),
			Status:       parent.Status().String(),
		}, nil
	}

	done := 0
	for _, s := range childStatuses {
		if s.IsDone() {
			done++
		}
	}

	derived := vo.DeriveFromChildren(done, len(childStatuses))
	if !parent.ApplyDerivedStatus(derived) {
		return &RecalculateParentStatusResult{
			ParentTaskID: parent.ID(),
			Status:       parent.Status().String(),
		}, nil
	}

	if err := uc.taskRepo.Update(ctx, parent); err != nil {
		uc.logger.Errorw("failed to persist recalculated parent status",
			"parent_task_id", parent.ID(), "status", derived.String(), "error", err)
		return nil, err
	}

	uc.logger.Infow("parent status recalculated",
		"parent_task_id", parent.ID(), "status", derived.String(),
		"done_children", done, "total_children", len(childStatuses))

	return &RecalculateParentStatusResult{
		ParentTaskID: parent.ID(),
		Status:       derived.String(),
		Changed:      true,
	}, nil
}
