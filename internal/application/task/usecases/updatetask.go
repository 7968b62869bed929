package usecases

import (
	"context"

	"nexus/internal/domain/task"
	vo "nexus/internal/domain/task/valueobjects"
	"nexus/internal/shared/errors"
	"nexus/internal/shared/logger"
)

type UpdateTaskCommand struct {
	TaskID       uint
	Title        *string
	Description  *string
	Priority     *string
	StoryPoints  *int
	RequiredRole *string
	Labels       []string
	FeatureID    *uint
	ClearFeature bool
	ReviewerID   *uint
}

type UpdateTaskResult struct {
	TaskID uint
}

type UpdateTaskUseCase struct {
	taskRepo task.Repository
	logger   logger.Interface
}

func NewUpdateTaskUseCase(taskRepo task.Repository, logger logger.Interface) *UpdateTaskUseCase {
	return &UpdateTaskUseCase{taskRepo: taskRepo, logger: logger}
}

func (uc *UpdateTaskUseCase) Execute(ctx context.Context, cmd UpdateTaskCommand) (*UpdateTaskResult, error) {
	uc.logger.Infow("executing update task use case", "task_id", cmd.TaskID)

	t, err := uc.taskRepo.FindByID(ctx, cmd.TaskID)
	if err != nil {
		uc.logger.Errorw("failed to load task", "task_id", cmd.TaskID, "error", err)
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("task not found")
	}

	title := t.Title()
	description := t.Description()
	if cmd.Title != nil {
		title = *cmd.Title
	}
	if cmd.Description != nil {
		description = *cmd.Description
	}
	if cmd.Title != nil || cmd.Description != nil {
		if err := t.UpdateDetails(title, description); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.Priority != nil {
		priority, err := vo.NewPriority(*cmd.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := t.ChangePriority(priority); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.StoryPoints != nil {
		if err := t.SetStoryPoints(*cmd.StoryPoints); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.RequiredRole != nil {
		t.SetRequiredRole(*cmd.RequiredRole)
	}
	if cmd.Labels != nil {
		t.SetLabels(cmd.Labels)
	}
	if cmd.ClearFeature {
		t.AssignToFeature(nil)
	} else if cmd.FeatureID != nil {
		t.AssignToFeature(cmd.FeatureID)
	}
	if cmd.ReviewerID != nil {
		if err := t.SetReviewer(*cmd.ReviewerID); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.taskRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update task", "task_id", t.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("task updated successfully", "task_id", t.ID())

	return &UpdateTaskResult{TaskID: t.ID()}, nil
}
