package usecases

import (
	"context"
	"time"

	"nexus/internal/domain/project"
	"nexus/internal/domain/task"
	vo "nexus/internal/domain/task/valueobjects"
	"nexus/internal/shared/errors"
	"nexus/internal/shared/goroutine"
	"nexus/internal/shared/logger"
)

type CreateTaskCommand struct {
	ProjectID    uint
	SprintID     *uint
	FeatureID    *uint
	ParentTaskID *uint
	Title        string
	Description  string
	Type         string
	Priority     string
	StoryPoints  int
	RequiredRole string
	Labels       []string
	CreatorID    uint
	AssigneeID   *uint
}

type CreateTaskResult struct {
	TaskID    uint
	Status    string
	CreatedAt time.Time
}

type CreateTaskUseCase struct {
	taskRepo    task.Repository
	projectRepo project.Repository
	recalculate RecalculateParentStatusExecutor
	logger      logger.Interface
}

func NewCreateTaskUseCase(
	taskRepo task.Repository,
	projectRepo project.Repository,
	recalculate RecalculateParentStatusExecutor,
	logger logger.Interface,
) *CreateTaskUseCase {
	return &CreateTaskUseCase{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		recalculate: recalculate,
		logger:      logger,
	}
}

func (uc *CreateTaskUseCase) Execute(ctx context.Context, cmd CreateTaskCommand) (*CreateTaskResult, error) {
	uc.logger.Infow("executing create task use case",
		"project_id", cmd.ProjectID, "title", cmd.Title, "type", cmd.Type, "creator_id", cmd.CreatorID)

	proj, err := uc.projectRepo.FindByID(ctx, cmd.ProjectID)
	if err != nil {
		uc.logger.Errorw("failed to load project", "project_id", cmd.ProjectID, "error", err)
		return nil, err
	}
	if proj == nil {
		return nil, errors.NewNotFoundError("project not found")
	}

	taskType, err := vo.NewTaskType(cmd.Type)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	priority, err := vo.NewPriority(cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	newTask, err := task.NewTask(cmd.ProjectID, cmd.Title, cmd.Description, taskType, priority, cmd.CreatorID)
	if err != nil {
		uc.logger.Errorw("failed to create task entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.ParentTaskID != nil {
		parent, err := uc.taskRepo.FindByID(ctx, *cmd.ParentTaskID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, errors.NewNotFoundError("parent task not found")
		}
		if parent.ProjectID() != cmd.ProjectID {
			return nil, errors.NewValidationError("parent task belongs to a different project")
		}
		if !parent.Type().CanParent(taskType) {
			return nil, errors.NewValidationError(
				"a " + parent.Type().String() + " cannot contain a " + taskType.String())
		}
		if err := newTask.SetParent(parent.ID()); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	newTask.MoveToSprint(cmd.SprintID)
	newTask.AssignToFeature(cmd.FeatureID)
	if cmd.StoryPoints > 0 {
		if err := newTask.SetStoryPoints(cmd.StoryPoints); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	newTask.SetRequiredRole(cmd.RequiredRole)
	if len(cmd.Labels) > 0 {
		newTask.SetLabels(cmd.Labels)
	}
	if cmd.AssigneeID != nil {
		if err := newTask.AssignTo(*cmd.AssigneeID); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.taskRepo.Save(ctx, newTask); err != nil {
		uc.logger.Errorw("failed to save task", "error", err)
		return nil, err
	}

	uc.logger.Infow("task created successfully", "task_id", newTask.ID(), "type", newTask.Type().String())

	if cmd.ParentTaskID != nil {
		parentID := *cmd.ParentTaskID
		goroutine.SafeGo(uc.logger, "recalculate-parent-status", func() {
			_, err := uc.recalculate.Execute(context.Background(), RecalculateParentStatusCommand{ParentTaskID: parentID})
			if err != nil {
				uc.logger.Errorw("parent status recalculation failed", "parent_task_id", parentID, "error", err)
			}
		})
	}

	return &CreateTaskResult{
		TaskID:    newTask.ID(),
		Status:    newTask.Status().String(),
		CreatedAt: newTask.CreatedAt(),
	}, nil
}
