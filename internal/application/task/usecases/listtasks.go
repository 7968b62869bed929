package usecases

import (
	"context"

	"nexus/internal/domain/task"
	vo "nexus/internal/domain/task/valueobjects"
	"nexus/internal/shared/errors"
	"nexus/internal/shared/logger"
	"nexus/internal/shared/utils"
)

type ListTasksQuery struct {
	ProjectID    *uint
	SprintID     *uint
	FeatureID    *uint
	ParentTaskID *uint
	TopLevelOnly bool
	Type         *string
	Status       *string
	Priority     *string
	AssigneeID   *uint
	Page         int
	PageSize     int
	SortBy       string
	SortOrder    string
}

type ListTasksResult struct {
	Tasks    []TaskDTO
	Total    int64
	Page     int
	PageSize int
}

type ListTasksUseCase struct {
	taskRepo task.Repository
	logger   logger.Interface
}

func NewListTasksUseCase(taskRepo task.Repository, logger logger.Interface) *ListTasksUseCase {
	return &ListTasksUseCase{taskRepo: taskRepo, logger: logger}
}

func (uc *ListTasksUseCase) Execute(ctx context.Context, query ListTasksQuery) (*ListTasksResult, error) {
	pagination := utils.ValidatePagination(query.Page, query.PageSize)

	filter := task.Filter{
		ProjectID:    query.ProjectID,
		SprintID:     query.SprintID,
		FeatureID:    query.FeatureID,
		ParentTaskID: query.ParentTaskID,
		TopLevelOnly: query.TopLevelOnly,
		AssigneeID:   query.AssigneeID,
		Page:         pagination.Page,
		PageSize:     pagination.PageSize,
		SortBy:       query.SortBy,
		SortOrder:    query.SortOrder,
	}

	if query.Type != nil {
		taskType, err := vo.NewTaskType(*query.Type)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Type = &taskType
	}
	if query.Status != nil {
		status, err := vo.NewStatus(*query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}
	if query.Priority != nil {
		priority, err := vo.NewPriority(*query.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Priority = &priority
	}

	tasks, total, err := uc.taskRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tasks", "error", err)
		return nil, err
	}

	dtos := make([]TaskDTO, len(tasks))
	for i, t := range tasks {
		dtos[i] = taskToDTO(t)
	}

	return &ListTasksResult{
		Tasks:    dtos,
		Total:    total,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}, nil
}
