package usecases

import (
	"context"
	"time"

	"nexus/internal/domain/sprint"
	"nexus/internal/domain/task"
	"nexus/internal/shared/errors"
	"nexus/internal/shared/logger"
)

type GetSprintProgressQuery struct {
	SprintID uint
}

type SprintProgressDTO struct {
	SprintID  uint      `json:"sprint_id"`
	Name      string    `json:"name"`
	Goal      string    `json:"goal"`
	Status    string    `json:"status"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`

	task.SprintProgress
	ProgressLabel string `json:"progress_label"`
	ProgressColor string `json:"progress_color"`
}

// GetSprintProgressUseCase aggregates a sprint's tickets into the progress
// summary shown on the sprint board.
type GetSprintProgressUseCase struct {
	sprintRepo sprint.Repository
	taskRepo   task.Repository
	logger     logger.Interface
}

func NewGetSprintProgressUseCase(
	sprintRepo sprint.Repository,
	taskRepo task.Repository,
	logger logger.Interface,
) *GetSprintProgressUseCase {
	return &GetSprintProgressUseCase{
		sprintRepo: sprintRepo,
		taskRepo:   taskRepo,
		logger:     logger,
	}
}

func (uc *GetSprintProgressUseCase) Execute(ctx context.Context, query GetSprintProgressQuery) (*SprintProgressDTO, error) {
	s, err := uc.sprintRepo.FindByID(ctx, query.SprintID)
	if err != nil {
		uc.logger.Errorw("failed to load sprint", "sprint_id", query.SprintID, "error", err)
		return nil, err
	}
	if s == nil {
		return nil, errors.NewNotFoundError("sprint not found")
	}

	tasks, err := uc.taskRepo.ListBySprint(ctx, s.ID())
	if err != nil {
		uc.logger.Errorw("failed to list sprint tasks", "sprint_id", s.ID(), "error", err)
		return nil, err
	}

	progress := task.CalculateSprintProgress(tasks)

	return &SprintProgressDTO{
		SprintID:       s.ID(),
		Name:           s.Name(),
		Goal:           s.Goal(),
		Status:         s.Status().String(),
		StartDate:      s.StartDate(),
		EndDate:        s.EndDate(),
		SprintProgress: progress,
		ProgressLabel:  task.ProgressLabel(progress.OverallProgress),
		ProgressColor:  task.ProgressColor(progress.OverallProgress),
	}, nil
}
