package usecases

import (
	"context"
	"time"

	"nexus/internal/domain/sprint"
	"nexus/internal/shared/logger"
)

type ListSprintsQuery struct {
	ProjectID uint
}

type SprintDTO struct {
	ID          uint       `json:"id"`
	ProjectID   uint       `json:"project_id"`
	Name        string     `json:"name"`
	Goal        string     `json:"goal"`
	Status      string     `json:"status"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     time.Time  `json:"end_date"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type ListSprintsResult struct {
	Sprints []SprintDTO
}

type ListSprintsUseCase struct {
	sprintRepo sprint.Repository
	logger     logger.Interface
}

func NewListSprintsUseCase(sprintRepo sprint.Repository, logger logger.Interface) *ListSprintsUseCase {
	return &ListSprintsUseCase{sprintRepo: sprintRepo, logger: logger}
}

func (uc *ListSprintsUseCase) Execute(ctx context.Context, query ListSprintsQuery) (*ListSprintsResult, error) {
	sprints, err := uc.sprintRepo.ListByProject(ctx, query.ProjectID)
	if err != nil {
		uc.logger.Errorw("failed to list sprints", "project_id", query.ProjectID, "error", err)
		return nil, err
	}

	dtos := make([]SprintDTO, len(sprints))
	for i, s := range sprints {
		dtos[i] = SprintDTO{
			ID:          s.ID(),
			ProjectID:   s.ProjectID(),
			Name:        s.Name(),
			Goal:        s.Goal(),
			Status:      s.Status().String(),
			StartDate:   s.StartDate(),
			EndDate:     s.EndDate(),
			CompletedAt: s.CompletedAt(),
			CreatedAt:   s.CreatedAt(),
		}
	}

	return &ListSprintsResult{Sprints: dtos}, nil
}
