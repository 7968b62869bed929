package usecases

import (
	"context"
	"time"

	"nexus/internal/domain/sprint"
	"nexus/internal/shared/errors"
	"nexus/internal/shared/logger"
)

type CompleteSprintCommand struct {
	SprintID uint
}

type CompleteSprintResult struct {
	SprintID    uint
	Status      string
	CompletedAt time.Time
}

type CompleteSprintUseCase struct {
	sprintRepo sprint.Repository
	logger     logger.Interface
}

func NewCompleteSprintUseCase(sprintRepo sprint.Repository, logger logger.Interface) *CompleteSprintUseCase {
	return &CompleteSprintUseCase{sprintRepo: sprintRepo, logger: logger}
}

func (uc *CompleteSprintUseCase) Execute(ctx context.Context, cmd CompleteSprintCommand) (*CompleteSprintResult, error) {
	uc.logger.Infow("executing complete sprint use case", "sprint_id", cmd.SprintID)

	s, err := uc.sprintRepo.FindByID(ctx, cmd.SprintID)
	if err != nil {
		uc.logger.Errorw("failed to load sprint", "sprint_id", cmd.SprintID, "error", err)
		return nil, err
	}
	if s == nil {
		return nil, errors.NewNotFoundError("sprint not found")
	}

	if err := s.Complete(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.sprintRepo.Update(ctx, s); err != nil {
		uc.logger.Errorw("failed to update sprint", "sprint_id", s.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("sprint completed", "sprint_id", s.ID())

	return &CompleteSprintResult{
		SprintID:    s.ID(),
		Status:      s.Status().String(),
		CompletedAt: *s.CompletedAt(),
	}, nil
}
