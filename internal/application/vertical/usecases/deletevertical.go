package usecases

import (
	"context"

	"nexus/internal/domain/vertical"
	"nexus/internal/shared/errors"
	"nexus/internal/shared/logger"
)

type DeleteVerticalCommand struct {
	VerticalID uint
}

type DeleteVerticalResult struct {
	VerticalID uint
}

// DeleteVerticalUseCase removes a vertical. Deletion is blocked while the
// vertical still owns projects.
type DeleteVerticalUseCase struct {
	verticalRepo vertical.Repository
	logger       logger.Interface
}

func NewDeleteVerticalUseCase(verticalRepo vertical.Repository, logger logger.Interface) *DeleteVerticalUseCase {
	return &DeleteVerticalUseCase{verticalRepo: verticalRepo, logger: logger}
}

func (uc *DeleteVerticalUseCase) Execute(ctx context.Context, cmd DeleteVerticalCommand) (*DeleteVerticalResult, error) {
	uc.logger.Infow("executing delete vertical use case", "vertical_id", cmd.VerticalID)

	v, err := uc.verticalRepo.FindByID(ctx, cmd.VerticalID)
	if err != nil {
		uc.logger.Errorw("failed to load vertical", "vertical_id", cmd.VerticalID, "error", err)
		return nil, err
	}
	if v == nil {
		return nil, errors.NewNotFoundError("vertical not found")
	}

	count, err := uc.verticalRepo.CountProjects(ctx, v.ID())
	if err != nil {
		uc.logger.Errorw("failed to count vertical projects", "vertical_id", v.ID(), "error", err)
		return nil, err
	}
	if count > 0 {
		return nil, errors.NewConflictError("vertical still contains projects")
	}

	if err := uc.verticalRepo.Delete(ctx, v.ID()); err != nil {
		uc.logger.Errorw("failed to delete vertical", "vertical_id", v.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("vertical deleted", "vertical_id", v.ID())

	return &DeleteVerticalResult{VerticalID: v.ID()}, nil
}
