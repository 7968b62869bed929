package usecases

import (
	"context"

	"nexus/internal/domain/vertical"
	"nexus/internal/shared/errors"
	"nexus/internal/shared/logger"
)

type UpdateVerticalCommand struct {
	VerticalID  uint
	Name        string
	Description string
}

type UpdateVerticalResult struct {
	VerticalID uint
}

type UpdateVerticalUseCase struct {
	verticalRepo vertical.Repository
	logger       logger.Interface
}

func NewUpdateVerticalUseCase(verticalRepo vertical.Repository, logger logger.Interface) *UpdateVerticalUseCase {
	return &UpdateVerticalUseCase{verticalRepo: verticalRepo, logger: logger}
}

func (uc *UpdateVerticalUseCase) Execute(ctx context.Context, cmd UpdateVerticalCommand) (*UpdateVerticalResult, error) {
	uc.logger.Infow("executing update vertical use case", "vertical_id", cmd.VerticalID)

	v, err := uc.verticalRepo.FindByID(ctx, cmd.VerticalID)
	if err != nil {
		uc.logger.Errorw("failed to load vertical", "vertical_id", cmd.VerticalID, "error", err)
		return nil, err
	}
	if v == nil {
		return nil, errors.NewNotFoundError("vertical not found")
	}

	if err := v.Rename(cmd.Name, cmd.Description); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.verticalRepo.Update(ctx, v); err != nil {
		uc.logger.Errorw("failed to update vertical", "vertical_id", v.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("vertical updated", "vertical_id", v.ID())

	return &UpdateVerticalResult{VerticalID: v.ID()}, nil
}
