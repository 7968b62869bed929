package usecases

import (
	"context"
	"time"

	"nexus/internal/domain/vertical"
	"nexus/internal/shared/errors"
	"nexus/internal/shared/logger"
)

type CreateVerticalCommand struct {
	Name        string
	Description string
}

type CreateVerticalResult struct {
	VerticalID uint
	CreatedAt  time.Time
}

type CreateVerticalUseCase struct {
	verticalRepo vertical.Repository
	logger       logger.Interface
}

func NewCreateVerticalUseCase(verticalRepo vertical.Repository, logger logger.Interface) *CreateVerticalUseCase {
	return &CreateVerticalUseCase{verticalRepo: verticalRepo, logger: logger}
}

func (uc *CreateVerticalUseCase) Execute(ctx context.Context, cmd CreateVerticalCommand) (*CreateVerticalResult, error) {
	uc.logger.Infow("executing create vertical use case", "name", cmd.Name)

	v, err := vertical.NewVertical(cmd.Name, cmd.Description)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.verticalRepo.Save(ctx, v); err != nil {
		uc.logger.Errorw("failed to save vertical", "name", cmd.Name, "error", err)
		return nil, err
	}

	uc.logger.Infow("vertical created", "vertical_id", v.ID(), "name", v.Name())

	return &CreateVerticalResult{VerticalID: v.ID(), CreatedAt: v.CreatedAt()}, nil
}
