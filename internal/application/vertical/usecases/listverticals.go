package usecases

import (
	"context"
	"time"

	"nexus/internal/domain/vertical"
	"nexus/internal/shared/logger"
)

type VerticalDTO struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ListVerticalsResult struct {
	Verticals []VerticalDTO
}

type ListVerticalsUseCase struct {
	verticalRepo vertical.Repository
	logger       logger.Interface
}

func NewListVerticalsUseCase(verticalRepo vertical.Repository, logger logger.Interface) *ListVerticalsUseCase {
	return &ListVerticalsUseCase{verticalRepo: verticalRepo, logger: logger}
}

func (uc *ListVerticalsUseCase) Execute(ctx context.Context) (*ListVerticalsResult, error) {
	verticals, err := uc.verticalRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list verticals", "error", err)
		return nil, err
	}

	dtos := make([]VerticalDTO, len(verticals))
	for i, v := range verticals {
		dtos[i] = VerticalDTO{
			ID:          v.ID(),
			Name:        v.Name(),
			Description: v.Description(),
			CreatedAt:   v.CreatedAt(),
			UpdatedAt:   v.UpdatedAt(),
		}
	}

	return &ListVerticalsResult{Verticals: dtos}, nil
}
