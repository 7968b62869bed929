package usecases

import (
	"context"
	"time"

	"nexus/internal/domain/user"
	"nexus/internal/shared/errors"
	"nexus/internal/shared/logger"
)

type GetProfileQuery struct {
	UserID uint
}

type ProfileDTO struct {
	ID             uint      `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	Role           string    `json:"role"`
	Designation    string    `json:"designation"`
	HasGithubToken bool      `json:"has_github_token"`
	CreatedAt      time.Time `json:"created_at"`
}

type GetProfileUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetProfileUseCase(userRepo user.Repository, logger logger.Interface) *GetProfileUseCase {
	return &GetProfileUseCase{userRepo: userRepo, logger: logger}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, query GetProfileQuery) (*ProfileDTO, error) {
	u, err := uc.userRepo.FindByID(ctx, query.UserID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	return &ProfileDTO{
		ID:             u.ID(),
		Email:          u.Email(),
		Name:           u.Name(),
		Role:           u.Role().String(),
		Designation:    u.Designation(),
		HasGithubToken: u.GithubToken() != "",
		CreatedAt:      u.CreatedAt(),
	}, nil
}

type UpdateProfileCommand struct {
	UserID uint
	// Nil means leave unchanged; empty string clears.
	Designation *string
	GithubToken *string
}

type UpdateProfileUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewUpdateProfileUseCase(userRepo user.Repository, logger logger.Interface) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{userRepo: userRepo, logger: logger}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (*ProfileDTO, error) {
	uc.logger.Infow("executing update profile use case", "user_id", cmd.UserID)

	u, err := uc.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	if cmd.Designation != nil {
		u.SetDesignation(*cmd.Designation)
	}
	if cmd.GithubToken != nil {
		u.SetGithubToken(*cmd.GithubToken)
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update user", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	return &ProfileDTO{
		ID:             u.ID(),
		Email:          u.Email(),
		Name:           u.Name(),
		Role:           u.Role().String(),
		Designation:    u.Designation(),
		HasGithubToken: u.GithubToken() != "",
		CreatedAt:      u.CreatedAt(),
	}, nil
}
