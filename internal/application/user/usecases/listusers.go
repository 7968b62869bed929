package usecases

import (
	"context"

	"nexus/internal/domain/user"
	"nexus/internal/shared/authorization"
	"nexus/internal/shared/errors"
	"nexus/internal/shared/logger"
	"nexus/internal/shared/utils"
)

type ListUsersQuery struct {
	Page     int
	PageSize int
}

type ListUsersResult struct {
	Users    []ProfileDTO
	Total    int64
	Page     int
	PageSize int
}

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo, logger: logger}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error) {
	pagination := utils.ValidatePagination(query.Page, query.PageSize)

	users, total, err := uc.userRepo.List(ctx, pagination.Page, pagination.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, err
	}

	dtos := make([]ProfileDTO, len(users))
	for i, u := range users {
		dtos[i] = ProfileDTO{
			ID:             u.ID(),
			Email:          u.Email(),
			Name:           u.Name(),
			Role:           u.Role().String(),
			Designation:    u.Designation(),
			HasGithubToken: u.GithubToken() != "",
			CreatedAt:      u.CreatedAt(),
		}
	}

	return &ListUsersResult{Users: dtos, Total: total, Page: pagination.Page, PageSize: pagination.PageSize}, nil
}

type ChangeRoleCommand struct {
	UserID      uint
	Role        string
	RequestRole string
}

type ChangeRoleUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewChangeRoleUseCase(userRepo user.Repository, logger logger.Interface) *ChangeRoleUseCase {
	return &ChangeRoleUseCase{userRepo: userRepo, logger: logger}
}

func (uc *ChangeRoleUseCase) Execute(ctx context.Context, cmd ChangeRoleCommand) error {
	uc.logger.Infow("executing change role use case", "user_id", cmd.UserID, "role", cmd.Role)

	if !authorization.ParseUserRole(cmd.RequestRole).IsAdmin() {
		return errors.NewForbiddenError("only admins can change user roles")
	}

	u, err := uc.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return err
	}
	if u == nil {
		return errors.NewNotFoundError("user not found")
	}

	role := authorization.UserRole(cmd.Role)
	if err := u.ChangeRole(role); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.logger.Errorw("failed to update user role", "user_id", cmd.UserID, "error", err)
		return err
	}

	uc.logger.Infow("user role changed", "user_id", cmd.UserID, "role", cmd.Role)
	return nil
}
