package usecases

import (
	"context"

	"nexus/internal/domain/project"
	"nexus/internal/domain/user"
	"nexus/internal/shared/errors"
	"nexus/internal/shared/logger"
)

type AddMemberCommand struct {
	ProjectID uint
	UserID    uint
}

type AddMemberResult struct {
	ProjectID uint
	UserID    uint
}

type AddMemberUseCase struct {
	projectRepo project.Repository
	userRepo    user.Repository
	logger      logger.Interface
}

func NewAddMemberUseCase(
	projectRepo project.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *AddMemberUseCase {
	return &AddMemberUseCase{
		projectRepo: projectRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

func (uc *AddMemberUseCase) Execute(ctx context.Context, cmd AddMemberCommand) (*AddMemberResult, error) {
	uc.logger.Infow("executing add project member use case", "project_id", cmd.ProjectID, "user_id", cmd.UserID)

	p, err := uc.projectRepo.FindByID(ctx, cmd.ProjectID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errors.NewNotFoundError("project not found")
	}

	u, err := uc.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	if err := uc.projectRepo.AddMember(ctx, cmd.ProjectID, cmd.UserID); err != nil {
		uc.logger.Errorw("failed to add project member", "project_id", cmd.ProjectID, "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	uc.logger.Infow("project member added", "project_id", cmd.ProjectID, "user_id", cmd.UserID)

	return &AddMemberResult{ProjectID: cmd.ProjectID, UserID: cmd.UserID}, nil
}

type RemoveMemberCommand struct {
	ProjectID uint
	UserID    uint
}

type RemoveMemberResult struct {
	ProjectID uint
	UserID    uint
}

type RemoveMemberUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

func NewRemoveMemberUseCase(projectRepo project.Repository, logger logger.Interface) *RemoveMemberUseCase {
	return &RemoveMemberUseCase{projectRepo: projectRepo, logger: logger}
}

func (uc *RemoveMemberUseCase) Execute(ctx context.Context, cmd RemoveMemberCommand) (*RemoveMemberResult, error) {
	uc.logger.Infow("executing remove project member use case", "project_id", cmd.ProjectID, "user_id", cmd.UserID)

	if err := uc.projectRepo.RemoveMember(ctx, cmd.ProjectID, cmd.UserID); err != nil {
		uc.logger.Errorw("failed to remove project member", "project_id", cmd.ProjectID, "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	uc.logger.Infow("project member removed", "project_id", cmd.ProjectID, "user_id", cmd.UserID)

	return &RemoveMemberResult{ProjectID: cmd.ProjectID, UserID: cmd.UserID}, nil
}

type ListMembersQuery struct {
	ProjectID uint
}

type MemberDTO struct {
	UserID      uint   `json:"user_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Designation string `json:"designation"`
}

type ListMembersResult struct {
	Members []MemberDTO
}

type ListMembersUseCase struct {
	projectRepo project.Repository
	userRepo    user.Repository
	logger      logger.Interface
}

func NewListMembersUseCase(
	projectRepo project.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *ListMembersUseCase {
	return &ListMembersUseCase{
		projectRepo: projectRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

func (uc *ListMembersUseCase) Execute(ctx context.Context, query ListMembersQuery) (*ListMembersResult, error) {
	memberIDs, err := uc.projectRepo.ListMemberIDs(ctx, query.ProjectID)
	if err != nil {
		uc.logger.Errorw("failed to list member ids", "project_id", query.ProjectID, "error", err)
		return nil, err
	}

	users, err := uc.userRepo.FindByIDs(ctx, memberIDs)
	if err != nil {
		uc.logger.Errorw("failed to load members", "project_id", query.ProjectID, "error", err)
		return nil, err
	}

	members := make([]MemberDTO, len(users))
	for i, u := range users {
		members[i] = MemberDTO{
			UserID:      u.ID(),
			Name:        u.Name(),
			Email:       u.Email(),
			Designation: u.Designation(),
		}
	}

	return &ListMembersResult{Members: members}, nil
}
