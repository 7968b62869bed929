package usecases

import (
	"context"

	"nexus/internal/domain/project"
	"nexus/internal/shared/errors"
	"nexus/internal/shared/logger"
)

type LinkGithubRepoCommand struct {
	ProjectID uint
	Owner     string
	Repo      string
	Unlink    bool
}

type LinkGithubRepoResult struct {
	ProjectID uint
	Owner     string
	Repo      string
}

type LinkGithubRepoUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

func NewLinkGithubRepoUseCase(projectRepo project.Repository, logger logger.Interface) *LinkGithubRepoUseCase {
	return &LinkGithubRepoUseCase{projectRepo: projectRepo, logger: logger}
}

func (uc *LinkGithubRepoUseCase) Execute(ctx context.Context, cmd LinkGithubRepoCommand) (*LinkGithubRepoResult, error) {
	uc.logger.Infow("executing link github repo use case",
		"project_id", cmd.ProjectID, "owner", cmd.Owner, "repo", cmd.Repo, "unlink", cmd.Unlink)

	p, err := uc.projectRepo.FindByID(ctx, cmd.ProjectID)
	if err != nil {
		uc.logger.Errorw("failed to load project", "project_id", cmd.ProjectID, "error", err)
		return nil, err
	}
	if p == nil {
		return nil, errors.NewNotFoundError("project not found")
	}

	if cmd.Unlink {
		p.UnlinkGithubRepo()
	} else {
		if err := p.LinkGithubRepo(cmd.Owner, cmd.Repo); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.projectRepo.Update(ctx, p); err != nil {
		uc.logger.Errorw("failed to update project", "project_id", p.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("project github link updated", "project_id", p.ID())

	return &LinkGithubRepoResult{ProjectID: p.ID(), Owner: p.GithubOwner(), Repo: p.GithubRepo()}, nil
}
