package usecases

import (
	"context"

	"nexus/internal/domain/project"
	"nexus/internal/domain/task"
	vo "nexus/internal/domain/task/valueobjects"
	"nexus/internal/domain/user"
	"nexus/internal/infrastructure/github"
	"nexus/internal/shared/errors"
	"nexus/internal/shared/goroutine"
	"nexus/internal/shared/logger"
)

// IssueSyncer is the slice of the GitHub client the sync use cases need.
type IssueSyncer interface {
	CreateIssue(ctx context.Context, token, owner, repo, title, body string, labels []string) (*github.Issue, error)
	GetIssue(ctx context.Context, token, owner, repo string, number int) (*github.Issue, error)
}

type PushTaskToGithubCommand struct {
	TaskID uint
	UserID uint
}

type PushTaskToGithubResult struct {
	TaskID      uint
	IssueNumber int
	SyncStatus  string
}

// PushTaskToGithubUseCase creates a GitHub issue for a task in the project's
// linked repository using the calling user's token.
type PushTaskToGithubUseCase struct {
	taskRepo    task.Repository
	projectRepo project.Repository
	userRepo    user.Repository
	github      IssueSyncer
	logger      logger.Interface
}

func NewPushTaskToGithubUseCase(
	taskRepo task.Repository,
	projectRepo project.Repository,
	userRepo user.Repository,
	githubClient IssueSyncer,
	logger logger.Interface,
) *PushTaskToGithubUseCase {
	return &PushTaskToGithubUseCase{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		userRepo:    userRepo,
		github:      githubClient,
		logger:      logger,
	}
}

func (uc *PushTaskToGithubUseCase) Execute(ctx context.Context, cmd PushTaskToGithubCommand) (*PushTaskToGithubResult, error) {
	uc.logger.Infow("executing push task to github use case", "task_id", cmd.TaskID, "user_id", cmd.UserID)

	t, err := uc.taskRepo.FindByID(ctx, cmd.TaskID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("task not found")
	}
	if t.GithubIssueNumber() != nil {
		return nil, errors.NewConflictError("task is already linked to a github issue")
	}

	proj, err := uc.projectRepo.FindByID(ctx, t.ProjectID())
	if err != nil {
		return nil, err
	}
	if proj == nil {
		return nil, errors.NewNotFoundError("project not found")
	}
	if !proj.HasGithubRepo() {
		return nil, errors.NewValidationError("project has no linked github repository")
	}

	u, err := uc.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}
	if u == nil || u.GithubToken() == "" {
		return nil, errors.NewValidationError("user has no github token configured")
	}

	t.MarkSyncPending()
	if err := uc.taskRepo.Update(ctx, t); err != nil {
		return nil, err
	}

	issue, err := uc.github.CreateIssue(ctx, u.GithubToken(), proj.GithubOwner(), proj.GithubRepo(),
		t.Title(), t.Description(), t.Labels())
	if err != nil {
		uc.logger.Errorw("failed to create github issue", "task_id", t.ID(), "error", err)
		t.MarkSyncFailed()
		if updErr := uc.taskRepo.Update(ctx, t); updErr != nil {
			uc.logger.Errorw("failed to record sync failure", "task_id", t.ID(), "error", updErr)
		}
		return nil, errors.NewExternalError("github issue creation failed")
	}

	t.MarkSynced(issue.Number, issue.ID)
	if err := uc.taskRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to record synced issue", "task_id", t.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("task pushed to github",
		"task_id", t.ID(), "issue_number", issue.Number, "repo", proj.GithubOwner()+"/"+proj.GithubRepo())

	return &PushTaskToGithubResult{
		TaskID:      t.ID(),
		IssueNumber: issue.Number,
		SyncStatus:  t.SyncStatus().String(),
	}, nil
}

type PullGithubStatusCommand struct {
	TaskID uint
	UserID uint
}

type PullGithubStatusResult struct {
	TaskID     uint
	IssueState string
	Status     string
}

// PullGithubStatusUseCase re-reads the linked issue and closes the ticket
// when the issue was closed on the GitHub side.
type PullGithubStatusUseCase struct {
	taskRepo    task.Repository
	projectRepo project.Repository
	userRepo    user.Repository
	github      IssueSyncer
	recalculate RecalculateParentStatusExecutor
	logger      logger.Interface
}

func NewPullGithubStatusUseCase(
	taskRepo task.Repository,
	projectRepo project.Repository,
	userRepo user.Repository,
	githubClient IssueSyncer,
	recalculate RecalculateParentStatusExecutor,
	logger logger.Interface,
) *PullGithubStatusUseCase {
	return &PullGithubStatusUseCase{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		userRepo:    userRepo,
		github:      githubClient,
		recalculate: recalculate,
		logger:      logger,
	}
}

func (uc *PullGithubStatusUseCase) Execute(ctx context.Context, cmd PullGithubStatusCommand) (*PullGithubStatusResult, error) {
	uc.logger.Infow("executing pull github status use case", "task_id", cmd.TaskID)

	t, err := uc.taskRepo.FindByID(ctx, cmd.TaskID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("task not found")
	}
	if t.GithubIssueNumber() == nil {
		return nil, errors.NewValidationError("task is not linked to a github issue")
	}

	proj, err := uc.projectRepo.FindByID(ctx, t.ProjectID())
	if err != nil {
		return nil, err
	}
	if proj == nil || !proj.HasGithubRepo() {
		return nil, errors.NewValidationError("project has no linked github repository")
	}

	u, err := uc.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}
	if u == nil || u.GithubToken() == "" {
		return nil, errors.NewValidationError("user has no github token configured")
	}

	issue, err := uc.github.GetIssue(ctx, u.GithubToken(), proj.GithubOwner(), proj.GithubRepo(), *t.GithubIssueNumber())
	if err != nil {
		uc.logger.Errorw("failed to fetch github issue",
			"task_id", t.ID(), "issue_number", *t.GithubIssueNumber(), "error", err)
		return nil, errors.NewExternalError("github issue fetch failed")
	}

	if issue.State == "closed" && !t.Status().IsDone() {
		if err := t.ChangeStatus(vo.StatusDone); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if err := uc.taskRepo.Update(ctx, t); err != nil {
			return nil, err
		}
		uc.logger.Infow("task closed from github issue state", "task_id", t.ID())

		if parentID := t.ParentTaskID(); parentID != nil {
			id := *parentID
			goroutine.SafeGo(uc.logger, "recalculate-parent-status", func() {
				_, err := uc.recalculate.Execute(context.Background(), RecalculateParentStatusCommand{ParentTaskID: id})
				if err != nil {
					uc.logger.Errorw("parent status recalculation failed", "parent_task_id", id, "error", err)
				}
			})
		}
	}

	return &PullGithubStatusResult{
		TaskID:     t.ID(),
		IssueState: issue.State,
		Status:     t.Status().String(),
	}, nil
}
