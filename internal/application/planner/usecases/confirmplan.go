package usecases

import (
	"context"
	stderrors "errors"
	"time"

	"nexus/internal/domain/planner"
	"nexus/internal/domain/sprint"
	"nexus/internal/domain/task"
	vo "nexus/internal/domain/task/valueobjects"
	"nexus/internal/infrastructure/cache"
	"nexus/internal/shared/authorization"
	"nexus/internal/shared/errors"
	"nexus/internal/shared/logger"
)

// Transactor runs a function inside a database transaction.
// Satisfied by shared/db.TransactionManager.
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type ConfirmPlanCommand struct {
	// PlanID loads a staged draft; Plan carries a client-edited plan
	// wholesale. Exactly one of the two is expected.
	PlanID   string
	Plan     *planner.Plan
	UserID   uint
	UserRole string
}

type ConfirmPlanResult struct {
	SprintID     uint   `json:"sprint_id"`
	SprintName   string `json:"sprint_name"`
	TasksCreated int    `json:"tasks_created"`
}

type ConfirmPlanUseCase struct {
	sprintRepo sprint.Repository
	taskRepo   task.Repository
	planStore  PlanStore
	txManager  Transactor
	logger     logger.Interface
}

func NewConfirmPlanUseCase(
	sprintRepo sprint.Repository,
	taskRepo task.Repository,
	planStore PlanStore,
	txManager Transactor,
	logger logger.Interface,
) *ConfirmPlanUseCase {
	return &ConfirmPlanUseCase{
		sprintRepo: sprintRepo,
		taskRepo:   taskRepo,
		planStore:  planStore,
		txManager:  txManager,
		logger:     logger,
	}
}

func (uc *ConfirmPlanUseCase) Execute(ctx context.Context, cmd ConfirmPlanCommand) (*ConfirmPlanResult, error) {
	uc.logger.Infow("executing confirm plan use case", "plan_id", cmd.PlanID)

	if !authorization.ParseUserRole(cmd.UserRole).IsAdmin() {
		return nil, errors.NewForbiddenError("only admins can confirm sprint plans")
	}

	plan, err := uc.resolvePlan(ctx, cmd)
	if err != nil {
		return nil, err
	}

	// The plan may have been edited client-side since generation.
	if err := plan.Validate(); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if plan.ProjectID == 0 {
		return nil, errors.NewValidationError("plan has no project")
	}

	now := time.Now()
	s, err := sprint.NewSprint(
		plan.ProjectID,
		plan.SprintName,
		"",
		now,
		now.AddDate(0, 0, plan.DurationDays),
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var created int
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.sprintRepo.Save(txCtx, s); err != nil {
			return err
		}
		sprintID := s.ID()

		for _, story := range plan.Stories {
			storyTask, err := uc.buildTask(story.Title, story.Description, vo.TypeStory, story.Priority, story.Labels, plan.ProjectID, cmd.UserID)
			if err != nil {
				return err
			}
			if err := storyTask.SetStoryPoints(story.StoryPoints); err != nil {
				return errors.NewValidationError(err.Error())
			}
			storyTask.SetRequiredRole(story.Role.String())
			storyTask.MoveToSprint(&sprintID)

			if err := uc.taskRepo.Save(txCtx, storyTask); err != nil {
				return err
			}
			created++

			for _, pt := range story.Tasks {
				childTask, err := uc.buildTask(pt.Title, pt.Description, vo.TypeTask, pt.Priority, pt.Labels, plan.ProjectID, cmd.UserID)
				if err != nil {
					return err
				}
				if err := childTask.SetParent(storyTask.ID()); err != nil {
					return errors.NewValidationError(err.Error())
				}
				childTask.SetRequiredRole(pt.Role.String())
				childTask.MoveToSprint(&sprintID)
				if pt.AssigneeID != nil {
					if err := childTask.AssignTo(*pt.AssigneeID); err != nil {
						return errors.NewValidationError(err.Error())
					}
				}

				if err := uc.taskRepo.Save(txCtx, childTask); err != nil {
					return err
				}
				created++
			}
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to confirm plan", "plan_id", cmd.PlanID, "error", err)
		return nil, err
	}

	// Drop the draft only once the sprint is committed; a leftover draft
	// expires via TTL anyway.
	if cmd.PlanID != "" {
		if err := uc.planStore.Discard(ctx, cmd.PlanID); err != nil {
			uc.logger.Warnw("failed to discard confirmed plan draft", "plan_id", cmd.PlanID, "error", err)
		}
	}

	uc.logger.Infow("plan confirmed",
		"plan_id", cmd.PlanID,
		"sprint_id", s.ID(),
		"tasks_created", created)

	return &ConfirmPlanResult{
		SprintID:     s.ID(),
		SprintName:   s.Name(),
		TasksCreated: created,
	}, nil
}

// resolvePlan loads a staged draft when a plan ID is given. The draft stays
// in the store until the confirm transaction commits, so a failed confirm can
// be retried without regenerating. A wholesale plan bypasses the store.
func (uc *ConfirmPlanUseCase) resolvePlan(ctx context.Context, cmd ConfirmPlanCommand) (*planner.Plan, error) {
	if cmd.PlanID != "" {
		plan, err := uc.planStore.Get(ctx, cmd.PlanID)
		if err != nil {
			if stderrors.Is(err, cache.ErrPlanNotFound) {
				return nil, errors.NewNotFoundError("plan not found or expired")
			}
			return nil, err
		}
		return plan, nil
	}
	if cmd.Plan == nil {
		return nil, errors.NewValidationError("plan ID or plan body is required")
	}
	return cmd.Plan, nil
}

func (uc *ConfirmPlanUseCase) buildTask(title, description string, taskType vo.TaskType, priority string, labels []string, projectID, creatorID uint) (*task.Task, error) {
	p, err := vo.NewPriority(priority)
	if err != nil {
		p = vo.PriorityMedium
	}
	t, err := task.NewTask(projectID, title, description, taskType, p, creatorID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if len(labels) > 0 {
		t.SetLabels(labels)
	}
	return t, nil
}
