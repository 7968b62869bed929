package usecases

import (
	"context"
	"fmt"

	"nexus/internal/domain/planner"
	"nexus/internal/domain/project"
	"nexus/internal/domain/user"
	"nexus/internal/shared/authorization"
	"nexus/internal/shared/errors"
	"nexus/internal/shared/logger"
)

// PlanGenerator produces a draft sprint plan from a project goal.
// Satisfied by infrastructure/ai.Client.
type PlanGenerator interface {
	GeneratePlan(ctx context.Context, projectName, goal string, memberDesignations []string) (*planner.Plan, error)
}

// PlanStore stages draft plans between the generate and confirm phases.
// Satisfied by infrastructure/cache.RedisPlanStore.
type PlanStore interface {
	Put(ctx context.Context, plan *planner.Plan) (string, error)
	Get(ctx context.Context, planID string) (*planner.Plan, error)
	Discard(ctx context.Context, planID string) error
}

type GeneratePlanCommand struct {
	ProjectID uint
	Goal      string
	UserRole  string
}

// GeneratePlanResult reports either a staged draft plan or a generation
// failure. Model failures are part of the result, not an error: the flow
// continues and the client decides whether to retry.
type GeneratePlanResult struct {
	Success bool          `json:"success"`
	PlanID  string        `json:"plan_id,omitempty"`
	Plan    *planner.Plan `json:"plan,omitempty"`
	Error   string        `json:"error,omitempty"`
}

type GeneratePlanUseCase struct {
	projectRepo project.Repository
	userRepo    user.Repository
	generator   PlanGenerator
	planStore   PlanStore
	logger      logger.Interface
}

func NewGeneratePlanUseCase(
	projectRepo project.Repository,
	userRepo user.Repository,
	generator PlanGenerator,
	planStore PlanStore,
	logger logger.Interface,
) *GeneratePlanUseCase {
	return &GeneratePlanUseCase{
		projectRepo: projectRepo,
		userRepo:    userRepo,
		generator:   generator,
		planStore:   planStore,
		logger:      logger,
	}
}

func (uc *GeneratePlanUseCase) Execute(ctx context.Context, cmd GeneratePlanCommand) (*GeneratePlanResult, error) {
	uc.logger.Infow("executing generate plan use case", "project_id", cmd.ProjectID)

	if !authorization.ParseUserRole(cmd.UserRole).IsAdmin() {
		return nil, errors.NewForbiddenError("only admins can generate sprint plans")
	}
	if cmd.Goal == "" {
		return nil, errors.NewValidationError("sprint goal is required")
	}

	p, err := uc.projectRepo.FindByID(ctx, cmd.ProjectID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errors.NewNotFoundError("project not found")
	}

	members, err := uc.loadMembers(ctx, cmd.ProjectID)
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, errors.NewValidationError("project has no members to plan for")
	}

	designations := make([]string, 0, len(members))
	for _, m := range members {
		if m.Designation == "" {
			continue
		}
		designations = append(designations, fmt.Sprintf("%s: %s", m.Name, m.Designation))
	}

	plan, err := uc.generator.GeneratePlan(ctx, p.Name(), cmd.Goal, designations)
	if err != nil {
		uc.logger.Errorw("plan generation failed", "project_id", cmd.ProjectID, "error", err)
		return &GeneratePlanResult{Success: false, Error: err.Error()}, nil
	}
	plan.ProjectID = cmd.ProjectID

	for si := range plan.Stories {
		for ti := range plan.Stories[si].Tasks {
			t := &plan.Stories[si].Tasks[ti]
			t.SuggestedAssignees = planner.MatchRoleToMembers(t.Role, members)
		}
	}

	planID, err := uc.planStore.Put(ctx, plan)
	if err != nil {
		uc.logger.Errorw("failed to stage plan", "project_id", cmd.ProjectID, "error", err)
		return nil, errors.NewInternalError("failed to stage generated plan", err.Error())
	}

	uc.logger.Infow("plan generated and staged",
		"project_id", cmd.ProjectID,
		"plan_id", planID,
		"stories", len(plan.Stories),
		"total_tasks", plan.TotalTasks())

	return &GeneratePlanResult{Success: true, PlanID: planID, Plan: plan}, nil
}

func (uc *GeneratePlanUseCase) loadMembers(ctx context.Context, projectID uint) ([]planner.Member, error) {
	memberIDs, err := uc.projectRepo.ListMemberIDs(ctx, projectID)
	if err != nil {
		return nil, err
	}
	users, err := uc.userRepo.FindByIDs(ctx, memberIDs)
	if err != nil {
		return nil, err
	}

	members := make([]planner.Member, len(users))
	for i, u := range users {
		members[i] = planner.Member{
			UserID:      u.ID(),
			Name:        u.Name(),
			Designation: u.Designation(),
		}
	}
	return members, nil
}
