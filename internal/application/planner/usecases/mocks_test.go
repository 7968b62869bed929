package usecases

import (
	"context"
	"time"

	"nexus/internal/domain/planner"
	"nexus/internal/domain/project"
	"nexus/internal/domain/sprint"
	"nexus/internal/domain/task"
	"nexus/internal/domain/user"
	"nexus/internal/shared/authorization"
	"nexus/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLogger()
}

type mockPlanGenerator struct {
	GeneratePlanFunc func(ctx context.Context, projectName, goal string, memberDesignations []string) (*planner.Plan, error)
}

func (m *mockPlanGenerator) GeneratePlan(ctx context.Context, projectName, goal string, memberDesignations []string) (*planner.Plan, error) {
	if m.GeneratePlanFunc != nil {
		return m.GeneratePlanFunc(ctx, projectName, goal, memberDesignations)
	}
	return nil, nil
}

type mockPlanStore struct {
	PutFunc     func(ctx context.Context, plan *planner.Plan) (string, error)
	GetFunc     func(ctx context.Context, planID string) (*planner.Plan, error)
	DiscardFunc func(ctx context.Context, planID string) error
}

func (m *mockPlanStore) Put(ctx context.Context, plan *planner.Plan) (string, error) {
	if m.PutFunc != nil {
		return m.PutFunc(ctx, plan)
	}
	return "plan-1", nil
}

func (m *mockPlanStore) Get(ctx context.Context, planID string) (*planner.Plan, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, planID)
	}
	return nil, nil
}

func (m *mockPlanStore) Discard(ctx context.Context, planID string) error {
	if m.DiscardFunc != nil {
		return m.DiscardFunc(ctx, planID)
	}
	return nil
}

type mockProjectRepository struct {
	FindByIDFunc      func(ctx context.Context, id uint) (*project.Project, error)
	ListMemberIDsFunc func(ctx context.Context, projectID uint) ([]uint, error)
}

func (m *mockProjectRepository) Save(ctx context.Context, p *project.Project) error   { return nil }
func (m *mockProjectRepository) Update(ctx context.Context, p *project.Project) error { return nil }
func (m *mockProjectRepository) Delete(ctx context.Context, id uint) error            { return nil }

func (m *mockProjectRepository) FindByID(ctx context.Context, id uint) (*project.Project, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockProjectRepository) ListByVertical(ctx context.Context, verticalID uint) ([]*project.Project, error) {
	return nil, nil
}

func (m *mockProjectRepository) AddMember(ctx context.Context, projectID, userID uint) error {
	return nil
}

func (m *mockProjectRepository) RemoveMember(ctx context.Context, projectID, userID uint) error {
	return nil
}

func (m *mockProjectRepository) ListMemberIDs(ctx context.Context, projectID uint) ([]uint, error) {
	if m.ListMemberIDsFunc != nil {
		return m.ListMemberIDsFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *mockProjectRepository) IsMember(ctx context.Context, projectID, userID uint) (bool, error) {
	return false, nil
}

type mockUserRepository struct {
	FindByIDsFunc func(ctx context.Context, ids []uint) ([]*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error   { return nil }
func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error { return nil }

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) FindByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context, page, pageSize int) ([]*user.User, int64, error) {
	return nil, 0, nil
}

type mockSprintRepository struct {
	SaveFunc func(ctx context.Context, s *sprint.Sprint) error
}

func (m *mockSprintRepository) Save(ctx context.Context, s *sprint.Sprint) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, s)
	}
	return s.SetID(100)
}

func (m *mockSprintRepository) Update(ctx context.Context, s *sprint.Sprint) error { return nil }
func (m *mockSprintRepository) Delete(ctx context.Context, id uint) error          { return nil }

func (m *mockSprintRepository) FindByID(ctx context.Context, id uint) (*sprint.Sprint, error) {
	return nil, nil
}

func (m *mockSprintRepository) ListByProject(ctx context.Context, projectID uint) ([]*sprint.Sprint, error) {
	return nil, nil
}

func (m *mockSprintRepository) FindActiveByProject(ctx context.Context, projectID uint) (*sprint.Sprint, error) {
	return nil, nil
}

type mockTaskRepository struct {
	SaveFunc func(ctx context.Context, t *task.Task) error
}

func (m *mockTaskRepository) Save(ctx context.Context, t *task.Task) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTaskRepository) Update(ctx context.Context, t *task.Task) error { return nil }
func (m *mockTaskRepository) Delete(ctx context.Context, taskID uint) error  { return nil }

func (m *mockTaskRepository) FindByID(ctx context.Context, taskID uint) (*task.Task, error) {
	return nil, nil
}

func (m *mockTaskRepository) FindChildren(ctx context.Context, parentTaskID uint) ([]*task.Task, error) {
	return nil, nil
}

func (m *mockTaskRepository) List(ctx context.Context, filter task.Filter) ([]*task.Task, int64, error) {
	return nil, 0, nil
}

func (m *mockTaskRepository) ListBySprint(ctx context.Context, sprintID uint) ([]*task.Task, error) {
	return nil, nil
}

type passthroughTransactor struct{}

func (passthroughTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func makeMember(id uint, name, designation string) *user.User {
	now := time.Now()
	u, err := user.ReconstructUser(id, name+"@example.com", name, "hash", authorization.RoleMember, designation, "", now, now)
	if err != nil {
		panic(err)
	}
	return u
}

func validPlan(projectID uint) *planner.Plan {
	return &planner.Plan{
		ProjectID:    projectID,
		SprintName:   "Sprint 7",
		DurationDays: 14,
		Stories: []planner.PlanStory{
			{
				Title:       "Checkout flow",
				StoryPoints: 8,
				Role:        planner.RoleBackend,
				Priority:    "high",
				Tasks: []planner.PlanTask{
					{Title: "Payment API endpoint", Role: planner.RoleBackend, Priority: "high"},
					{Title: "Checkout page", Role: planner.RoleUI, Priority: "medium"},
				},
			},
			{
				Title:       "Order history",
				StoryPoints: 5,
				Role:        planner.RoleFullStack,
				Priority:    "medium",
				Tasks: []planner.PlanTask{
					{Title: "History query", Role: planner.RoleBackend, Priority: "medium"},
				},
			},
		},
	}
}
