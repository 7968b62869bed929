package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexus/internal/domain/planner"
	"nexus/internal/domain/project"
	"nexus/internal/domain/user"
)

func testProject(id uint) *project.Project {
	now := time.Now()
	p, err := project.ReconstructProject(id, 1, "Storefront", "", "", "", now, now)
	if err != nil {
		panic(err)
	}
	return p
}

func TestGeneratePlanUseCase_Execute_Success(t *testing.T) {
	projectRepo := &mockProjectRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*project.Project, error) {
			return testProject(id), nil
		},
		ListMemberIDsFunc: func(ctx context.Context, projectID uint) ([]uint, error) {
			return []uint{1, 2}, nil
		},
	}
	userRepo := &mockUserRepository{
		FindByIDsFunc: func(ctx context.Context, ids []uint) ([]*user.User, error) {
			return []*user.User{
				makeMember(1, "Alice", "Senior Backend Engineer"),
				makeMember(2, "Bob", "Frontend Developer"),
			}, nil
		},
	}

	var seenDesignations []string
	generator := &mockPlanGenerator{
		GeneratePlanFunc: func(ctx context.Context, projectName, goal string, memberDesignations []string) (*planner.Plan, error) {
			seenDesignations = memberDesignations
			return validPlan(0), nil
		},
	}

	var staged *planner.Plan
	store := &mockPlanStore{
		PutFunc: func(ctx context.Context, plan *planner.Plan) (string, error) {
			staged = plan
			return "abc123", nil
		},
	}

	uc := NewGeneratePlanUseCase(projectRepo, userRepo, generator, store, testLogger())

	result, err := uc.Execute(context.Background(), GeneratePlanCommand{
		ProjectID: 7,
		Goal:      "Ship the checkout flow",
		UserRole:  "admin",
	})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "abc123", result.PlanID)
	assert.Len(t, seenDesignations, 2)
	assert.Contains(t, seenDesignations[0], "Alice")

	require.NotNil(t, staged)
	assert.Equal(t, uint(7), staged.ProjectID)

	// Backend tasks should suggest Alice with high confidence.
	backendTask := staged.Stories[0].Tasks[0]
	require.NotEmpty(t, backendTask.SuggestedAssignees)
	assert.Equal(t, uint(1), backendTask.SuggestedAssignees[0].UserID)
	assert.Equal(t, planner.ConfidenceHigh, backendTask.SuggestedAssignees[0].Confidence)
}

func TestGeneratePlanUseCase_Execute_ModelFailureIsTypedResult(t *testing.T) {
	projectRepo := &mockProjectRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*project.Project, error) {
			return testProject(id), nil
		},
		ListMemberIDsFunc: func(ctx context.Context, projectID uint) ([]uint, error) {
			return []uint{1}, nil
		},
	}
	userRepo := &mockUserRepository{
		FindByIDsFunc: func(ctx context.Context, ids []uint) ([]*user.User, error) {
			return []*user.User{makeMember(1, "Alice", "Backend Engineer")}, nil
		},
	}
	generator := &mockPlanGenerator{
		GeneratePlanFunc: func(ctx context.Context, projectName, goal string, memberDesignations []string) (*planner.Plan, error) {
			return nil, fmt.Errorf("plan generation failed after retry: model returned no choices")
		},
	}
	putCalls := 0
	store := &mockPlanStore{
		PutFunc: func(ctx context.Context, plan *planner.Plan) (string, error) {
			putCalls++
			return "", nil
		},
	}

	uc := NewGeneratePlanUseCase(projectRepo, userRepo, generator, store, testLogger())

	result, err := uc.Execute(context.Background(), GeneratePlanCommand{
		ProjectID: 7,
		Goal:      "Ship the checkout flow",
		UserRole:  "admin",
	})

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "failed after retry")
	assert.Empty(t, result.PlanID)
	assert.Equal(t, 0, putCalls)
}

func TestGeneratePlanUseCase_Execute_NonAdminForbidden(t *testing.T) {
	uc := NewGeneratePlanUseCase(&mockProjectRepository{}, &mockUserRepository{}, &mockPlanGenerator{}, &mockPlanStore{}, testLogger())

	_, err := uc.Execute(context.Background(), GeneratePlanCommand{
		ProjectID: 7,
		Goal:      "Ship the checkout flow",
		UserRole:  "member",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "only admins")
}

func TestGeneratePlanUseCase_Execute_NoMembers(t *testing.T) {
	projectRepo := &mockProjectRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*project.Project, error) {
			return testProject(id), nil
		},
		ListMemberIDsFunc: func(ctx context.Context, projectID uint) ([]uint, error) {
			return nil, nil
		},
	}

	uc := NewGeneratePlanUseCase(projectRepo, &mockUserRepository{}, &mockPlanGenerator{}, &mockPlanStore{}, testLogger())

	_, err := uc.Execute(context.Background(), GeneratePlanCommand{
		ProjectID: 7,
		Goal:      "Ship the checkout flow",
		UserRole:  "admin",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no members")
}
