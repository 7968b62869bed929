package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexus/internal/domain/sprint"
	sprintvo "nexus/internal/domain/sprint/valueobjects"
	"nexus/internal/domain/task"
	taskvo "nexus/internal/domain/task/valueobjects"
	apperrors "nexus/internal/shared/errors"
)

func TestMoveTask_SameProjectSucceeds(t *testing.T) {
	ticket := makeSprintTask(1, 10, taskvo.TypeStory, taskvo.StatusTodo)
	target := makeSprint(5, 10, sprintvo.StatusPlanned)

	var moved *task.Task
	taskRepo := &mockTaskRepository{
		FindByIDFunc: func(ctx context.Context, taskID uint) (*task.Task, error) {
			return ticket, nil
		},
		UpdateFunc: func(ctx context.Context, updated *task.Task) error {
			moved = updated
			return nil
		},
	}
	sprintRepo := &mockSprintRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*sprint.Sprint, error) {
			return target, nil
		},
	}

	uc := NewMoveTaskUseCase(taskRepo, sprintRepo, passthroughTransactor{}, testLogger())

	sprintID := target.ID()
	result, err := uc.Execute(context.Background(), MoveTaskCommand{TaskID: 1, SprintID: &sprintID})
	require.NoError(t, err)

	require.NotNil(t, result.SprintID)
	assert.Equal(t, sprintID, *result.SprintID)
	require.NotNil(t, moved)
	require.NotNil(t, moved.SprintID())
	assert.Equal(t, sprintID, *moved.SprintID())
}

func TestMoveTask_CrossProjectRejected(t *testing.T) {
	ticket := makeSprintTask(1, 10, taskvo.TypeStory, taskvo.StatusTodo)
	otherProjectSprint := makeSprint(5, 99, sprintvo.StatusPlanned)

	updateCalls := 0
	taskRepo := &mockTaskRepository{
		FindByIDFunc: func(ctx context.Context, taskID uint) (*task.Task, error) {
			return ticket, nil
		},
		UpdateFunc: func(ctx context.Context, updated *task.Task) error {
			updateCalls++
			return nil
		},
	}
	sprintRepo := &mockSprintRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*sprint.Sprint, error) {
			return otherProjectSprint, nil
		},
	}

	uc := NewMoveTaskUseCase(taskRepo, sprintRepo, passthroughTransactor{}, testLogger())

	sprintID := otherProjectSprint.ID()
	_, err := uc.Execute(context.Background(), MoveTaskCommand{TaskID: 1, SprintID: &sprintID})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
	assert.Contains(t, err.Error(), "same project")
	assert.Zero(t, updateCalls)
}

func TestMoveTask_ChildrenFollowParent(t *testing.T) {
	parent := makeSprintTask(1, 10, taskvo.TypeTask, taskvo.StatusProgress)
	parentID := parent.ID()
	child := makeSprintTask(2, 10, taskvo.TypeSubtask, taskvo.StatusTodo)
	require.NoError(t, child.SetParent(parentID))
	parent.AttachChildren([]*task.Task{child})

	target := makeSprint(5, 10, sprintvo.StatusActive)

	movedIDs := []uint{}
	taskRepo := &mockTaskRepository{
		FindByIDFunc: func(ctx context.Context, taskID uint) (*task.Task, error) {
			return parent, nil
		},
		UpdateFunc: func(ctx context.Context, updated *task.Task) error {
			movedIDs = append(movedIDs, updated.ID())
			return nil
		},
	}
	sprintRepo := &mockSprintRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*sprint.Sprint, error) {
			return target, nil
		},
	}

	uc := NewMoveTaskUseCase(taskRepo, sprintRepo, passthroughTransactor{}, testLogger())

	sprintID := target.ID()
	_, err := uc.Execute(context.Background(), MoveTaskCommand{TaskID: 1, SprintID: &sprintID})
	require.NoError(t, err)

	assert.Equal(t, []uint{1, 2}, movedIDs)
	require.NotNil(t, child.SprintID())
	assert.Equal(t, sprintID, *child.SprintID())
}

func TestMoveTask_ParentAndChildrenMoveInOneTransaction(t *testing.T) {
	parent := makeSprintTask(1, 10, taskvo.TypeStory, taskvo.StatusProgress)
	child := makeSprintTask(2, 10, taskvo.TypeTask, taskvo.StatusTodo)
	require.NoError(t, child.SetParent(parent.ID()))
	parent.AttachChildren([]*task.Task{child})

	target := makeSprint(5, 10, sprintvo.StatusActive)

	tx := &trackingTransactor{}
	updatesInTx := 0
	taskRepo := &mockTaskRepository{
		FindByIDFunc: func(ctx context.Context, taskID uint) (*task.Task, error) {
			return parent, nil
		},
		UpdateFunc: func(ctx context.Context, updated *task.Task) error {
			require.True(t, tx.inTx)
			updatesInTx++
			if updated.ID() == child.ID() {
				return assert.AnError
			}
			return nil
		},
	}
	sprintRepo := &mockSprintRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*sprint.Sprint, error) {
			return target, nil
		},
	}

	uc := NewMoveTaskUseCase(taskRepo, sprintRepo, tx, testLogger())

	sprintID := target.ID()
	_, err := uc.Execute(context.Background(), MoveTaskCommand{TaskID: 1, SprintID: &sprintID})
	require.Error(t, err)
	assert.Equal(t, 1, tx.runs)
	assert.Equal(t, 2, updatesInTx)
}

func TestMoveTask_NilSprintMovesToBacklog(t *testing.T) {
	sprintID := uint(5)
	ticket := makeSprintTask(1, 10, taskvo.TypeStory, taskvo.StatusTodo)
	ticket.MoveToSprint(&sprintID)

	taskRepo := &mockTaskRepository{
		FindByIDFunc: func(ctx context.Context, taskID uint) (*task.Task, error) {
			return ticket, nil
		},
	}

	uc := NewMoveTaskUseCase(taskRepo, &mockSprintRepository{}, passthroughTransactor{}, testLogger())

	result, err := uc.Execute(context.Background(), MoveTaskCommand{TaskID: 1, SprintID: nil})
	require.NoError(t, err)
	assert.Nil(t, result.SprintID)
	assert.Nil(t, ticket.SprintID())
}
