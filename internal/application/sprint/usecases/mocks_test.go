package usecases

import (
	"context"
	"time"

	"nexus/internal/domain/sprint"
	sprintvo "nexus/internal/domain/sprint/valueobjects"
	"nexus/internal/domain/task"
	taskvo "nexus/internal/domain/task/valueobjects"
	"nexus/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLogger()
}

type mockSprintRepository struct {
	SaveFunc                func(ctx context.Context, s *sprint.Sprint) error
	UpdateFunc              func(ctx context.Context, s *sprint.Sprint) error
	DeleteFunc              func(ctx context.Context, id uint) error
	FindByIDFunc            func(ctx context.Context, id uint) (*sprint.Sprint, error)
	ListByProjectFunc       func(ctx context.Context, projectID uint) ([]*sprint.Sprint, error)
	FindActiveByProjectFunc func(ctx context.Context, projectID uint) (*sprint.Sprint, error)
}

func (m *mockSprintRepository) Save(ctx context.Context, s *sprint.Sprint) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, s)
	}
	return nil
}

func (m *mockSprintRepository) Update(ctx context.Context, s *sprint.Sprint) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, s)
	}
	return nil
}

func (m *mockSprintRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockSprintRepository) FindByID(ctx context.Context, id uint) (*sprint.Sprint, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockSprintRepository) ListByProject(ctx context.Context, projectID uint) ([]*sprint.Sprint, error) {
	if m.ListByProjectFunc != nil {
		return m.ListByProjectFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *mockSprintRepository) FindActiveByProject(ctx context.Context, projectID uint) (*sprint.Sprint, error) {
	if m.FindActiveByProjectFunc != nil {
		return m.FindActiveByProjectFunc(ctx, projectID)
	}
	return nil, nil
}

type mockTaskRepository struct {
	UpdateFunc       func(ctx context.Context, t *task.Task) error
	FindByIDFunc     func(ctx context.Context, taskID uint) (*task.Task, error)
	ListBySprintFunc func(ctx context.Context, sprintID uint) ([]*task.Task, error)
}

func (m *mockTaskRepository) Save(ctx context.Context, t *task.Task) error { return nil }

func (m *mockTaskRepository) Update(ctx context.Context, t *task.Task) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTaskRepository) Delete(ctx context.Context, taskID uint) error { return nil }

func (m *mockTaskRepository) FindByID(ctx context.Context, taskID uint) (*task.Task, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, taskID)
	}
	return nil, nil
}

func (m *mockTaskRepository) FindChildren(ctx context.Context, parentTaskID uint) ([]*task.Task, error) {
	return nil, nil
}

func (m *mockTaskRepository) List(ctx context.Context, filter task.Filter) ([]*task.Task, int64, error) {
	return nil, 0, nil
}

func (m *mockTaskRepository) ListBySprint(ctx context.Context, sprintID uint) ([]*task.Task, error) {
	if m.ListBySprintFunc != nil {
		return m.ListBySprintFunc(ctx, sprintID)
	}
	return nil, nil
}

// passthroughTransactor runs the function directly; handing the same context
// through mirrors how the real manager carries the transaction.
type passthroughTransactor struct{}

func (passthroughTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// trackingTransactor records whether the wrapped function is currently running
// so tests can assert repository calls happen inside the transaction.
type trackingTransactor struct {
	runs int
	inTx bool
}

func (t *trackingTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.runs++
	t.inTx = true
	defer func() { t.inTx = false }()
	return fn(ctx)
}

func makeSprint(id, projectID uint, status sprintvo.SprintStatus) *sprint.Sprint {
	start := time.Now().Add(-24 * time.Hour)
	end := start.Add(14 * 24 * time.Hour)
	s, err := sprint.ReconstructSprint(id, projectID, "Sprint", "", status, start, end, nil, start, start)
	if err != nil {
		panic(err)
	}
	return s
}

func makeSprintTask(id, projectID uint, taskType taskvo.TaskType, status taskvo.Status) *task.Task {
	created := time.Now().Add(-time.Hour)
	t, err := task.ReconstructTask(
		id, projectID, nil, nil, nil,
		"ticket", "", taskType, status, taskvo.PriorityMedium,
		0, "", nil, 1, nil, nil,
		nil, nil, taskvo.SyncNone, nil,
		created, created,
	)
	if err != nil {
		panic(err)
	}
	return t
}
