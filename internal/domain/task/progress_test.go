package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	vo "nexus/internal/domain/task/valueobjects"
)

func progressTask(id uint, taskType vo.TaskType, status vo.Status, children ...*Task) *Task {
	created := time.Now().Add(-time.Hour)
	t, err := ReconstructTask(
		id, 1, nil, nil, nil,
		"ticket", "", taskType, status, vo.PriorityMedium,
		0, "", nil, 1, nil, nil,
		nil, nil, vo.SyncNone, nil,
		created, created,
	)
	if err != nil {
		panic(err)
	}
	if len(children) > 0 {
		t.AttachChildren(children)
	}
	return t
}

func TestCalculateTaskProgress_OwnStatus(t *testing.T) {
	tests := []struct {
		status vo.Status
		want   int
	}{
		{vo.StatusTodo, 0},
		{vo.StatusProgress, 50},
		{vo.StatusReview, 75},
		{vo.StatusDone, 100},
	}
	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateTaskProgress(tt.status, nil))
		})
	}
}

func TestCalculateTaskProgress_FromChildren(t *testing.T) {
	tests := []struct {
		name     string
		statuses []vo.Status
		want     int
	}{
		{"none done", []vo.Status{vo.StatusTodo, vo.StatusProgress}, 0},
		{"one of three", []vo.Status{vo.StatusDone, vo.StatusTodo, vo.StatusTodo}, 33},
		{"review does not count", []vo.Status{vo.StatusReview, vo.StatusReview}, 0},
		{"half", []vo.Status{vo.StatusDone, vo.StatusTodo}, 50},
		{"two of three rounds up", []vo.Status{vo.StatusDone, vo.StatusDone, vo.StatusTodo}, 67},
		{"all done", []vo.Status{vo.StatusDone, vo.StatusDone}, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Parent status is ignored once children exist.
			assert.Equal(t, tt.want, CalculateTaskProgress(vo.StatusDone, tt.statuses))
		})
	}
}

func TestProgressColor(t *testing.T) {
	tests := []struct {
		pct  int
		want string
	}{
		{0, "red"},
		{1, "orange"},
		{25, "orange"},
		{26, "yellow"},
		{50, "yellow"},
		{51, "blue"},
		{99, "blue"},
		{100, "green"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ProgressColor(tt.pct), "pct=%d", tt.pct)
	}
}

func TestProgressLabel(t *testing.T) {
	tests := []struct {
		pct  int
		want string
	}{
		{0, "Not Started"},
		{1, "In Progress"},
		{49, "In Progress"},
		{50, "Almost Done"},
		{99, "Almost Done"},
		{100, "Complete"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ProgressLabel(tt.pct), "pct=%d", tt.pct)
	}
}

func TestCalculateSprintProgress_Empty(t *testing.T) {
	p := CalculateSprintProgress(nil)

	assert.Equal(t, 0, p.TotalTasks)
	assert.Equal(t, 0, p.OverallProgress)
	assert.Equal(t, 0, p.AverageProgress)
}

func TestCalculateSprintProgress_CountsChildrenAsUnits(t *testing.T) {
	story := progressTask(1, vo.TypeStory, vo.StatusProgress,
		progressTask(2, vo.TypeTask, vo.StatusDone),
		progressTask(3, vo.TypeTask, vo.StatusTodo),
	)
	bug := progressTask(4, vo.TypeBug, vo.StatusDone)

	p := CalculateSprintProgress([]*Task{story, bug})

	assert.Equal(t, 4, p.TotalTasks)
	assert.Equal(t, 2, p.CompletedTasks)
	assert.Equal(t, 1, p.InProgressTasks)
	assert.Equal(t, 1, p.TodoTasks)

	// 2 done units of 4.
	assert.Equal(t, 50, p.OverallProgress)
	// mean(child-derived 50, own-status 100).
	assert.Equal(t, 75, p.AverageProgress)
}

func TestCalculateSprintProgress_MetricsDiverge(t *testing.T) {
	// One finished small story next to one barely-started large story: the
	// unit view and the per-ticket view must not agree.
	small := progressTask(1, vo.TypeStory, vo.StatusDone,
		progressTask(2, vo.TypeTask, vo.StatusDone),
	)
	large := progressTask(3, vo.TypeStory, vo.StatusProgress,
		progressTask(4, vo.TypeTask, vo.StatusTodo),
		progressTask(5, vo.TypeTask, vo.StatusTodo),
		progressTask(6, vo.TypeTask, vo.StatusTodo),
		progressTask(7, vo.TypeTask, vo.StatusTodo),
	)

	p := CalculateSprintProgress([]*Task{small, large})

	assert.Equal(t, 7, p.TotalTasks)
	assert.Equal(t, 2, p.CompletedTasks)
	assert.Equal(t, 29, p.OverallProgress)
	assert.Equal(t, 50, p.AverageProgress)
	assert.NotEqual(t, p.OverallProgress, p.AverageProgress)
}
