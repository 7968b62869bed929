package valueobjects

import "fmt"

// TaskType distinguishes the levels of the ticket hierarchy. Stories group
// tasks and bugs; subtasks hang under a task or bug and drive its derived
// status.
type TaskType string

const (
	TypeStory   TaskType = "story"
	TypeTask    TaskType = "task"
	TypeBug     TaskType = "bug"
	TypeSubtask TaskType = "subtask"
)

var validTaskTypes = map[TaskType]bool{
	TypeStory:   true,
	TypeTask:    true,
	TypeBug:     true,
	TypeSubtask: true,
}

func (t TaskType) String() string {
	return string(t)
}

func (t TaskType) IsValid() bool {
	return validTaskTypes[t]
}

func (t TaskType) IsStory() bool {
	return t == TypeStory
}

func (t TaskType) IsSubtask() bool {
	return t == TypeSubtask
}

// CanParent reports whether a ticket of this type may have a child of the
// given type. Stories group tasks and bugs; tasks and bugs break down into
// subtasks; subtasks are leaves.
func (t TaskType) CanParent(child TaskType) bool {
	switch t {
	case TypeStory:
		return child == TypeTask || child == TypeBug
	case TypeTask, TypeBug:
		return child == TypeSubtask
	default:
		return false
	}
}

func NewTaskType(s string) (TaskType, error) {
	tt := TaskType(s)
	if !tt.IsValid() {
		return "", fmt.Errorf("invalid task type: %s", s)
	}
	return tt, nil
}
