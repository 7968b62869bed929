package valueobjects

import "fmt"

// Status is a task's workflow state on the board.
type Status string

const (
	StatusTodo     Status = "todo"
	StatusProgress Status = "progress"
	StatusReview   Status = "review"
	StatusDone     Status = "done"
)

var validStatuses = map[Status]bool{
	StatusTodo:     true,
	StatusProgress: true,
	StatusReview:   true,
	StatusDone:     true,
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) IsTodo() bool {
	return s == StatusTodo
}

func (s Status) IsProgress() bool {
	return s == StatusProgress
}

func (s Status) IsReview() bool {
	return s == StatusReview
}

func (s Status) IsDone() bool {
	return s == StatusDone
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid task status: %s", s)
	}
	return st, nil
}

// DeriveFromChildren computes the status a parent task should carry given
// how many of its children are done. All-done promotes to review, never to
// done: closing a task stays a human decision.
func DeriveFromChildren(doneCount, total int) Status {
	switch {
	case doneCount <= 0:
		return StatusTodo
	case doneCount < total:
		return StatusProgress
	default:
		return StatusReview
	}
}
