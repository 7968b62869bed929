package task

import (
	"math"

	vo "nexus/internal/domain/task/valueobjects"
)

// Own-status heuristic for tickets without subtasks: an assumed position in
// the workflow, not a measurement.
var statusProgress = map[vo.Status]int{
	vo.StatusTodo:     0,
	vo.StatusProgress: 50,
	vo.StatusReview:   75,
	vo.StatusDone:     100,
}

// CalculateTaskProgress returns a completion percentage for a single ticket.
// With no children the ticket's own status maps to a fixed percentage. With
// children, only done subtasks count as complete; review does not, since it
// is not yet verified completion.
func CalculateTaskProgress(status vo.Status, childStatuses []vo.Status) int {
	if len(childStatuses) == 0 {
		return statusProgress[status]
	}

	done := 0
	for _, cs := range childStatuses {
		if cs.IsDone() {
			done++
		}
	}
	return roundPercent(done, len(childStatuses))
}

// roundPercent is round-half-up of 100*part/total.
func roundPercent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Floor(100*float64(part)/float64(total) + 0.5))
}

// ProgressColor maps a percentage to a display color token.
func ProgressColor(pct int) string {
	switch {
	case pct == 0:
		return "red"
	case pct <= 25:
		return "orange"
	case pct <= 50:
		return "yellow"
	case pct < 100:
		return "blue"
	default:
		return "green"
	}
}

// ProgressLabel maps a percentage to a display label.
func ProgressLabel(pct int) string {
	switch {
	case pct == 0:
		return "Not Started"
	case pct < 50:
		return "In Progress"
	case pct < 100:
		return "Almost Done"
	default:
		return "Complete"
	}
}

// SprintProgress aggregates a sprint's worth of tickets.
//
// OverallProgress is unit-count based (done units over all units, children
// included); AverageProgress is the mean of per-top-level-ticket progress.
// The two use different denominators on purpose and are both reported.
type SprintProgress struct {
	TotalTasks      int `json:"total_tasks"`
	CompletedTasks  int `json:"completed_tasks"`
	InProgressTasks int `json:"in_progress_tasks"`
	TodoTasks       int `json:"todo_tasks"`
	ReviewTasks     int `json:"review_tasks"`
	OverallProgress int `json:"overall_progress"`
	AverageProgress int `json:"average_progress"`
}

// CalculateSprintProgress tallies top-level tickets and their direct children
// as one flattened set of counted units. Each unit is counted by its own
// literal status, never by a propagated parent status.
func CalculateSprintProgress(tasks []*Task) SprintProgress {
	var p SprintProgress
	if len(tasks) == 0 {
		return p
	}

	progressSum := 0
	for _, t := range tasks {
		childStatuses := t.ChildStatuses()
		units := append([]vo.Status{t.Status()}, childStatuses...)
		p.TotalTasks += len(units)

		for _, s := range units {
			switch s {
			case vo.StatusDone:
				p.CompletedTasks++
			case vo.StatusProgress:
				p.InProgressTasks++
			case vo.StatusReview:
				p.ReviewTasks++
			default:
				p.TodoTasks++
			}
		}

		progressSum += CalculateTaskProgress(t.Status(), childStatuses)
	}

	p.OverallProgress = roundPercent(p.CompletedTasks, p.TotalTasks)
	p.AverageProgress = int(math.Floor(float64(progressSum)/float64(len(tasks)) + 0.5))

	return p
}
