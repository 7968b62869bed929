package planner

import "fmt"

// Plan is the draft sprint backlog produced by the generate phase. It lives
// in the staging store (never the relational database) until the user
// confirms or abandons it; edits happen client-side against this value.
type Plan struct {
	ID           string      `json:"id"`
	ProjectID    uint        `json:"project_id"`
	SprintName   string      `json:"sprint_name"`
	DurationDays int         `json:"duration_days"`
	Stories      []PlanStory `json:"stories"`
}

type PlanStory struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StoryPoints int        `json:"story_points"`
	Role        Role       `json:"role"`
	Priority    string     `json:"priority"`
	Labels      []string   `json:"labels"`
	Tasks       []PlanTask `json:"tasks"`
}

type PlanTask struct {
	Title              string       `json:"title"`
	Description        string       `json:"description"`
	Role               Role         `json:"role"`
	Priority           string       `json:"priority"`
	Labels             []string     `json:"labels"`
	SuggestedAssignees []Suggestion `json:"suggested_assignees,omitempty"`
	// AssigneeID carries the reviewer's final pick into the confirm phase.
	AssigneeID *uint `json:"assignee_id,omitempty"`
}

// Validate checks the structural constraints the model was asked to honor.
// Confirm re-validates because the plan may have been edited in between.
func (p *Plan) Validate() error {
	if p.SprintName == "" {
		return fmt.Errorf("sprint name is required")
	}
	if p.DurationDays < 7 || p.DurationDays > 30 {
		return fmt.Errorf("sprint duration must be between 7 and 30 days, got %d", p.DurationDays)
	}
	if len(p.Stories) == 0 {
		return fmt.Errorf("plan must contain at least one story")
	}
	for i, story := range p.Stories {
		if story.Title == "" {
			return fmt.Errorf("story %d: title is required", i+1)
		}
		if story.StoryPoints < 0 || story.StoryPoints > 20 {
			return fmt.Errorf("story %d: story points must be between 0 and 20", i+1)
		}
		for j, task := range story.Tasks {
			if task.Title == "" {
				return fmt.Errorf("story %d task %d: title is required", i+1, j+1)
			}
		}
	}
	return nil
}

// TotalTasks counts stories plus their child tasks.
func (p *Plan) TotalTasks() int {
	total := len(p.Stories)
	for _, story := range p.Stories {
		total += len(story.Tasks)
	}
	return total
}
