package valueobjects

import "fmt"

type SprintStatus string

const (
	StatusPlanned   SprintStatus = "planned"
	StatusActive    SprintStatus = "active"
	StatusCompleted SprintStatus = "completed"
)

var validSprintStatuses = map[SprintStatus]bool{
	StatusPlanned:   true,
	StatusActive:    true,
	StatusCompleted: true,
}

var sprintStatusTransitions = map[SprintStatus][]SprintStatus{
	StatusPlanned:   {StatusActive},
	StatusActive:    {StatusCompleted},
	StatusCompleted: {},
}

func (s SprintStatus) String() string {
	return string(s)
}

func (s SprintStatus) IsValid() bool {
	return validSprintStatuses[s]
}

func (s SprintStatus) CanTransitionTo(newStatus SprintStatus) bool {
	for _, allowed := range sprintStatusTransitions[s] {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

func (s SprintStatus) IsPlanned() bool {
	return s == StatusPlanned
}

func (s SprintStatus) IsActive() bool {
	return s == StatusActive
}

func (s SprintStatus) IsCompleted() bool {
	return s == StatusCompleted
}

func NewSprintStatus(s string) (SprintStatus, error) {
	st := SprintStatus(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid sprint status: %s", s)
	}
	return st, nil
}
