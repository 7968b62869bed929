package sprint

import (
	"fmt"
	"time"

	vo "nexus/internal/domain/sprint/valueobjects"
)

// Sprint is a time-boxed container of tickets within a project. At most one
// sprint per project may be active at a time; the activation use case
// enforces that inside a transaction.
type Sprint struct {
	id          uint
	projectID   uint
	name        string
	goal        string
	status      vo.SprintStatus
	startDate   time.Time
	endDate     time.Time
	completedAt *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

func NewSprint(projectID uint, name, goal string, startDate, endDate time.Time) (*Sprint, error) {
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("name exceeds maximum length of 100 characters")
	}
	if !endDate.After(startDate) {
		return nil, fmt.Errorf("end date must be after start date")
	}

	now := time.Now()
	return &Sprint{
		projectID: projectID,
		name:      name,
		goal:      goal,
		status:    vo.StatusPlanned,
		startDate: startDate,
		endDate:   endDate,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructSprint(
	id, projectID uint,
	name, goal string,
	status vo.SprintStatus,
	startDate, endDate time.Time,
	completedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Sprint, error) {
	if id == 0 {
		return nil, fmt.Errorf("sprint ID cannot be zero")
	}
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid sprint status")
	}

	return &Sprint{
		id:          id,
		projectID:   projectID,
		name:        name,
		goal:        goal,
		status:      status,
		startDate:   startDate,
		endDate:     endDate,
		completedAt: completedAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (s *Sprint) ID() uint                 { return s.id }
func (s *Sprint) ProjectID() uint          { return s.projectID }
func (s *Sprint) Name() string             { return s.name }
func (s *Sprint) Goal() string             { return s.goal }
func (s *Sprint) Status() vo.SprintStatus  { return s.status }
func (s *Sprint) StartDate() time.Time     { return s.startDate }
func (s *Sprint) EndDate() time.Time       { return s.endDate }
func (s *Sprint) CompletedAt() *time.Time  { return s.completedAt }
func (s *Sprint) CreatedAt() time.Time     { return s.createdAt }
func (s *Sprint) UpdatedAt() time.Time     { return s.updatedAt }

func (s *Sprint) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("sprint ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("sprint ID cannot be zero")
	}
	s.id = id
	return nil
}

func (s *Sprint) Activate() error {
	if !s.status.CanTransitionTo(vo.StatusActive) {
		return fmt.Errorf("cannot activate sprint with status %s", s.status)
	}
	s.status = vo.StatusActive
	s.updatedAt = time.Now()
	return nil
}

func (s *Sprint) Complete() error {
	if !s.status.CanTransitionTo(vo.StatusCompleted) {
		return fmt.Errorf("cannot complete sprint with status %s", s.status)
	}
	now := time.Now()
	s.status = vo.StatusCompleted
	s.completedAt = &now
	s.updatedAt = now
	return nil
}

func (s *Sprint) Rename(name, goal string) error {
	if name == "" {
		return fmt.Errorf("name is required")
	}
	s.name = name
	s.goal = goal
	s.updatedAt = time.Now()
	return nil
}

func (s *Sprint) Reschedule(startDate, endDate time.Time) error {
	if !endDate.After(startDate) {
		return fmt.Errorf("end date must be after start date")
	}
	s.startDate = startDate
	s.endDate = endDate
	s.updatedAt = time.Now()
	return nil
}
