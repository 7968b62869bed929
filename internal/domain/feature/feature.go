// Package feature models the optional grouping of tickets within a project,
// independent of sprint membership.
package feature

import (
	"fmt"
	"time"
)

type FeatureStatus string

const (
	StatusBacklog    FeatureStatus = "backlog"
	StatusPlanning   FeatureStatus = "planning"
	StatusInProgress FeatureStatus = "in_progress"
	StatusCompleted  FeatureStatus = "completed"
)

func (s FeatureStatus) String() string {
	return string(s)
}

func (s FeatureStatus) IsValid() bool {
	switch s {
	case StatusBacklog, StatusPlanning, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

func NewFeatureStatus(s string) (FeatureStatus, error) {
	fs := FeatureStatus(s)
	if !fs.IsValid() {
		return "", fmt.Errorf("invalid feature status: %s", s)
	}
	return fs, nil
}

type Feature struct {
	id          uint
	projectID   uint
	name        string
	description string
	status      FeatureStatus
	createdAt   time.Time
	updatedAt   time.Time
}

func NewFeature(projectID uint, name, description string) (*Feature, error) {
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	now := time.Now()
	return &Feature{
		projectID:   projectID,
		name:        name,
		description: description,
		status:      StatusBacklog,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructFeature(id, projectID uint, name, description string, status FeatureStatus, createdAt, updatedAt time.Time) (*Feature, error) {
	if id == 0 {
		return nil, fmt.Errorf("feature ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid feature status")
	}

	return &Feature{
		id:          id,
		projectID:   projectID,
		name:        name,
		description: description,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (f *Feature) ID() uint              { return f.id }
func (f *Feature) ProjectID() uint       { return f.projectID }
func (f *Feature) Name() string          { return f.name }
func (f *Feature) Description() string   { return f.description }
func (f *Feature) Status() FeatureStatus { return f.status }
func (f *Feature) CreatedAt() time.Time  { return f.createdAt }
func (f *Feature) UpdatedAt() time.Time  { return f.updatedAt }

func (f *Feature) SetID(id uint) error {
	if f.id != 0 {
		return fmt.Errorf("feature ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("feature ID cannot be zero")
	}
	f.id = id
	return nil
}

func (f *Feature) ChangeStatus(status FeatureStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid feature status: %s", status)
	}
	f.status = status
	f.updatedAt = time.Now()
	return nil
}

func (f *Feature) Rename(name, description string) error {
	if name == "" {
		return fmt.Errorf("name is required")
	}
	f.name = name
	f.description = description
	f.updatedAt = time.Now()
	return nil
}
