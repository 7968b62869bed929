// Package vertical models business units, the top of the ownership chain:
// a vertical owns projects, projects own sprints and tickets.
package vertical

import (
	"fmt"
	"time"
)

type Vertical struct {
	id          uint
	name        string
	description string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewVertical(name, description string) (*Vertical, error) {
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("name exceeds maximum length of 100 characters")
	}

	now := time.Now()
	return &Vertical{
		name:        name,
		description: description,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructVertical(id uint, name, description string, createdAt, updatedAt time.Time) (*Vertical, error) {
	if id == 0 {
		return nil, fmt.Errorf("vertical ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	return &Vertical{
		id:          id,
		name:        name,
		description: description,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (v *Vertical) ID() uint             { return v.id }
func (v *Vertical) Name() string         { return v.name }
func (v *Vertical) Description() string  { return v.description }
func (v *Vertical) CreatedAt() time.Time { return v.createdAt }
func (v *Vertical) UpdatedAt() time.Time { return v.updatedAt }

func (v *Vertical) SetID(id uint) error {
	if v.id != 0 {
		return fmt.Errorf("vertical ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("vertical ID cannot be zero")
	}
	v.id = id
	return nil
}

func (v *Vertical) Rename(name, description string) error {
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return fmt.Errorf("name exceeds maximum length of 100 characters")
	}
	v.name = name
	v.description = description
	v.updatedAt = time.Now()
	return nil
}
