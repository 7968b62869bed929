package task

import (
	"fmt"
	"time"
)

// Comment is a user-authored markdown note on a ticket.
type Comment struct {
	id        uint
	taskID    uint
	userID    uint
	content   string
	createdAt time.Time
	updatedAt time.Time
}

func NewComment(taskID, userID uint, content string) (*Comment, error) {
	if taskID == 0 {
		return nil, fmt.Errorf("task ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("content cannot be empty")
	}
	if len(content) > 5000 {
		return nil, fmt.Errorf("content exceeds maximum length of 5000 characters")
	}

	now := time.Now()
	return &Comment{
		taskID:    taskID,
		userID:    userID,
		content:   content,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructComment(id, taskID, userID uint, content string, createdAt, updatedAt time.Time) (*Comment, error) {
	if id == 0 {
		return nil, fmt.Errorf("comment ID cannot be zero")
	}
	if taskID == 0 {
		return nil, fmt.Errorf("task ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	return &Comment{
		id:        id,
		taskID:    taskID,
		userID:    userID,
		content:   content,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (c *Comment) ID() uint             { return c.id }
func (c *Comment) TaskID() uint         { return c.taskID }
func (c *Comment) UserID() uint         { return c.userID }
func (c *Comment) Content() string      { return c.content }
func (c *Comment) CreatedAt() time.Time { return c.createdAt }
func (c *Comment) UpdatedAt() time.Time { return c.updatedAt }

func (c *Comment) GetOwnerID() uint { return c.userID }

func (c *Comment) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("comment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("comment ID cannot be zero")
	}
	c.id = id
	return nil
}
