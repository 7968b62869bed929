package task

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"nexus/internal/application/task/usecases"
	"nexus/internal/shared/errors"
)

type CreateTaskRequest struct {
	ProjectID    uint     `json:"project_id" binding:"required"`
	SprintID     *uint    `json:"sprint_id,omitempty"`
	FeatureID    *uint    `json:"feature_id,omitempty"`
	ParentTaskID *uint    `json:"parent_task_id,omitempty"`
	Title        string   `json:"title" binding:"required,max=200"`
	Description  string   `json:"description,omitempty" binding:"max=5000"`
	Type         string   `json:"type" binding:"required,oneof=story task bug subtask"`
	Priority     string   `json:"priority,omitempty" binding:"omitempty,oneof=low medium high critical"`
	StoryPoints  int      `json:"story_points,omitempty" binding:"min=0,max=100"`
	RequiredRole string   `json:"required_role,omitempty" binding:"max=50"`
	Labels       []string `json:"labels,omitempty"`
	AssigneeID   *uint    `json:"assignee_id,omitempty"`
}

func (r *CreateTaskRequest) ToCommand(creatorID uint) usecases.CreateTaskCommand {
	return usecases.CreateTaskCommand{
		ProjectID:    r.ProjectID,
		SprintID:     r.SprintID,
		FeatureID:    r.FeatureID,
		ParentTaskID: r.ParentTaskID,
		Title:        r.Title,
		Description:  r.Description,
		Type:         r.Type,
		Priority:     r.Priority,
		StoryPoints:  r.StoryPoints,
		RequiredRole: r.RequiredRole,
		Labels:       r.Labels,
		CreatorID:    creatorID,
		AssigneeID:   r.AssigneeID,
	}
}

type UpdateTaskRequest struct {
	Title        *string  `json:"title,omitempty" binding:"omitempty,max=200"`
	Description  *string  `json:"description,omitempty" binding:"omitempty,max=5000"`
	Priority     *string  `json:"priority,omitempty" binding:"omitempty,oneof=low medium high critical"`
	StoryPoints  *int     `json:"story_points,omitempty" binding:"omitempty,min=0,max=100"`
	RequiredRole *string  `json:"required_role,omitempty" binding:"omitempty,max=50"`
	Labels       []string `json:"labels,omitempty"`
	FeatureID    *uint    `json:"feature_id,omitempty"`
	ClearFeature bool     `json:"clear_feature,omitempty"`
	ReviewerID   *uint    `json:"reviewer_id,omitempty"`
}

func (r *UpdateTaskRequest) ToCommand(taskID uint) usecases.UpdateTaskCommand {
	return usecases.UpdateTaskCommand{
		TaskID:       taskID,
		Title:        r.Title,
		Description:  r.Description,
		Priority:     r.Priority,
		StoryPoints:  r.StoryPoints,
		RequiredRole: r.RequiredRole,
		Labels:       r.Labels,
		FeatureID:    r.FeatureID,
		ClearFeature: r.ClearFeature,
		ReviewerID:   r.ReviewerID,
	}
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=todo progress review done"`
}

type AssignTaskRequest struct {
	AssigneeID *uint `json:"assignee_id"` // null unassigns
}

type AddCommentRequest struct {
	Content string `json:"content" binding:"required,max=10000"`
}

type ListTasksRequest struct {
	ProjectID    *uint
	SprintID     *uint
	FeatureID    *uint
	ParentTaskID *uint
	TopLevelOnly bool
	Type         *string
	Status       *string
	Priority     *string
	AssigneeID   *uint
	Page         int
	PageSize     int
	SortBy       string
	SortOrder    string
}

func (r *ListTasksRequest) ToQuery() usecases.ListTasksQuery {
	return usecases.ListTasksQuery{
		ProjectID:    r.ProjectID,
		SprintID:     r.SprintID,
		FeatureID:    r.FeatureID,
		ParentTaskID: r.ParentTaskID,
		TopLevelOnly: r.TopLevelOnly,
		Type:         r.Type,
		Status:       r.Status,
		Priority:     r.Priority,
		AssigneeID:   r.AssigneeID,
		Page:         r.Page,
		PageSize:     r.PageSize,
		SortBy:       r.SortBy,
		SortOrder:    r.SortOrder,
	}
}

func parseListTasksRequest(c *gin.Context) (*ListTasksRequest, error) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	req := &ListTasksRequest{
		Page:      page,
		PageSize:  pageSize,
		SortBy:    c.DefaultQuery("sort_by", "created_at"),
		SortOrder: c.DefaultQuery("sort_order", "desc"),
	}

	var err error
	if req.ProjectID, err = parseOptionalID(c, "project_id"); err != nil {
		return nil, err
	}
	if req.SprintID, err = parseOptionalID(c, "sprint_id"); err != nil {
		return nil, err
	}
	if req.FeatureID, err = parseOptionalID(c, "feature_id"); err != nil {
		return nil, err
	}
	if req.ParentTaskID, err = parseOptionalID(c, "parent_task_id"); err != nil {
		return nil, err
	}
	if req.AssigneeID, err = parseOptionalID(c, "assignee_id"); err != nil {
		return nil, err
	}

	if t := c.Query("type"); t != "" {
		req.Type = &t
	}
	if status := c.Query("status"); status != "" {
		req.Status = &status
	}
	if priority := c.Query("priority"); priority != "" {
		req.Priority = &priority
	}
	if c.Query("top_level") == "true" {
		req.TopLevelOnly = true
	}

	return req, nil
}

func parseOptionalID(c *gin.Context, name string) (*uint, error) {
	s := c.Query(name)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return nil, errors.NewValidationError("Invalid " + name)
	}
	id := uint(v)
	return &id, nil
}
