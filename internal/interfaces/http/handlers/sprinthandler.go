package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"nexus/internal/application/sprint/usecases"
	"nexus/internal/shared/errors"
	"nexus/internal/shared/logger"
	"nexus/internal/shared/utils"
)

type SprintHandler struct {
	createUC   usecases.CreateSprintExecutor
	activateUC usecases.ActivateSprintExecutor
	completeUC usecases.CompleteSprintExecutor
	moveTaskUC usecases.MoveTaskExecutor
	progressUC usecases.GetSprintProgressExecutor
	listUC     usecases.ListSprintsExecutor
	logger     logger.Interface
}

func NewSprintHandler(
	createUC usecases.CreateSprintExecutor,
	activateUC usecases.ActivateSprintExecutor,
	completeUC usecases.CompleteSprintExecutor,
	moveTaskUC usecases.MoveTaskExecutor,
	progressUC usecases.GetSprintProgressExecutor,
	listUC usecases.ListSprintsExecutor,
) *SprintHandler {
	return &SprintHandler{
		createUC:   createUC,
		activateUC: activateUC,
		completeUC: completeUC,
		moveTaskUC: moveTaskUC,
		progressUC: progressUC,
		listUC:     listUC,
		logger:     logger.NewLogger(),
	}
}

type CreateSprintRequest struct {
	ProjectID uint   `json:"project_id" binding:"required"`
	Name      string `json:"name" binding:"required,max=100"`
	Goal      string `json:"goal,omitempty" binding:"max=1000"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

// CreateSprint handles POST /sprints
func (h *SprintHandler) CreateSprint(c *gin.Context) {
	var req CreateSprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create sprint", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("start_date must be in YYYY-MM-DD format"))
		return
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("end_date must be in YYYY-MM-DD format"))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateSprintCommand{
		ProjectID: req.ProjectID,
		Name:      req.Name,
		Goal:      req.Goal,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Sprint created successfully")
}

// ActivateSprint handles POST /sprints/:id/activate
func (h *SprintHandler) ActivateSprint(c *gin.Context) {
	sprintID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.activateUC.Execute(c.Request.Context(), usecases.ActivateSprintCommand{
		SprintID: sprintID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Sprint activated", result)
}

// CompleteSprint handles POST /sprints/:id/complete
func (h *SprintHandler) CompleteSprint(c *gin.Context) {
	sprintID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.completeUC.Execute(c.Request.Context(), usecases.CompleteSprintCommand{
		SprintID: sprintID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Sprint completed", result)
}

type MoveTaskRequest struct {
	TaskID   uint  `json:"task_id" binding:"required"`
	SprintID *uint `json:"sprint_id"` // null moves the task to the backlog
}

// MoveTask handles POST /sprints/move-task
func (h *SprintHandler) MoveTask(c *gin.Context) {
	var req MoveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.moveTaskUC.Execute(c.Request.Context(), usecases.MoveTaskCommand{
		TaskID:   req.TaskID,
		SprintID: req.SprintID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Task moved", result)
}

// GetSprintProgress handles GET /sprints/:id/progress
func (h *SprintHandler) GetSprintProgress(c *gin.Context) {
	sprintID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.progressUC.Execute(c.Request.Context(), usecases.GetSprintProgressQuery{
		SprintID: sprintID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListSprints handles GET /sprints?project_id=N
func (h *SprintHandler) ListSprints(c *gin.Context) {
	projectID, err := parseQueryID(c, "project_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListSprintsQuery{
		ProjectID: projectID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Sprints)
}
