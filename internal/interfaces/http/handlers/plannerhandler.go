package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nexus/internal/application/planner/usecases"
	"nexus/internal/domain/planner"
	"nexus/internal/shared/errors"
	"nexus/internal/shared/logger"
	"nexus/internal/shared/utils"
)

type PlannerHandler struct {
	generateUC usecases.GeneratePlanExecutor
	confirmUC  usecases.ConfirmPlanExecutor
	discardUC  usecases.DiscardPlanExecutor
	logger     logger.Interface
}

func NewPlannerHandler(
	generateUC usecases.GeneratePlanExecutor,
	confirmUC usecases.ConfirmPlanExecutor,
	discardUC usecases.DiscardPlanExecutor,
) *PlannerHandler {
	return &PlannerHandler{
		generateUC: generateUC,
		confirmUC:  confirmUC,
		discardUC:  discardUC,
		logger:     logger.NewLogger(),
	}
}

type GeneratePlanRequest struct {
	ProjectID uint   `json:"project_id" binding:"required"`
	Goal      string `json:"goal" binding:"required,max=2000"`
}

// GeneratePlan handles POST /planner/generate
func (h *PlannerHandler) GeneratePlan(c *gin.Context) {
	var req GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for generate plan", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.generateUC.Execute(c.Request.Context(), usecases.GeneratePlanCommand{
		ProjectID: req.ProjectID,
		Goal:      req.Goal,
		UserRole:  c.GetString("user_role"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// Generation failures come back with Success=false so the client
	// can retry without treating it as a server fault.
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

type ConfirmPlanRequest struct {
	PlanID string        `json:"plan_id,omitempty"`
	Plan   *planner.Plan `json:"plan,omitempty"`
}

// ConfirmPlan handles POST /planner/confirm
func (h *PlannerHandler) ConfirmPlan(c *gin.Context) {
	var req ConfirmPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if req.PlanID == "" && req.Plan == nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("either plan_id or plan is required"))
		return
	}

	userID, _ := c.Get("user_id")
	uid, _ := userID.(uint)

	result, err := h.confirmUC.Execute(c.Request.Context(), usecases.ConfirmPlanCommand{
		PlanID:   req.PlanID,
		Plan:     req.Plan,
		UserID:   uid,
		UserRole: c.GetString("user_role"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Sprint plan confirmed")
}

// DiscardPlan handles DELETE /planner/plans/:planId
func (h *PlannerHandler) DiscardPlan(c *gin.Context) {
	planID := c.Param("planId")
	if planID == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid planId parameter"))
		return
	}

	if err := h.discardUC.Execute(c.Request.Context(), usecases.DiscardPlanCommand{
		PlanID:   planID,
		UserRole: c.GetString("user_role"),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
