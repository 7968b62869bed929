package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nexus/internal/application/feature/usecases"
	"nexus/internal/shared/logger"
	"nexus/internal/shared/utils"
)

type FeatureHandler struct {
	createUC       usecases.CreateFeatureExecutor
	changeStatusUC usecases.ChangeFeatureStatusExecutor
	listUC         usecases.ListFeaturesExecutor
	logger         logger.Interface
}

func NewFeatureHandler(
	createUC usecases.CreateFeatureExecutor,
	changeStatusUC usecases.ChangeFeatureStatusExecutor,
	listUC usecases.ListFeaturesExecutor,
) *FeatureHandler {
	return &FeatureHandler{
		createUC:       createUC,
		changeStatusUC: changeStatusUC,
		listUC:         listUC,
		logger:         logger.NewLogger(),
	}
}

type CreateFeatureRequest struct {
	ProjectID   uint   `json:"project_id" binding:"required"`
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description,omitempty" binding:"max=1000"`
}

// CreateFeature handles POST /features
func (h *FeatureHandler) CreateFeature(c *gin.Context) {
	var req CreateFeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create feature", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateFeatureCommand{
		ProjectID:   req.ProjectID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Feature created successfully")
}

type ChangeFeatureStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=backlog planning in_progress completed"`
}

// ChangeFeatureStatus handles PUT /features/:id/status
func (h *FeatureHandler) ChangeFeatureStatus(c *gin.Context) {
	featureID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeFeatureStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), usecases.ChangeFeatureStatusCommand{
		FeatureID: featureID,
		Status:    req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Feature status updated", result)
}

// ListFeatures handles GET /features?project_id=N
func (h *FeatureHandler) ListFeatures(c *gin.Context) {
	projectID, err := parseQueryID(c, "project_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListFeaturesQuery{
		ProjectID: projectID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Features)
}
