package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nexus/internal/application/vertical/usecases"
	"nexus/internal/shared/logger"
	"nexus/internal/shared/utils"
)

type VerticalHandler struct {
	createUC usecases.CreateVerticalExecutor
	updateUC usecases.UpdateVerticalExecutor
	deleteUC usecases.DeleteVerticalExecutor
	listUC   usecases.ListVerticalsExecutor
	logger   logger.Interface
}

func NewVerticalHandler(
	createUC usecases.CreateVerticalExecutor,
	updateUC usecases.UpdateVerticalExecutor,
	deleteUC usecases.DeleteVerticalExecutor,
	listUC usecases.ListVerticalsExecutor,
) *VerticalHandler {
	return &VerticalHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		listUC:   listUC,
		logger:   logger.NewLogger(),
	}
}

type CreateVerticalRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description,omitempty" binding:"max=1000"`
}

// CreateVertical handles POST /verticals
func (h *VerticalHandler) CreateVertical(c *gin.Context) {
	var req CreateVerticalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create vertical", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateVerticalCommand{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Vertical created successfully")
}

// UpdateVertical handles PUT /verticals/:id
func (h *VerticalHandler) UpdateVertical(c *gin.Context) {
	verticalID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateVerticalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateVerticalCommand{
		VerticalID:  verticalID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Vertical updated successfully", result)
}

// DeleteVertical handles DELETE /verticals/:id
func (h *VerticalHandler) DeleteVertical(c *gin.Context) {
	verticalID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if _, err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteVerticalCommand{
		VerticalID: verticalID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ListVerticals handles GET /verticals
func (h *VerticalHandler) ListVerticals(c *gin.Context) {
	result, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Verticals)
}
