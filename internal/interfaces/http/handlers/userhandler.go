package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"nexus/internal/application/user/usecases"
	"nexus/internal/shared/errors"
	"nexus/internal/shared/logger"
	"nexus/internal/shared/utils"
)

type UserHandler struct {
	updateProfileUC usecases.UpdateProfileExecutor
	listUsersUC     usecases.ListUsersExecutor
	changeRoleUC    usecases.ChangeRoleExecutor
	logger          logger.Interface
}

func NewUserHandler(
	updateProfileUC usecases.UpdateProfileExecutor,
	listUsersUC usecases.ListUsersExecutor,
	changeRoleUC usecases.ChangeRoleExecutor,
) *UserHandler {
	return &UserHandler{
		updateProfileUC: updateProfileUC,
		listUsersUC:     listUsersUC,
		changeRoleUC:    changeRoleUC,
		logger:          logger.NewLogger(),
	}
}

type UpdateProfileRequest struct {
	Designation *string `json:"designation,omitempty"`
	GithubToken *string `json:"github_token,omitempty"`
}

// UpdateProfile handles PATCH /users/me
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := c.Get("user_id")

	result, err := h.updateProfileUC.Execute(c.Request.Context(), usecases.UpdateProfileCommand{
		UserID:      userID.(uint),
		Designation: req.Designation,
		GithubToken: req.GithubToken,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", result)
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.listUsersUC.Execute(c.Request.Context(), usecases.ListUsersQuery{
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Users, result.Total, result.Page, result.PageSize)
}

type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=admin member"`
}

// ChangeRole handles PATCH /users/:id/role
func (h *UserHandler) ChangeRole(c *gin.Context) {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	role := c.GetString("user_role")

	if err := h.changeRoleUC.Execute(c.Request.Context(), usecases.ChangeRoleCommand{
		UserID:      userID,
		Role:        req.Role,
		RequestRole: role,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Role updated successfully", nil)
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	idStr := c.Param(name)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid " + name + " parameter")
	}
	return uint(id), nil
}
