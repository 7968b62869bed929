package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"nexus/internal/application/project/usecases"
	"nexus/internal/shared/errors"
	"nexus/internal/shared/logger"
	"nexus/internal/shared/utils"
)

type ProjectHandler struct {
	createUC       usecases.CreateProjectExecutor
	addMemberUC    usecases.AddMemberExecutor
	removeMemberUC usecases.RemoveMemberExecutor
	listMembersUC  usecases.ListMembersExecutor
	linkGithubUC   usecases.LinkGithubRepoExecutor
	getUC          usecases.GetProjectExecutor
	listUC         usecases.ListProjectsExecutor
	logger         logger.Interface
}

func NewProjectHandler(
	createUC usecases.CreateProjectExecutor,
	addMemberUC usecases.AddMemberExecutor,
	removeMemberUC usecases.RemoveMemberExecutor,
	listMembersUC usecases.ListMembersExecutor,
	linkGithubUC usecases.LinkGithubRepoExecutor,
	getUC usecases.GetProjectExecutor,
	listUC usecases.ListProjectsExecutor,
) *ProjectHandler {
	return &ProjectHandler{
		createUC:       createUC,
		addMemberUC:    addMemberUC,
		removeMemberUC: removeMemberUC,
		listMembersUC:  listMembersUC,
		linkGithubUC:   linkGithubUC,
		getUC:          getUC,
		listUC:         listUC,
		logger:         logger.NewLogger(),
	}
}

type CreateProjectRequest struct {
	VerticalID  uint   `json:"vertical_id" binding:"required"`
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description,omitempty" binding:"max=1000"`
}

// CreateProject handles POST /projects
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create project", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateProjectCommand{
		VerticalID:  req.VerticalID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Project created successfully")
}

// GetProject handles GET /projects/:id
func (h *ProjectHandler) GetProject(c *gin.Context) {
	projectID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetProjectQuery{
		ProjectID: projectID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListProjects handles GET /projects?vertical_id=N
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	verticalID, err := parseQueryID(c, "vertical_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListProjectsQuery{
		VerticalID: verticalID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Projects)
}

type AddMemberRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}

// AddMember handles POST /projects/:id/members
func (h *ProjectHandler) AddMember(c *gin.Context) {
	projectID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.addMemberUC.Execute(c.Request.Context(), usecases.AddMemberCommand{
		ProjectID: projectID,
		UserID:    req.UserID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Member added successfully")
}

// RemoveMember handles DELETE /projects/:id/members/:userId
func (h *ProjectHandler) RemoveMember(c *gin.Context) {
	projectID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if _, err := h.removeMemberUC.Execute(c.Request.Context(), usecases.RemoveMemberCommand{
		ProjectID: projectID,
		UserID:    userID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ListMembers handles GET /projects/:id/members
func (h *ProjectHandler) ListMembers(c *gin.Context) {
	projectID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listMembersUC.Execute(c.Request.Context(), usecases.ListMembersQuery{
		ProjectID: projectID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Members)
}

type LinkGithubRepoRequest struct {
	Owner  string `json:"owner" binding:"max=100"`
	Repo   string `json:"repo" binding:"max=100"`
	Unlink bool   `json:"unlink"`
}

// LinkGithubRepo handles PUT /projects/:id/github
func (h *ProjectHandler) LinkGithubRepo(c *gin.Context) {
	projectID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req LinkGithubRepoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.linkGithubUC.Execute(c.Request.Context(), usecases.LinkGithubRepoCommand{
		ProjectID: projectID,
		Owner:     req.Owner,
		Repo:      req.Repo,
		Unlink:    req.Unlink,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "GitHub repository link updated", result)
}

func parseQueryID(c *gin.Context, name string) (uint, error) {
	idStr := c.Query(name)
	if idStr == "" {
		return 0, errors.NewValidationError(name + " query parameter is required")
	}
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid " + name + " parameter")
	}
	return uint(id), nil
}
