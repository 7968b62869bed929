package task

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"nexus/internal/application/task/usecases"
	"nexus/internal/shared/errors"
	"nexus/internal/shared/logger"
	"nexus/internal/shared/utils"
)

type TaskHandler struct {
	createTaskUC   usecases.CreateTaskExecutor
	updateTaskUC   usecases.UpdateTaskExecutor
	changeStatusUC usecases.ChangeTaskStatusExecutor
	assignTaskUC   usecases.AssignTaskExecutor
	deleteTaskUC   usecases.DeleteTaskExecutor
	getTaskUC      usecases.GetTaskExecutor
	listTasksUC    usecases.ListTasksExecutor
	addCommentUC   usecases.AddCommentExecutor
	listCommentsUC usecases.ListCommentsExecutor
	delCommentUC   usecases.DeleteCommentExecutor
	uploadUC       usecases.UploadAttachmentExecutor
	listAttachUC   usecases.ListAttachmentsExecutor
	downloadUC     usecases.DownloadAttachmentExecutor
	delAttachUC    usecases.DeleteAttachmentExecutor
	pushGithubUC   usecases.PushTaskToGithubExecutor
	pullGithubUC   usecases.PullGithubStatusExecutor
	logger         logger.Interface
}

func NewTaskHandler(
	createTaskUC usecases.CreateTaskExecutor,
	updateTaskUC usecases.UpdateTaskExecutor,
	changeStatusUC usecases.ChangeTaskStatusExecutor,
	assignTaskUC usecases.AssignTaskExecutor,
	deleteTaskUC usecases.DeleteTaskExecutor,
	getTaskUC usecases.GetTaskExecutor,
	listTasksUC usecases.ListTasksExecutor,
	addCommentUC usecases.AddCommentExecutor,
	listCommentsUC usecases.ListCommentsExecutor,
	delCommentUC usecases.DeleteCommentExecutor,
	uploadUC usecases.UploadAttachmentExecutor,
	listAttachUC usecases.ListAttachmentsExecutor,
	downloadUC usecases.DownloadAttachmentExecutor,
	delAttachUC usecases.DeleteAttachmentExecutor,
	pushGithubUC usecases.PushTaskToGithubExecutor,
	pullGithubUC usecases.PullGithubStatusExecutor,
) *TaskHandler {
	return &TaskHandler{
		createTaskUC:   createTaskUC,
		updateTaskUC:   updateTaskUC,
		changeStatusUC: changeStatusUC,
		assignTaskUC:   assignTaskUC,
		deleteTaskUC:   deleteTaskUC,
		getTaskUC:      getTaskUC,
		listTasksUC:    listTasksUC,
		addCommentUC:   addCommentUC,
		listCommentsUC: listCommentsUC,
		delCommentUC:   delCommentUC,
		uploadUC:       uploadUC,
		listAttachUC:   listAttachUC,
		downloadUC:     downloadUC,
		delAttachUC:    delAttachUC,
		pushGithubUC:   pushGithubUC,
		pullGithubUC:   pullGithubUC,
		logger:         logger.NewLogger(),
	}
}

// CreateTask handles POST /tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create task", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := c.Get("user_id")
	cmd := req.ToCommand(userID.(uint))

	result, err := h.createTaskUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Task created successfully")
}

// GetTask handles GET /tasks/:id
func (h *TaskHandler) GetTask(c *gin.Context) {
	taskID, err := parseTaskID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTaskUC.Execute(c.Request.Context(), usecases.GetTaskQuery{TaskID: taskID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTasks handles GET /tasks
func (h *TaskHandler) ListTasks(c *gin.Context) {
	req, err := parseListTasksRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listTasksUC.Execute(c.Request.Context(), req.ToQuery())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tasks, result.Total, result.Page, result.PageSize)
}

// UpdateTask handles PUT /tasks/:id
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	taskID, err := parseTaskID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateTaskUC.Execute(c.Request.Context(), req.ToCommand(taskID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Task updated successfully", result)
}

// ChangeStatus handles PUT /tasks/:id/status
func (h *TaskHandler) ChangeStatus(c *gin.Context) {
	taskID, err := parseTaskID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), usecases.ChangeTaskStatusCommand{
		TaskID: taskID,
		Status: req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Task status updated", result)
}

// AssignTask handles PUT /tasks/:id/assignee
func (h *TaskHandler) AssignTask(c *gin.Context) {
	taskID, err := parseTaskID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.assignTaskUC.Execute(c.Request.Context(), usecases.AssignTaskCommand{
		TaskID:     taskID,
		AssigneeID: req.AssigneeID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Task assignment updated", result)
}

// DeleteTask handles DELETE /tasks/:id
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID, err := parseTaskID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if _, err := h.deleteTaskUC.Execute(c.Request.Context(), usecases.DeleteTaskCommand{TaskID: taskID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// AddComment handles POST /tasks/:id/comments
func (h *TaskHandler) AddComment(c *gin.Context) {
	taskID, err := parseTaskID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := c.Get("user_id")

	result, err := h.addCommentUC.Execute(c.Request.Context(), usecases.AddCommentCommand{
		TaskID:  taskID,
		UserID:  userID.(uint),
		Content: req.Content,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Comment added successfully")
}

// ListComments handles GET /tasks/:id/comments
func (h *TaskHandler) ListComments(c *gin.Context) {
	taskID, err := parseTaskID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listCommentsUC.Execute(c.Request.Context(), usecases.ListCommentsQuery{TaskID: taskID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Comments)
}

// DeleteComment handles DELETE /tasks/comments/:commentId
func (h *TaskHandler) DeleteComment(c *gin.Context) {
	commentID, err := parseUintParam(c, "commentId")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := c.Get("user_id")

	if _, err := h.delCommentUC.Execute(c.Request.Context(), usecases.DeleteCommentCommand{
		CommentID: commentID,
		UserID:    userID.(uint),
		UserRole:  c.GetString("user_role"),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// UploadAttachment handles POST /tasks/:id/attachments (multipart form, field "file")
func (h *TaskHandler) UploadAttachment(c *gin.Context) {
	taskID, err := parseTaskID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("file is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewInternalError("failed to read uploaded file"))
		return
	}
	defer file.Close()

	userID, _ := c.Get("user_id")

	result, err := h.uploadUC.Execute(c.Request.Context(), usecases.UploadAttachmentCommand{
		TaskID:      taskID,
		UserID:      userID.(uint),
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Body:        file,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Attachment uploaded successfully")
}

// ListAttachments handles GET /tasks/:id/attachments
func (h *TaskHandler) ListAttachments(c *gin.Context) {
	taskID, err := parseTaskID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listAttachUC.Execute(c.Request.Context(), usecases.ListAttachmentsQuery{TaskID: taskID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Attachments)
}

// DownloadAttachment handles GET /tasks/attachments/:attachmentId
func (h *TaskHandler) DownloadAttachment(c *gin.Context) {
	attachmentID, err := parseUintParam(c, "attachmentId")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.downloadUC.Execute(c.Request.Context(), usecases.DownloadAttachmentQuery{
		AttachmentID: attachmentID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	defer result.Body.Close()

	c.DataFromReader(http.StatusOK, result.Size, result.ContentType, result.Body, map[string]string{
		"Content-Disposition": `attachment; filename="` + result.FileName + `"`,
	})
}

// DeleteAttachment handles DELETE /tasks/attachments/:attachmentId
func (h *TaskHandler) DeleteAttachment(c *gin.Context) {
	attachmentID, err := parseUintParam(c, "attachmentId")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := c.Get("user_id")

	if _, err := h.delAttachUC.Execute(c.Request.Context(), usecases.DeleteAttachmentCommand{
		AttachmentID: attachmentID,
		UserID:       userID.(uint),
		UserRole:     c.GetString("user_role"),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// PushToGithub handles POST /tasks/:id/github/push
func (h *TaskHandler) PushToGithub(c *gin.Context) {
	taskID, err := parseTaskID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := c.Get("user_id")

	result, err := h.pushGithubUC.Execute(c.Request.Context(), usecases.PushTaskToGithubCommand{
		TaskID: taskID,
		UserID: userID.(uint),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Task pushed to GitHub", result)
}

// PullGithubStatus handles POST /tasks/:id/github/pull
func (h *TaskHandler) PullGithubStatus(c *gin.Context) {
	taskID, err := parseTaskID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := c.Get("user_id")

	result, err := h.pullGithubUC.Execute(c.Request.Context(), usecases.PullGithubStatusCommand{
		TaskID: taskID,
		UserID: userID.(uint),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "GitHub issue state synced", result)
}

func parseTaskID(c *gin.Context) (uint, error) {
	return parseUintParam(c, "id")
}

func parseUintParam(c *gin.Context, name string) (uint, error) {
	idStr := c.Param(name)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid " + name + " parameter")
	}
	return uint(id), nil
}
