package task

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexus/internal/application/task/usecases"
	"nexus/internal/interfaces/http/handlers/testutil"
	"nexus/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockCreateTaskUC struct {
	result *usecases.CreateTaskResult
	err    error
}

func (m *mockCreateTaskUC) Execute(_ context.Context, _ usecases.CreateTaskCommand) (*usecases.CreateTaskResult, error) {
	return m.result, m.err
}

type mockUpdateTaskUC struct {
	result *usecases.UpdateTaskResult
	err    error
}

func (m *mockUpdateTaskUC) Execute(_ context.Context, _ usecases.UpdateTaskCommand) (*usecases.UpdateTaskResult, error) {
	return m.result, m.err
}

type mockChangeStatusUC struct {
	result *usecases.ChangeTaskStatusResult
	err    error
}

func (m *mockChangeStatusUC) Execute(_ context.Context, _ usecases.ChangeTaskStatusCommand) (*usecases.ChangeTaskStatusResult, error) {
	return m.result, m.err
}

type mockAssignTaskUC struct {
	result *usecases.AssignTaskResult
	err    error
}

func (m *mockAssignTaskUC) Execute(_ context.Context, _ usecases.AssignTaskCommand) (*usecases.AssignTaskResult, error) {
	return m.result, m.err
}

type mockDeleteTaskUC struct {
	result *usecases.DeleteTaskResult
	err    error
}

func (m *mockDeleteTaskUC) Execute(_ context.Context, _ usecases.DeleteTaskCommand) (*usecases.DeleteTaskResult, error) {
	return m.result, m.err
}

type mockGetTaskUC struct {
	result *usecases.TaskDTO
	err    error
}

func (m *mockGetTaskUC) Execute(_ context.Context, _ usecases.GetTaskQuery) (*usecases.TaskDTO, error) {
	return m.result, m.err
}

type mockListTasksUC struct {
	result *usecases.ListTasksResult
	err    error
}

func (m *mockListTasksUC) Execute(_ context.Context, _ usecases.ListTasksQuery) (*usecases.ListTasksResult, error) {
	return m.result, m.err
}

type mockAddCommentUC struct {
	result *usecases.AddCommentResult
	err    error
}

func (m *mockAddCommentUC) Execute(_ context.Context, _ usecases.AddCommentCommand) (*usecases.AddCommentResult, error) {
	return m.result, m.err
}

type mockListCommentsUC struct {
	result *usecases.ListCommentsResult
	err    error
}

func (m *mockListCommentsUC) Execute(_ context.Context, _ usecases.ListCommentsQuery) (*usecases.ListCommentsResult, error) {
	return m.result, m.err
}

type mockDeleteCommentUC struct {
	result *usecases.DeleteCommentResult
	err    error
}

func (m *mockDeleteCommentUC) Execute(_ context.Context, _ usecases.DeleteCommentCommand) (*usecases.DeleteCommentResult, error) {
	return m.result, m.err
}

type mockPushGithubUC struct {
	result *usecases.PushTaskToGithubResult
	err    error
}

func (m *mockPushGithubUC) Execute(_ context.Context, _ usecases.PushTaskToGithubCommand) (*usecases.PushTaskToGithubResult, error) {
	return m.result, m.err
}

type mockPullGithubUC struct {
	result *usecases.PullGithubStatusResult
	err    error
}

func (m *mockPullGithubUC) Execute(_ context.Context, _ usecases.PullGithubStatusCommand) (*usecases.PullGithubStatusResult, error) {
	return m.result, m.err
}

// =====================================================================
// Test helper
// =====================================================================

type testDeps struct {
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
	pushGithubUC   usecases.PushTaskToGithubExecutor
	pullGithubUC   usecases.PullGithubStatusExecutor
}

func newTestTaskHandler(deps testDeps) *TaskHandler {
	return NewTaskHandler(
		deps.createTaskUC,
		deps.updateTaskUC,
		deps.changeStatusUC,
		deps.assignTaskUC,
		deps.deleteTaskUC,
		deps.getTaskUC,
		deps.listTasksUC,
		deps.addCommentUC,
		deps.listCommentsUC,
		deps.delCommentUC,
		nil, // uploadUC
		nil, // listAttachUC
		nil, // downloadUC
		nil, // delAttachUC
		deps.pushGithubUC,
		deps.pullGithubUC,
	)
}

// =====================================================================
// TestTaskHandler_CreateTask
// =====================================================================

func TestTaskHandler_CreateTask_Success(t *testing.T) {
	now := time.Now().UTC()
	mockUC := &mockCreateTaskUC{
		result: &usecases.CreateTaskResult{
			TaskID:    1,
			Status:    "todo",
			CreatedAt: now,
		},
	}
	handler := newTestTaskHandler(testDeps{createTaskUC: mockUC})

	reqBody := map[string]interface{}{
		"project_id": 1,
		"title":      "Implement login flow",
		"type":       "story",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/tasks", reqBody)
	testutil.SetAuthContext(c, 1)

	handler.CreateTask(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "Task created successfully", resp.Message)
}

func TestTaskHandler_CreateTask_BindError(t *testing.T) {
	handler := newTestTaskHandler(testDeps{})

	// Missing required project_id and type
	reqBody := map[string]string{"title": "only title"}
	c, w := testutil.NewTestContext(http.MethodPost, "/tasks", reqBody)
	testutil.SetAuthContext(c, 1)

	handler.CreateTask(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.False(t, resp.Success)
}

func TestTaskHandler_CreateTask_InvalidType(t *testing.T) {
	handler := newTestTaskHandler(testDeps{})

	reqBody := map[string]interface{}{
		"project_id": 1,
		"title":      "A task",
		"type":       "epic",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/tasks", reqBody)
	testutil.SetAuthContext(c, 1)

	handler.CreateTask(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTaskHandler_CreateTask_UseCaseError(t *testing.T) {
	mockUC := &mockCreateTaskUC{err: errors.NewNotFoundError("project not found")}
	handler := newTestTaskHandler(testDeps{createTaskUC: mockUC})

	reqBody := map[string]interface{}{
		"project_id": 99,
		"title":      "A task",
		"type":       "task",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/tasks", reqBody)
	testutil.SetAuthContext(c, 1)

	handler.CreateTask(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// =====================================================================
// TestTaskHandler_GetTask
// =====================================================================

func TestTaskHandler_GetTask_Success(t *testing.T) {
	mockUC := &mockGetTaskUC{
		result: &usecases.TaskDTO{
			ID:        1,
			ProjectID: 1,
			Title:     "Implement login flow",
			Type:      "story",
			Status:    "todo",
		},
	}
	handler := newTestTaskHandler(testDeps{getTaskUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/tasks/1", nil)
	testutil.SetURLParam(c, "id", "1")

	handler.GetTask(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestTaskHandler_GetTask_InvalidID(t *testing.T) {
	handler := newTestTaskHandler(testDeps{})

	c, w := testutil.NewTestContext(http.MethodGet, "/tasks/abc", nil)
	testutil.SetURLParam(c, "id", "abc")

	handler.GetTask(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTaskHandler_GetTask_ZeroID(t *testing.T) {
	handler := newTestTaskHandler(testDeps{})

	c, w := testutil.NewTestContext(http.MethodGet, "/tasks/0", nil)
	testutil.SetURLParam(c, "id", "0")

	handler.GetTask(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTaskHandler_GetTask_NotFound(t *testing.T) {
	mockUC := &mockGetTaskUC{err: errors.NewNotFoundError("task not found")}
	handler := newTestTaskHandler(testDeps{getTaskUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/tasks/99", nil)
	testutil.SetURLParam(c, "id", "99")

	handler.GetTask(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// =====================================================================
// TestTaskHandler_ListTasks
// =====================================================================

func TestTaskHandler_ListTasks_Success(t *testing.T) {
	mockUC := &mockListTasksUC{
		result: &usecases.ListTasksResult{
			Tasks: []usecases.TaskDTO{
				{ID: 1, Title: "First"},
				{ID: 2, Title: "Second"},
			},
			Total:    2,
			Page:     1,
			PageSize: 20,
		},
	}
	handler := newTestTaskHandler(testDeps{listTasksUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/tasks", nil)

	handler.ListTasks(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestTaskHandler_ListTasks_WithFilters(t *testing.T) {
	mockUC := &mockListTasksUC{
		result: &usecases.ListTasksResult{Tasks: []usecases.TaskDTO{}, Page: 1, PageSize: 20},
	}
	handler := newTestTaskHandler(testDeps{listTasksUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/tasks", nil)
	testutil.SetQueryParams(c, map[string]string{
		"project_id": "1",
		"sprint_id":  "2",
		"status":     "progress",
		"top_level":  "true",
	})

	handler.ListTasks(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTaskHandler_ListTasks_InvalidFilterID(t *testing.T) {
	handler := newTestTaskHandler(testDeps{})

	c, w := testutil.NewTestContext(http.MethodGet, "/tasks", nil)
	testutil.SetQueryParams(c, map[string]string{"assignee_id": "abc"})

	handler.ListTasks(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTaskHandler_ListTasks_UseCaseError(t *testing.T) {
	mockUC := &mockListTasksUC{err: errors.NewInternalError("database unavailable")}
	handler := newTestTaskHandler(testDeps{listTasksUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/tasks", nil)

	handler.ListTasks(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

// =====================================================================
// TestTaskHandler_UpdateTask
// =====================================================================

func TestTaskHandler_UpdateTask_Success(t *testing.T) {
	mockUC := &mockUpdateTaskUC{result: &usecases.UpdateTaskResult{TaskID: 1}}
	handler := newTestTaskHandler(testDeps{updateTaskUC: mockUC})

	reqBody := map[string]interface{}{"title": "Renamed task", "priority": "high"}
	c, w := testutil.NewTestContext(http.MethodPut, "/tasks/1", reqBody)
	testutil.SetURLParam(c, "id", "1")

	handler.UpdateTask(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestTaskHandler_UpdateTask_InvalidPriority(t *testing.T) {
	handler := newTestTaskHandler(testDeps{})

	reqBody := map[string]interface{}{"priority": "urgent"}
	c, w := testutil.NewTestContext(http.MethodPut, "/tasks/1", reqBody)
	testutil.SetURLParam(c, "id", "1")

	handler.UpdateTask(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =====================================================================
// TestTaskHandler_ChangeStatus
// =====================================================================

func TestTaskHandler_ChangeStatus_Success(t *testing.T) {
	mockUC := &mockChangeStatusUC{
		result: &usecases.ChangeTaskStatusResult{TaskID: 1, Status: "done"},
	}
	handler := newTestTaskHandler(testDeps{changeStatusUC: mockUC})

	reqBody := map[string]string{"status": "done"}
	c, w := testutil.NewTestContext(http.MethodPut, "/tasks/1/status", reqBody)
	testutil.SetURLParam(c, "id", "1")

	handler.ChangeStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "Task status updated", resp.Message)
}

func TestTaskHandler_ChangeStatus_InvalidStatus(t *testing.T) {
	handler := newTestTaskHandler(testDeps{})

	reqBody := map[string]string{"status": "in_progress"}
	c, w := testutil.NewTestContext(http.MethodPut, "/tasks/1/status", reqBody)
	testutil.SetURLParam(c, "id", "1")

	handler.ChangeStatus(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTaskHandler_ChangeStatus_AllValidStatuses(t *testing.T) {
	statuses := []string{"todo", "progress", "review", "done"}

	for _, status := range statuses {
		t.Run(status, func(t *testing.T) {
			mockUC := &mockChangeStatusUC{
				result: &usecases.ChangeTaskStatusResult{TaskID: 1, Status: status},
			}
			handler := newTestTaskHandler(testDeps{changeStatusUC: mockUC})

			reqBody := map[string]string{"status": status}
			c, w := testutil.NewTestContext(http.MethodPut, "/tasks/1/status", reqBody)
			testutil.SetURLParam(c, "id", "1")

			handler.ChangeStatus(c)

			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

// =====================================================================
// TestTaskHandler_AssignTask
// =====================================================================

func TestTaskHandler_AssignTask_Success(t *testing.T) {
	assigneeID := uint(5)
	mockUC := &mockAssignTaskUC{
		result: &usecases.AssignTaskResult{TaskID: 1, AssigneeID: &assigneeID},
	}
	handler := newTestTaskHandler(testDeps{assignTaskUC: mockUC})

	reqBody := map[string]interface{}{"assignee_id": 5}
	c, w := testutil.NewTestContext(http.MethodPut, "/tasks/1/assignee", reqBody)
	testutil.SetURLParam(c, "id", "1")

	handler.AssignTask(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTaskHandler_AssignTask_Unassign(t *testing.T) {
	mockUC := &mockAssignTaskUC{
		result: &usecases.AssignTaskResult{TaskID: 1, AssigneeID: nil},
	}
	handler := newTestTaskHandler(testDeps{assignTaskUC: mockUC})

	reqBody := map[string]interface{}{"assignee_id": nil}
	c, w := testutil.NewTestContext(http.MethodPut, "/tasks/1/assignee", reqBody)
	testutil.SetURLParam(c, "id", "1")

	handler.AssignTask(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTaskHandler_AssignTask_UseCaseError(t *testing.T) {
	mockUC := &mockAssignTaskUC{err: errors.NewNotFoundError("user not found")}
	handler := newTestTaskHandler(testDeps{assignTaskUC: mockUC})

	reqBody := map[string]interface{}{"assignee_id": 99}
	c, w := testutil.NewTestContext(http.MethodPut, "/tasks/1/assignee", reqBody)
	testutil.SetURLParam(c, "id", "1")

	handler.AssignTask(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// =====================================================================
// TestTaskHandler_DeleteTask
// =====================================================================

func TestTaskHandler_DeleteTask_Success(t *testing.T) {
	mockUC := &mockDeleteTaskUC{result: &usecases.DeleteTaskResult{TaskID: 1}}
	handler := newTestTaskHandler(testDeps{deleteTaskUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodDelete, "/tasks/1", nil)
	testutil.SetURLParam(c, "id", "1")

	handler.DeleteTask(c)

	// gin's c.Status() sets the status on the writer; use Writer.Status()
	// for a reliable check.
	assert.Equal(t, http.StatusNoContent, c.Writer.Status())
	assert.Empty(t, w.Body.String())
}

func TestTaskHandler_DeleteTask_InvalidID(t *testing.T) {
	handler := newTestTaskHandler(testDeps{})

	c, w := testutil.NewTestContext(http.MethodDelete, "/tasks/abc", nil)
	testutil.SetURLParam(c, "id", "abc")

	handler.DeleteTask(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =====================================================================
// TestTaskHandler_AddComment
// =====================================================================

func TestTaskHandler_AddComment_Success(t *testing.T) {
	now := time.Now().UTC()
	mockUC := &mockAddCommentUC{
		result: &usecases.AddCommentResult{CommentID: 1, CreatedAt: now},
	}
	handler := newTestTaskHandler(testDeps{addCommentUC: mockUC})

	reqBody := map[string]string{"content": "Looks **good** to me"}
	c, w := testutil.NewTestContext(http.MethodPost, "/tasks/1/comments", reqBody)
	testutil.SetAuthContext(c, 2)
	testutil.SetURLParam(c, "id", "1")

	handler.AddComment(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestTaskHandler_AddComment_BindError(t *testing.T) {
	handler := newTestTaskHandler(testDeps{})

	// Missing required "content" field
	reqBody := map[string]string{}
	c, w := testutil.NewTestContext(http.MethodPost, "/tasks/1/comments", reqBody)
	testutil.SetAuthContext(c, 2)
	testutil.SetURLParam(c, "id", "1")

	handler.AddComment(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =====================================================================
// TestTaskHandler_DeleteComment
// =====================================================================

func TestTaskHandler_DeleteComment_Success(t *testing.T) {
	mockUC := &mockDeleteCommentUC{result: &usecases.DeleteCommentResult{CommentID: 3}}
	handler := newTestTaskHandler(testDeps{delCommentUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodDelete, "/tasks/comments/3", nil)
	testutil.SetAuthContext(c, 2)
	testutil.SetRoleContext(c, "member")
	testutil.SetURLParam(c, "commentId", "3")

	handler.DeleteComment(c)

	assert.Equal(t, http.StatusNoContent, c.Writer.Status())
	assert.Empty(t, w.Body.String())
}

func TestTaskHandler_DeleteComment_Forbidden(t *testing.T) {
	mockUC := &mockDeleteCommentUC{err: errors.NewForbiddenError("only the author or an admin can delete a comment")}
	handler := newTestTaskHandler(testDeps{delCommentUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodDelete, "/tasks/comments/3", nil)
	testutil.SetAuthContext(c, 7)
	testutil.SetRoleContext(c, "member")
	testutil.SetURLParam(c, "commentId", "3")

	handler.DeleteComment(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

// =====================================================================
// TestTaskHandler_GithubSync
// =====================================================================

func TestTaskHandler_PushToGithub_Success(t *testing.T) {
	mockUC := &mockPushGithubUC{
		result: &usecases.PushTaskToGithubResult{TaskID: 1, IssueNumber: 42, SyncStatus: "synced"},
	}
	handler := newTestTaskHandler(testDeps{pushGithubUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/tasks/1/github/push", nil)
	testutil.SetAuthContext(c, 1)
	testutil.SetURLParam(c, "id", "1")

	handler.PushToGithub(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "Task pushed to GitHub", resp.Message)
}

func TestTaskHandler_PushToGithub_NoLinkedRepo(t *testing.T) {
	mockUC := &mockPushGithubUC{err: errors.NewValidationError("project has no linked repository")}
	handler := newTestTaskHandler(testDeps{pushGithubUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/tasks/1/github/push", nil)
	testutil.SetAuthContext(c, 1)
	testutil.SetURLParam(c, "id", "1")

	handler.PushToGithub(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTaskHandler_PullGithubStatus_Success(t *testing.T) {
	mockUC := &mockPullGithubUC{
		result: &usecases.PullGithubStatusResult{TaskID: 1, IssueState: "closed", Status: "done"},
	}
	handler := newTestTaskHandler(testDeps{pullGithubUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/tasks/1/github/pull", nil)
	testutil.SetAuthContext(c, 1)
	testutil.SetURLParam(c, "id", "1")

	handler.PullGithubStatus(c)

	assert.Equal(t, http.StatusOK, w.Code)
}
