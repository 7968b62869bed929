package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexus/internal/application/sprint/usecases"
	"nexus/internal/interfaces/http/handlers/testutil"
	"nexus/internal/shared/errors"
)

type mockCreateSprintUC struct {
	result *usecases.CreateSprintResult
	err    error
}

func (m *mockCreateSprintUC) Execute(_ context.Context, _ usecases.CreateSprintCommand) (*usecases.CreateSprintResult, error) {
	return m.result, m.err
}

type mockActivateSprintUC struct {
	result *usecases.ActivateSprintResult
	err    error
}

func (m *mockActivateSprintUC) Execute(_ context.Context, _ usecases.ActivateSprintCommand) (*usecases.ActivateSprintResult, error) {
	return m.result, m.err
}

type mockCompleteSprintUC struct {
	result *usecases.CompleteSprintResult
	err    error
}

func (m *mockCompleteSprintUC) Execute(_ context.Context, _ usecases.CompleteSprintCommand) (*usecases.CompleteSprintResult, error) {
	return m.result, m.err
}

type mockMoveTaskUC struct {
	result *usecases.MoveTaskResult
	err    error
}

func (m *mockMoveTaskUC) Execute(_ context.Context, _ usecases.MoveTaskCommand) (*usecases.MoveTaskResult, error) {
	return m.result, m.err
}

type mockSprintProgressUC struct {
	result *usecases.SprintProgressDTO
	err    error
}

func (m *mockSprintProgressUC) Execute(_ context.Context, _ usecases.GetSprintProgressQuery) (*usecases.SprintProgressDTO, error) {
	return m.result, m.err
}

type mockListSprintsUC struct {
	result *usecases.ListSprintsResult
	err    error
}

func (m *mockListSprintsUC) Execute(_ context.Context, _ usecases.ListSprintsQuery) (*usecases.ListSprintsResult, error) {
	return m.result, m.err
}

type sprintTestDeps struct {
	createUC   usecases.CreateSprintExecutor
	activateUC usecases.ActivateSprintExecutor
	completeUC usecases.CompleteSprintExecutor
	moveTaskUC usecases.MoveTaskExecutor
	progressUC usecases.GetSprintProgressExecutor
	listUC     usecases.ListSprintsExecutor
}

func newTestSprintHandler(deps sprintTestDeps) *SprintHandler {
	return NewSprintHandler(
		deps.createUC,
		deps.activateUC,
		deps.completeUC,
		deps.moveTaskUC,
		deps.progressUC,
		deps.listUC,
	)
}

// =====================================================================
// TestSprintHandler_CreateSprint
// =====================================================================

func TestSprintHandler_CreateSprint_Success(t *testing.T) {
	mockUC := &mockCreateSprintUC{
		result: &usecases.CreateSprintResult{
			SprintID:  1,
			Status:    "planned",
			CreatedAt: time.Now().UTC(),
		},
	}
	handler := newTestSprintHandler(sprintTestDeps{createUC: mockUC})

	reqBody := map[string]interface{}{
		"project_id": 1,
		"name":       "Sprint 7",
		"goal":       "Ship onboarding",
		"start_date": "2026-09-07",
		"end_date":   "2026-09-21",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/sprints", reqBody)
	testutil.SetAuthContext(c, 1)

	handler.CreateSprint(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "Sprint created successfully", resp.Message)
}

func TestSprintHandler_CreateSprint_BadDateFormat(t *testing.T) {
	handler := newTestSprintHandler(sprintTestDeps{})

	reqBody := map[string]interface{}{
		"project_id": 1,
		"name":       "Sprint 7",
		"start_date": "07/09/2026",
		"end_date":   "2026-09-21",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/sprints", reqBody)
	testutil.SetAuthContext(c, 1)

	handler.CreateSprint(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "start_date must be in YYYY-MM-DD format", resp.Error.Message)
}

func TestSprintHandler_CreateSprint_BindError(t *testing.T) {
	handler := newTestSprintHandler(sprintTestDeps{})

	// Missing required name and dates
	reqBody := map[string]interface{}{"project_id": 1}
	c, w := testutil.NewTestContext(http.MethodPost, "/sprints", reqBody)
	testutil.SetAuthContext(c, 1)

	handler.CreateSprint(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSprintHandler_CreateSprint_UseCaseError(t *testing.T) {
	mockUC := &mockCreateSprintUC{err: errors.NewValidationError("end_date must be after start_date")}
	handler := newTestSprintHandler(sprintTestDeps{createUC: mockUC})

	reqBody := map[string]interface{}{
		"project_id": 1,
		"name":       "Sprint 7",
		"start_date": "2026-09-21",
		"end_date":   "2026-09-07",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/sprints", reqBody)
	testutil.SetAuthContext(c, 1)

	handler.CreateSprint(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =====================================================================
// TestSprintHandler_ActivateSprint
// =====================================================================

func TestSprintHandler_ActivateSprint_Success(t *testing.T) {
	mockUC := &mockActivateSprintUC{
		result: &usecases.ActivateSprintResult{SprintID: 1, Status: "active"},
	}
	handler := newTestSprintHandler(sprintTestDeps{activateUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/sprints/1/activate", nil)
	testutil.SetURLParam(c, "id", "1")

	handler.ActivateSprint(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "Sprint activated", resp.Message)
}

func TestSprintHandler_ActivateSprint_AlreadyActive(t *testing.T) {
	mockUC := &mockActivateSprintUC{err: errors.NewConflictError("project already has an active sprint")}
	handler := newTestSprintHandler(sprintTestDeps{activateUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/sprints/1/activate", nil)
	testutil.SetURLParam(c, "id", "1")

	handler.ActivateSprint(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSprintHandler_ActivateSprint_InvalidID(t *testing.T) {
	handler := newTestSprintHandler(sprintTestDeps{})

	c, w := testutil.NewTestContext(http.MethodPost, "/sprints/abc/activate", nil)
	testutil.SetURLParam(c, "id", "abc")

	handler.ActivateSprint(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =====================================================================
// TestSprintHandler_CompleteSprint
// =====================================================================

func TestSprintHandler_CompleteSprint_Success(t *testing.T) {
	mockUC := &mockCompleteSprintUC{
		result: &usecases.CompleteSprintResult{
			SprintID:    1,
			Status:      "completed",
			CompletedAt: time.Now().UTC(),
		},
	}
	handler := newTestSprintHandler(sprintTestDeps{completeUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodPost, "/sprints/1/complete", nil)
	testutil.SetURLParam(c, "id", "1")

	handler.CompleteSprint(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

// =====================================================================
// TestSprintHandler_MoveTask
// =====================================================================

func TestSprintHandler_MoveTask_Success(t *testing.T) {
	targetSprint := uint(2)
	mockUC := &mockMoveTaskUC{
		result: &usecases.MoveTaskResult{TaskID: 10, SprintID: &targetSprint},
	}
	handler := newTestSprintHandler(sprintTestDeps{moveTaskUC: mockUC})

	reqBody := map[string]interface{}{"task_id": 10, "sprint_id": 2}
	c, w := testutil.NewTestContext(http.MethodPost, "/sprints/move-task", reqBody)

	handler.MoveTask(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "Task moved", resp.Message)
}

func TestSprintHandler_MoveTask_ToBacklog(t *testing.T) {
	mockUC := &mockMoveTaskUC{
		result: &usecases.MoveTaskResult{TaskID: 10, SprintID: nil},
	}
	handler := newTestSprintHandler(sprintTestDeps{moveTaskUC: mockUC})

	reqBody := map[string]interface{}{"task_id": 10, "sprint_id": nil}
	c, w := testutil.NewTestContext(http.MethodPost, "/sprints/move-task", reqBody)

	handler.MoveTask(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSprintHandler_MoveTask_BindError(t *testing.T) {
	handler := newTestSprintHandler(sprintTestDeps{})

	// Missing required task_id
	reqBody := map[string]interface{}{"sprint_id": 2}
	c, w := testutil.NewTestContext(http.MethodPost, "/sprints/move-task", reqBody)

	handler.MoveTask(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSprintHandler_MoveTask_CrossProject(t *testing.T) {
	mockUC := &mockMoveTaskUC{err: errors.NewValidationError("sprint belongs to a different project")}
	handler := newTestSprintHandler(sprintTestDeps{moveTaskUC: mockUC})

	reqBody := map[string]interface{}{"task_id": 10, "sprint_id": 99}
	c, w := testutil.NewTestContext(http.MethodPost, "/sprints/move-task", reqBody)

	handler.MoveTask(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// =====================================================================
// TestSprintHandler_GetSprintProgress
// =====================================================================

func TestSprintHandler_GetSprintProgress_Success(t *testing.T) {
	mockUC := &mockSprintProgressUC{
		result: &usecases.SprintProgressDTO{
			SprintID:      1,
			Name:          "Sprint 7",
			Status:        "active",
			ProgressLabel: "On track",
			ProgressColor: "green",
		},
	}
	handler := newTestSprintHandler(sprintTestDeps{progressUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/sprints/1/progress", nil)
	testutil.SetURLParam(c, "id", "1")

	handler.GetSprintProgress(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	err := testutil.ParseResponse(w, &resp)
	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestSprintHandler_GetSprintProgress_NotFound(t *testing.T) {
	mockUC := &mockSprintProgressUC{err: errors.NewNotFoundError("sprint not found")}
	handler := newTestSprintHandler(sprintTestDeps{progressUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/sprints/99/progress", nil)
	testutil.SetURLParam(c, "id", "99")

	handler.GetSprintProgress(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// =====================================================================
// TestSprintHandler_ListSprints
// =====================================================================

func TestSprintHandler_ListSprints_Success(t *testing.T) {
	mockUC := &mockListSprintsUC{
		result: &usecases.ListSprintsResult{
			Sprints: []usecases.SprintDTO{
				{ID: 1, ProjectID: 1, Name: "Sprint 6", Status: "completed"},
				{ID: 2, ProjectID: 1, Name: "Sprint 7", Status: "active"},
			},
		},
	}
	handler := newTestSprintHandler(sprintTestDeps{listUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/sprints", nil)
	testutil.SetQueryParams(c, map[string]string{"project_id": "1"})

	handler.ListSprints(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSprintHandler_ListSprints_MissingProjectID(t *testing.T) {
	handler := newTestSprintHandler(sprintTestDeps{})

	c, w := testutil.NewTestContext(http.MethodGet, "/sprints", nil)

	handler.ListSprints(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
