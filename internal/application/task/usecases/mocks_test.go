package usecases

import (
	"context"
	"io"
	"time"

	"nexus/internal/domain/project"
	"nexus/internal/domain/task"
	vo "nexus/internal/domain/task/valueobjects"
	"nexus/internal/domain/user"
	"nexus/internal/infrastructure/github"
	"nexus/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLogger()
}

type mockTaskRepository struct {
	SaveFunc         func(ctx context.Context, t *task.Task) error
	UpdateFunc       func(ctx context.Context, t *task.Task) error
	DeleteFunc       func(ctx context.Context, taskID uint) error
	FindByIDFunc     func(ctx context.Context, taskID uint) (*task.Task, error)
	FindChildrenFunc func(ctx context.Context, parentTaskID uint) ([]*task.Task, error)
	ListFunc         func(ctx context.Context, filter task.Filter) ([]*task.Task, int64, error)
	ListBySprintFunc func(ctx context.Context, sprintID uint) ([]*task.Task, error)
}

func (m *mockTaskRepository) Save(ctx context.Context, t *task.Task) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTaskRepository) Update(ctx context.Context, t *task.Task) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTaskRepository) Delete(ctx context.Context, taskID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, taskID)
	}
	return nil
}

func (m *mockTaskRepository) FindByID(ctx context.Context, taskID uint) (*task.Task, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, taskID)
	}
	return nil, nil
}

func (m *mockTaskRepository) FindChildren(ctx context.Context, parentTaskID uint) ([]*task.Task, error) {
	if m.FindChildrenFunc != nil {
		return m.FindChildrenFunc(ctx, parentTaskID)
	}
	return nil, nil
}

func (m *mockTaskRepository) List(ctx context.Context, filter task.Filter) ([]*task.Task, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTaskRepository) ListBySprint(ctx context.Context, sprintID uint) ([]*task.Task, error) {
	if m.ListBySprintFunc != nil {
		return m.ListBySprintFunc(ctx, sprintID)
	}
	return nil, nil
}

type mockCommentRepository struct {
	SaveFunc           func(ctx context.Context, c *task.Comment) error
	FindByTaskIDFunc   func(ctx context.Context, taskID uint) ([]*task.Comment, error)
	FindByIDFunc       func(ctx context.Context, commentID uint) (*task.Comment, error)
	DeleteFunc         func(ctx context.Context, commentID uint) error
	DeleteByTaskIDFunc func(ctx context.Context, taskID uint) error
}

func (m *mockCommentRepository) Save(ctx context.Context, c *task.Comment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockCommentRepository) FindByTaskID(ctx context.Context, taskID uint) ([]*task.Comment, error) {
	if m.FindByTaskIDFunc != nil {
		return m.FindByTaskIDFunc(ctx, taskID)
	}
	return nil, nil
}

func (m *mockCommentRepository) FindByID(ctx context.Context, commentID uint) (*task.Comment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, commentID)
	}
	return nil, nil
}

func (m *mockCommentRepository) Delete(ctx context.Context, commentID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, commentID)
	}
	return nil
}

func (m *mockCommentRepository) DeleteByTaskID(ctx context.Context, taskID uint) error {
	if m.DeleteByTaskIDFunc != nil {
		return m.DeleteByTaskIDFunc(ctx, taskID)
	}
	return nil
}

type mockAttachmentRepository struct {
	SaveFunc           func(ctx context.Context, a *task.Attachment) error
	FindByTaskIDFunc   func(ctx context.Context, taskID uint) ([]*task.Attachment, error)
	FindByIDFunc       func(ctx context.Context, attachmentID uint) (*task.Attachment, error)
	DeleteFunc         func(ctx context.Context, attachmentID uint) error
	DeleteByTaskIDFunc func(ctx context.Context, taskID uint) error
}

func (m *mockAttachmentRepository) Save(ctx context.Context, a *task.Attachment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return nil
}

func (m *mockAttachmentRepository) FindByTaskID(ctx context.Context, taskID uint) ([]*task.Attachment, error) {
	if m.FindByTaskIDFunc != nil {
		return m.FindByTaskIDFunc(ctx, taskID)
	}
	return nil, nil
}

func (m *mockAttachmentRepository) FindByID(ctx context.Context, attachmentID uint) (*task.Attachment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, attachmentID)
	}
	return nil, nil
}

func (m *mockAttachmentRepository) Delete(ctx context.Context, attachmentID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, attachmentID)
	}
	return nil
}

func (m *mockAttachmentRepository) DeleteByTaskID(ctx context.Context, taskID uint) error {
	if m.DeleteByTaskIDFunc != nil {
		return m.DeleteByTaskIDFunc(ctx, taskID)
	}
	return nil
}

type mockProjectRepository struct {
	FindByIDFunc func(ctx context.Context, id uint) (*project.Project, error)
}

func (m *mockProjectRepository) Save(ctx context.Context, p *project.Project) error   { return nil }
func (m *mockProjectRepository) Update(ctx context.Context, p *project.Project) error { return nil }
func (m *mockProjectRepository) Delete(ctx context.Context, id uint) error            { return nil }

func (m *mockProjectRepository) FindByID(ctx context.Context, id uint) (*project.Project, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockProjectRepository) ListByVertical(ctx context.Context, verticalID uint) ([]*project.Project, error) {
	return nil, nil
}
func (m *mockProjectRepository) AddMember(ctx context.Context, projectID, userID uint) error {
	return nil
}
func (m *mockProjectRepository) RemoveMember(ctx context.Context, projectID, userID uint) error {
	return nil
}
func (m *mockProjectRepository) ListMemberIDs(ctx context.Context, projectID uint) ([]uint, error) {
	return nil, nil
}
func (m *mockProjectRepository) IsMember(ctx context.Context, projectID, userID uint) (bool, error) {
	return false, nil
}

type mockUserRepository struct {
	FindByIDFunc func(ctx context.Context, id uint) (*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error   { return nil }
func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error { return nil }

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) FindByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context, page, pageSize int) ([]*user.User, int64, error) {
	return nil, 0, nil
}

type mockRecalculateExecutor struct {
	ExecuteFunc func(ctx context.Context, cmd RecalculateParentStatusCommand) (*RecalculateParentStatusResult, error)
	calls       chan RecalculateParentStatusCommand
}

func newMockRecalculateExecutor() *mockRecalculateExecutor {
	return &mockRecalculateExecutor{calls: make(chan RecalculateParentStatusCommand, 8)}
}

func (m *mockRecalculateExecutor) Execute(ctx context.Context, cmd RecalculateParentStatusCommand) (*RecalculateParentStatusResult, error) {
	if m.calls != nil {
		m.calls <- cmd
	}
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, cmd)
	}
	return &RecalculateParentStatusResult{ParentTaskID: cmd.ParentTaskID}, nil
}

type mockIssueSyncer struct {
	CreateIssueFunc func(ctx context.Context, token, owner, repo, title, body string, labels []string) (*github.Issue, error)
	GetIssueFunc    func(ctx context.Context, token, owner, repo string, number int) (*github.Issue, error)
}

func (m *mockIssueSyncer) CreateIssue(ctx context.Context, token, owner, repo, title, body string, labels []string) (*github.Issue, error) {
	if m.CreateIssueFunc != nil {
		return m.CreateIssueFunc(ctx, token, owner, repo, title, body, labels)
	}
	return &github.Issue{Number: 1}, nil
}

func (m *mockIssueSyncer) GetIssue(ctx context.Context, token, owner, repo string, number int) (*github.Issue, error) {
	if m.GetIssueFunc != nil {
		return m.GetIssueFunc(ctx, token, owner, repo, number)
	}
	return &github.Issue{Number: number, State: "open"}, nil
}

type mockBlobStore struct {
	SaveFunc   func(fileName string, r io.Reader) (string, int64, error)
	OpenFunc   func(storagePath string) (io.ReadCloser, error)
	DeleteFunc func(storagePath string) error
}

func (m *mockBlobStore) MaxSize() int64 { return 1 << 20 }

func (m *mockBlobStore) Save(fileName string, r io.Reader) (string, int64, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(fileName, r)
	}
	return "blobs/" + fileName, 42, nil
}

func (m *mockBlobStore) Open(storagePath string) (io.ReadCloser, error) {
	if m.OpenFunc != nil {
		return m.OpenFunc(storagePath)
	}
	return io.NopCloser(nil), nil
}

func (m *mockBlobStore) Delete(storagePath string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(storagePath)
	}
	return nil
}

// makeTask builds a reconstructed ticket for tests. Children are attached
// separately via AttachChildren.
func makeTask(id uint, taskType vo.TaskType, status vo.Status, parentID *uint) *task.Task {
	created := time.Now().Add(-time.Hour)
	t, err := task.ReconstructTask(
		id, 1, nil, nil, parentID,
		"ticket", "", taskType, status, vo.PriorityMedium,
		0, "", nil, 1, nil, nil,
		nil, nil, vo.SyncNone, nil,
		created, created,
	)
	if err != nil {
		panic(err)
	}
	return t
}
