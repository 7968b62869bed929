package task

import (
	"fmt"
	"time"

	vo "nexus/internal/domain/task/valueobjects"
)

// Task is the central ticket entity. Stories, tasks, bugs and subtasks all
// share this shape; ParentTaskID links a child to its parent ticket.
type Task struct {
	id           uint
	projectID    uint
	sprintID     *uint
	featureID    *uint
	parentTaskID *uint
	title        string
	description  string
	taskType     vo.TaskType
	status       vo.Status
	priority     vo.Priority
	storyPoints  int
	requiredRole string
	labels       []string
	creatorID    uint
	assigneeID   *uint
	reviewerID   *uint

	githubIssueNumber *int
	githubIssueID     *int64
	syncStatus        vo.SyncStatus
	syncedAt          *time.Time

	createdAt time.Time
	updatedAt time.Time

	children []*Task
}

func NewTask(
	projectID uint,
	title string,
	description string,
	taskType vo.TaskType,
	priority vo.Priority,
	creatorID uint,
) (*Task, error) {
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if !taskType.IsValid() {
		return nil, fmt.Errorf("invalid task type")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	now := time.Now()
	return &Task{
		projectID:   projectID,
		title:       title,
		description: description,
		taskType:    taskType,
		status:      vo.StatusTodo,
		priority:    priority,
		creatorID:   creatorID,
		labels:      []string{},
		syncStatus:  vo.SyncNone,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTask(
	id uint,
	projectID uint,
	sprintID *uint,
	featureID *uint,
	parentTaskID *uint,
	title string,
	description string,
	taskType vo.TaskType,
	status vo.Status,
	priority vo.Priority,
	storyPoints int,
	requiredRole string,
	labels []string,
	creatorID uint,
	assigneeID *uint,
	reviewerID *uint,
	githubIssueNumber *int,
	githubIssueID *int64,
	syncStatus vo.SyncStatus,
	syncedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Task, error) {
	if id == 0 {
		return nil, fmt.Errorf("task ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !taskType.IsValid() {
		return nil, fmt.Errorf("invalid task type")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	if labels == nil {
		labels = []string{}
	}
	if !syncStatus.IsValid() {
		syncStatus = vo.SyncNone
	}

	return &Task{
		id:                id,
		projectID:         projectID,
		sprintID:          sprintID,
		featureID:         featureID,
		parentTaskID:      parentTaskID,
		title:             title,
		description:       description,
		taskType:          taskType,
		status:            status,
		priority:          priority,
		storyPoints:       storyPoints,
		requiredRole:      requiredRole,
		labels:            labels,
		creatorID:         creatorID,
		assigneeID:        assigneeID,
		reviewerID:        reviewerID,
		githubIssueNumber: githubIssueNumber,
		githubIssueID:     githubIssueID,
		syncStatus:        syncStatus,
		syncedAt:          syncedAt,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}, nil
}

func (t *Task) ID() uint              { return t.id }
func (t *Task) ProjectID() uint       { return t.projectID }
func (t *Task) SprintID() *uint       { return t.sprintID }
func (t *Task) FeatureID() *uint      { return t.featureID }
func (t *Task) ParentTaskID() *uint   { return t.parentTaskID }
func (t *Task) Title() string         { return t.title }
func (t *Task) Description() string   { return t.description }
func (t *Task) Type() vo.TaskType     { return t.taskType }
func (t *Task) Status() vo.Status     { return t.status }
func (t *Task) Priority() vo.Priority { return t.priority }
func (t *Task) StoryPoints() int      { return t.storyPoints }
func (t *Task) RequiredRole() string  { return t.requiredRole }
func (t *Task) CreatorID() uint       { return t.creatorID }
func (t *Task) AssigneeID() *uint     { return t.assigneeID }
func (t *Task) ReviewerID() *uint     { return t.reviewerID }
func (t *Task) CreatedAt() time.Time  { return t.createdAt }
func (t *Task) UpdatedAt() time.Time  { return t.updatedAt }

func (t *Task) GithubIssueNumber() *int      { return t.githubIssueNumber }
func (t *Task) GithubIssueID() *int64        { return t.githubIssueID }
func (t *Task) SyncStatus() vo.SyncStatus    { return t.syncStatus }
func (t *Task) SyncedAt() *time.Time         { return t.syncedAt }

func (t *Task) Labels() []string {
	labelsCopy := make([]string, len(t.labels))
	copy(labelsCopy, t.labels)
	return labelsCopy
}

func (t *Task) Children() []*Task {
	childrenCopy := make([]*Task, len(t.children))
	copy(childrenCopy, t.children)
	return childrenCopy
}

// ChildStatuses returns the statuses of the loaded children, in order.
func (t *Task) ChildStatuses() []vo.Status {
	statuses := make([]vo.Status, len(t.children))
	for i, c := range t.children {
		statuses[i] = c.Status()
	}
	return statuses
}

func (t *Task) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("task ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("task ID cannot be zero")
	}
	t.id = id
	return nil
}

// AttachChildren replaces the loaded child list. The repository calls this
// after loading direct children.
func (t *Task) AttachChildren(children []*Task) {
	t.children = children
}

func (t *Task) SetParent(parentTaskID uint) error {
	if parentTaskID == 0 {
		return fmt.Errorf("parent task ID cannot be zero")
	}
	if parentTaskID == t.id && t.id != 0 {
		return fmt.Errorf("task cannot be its own parent")
	}
	t.parentTaskID = &parentTaskID
	t.touch()
	return nil
}

func (t *Task) MoveToSprint(sprintID *uint) {
	t.sprintID = sprintID
	t.touch()
}

func (t *Task) AssignToFeature(featureID *uint) {
	t.featureID = featureID
	t.touch()
}

// ChangeStatus moves the ticket on the board. The kanban allows any
// transition between valid statuses; invalid values are rejected.
func (t *Task) ChangeStatus(newStatus vo.Status) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}
	if t.status == newStatus {
		return nil
	}
	t.status = newStatus
	t.touch()
	return nil
}

// ApplyDerivedStatus applies a status computed from subtask completion. A
// ticket a user marked done is never reverted by recomputation; only an
// explicit ChangeStatus may move it off done.
func (t *Task) ApplyDerivedStatus(derived vo.Status) (changed bool) {
	if t.status.IsDone() {
		return false
	}
	if t.status == derived {
		return false
	}
	t.status = derived
	t.touch()
	return true
}

func (t *Task) ChangePriority(newPriority vo.Priority) error {
	if !newPriority.IsValid() {
		return fmt.Errorf("invalid priority: %s", newPriority)
	}
	if t.priority == newPriority {
		return nil
	}
	t.priority = newPriority
	t.touch()
	return nil
}

func (t *Task) AssignTo(assigneeID uint) error {
	if assigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}
	t.assigneeID = &assigneeID
	t.touch()
	return nil
}

func (t *Task) Unassign() {
	t.assigneeID = nil
	t.touch()
}

func (t *Task) SetReviewer(reviewerID uint) error {
	if reviewerID == 0 {
		return fmt.Errorf("reviewer ID cannot be zero")
	}
	t.reviewerID = &reviewerID
	t.touch()
	return nil
}

func (t *Task) UpdateDetails(title, description string) error {
	if len(title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	t.title = title
	t.description = description
	t.touch()
	return nil
}

func (t *Task) SetStoryPoints(points int) error {
	if points < 0 {
		return fmt.Errorf("story points cannot be negative")
	}
	t.storyPoints = points
	t.touch()
	return nil
}

func (t *Task) SetRequiredRole(role string) {
	t.requiredRole = role
	t.touch()
}

func (t *Task) SetLabels(labels []string) {
	if labels == nil {
		labels = []string{}
	}
	t.labels = labels
	t.touch()
}

// MarkSynced records a successful push of this ticket to GitHub.
func (t *Task) MarkSynced(issueNumber int, issueID int64) {
	t.githubIssueNumber = &issueNumber
	t.githubIssueID = &issueID
	t.syncStatus = vo.SyncSynced
	now := time.Now()
	t.syncedAt = &now
	t.touch()
}

func (t *Task) MarkSyncFailed() {
	t.syncStatus = vo.SyncFailed
	t.touch()
}

func (t *Task) MarkSyncPending() {
	t.syncStatus = vo.SyncPending
	t.touch()
}

func (t *Task) touch() {
	t.updatedAt = time.Now()
}
