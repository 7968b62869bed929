package models

import "gorm.io/datatypes"

type TaskModel struct {
	ID           uint   `gorm:"primaryKey"`
	ProjectID    uint   `gorm:"not null;index"`
	SprintID     *uint  `gorm:"index"`
	FeatureID    *uint  `gorm:"index"`
	ParentTaskID *uint  `gorm:"index"`
	Title        string `gorm:"size:200;not null"`
	Description  string `gorm:"type:text"`
	Type         string `gorm:"size:20;not null;index"`
	Status       string `gorm:"size:20;not null;index"`
	Priority     string `gorm:"size:20;not null;index"`
	StoryPoints  int    `gorm:"not null;default:0"`
	RequiredRole string `gorm:"size:50"`
	Labels       datatypes.JSON
	CreatorID    uint  `gorm:"not null;index"`
	AssigneeID   *uint `gorm:"index"`
	ReviewerID   *uint `gorm:"index"`

	GithubIssueNumber *int
	GithubIssueID     *int64
	SyncStatus        string `gorm:"size:20;not null;default:none"`
	SyncedAt          *int64

	CreatedAt int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64 `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints. The parent/child hierarchy and
	// sprint/feature membership are managed by application business logic.
}

func (TaskModel) TableName() string {
	return "tasks"
}

type TaskCommentModel struct {
	ID        uint   `gorm:"primaryKey"`
	TaskID    uint   `gorm:"not null;index"`
	UserID    uint   `gorm:"not null;index"`
	Content   string `gorm:"type:text;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (TaskCommentModel) TableName() string {
	return "task_comments"
}

type TaskAttachmentModel struct {
	ID          uint   `gorm:"primaryKey"`
	TaskID      uint   `gorm:"not null;index"`
	UserID      uint   `gorm:"not null;index"`
	FileName    string `gorm:"size:255;not null"`
	ContentType string `gorm:"size:100"`
	Size        int64  `gorm:"not null"`
	StoragePath string `gorm:"size:255;not null"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
}

func (TaskAttachmentModel) TableName() string {
	return "task_attachments"
}
