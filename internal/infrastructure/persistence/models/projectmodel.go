package models

type ProjectModel struct {
	ID          uint   `gorm:"primaryKey"`
	VerticalID  uint   `gorm:"not null;index"`
	Name        string `gorm:"size:100;not null"`
	Description string `gorm:"type:text"`
	GithubOwner string `gorm:"size:100"`
	GithubRepo  string `gorm:"size:100"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints. Relationships are managed by
	// application business logic.
}

func (ProjectModel) TableName() string {
	return "projects"
}

type ProjectMemberModel struct {
	ID        uint  `gorm:"primaryKey"`
	ProjectID uint  `gorm:"not null;uniqueIndex:idx_project_user"`
	UserID    uint  `gorm:"not null;uniqueIndex:idx_project_user;index"`
	CreatedAt int64 `gorm:"autoCreateTime:milli;not null"`
}

func (ProjectMemberModel) TableName() string {
	return "project_members"
}
