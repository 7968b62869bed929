package models

type SprintModel struct {
	ID          uint   `gorm:"primaryKey"`
	ProjectID   uint   `gorm:"not null;index"`
	Name        string `gorm:"size:100;not null"`
	Goal        string `gorm:"type:text"`
	Status      string `gorm:"size:20;not null;index"`
	StartDate   int64  `gorm:"not null"`
	EndDate     int64  `gorm:"not null"`
	CompletedAt *int64
	CreatedAt   int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (SprintModel) TableName() string {
	return "sprints"
}
