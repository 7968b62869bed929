package task

import (
	"fmt"
	"time"
)

// Attachment is a file uploaded against a ticket. The bytes live on disk
// under StoragePath; the row records metadata only.
type Attachment struct {
	id          uint
	taskID      uint
	userID      uint
	fileName    string
	contentType string
	size        int64
	storagePath string
	createdAt   time.Time
}

func NewAttachment(taskID, userID uint, fileName, contentType string, size int64, storagePath string) (*Attachment, error) {
	if taskID == 0 {
		return nil, fmt.Errorf("task ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(fileName) == 0 {
		return nil, fmt.Errorf("file name is required")
	}
	if size <= 0 {
		return nil, fmt.Errorf("file size must be positive")
	}
	if len(storagePath) == 0 {
		return nil, fmt.Errorf("storage path is required")
	}

	return &Attachment{
		taskID:      taskID,
		userID:      userID,
		fileName:    fileName,
		contentType: contentType,
		size:        size,
		storagePath: storagePath,
		createdAt:   time.Now(),
	}, nil
}

func ReconstructAttachment(id, taskID, userID uint, fileName, contentType string, size int64, storagePath string, createdAt time.Time) (*Attachment, error) {
	if id == 0 {
		return nil, fmt.Errorf("attachment ID cannot be zero")
	}
	if taskID == 0 {
		return nil, fmt.Errorf("task ID is required")
	}

	return &Attachment{
		id:          id,
		taskID:      taskID,
		userID:      userID,
		fileName:    fileName,
		contentType: contentType,
		size:        size,
		storagePath: storagePath,
		createdAt:   createdAt,
	}, nil
}

func (a *Attachment) ID() uint            { return a.id }
func (a *Attachment) TaskID() uint        { return a.taskID }
func (a *Attachment) UserID() uint        { return a.userID }
func (a *Attachment) FileName() string    { return a.fileName }
func (a *Attachment) ContentType() string { return a.contentType }
func (a *Attachment) Size() int64         { return a.size }
func (a *Attachment) StoragePath() string { return a.storagePath }
func (a *Attachment) CreatedAt() time.Time { return a.createdAt }

func (a *Attachment) GetOwnerID() uint { return a.userID }

func (a *Attachment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("attachment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("attachment ID cannot be zero")
	}
	a.id = id
	return nil
}
