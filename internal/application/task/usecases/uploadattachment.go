package usecases

import (
	"context"
	"io"
	"time"

	"nexus/internal/domain/task"
	"nexus/internal/shared/errors"
	"nexus/internal/shared/logger"
)

// BlobStore persists attachment payloads outside the relational store.
type BlobStore interface {
	MaxSize() int64
	Save(fileName string, r io.Reader) (storagePath string, size int64, err error)
	Open(storagePath string) (io.ReadCloser, error)
	Delete(storagePath string) error
}

type UploadAttachmentCommand struct {
	TaskID      uint
	UserID      uint
	FileName    string
	ContentType string
	Body        io.Reader
}

type UploadAttachmentResult struct {
	AttachmentID uint
	FileName     string
	Size         int64
	CreatedAt    time.Time
}

type UploadAttachmentUseCase struct {
	taskRepo       task.Repository
	attachmentRepo task.AttachmentRepository
	store          BlobStore
	logger         logger.Interface
}

func NewUploadAttachmentUseCase(
	taskRepo task.Repository,
	attachmentRepo task.AttachmentRepository,
	store BlobStore,
	logger logger.Interface,
) *UploadAttachmentUseCase {
	return &UploadAttachmentUseCase{
		taskRepo:       taskRepo,
		attachmentRepo: attachmentRepo,
		store:          store,
		logger:         logger,
	}
}

func (uc *UploadAttachmentUseCase) Execute(ctx context.Context, cmd UploadAttachmentCommand) (*UploadAttachmentResult, error) {
	uc.logger.Infow("executing upload attachment use case",
		"task_id", cmd.TaskID, "file_name", cmd.FileName, "user_id", cmd.UserID)

	if cmd.FileName == "" {
		return nil, errors.NewValidationError("file name is required")
	}

	t, err := uc.taskRepo.FindByID(ctx, cmd.TaskID)
	if err != nil {
		uc.logger.Errorw("failed to load task", "task_id", cmd.TaskID, "error", err)
		return nil, err
	}
	if t == nil {
		return nil, errors.NewNotFoundError("task not found")
	}

	storagePath, size, err := uc.store.Save(cmd.FileName, cmd.Body)
	if err != nil {
		uc.logger.Errorw("failed to store attachment payload", "file_name", cmd.FileName, "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	attachment, err := task.NewAttachment(cmd.TaskID, cmd.UserID, cmd.FileName, cmd.ContentType, size, storagePath)
	if err != nil {
		// Orphaned payload cleanup on entity rejection.
		if delErr := uc.store.Delete(storagePath); delErr != nil {
			uc.logger.Warnw("failed to clean up stored payload", "storage_path", storagePath, "error", delErr)
		}
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.attachmentRepo.Save(ctx, attachment); err != nil {
		uc.logger.Errorw("failed to save attachment record", "task_id", cmd.TaskID, "error", err)
		if delErr := uc.store.Delete(storagePath); delErr != nil {
			uc.logger.Warnw("failed to clean up stored payload", "storage_path", storagePath, "error", delErr)
		}
		return nil, err
	}

	uc.logger.Infow("attachment uploaded",
		"task_id", cmd.TaskID, "attachment_id", attachment.ID(), "size", size)

	return &UploadAttachmentResult{
		AttachmentID: attachment.ID(),
		FileName:     attachment.FileName(),
		Size:         size,
		CreatedAt:    attachment.CreatedAt(),
	}, nil
}
