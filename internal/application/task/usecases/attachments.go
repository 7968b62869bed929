package usecases

import (
	"context"
	"io"
	"time"

	"nexus/internal/domain/task"
	"nexus/internal/shared/authorization"
	"nexus/internal/shared/errors"
	"nexus/internal/shared/logger"
)

type ListAttachmentsQuery struct {
	TaskID uint
}

type AttachmentDTO struct {
	ID          uint      `json:"id"`
	TaskID      uint      `json:"task_id"`
	UserID      uint      `json:"user_id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	CreatedAt   time.Time `json:"created_at"`
}

type ListAttachmentsResult struct {
	Attachments []AttachmentDTO
}

type ListAttachmentsUseCase struct {
	attachmentRepo task.AttachmentRepository
	logger         logger.Interface
}

func NewListAttachmentsUseCase(attachmentRepo task.AttachmentRepository, logger logger.Interface) *ListAttachmentsUseCase {
	return &ListAttachmentsUseCase{attachmentRepo: attachmentRepo, logger: logger}
}

func (uc *ListAttachmentsUseCase) Execute(ctx context.Context, query ListAttachmentsQuery) (*ListAttachmentsResult, error) {
	attachments, err := uc.attachmentRepo.FindByTaskID(ctx, query.TaskID)
	if err != nil {
		uc.logger.Errorw("failed to list attachments", "task_id", query.TaskID, "error", err)
		return nil, err
	}

	dtos := make([]AttachmentDTO, len(attachments))
	for i, a := range attachments {
		dtos[i] = AttachmentDTO{
			ID:          a.ID(),
			TaskID:      a.TaskID(),
			UserID:      a.UserID(),
			FileName:    a.FileName(),
			ContentType: a.ContentType(),
			Size:        a.Size(),
			CreatedAt:   a.CreatedAt(),
		}
	}

	return &ListAttachmentsResult{Attachments: dtos}, nil
}

type DownloadAttachmentQuery struct {
	AttachmentID uint
}

type DownloadAttachmentResult struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.ReadCloser
}

type DownloadAttachmentUseCase struct {
	attachmentRepo task.AttachmentRepository
	store          BlobStore
	logger         logger.Interface
}

func NewDownloadAttachmentUseCase(
	attachmentRepo task.AttachmentRepository,
	store BlobStore,
	logger logger.Interface,
) *DownloadAttachmentUseCase {
	return &DownloadAttachmentUseCase{
		attachmentRepo: attachmentRepo,
		store:          store,
		logger:         logger,
	}
}

func (uc *DownloadAttachmentUseCase) Execute(ctx context.Context, query DownloadAttachmentQuery) (*DownloadAttachmentResult, error) {
	attachment, err := uc.attachmentRepo.FindByID(ctx, query.AttachmentID)
	if err != nil {
		uc.logger.Errorw("failed to load attachment", "attachment_id", query.AttachmentID, "error", err)
		return nil, err
	}
	if attachment == nil {
		return nil, errors.NewNotFoundError("attachment not found")
	}

	body, err := uc.store.Open(attachment.StoragePath())
	if err != nil {
		uc.logger.Errorw("failed to open attachment payload",
			"attachment_id", attachment.ID(), "storage_path", attachment.StoragePath(), "error", err)
		return nil, errors.NewInternalError("attachment payload unavailable")
	}

	return &DownloadAttachmentResult{
		FileName:    attachment.FileName(),
		ContentType: attachment.ContentType(),
		Size:        attachment.Size(),
		Body:        body,
	}, nil
}

type DeleteAttachmentCommand struct {
	AttachmentID uint
	UserID       uint
	UserRole     string
}

type DeleteAttachmentResult struct {
	AttachmentID uint
}

type DeleteAttachmentUseCase struct {
	attachmentRepo task.AttachmentRepository
	store          BlobStore
	logger         logger.Interface
}

func NewDeleteAttachmentUseCase(
	attachmentRepo task.AttachmentRepository,
	store BlobStore,
	logger logger.Interface,
) *DeleteAttachmentUseCase {
	return &DeleteAttachmentUseCase{
		attachmentRepo: attachmentRepo,
		store:          store,
		logger:         logger,
	}
}

func (uc *DeleteAttachmentUseCase) Execute(ctx context.Context, cmd DeleteAttachmentCommand) (*DeleteAttachmentResult, error) {
	uc.logger.Infow("executing delete attachment use case", "attachment_id", cmd.AttachmentID, "user_id", cmd.UserID)

	attachment, err := uc.attachmentRepo.FindByID(ctx, cmd.AttachmentID)
	if err != nil {
		uc.logger.Errorw("failed to load attachment", "attachment_id", cmd.AttachmentID, "error", err)
		return nil, err
	}
	if attachment == nil {
		return nil, errors.NewNotFoundError("attachment not found")
	}

	role := authorization.ParseUserRole(cmd.UserRole)
	if !authorization.CanAccessResource(cmd.UserID, role, attachment) {
		return nil, errors.NewForbiddenError("only the uploader or an admin may delete an attachment")
	}

	if err := uc.attachmentRepo.Delete(ctx, cmd.AttachmentID); err != nil {
		uc.logger.Errorw("failed to delete attachment record", "attachment_id", cmd.AttachmentID, "error", err)
		return nil, err
	}

	// Record first, then payload; a missing file is not worth failing over.
	if err := uc.store.Delete(attachment.StoragePath()); err != nil {
		uc.logger.Warnw("failed to delete attachment payload",
			"attachment_id", cmd.AttachmentID, "storage_path", attachment.StoragePath(), "error", err)
	}

	uc.logger.Infow("attachment deleted", "attachment_id", cmd.AttachmentID)

	return &DeleteAttachmentResult{AttachmentID: cmd.AttachmentID}, nil
}
