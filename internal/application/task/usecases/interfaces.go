package usecases

import "context"

type CreateTaskExecutor interface {
	Execute(ctx context.Context, cmd CreateTaskCommand) (*CreateTaskResult, error)
}

type UpdateTaskExecutor interface {
	Execute(ctx context.Context, cmd UpdateTaskCommand) (*UpdateTaskResult, error)
}

type ChangeTaskStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeTaskStatusCommand) (*ChangeTaskStatusResult, error)
}

type AssignTaskExecutor interface {
	Execute(ctx context.Context, cmd AssignTaskCommand) (*AssignTaskResult, error)
}

type DeleteTaskExecutor interface {
	Execute(ctx context.Context, cmd DeleteTaskCommand) (*DeleteTaskResult, error)
}

type GetTaskExecutor interface {
	Execute(ctx context.Context, query GetTaskQuery) (*TaskDTO, error)
}

type ListTasksExecutor interface {
	Execute(ctx context.Context, query ListTasksQuery) (*ListTasksResult, error)
}

type RecalculateParentStatusExecutor interface {
	Execute(ctx context.Context, cmd RecalculateParentStatusCommand) (*RecalculateParentStatusResult, error)
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error)
}

type ListCommentsExecutor interface {
	Execute(ctx context.Context, query ListCommentsQuery) (*ListCommentsResult, error)
}

type DeleteCommentExecutor interface {
	Execute(ctx context.Context, cmd DeleteCommentCommand) (*DeleteCommentResult, error)
}

type UploadAttachmentExecutor interface {
	Execute(ctx context.Context, cmd UploadAttachmentCommand) (*UploadAttachmentResult, error)
}

type ListAttachmentsExecutor interface {
	Execute(ctx context.Context, query ListAttachmentsQuery) (*ListAttachmentsResult, error)
}

type DownloadAttachmentExecutor interface {
	Execute(ctx context.Context, query DownloadAttachmentQuery) (*DownloadAttachmentResult, error)
}

type DeleteAttachmentExecutor interface {
	Execute(ctx context.Context, cmd DeleteAttachmentCommand) (*DeleteAttachmentResult, error)
}

type PushTaskToGithubExecutor interface {
	Execute(ctx context.Context, cmd PushTaskToGithubCommand) (*PushTaskToGithubResult, error)
}

type PullGithubStatusExecutor interface {
	Execute(ctx context.Context, cmd PullGithubStatusCommand) (*PullGithubStatusResult, error)
}
