package usecases

import "context"

type CreateSprintExecutor interface {
	Execute(ctx context.Context, cmd CreateSprintCommand) (*CreateSprintResult, error)
}

type ActivateSprintExecutor interface {
	Execute(ctx context.Context, cmd ActivateSprintCommand) (*ActivateSprintResult, error)
}

type CompleteSprintExecutor interface {
	Execute(ctx context.Context, cmd CompleteSprintCommand) (*CompleteSprintResult, error)
}

type MoveTaskExecutor interface {
	Execute(ctx context.Context, cmd MoveTaskCommand) (*MoveTaskResult, error)
}

type GetSprintProgressExecutor interface {
	Execute(ctx context.Context, query GetSprintProgressQuery) (*SprintProgressDTO, error)
}

type ListSprintsExecutor interface {
	Execute(ctx context.Context, query ListSprintsQuery) (*ListSprintsResult, error)
}
