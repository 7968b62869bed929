package usecases

import "context"

type CreateVerticalExecutor interface {
	Execute(ctx context.Context, cmd CreateVerticalCommand) (*CreateVerticalResult, error)
}

type UpdateVerticalExecutor interface {
	Execute(ctx context.Context, cmd UpdateVerticalCommand) (*UpdateVerticalResult, error)
}

type DeleteVerticalExecutor interface {
	Execute(ctx context.Context, cmd DeleteVerticalCommand) (*DeleteVerticalResult, error)
}

type ListVerticalsExecutor interface {
	Execute(ctx context.Context) (*ListVerticalsResult, error)
}
