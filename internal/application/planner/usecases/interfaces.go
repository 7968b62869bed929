package usecases

import "context"

type GeneratePlanExecutor interface {
	Execute(ctx context.Context, cmd GeneratePlanCommand) (*GeneratePlanResult, error)
}

type ConfirmPlanExecutor interface {
	Execute(ctx context.Context, cmd ConfirmPlanCommand) (*ConfirmPlanResult, error)
}

type DiscardPlanExecutor interface {
	Execute(ctx context.Context, cmd DiscardPlanCommand) error
}
