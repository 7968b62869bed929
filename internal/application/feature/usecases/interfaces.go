package usecases

import "context"

type CreateFeatureExecutor interface {
	Execute(ctx context.Context, cmd CreateFeatureCommand) (*CreateFeatureResult, error)
}

type ChangeFeatureStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeFeatureStatusCommand) (*ChangeFeatureStatusResult, error)
}

type ListFeaturesExecutor interface {
	Execute(ctx context.Context, query ListFeaturesQuery) (*ListFeaturesResult, error)
}
