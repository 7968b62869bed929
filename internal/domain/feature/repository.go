package feature

import "context"

type Repository interface {
	Save(ctx context.Context, f *Feature) error
	Update(ctx context.Context, f *Feature) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*Feature, error)
	ListByProject(ctx context.Context, projectID uint) ([]*Feature, error)
}
